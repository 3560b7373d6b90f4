package folio

import (
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/foliotrack/folio/date"
)

// PricePoint is one sample of a price series, chronological as returned by
// the feed.
type PricePoint struct {
	At    time.Time
	Price float64
}

// CryptoQuoter serves crypto spot prices and history, in USD.
type CryptoQuoter interface {
	Price(ticker string) (float64, error)
	History(ticker string, days int) ([]PricePoint, error)
}

// StockQuoter serves stock spot prices and history, in USD.
type StockQuoter interface {
	Price(symbol string) (float64, error)
	History(symbol string, days int) ([]PricePoint, error)
}

// RateSource converts amounts between currencies at the spot rate.
type RateSource interface {
	Rate(from, to string) float64
}

// Cache TTLs. Spot prices go stale fast; history can live longer.
const (
	PriceTTL   = time.Minute
	HistoryTTL = 5 * time.Minute
)

type cachedPrice struct {
	price float64
	at    time.Time
}

type cachedHistory struct {
	points []PricePoint
	at     time.Time
}

// MarketData serves prices and history for portfolio assets, caching results
// in memory with short TTLs. Cache entries are immutable snapshots stored in
// sync.Maps, so concurrent lookups never block each other; two goroutines
// racing on a miss both fetch and the last writer wins.
//
// Quotes come in USD from the underlying quoters; a non-USD display currency
// multiplies by a spot FX rate fetched per conversion. FX rates are
// deliberately not cached: only the final converted values are.
//
// A DailyCache, when configured, is consulted before the network for today's
// USD spot price and populated after every successful USD fetch.
type MarketData struct {
	crypto CryptoQuoter
	stocks StockQuoter
	rates  RateSource
	disk   *DailyCache

	prices    sync.Map // "TICKER_CUR" -> cachedPrice
	histories sync.Map // "TICKER_CUR_days" -> cachedHistory

	now func() time.Time

	mu     sync.Mutex
	refCur string
}

// NewMarketData wires a market data service. disk may be nil to run without
// the on-disk daily cache.
func NewMarketData(crypto CryptoQuoter, stocks StockQuoter, rates RateSource, disk *DailyCache) *MarketData {
	return &MarketData{
		crypto: crypto,
		stocks: stocks,
		rates:  rates,
		disk:   disk,
		now:    time.Now,
		refCur: "USD",
	}
}

// NewLiveMarketData wires the production clients against the public APIs.
func NewLiveMarketData(disk *DailyCache) *MarketData {
	return NewMarketData(NewBinanceClient(), NewYahooClient(), NewRateClient(), disk)
}

// ReferenceCurrency returns the default display currency.
func (m *MarketData) ReferenceCurrency() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.refCur
}

// SetReferenceCurrency changes the default display currency and clears the
// spot price cache, whose entries embed converted values.
func (m *MarketData) SetReferenceCurrency(currency string) {
	m.mu.Lock()
	m.refCur = strings.ToUpper(currency)
	m.mu.Unlock()
	m.prices.Range(func(key, _ any) bool {
		m.prices.Delete(key)
		return true
	})
}

// ClearCache drops every in-memory cache entry. The daily disk cache is
// untouched.
func (m *MarketData) ClearCache() {
	m.prices.Range(func(key, _ any) bool {
		m.prices.Delete(key)
		return true
	})
	m.histories.Range(func(key, _ any) bool {
		m.histories.Delete(key)
		return true
	})
}

func priceKey(ticker, currency string) string {
	return strings.ToUpper(ticker) + "_" + strings.ToUpper(currency)
}

// Price returns the spot price of ticker in the given currency, or 0 when no
// source can serve it. An empty currency means the reference currency.
//
// Lookup order: fresh memory cache entry, then (USD only) today's entry in
// the daily disk cache, then the network.
func (m *MarketData) Price(ticker string, typ AssetType, currency string) float64 {
	if currency == "" {
		currency = m.ReferenceCurrency()
	}
	currency = strings.ToUpper(currency)
	key := priceKey(ticker, currency)

	if e, ok := m.prices.Load(key); ok {
		entry := e.(cachedPrice)
		if m.now().Sub(entry.at) < PriceTTL {
			return entry.price
		}
	}

	today := date.New(m.now().Date())
	if currency == "USD" && m.disk != nil {
		if price, ok := m.disk.Get(ticker, today); ok && price > 0 {
			m.prices.Store(key, cachedPrice{price: price, at: m.now()})
			return price
		}
	}

	usd, err := m.fetchPrice(ticker, typ)
	if err != nil {
		Log.Warn().Err(err).Str("ticker", ticker).Msg("price fetch failed")
		return 0
	}

	price := usd
	if currency != "USD" && usd > 0 {
		price = usd * m.rates.Rate("USD", currency)
	}
	if price > 0 {
		m.prices.Store(key, cachedPrice{price: price, at: m.now()})
		if currency == "USD" && m.disk != nil {
			if err := m.disk.Put(ticker, today, price); err != nil {
				Log.Warn().Err(err).Str("ticker", ticker).Msg("daily cache write failed")
			}
		}
	}
	return price
}

func (m *MarketData) fetchPrice(ticker string, typ AssetType) (float64, error) {
	if typ == Crypto {
		return m.crypto.Price(ticker)
	}
	return m.stocks.Price(ticker)
}

func historyKey(ticker, currency string, days int) string {
	return priceKey(ticker, currency) + "_" + strconv.Itoa(days)
}

// History returns up to days of price history for ticker in the given
// currency, oldest first, or nil when no source can serve it.
func (m *MarketData) History(ticker string, typ AssetType, currency string, days int) []PricePoint {
	if currency == "" {
		currency = m.ReferenceCurrency()
	}
	currency = strings.ToUpper(currency)
	key := historyKey(ticker, currency, days)

	if e, ok := m.histories.Load(key); ok {
		entry := e.(cachedHistory)
		if m.now().Sub(entry.at) < HistoryTTL {
			return entry.points
		}
	}

	var points []PricePoint
	var err error
	if typ == Crypto {
		points, err = m.crypto.History(ticker, days)
	} else {
		points, err = m.stocks.History(ticker, days)
	}
	if err != nil {
		Log.Warn().Err(err).Str("ticker", ticker).Msg("history fetch failed")
		return nil
	}

	if currency != "USD" && len(points) > 0 {
		rate := m.rates.Rate("USD", currency)
		converted := make([]PricePoint, len(points))
		for i, p := range points {
			converted[i] = PricePoint{At: p.At, Price: p.Price * rate}
		}
		points = converted
	}
	if len(points) > 0 {
		m.histories.Store(key, cachedHistory{points: points, at: m.now()})
	}
	return points
}
