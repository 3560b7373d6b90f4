package folio

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"
)

const binanceBaseURL = "https://api.binance.com/api/v3"

// cryptoSymbols maps common tickers and coin names to their Binance USDT
// trading pair.
var cryptoSymbols = map[string]string{
	"BTC":   "BTCUSDT",
	"ETH":   "ETHUSDT",
	"SOL":   "SOLUSDT",
	"LTC":   "LTCUSDT",
	"LINK":  "LINKUSDT",
	"ADA":   "ADAUSDT",
	"DOT":   "DOTUSDT",
	"XRP":   "XRPUSDT",
	"DOGE":  "DOGEUSDT",
	"AVAX":  "AVAXUSDT",
	"MATIC": "MATICUSDT",
	"ATOM":  "ATOMUSDT",
	"UNI":   "UNIUSDT",
	"BNB":   "BNBUSDT",
	"SHIB":  "SHIBUSDT",

	"BITCOIN":   "BTCUSDT",
	"ETHEREUM":  "ETHUSDT",
	"SOLANA":    "SOLUSDT",
	"LITECOIN":  "LTCUSDT",
	"CHAINLINK": "LINKUSDT",
	"CARDANO":   "ADAUSDT",
	"POLKADOT":  "DOTUSDT",
	"RIPPLE":    "XRPUSDT",
	"DOGECOIN":  "DOGEUSDT",
	"AVALANCHE": "AVAXUSDT",
	"POLYGON":   "MATICUSDT",
	"COSMOS":    "ATOMUSDT",
	"UNISWAP":   "UNIUSDT",
}

// bulkTTL is how long one /ticker/price bulk snapshot serves individual
// lookups before it is refreshed.
const bulkTTL = 30 * time.Second

// BinanceClient fetches crypto spot prices and klines history from the
// Binance public API. All quotes are in USDT, treated as USD.
type BinanceClient struct {
	client  *http.Client
	baseURL string
	now     func() time.Time

	mu        sync.Mutex
	bulk      map[string]float64
	fetchedAt time.Time
}

func NewBinanceClient() *BinanceClient {
	return &BinanceClient{
		client:  newQuoteClient(),
		baseURL: binanceBaseURL,
		now:     time.Now,
	}
}

// Symbol resolves a user ticker or coin name to a Binance trading pair:
// catalog match first, then bare pair passthrough, then "<TICKER>USDT".
func (c *BinanceClient) Symbol(ticker string) string {
	up := strings.ToUpper(strings.TrimSpace(ticker))
	up = strings.NewReplacer("/", "", "-", "", "_", "").Replace(up)
	if sym, ok := cryptoSymbols[up]; ok {
		return sym
	}
	if strings.HasSuffix(up, "USDT") {
		return up
	}
	return up + "USDT"
}

type binanceTicker struct {
	Symbol string `json:"symbol"`
	Price  string `json:"price"`
}

// Price returns the USD spot price for a ticker. Known pairs are served from
// a bulk snapshot of the whole exchange; anything else falls back to a
// single-symbol request.
func (c *BinanceClient) Price(ticker string) (float64, error) {
	symbol := c.Symbol(ticker)

	c.mu.Lock()
	if c.now().Sub(c.fetchedAt) >= bulkTTL {
		c.refreshBulk()
	}
	price, ok := c.bulk[symbol]
	c.mu.Unlock()
	if ok {
		return price, nil
	}

	var t binanceTicker
	if err := jwget(c.client, fmt.Sprintf("%s/ticker/price?symbol=%s", c.baseURL, symbol), &t); err != nil {
		return 0, fmt.Errorf("binance price for %s: %w", symbol, err)
	}
	return strconv.ParseFloat(t.Price, 64)
}

// refreshBulk loads every supported pair in one request. Callers must hold
// c.mu. Failures keep the previous snapshot.
func (c *BinanceClient) refreshBulk() {
	var tickers []binanceTicker
	if err := jwget(c.client, c.baseURL+"/ticker/price", &tickers); err != nil {
		Log.Warn().Err(err).Msg("binance bulk price refresh failed")
		return
	}
	supported := make(map[string]bool, len(cryptoSymbols))
	for _, sym := range cryptoSymbols {
		supported[sym] = true
	}
	bulk := make(map[string]float64)
	for _, t := range tickers {
		if !supported[t.Symbol] {
			continue
		}
		if p, err := strconv.ParseFloat(t.Price, 64); err == nil {
			bulk[t.Symbol] = p
		}
	}
	c.bulk, c.fetchedAt = bulk, c.now()
}

// klineParams picks a candle interval and count so the series covers the
// requested number of days at a useful resolution.
func klineParams(days int) (interval string, limit int) {
	switch {
	case days <= 1:
		return "15m", 96
	case days <= 7:
		return "1h", days * 24
	case days <= 30:
		return "4h", days * 6
	case days <= 90:
		return "1d", days
	default:
		if days > 365 {
			days = 365
		}
		return "1d", days
	}
}

// History returns USD closing prices covering the last days, oldest first.
func (c *BinanceClient) History(ticker string, days int) ([]PricePoint, error) {
	symbol := c.Symbol(ticker)
	interval, limit := klineParams(days)
	addr := fmt.Sprintf("%s/klines?symbol=%s&interval=%s&limit=%d", c.baseURL, symbol, interval, limit)

	// each kline is [openTime, open, high, low, close, ...]
	var klines [][]interface{}
	if err := jwget(c.client, addr, &klines); err != nil {
		return nil, fmt.Errorf("binance history for %s: %w", symbol, err)
	}

	points := make([]PricePoint, 0, len(klines))
	for _, k := range klines {
		if len(k) < 5 {
			continue
		}
		openTime, ok := k[0].(float64)
		if !ok {
			continue
		}
		closeStr, ok := k[4].(string)
		if !ok {
			continue
		}
		price, err := strconv.ParseFloat(closeStr, 64)
		if err != nil {
			continue
		}
		points = append(points, PricePoint{
			At:    time.UnixMilli(int64(openTime)),
			Price: price,
		})
	}
	return points, nil
}
