package folio

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/foliotrack/folio/date"
)

// DailyCache is the on-disk price cache: one small JSON file per ticker
// mapping day to USD closing price. It survives restarts, is consulted
// before the network for today's spot price, and only ever grows.
//
// Files live at <dir>/<ticker>_cache.json with lower-cased tickers, e.g.
//
//	{"2026-08-29": 64250.5, "2026-08-30": 64811.0}
type DailyCache struct {
	dir string

	mu   sync.Mutex
	hist map[string]*date.History[float64]
}

func NewDailyCache(dir string) *DailyCache {
	return &DailyCache{dir: dir, hist: make(map[string]*date.History[float64])}
}

func (c *DailyCache) path(ticker string) string {
	return filepath.Join(c.dir, strings.ToLower(ticker)+"_cache.json")
}

// load reads the ticker's file into memory on first use. Callers hold c.mu.
func (c *DailyCache) load(ticker string) *date.History[float64] {
	ticker = strings.ToUpper(ticker)
	if h, ok := c.hist[ticker]; ok {
		return h
	}
	h := &date.History[float64]{}
	c.hist[ticker] = h

	data, err := os.ReadFile(c.path(ticker))
	if err != nil {
		if !os.IsNotExist(err) {
			Log.Warn().Err(err).Str("ticker", ticker).Msg("cannot read daily cache file")
		}
		return h
	}
	var prices map[string]float64
	if err := json.Unmarshal(data, &prices); err != nil {
		Log.Warn().Err(err).Str("ticker", ticker).Msg("corrupt daily cache file, ignoring")
		return h
	}
	for day, price := range prices {
		on, err := date.Parse(day)
		if err != nil {
			continue
		}
		h.Append(on, price)
	}
	return h
}

// Get returns the cached USD price of ticker on a given day.
func (c *DailyCache) Get(ticker string, on date.Date) (float64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load(ticker).Get(on)
}

// Put records the USD price of ticker on a given day and persists the file.
func (c *DailyCache) Put(ticker string, on date.Date, price float64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	h := c.load(ticker)
	h.Append(on, price)

	prices := make(map[string]float64, h.Len())
	for day, value := range h.Values() {
		prices[day.String()] = value
	}
	data, err := json.MarshalIndent(prices, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(c.path(ticker), data, 0o644); err != nil {
		return fmt.Errorf("writing daily cache for %s: %w", ticker, err)
	}
	return nil
}

// Latest returns the most recent cached day and price for ticker.
func (c *DailyCache) Latest(ticker string) (date.Date, float64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	h := c.load(ticker)
	if h.Len() == 0 {
		return date.Date{}, 0, false
	}
	day, price := h.Latest()
	return day, price, true
}
