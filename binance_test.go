package folio

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func newTestBinance(handler http.Handler) (*BinanceClient, *httptest.Server) {
	srv := httptest.NewServer(handler)
	c := NewBinanceClient()
	c.baseURL = srv.URL
	return c, srv
}

func TestBinanceSymbol(t *testing.T) {
	c := NewBinanceClient()
	testCases := []struct {
		in   string
		want string
	}{
		{in: "BTC", want: "BTCUSDT"},
		{in: "btc", want: "BTCUSDT"},
		{in: " eth ", want: "ETHUSDT"},
		{in: "bitcoin", want: "BTCUSDT"},
		{in: "Chainlink", want: "LINKUSDT"},
		{in: "BTC/USDT", want: "BTCUSDT"},
		{in: "BTC-USDT", want: "BTCUSDT"},
		{in: "btc_usdt", want: "BTCUSDT"},
		{in: "PEPEUSDT", want: "PEPEUSDT"},
		{in: "PEPE", want: "PEPEUSDT"},
	}
	for _, tc := range testCases {
		if got := c.Symbol(tc.in); got != tc.want {
			t.Errorf("Symbol(%q) = %q want %q", tc.in, got, tc.want)
		}
	}
}

func TestKlineParams(t *testing.T) {
	testCases := []struct {
		days         int
		wantInterval string
		wantLimit    int
	}{
		{days: 1, wantInterval: "15m", wantLimit: 96},
		{days: 7, wantInterval: "1h", wantLimit: 168},
		{days: 30, wantInterval: "4h", wantLimit: 180},
		{days: 90, wantInterval: "1d", wantLimit: 90},
		{days: 365, wantInterval: "1d", wantLimit: 365},
		{days: 1000, wantInterval: "1d", wantLimit: 365},
	}
	for _, tc := range testCases {
		interval, limit := klineParams(tc.days)
		if interval != tc.wantInterval || limit != tc.wantLimit {
			t.Errorf("klineParams(%d) = %s, %d want %s, %d",
				tc.days, interval, limit, tc.wantInterval, tc.wantLimit)
		}
	}
}

func TestBinancePriceFromBulk(t *testing.T) {
	var bulkHits int
	c, srv := newTestBinance(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/ticker/price" || r.URL.RawQuery != "" {
			t.Errorf("unexpected request %s?%s", r.URL.Path, r.URL.RawQuery)
		}
		bulkHits++
		fmt.Fprint(w, `[
			{"symbol":"BTCUSDT","price":"64250.50"},
			{"symbol":"ETHUSDT","price":"3300.00"},
			{"symbol":"OBSCUREUSDT","price":"0.001"}
		]`)
	}))
	defer srv.Close()

	got, err := c.Price("BTC")
	if err != nil {
		t.Fatal(err)
	}
	if got != 64250.50 {
		t.Errorf("Price(BTC) = %v want 64250.50", got)
	}

	// a second known pair is served from the same snapshot
	if _, err := c.Price("ETH"); err != nil {
		t.Fatal(err)
	}
	if bulkHits != 1 {
		t.Errorf("bulk endpoint hit %d times want 1", bulkHits)
	}
}

func TestBinancePriceBulkRefreshAfterTTL(t *testing.T) {
	var bulkHits int
	c, srv := newTestBinance(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		bulkHits++
		fmt.Fprint(w, `[{"symbol":"BTCUSDT","price":"100"}]`)
	}))
	defer srv.Close()

	clock := &testClock{t: time.Now()}
	c.now = clock.now

	c.Price("BTC")
	clock.advance(bulkTTL + time.Second)
	c.Price("BTC")
	if bulkHits != 2 {
		t.Errorf("bulk endpoint hit %d times want 2 after TTL", bulkHits)
	}
}

func TestBinancePriceSingleSymbolFallback(t *testing.T) {
	c, srv := newTestBinance(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("symbol") == "PEPEUSDT" {
			fmt.Fprint(w, `{"symbol":"PEPEUSDT","price":"0.000012"}`)
			return
		}
		// bulk snapshot without the pair
		fmt.Fprint(w, `[{"symbol":"BTCUSDT","price":"100"}]`)
	}))
	defer srv.Close()

	got, err := c.Price("PEPE")
	if err != nil {
		t.Fatal(err)
	}
	if got != 0.000012 {
		t.Errorf("Price(PEPE) = %v want 0.000012", got)
	}
}

func TestBinanceHistory(t *testing.T) {
	c, srv := newTestBinance(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/klines") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("symbol") != "BTCUSDT" || q.Get("interval") != "1h" || q.Get("limit") != "168" {
			t.Errorf("unexpected query %s", r.URL.RawQuery)
		}
		// klines: [openTime, open, high, low, close, ...]
		fmt.Fprint(w, `[
			[1756422000000,"64000","64500","63900","64250.5",""],
			[1756425600000,"64250","64900","64200","64811",""],
			["garbage"],
			[1756429200000,"64811","65000","64700","not a number",""]
		]`)
	}))
	defer srv.Close()

	points, err := c.History("BTC", 7)
	if err != nil {
		t.Fatal(err)
	}
	if len(points) != 2 {
		t.Fatalf("History = %d points want 2 (malformed klines skipped)", len(points))
	}
	if points[0].Price != 64250.5 || points[1].Price != 64811 {
		t.Errorf("closes = %v/%v want 64250.5/64811", points[0].Price, points[1].Price)
	}
	if !points[0].At.Equal(time.UnixMilli(1756422000000)) {
		t.Errorf("first open time = %v want %v", points[0].At, time.UnixMilli(1756422000000))
	}
	if !points[0].At.Before(points[1].At) {
		t.Error("points not oldest first")
	}
}

func TestBinancePriceServerError(t *testing.T) {
	c, srv := newTestBinance(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "teapot", http.StatusTeapot)
	}))
	defer srv.Close()

	if _, err := c.Price("BTC"); err == nil {
		t.Error("Price against a failing server expected error")
	}
}
