package folio

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestWhale(handler http.Handler) (*WhaleClient, *httptest.Server) {
	srv := httptest.NewServer(handler)
	c := NewWhaleClient()
	c.baseURL = srv.URL
	return c, srv
}

func TestWhaleRecent(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	c, srv := newTestWhale(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("api_key") != "demo" {
			t.Errorf("api_key = %q want demo", q.Get("api_key"))
		}
		if q.Get("min_value") != "1000000" {
			t.Errorf("min_value = %q want 1000000", q.Get("min_value"))
		}
		if q.Get("start") != fmt.Sprint(now.Add(-time.Hour).Unix()) {
			t.Errorf("start = %q want one hour before now", q.Get("start"))
		}
		fmt.Fprintf(w, `{"transactions":[
			{"symbol":"btc","amount":1250,"amount_usd":125450000,"timestamp":%d,
			 "transaction_type":"exchange_to_wallet","from":{"owner":"Binance"}},
			{"symbol":"","amount":10,"amount_usd":2000000,"timestamp":%d,
			 "transaction_type":"","from":{"owner":""}}
		]}`, now.Add(-2*time.Minute).Unix(), now.Add(-10*time.Minute).Unix())
	}))
	defer srv.Close()
	c.now = func() time.Time { return now }

	txs := c.Recent()
	if len(txs) != 2 {
		t.Fatalf("Recent = %d transactions want 2", len(txs))
	}
	if txs[0].Symbol != "BTC" || txs[0].FromOwner != "Binance" {
		t.Errorf("first tx = %+v", txs[0])
	}
	// blanks default to BTC / Unknown / transfer
	if txs[1].Symbol != "BTC" || txs[1].FromOwner != "Unknown" || txs[1].Type != "transfer" {
		t.Errorf("defaults not applied: %+v", txs[1])
	}
}

func TestWhaleMockOnFailure(t *testing.T) {
	c, srv := newTestWhale(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	txs := c.Recent()
	if len(txs) != 10 {
		t.Fatalf("mock dataset = %d transactions want 10", len(txs))
	}
	if txs[0].Symbol != "BTC" || txs[0].FromOwner != "Binance" {
		t.Errorf("first mock tx = %+v", txs[0])
	}
}

func TestWhaleMockOnEmptyFeed(t *testing.T) {
	c, srv := newTestWhale(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"transactions":[]}`)
	}))
	defer srv.Close()

	if txs := c.Recent(); len(txs) != 10 {
		t.Errorf("empty feed = %d transactions want the 10 mock ones", len(txs))
	}
}

func TestWhaleStatsOf(t *testing.T) {
	now := time.Now()
	txs := []WhaleTransaction{
		{Symbol: "BTC", AmountUSD: 100, At: now},
		{Symbol: "ETH", AmountUSD: 300, At: now},
		{Symbol: "BTC", AmountUSD: 150, At: now},
	}
	stats := WhaleStatsOf(txs)
	if stats.Count != 3 {
		t.Errorf("Count = %d want 3", stats.Count)
	}
	if stats.TotalUSD != 550 {
		t.Errorf("TotalUSD = %v want 550", stats.TotalUSD)
	}
	if stats.TopToken != "ETH" {
		t.Errorf("TopToken = %q want ETH", stats.TopToken)
	}

	// volume tie resolves to the lexically smaller token
	tie := WhaleStatsOf([]WhaleTransaction{
		{Symbol: "ETH", AmountUSD: 100},
		{Symbol: "BTC", AmountUSD: 100},
	})
	if tie.TopToken != "BTC" {
		t.Errorf("tied TopToken = %q want BTC", tie.TopToken)
	}
}

func TestWhaleFormatting(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	tx := WhaleTransaction{
		Symbol:    "SOL",
		Amount:    2_100_000,
		AmountUSD: 420_000_000,
		At:        now.Add(-23 * time.Minute),
		Type:      "staking_to_wallet",
	}
	if got := tx.Age(now); got != "23 min ago" {
		t.Errorf("Age = %q want \"23 min ago\"", got)
	}
	if got := tx.FormattedAmount(); got != "2.1M SOL" {
		t.Errorf("FormattedAmount = %q want \"2.1M SOL\"", got)
	}
	if got := tx.FormattedUSD(); got != "$420M" {
		t.Errorf("FormattedUSD = %q want \"$420M\"", got)
	}
	if got := tx.FormattedType(); got != "staking → wallet" {
		t.Errorf("FormattedType = %q want \"staking → wallet\"", got)
	}

	small := WhaleTransaction{Symbol: "BTC", Amount: 12.5, AmountUSD: 1_234_567_890, At: now.Add(-30 * time.Second)}
	if got := small.Age(now); got != "30 sec ago" {
		t.Errorf("Age = %q want \"30 sec ago\"", got)
	}
	if got := small.FormattedAmount(); got != "12.50 BTC" {
		t.Errorf("FormattedAmount = %q want \"12.50 BTC\"", got)
	}
	if got := small.FormattedUSD(); got != "$1.23B" {
		t.Errorf("FormattedUSD = %q want \"$1.23B\"", got)
	}

	old := WhaleTransaction{Symbol: "XRP", Amount: 850_000, AmountUSD: 425_000, At: now.Add(-2 * time.Hour)}
	if got := old.Age(now); got != "2h ago" {
		t.Errorf("Age = %q want \"2h ago\"", got)
	}
	if got := old.FormattedAmount(); got != "850000 XRP" {
		t.Errorf("FormattedAmount = %q want \"850000 XRP\"", got)
	}
	if got := old.FormattedUSD(); got != "$425000" {
		t.Errorf("FormattedUSD = %q want \"$425000\"", got)
	}
}
