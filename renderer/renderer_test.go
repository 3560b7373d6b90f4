package renderer

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/foliotrack/folio"
	"github.com/shopspring/decimal"
)

// stubQuoter serves one spot price and a short series for any ticker.
type stubQuoter struct {
	price  float64
	points []folio.PricePoint
}

func (s stubQuoter) Price(string) (float64, error) {
	return s.price, nil
}

func (s stubQuoter) History(string, int) ([]folio.PricePoint, error) {
	return s.points, nil
}

type unitRate struct{}

func (unitRate) Rate(string, string) float64 { return 1 }

func day(d int) time.Time { return time.Date(2026, 8, d, 0, 0, 0, 0, time.UTC) }

func testPortfolio(t *testing.T) *folio.Portfolio {
	t.Helper()
	p, err := folio.NewPortfolio("Main", "long-term savings", "USD")
	if err != nil {
		t.Fatal(err)
	}
	tx := folio.NewTransaction(folio.Buy, folio.Q(2), decimal.NewFromInt(100), folio.Now())
	if err := p.Record("BTC", folio.Crypto, tx); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestPortfolioMarkdown(t *testing.T) {
	p := testPortfolio(t)
	quoter := stubQuoter{price: 150}
	md := folio.NewMarketData(quoter, quoter, unitRate{}, nil)

	out := PortfolioMarkdown(p, md)
	for _, want := range []string{"# Portfolio Main (USD)", "long-term savings", "BTC", "$150.00", "$300.00", "Total Invested: $200.00"} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}

func TestListMarkdown(t *testing.T) {
	p := testPortfolio(t)
	out := ListMarkdown([]*folio.Portfolio{p})
	if !strings.Contains(out, "Main") || !strings.Contains(out, p.ID) {
		t.Errorf("list report missing portfolio row:\n%s", out)
	}
	empty := ListMarkdown(nil)
	if !strings.Contains(empty, "No portfolios") {
		t.Errorf("empty list report:\n%s", empty)
	}
}

func TestAnalysisMarkdown(t *testing.T) {
	p := testPortfolio(t)
	quoter := stubQuoter{
		price: 150,
		points: []folio.PricePoint{
			{At: day(1), Price: 100},
			{At: day(2), Price: 150},
		},
	}
	md := folio.NewMarketData(quoter, quoter, unitRate{}, nil)
	a := folio.Analyze(p, md, 30)

	out := AnalysisMarkdown("Main", a)
	for _, want := range []string{"# Analysis of Main", "Current Value: $300.00", "Up days", "Return on Investment", "Allocation by Type"} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}

func TestAnalysisMarkdownEmpty(t *testing.T) {
	p := testPortfolio(t)
	quoter := stubQuoter{price: 150}
	md := folio.NewMarketData(quoter, quoter, unitRate{}, nil)
	a := folio.Analyze(p, md, 30)

	out := AnalysisMarkdown("Main", a)
	if !strings.Contains(out, "Not enough price history") {
		t.Errorf("empty analysis report:\n%s", out)
	}
}

func TestWhalesMarkdown(t *testing.T) {
	now := day(30)
	txs := []folio.WhaleTransaction{
		{Symbol: "BTC", Amount: 1250, AmountUSD: 125_000_000, At: now.Add(-2 * time.Minute), Type: "exchange_to_wallet", FromOwner: "Binance"},
	}
	out := WhalesMarkdown(txs, now)
	for _, want := range []string{"# Whale Activity", "2 min ago", "$125M", "exchange → wallet", "Binance"} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}

func TestHistoryMarkdown(t *testing.T) {
	points := []folio.PricePoint{
		{At: day(1), Price: 100},
		{At: day(2), Price: 110},
	}
	out := HistoryMarkdown("BTC", "USD", points)
	for _, want := range []string{"# History for BTC (USD)", "$100.00", "$110.00", "+10.00%"} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}

func TestTransactionsMarkdown(t *testing.T) {
	p := testPortfolio(t)
	a, _ := p.Asset("BTC")
	out := TransactionsMarkdown(a, p.Currency)
	for _, want := range []string{"# Transactions for BTC", "BUY", "$100.00", "$200.00"} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}

func TestEventsMarkdown(t *testing.T) {
	events := []folio.Event{
		folio.NewEvent("Halving", "", folio.Now(), ""),
		folio.NewEvent("Rebalance", "", folio.Now(), "p1"),
	}
	out := EventsMarkdown(events)
	for _, want := range []string{"Halving", "global", "Rebalance", "p1"} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}

func TestValueChart(t *testing.T) {
	points := []folio.ValuePoint{
		{At: day(1), Value: 100},
		{At: day(2), Value: 110},
		{At: day(3), Value: 105},
	}
	var buf bytes.Buffer
	if err := ValueChart("Main", points, &buf); err != nil {
		t.Fatal(err)
	}
	// PNG signature
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Errorf("chart output is not a PNG (%d bytes)", buf.Len())
	}

	if err := ValueChart("Main", points[:1], &buf); err == nil {
		t.Error("chart of a single point expected error")
	}
}

func TestTerminalFallsBackToRaw(t *testing.T) {
	const doc = "# Title\n\nsome text\n"
	out := Terminal(doc)
	if out == "" {
		t.Error("Terminal returned empty output")
	}
	if !strings.Contains(out, "Title") {
		t.Errorf("Terminal lost the content:\n%q", out)
	}
}
