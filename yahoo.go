package folio

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/PaesslerAG/jsonpath"
)

const yahooBaseURL = "https://query1.finance.yahoo.com/v8/finance/chart"

// YahooClient fetches stock quotes from the Yahoo Finance chart API.
// Quotes are treated as USD.
type YahooClient struct {
	client  *http.Client
	baseURL string
}

func NewYahooClient() *YahooClient {
	return &YahooClient{client: newQuoteClient(), baseURL: yahooBaseURL}
}

// yahooRange picks the smallest chart range covering the requested days.
func yahooRange(days int) string {
	switch {
	case days <= 7:
		return "5d"
	case days <= 30:
		return "1mo"
	case days <= 90:
		return "3mo"
	default:
		return "1y"
	}
}

// extract resolves a jsonpath expression and unwraps the list-of-one answer
// that jsonpath sometimes returns.
func extract(doc any, path string) (any, error) {
	jval, err := jsonpath.Get(path, doc)
	if err != nil {
		return nil, err
	}
	// because jsonpath is never clear about whether it returns a list of 1
	// answer, or a single answer: keep the first one if any.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	return jval, nil
}

// asFloat reads a jsonpath value that this weird API sometimes returns as a
// string.
func asFloat(jval any) (float64, bool) {
	switch v := jval.(type) {
	case float64:
		return v, true
	case string:
		v = strings.ReplaceAll(v, ",", ".")
		v = strings.ReplaceAll(v, " ", "")
		f, err := strconv.ParseFloat(v, 64)
		return f, err == nil
	}
	return 0, false
}

// Price returns the regular market price for a stock symbol.
func (c *YahooClient) Price(symbol string) (float64, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	addr := fmt.Sprintf("%s/%s?interval=1d&range=1d", c.baseURL, url.PathEscape(symbol))

	var doc any
	if err := jwget(c.client, addr, &doc); err != nil {
		return 0, fmt.Errorf("yahoo price for %s: %w", symbol, err)
	}
	jval, err := extract(doc, "$.chart.result[0].meta.regularMarketPrice")
	if err != nil {
		return 0, fmt.Errorf("yahoo price for %s: %w", symbol, err)
	}
	price, ok := asFloat(jval)
	if !ok {
		return 0, fmt.Errorf("yahoo price for %s: not a number: %v", symbol, jval)
	}
	return price, nil
}

// History returns daily closing prices covering the last days, oldest first.
// Null closes (market holidays, suspended quotes) are skipped.
func (c *YahooClient) History(symbol string, days int) ([]PricePoint, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	addr := fmt.Sprintf("%s/%s?interval=1d&range=%s", c.baseURL, url.PathEscape(symbol), yahooRange(days))

	var doc any
	if err := jwget(c.client, addr, &doc); err != nil {
		return nil, fmt.Errorf("yahoo history for %s: %w", symbol, err)
	}

	jstamps, err := jsonpath.Get("$.chart.result[0].timestamp", doc)
	if err != nil {
		return nil, fmt.Errorf("yahoo history for %s: %w", symbol, err)
	}
	jcloses, err := jsonpath.Get("$.chart.result[0].indicators.quote[0].close", doc)
	if err != nil {
		return nil, fmt.Errorf("yahoo history for %s: %w", symbol, err)
	}
	stamps, ok1 := jstamps.([]any)
	closes, ok2 := jcloses.([]any)
	if !ok1 || !ok2 {
		return nil, fmt.Errorf("yahoo history for %s: unexpected chart shape", symbol)
	}

	n := len(stamps)
	if len(closes) < n {
		n = len(closes)
	}
	points := make([]PricePoint, 0, n)
	for i := 0; i < n; i++ {
		ts, ok := stamps[i].(float64)
		if !ok {
			continue
		}
		price, ok := asFloat(closes[i])
		if !ok {
			continue
		}
		points = append(points, PricePoint{
			At:    time.Unix(int64(ts), 0),
			Price: price,
		})
	}
	return points, nil
}
