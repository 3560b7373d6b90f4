package folio

import (
	"fmt"
	"net/http"
	"strings"
)

const rateBaseURL = "https://api.exchangerate-api.com/v4/latest"

// RateClient fetches spot FX rates. Conversion is forgiving: any failure
// falls back to a rate of 1.0 so a dead FX feed degrades valuations instead
// of breaking them.
type RateClient struct {
	client  *http.Client
	baseURL string
}

func NewRateClient() *RateClient {
	return &RateClient{client: newQuoteClient(), baseURL: rateBaseURL}
}

// Rate returns how many units of to one unit of from is worth, or 1.0 when
// the rate cannot be fetched.
func (c *RateClient) Rate(from, to string) float64 {
	from = strings.ToUpper(strings.TrimSpace(from))
	to = strings.ToUpper(strings.TrimSpace(to))
	if from == to || from == "" || to == "" {
		return 1.0
	}
	var table struct {
		Base  string             `json:"base"`
		Rates map[string]float64 `json:"rates"`
	}
	if err := jwget(c.client, fmt.Sprintf("%s/%s", c.baseURL, from), &table); err != nil {
		Log.Warn().Err(err).Str("from", from).Str("to", to).Msg("fx rate fetch failed, using 1.0")
		return 1.0
	}
	rate, ok := table.Rates[to]
	if !ok || rate <= 0 {
		Log.Warn().Str("from", from).Str("to", to).Msg("fx rate missing, using 1.0")
		return 1.0
	}
	return rate
}

// Convert converts an amount between currencies at the spot rate.
func (c *RateClient) Convert(amount float64, from, to string) float64 {
	return amount * c.Rate(from, to)
}
