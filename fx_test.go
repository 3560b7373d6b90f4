package folio

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestRates(handler http.Handler) (*RateClient, *httptest.Server) {
	srv := httptest.NewServer(handler)
	c := NewRateClient()
	c.baseURL = srv.URL
	return c, srv
}

func TestRate(t *testing.T) {
	c, srv := newTestRates(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/USD" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		fmt.Fprint(w, `{"base":"USD","rates":{"EUR":0.92,"GBP":0.79}}`)
	}))
	defer srv.Close()

	if got := c.Rate("usd", "eur"); got != 0.92 {
		t.Errorf("Rate(USD,EUR) = %v want 0.92", got)
	}
}

func TestRateIdentity(t *testing.T) {
	// same or empty currencies short-circuit without a request
	c, srv := newTestRates(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("request made for an identity conversion")
	}))
	defer srv.Close()

	for _, pair := range [][2]string{{"USD", "USD"}, {"", "EUR"}, {"USD", ""}} {
		if got := c.Rate(pair[0], pair[1]); got != 1.0 {
			t.Errorf("Rate(%q,%q) = %v want 1.0", pair[0], pair[1], got)
		}
	}
}

func TestRateFallsBackToOne(t *testing.T) {
	c, srv := newTestRates(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	if got := c.Rate("USD", "EUR"); got != 1.0 {
		t.Errorf("Rate on a dead feed = %v want 1.0", got)
	}

	c2, srv2 := newTestRates(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"base":"USD","rates":{"GBP":0.79}}`)
	}))
	defer srv2.Close()

	if got := c2.Rate("USD", "CHF"); got != 1.0 {
		t.Errorf("Rate for a missing currency = %v want 1.0", got)
	}
}

func TestConvert(t *testing.T) {
	c, srv := newTestRates(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"base":"USD","rates":{"EUR":0.5}}`)
	}))
	defer srv.Close()

	if got := c.Convert(200, "USD", "EUR"); got != 100 {
		t.Errorf("Convert(200, USD, EUR) = %v want 100", got)
	}
}
