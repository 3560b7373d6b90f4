package folio

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// currencyCodeRegex checks for the ISO-4217 format: 3 uppercase letters.
var currencyCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)

// ValidateCurrency checks that a string is a validly formatted ISO-4217 code.
func ValidateCurrency(code string) error {
	if !currencyCodeRegex.MatchString(code) {
		return fmt.Errorf("invalid currency code %q: must be 3 uppercase letters", code)
	}
	return nil
}

// Portfolio is a named collection of assets valued in a single currency.
type Portfolio struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Currency    string   `json:"currency"`
	CreatedAt   DateTime `json:"createdAt"`
	Assets      []*Asset `json:"assets"`
}

// NewPortfolio creates an empty portfolio with a fresh ID.
func NewPortfolio(name, description, currency string) (*Portfolio, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("portfolio name cannot be empty")
	}
	if err := ValidateCurrency(currency); err != nil {
		return nil, err
	}
	return &Portfolio{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		Currency:    currency,
		CreatedAt:   Now(),
	}, nil
}

// Asset returns the first asset whose ticker matches, case-insensitively.
// Tickers are not required to be unique.
func (p *Portfolio) Asset(ticker string) (*Asset, bool) {
	for _, a := range p.Assets {
		if strings.EqualFold(a.Ticker, ticker) {
			return a, true
		}
	}
	return nil, false
}

// AddAsset appends an asset to the portfolio.
func (p *Portfolio) AddAsset(a *Asset) error {
	if strings.TrimSpace(a.Ticker) == "" {
		return fmt.Errorf("asset ticker cannot be empty")
	}
	p.Assets = append(p.Assets, a)
	return nil
}

// Record validates tx and appends it to the asset identified by ticker.
// The asset is created as typ when the ticker is new.
func (p *Portfolio) Record(ticker string, typ AssetType, tx Transaction) error {
	if strings.TrimSpace(ticker) == "" {
		return fmt.Errorf("asset ticker cannot be empty")
	}
	if err := tx.Validate(); err != nil {
		return fmt.Errorf("invalid transaction for %s: %w", ticker, err)
	}
	a, ok := p.Asset(ticker)
	if !ok {
		a = NewAsset(ticker, ticker, typ)
		p.Assets = append(p.Assets, a)
	}
	a.Add(tx)
	return nil
}

// TotalInvested sums invested cost over all assets, in the portfolio currency.
func (p *Portfolio) TotalInvested() Money {
	var total decimal.Decimal
	for _, a := range p.Assets {
		total = total.Add(a.TotalInvested())
	}
	return M(total, p.Currency)
}

// Held returns the assets with a strictly positive quantity.
func (p *Portfolio) Held() []*Asset {
	var held []*Asset
	for _, a := range p.Assets {
		if a.TotalQuantity().IsPositive() {
			held = append(held, a)
		}
	}
	return held
}

// Clone deep-copies the portfolio under a fresh ID, with " (Copy)" appended
// to the name. All asset and transaction IDs are renewed.
func (p *Portfolio) Clone() *Portfolio {
	c := &Portfolio{
		ID:          uuid.NewString(),
		Name:        p.Name + " (Copy)",
		Description: p.Description,
		Currency:    p.Currency,
		CreatedAt:   Now(),
		Assets:      make([]*Asset, 0, len(p.Assets)),
	}
	for _, a := range p.Assets {
		c.Assets = append(c.Assets, a.clone())
	}
	return c
}
