package folio

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AssetType is the market an asset trades on, which selects the quote source.
type AssetType string

const (
	Crypto AssetType = "CRYPTO"
	Stock  AssetType = "STOCK"
)

// ParseAssetType parses an asset type name, case-insensitively.
func ParseAssetType(s string) (AssetType, error) {
	switch AssetType(strings.ToUpper(strings.TrimSpace(s))) {
	case Crypto:
		return Crypto, nil
	case Stock:
		return Stock, nil
	}
	return "", fmt.Errorf("unknown asset type %q", s)
}

// Asset is a position in a portfolio, described entirely by its transaction
// log. The log is ordered as recorded; chronology is not enforced.
type Asset struct {
	ID           string        `json:"id"`
	Ticker       string        `json:"ticker"`
	Name         string        `json:"name"`
	Type         AssetType     `json:"type"`
	Transactions []Transaction `json:"transactions"`
}

// NewAsset creates an asset with a fresh ID and an upper-cased ticker.
func NewAsset(ticker, name string, typ AssetType) *Asset {
	return &Asset{
		ID:     uuid.NewString(),
		Ticker: strings.ToUpper(strings.TrimSpace(ticker)),
		Name:   name,
		Type:   typ,
	}
}

// Add appends a transaction to the asset's log.
func (a *Asset) Add(tx Transaction) { a.Transactions = append(a.Transactions, tx) }

// TotalQuantity is the currently held quantity: buys and rewards add,
// sells subtract. Conversions move value between assets and leave the
// quantity of this one untouched.
func (a *Asset) TotalQuantity() Quantity {
	var total decimal.Decimal
	for _, tx := range a.Transactions {
		switch tx.Type {
		case Buy, Reward:
			total = total.Add(tx.Quantity.value)
		case Sell:
			total = total.Sub(tx.Quantity.value)
		}
	}
	return Quantity{value: total}
}

// AverageBuyPrice is the quantity-weighted mean price over BUY transactions
// only, or zero when the asset has no buys.
func (a *Asset) AverageBuyPrice() decimal.Decimal {
	var cost, qty decimal.Decimal
	for _, tx := range a.Transactions {
		if tx.Type != Buy {
			continue
		}
		cost = cost.Add(tx.Quantity.value.Mul(tx.Price))
		qty = qty.Add(tx.Quantity.value)
	}
	if qty.IsZero() {
		return decimal.Zero
	}
	return cost.Div(qty)
}

// TotalInvested is the sum of cost (quantity x price + fees) over BUY
// transactions. Sells do not reduce it.
func (a *Asset) TotalInvested() decimal.Decimal {
	var total decimal.Decimal
	for _, tx := range a.Transactions {
		if tx.Type != Buy {
			continue
		}
		total = total.Add(tx.TotalCost())
	}
	return total
}

// RealizedGain is the profit locked in by SELL transactions, priced against
// the average buy price, net of sell fees.
func (a *Asset) RealizedGain() decimal.Decimal {
	avg := a.AverageBuyPrice()
	var total decimal.Decimal
	for _, tx := range a.Transactions {
		if tx.Type != Sell {
			continue
		}
		gain := tx.Quantity.value.Mul(tx.Price.Sub(avg)).Sub(tx.Fees)
		total = total.Add(gain)
	}
	return total
}

// clone deep-copies the asset with fresh IDs.
func (a *Asset) clone() *Asset {
	c := &Asset{
		ID:           uuid.NewString(),
		Ticker:       a.Ticker,
		Name:         a.Name,
		Type:         a.Type,
		Transactions: make([]Transaction, len(a.Transactions)),
	}
	copy(c.Transactions, a.Transactions)
	for i := range c.Transactions {
		c.Transactions[i].ID = uuid.NewString()
	}
	return c
}
