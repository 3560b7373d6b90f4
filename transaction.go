package folio

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TxType is the kind of a recorded transaction.
type TxType string

const (
	Buy     TxType = "BUY"
	Sell    TxType = "SELL"
	Convert TxType = "CONVERT"
	Reward  TxType = "REWARD"
)

// ParseTxType parses a transaction type name, case-insensitively.
func ParseTxType(s string) (TxType, error) {
	switch TxType(strings.ToUpper(strings.TrimSpace(s))) {
	case Buy:
		return Buy, nil
	case Sell:
		return Sell, nil
	case Convert:
		return Convert, nil
	case Reward:
		return Reward, nil
	}
	return "", fmt.Errorf("unknown transaction type %q", s)
}

// Transaction records a single operation on an asset. Prices and fees are
// denominated in the owning portfolio's currency.
type Transaction struct {
	ID       string          `json:"id"`
	Type     TxType          `json:"type"`
	Quantity Quantity        `json:"quantity"`
	Price    decimal.Decimal `json:"pricePerUnit"`
	Date     DateTime        `json:"date"`
	Fees     decimal.Decimal `json:"fees"`
	Notes    string          `json:"notes,omitempty"`
}

// NewTransaction creates a transaction with a fresh ID.
func NewTransaction(typ TxType, quantity Quantity, price decimal.Decimal, on DateTime) Transaction {
	return Transaction{
		ID:       uuid.NewString(),
		Type:     typ,
		Quantity: quantity,
		Price:    price,
		Date:     on,
	}
}

// TotalCost is quantity x price + fees.
func (t Transaction) TotalCost() decimal.Decimal {
	return t.Quantity.value.Mul(t.Price).Add(t.Fees)
}

// Validate reports the first inconsistency that would corrupt derived
// position metrics.
func (t Transaction) Validate() error {
	if _, err := ParseTxType(string(t.Type)); err != nil {
		return err
	}
	if t.Quantity.IsNegative() {
		return fmt.Errorf("quantity cannot be negative, got %s", t.Quantity)
	}
	if t.Price.IsNegative() {
		return fmt.Errorf("price per unit cannot be negative, got %s", t.Price)
	}
	if t.Fees.IsNegative() {
		return fmt.Errorf("fees cannot be negative, got %s", t.Fees)
	}
	return nil
}
