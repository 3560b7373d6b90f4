package renderer

import (
	"bytes"
	"fmt"

	"github.com/foliotrack/folio"
	md "github.com/nao1215/markdown"
)

// Transaction renders a transaction to a one-line string.
func Transaction(ticker, currency string, tx folio.Transaction) string {
	switch tx.Type {
	case folio.Buy:
		return fmt.Sprintf("Bought %s %s at %s", tx.Quantity, ticker, folio.M(tx.Price, currency))
	case folio.Sell:
		return fmt.Sprintf("Sold %s %s at %s", tx.Quantity, ticker, folio.M(tx.Price, currency))
	case folio.Reward:
		return fmt.Sprintf("Received %s %s as reward", tx.Quantity, ticker)
	case folio.Convert:
		return fmt.Sprintf("Converted %s %s", tx.Quantity, ticker)
	default:
		return string(tx.Type)
	}
}

// TransactionsMarkdown renders the transaction log of one asset.
func TransactionsMarkdown(a *folio.Asset, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Transactions for %s", a.Ticker))

	if len(a.Transactions) == 0 {
		doc.PlainText("No transactions recorded.")
		return doc.String()
	}

	table := md.TableSet{
		Header: []string{"Date", "Type", "Quantity", "Price", "Fees", "Total", "Notes"},
		Rows:   [][]string{},
	}
	for _, tx := range a.Transactions {
		table.Rows = append(table.Rows, []string{
			tx.Date.String(),
			string(tx.Type),
			tx.Quantity.String(),
			folio.M(tx.Price, currency).String(),
			folio.M(tx.Fees, currency).String(),
			folio.M(tx.TotalCost(), currency).String(),
			tx.Notes,
		})
	}
	doc.Table(table)
	return doc.String()
}
