package renderer

import (
	"bytes"
	"fmt"

	"github.com/foliotrack/folio"
	md "github.com/nao1215/markdown"
)

// PortfolioMarkdown renders a portfolio summary: identity, holdings with
// spot valuation, and the invested total.
func PortfolioMarkdown(p *folio.Portfolio, m *folio.MarketData) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Portfolio %s (%s)", p.Name, p.Currency))
	if p.Description != "" {
		doc.PlainText(p.Description)
	}

	held := p.Held()
	if len(held) == 0 {
		doc.PlainText("No assets held.")
		return doc.String()
	}

	table := md.TableSet{
		Header: []string{"Ticker", "Type", "Quantity", "Avg Buy", "Spot", "Value"},
		Rows:   [][]string{},
	}
	var total float64
	for _, a := range held {
		spot := m.Price(a.Ticker, a.Type, p.Currency)
		value := a.TotalQuantity().AsFloat() * spot
		total += value
		table.Rows = append(table.Rows, []string{
			a.Ticker,
			string(a.Type),
			a.TotalQuantity().String(),
			folio.M(a.AverageBuyPrice(), p.Currency).String(),
			folio.M(spot, p.Currency).String(),
			folio.M(value, p.Currency).String(),
		})
	}
	doc.Table(table)

	doc.PlainText(fmt.Sprintf("Total Value: %s", folio.M(total, p.Currency)))
	doc.PlainText(fmt.Sprintf("Total Invested: %s", p.TotalInvested()))

	return doc.String()
}

// ListMarkdown renders the one-line-per-portfolio overview.
func ListMarkdown(portfolios []*folio.Portfolio) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Portfolios")
	if len(portfolios) == 0 {
		doc.PlainText("No portfolios. Create one with `pft create`.")
		return doc.String()
	}

	table := md.TableSet{
		Header: []string{"Name", "Currency", "Assets", "Created", "ID"},
		Rows:   [][]string{},
	}
	for _, p := range portfolios {
		table.Rows = append(table.Rows, []string{
			p.Name,
			p.Currency,
			fmt.Sprintf("%d", len(p.Assets)),
			p.CreatedAt.String(),
			p.ID,
		})
	}
	doc.Table(table)
	return doc.String()
}
