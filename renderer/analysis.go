package renderer

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/foliotrack/folio"
	md "github.com/nao1215/markdown"
)

// AnalysisMarkdown renders the valuation analysis of a portfolio.
func AnalysisMarkdown(name string, a *folio.Analysis) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Analysis of %s", name))

	if a.Empty() {
		doc.PlainText("Not enough price history to analyse this portfolio.")
		renderSpotMetrics(doc, a)
		return doc.String()
	}

	doc.PlainText(fmt.Sprintf("Current Value: %s", a.Value))
	doc.PlainText(fmt.Sprintf("Total Invested: %s", a.Invested))
	doc.PlainText(fmt.Sprintf("Profit/Loss: %s (%s)", a.ProfitLoss.SignedString(), a.TotalROI.SignedString()))
	doc.PlainText(fmt.Sprintf("Realized: %s, Unrealized: %s", a.Realized.SignedString(), a.Unrealized.SignedString()))

	doc.H2("Trend")
	doc.Table(md.TableSet{
		Header: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Change over window", a.Change.SignedString()},
			{"Up days", fmt.Sprintf("%d", a.ProfitDays)},
			{"Down days", fmt.Sprintf("%d", a.LossDays)},
			{"Best swing", fmt.Sprintf("%s on %s", a.Best.Change.SignedString(), a.Best.At.Format("2006-01-02"))},
			{"Worst swing", fmt.Sprintf("%s on %s", a.Worst.Change.SignedString(), a.Worst.At.Format("2006-01-02"))},
		},
	})

	renderSpotMetrics(doc, a)
	return doc.String()
}

// renderSpotMetrics renders the ROI and allocation sections, which are
// available even when the value series is too short.
func renderSpotMetrics(doc *md.Markdown, a *folio.Analysis) {
	if len(a.ROI) == 0 {
		return
	}

	tickers := make([]string, 0, len(a.ROI))
	for ticker := range a.ROI {
		tickers = append(tickers, ticker)
	}
	sort.Strings(tickers)

	doc.H2("Return on Investment")
	roi := md.TableSet{
		Header: []string{"Ticker", "ROI", "Allocation"},
		Rows:   [][]string{},
	}
	for _, ticker := range tickers {
		roi.Rows = append(roi.Rows, []string{
			ticker,
			a.ROI[ticker].SignedString(),
			a.ByAsset[ticker].String(),
		})
	}
	doc.Table(roi)

	doc.H2("Allocation by Type")
	doc.Table(md.TableSet{
		Header: []string{"Type", "Share"},
		Rows: [][]string{
			{string(folio.Crypto), a.ByType[folio.Crypto].String()},
			{string(folio.Stock), a.ByType[folio.Stock].String()},
		},
	})
}
