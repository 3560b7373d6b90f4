package renderer

import (
	"bytes"
	"fmt"

	"github.com/foliotrack/folio"
	md "github.com/nao1215/markdown"
)

// HistoryMarkdown renders a price history series for one ticker.
func HistoryMarkdown(ticker, currency string, points []folio.PricePoint) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("History for %s (%s)", ticker, currency))

	if len(points) == 0 {
		doc.PlainText("No price history available.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Date", "Price", "Change"},
		Rows:   [][]string{},
	}
	for i, pt := range points {
		change := "-"
		if i > 0 && points[i-1].Price > 0 {
			change = folio.Percent((pt.Price/points[i-1].Price - 1) * 100).SignedString()
		}
		table.Rows = append(table.Rows, []string{
			pt.At.Format("2006-01-02 15:04"),
			folio.M(pt.Price, currency).String(),
			change,
		})
	}
	doc.Table(table)
	return doc.String()
}
