package renderer

import (
	"bytes"
	"fmt"
	"time"

	"github.com/foliotrack/folio"
	md "github.com/nao1215/markdown"
)

// WhalesMarkdown renders recent whale activity with aggregate stats.
func WhalesMarkdown(txs []folio.WhaleTransaction, now time.Time) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Whale Activity")

	if len(txs) == 0 {
		doc.PlainText("No large transactions in the last hour.")
		return doc.String()
	}

	stats := folio.WhaleStatsOf(txs)
	doc.PlainText(fmt.Sprintf("%d transactions, $%.1fM total volume, most active: %s",
		stats.Count, stats.TotalUSD/1_000_000, stats.TopToken))

	table := md.TableSet{
		Header: []string{"Age", "Amount", "USD", "Type", "From"},
		Rows:   [][]string{},
	}
	for _, tx := range txs {
		table.Rows = append(table.Rows, []string{
			tx.Age(now),
			tx.FormattedAmount(),
			tx.FormattedUSD(),
			tx.FormattedType(),
			tx.FromOwner,
		})
	}
	doc.Table(table)
	return doc.String()
}
