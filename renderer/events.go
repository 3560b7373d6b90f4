package renderer

import (
	"bytes"

	"github.com/foliotrack/folio"
	md "github.com/nao1215/markdown"
)

// EventsMarkdown renders an event list, global first by date.
func EventsMarkdown(events []folio.Event) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Events")
	if len(events) == 0 {
		doc.PlainText("No events recorded.")
		return doc.String()
	}

	table := md.TableSet{
		Header: []string{"Date", "Title", "Scope", "ID"},
		Rows:   [][]string{},
	}
	for _, e := range events {
		scope := "global"
		if !e.IsGlobal() {
			scope = e.PortfolioID
		}
		table.Rows = append(table.Rows, []string{
			e.Date.String(),
			e.Title,
			scope,
			e.ID,
		})
	}
	doc.Table(table)
	return doc.String()
}
