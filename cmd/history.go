package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/foliotrack/folio"
	"github.com/foliotrack/folio/renderer"
	"github.com/google/subcommands"
)

type historyCmd struct {
	portfolio string
	ticker    string
	typ       string
	currency  string
	days      int
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "show the price history of a ticker" }
func (*historyCmd) Usage() string {
	return `pft history -t <ticker> [-p <portfolio>] [-type crypto|stock] [-days <n>]

  Shows the closing price series of a ticker. When -p is given the asset type
  and currency come from the portfolio.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.portfolio, "p", "", "Portfolio to resolve the ticker against.")
	f.StringVar(&c.ticker, "t", "", "Ticker to report on.")
	f.StringVar(&c.typ, "type", "crypto", "Asset type when no portfolio is given.")
	f.StringVar(&c.currency, "currency", "USD", "Currency when no portfolio is given.")
	f.IntVar(&c.days, "days", folio.AnalysisDays, "Number of days of history.")
}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.ticker == "" {
		fmt.Fprintln(os.Stderr, "Error: -t is required")
		return subcommands.ExitUsageError
	}
	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	typ, currency := folio.Crypto, c.currency
	if c.portfolio != "" {
		p, err := store.FindPortfolio(c.portfolio)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitFailure
		}
		a, ok := p.Asset(c.ticker)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: no asset %q in portfolio %q\n", c.ticker, p.Name)
			return subcommands.ExitFailure
		}
		typ, currency = a.Type, p.Currency
	} else if typ, err = folio.ParseAssetType(c.typ); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	points := newMarketData(store).History(c.ticker, typ, currency, c.days)
	if len(points) == 0 {
		fmt.Fprintf(os.Stderr, "Error: no history available for %s\n", c.ticker)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.HistoryMarkdown(c.ticker, currency, points))
	return subcommands.ExitSuccess
}
