package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/foliotrack/folio/renderer"
	"github.com/google/subcommands"
)

type showCmd struct {
	transactions string
}

func (*showCmd) Name() string     { return "show" }
func (*showCmd) Synopsis() string { return "show a portfolio's holdings and valuation" }
func (*showCmd) Usage() string {
	return `pft show <portfolio> [-tx <ticker>]

  Shows the holdings of a portfolio (by name or ID) valued at spot prices.
  With -tx, shows the transaction log of one asset instead.
`
}

func (c *showCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.transactions, "tx", "", "Show the transaction log of this ticker instead of the summary.")
}

func (c *showCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one portfolio name or ID")
		return subcommands.ExitUsageError
	}
	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	p, err := store.FindPortfolio(f.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if c.transactions != "" {
		a, ok := p.Asset(c.transactions)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: no asset %q in portfolio %q\n", c.transactions, p.Name)
			return subcommands.ExitFailure
		}
		printMarkdown(renderer.TransactionsMarkdown(a, p.Currency))
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.PortfolioMarkdown(p, newMarketData(store)))
	return subcommands.ExitSuccess
}
