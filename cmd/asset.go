package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/foliotrack/folio"
	"github.com/google/subcommands"
)

type addAssetCmd struct {
	portfolio string
	ticker    string
	name      string
	typ       string
}

func (*addAssetCmd) Name() string     { return "add-asset" }
func (*addAssetCmd) Synopsis() string { return "add an asset to a portfolio" }
func (*addAssetCmd) Usage() string {
	return `pft add-asset -p <portfolio> -t <ticker> [-name <name>] [-type crypto|stock]

  Adds an empty asset to a portfolio. Recording a transaction with buy/sell
  creates assets implicitly, so this is only needed to pre-declare one.
`
}

func (c *addAssetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.portfolio, "p", "", "Portfolio name or ID.")
	f.StringVar(&c.ticker, "t", "", "Asset ticker, e.g. BTC or AAPL.")
	f.StringVar(&c.name, "name", "", "Display name. Defaults to the ticker.")
	f.StringVar(&c.typ, "type", "crypto", "Asset type: crypto or stock.")
}

func (c *addAssetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.portfolio == "" || c.ticker == "" {
		fmt.Fprintln(os.Stderr, "Error: -p and -t are required")
		return subcommands.ExitUsageError
	}
	typ, err := folio.ParseAssetType(c.typ)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	p, err := store.FindPortfolio(c.portfolio)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	name := c.name
	if name == "" {
		name = c.ticker
	}
	if err := p.AddAsset(folio.NewAsset(c.ticker, name, typ)); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	if err := store.SavePortfolio(p); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Added %s asset %s to %q\n", typ, c.ticker, p.Name)
	return subcommands.ExitSuccess
}
