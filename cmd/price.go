package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/foliotrack/folio"
	"github.com/google/subcommands"
)

type priceCmd struct {
	ticker   string
	typ      string
	currency string
}

func (*priceCmd) Name() string     { return "price" }
func (*priceCmd) Synopsis() string { return "show the spot price of a ticker" }
func (*priceCmd) Usage() string {
	return `pft price -t <ticker> [-type crypto|stock] [-currency <code>]

  Fetches the current spot price. Crypto quotes come from Binance, stock
  quotes from Yahoo Finance; non-USD currencies are converted at spot FX.
`
}

func (c *priceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "t", "", "Ticker to quote, e.g. BTC or AAPL.")
	f.StringVar(&c.typ, "type", "crypto", "Asset type: crypto or stock.")
	f.StringVar(&c.currency, "currency", "USD", "Currency to quote in.")
}

func (c *priceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.ticker == "" {
		fmt.Fprintln(os.Stderr, "Error: -t is required")
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
	price := newMarketData(store).Price(c.ticker, typ, c.currency)
	if price == 0 {
		fmt.Fprintf(os.Stderr, "Error: no price available for %s\n", c.ticker)
		return subcommands.ExitFailure
	}
	fmt.Println(folio.M(price, c.currency))
	return subcommands.ExitSuccess
}
