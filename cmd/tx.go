package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/foliotrack/folio"
	"github.com/foliotrack/folio/renderer"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// txCmd is the shared implementation of buy, sell, reward and convert: they
// only differ by the recorded transaction type.
type txCmd struct {
	kind     folio.TxType
	synopsis string

	portfolio string
	ticker    string
	quantity  string
	price     string
	fees      string
	date      string
	notes     string
	typ       string
}

func newBuyCmd() *txCmd {
	return &txCmd{kind: folio.Buy, synopsis: "record a purchase"}
}
func newSellCmd() *txCmd {
	return &txCmd{kind: folio.Sell, synopsis: "record a sale"}
}
func newRewardCmd() *txCmd {
	return &txCmd{kind: folio.Reward, synopsis: "record a reward (staking income, airdrop)"}
}
func newConvertCmd() *txCmd {
	return &txCmd{kind: folio.Convert, synopsis: "record a conversion (does not change the held quantity)"}
}

func (c *txCmd) Name() string {
	switch c.kind {
	case folio.Buy:
		return "buy"
	case folio.Sell:
		return "sell"
	case folio.Reward:
		return "reward"
	default:
		return "convert"
	}
}

func (c *txCmd) Synopsis() string { return c.synopsis }

func (c *txCmd) Usage() string {
	return fmt.Sprintf(`pft %s -p <portfolio> -t <ticker> -q <quantity> [-price <price>] [-fees <fees>] [-date <date>] [-notes <text>]

  Records a %s transaction on an asset. A new ticker creates the asset
  (crypto by default, see -type).
`, c.Name(), c.kind)
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.portfolio, "p", "", "Portfolio name or ID.")
	f.StringVar(&c.ticker, "t", "", "Asset ticker, e.g. BTC or AAPL.")
	f.StringVar(&c.quantity, "q", "", "Quantity transacted.")
	f.StringVar(&c.price, "price", "0", "Price per unit in the portfolio currency.")
	f.StringVar(&c.fees, "fees", "0", "Fees in the portfolio currency.")
	f.StringVar(&c.date, "date", "", "Transaction date-time (2006-01-02T15:04:05). Defaults to now.")
	f.StringVar(&c.notes, "notes", "", "Free-form notes.")
	f.StringVar(&c.typ, "type", "crypto", "Asset type when the ticker is new: crypto or stock.")
}

func (c *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.portfolio == "" || c.ticker == "" || c.quantity == "" {
		fmt.Fprintln(os.Stderr, "Error: -p, -t and -q are required")
		return subcommands.ExitUsageError
	}
	quantity, err := folio.ParseQuantity(c.quantity)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid quantity %q: %v\n", c.quantity, err)
		return subcommands.ExitUsageError
	}
	if !quantity.IsPositive() {
		fmt.Fprintf(os.Stderr, "Error: quantity must be positive, got %s\n", quantity)
		return subcommands.ExitUsageError
	}
	price, err := decimal.NewFromString(c.price)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid price %q: %v\n", c.price, err)
		return subcommands.ExitUsageError
	}
	fees, err := decimal.NewFromString(c.fees)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid fees %q: %v\n", c.fees, err)
		return subcommands.ExitUsageError
	}
	typ, err := folio.ParseAssetType(c.typ)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	on := folio.Now()
	if c.date != "" {
		if on, err = folio.ParseDateTime(c.date); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
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

	tx := folio.NewTransaction(c.kind, quantity, price, on)
	tx.Fees = fees
	tx.Notes = c.notes
	if err := p.Record(c.ticker, typ, tx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	if err := store.SavePortfolio(p); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	fmt.Println(renderer.Transaction(c.ticker, p.Currency, tx))
	return subcommands.ExitSuccess
}
