package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/foliotrack/folio"
	"github.com/google/subcommands"
)

type createCmd struct {
	name        string
	description string
	currency    string
}

func (*createCmd) Name() string     { return "create" }
func (*createCmd) Synopsis() string { return "create a new portfolio" }
func (*createCmd) Usage() string {
	return `pft create -name <name> [-currency <code>] [-desc <description>]

  Creates an empty portfolio valued in the given currency.
`
}

func (c *createCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Name of the portfolio.")
	f.StringVar(&c.description, "desc", "", "Optional description.")
	f.StringVar(&c.currency, "currency", "USD", "ISO-4217 currency code the portfolio is valued in.")
}

func (c *createCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		fmt.Fprintln(os.Stderr, "Error: -name is required")
		return subcommands.ExitUsageError
	}
	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	p, err := folio.NewPortfolio(c.name, c.description, c.currency)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	if err := store.SavePortfolio(p); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Created portfolio %q (%s)\n", p.Name, p.ID)
	return subcommands.ExitSuccess
}
