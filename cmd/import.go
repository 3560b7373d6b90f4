package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/foliotrack/folio"
	"github.com/google/subcommands"
)

type importCmd struct {
	portfolio string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import a Coinbase transaction export" }
func (*importCmd) Usage() string {
	return `pft import -p <portfolio> <file.csv>

  Imports a Coinbase CSV transaction report into a portfolio. Malformed rows
  are skipped; see 'pft topic import' for the details.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.portfolio, "p", "", "Portfolio name or ID to import into.")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.portfolio == "" || f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: -p and exactly one CSV file are required")
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

	file, err := os.Open(f.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	defer file.Close()

	n, err := folio.ImportCoinbase(p, file)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := store.SavePortfolio(p); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Imported %d transactions into %q\n", n, p.Name)
	return subcommands.ExitSuccess
}
