package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/foliotrack/folio"
	"github.com/google/subcommands"
)

type demoCmd struct {
	remove bool
}

func (*demoCmd) Name() string     { return "demo" }
func (*demoCmd) Synopsis() string { return "load or remove the demo portfolios" }
func (*demoCmd) Usage() string {
	return `pft demo [-rm]

  Loads a set of sample portfolios to explore the tool with. -rm removes
  them again, leaving your own portfolios untouched.
`
}

func (c *demoCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.remove, "rm", false, "Remove the demo portfolios.")
}

func (c *demoCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if c.remove {
		if err := folio.RemoveDemo(store); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitFailure
		}
		fmt.Println("Demo portfolios removed")
		return subcommands.ExitSuccess
	}
	if folio.IsDemoLoaded(store) {
		fmt.Println("Demo portfolios already loaded")
		return subcommands.ExitSuccess
	}
	if err := folio.LoadDemo(store); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Println("Demo portfolios loaded, try 'pft list'")
	return subcommands.ExitSuccess
}
