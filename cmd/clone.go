package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type cloneCmd struct{}

func (*cloneCmd) Name() string     { return "clone" }
func (*cloneCmd) Synopsis() string { return "duplicate a portfolio" }
func (*cloneCmd) Usage() string {
	return `pft clone <portfolio>

  Deep-copies a portfolio under a fresh ID, with " (Copy)" appended to its
  name. Useful to experiment without touching the original.
`
}

func (*cloneCmd) SetFlags(*flag.FlagSet) {}

func (c *cloneCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	clone := p.Clone()
	if err := store.SavePortfolio(clone); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Cloned %q into %q (%s)\n", p.Name, clone.Name, clone.ID)
	return subcommands.ExitSuccess
}
