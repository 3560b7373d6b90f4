package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/foliotrack/folio"
	"github.com/foliotrack/folio/renderer"
	"github.com/google/subcommands"
)

type whalesCmd struct{}

func (*whalesCmd) Name() string     { return "whales" }
func (*whalesCmd) Synopsis() string { return "show recent large crypto transactions" }
func (*whalesCmd) Usage() string {
	return `pft whales

  Shows large on-chain transactions from the last hour, via the Whale Alert
  feed. Falls back to a built-in sample when the feed is unreachable.
`
}

func (*whalesCmd) SetFlags(*flag.FlagSet) {}

func (c *whalesCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	txs := folio.NewWhaleClient().Recent()
	if len(txs) == 0 {
		fmt.Fprintln(os.Stderr, "Error: no whale transactions available")
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.WhalesMarkdown(txs, time.Now()))
	return subcommands.ExitSuccess
}
