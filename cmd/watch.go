package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/foliotrack/folio"
	"github.com/foliotrack/folio/renderer"
	"github.com/google/subcommands"
	"github.com/robfig/cron/v3"
)

type watchCmd struct {
	portfolio string
	every     string
}

func (*watchCmd) Name() string     { return "watch" }
func (*watchCmd) Synopsis() string { return "periodically refresh and print a portfolio" }
func (*watchCmd) Usage() string {
	return `pft watch -p <portfolio> [-every <interval>]

  Prints the portfolio report, then refreshes prices and prints it again on
  the given interval (e.g. 30s, 5m) until interrupted.
`
}

func (c *watchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.portfolio, "p", "", "Portfolio name or ID.")
	f.StringVar(&c.every, "every", "1m", "Refresh interval, e.g. 30s or 5m.")
}

func (c *watchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.portfolio == "" {
		fmt.Fprintln(os.Stderr, "Error: -p is required")
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
	md := newMarketData(store)

	refresh := func() {
		md.ClearCache()
		printMarkdown(renderer.PortfolioMarkdown(p, md))
	}
	refresh()

	scheduler := cron.New()
	if _, err := scheduler.AddFunc("@every "+c.every, refresh); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid interval %q: %v\n", c.every, err)
		return subcommands.ExitUsageError
	}
	scheduler.Start()
	defer scheduler.Stop()

	folio.Log.Info().Str("every", c.every).Msg("watching, press Ctrl-C to stop")
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	return subcommands.ExitSuccess
}
