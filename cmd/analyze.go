package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/foliotrack/folio"
	"github.com/foliotrack/folio/renderer"
	"github.com/google/subcommands"
)

type analyzeCmd struct {
	portfolio string
	days      int
}

func (*analyzeCmd) Name() string     { return "analyze" }
func (*analyzeCmd) Synopsis() string { return "analyze a portfolio's value over time" }
func (*analyzeCmd) Usage() string {
	return `pft analyze -p <portfolio> [-days <n>]

  Computes the portfolio value series over the last days, with best and worst
  daily swings, per-asset ROI and allocation.
`
}

func (c *analyzeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.portfolio, "p", "", "Portfolio name or ID.")
	f.IntVar(&c.days, "days", folio.AnalysisDays, "Number of days to analyze.")
}

func (c *analyzeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	a := folio.Analyze(p, newMarketData(store), c.days)
	printMarkdown(renderer.AnalysisMarkdown(p.Name, a))
	return subcommands.ExitSuccess
}
