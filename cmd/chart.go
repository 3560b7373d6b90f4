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

type chartCmd struct {
	portfolio string
	days      int
	output    string
}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "render a portfolio value chart to a PNG" }
func (*chartCmd) Usage() string {
	return `pft chart -p <portfolio> [-days <n>] [-o <file.png>]

  Renders the portfolio value series over the last days as a PNG image.
`
}

func (c *chartCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.portfolio, "p", "", "Portfolio name or ID.")
	f.IntVar(&c.days, "days", folio.AnalysisDays, "Number of days to chart.")
	f.StringVar(&c.output, "o", "chart.png", "Output PNG file.")
}

func (c *chartCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	if a.Empty() {
		fmt.Fprintln(os.Stderr, "Error: not enough price history to chart")
		return subcommands.ExitFailure
	}

	file, err := os.Create(c.output)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	defer file.Close()
	title := fmt.Sprintf("%s (%s)", p.Name, p.Currency)
	if err := renderer.ValueChart(title, a.Points, file); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Wrote %s\n", c.output)
	return subcommands.ExitSuccess
}
