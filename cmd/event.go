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

type addEventCmd struct {
	title       string
	description string
	date        string
	portfolio   string
}

func (*addEventCmd) Name() string     { return "add-event" }
func (*addEventCmd) Synopsis() string { return "record a dated note" }
func (*addEventCmd) Usage() string {
	return `pft add-event -title <title> [-desc <text>] [-date <date>] [-p <portfolio>]

  Records a dated note, globally or attached to a portfolio. Events show up
  in 'pft events' alongside your portfolio timeline.
`
}

func (c *addEventCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.title, "title", "", "Event title.")
	f.StringVar(&c.description, "desc", "", "Event description.")
	f.StringVar(&c.date, "date", "", "Event date-time (2006-01-02T15:04:05). Defaults to now.")
	f.StringVar(&c.portfolio, "p", "", "Portfolio to attach the event to. Empty means global.")
}

func (c *addEventCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.title == "" {
		fmt.Fprintln(os.Stderr, "Error: -title is required")
		return subcommands.ExitUsageError
	}
	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	on := folio.Now()
	if c.date != "" {
		if on, err = folio.ParseDateTime(c.date); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
	}
	portfolioID := ""
	if c.portfolio != "" {
		p, err := store.FindPortfolio(c.portfolio)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitFailure
		}
		portfolioID = p.ID
	}
	e := folio.NewEvent(c.title, c.description, on, portfolioID)
	if err := store.AddEvent(e); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Recorded event %s\n", e.ID)
	return subcommands.ExitSuccess
}

type eventsCmd struct {
	portfolio string
}

func (*eventsCmd) Name() string     { return "events" }
func (*eventsCmd) Synopsis() string { return "list recorded events" }
func (*eventsCmd) Usage() string {
	return `pft events [-p <portfolio>]

  Lists recorded events. With -p, shows global events plus the ones attached
  to that portfolio.
`
}

func (c *eventsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.portfolio, "p", "", "Portfolio to filter by.")
}

func (c *eventsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	events, err := store.LoadEvents()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if c.portfolio != "" {
		p, err := store.FindPortfolio(c.portfolio)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitFailure
		}
		events = folio.EventsFor(events, p.ID)
	}
	printMarkdown(renderer.EventsMarkdown(events))
	return subcommands.ExitSuccess
}

type rmEventCmd struct{}

func (*rmEventCmd) Name() string     { return "rm-event" }
func (*rmEventCmd) Synopsis() string { return "remove an event" }
func (*rmEventCmd) Usage() string {
	return `pft rm-event <event-id>

  Removes an event by ID. IDs are listed by 'pft events'.
`
}

func (*rmEventCmd) SetFlags(*flag.FlagSet) {}

func (c *rmEventCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one event ID is required")
		return subcommands.ExitUsageError
	}
	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	events, err := store.LoadEvents()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	remaining, removed := folio.RemoveEvent(events, f.Arg(0))
	if !removed {
		fmt.Fprintf(os.Stderr, "Error: no event %q\n", f.Arg(0))
		return subcommands.ExitFailure
	}
	if err := store.SaveEvents(remaining); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Removed event %s\n", f.Arg(0))
	return subcommands.ExitSuccess
}
