// Command pft is a portfolio tracker for crypto and stock assets.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/foliotrack/folio/cmd"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/posener/complete/v2"
)

func main() {
	// Optional .env next to the binary for API keys and encryption settings.
	_ = godotenv.Load()

	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion handles shell completion requests and exits when invoked as a
// completer (COMP_LINE is set). Install with 'COMP_INSTALL=1 pft'.
func completion() {
	sub := make(map[string]*complete.Command, len(cmd.Commands))
	for _, c := range cmd.Commands {
		sub[c.Name()] = &complete.Command{}
	}
	complete.Complete("pft", &complete.Command{Sub: sub})
}
