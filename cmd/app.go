// Package cmd implements the pft CLI to manage portfolios.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/foliotrack/folio"
	"github.com/foliotrack/folio/renderer"
	"github.com/google/subcommands"
)

// Commands is the full command set. A main package registers them all and
// executes the user-selected one.
var Commands = []subcommands.Command{
	&createCmd{},
	&listCmd{},
	&showCmd{},
	&deleteCmd{},
	&cloneCmd{},
	&addAssetCmd{},
	newBuyCmd(),
	newSellCmd(),
	newRewardCmd(),
	newConvertCmd(),
	&importCmd{},
	&priceCmd{},
	&historyCmd{},
	&analyzeCmd{},
	&whalesCmd{},
	&addEventCmd{},
	&eventsCmd{},
	&rmEventCmd{},
	&demoCmd{},
	&chartCmd{},
	&watchCmd{},
	&assistCmd{},
	&topicCmd{},
}

// as a CLI application it is short lived, so global flags are fine.

var dataDir = flag.String("data", defaultDataDir(), "Path to the folio data directory")
var verbose = flag.Bool("v", false, "Enable verbose logging")

func defaultDataDir() string {
	if dir := os.Getenv("FOLIO_DATA"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".folio"
	}
	return filepath.Join(home, ".folio")
}

// openStore opens the data directory with the cipher configured by
// FOLIO_ENCRYPTION and FOLIO_PASSPHRASE. No passphrase means plaintext.
func openStore() (*folio.Store, error) {
	if *verbose {
		folio.SetVerbose()
	}
	scheme := os.Getenv("FOLIO_ENCRYPTION")
	secret := os.Getenv("FOLIO_PASSPHRASE")
	if scheme == "" && secret == "" {
		return folio.NewStore(*dataDir, nil), nil
	}
	cipher, err := folio.NewCipher(scheme, secret)
	if err != nil {
		return nil, fmt.Errorf("configuring encryption: %w", err)
	}
	return folio.NewStore(*dataDir, cipher), nil
}

// newMarketData wires the live market data service over the store's daily
// price cache.
func newMarketData(s *folio.Store) *folio.MarketData {
	return folio.NewLiveMarketData(folio.NewDailyCache(s.CacheDir()))
}

// printMarkdown renders a markdown report to stdout with terminal styling.
func printMarkdown(doc string) {
	fmt.Print(renderer.Terminal(doc))
}
