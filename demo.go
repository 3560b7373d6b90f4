package folio

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
)

//go:embed demo/*.json
var demoFS embed.FS

// demoPrefix marks portfolios and events that belong to the demo dataset.
const demoPrefix = "demo-"

// IsDemo reports whether an ID belongs to the demo dataset.
func IsDemo(id string) bool { return strings.HasPrefix(id, demoPrefix) }

// LoadDemo writes the embedded demo portfolios and events into the store,
// replacing any previous demo data.
func LoadDemo(s *Store) error {
	data, err := demoFS.ReadFile("demo/portfolios.json")
	if err != nil {
		return err
	}
	var portfolios []*Portfolio
	if err := json.Unmarshal(data, &portfolios); err != nil {
		return fmt.Errorf("decoding demo portfolios: %w", err)
	}
	for _, p := range portfolios {
		if err := s.SavePortfolio(p); err != nil {
			return err
		}
	}

	data, err = demoFS.ReadFile("demo/events.json")
	if err != nil {
		return err
	}
	var demoEvents []Event
	if err := json.Unmarshal(data, &demoEvents); err != nil {
		return fmt.Errorf("decoding demo events: %w", err)
	}
	events, err := s.LoadEvents()
	if err != nil {
		return err
	}
	kept := events[:0]
	for _, e := range events {
		if !IsDemo(e.ID) {
			kept = append(kept, e)
		}
	}
	return s.SaveEvents(append(kept, demoEvents...))
}

// RemoveDemo deletes all demo portfolios and events from the store.
func RemoveDemo(s *Store) error {
	for _, p := range s.LoadAllPortfolios() {
		if IsDemo(p.ID) {
			if err := s.DeletePortfolio(p.ID); err != nil {
				return err
			}
		}
	}
	events, err := s.LoadEvents()
	if err != nil {
		return err
	}
	kept := events[:0]
	for _, e := range events {
		if !IsDemo(e.ID) {
			kept = append(kept, e)
		}
	}
	return s.SaveEvents(kept)
}

// IsDemoLoaded reports whether any demo portfolio is currently stored.
func IsDemoLoaded(s *Store) bool {
	for _, p := range s.LoadAllPortfolios() {
		if IsDemo(p.ID) {
			return true
		}
	}
	return false
}
