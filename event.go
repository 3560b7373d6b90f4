package folio

import (
	"sort"

	"github.com/google/uuid"
)

// Event is a dated note, either global (empty PortfolioID, shown for every
// portfolio) or scoped to a single portfolio.
type Event struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Date        DateTime `json:"date"`
	PortfolioID string   `json:"portfolioId,omitempty"`
}

// NewEvent creates an event with a fresh ID. An empty portfolioID makes the
// event global.
func NewEvent(title, description string, on DateTime, portfolioID string) Event {
	return Event{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		Date:        on,
		PortfolioID: portfolioID,
	}
}

// IsGlobal reports whether the event applies to every portfolio.
func (e Event) IsGlobal() bool { return e.PortfolioID == "" }

// EventsFor returns the global events plus those scoped to portfolioID,
// sorted by date.
func EventsFor(events []Event, portfolioID string) []Event {
	var out []Event
	for _, e := range events {
		if e.IsGlobal() || e.PortfolioID == portfolioID {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date.Time) })
	return out
}

// RemoveEvent deletes the event with the given ID and reports whether it
// was present.
func RemoveEvent(events []Event, id string) ([]Event, bool) {
	for i, e := range events {
		if e.ID == id {
			return append(events[:i], events[i+1:]...), true
		}
	}
	return events, false
}
