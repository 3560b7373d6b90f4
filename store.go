package folio

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const encSuffix = ".enc"

// Store persists portfolios and events as JSON documents under a data
// directory:
//
//	<dir>/portfolios/<id>.json        plaintext portfolio
//	<dir>/portfolios/<id>.json.enc    encrypted portfolio
//	<dir>/events.json                 all events
//	<dir>/cache/<ticker>_cache.json   daily price cache (see DailyCache)
//
// There is no cross-process coordination: the last writer wins.
type Store struct {
	dir    string
	cipher Cipher
}

// NewStore creates a store rooted at dir. A nil cipher stores portfolios in
// plaintext.
func NewStore(dir string, cipher Cipher) *Store {
	return &Store{dir: dir, cipher: cipher}
}

// Dir returns the root data directory.
func (s *Store) Dir() string { return s.dir }

// CacheDir returns the directory holding the daily price cache files.
func (s *Store) CacheDir() string { return filepath.Join(s.dir, "cache") }

func (s *Store) portfolioDir() string { return filepath.Join(s.dir, "portfolios") }

func (s *Store) portfolioPath(id string) string {
	return filepath.Join(s.portfolioDir(), id+".json")
}

// SavePortfolio writes the portfolio document, encrypted when a cipher is
// configured. The stale twin variant (plaintext vs encrypted) is removed so
// a later load cannot resurrect an old state.
func (s *Store) SavePortfolio(p *Portfolio) error {
	if err := os.MkdirAll(s.portfolioDir(), 0o755); err != nil {
		return fmt.Errorf("creating portfolio directory: %w", err)
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding portfolio %q: %w", p.Name, err)
	}
	path := s.portfolioPath(p.ID)
	stale := path + encSuffix
	if s.cipher != nil {
		if data, err = s.cipher.Encrypt(data); err != nil {
			return fmt.Errorf("encrypting portfolio %q: %w", p.Name, err)
		}
		path, stale = path+encSuffix, path
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing portfolio %q: %w", p.Name, err)
	}
	os.Remove(stale)
	return nil
}

// LoadPortfolio reads one portfolio by ID, preferring the encrypted variant
// when a cipher is configured.
func (s *Store) LoadPortfolio(id string) (*Portfolio, error) {
	path := s.portfolioPath(id)
	if s.cipher != nil {
		if _, err := os.Stat(path + encSuffix); err == nil {
			path += encSuffix
		}
	}
	return s.loadPortfolioFile(path)
}

func (s *Store) loadPortfolioFile(path string) (*Portfolio, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if strings.HasSuffix(path, encSuffix) {
		if s.cipher == nil {
			return nil, fmt.Errorf("portfolio %q is encrypted but no cipher is configured", path)
		}
		if data, err = s.cipher.Decrypt(data); err != nil {
			return nil, fmt.Errorf("decrypting %q: %w", path, err)
		}
	}
	var p Portfolio
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decoding %q: %w", path, err)
	}
	return &p, nil
}

// LoadAllPortfolios scans the portfolio directory and returns every document
// that loads cleanly, sorted by name. Unreadable or corrupt files are logged
// and skipped so one bad file cannot hide the rest.
func (s *Store) LoadAllPortfolios() []*Portfolio {
	entries, err := os.ReadDir(s.portfolioDir())
	if err != nil {
		if !os.IsNotExist(err) {
			Log.Warn().Err(err).Msg("cannot read portfolio directory")
		}
		return nil
	}
	seen := make(map[string]bool)
	var portfolios []*Portfolio
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !(strings.HasSuffix(name, ".json") || strings.HasSuffix(name, ".json"+encSuffix)) {
			continue
		}
		p, err := s.loadPortfolioFile(filepath.Join(s.portfolioDir(), name))
		if err != nil {
			Log.Warn().Err(err).Str("file", name).Msg("skipping unreadable portfolio file")
			continue
		}
		if seen[p.ID] {
			continue
		}
		seen[p.ID] = true
		portfolios = append(portfolios, p)
	}
	sort.Slice(portfolios, func(i, j int) bool { return portfolios[i].Name < portfolios[j].Name })
	return portfolios
}

// FindPortfolio resolves a portfolio by ID or by exact name.
func (s *Store) FindPortfolio(ref string) (*Portfolio, error) {
	if p, err := s.LoadPortfolio(ref); err == nil {
		return p, nil
	}
	for _, p := range s.LoadAllPortfolios() {
		if p.Name == ref {
			return p, nil
		}
	}
	return nil, fmt.Errorf("no portfolio named %q", ref)
}

// DeletePortfolio removes both the plaintext and encrypted variants.
func (s *Store) DeletePortfolio(id string) error {
	path := s.portfolioPath(id)
	errPlain := os.Remove(path)
	errEnc := os.Remove(path + encSuffix)
	if errPlain != nil && errEnc != nil {
		return fmt.Errorf("no portfolio with id %q", id)
	}
	return nil
}

func (s *Store) eventsPath() string { return filepath.Join(s.dir, "events.json") }

// LoadEvents reads all events. A missing file is an empty list.
func (s *Store) LoadEvents() ([]Event, error) {
	data, err := os.ReadFile(s.eventsPath())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var events []Event
	if err := json.Unmarshal(data, &events); err != nil {
		return nil, fmt.Errorf("decoding events: %w", err)
	}
	return events, nil
}

// SaveEvents writes the full event list.
func (s *Store) SaveEvents(events []Event) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(events, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding events: %w", err)
	}
	return os.WriteFile(s.eventsPath(), data, 0o600)
}

// AddEvent appends an event to the stored list.
func (s *Store) AddEvent(e Event) error {
	events, err := s.LoadEvents()
	if err != nil {
		return err
	}
	return s.SaveEvents(append(events, e))
}
