package folio

import (
	"os"
	"path/filepath"
	"testing"
)

func newTestPortfolio(t *testing.T, name string) *Portfolio {
	t.Helper()
	p, err := NewPortfolio(name, "", "USD")
	if err != nil {
		t.Fatal(err)
	}
	if err := p.Record("BTC", Crypto, tx(Buy, "1", "40000", "10")); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestStoreRoundTrip(t *testing.T) {
	s := NewStore(t.TempDir(), nil)
	p := newTestPortfolio(t, "Main")

	if err := s.SavePortfolio(p); err != nil {
		t.Fatal(err)
	}
	got, err := s.LoadPortfolio(p.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != p.Name || got.Currency != p.Currency {
		t.Errorf("loaded %q/%q want %q/%q", got.Name, got.Currency, p.Name, p.Currency)
	}
	a, ok := got.Asset("BTC")
	if !ok {
		t.Fatal("loaded portfolio lost its asset")
	}
	if !a.TotalQuantity().Equal(Q(1)) {
		t.Errorf("loaded quantity = %s want 1", a.TotalQuantity())
	}
}

func TestStoreEncrypted(t *testing.T) {
	dir := t.TempDir()
	cipher, err := NewAESCipher("passphrase")
	if err != nil {
		t.Fatal(err)
	}
	s := NewStore(dir, cipher)
	p := newTestPortfolio(t, "Secret")

	if err := s.SavePortfolio(p); err != nil {
		t.Fatal(err)
	}

	encPath := filepath.Join(dir, "portfolios", p.ID+".json.enc")
	data, err := os.ReadFile(encPath)
	if err != nil {
		t.Fatalf("encrypted variant not written: %v", err)
	}
	if len(data) > 0 && data[0] == '{' {
		t.Error("encrypted file starts like plaintext JSON")
	}
	if _, err := os.Stat(filepath.Join(dir, "portfolios", p.ID+".json")); !os.IsNotExist(err) {
		t.Error("plaintext twin was not removed")
	}

	got, err := s.LoadPortfolio(p.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != "Secret" {
		t.Errorf("loaded name = %q want Secret", got.Name)
	}
}

func TestLoadAllSkipsCorrupt(t *testing.T) {
	dir := t.TempDir()
	s := NewStore(dir, nil)
	if err := s.SavePortfolio(newTestPortfolio(t, "Good")); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "portfolios", "bad.json"), []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}

	all := s.LoadAllPortfolios()
	if len(all) != 1 || all[0].Name != "Good" {
		t.Errorf("LoadAllPortfolios() = %d portfolios want the one good one", len(all))
	}
}

func TestDeleteRemovesBothVariants(t *testing.T) {
	dir := t.TempDir()
	cipher, _ := NewXORCipher("k")

	// write a plaintext variant, then an encrypted one under the same ID
	plain := NewStore(dir, nil)
	p := newTestPortfolio(t, "Doomed")
	if err := plain.SavePortfolio(p); err != nil {
		t.Fatal(err)
	}
	enc := NewStore(dir, cipher)
	if err := enc.SavePortfolio(p); err != nil {
		t.Fatal(err)
	}

	if err := enc.DeletePortfolio(p.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(dir, "portfolios", p.ID+".json")); !os.IsNotExist(err) {
		t.Error("plaintext variant survived delete")
	}
	if _, err := os.Stat(filepath.Join(dir, "portfolios", p.ID+".json.enc")); !os.IsNotExist(err) {
		t.Error("encrypted variant survived delete")
	}
	if err := enc.DeletePortfolio(p.ID); err == nil {
		t.Error("deleting a missing portfolio expected error")
	}
}

func TestFindPortfolioByName(t *testing.T) {
	s := NewStore(t.TempDir(), nil)
	p := newTestPortfolio(t, "By Name")
	if err := s.SavePortfolio(p); err != nil {
		t.Fatal(err)
	}
	got, err := s.FindPortfolio("By Name")
	if err != nil {
		t.Fatal(err)
	}
	if got.ID != p.ID {
		t.Errorf("FindPortfolio by name = %q want %q", got.ID, p.ID)
	}
	if _, err := s.FindPortfolio("No Such"); err == nil {
		t.Error("FindPortfolio of unknown name expected error")
	}
}

func TestEvents(t *testing.T) {
	s := NewStore(t.TempDir(), nil)

	if events, err := s.LoadEvents(); err != nil || len(events) != 0 {
		t.Fatalf("LoadEvents on empty store = %v, %v want empty, nil", events, err)
	}

	global := NewEvent("Halving", "", Now(), "")
	scoped := NewEvent("Rebalance", "", Now(), "p1")
	other := NewEvent("Other", "", Now(), "p2")
	for _, e := range []Event{global, scoped, other} {
		if err := s.AddEvent(e); err != nil {
			t.Fatal(err)
		}
	}

	events, err := s.LoadEvents()
	if err != nil {
		t.Fatal(err)
	}
	forP1 := EventsFor(events, "p1")
	if len(forP1) != 2 {
		t.Fatalf("EventsFor(p1) = %d events want 2 (global + scoped)", len(forP1))
	}
	for _, e := range forP1 {
		if e.ID == other.ID {
			t.Error("EventsFor leaked another portfolio's event")
		}
	}

	events, removed := RemoveEvent(events, scoped.ID)
	if !removed {
		t.Fatal("RemoveEvent did not find the event")
	}
	if err := s.SaveEvents(events); err != nil {
		t.Fatal(err)
	}
	events, _ = s.LoadEvents()
	if len(events) != 2 {
		t.Errorf("events after removal = %d want 2", len(events))
	}
}

func TestDemoLifecycle(t *testing.T) {
	s := NewStore(t.TempDir(), nil)
	if IsDemoLoaded(s) {
		t.Fatal("fresh store reports demo loaded")
	}
	if err := LoadDemo(s); err != nil {
		t.Fatal(err)
	}
	if !IsDemoLoaded(s) {
		t.Fatal("demo not detected after load")
	}
	all := s.LoadAllPortfolios()
	if len(all) < 2 {
		t.Fatalf("demo portfolios = %d want at least 2", len(all))
	}
	for _, p := range all {
		if !IsDemo(p.ID) {
			t.Errorf("unexpected non-demo portfolio %q", p.ID)
		}
	}
	events, err := s.LoadEvents()
	if err != nil || len(events) == 0 {
		t.Fatalf("demo events = %v, %v want some", events, err)
	}

	if err := RemoveDemo(s); err != nil {
		t.Fatal(err)
	}
	if IsDemoLoaded(s) {
		t.Error("demo still loaded after removal")
	}
}
