package jsonfile

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"apptrack/internal/store"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "data", "applications.json"), testLogger())
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	return s
}

func mustAdd(t *testing.T, s *Store, company, position string, status store.Status) *store.Application {
	t.Helper()
	app, err := store.NewApplication(store.Input{Company: company, Position: position, Status: status})
	if err != nil {
		t.Fatalf("failed to build application: %v", err)
	}
	if _, err := s.Add(app); err != nil {
		t.Fatalf("failed to add application: %v", err)
	}
	return app
}

func TestOpen_CreatesDataDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "apps.json")
	if _, err := Open(path, testLogger()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := os.Stat(filepath.Dir(path)); err != nil {
		t.Errorf("expected data directory to exist: %v", err)
	}
}

func TestAddAndGet(t *testing.T) {
	s := testStore(t)
	app := mustAdd(t, s, "Acme", "Dev", store.StatusApplied)

	got, ok := s.Get(app.ID)
	if !ok {
		t.Fatal("expected to find the application")
	}
	if got.Company != "Acme" || got.Position != "Dev" {
		t.Errorf("unexpected record: %+v", got)
	}

	if _, ok := s.Get("does-not-exist"); ok {
		t.Error("expected a miss for an unknown id")
	}
}

func TestGet_ReturnsCopy(t *testing.T) {
	s := testStore(t)
	app := mustAdd(t, s, "Acme", "Dev", store.StatusApplied)

	got, _ := s.Get(app.ID)
	got.Company = "Mutated"

	again, _ := s.Get(app.ID)
	if again.Company != "Acme" {
		t.Error("mutating a returned record must not affect the store")
	}
}

func TestAdd_PersistsToDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "apps.json")
	s, _ := Open(path, testLogger())
	app := mustAdd(t, s, "Acme", "Dev", store.StatusApplied)

	// A second store on the same file sees the record.
	reloaded, err := Open(path, testLogger())
	if err != nil {
		t.Fatalf("failed to reopen: %v", err)
	}
	if reloaded.Len() != 1 {
		t.Fatalf("expected 1 application after reload, got %d", reloaded.Len())
	}
	got, ok := reloaded.Get(app.ID)
	if !ok || got.Company != "Acme" {
		t.Errorf("reloaded record mismatch: %+v", got)
	}
}

func TestOpen_CorruptFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "apps.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Open(path, testLogger())
	if err != nil {
		t.Fatalf("a corrupt file must not block startup: %v", err)
	}
	if s.Len() != 0 {
		t.Errorf("expected empty store, got %d records", s.Len())
	}

	// The store is still usable and overwrites the bad document.
	mustAdd(t, s, "Acme", "Dev", store.StatusApplied)
	reloaded, _ := Open(path, testLogger())
	if reloaded.Len() != 1 {
		t.Errorf("expected the new record to persist, got %d", reloaded.Len())
	}
}

func TestUpdate(t *testing.T) {
	s := testStore(t)
	app := mustAdd(t, s, "Acme", "Dev", store.StatusApplied)
	before, _ := s.Get(app.ID)

	time.Sleep(10 * time.Millisecond)
	status := "screening"
	location := "Berlin"
	ok, err := s.Update(app.ID, store.ApplicationUpdate{Status: &status, Location: &location})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("expected the update to apply")
	}

	got, _ := s.Get(app.ID)
	if got.Status != store.StatusScreening {
		t.Errorf("expected status screening, got %s", got.Status)
	}
	if got.Location != "Berlin" {
		t.Errorf("expected location Berlin, got %q", got.Location)
	}
	if got.Company != "Acme" {
		t.Error("fields without an update must be untouched")
	}
	if !got.UpdatedAt.After(before.UpdatedAt) {
		t.Error("expected updated_at to advance")
	}
}

func TestUpdate_RejectsUnknownStatus(t *testing.T) {
	s := testStore(t)
	app := mustAdd(t, s, "Acme", "Dev", store.StatusApplied)

	status := "ghosted"
	ok, err := s.Update(app.ID, store.ApplicationUpdate{Status: &status})
	if err == nil {
		t.Error("expected a validation error")
	}
	if ok {
		t.Error("the update must not apply")
	}

	got, _ := s.Get(app.ID)
	if got.Status != store.StatusApplied {
		t.Errorf("status must be unchanged, got %s", got.Status)
	}
}

func TestUpdate_UnknownID(t *testing.T) {
	s := testStore(t)
	status := "screening"
	ok, err := s.Update("missing", store.ApplicationUpdate{Status: &status})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("expected no update for an unknown id")
	}
}

func TestDelete(t *testing.T) {
	s := testStore(t)
	app := mustAdd(t, s, "Acme", "Dev", store.StatusApplied)

	ok, err := s.Delete(app.ID)
	if err != nil || !ok {
		t.Fatalf("expected delete to succeed, got (%v, %v)", ok, err)
	}
	if _, found := s.Get(app.ID); found {
		t.Error("expected the record to be gone")
	}

	ok, err = s.Delete(app.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("deleting twice must report false")
	}
}

func TestList_FilterAndSort(t *testing.T) {
	s := testStore(t)
	mustAdd(t, s, "Zebra Inc", "Backend Dev", store.StatusApplied)
	mustAdd(t, s, "Acme Corp", "Frontend Dev", store.StatusRejected)
	mustAdd(t, s, "acme labs", "Go Dev", store.StatusApplied)

	byStatus := s.List(store.ListOptions{Status: store.StatusApplied})
	if len(byStatus) != 2 {
		t.Errorf("expected 2 applied records, got %d", len(byStatus))
	}

	// Company filter is a case-insensitive substring match.
	byCompany := s.List(store.ListOptions{Company: "acme"})
	if len(byCompany) != 2 {
		t.Errorf("expected 2 acme records, got %d", len(byCompany))
	}

	sorted := s.List(store.ListOptions{SortBy: "company"})
	if len(sorted) != 3 {
		t.Fatalf("expected 3 records, got %d", len(sorted))
	}
	if sorted[0].Company != "Acme Corp" || sorted[2].Company != "Zebra Inc" {
		t.Errorf("unexpected sort order: %s, %s, %s", sorted[0].Company, sorted[1].Company, sorted[2].Company)
	}

	reversed := s.List(store.ListOptions{SortBy: "company", Reverse: true})
	if reversed[0].Company != "Zebra Inc" {
		t.Errorf("expected reversed order, got %s first", reversed[0].Company)
	}

	limited := s.List(store.ListOptions{SortBy: "company", Limit: 1})
	if len(limited) != 1 {
		t.Errorf("expected 1 record, got %d", len(limited))
	}
}

func TestSearch(t *testing.T) {
	s := testStore(t)
	mustAdd(t, s, "Acme Corp", "Go Developer", store.StatusApplied)
	app, _ := store.NewApplication(store.Input{
		Company: "Beta LLC", Position: "Analyst", Notes: "met at the GopherCon booth",
		ContactPerson: "Dana Smith",
	})
	if _, err := s.Add(app); err != nil {
		t.Fatal(err)
	}

	if got := s.Search("go"); len(got) != 2 {
		// "Go Developer" and "GopherCon" both match.
		t.Errorf("expected 2 matches for 'go', got %d", len(got))
	}
	if got := s.Search("DANA"); len(got) != 1 {
		t.Errorf("expected 1 match on contact person, got %d", len(got))
	}
	if got := s.Search("nothing-here"); len(got) != 0 {
		t.Errorf("expected no matches, got %d", len(got))
	}
}

func TestByDateRange(t *testing.T) {
	s := testStore(t)
	now := time.Now().UTC()

	old, _ := store.NewApplication(store.Input{Company: "Old Co", Position: "Dev", ApplicationDate: now.AddDate(0, 0, -20)})
	recent, _ := store.NewApplication(store.Input{Company: "New Co", Position: "Dev", ApplicationDate: now.AddDate(0, 0, -2)})
	for _, app := range []*store.Application{old, recent} {
		if _, err := s.Add(app); err != nil {
			t.Fatal(err)
		}
	}

	got := s.ByDateRange(now.AddDate(0, 0, -7), now)
	if len(got) != 1 {
		t.Fatalf("expected 1 record in range, got %d", len(got))
	}
	if got[0].Company != "New Co" {
		t.Errorf("unexpected record: %s", got[0].Company)
	}
}

func TestStatusSummary_IncludesZeroCounts(t *testing.T) {
	s := testStore(t)
	mustAdd(t, s, "Acme", "Dev", store.StatusApplied)
	mustAdd(t, s, "Beta", "Dev", store.StatusApplied)
	mustAdd(t, s, "Gamma", "Dev", store.StatusRejected)

	summary := s.StatusSummary()
	if len(summary) != len(store.AllStatuses()) {
		t.Errorf("expected all %d statuses as keys, got %d", len(store.AllStatuses()), len(summary))
	}
	if summary[store.StatusApplied] != 2 {
		t.Errorf("expected 2 applied, got %d", summary[store.StatusApplied])
	}
	if summary[store.StatusOfferReceived] != 0 {
		t.Errorf("expected zero offers, got %d", summary[store.StatusOfferReceived])
	}
}

func TestAll_ReturnsCopies(t *testing.T) {
	s := testStore(t)
	mustAdd(t, s, "Acme", "Dev", store.StatusApplied)

	all := s.All()
	if len(all) != 1 || s.Len() != 1 {
		t.Fatalf("expected 1 record, got %d", len(all))
	}
	all[0].Company = "Mutated"
	if got, _ := s.Get(all[0].ID); got.Company != "Acme" {
		t.Error("mutating All() output must not affect the store")
	}
}
