// Package jsonfile implements the application store on top of a single flat
// JSON document. Every mutation rewrites the whole document synchronously;
// there is no buffering and no concurrent-writer protection.
package jsonfile

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"apptrack/internal/store"
)

// Store keeps the canonical in-memory collection and persists it to disk.
type Store struct {
	path   string
	logger *slog.Logger
	apps   []*store.Application
}

// Open creates the data directory if needed and loads the backing document.
// A missing file starts an empty collection. A malformed file is logged as a
// warning and also starts empty, so a corrupt document never blocks startup.
func Open(path string, logger *slog.Logger) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	s := &Store{path: path, logger: logger}
	s.load()
	return s, nil
}

func (s *Store) load() {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		s.apps = nil
		return
	}
	if err != nil {
		s.logger.Warn("could not read applications file, starting empty", "path", s.path, "error", err)
		s.apps = nil
		return
	}

	var apps []*store.Application
	if err := json.Unmarshal(data, &apps); err != nil {
		s.logger.Warn("could not parse applications file, starting empty", "path", s.path, "error", err)
		s.apps = nil
		return
	}
	s.apps = apps
}

// save rewrites the full document. Write errors propagate to the caller.
func (s *Store) save() error {
	data, err := json.MarshalIndent(s.apps, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize applications: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", s.path, err)
	}
	return nil
}

func clone(a *store.Application) *store.Application {
	c := *a
	return &c
}

// Add appends the application and persists. It returns the new id.
func (s *Store) Add(app *store.Application) (string, error) {
	s.apps = append(s.apps, clone(app))
	if err := s.save(); err != nil {
		return "", err
	}
	return app.ID, nil
}

func (s *Store) find(id string) (int, *store.Application) {
	for i, app := range s.apps {
		if app.ID == id {
			return i, app
		}
	}
	return -1, nil
}

// Get returns a copy of the record with the exact id.
func (s *Store) Get(id string) (*store.Application, bool) {
	if _, app := s.find(id); app != nil {
		return clone(app), true
	}
	return nil, false
}

// Update applies the non-nil fields of upd, bumps updated_at and persists.
// Unknown status tags are rejected with a validation error.
func (s *Store) Update(id string, upd store.ApplicationUpdate) (bool, error) {
	_, app := s.find(id)
	if app == nil {
		return false, nil
	}

	if upd.Status != nil {
		status, err := store.ParseStatus(*upd.Status)
		if err != nil {
			return false, err
		}
		app.Status = status
	}
	if upd.Company != nil {
		app.Company = *upd.Company
	}
	if upd.Position != nil {
		app.Position = *upd.Position
	}
	if upd.JobURL != nil {
		app.JobURL = *upd.JobURL
	}
	if upd.SalaryRange != nil {
		app.SalaryRange = *upd.SalaryRange
	}
	if upd.Location != nil {
		app.Location = *upd.Location
	}
	if upd.Notes != nil {
		app.Notes = *upd.Notes
	}
	if upd.ContactPerson != nil {
		app.ContactPerson = *upd.ContactPerson
	}
	if upd.ContactEmail != nil {
		app.ContactEmail = *upd.ContactEmail
	}

	app.UpdatedAt = time.Now().UTC()
	if err := s.save(); err != nil {
		return false, err
	}
	return true, nil
}

// Delete removes the record and persists. False when the id is unknown.
func (s *Store) Delete(id string) (bool, error) {
	i, app := s.find(id)
	if app == nil {
		return false, nil
	}
	s.apps = append(s.apps[:i], s.apps[i+1:]...)
	if err := s.save(); err != nil {
		return false, err
	}
	return true, nil
}

// List returns a filtered, sorted, optionally truncated copy of the collection.
func (s *Store) List(opts store.ListOptions) []*store.Application {
	filtered := make([]*store.Application, 0, len(s.apps))
	company := strings.ToLower(opts.Company)
	for _, app := range s.apps {
		if opts.Status != "" && app.Status != opts.Status {
			continue
		}
		if company != "" && !strings.Contains(strings.ToLower(app.Company), company) {
			continue
		}
		filtered = append(filtered, clone(app))
	}

	less := sortKey(opts.SortBy)
	sort.SliceStable(filtered, func(i, j int) bool {
		if opts.Reverse {
			return less(filtered[j], filtered[i])
		}
		return less(filtered[i], filtered[j])
	})

	if opts.Limit > 0 && len(filtered) > opts.Limit {
		filtered = filtered[:opts.Limit]
	}
	return filtered
}

// sortKey maps a sort field name to a less function. Missing application
// dates compare as the zero time, so they sort last when descending.
func sortKey(field string) func(a, b *store.Application) bool {
	switch field {
	case "company":
		return func(a, b *store.Application) bool {
			return strings.ToLower(a.Company) < strings.ToLower(b.Company)
		}
	case "position":
		return func(a, b *store.Application) bool {
			return strings.ToLower(a.Position) < strings.ToLower(b.Position)
		}
	case "application_date":
		return func(a, b *store.Application) bool {
			return a.ApplicationDate.Before(b.ApplicationDate)
		}
	default: // updated_at
		return func(a, b *store.Application) bool {
			return a.UpdatedAt.Before(b.UpdatedAt)
		}
	}
}

// Search matches the query case-insensitively against company, position,
// notes and contact person. Results keep the natural collection order.
func (s *Store) Search(query string) []*store.Application {
	q := strings.ToLower(query)
	var results []*store.Application
	for _, app := range s.apps {
		if strings.Contains(strings.ToLower(app.Company), q) ||
			strings.Contains(strings.ToLower(app.Position), q) ||
			(app.Notes != "" && strings.Contains(strings.ToLower(app.Notes), q)) ||
			(app.ContactPerson != "" && strings.Contains(strings.ToLower(app.ContactPerson), q)) {
			results = append(results, clone(app))
		}
	}
	return results
}

// ByDateRange returns applications whose application_date falls within
// [start, end] inclusive. Records without a date are skipped.
func (s *Store) ByDateRange(start, end time.Time) []*store.Application {
	var results []*store.Application
	for _, app := range s.apps {
		d := app.ApplicationDate
		if d.IsZero() {
			continue
		}
		if !d.Before(start) && !d.After(end) {
			results = append(results, clone(app))
		}
	}
	return results
}

// StatusSummary counts applications per status, including zero entries for
// statuses with no matching records.
func (s *Store) StatusSummary() map[store.Status]int {
	summary := make(map[store.Status]int, len(store.AllStatuses()))
	for _, status := range store.AllStatuses() {
		summary[status] = 0
	}
	for _, app := range s.apps {
		summary[app.Status]++
	}
	return summary
}

// All returns a copy of the whole collection in natural order.
func (s *Store) All() []*store.Application {
	all := make([]*store.Application, len(s.apps))
	for i, app := range s.apps {
		all[i] = clone(app)
	}
	return all
}

// Len reports the number of stored applications.
func (s *Store) Len() int {
	return len(s.apps)
}
