package store

import "time"

// ApplicationUpdate is a typed partial update. Nil fields are left untouched.
// Status is coerced from its string tag and rejects unknown values.
type ApplicationUpdate struct {
	Company       *string
	Position      *string
	Status        *string
	JobURL        *string
	SalaryRange   *string
	Location      *string
	Notes         *string
	ContactPerson *string
	ContactEmail  *string
}

// ListOptions controls filtering and ordering for Store.List.
type ListOptions struct {
	// Status filters to a single status when set.
	Status Status

	// Company is a case-insensitive substring match on the company name.
	Company string

	// Limit truncates the result when > 0.
	Limit int

	// SortBy is one of "company", "position", "application_date" or
	// "updated_at". Empty defaults to "updated_at".
	SortBy string

	// Reverse sorts descending (newest first for date keys).
	Reverse bool
}

// Store is the collaborator-facing contract of the application store.
// Absent records are signalled with a false bool, never an error; only
// persistence failures surface as errors.
type Store interface {
	// Add appends a new application, persists, and returns its id.
	Add(app *Application) (string, error)

	// Get returns a copy of the record with the exact id.
	Get(id string) (*Application, bool)

	// Update applies the non-nil fields, bumps updated_at and persists.
	// It returns false when the id is unknown.
	Update(id string, upd ApplicationUpdate) (bool, error)

	// Delete removes the record and persists. False when the id is unknown.
	Delete(id string) (bool, error)

	// List returns a filtered, sorted, optionally truncated copy of the collection.
	List(opts ListOptions) []*Application

	// Search matches the query case-insensitively against company, position,
	// notes and contact person, in natural collection order.
	Search(query string) []*Application

	// ByDateRange returns applications whose application_date falls in [start, end].
	ByDateRange(start, end time.Time) []*Application

	// StatusSummary counts applications per status, including zero entries.
	StatusSummary() map[Status]int

	// All returns a copy of the whole collection in natural order.
	All() []*Application

	// Len reports the number of stored applications.
	Len() int
}
