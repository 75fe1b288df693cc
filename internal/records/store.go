// File path: internal/records/store.go
package records

import (
	"math"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/immensecng/cylinder-retest/internal/catalog"
)

// DefaultPageSize matches the tracker table's rows per page.
const DefaultPageSize = 5

// maxIDAttempts bounds calls to a custom IDGenerator before Add falls back
// to NewID.
const maxIDAttempts = 8

// IDGenerator returns a new record identifier.
type IDGenerator func() string

// NewID returns a collision-free cylinder identifier.
func NewID() string {
	return "CYL-" + strings.ToUpper(uuid.NewString())
}

// Option configures a Store.
type Option func(*Store)

// WithIDGenerator overrides identifier generation.
func WithIDGenerator(gen IDGenerator) Option {
	return func(s *Store) {
		if gen != nil {
			s.newID = gen
		}
	}
}

// WithRecords preloads fully constructed records, bypassing Add. Used for
// demonstration data and test fixtures. Records with an empty or already
// loaded ID are skipped.
func WithRecords(records ...Record) Option {
	return func(s *Store) {
		for _, r := range records {
			if r.ID == "" {
				continue
			}
			if _, taken := s.ids[r.ID]; taken {
				continue
			}
			s.records = append(s.records, r)
			s.ids[r.ID] = struct{}{}
		}
	}
}

// Store is an append-only, insertion-ordered list of records.
type Store struct {
	mu      sync.RWMutex
	records []Record
	ids     map[string]struct{}
	newID   IDGenerator
}

// NewStore returns an empty store with the given options applied.
func NewStore(opts ...Option) *Store {
	s := &Store{ids: make(map[string]struct{}), newID: NewID}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Add validates the candidate and appends a new record with status
// Identified and degassing Not Started. A *ValidationError leaves the store
// untouched.
func (s *Store) Add(c Candidate) (Record, error) {
	v, err := c.validate()
	if err != nil {
		return Record{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.freshIDLocked()
	rec := Record{
		ID:              id,
		Type:            v.cylinder,
		Status:          catalog.StatusIdentified,
		DegassingStatus: catalog.DegassingNotStarted,
		Date:            v.date,
		Technician:      v.technician,
		Notes:           v.notes,
	}
	s.records = append(s.records, rec)
	s.ids[id] = struct{}{}
	return rec, nil
}

func (s *Store) freshIDLocked() string {
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		if id := s.newID(); s.usableLocked(id) {
			return id
		}
	}
	for {
		if id := NewID(); s.usableLocked(id) {
			return id
		}
	}
}

func (s *Store) usableLocked(id string) bool {
	if strings.TrimSpace(id) == "" {
		return false
	}
	_, taken := s.ids[id]
	return !taken
}

// List returns a copy of every record, most recently added last.
func (s *Store) List() []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Record(nil), s.records...)
}

// Len returns the number of records.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Filter returns the records matching pred in insertion order.
func (s *Store) Filter(pred Predicate) []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Record, 0, len(s.records))
	for _, r := range s.records {
		if pred == nil || pred(r) {
			out = append(out, r)
		}
	}
	return out
}

// FilterByField filters on a named field; see FieldPredicate.
func (s *Store) FilterByField(field, value string) ([]Record, error) {
	pred, err := FieldPredicate(field, value)
	if err != nil {
		return nil, err
	}
	return s.Filter(pred), nil
}

// CountByPredicate counts matching records. Nothing is cached.
func (s *Store) CountByPredicate(pred Predicate) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.countLocked(pred)
}

func (s *Store) countLocked(pred Predicate) int {
	count := 0
	for _, r := range s.records {
		if pred == nil || pred(r) {
			count++
		}
	}
	return count
}

// PercentComplete is the share of records with degassing Completed, rounded
// to the nearest integer. An empty store reports 0.
func (s *Store) PercentComplete() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return percent(s.countLocked(Completed), len(s.records))
}

func percent(done, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(done) / float64(total) * 100))
}

// Summary holds the counts shown on the tracker cards.
type Summary struct {
	Total           int `json:"total"`
	Completed       int `json:"completed"`
	Pending         int `json:"pending"`
	PercentComplete int `json:"percent_complete"`
}

// Summary derives the tracker card counts from one snapshot.
func (s *Store) Summary() Summary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	completed := s.countLocked(Completed)
	return Summary{
		Total:           len(s.records),
		Completed:       completed,
		Pending:         s.countLocked(Pending),
		PercentComplete: percent(completed, len(s.records)),
	}
}

// Page is one slice of the record table.
type Page struct {
	Records    []Record `json:"records"`
	Page       int      `json:"page"`
	PageSize   int      `json:"page_size"`
	TotalPages int      `json:"total_pages"`
	Total      int      `json:"total"`
}

// Page returns the 1-based page of records. Out-of-range pages are clamped.
func (s *Store) Page(page, size int) Page {
	if size <= 0 {
		size = DefaultPageSize
	}
	all := s.List()
	totalPages := (len(all) + size - 1) / size
	if totalPages == 0 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}
	start := (page - 1) * size
	end := start + size
	if end > len(all) {
		end = len(all)
	}
	return Page{
		Records:    all[start:end],
		Page:       page,
		PageSize:   size,
		TotalPages: totalPages,
		Total:      len(all),
	}
}
