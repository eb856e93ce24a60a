package registry

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store is the single source of truth for the two record collections. A
// record is always in exactly one of them: active or archived. Both keep
// newest-first order. Every mutation bumps a version counter that derived
// views use as a cache invalidation token.
type Store struct {
	mu       sync.RWMutex
	active   []*Record
	archived []*Record
	version  uint64
	now      func() time.Time
}

func NewStore() *Store {
	return &Store{now: time.Now}
}

// Create validates the draft, assigns a synthetic ID and the submission
// timestamp, and prepends the record to the active collection.
func (s *Store) Create(draft Record) (*Record, error) {
	if err := Validate(draft); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec := draft
	rec.ID = uuid.NewString()
	submitted := s.now().UTC()
	rec.SubmissionDate = &submitted
	rec.DeletedAt = nil

	s.active = append([]*Record{&rec}, s.active...)
	s.version++

	out := rec
	return &out, nil
}

// Update replaces the active record's fields with the draft, preserving its
// ID, position and submission date. The draft's submission date, if set, wins
// over the original's.
func (s *Store) Update(id string, draft Record) (*Record, error) {
	if err := Validate(draft); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, rec := range s.active {
		if rec.ID != id {
			continue
		}
		updated := draft
		updated.ID = rec.ID
		if updated.SubmissionDate == nil {
			updated.SubmissionDate = rec.SubmissionDate
		}
		updated.DeletedAt = nil
		s.active[i] = &updated
		s.version++

		out := updated
		return &out, nil
	}
	return nil, ErrRecordNotFound
}

// Archive moves an active record to the archive, stamping DeletedAt.
func (s *Store) Archive(id string) (*Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, rec := range s.active {
		if rec.ID != id {
			continue
		}
		s.active = append(s.active[:i], s.active[i+1:]...)
		deleted := s.now().UTC()
		rec.DeletedAt = &deleted
		s.archived = append([]*Record{rec}, s.archived...)
		s.version++

		out := *rec
		return &out, nil
	}
	return nil, ErrRecordNotFound
}

// Restore moves an archived record back to the active collection, clearing
// DeletedAt. Every other field comes back untouched.
func (s *Store) Restore(id string) (*Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, rec := range s.archived {
		if rec.ID != id {
			continue
		}
		s.archived = append(s.archived[:i], s.archived[i+1:]...)
		rec.DeletedAt = nil
		s.active = append([]*Record{rec}, s.active...)
		s.version++

		out := *rec
		return &out, nil
	}
	return nil, ErrRecordNotFound
}

// Purge removes an archived record permanently. There is no tombstone; a
// later Restore or Purge with the same ID reports ErrRecordNotFound.
func (s *Store) Purge(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, rec := range s.archived {
		if rec.ID != id {
			continue
		}
		s.archived = append(s.archived[:i], s.archived[i+1:]...)
		s.version++
		return nil
	}
	return ErrRecordNotFound
}

// Get looks the record up in both collections.
func (s *Store) Get(id string) (Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, rec := range s.active {
		if rec.ID == id {
			return *rec, true
		}
	}
	for _, rec := range s.archived {
		if rec.ID == id {
			return *rec, true
		}
	}
	return Record{}, false
}

// Active returns a snapshot copy of the active collection, newest first.
func (s *Store) Active() []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return snapshot(s.active)
}

// Archived returns a snapshot copy of the archive, newest first.
func (s *Store) Archived() []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return snapshot(s.archived)
}

// Version returns the mutation counter. Unchanged version means unchanged
// collections, which makes it usable as a memoization key.
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// Counts reports the sizes of the active and archived collections.
func (s *Store) Counts() (int, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.active), len(s.archived)
}

func snapshot(records []*Record) []Record {
	out := make([]Record, len(records))
	for i, rec := range records {
		out[i] = *rec
	}
	return out
}
