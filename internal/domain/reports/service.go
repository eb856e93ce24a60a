package reports

import (
	"sync"
	"time"

	"empreg/internal/domain/registry"
)

// Snapshot bundles every aggregate computed from one collection state.
type Snapshot struct {
	Expired       []ExpiredRow     `json:"expired"`
	Nationalities []HistogramEntry `json:"nationalities"`
	Education     []HistogramEntry `json:"education"`
	Files         FileStats        `json:"files"`
	Summary       Summary          `json:"summary"`
}

// Service computes report snapshots over the store's active collection,
// memoized on the store version counter plus the calendar day (expiry rows
// change at midnight even when the collection does not).
type Service struct {
	store *registry.Store

	mu      sync.Mutex
	version uint64
	day     time.Time
	cached  *Snapshot
}

func NewService(store *registry.Store) *Service {
	return &Service{store: store}
}

// Snapshot returns the aggregates for the current collection state,
// recomputing only when the store changed or the day rolled over.
func (s *Service) Snapshot(now time.Time) Snapshot {
	today := registry.Today(now)
	version := s.store.Version()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cached != nil && s.version == version && s.day.Equal(today) {
		return *s.cached
	}

	records := s.store.Active()
	expired := ExpiredDocuments(records, today)
	nationalities := NationalityHistogram(records)
	files := FileStatistics(records)

	snap := Snapshot{
		Expired:       expired,
		Nationalities: nationalities,
		Education:     EducationHistogram(records),
		Files:         files,
		Summary: Summary{
			TotalEmployees:   len(records),
			ExpiredDocuments: len(expired),
			TotalFiles:       files.TotalFiles,
			Nationalities:    len(nationalities),
		},
	}

	s.version = version
	s.day = today
	s.cached = &snap
	return snap
}
