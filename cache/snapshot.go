package cache

import (
	"context"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/sp0x/certd/table"
)

const snapshotKey = "tables"

// FetchFunc retrieves a complete, fresh set of tables.
type FetchFunc func(ctx context.Context) (*table.Set, error)

// Snapshot holds the latest full fetch of the tables for a fixed time window.
// It is safe for concurrent use; concurrent misses share a single fetch.
type Snapshot struct {
	ttl       time.Duration
	now       func() time.Time
	lock      sync.RWMutex
	payload   *table.Set
	fetchedAt time.Time
	flight    singleflight.Group
	logger    log.FieldLogger
}

// NewSnapshot creates an empty snapshot cache whose entries live for ttl.
func NewSnapshot(ttl time.Duration) *Snapshot {
	return &Snapshot{
		ttl:    ttl,
		now:    time.Now,
		logger: log.WithField("component", "cache"),
	}
}

// TTL returns how long a fetched payload is served.
func (s *Snapshot) TTL() time.Duration {
	return s.ttl
}

// Get returns the payload if it is still valid.
func (s *Snapshot) Get() (*table.Set, bool) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	if !s.isValid() {
		return nil, false
	}
	return s.payload, true
}

// isValid must be called with the lock held.
func (s *Snapshot) isValid() bool {
	return s.payload != nil && s.now().Sub(s.fetchedAt) < s.ttl
}

// GetOrFetch returns the cached payload while it's valid, otherwise it fetches and stores a new one.
func (s *Snapshot) GetOrFetch(ctx context.Context, fetch FetchFunc) (*table.Set, error) {
	if set, ok := s.Get(); ok {
		s.logger.Debug("Using cached tables")
		return set, nil
	}
	return s.fetch(ctx, fetch, false)
}

// Refresh fetches and stores a new payload, regardless of the current one.
func (s *Snapshot) Refresh(ctx context.Context, fetch FetchFunc) (*table.Set, error) {
	return s.fetch(ctx, fetch, true)
}

func (s *Snapshot) fetch(ctx context.Context, fetch FetchFunc, force bool) (*table.Set, error) {
	// The fetch is shared between callers, so one of them leaving must not cancel it.
	shared := context.WithoutCancel(ctx)
	results := s.flight.DoChan(snapshotKey, func() (interface{}, error) {
		if !force {
			if set, ok := s.Get(); ok {
				return set, nil
			}
		}
		started := s.now()
		set, err := fetch(shared)
		if err != nil {
			return nil, err
		}
		s.store(set)
		s.logger.
			WithFields(log.Fields{"tables": set.Len(), "records": set.Records(), "took": s.now().Sub(started)}).
			Info("Cached fresh tables")
		return set, nil
	})
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-results:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*table.Set), nil
	}
}

func (s *Snapshot) store(set *table.Set) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.payload = set
	s.fetchedAt = s.now()
}

// Invalidate drops the cached payload.
func (s *Snapshot) Invalidate() {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.payload = nil
	s.fetchedAt = time.Time{}
	s.logger.Debug("Cache invalidated")
}

// TableStatus is the number of records cached for a table.
type TableStatus struct {
	Table   string `json:"table"`
	Records int    `json:"records"`
}

// Status describes the state of the cache.
type Status struct {
	Valid     bool          `json:"valid"`
	FetchedAt time.Time     `json:"fetchedAt,omitempty"`
	Age       time.Duration `json:"age"`
	TTL       time.Duration `json:"ttl"`
	Tables    int           `json:"tables"`
	Records   int           `json:"records"`
	PerTable  []TableStatus `json:"perTable,omitempty"`
}

// Status reports whether the cache holds a valid payload, its age and size.
// An expired payload is reported like an empty cache.
func (s *Snapshot) Status() Status {
	s.lock.RLock()
	defer s.lock.RUnlock()
	status := Status{TTL: s.ttl}
	if !s.isValid() {
		return status
	}
	status.Valid = true
	status.FetchedAt = s.fetchedAt
	status.Age = s.now().Sub(s.fetchedAt)
	for _, t := range s.payload.Tables() {
		status.PerTable = append(status.PerTable, TableStatus{Table: t.ID.String(), Records: t.Len()})
		status.Records += t.Len()
	}
	status.Tables = len(status.PerTable)
	return status
}
