// Package cache memoises computed schedules in memory. The engine is pure,
// so a schedule is fully determined by its request; the cache exists for
// callers that hit the same (location, date, method) tuple repeatedly, such
// as multi-day renders or a long-lived embedding process.
package cache

import (
	"crypto/sha256"
	"fmt"
	"sync"

	"github.com/waqt-dev/waqt/internal/prayer"
)

// Store is a concurrency-safe schedule memo. The zero value is not usable;
// call New.
type Store struct {
	mu      sync.RWMutex
	entries map[string]prayer.Schedule
}

// New creates an empty store.
func New() *Store {
	return &Store{entries: make(map[string]prayer.Schedule)}
}

// key builds a deterministic hash over every request field that affects the
// result, so two requests differing in any input land in separate slots.
func key(req prayer.Request) string {
	fajr, isha := "-", "-"
	if req.FajrAngle != nil {
		fajr = fmt.Sprintf("%.4f", *req.FajrAngle)
	}
	if req.IshaAngle != nil {
		isha = fmt.Sprintf("%.4f", *req.IshaAngle)
	}

	raw := fmt.Sprintf("%.6f|%.6f|%.4f|%04d-%02d-%02d|%s|%s|%s|%d|%d",
		req.Latitude, req.Longitude, req.UTCOffset,
		req.Year, req.Month, req.Day,
		req.Method, fajr, isha, req.AsrFactor, req.IshaInterval)

	h := sha256.Sum256([]byte(raw))
	return fmt.Sprintf("%x", h[:8])
}

// Get returns the memoised schedule for the request, if present.
func (s *Store) Get(req prayer.Request) (prayer.Schedule, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sch, ok := s.entries[key(req)]
	return sch, ok
}

// Put stores a schedule for the request.
func (s *Store) Put(req prayer.Request, sch prayer.Schedule) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key(req)] = sch
}

// Compute returns the schedule for the request, computing and memoising it
// on a miss.
func (s *Store) Compute(req prayer.Request) prayer.Schedule {
	if sch, ok := s.Get(req); ok {
		return sch
	}

	sch := prayer.Compute(req)
	s.Put(req, sch)
	return sch
}

// Len reports the number of memoised schedules.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
