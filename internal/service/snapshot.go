package service

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/Eursukkul/vendor-dashboard/internal/correlator"
	"github.com/Eursukkul/vendor-dashboard/internal/models"
	"github.com/google/uuid"
)

// Snapshot is everything the dashboard shows for one user at one instant.
// A snapshot is never modified after it is published.
type Snapshot struct {
	UserID      uuid.UUID
	Event       *models.Event
	GuestCount  int
	Index       *correlator.Index
	Metrics     models.DashboardMetrics
	Calls       models.CallStats
	Rejected    int
	RefreshedAt time.Time
}

// snapshotStore holds the latest snapshot per user. Each slot is replaced
// whole, so a reader sees either the previous or the next snapshot.
type snapshotStore struct {
	mu    sync.RWMutex
	slots map[uuid.UUID]*atomic.Pointer[Snapshot]
}

func newSnapshotStore() *snapshotStore {
	return &snapshotStore{slots: make(map[uuid.UUID]*atomic.Pointer[Snapshot])}
}

func (s *snapshotStore) load(userID uuid.UUID) *Snapshot {
	s.mu.RLock()
	slot, ok := s.slots[userID]
	s.mu.RUnlock()
	if !ok {
		return nil
	}
	return slot.Load()
}

// swap publishes next unless a newer snapshot is already in place.
func (s *snapshotStore) swap(next *Snapshot) *Snapshot {
	slot := s.slot(next.UserID)
	for {
		cur := slot.Load()
		if cur != nil && cur.RefreshedAt.After(next.RefreshedAt) {
			return cur
		}
		if slot.CompareAndSwap(cur, next) {
			return next
		}
	}
}

func (s *snapshotStore) slot(userID uuid.UUID) *atomic.Pointer[Snapshot] {
	s.mu.RLock()
	slot, ok := s.slots[userID]
	s.mu.RUnlock()
	if ok {
		return slot
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if slot, ok = s.slots[userID]; !ok {
		slot = &atomic.Pointer[Snapshot]{}
		s.slots[userID] = slot
	}
	return slot
}

func (s *snapshotStore) users() []uuid.UUID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]uuid.UUID, 0, len(s.slots))
	for id := range s.slots {
		ids = append(ids, id)
	}
	return ids
}
