package session

import (
	"context"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// liveSession guards one session's record. The per-session mutex serializes
// appends for that id without blocking other sessions.
type liveSession struct {
	mu     sync.Mutex
	record Record
}

type store struct {
	// createMu only guards get-or-create so two first-appends for the same
	// new id cannot race into separate records.
	createMu sync.Mutex
	sessions *expirable.LRU[string, *liveSession]
}

var _ Store = (*store)(nil)

// New creates a Store bounded by cfg.
func New(cfg Config) Store {
	cfg.validate()
	return &store{
		sessions: expirable.NewLRU[string, *liveSession](
			cfg.MaxSessions,
			nil, // No eviction callback
			cfg.TTL,
		),
	}
}

func (s *store) Append(ctx context.Context, sessionID string, entry Entry) {
	live := s.getOrCreate(sessionID)

	live.mu.Lock()
	defer live.mu.Unlock()

	live.record.Entries = append(live.record.Entries, entry)
	if n := len(live.record.Entries); n > MaxHistoryEntries {
		live.record.Entries = live.record.Entries[n-MaxHistoryEntries:]
	}
}

func (s *store) Get(ctx context.Context, sessionID string) (Record, bool) {
	live, ok := s.sessions.Get(sessionID)
	if !ok {
		return Record{}, false
	}

	live.mu.Lock()
	defer live.mu.Unlock()

	snapshot := live.record
	snapshot.Entries = make([]Entry, len(live.record.Entries))
	copy(snapshot.Entries, live.record.Entries)
	return snapshot, true
}

func (s *store) getOrCreate(sessionID string) *liveSession {
	s.createMu.Lock()
	defer s.createMu.Unlock()

	if live, ok := s.sessions.Get(sessionID); ok {
		return live
	}

	live := &liveSession{
		record: Record{
			SessionID: sessionID,
			CreatedAt: time.Now().UTC(),
		},
	}
	s.sessions.Add(sessionID, live)
	return live
}
