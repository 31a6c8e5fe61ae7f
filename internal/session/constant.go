package session

import "time"

const (
	// MaxHistoryEntries is the bound on per-session history. Appending the
	// eleventh entry evicts the oldest.
	MaxHistoryEntries = 10

	DefaultMaxSessions = 1000
	DefaultTTL         = 30 * time.Minute
)
