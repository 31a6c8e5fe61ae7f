package session

import "context"

// Store is the bounded per-session interaction log. Appends for the same
// session id are serialized; different sessions never block each other.
type Store interface {
	// Append records one interaction, creating the session on first use and
	// evicting the oldest entry beyond MaxHistoryEntries.
	Append(ctx context.Context, sessionID string, entry Entry)

	// Get returns a snapshot of the session's record. ok is false when the
	// session does not exist or has expired.
	Get(ctx context.Context, sessionID string) (Record, bool)
}
