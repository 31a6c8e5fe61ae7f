package session

import "time"

// Entry is one recorded interaction for a session.
type Entry struct {
	Timestamp  time.Time              `json:"timestamp"`
	RawQuery   string                 `json:"raw_query"`
	Intent     string                 `json:"intent"`
	Confidence float64                `json:"confidence"`
	Result     map[string]interface{} `json:"result,omitempty"`
}

// Record is the bounded per-session interaction log. Entries holds at most
// MaxHistoryEntries entries in chronological order; the oldest is evicted
// first.
type Record struct {
	SessionID string    `json:"session_id"`
	CreatedAt time.Time `json:"created_at"`
	Entries   []Entry   `json:"entries"`
}

// Config bounds the store.
type Config struct {
	// MaxSessions caps the number of live sessions. Zero means DefaultMaxSessions.
	MaxSessions int
	// TTL expires idle sessions. Zero means DefaultTTL.
	TTL time.Duration
}

func (cfg *Config) validate() {
	if cfg.MaxSessions <= 0 {
		cfg.MaxSessions = DefaultMaxSessions
	}
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}
}
