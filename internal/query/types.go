package query

import (
	"time"

	"nifi-nlp-gateway/internal/intent"
	"nifi-nlp-gateway/internal/session"
)

// ProcessInput is one natural-language query to resolve and execute.
type ProcessInput struct {
	Query     string                 // Natural language query from the user
	SessionID string                 // Optional; a new session id is issued when empty
	Context   map[string]interface{} // Optional extra context, echoed to handlers
}

// ProcessOutput is the uniform response for a processed query.
type ProcessOutput struct {
	Success    bool                   `json:"success"`
	Message    string                 `json:"message"`
	Data       map[string]interface{} `json:"data,omitempty"`
	Intent     intent.Intent          `json:"intent,omitempty"`
	Confidence float64                `json:"confidence"`
	Timestamp  time.Time              `json:"timestamp"`
	SessionID  string                 `json:"session_id,omitempty"`
}

// IntentsOutput is the static catalog introspection result.
type IntentsOutput struct {
	Intents []intent.CatalogEntry `json:"intents"`
	Count   int                   `json:"count"`
}

// SessionOutput is a snapshot of one session's bounded history.
type SessionOutput struct {
	Record session.Record `json:"record"`
}
