package http

import (
	"time"

	"nifi-nlp-gateway/internal/query"
	"nifi-nlp-gateway/internal/session"
)

// --- Request DTOs ---

type processReq struct {
	Query     string                 `json:"query" binding:"required"`
	SessionID string                 `json:"session_id"`
	Context   map[string]interface{} `json:"context"`
}

func (r processReq) toInput() query.ProcessInput {
	return query.ProcessInput{
		Query:     r.Query,
		SessionID: r.SessionID,
		Context:   r.Context,
	}
}

// --- Response DTOs ---

type processResp struct {
	Success    bool                   `json:"success"`
	Message    string                 `json:"message"`
	Data       map[string]interface{} `json:"data,omitempty"`
	Intent     string                 `json:"intent,omitempty"`
	Confidence float64                `json:"confidence"`
	Timestamp  time.Time              `json:"timestamp"`
	SessionID  string                 `json:"session_id,omitempty"`
}

func (h *handler) newProcessResp(out query.ProcessOutput) processResp {
	return processResp{
		Success:    out.Success,
		Message:    out.Message,
		Data:       out.Data,
		Intent:     string(out.Intent),
		Confidence: out.Confidence,
		Timestamp:  out.Timestamp,
		SessionID:  out.SessionID,
	}
}

type intentResp struct {
	Intent      string   `json:"intent"`
	Description string   `json:"description"`
	Examples    []string `json:"examples,omitempty"`
}

type intentsResp struct {
	Intents []intentResp `json:"intents"`
	Count   int          `json:"count"`
}

func (h *handler) newIntentsResp(out query.IntentsOutput) intentsResp {
	intents := make([]intentResp, len(out.Intents))
	for i, entry := range out.Intents {
		intents[i] = intentResp{
			Intent:      string(entry.Intent),
			Description: entry.Description,
			Examples:    entry.Examples,
		}
	}
	return intentsResp{
		Intents: intents,
		Count:   out.Count,
	}
}

type sessionEntryResp struct {
	Timestamp  time.Time              `json:"timestamp"`
	RawQuery   string                 `json:"raw_query"`
	Intent     string                 `json:"intent"`
	Confidence float64                `json:"confidence"`
	Result     map[string]interface{} `json:"result,omitempty"`
}

type sessionResp struct {
	SessionID string             `json:"session_id"`
	CreatedAt time.Time          `json:"created_at"`
	Entries   []sessionEntryResp `json:"entries"`
}

func (h *handler) newSessionResp(record session.Record) sessionResp {
	entries := make([]sessionEntryResp, len(record.Entries))
	for i, entry := range record.Entries {
		entries[i] = sessionEntryResp{
			Timestamp:  entry.Timestamp,
			RawQuery:   entry.RawQuery,
			Intent:     entry.Intent,
			Confidence: entry.Confidence,
			Result:     entry.Result,
		}
	}
	return sessionResp{
		SessionID: record.SessionID,
		CreatedAt: record.CreatedAt,
		Entries:   entries,
	}
}
