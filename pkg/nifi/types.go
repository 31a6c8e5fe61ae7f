package nifi

import (
	"crypto/tls"
	"fmt"
	"net/http"
)

// Config holds NiFi client configuration.
type Config struct {
	BaseURL    string
	Username   string
	Password   string
	VerifySSL  bool
	MaxRetries int
	HTTPClient *http.Client
}

// Validate validates the configuration and fills in defaults.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.MaxRetries <= 0 {
		c.MaxRetries = DefaultMaxRetries
	}
	if c.HTTPClient == nil {
		transport := http.DefaultTransport
		if !c.VerifySSL {
			transport = &http.Transport{
				TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
			}
		}
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout, Transport: transport}
	}
	return nil
}

// Position is a canvas coordinate for a placed component.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ProcessGroup is a named container of processors and connections.
type ProcessGroup struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Comments      string `json:"comments,omitempty"`
	FlowFileCount int    `json:"flow_file_count"`
	FlowFileSize  int64  `json:"flow_file_size"`
	RunningCount  int    `json:"running_count"`
	StoppedCount  int    `json:"stopped_count"`
	InvalidCount  int    `json:"invalid_count"`
	DisabledCount int    `json:"disabled_count"`
}

// Processor is a unit of work placed inside a process group.
type Processor struct {
	ID               string                 `json:"id"`
	Name             string                 `json:"name"`
	Type             string                 `json:"type,omitempty"`
	State            string                 `json:"state,omitempty"`
	RunStatus        string                 `json:"run_status,omitempty"`
	Comments         string                 `json:"comments,omitempty"`
	ValidationErrors []string               `json:"validation_errors,omitempty"`
	Properties       map[string]interface{} `json:"properties,omitempty"`
	Relationships    []string               `json:"relationships,omitempty"`
}

// Connection is a directed edge between two components.
type Connection struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	SourceID        string `json:"source_id,omitempty"`
	SourceName      string `json:"source_name,omitempty"`
	DestinationID   string `json:"destination_id,omitempty"`
	DestinationName string `json:"destination_name,omitempty"`
	FlowFileCount   int    `json:"flow_file_count"`
	FlowFileSize    int64  `json:"flow_file_size"`
}

// Template is a reusable snapshot of a process group's components.
type Template struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description,omitempty"`
	Timestamp       string `json:"timestamp,omitempty"`
	EncodingVersion string `json:"encoding_version,omitempty"`
}

// SearchResults groups matched components by type.
type SearchResults map[string][]map[string]interface{}

// Total returns the number of matched components across all buckets.
func (r SearchResults) Total() int {
	total := 0
	for _, components := range r {
		total += len(components)
	}
	return total
}

// APIError carries a NiFi API failure with its HTTP status when known.
type APIError struct {
	Message    string
	StatusCode int
}

func (e *APIError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("nifi: API error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("nifi: %s", e.Message)
}

// nifiImpl is the internal implementation of INiFi
type nifiImpl struct {
	baseURL    string
	username   string
	password   string
	maxRetries int
	httpClient *http.Client

	authToken string
}
