package nifi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// newNiFiImpl creates a new NiFi implementation
func newNiFiImpl(cfg Config) *nifiImpl {
	return &nifiImpl{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		username:   cfg.Username,
		password:   cfg.Password,
		maxRetries: cfg.MaxRetries,
		httpClient: cfg.HTTPClient,
	}
}

// Authenticate obtains a bearer token via POST /access/token.
// A client without configured credentials authenticates as a no-op.
func (n *nifiImpl) Authenticate(ctx context.Context) error {
	if n.username == "" || n.password == "" {
		return nil
	}

	form := url.Values{}
	form.Set("username", n.username)
	form.Set("password", n.password)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		n.baseURL+"/access/token", strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("nifi: failed to build token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("nifi: token request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(resp.Body)
		return &APIError{
			Message:    fmt.Sprintf("authentication failed: %s", strings.TrimSpace(string(body))),
			StatusCode: resp.StatusCode,
		}
	}

	token, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("nifi: failed to read token: %w", err)
	}
	n.authToken = strings.TrimSpace(string(token))

	return nil
}

// HealthCheck reports reachability by probing system diagnostics.
func (n *nifiImpl) HealthCheck(ctx context.Context) bool {
	_, err := n.GetSystemDiagnostics(ctx)
	return err == nil
}

// doRequest performs one HTTP call against the NiFi API and decodes the JSON
// response. Transport failures are retried with exponential backoff, but only
// for idempotent read operations; non-2xx responses are terminal either way.
func (n *nifiImpl) doRequest(ctx context.Context, method, path string, params url.Values, payload interface{}, idempotent bool) (map[string]interface{}, error) {
	attempts := 1
	if idempotent {
		attempts = n.maxRetries
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(1<<uint(attempt-1)) * time.Second
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		result, err := n.send(ctx, method, path, params, payload)
		if err == nil {
			return result, nil
		}

		// API errors carry a status code and are never retried.
		if _, ok := err.(*APIError); ok {
			return nil, err
		}
		lastErr = err
	}

	return nil, fmt.Errorf("nifi: request failed after %d attempt(s): %w", attempts, lastErr)
}

func (n *nifiImpl) send(ctx context.Context, method, path string, params url.Values, payload interface{}) (map[string]interface{}, error) {
	endpoint := n.baseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("nifi: failed to marshal request: %w", err)
		}
		body = bytes.NewBuffer(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("nifi: failed to build request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if n.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+n.authToken)
	}

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("nifi: API call failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("nifi: failed to read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return nil, &APIError{
			Message:    fmt.Sprintf("%s %s: %s", method, path, strings.TrimSpace(string(raw))),
			StatusCode: resp.StatusCode,
		}
	}

	if len(raw) == 0 {
		return map[string]interface{}{}, nil
	}

	var result map[string]interface{}
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("nifi: failed to decode response: %w", err)
	}

	return result, nil
}
