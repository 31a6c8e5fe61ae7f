package nifi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler, cfg Config) INiFi {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg.BaseURL = srv.URL
	client, err := New(cfg)
	require.NoError(t, err)
	return client
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()

	t.Run("obtains token and sends bearer header", func(t *testing.T) {
		var sawAuth atomic.Value

		mux := http.NewServeMux()
		mux.HandleFunc("/access/token", func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.NoError(t, r.ParseForm())
			require.Equal(t, "admin", r.FormValue("username"))
			require.Equal(t, "secret", r.FormValue("password"))
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte("token-abc\n"))
		})
		mux.HandleFunc("/flow/status", func(w http.ResponseWriter, r *http.Request) {
			sawAuth.Store(r.Header.Get("Authorization"))
			w.Write([]byte(`{}`))
		})

		client := newTestClient(t, mux, Config{Username: "admin", Password: "secret"})

		require.NoError(t, client.Authenticate(ctx))

		_, err := client.GetControllerStatus(ctx)
		require.NoError(t, err)
		require.Equal(t, "Bearer token-abc", sawAuth.Load())
	})

	t.Run("no credentials is a no-op", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/access/token", func(w http.ResponseWriter, r *http.Request) {
			t.Error("token endpoint should not be called")
		})

		client := newTestClient(t, mux, Config{})
		require.NoError(t, client.Authenticate(ctx))
	})

	t.Run("rejected credentials return API error", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/access/token", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte("invalid credentials"))
		})

		client := newTestClient(t, mux, Config{Username: "admin", Password: "wrong"})

		err := client.Authenticate(ctx)
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
		require.Contains(t, apiErr.Message, "invalid credentials")
	})
}

func TestGetProcessGroups(t *testing.T) {
	ctx := context.Background()

	mux := http.NewServeMux()
	mux.HandleFunc("/flow/process-groups/root", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"processGroupFlow": {
				"flow": {
					"processGroups": [
						{
							"component": {"id": "pg-1", "name": "Ingest", "comments": "landing zone"},
							"status": {"aggregateSnapshot": {"flowFilesQueued": 12, "bytesQueued": 2048, "runningCount": 3, "stoppedCount": 1}}
						},
						{
							"component": {"id": "pg-2", "name": "Enrichment"},
							"status": {"aggregateSnapshot": {}}
						}
					]
				}
			}
		}`))
	})

	client := newTestClient(t, mux, Config{})

	groups, err := client.GetProcessGroups(ctx, "root")
	require.NoError(t, err)
	require.Len(t, groups, 2)

	require.Equal(t, "pg-1", groups[0].ID)
	require.Equal(t, "Ingest", groups[0].Name)
	require.Equal(t, "landing zone", groups[0].Comments)
	require.Equal(t, 12, groups[0].FlowFileCount)
	require.Equal(t, int64(2048), groups[0].FlowFileSize)
	require.Equal(t, 3, groups[0].RunningCount)
	require.Equal(t, 1, groups[0].StoppedCount)

	require.Equal(t, "Enrichment", groups[1].Name)
	require.Zero(t, groups[1].FlowFileCount)
}

func TestDoRequestErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("API errors are terminal and never retried", func(t *testing.T) {
		var hits atomic.Int32

		mux := http.NewServeMux()
		mux.HandleFunc("/flow/process-groups/missing", func(w http.ResponseWriter, r *http.Request) {
			hits.Add(1)
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte("Unable to locate group"))
		})

		client := newTestClient(t, mux, Config{MaxRetries: 3})

		_, err := client.GetProcessGroups(ctx, "missing")
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, http.StatusNotFound, apiErr.StatusCode)
		require.Contains(t, apiErr.Message, "Unable to locate group")
		require.Equal(t, int32(1), hits.Load())
	})

	t.Run("server error on mutation surfaces status", func(t *testing.T) {
		var hits atomic.Int32

		mux := http.NewServeMux()
		mux.HandleFunc("/process-groups/root/process-groups", func(w http.ResponseWriter, r *http.Request) {
			hits.Add(1)
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte("cluster is still initializing"))
		})

		client := newTestClient(t, mux, Config{MaxRetries: 3})

		_, err := client.CreateProcessGroup(ctx, "root", "ETL Pipeline", nil)
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
		require.Equal(t, int32(1), hits.Load())
	})
}

func TestCreateProcessGroup(t *testing.T) {
	ctx := context.Background()

	mux := http.NewServeMux()
	mux.HandleFunc("/process-groups/root/process-groups", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"component": {"id": "pg-9", "name": "ETL Pipeline"}}`))
	})

	client := newTestClient(t, mux, Config{})

	group, err := client.CreateProcessGroup(ctx, "root", "ETL Pipeline", &Position{X: 100, Y: 200})
	require.NoError(t, err)
	require.Equal(t, "pg-9", group.ID)
	require.Equal(t, "ETL Pipeline", group.Name)
}

func TestSearchComponents(t *testing.T) {
	ctx := context.Background()

	mux := http.NewServeMux()
	mux.HandleFunc("/flow/search-results", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "kafka", r.URL.Query().Get("q"))
		w.Write([]byte(`{
			"searchResultsDTO": {
				"processorResults": [
					{"id": "p-1", "name": "ConsumeKafka"},
					{"id": "p-2", "name": "PublishKafka"}
				],
				"processGroupResults": [
					{"id": "pg-1", "name": "Kafka Ingest"}
				]
			}
		}`))
	})

	client := newTestClient(t, mux, Config{})

	results, err := client.SearchComponents(ctx, "kafka")
	require.NoError(t, err)
	require.Equal(t, 3, results.Total())
	require.Len(t, results["processors"], 2)
	require.Len(t, results["process_groups"], 1)
	require.Empty(t, results["connections"])
}

func TestHealthCheck(t *testing.T) {
	ctx := context.Background()

	t.Run("healthy when diagnostics respond", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/system-diagnostics", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"systemDiagnostics": {}}`))
		})

		client := newTestClient(t, mux, Config{})
		require.True(t, client.HealthCheck(ctx))
	})

	t.Run("unhealthy on API error", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/system-diagnostics", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})

		client := newTestClient(t, mux, Config{})
		require.False(t, client.HealthCheck(ctx))
	})
}
