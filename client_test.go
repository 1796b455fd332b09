package curseforge

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testClient spins up an httptest server and a client pointed at it.
func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient("test-key", WithBaseURL(server.URL))
	require.NoError(t, err)
	return client
}

func TestNewClient(t *testing.T) {
	tests := []struct {
		name    string
		apiKey  string
		opts    []ClientOption
		wantErr error
		wantURL string
	}{
		{
			name:    "valid config",
			apiKey:  "test-key",
			wantURL: DefaultBaseURL,
		},
		{
			name:    "missing API key",
			apiKey:  "",
			wantErr: ErrMissingAPIKey,
		},
		{
			name:    "custom base URL",
			apiKey:  "test-key",
			opts:    []ClientOption{WithBaseURL("http://localhost:8080")},
			wantURL: "http://localhost:8080",
		},
		{
			name:    "trailing slash trimmed",
			apiKey:  "test-key",
			opts:    []ClientOption{WithBaseURL("http://localhost:8080/")},
			wantURL: "http://localhost:8080",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(tt.apiKey, tt.opts...)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantURL, client.baseURL)
			assert.Equal(t, tt.apiKey, client.apiKey)
			assert.NotNil(t, client.httpClient)
		})
	}
}

func TestClientOptions(t *testing.T) {
	t.Run("with custom http client", func(t *testing.T) {
		customClient := &http.Client{Timeout: 10 * time.Second}
		client, err := NewClient("test-key", WithHTTPClient(customClient))
		require.NoError(t, err)
		assert.Equal(t, customClient, client.httpClient)
	})

	t.Run("with user agent", func(t *testing.T) {
		client, err := NewClient("test-key", WithUserAgent("my-tool/1.0"))
		require.NoError(t, err)
		assert.Equal(t, "my-tool/1.0", client.userAgent)
	})
}

func TestRequestHeaders(t *testing.T) {
	t.Run("GET", func(t *testing.T) {
		client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "test-key", r.Header.Get("x-api-key"))
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			assert.Equal(t, "application/json", r.Header.Get("Accept"))
			assert.Equal(t, defaultUserAgent, r.Header.Get("User-Agent"))
			w.Write([]byte(`{"data":{"id":1}}`))
		})

		_, _, err := client.GetGame(context.Background(), 1)
		require.NoError(t, err)
	})

	t.Run("POST", func(t *testing.T) {
		client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "test-key", r.Header.Get("x-api-key"))
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			w.Write([]byte(`{"data":[]}`))
		})

		_, _, err := client.GetMods(context.Background(), []int{1})
		require.NoError(t, err)
	})
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		kind     ErrorKind
		sentinel error
	}{
		{"service unavailable", http.StatusServiceUnavailable, ErrorKindServiceUnavailable, ErrServiceUnavailable},
		{"internal server error", http.StatusInternalServerError, ErrorKindInternalServerError, ErrInternalServerError},
		{"bad gateway maps to internal", http.StatusBadGateway, ErrorKindInternalServerError, ErrInternalServerError},
		{"not found", http.StatusNotFound, ErrorKindNotFound, ErrNotFound},
		{"bad request", http.StatusBadRequest, ErrorKindBadRequest, ErrBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			})

			_, resp, err := client.GetMod(context.Background(), 7)
			require.Error(t, err)

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.kind, apiErr.Kind)
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.ErrorIs(t, err, tt.sentinel)

			// The raw response stays inspectable even on failure.
			require.NotNil(t, resp)
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}

func TestErrorMappingUnmapped(t *testing.T) {
	t.Run("teapot is not wrapped", func(t *testing.T) {
		client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		})

		_, _, err := client.GetGame(context.Background(), 1)
		require.Error(t, err)

		var apiErr *APIError
		assert.False(t, errors.As(err, &apiErr))
		assert.Contains(t, err.Error(), "unexpected status code 418")
	})

	t.Run("network failure propagates", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		client, err := NewClient("test-key", WithBaseURL(server.URL))
		require.NoError(t, err)
		server.Close()

		_, _, err = client.GetGame(context.Background(), 1)
		require.Error(t, err)

		var apiErr *APIError
		assert.False(t, errors.As(err, &apiErr))
	})
}

func TestServerErrorMessageOverride(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"title":"Bad Request","detail":"gameId is required"}`))
	})

	_, _, err := client.SearchMods(context.Background(), &SearchModsOptions{})
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "gameId is required", apiErr.Message)
	assert.Contains(t, apiErr.Body, "Bad Request")
}

func TestPaginationEnvelope(t *testing.T) {
	// Some endpoints spell the pagination field with a capital P; both
	// spellings must decode into Response.Pagination.
	tests := []struct {
		name string
		body string
	}{
		{"lowercase", `{"data":[],"pagination":{"index":0,"pageSize":20,"resultCount":0,"totalCount":57}}`},
		{"capitalized", `{"data":[],"Pagination":{"index":0,"pageSize":20,"resultCount":0,"totalCount":57}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			})

			_, resp, err := client.GetGames(context.Background(), nil)
			require.NoError(t, err)
			require.NotNil(t, resp.Pagination)
			assert.Equal(t, 20, resp.Pagination.PageSize)
			assert.Equal(t, int64(57), resp.Pagination.TotalCount)
		})
	}
}
