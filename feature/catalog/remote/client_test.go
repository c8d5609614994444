package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(baseURL string) *Client {
	return NewClient(Config{BaseURL: baseURL, TimeoutSeconds: 2})
}

func TestClientList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "3", r.URL.Query().Get("_limit"))
		_ = json.NewEncoder(w).Encode([]map[string]any{
			{"id": 1, "title": "One"},
			{"id": 2, "title": "Two"},
		})
	}))
	defer srv.Close()

	raws, err := newTestClient(srv.URL).List(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, raws, 2)
	assert.Equal(t, "One", raws[0]["title"])
}

func TestClientCreate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Contains(t, r.Header.Get("Content-Type"), "application/json")

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Dune", body["title"])

		body["id"] = 101
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(body)
	}))
	defer srv.Close()

	raw, err := newTestClient(srv.URL).Create(context.Background(), map[string]any{"title": "Dune"})
	require.NoError(t, err)
	assert.Equal(t, float64(101), raw["id"])
}

func TestClientUpdate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/5", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]any{"id": 5, "title": "Updated"})
	}))
	defer srv.Close()

	raw, err := newTestClient(srv.URL).Update(context.Background(), 5, map[string]any{"title": "Updated"})
	require.NoError(t, err)
	assert.Equal(t, "Updated", raw["title"])
}

func TestClientDelete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/5", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	assert.NoError(t, newTestClient(srv.URL).Delete(context.Background(), 5))
}

func TestClientNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).List(context.Background(), 10)

	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
	assert.Equal(t, http.StatusInternalServerError, netErr.Status)
	assert.Equal(t, "list", netErr.Op)
}

func TestClientTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // Server is already gone when the client calls.

	err := newTestClient(srv.URL).Delete(context.Background(), 1)

	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
	assert.Error(t, netErr.Err)
}

func TestClientMalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).List(context.Background(), 10)

	var netErr *NetworkError
	assert.ErrorAs(t, err, &netErr)
}
