package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "store.db"))
	require.NoError(t, err)
	t.Cleanup(store.Close)
	require.NoError(t, store.EnsureSchema(context.Background()))
	return store
}

func newTestServer(t *testing.T) (*httptest.Server, *SQLiteStore) {
	t.Helper()
	store := newTestStore(t)
	srv := httptest.NewServer(NewRouter(store, nil))
	t.Cleanup(srv.Close)
	return srv, store
}

func TestHealth(t *testing.T) {
	srv, _ := newTestServer(t)

	res, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)
}

func TestSetup_Idempotent(t *testing.T) {
	srv, _ := newTestServer(t)

	for i := 0; i < 2; i++ {
		res, err := http.Post(srv.URL+"/api/setup", "application/json", nil)
		require.NoError(t, err)
		var body map[string]any
		require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
		res.Body.Close()
		require.Equal(t, http.StatusOK, res.StatusCode)
		require.Equal(t, true, body["success"])
	}
}

func TestLoad_FreshStoreReturnsSeedRow(t *testing.T) {
	srv, _ := newTestServer(t)

	res, err := http.Get(srv.URL + "/api/data")
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&envelope))
	require.JSONEq(t, `{}`, string(envelope.Data))
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	srv, _ := newTestServer(t)
	doc := `{"streak": 5, "startDate": "2026-03-01"}`

	res, err := http.Post(srv.URL+"/api/data", "application/json", strings.NewReader(doc))
	require.NoError(t, err)
	res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)

	res, err = http.Get(srv.URL + "/api/data")
	require.NoError(t, err)
	defer res.Body.Close()

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&envelope))
	require.JSONEq(t, doc, string(envelope.Data))
}

func TestSave_RejectsNonObjectBody(t *testing.T) {
	srv, _ := newTestServer(t)

	for _, body := range []string{"not json", `"just a string"`, `[1,2,3]`, ""} {
		res, err := http.Post(srv.URL+"/api/data", "application/json", strings.NewReader(body))
		require.NoError(t, err)
		var payload map[string]any
		require.NoError(t, json.NewDecoder(res.Body).Decode(&payload))
		res.Body.Close()
		require.Equal(t, http.StatusBadRequest, res.StatusCode, "body %q", body)
		require.Equal(t, "Invalid data", payload["error"])
	}
}

func TestSave_Overwrites(t *testing.T) {
	srv, store := newTestServer(t)
	ctx := context.Background()

	for _, doc := range []string{`{"streak":1}`, `{"streak":2}`} {
		res, err := http.Post(srv.URL+"/api/data", "application/json", strings.NewReader(doc))
		require.NoError(t, err)
		res.Body.Close()
		require.Equal(t, http.StatusOK, res.StatusCode)
	}

	data, err := store.Load(ctx)
	require.NoError(t, err)
	require.JSONEq(t, `{"streak":2}`, string(data))
}

func TestSQLiteStore_SeedRowIsEmptyObject(t *testing.T) {
	store := newTestStore(t)

	data, err := store.Load(context.Background())
	require.NoError(t, err)
	require.JSONEq(t, `{}`, string(data))
}
