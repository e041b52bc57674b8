package sheets

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lohum/schemetrack/internal/config"
	"github.com/lohum/schemetrack/internal/domain/scheme"
	"github.com/lohum/schemetrack/internal/infrastructure/monitoring/logging"
	"github.com/lohum/schemetrack/pkg/errors"
)

type recordingSnapshotCache struct {
	feed *scheme.Feed
	err  error
}

func (c *recordingSnapshotCache) SetSnapshot(_ context.Context, feed *scheme.Feed) error {
	c.feed = feed
	return c.err
}

func newSheetServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/oauth/v2/token", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "refresh_token", r.Form.Get("grant_type"))
		assert.Equal(t, "client-id", r.Form.Get("client_id"))
		json.NewEncoder(w).Encode(map[string]string{"access_token": "token-123"})
	})
	mux.HandleFunc("/api/v2/sheet-1", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Zoho-oauthtoken token-123", r.Header.Get("Authorization"))
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "worksheet.records.fetch", r.Form.Get("method"))
		assert.Equal(t, "dashboard", r.Form.Get("worksheet_name"))
		json.NewEncoder(w).Encode(map[string]any{
			"status": "success",
			"records": []map[string]any{
				{"Scheme": "A", "Ministry / Department": "ministry of mines"},
				{"Scheme": "B"},
			},
		})
	})
	return httptest.NewServer(mux)
}

func testSheetsConfig(baseURL string) config.SheetsConfig {
	return config.SheetsConfig{
		TokenURL:     baseURL + "/oauth/v2/token",
		APIBaseURL:   baseURL + "/api/v2",
		SheetID:      "sheet-1",
		Worksheet:    "dashboard",
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		RefreshToken: "refresh-token",
		Timeout:      5 * time.Second,
	}
}

func TestSyncerRun(t *testing.T) {
	server := newSheetServer(t)
	defer server.Close()

	path := filepath.Join(t.TempDir(), "data.json")
	syncer := NewSyncer(NewClient(testSheetsConfig(server.URL)), path, nil, logging.NewNopLogger(), nil)
	syncer.now = func() time.Time {
		return time.Date(2026, time.August, 1, 10, 0, 0, 0, time.UTC)
	}

	count, err := syncer.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var written map[string]any
	require.NoError(t, json.Unmarshal(raw, &written))
	assert.Equal(t, "2026-08-01T10:00:00Z", written["last_modified"])
	assert.Equal(t, float64(2), written["records_count"])

	records := written["records"].([]any)
	first := records[0].(map[string]any)
	assert.Equal(t, "Ministry of Mines", first["Ministry"])
}

func TestSyncerMirrorsSnapshotToCache(t *testing.T) {
	server := newSheetServer(t)
	defer server.Close()

	snapshots := &recordingSnapshotCache{}
	path := filepath.Join(t.TempDir(), "data.json")
	syncer := NewSyncer(NewClient(testSheetsConfig(server.URL)), path, snapshots, logging.NewNopLogger(), nil)

	count, err := syncer.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	require.NotNil(t, snapshots.feed, "synced feed must be mirrored to the cache")
	assert.Equal(t, 2, snapshots.feed.RecordsCount)
	require.Len(t, snapshots.feed.Records, 2)
	assert.Equal(t, "Ministry of Mines", snapshots.feed.Records[0].Ministry)
}

func TestSyncerCacheFailureIsNonFatal(t *testing.T) {
	server := newSheetServer(t)
	defer server.Close()

	snapshots := &recordingSnapshotCache{err: errors.Unavailable("redis down")}
	path := filepath.Join(t.TempDir(), "data.json")
	syncer := NewSyncer(NewClient(testSheetsConfig(server.URL)), path, snapshots, logging.NewNopLogger(), nil)

	count, err := syncer.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	_, statErr := os.Stat(path)
	assert.NoError(t, statErr, "feed file is still written when the mirror fails")
}

func TestSyncerTokenFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"error": "invalid_client"})
	}))
	defer server.Close()

	path := filepath.Join(t.TempDir(), "data.json")
	syncer := NewSyncer(NewClient(testSheetsConfig(server.URL)), path, nil, logging.NewNopLogger(), nil)

	_, err := syncer.Run(context.Background())
	require.Error(t, err)
	assert.Equal(t, errors.CodeSheetError, errors.GetCode(err))

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "feed file must not be touched on failure")
}

func TestSyncerSheetAPIError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/oauth/v2/token", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"access_token": "token-123"})
	})
	mux.HandleFunc("/api/v2/sheet-1", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"status": "failure", "error_code": 2862})
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	path := filepath.Join(t.TempDir(), "data.json")
	syncer := NewSyncer(NewClient(testSheetsConfig(server.URL)), path, nil, logging.NewNopLogger(), nil)

	_, err := syncer.Run(context.Background())
	require.Error(t, err)
	assert.Equal(t, errors.CodeSheetError, errors.GetCode(err))
}
