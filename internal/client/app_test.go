package client

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-exercism-backup/internal/adapter"
	"github.com/MKhiriev/go-exercism-backup/internal/config"
	"github.com/MKhiriev/go-exercism-backup/internal/logger"
	"github.com/MKhiriev/go-exercism-backup/internal/utils"
	"github.com/MKhiriev/go-exercism-backup/models"
)

const (
	testToken    = "test-token"
	twoFerUUID   = "a0c7e6f1b7b94b8d9d5f3b1b8b7f1c2d"
	lastIterated = "2024-02-11T10:00:00Z"
)

// fakeExercism serves a single published go/two-fer solution.
type fakeExercism struct {
	downloads atomic.Int64

	mu     sync.Mutex
	runIDs map[string]struct{}
}

func (f *fakeExercism) routes(t *testing.T) http.Handler {
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Authorization") != "Bearer "+testToken {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			f.mu.Lock()
			f.runIDs[r.Header.Get(utils.RunIDHeader)] = struct{}{}
			f.mu.Unlock()
			next.ServeHTTP(w, r)
		})
	})

	r.Get("/v2/solutions", func(w http.ResponseWriter, _ *http.Request) {
		ts := lastIterated
		writeJSON(t, w, models.SolutionsPage{
			Results: []models.Solution{{
				UUID:           twoFerUUID,
				Status:         models.RemoteStatusPublished,
				NumIterations:  1,
				LastIteratedAt: &ts,
				Track:          models.Track{Name: "go", Title: "Go"},
				Exercise:       models.Exercise{Name: "two-fer", Title: "Two Fer"},
			}},
			Meta: models.PageMeta{CurrentPage: 1, TotalCount: 1, TotalPages: 1},
		})
	})
	r.Get("/v1/solutions/{uuid}", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, models.SolutionResponse{Solution: models.SolutionDetails{
			ID:    twoFerUUID,
			Files: []string{"two_fer.go", ".exercism/metadata.json"},
		}})
	})
	r.Get("/v1/solutions/{uuid}/files/*", func(w http.ResponseWriter, r *http.Request) {
		f.downloads.Add(1)
		_, _ = w.Write([]byte("content of " + chi.URLParam(r, "*")))
	})

	return r
}

func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func newTestConfig(baseURL, dir string) *config.ClientConfig {
	return &config.ClientConfig{
		App:     config.ClientApp{Token: testToken, Version: "test"},
		Adapter: config.ClientAdapter{BaseURL: baseURL, RequestTimeout: 5 * time.Second},
		Backup: config.BackupSettings{
			Path:          filepath.Join(dir, "backup"),
			Status:        models.SolutionStatusAny,
			Overwrite:     models.OverwriteIfNewer,
			Iterations:    models.IterationsDoNotSync,
			MaxDownloads:  2,
			IterationsDir: "_iterations",
		},
		Storage: config.ClientStorage{CatalogDSN: filepath.Join(dir, "catalog.db")},
	}
}

func TestApp_BackupThenList(t *testing.T) {
	fake := &fakeExercism{runIDs: map[string]struct{}{}}
	srv := httptest.NewServer(fake.routes(t))
	defer srv.Close()

	dir := t.TempDir()
	cfg := newTestConfig(srv.URL, dir)
	app := NewApp(cfg, logger.Nop())
	ctx := context.Background()

	require.NoError(t, app.Backup(ctx))

	data, err := os.ReadFile(filepath.Join(cfg.Backup.Path, "go", "two-fer", "two_fer.go"))
	require.NoError(t, err)
	assert.Equal(t, "content of two_fer.go", string(data))

	data, err = os.ReadFile(filepath.Join(cfg.Backup.Path, "go", "two-fer", ".exercism", "metadata.json"))
	require.NoError(t, err)
	assert.Equal(t, "content of .exercism/metadata.json", string(data))

	assert.FileExists(t, filepath.Join(cfg.Backup.Path, "go", "two-fer", ".auxiliaire", "backup_state.json"))
	assert.Equal(t, int64(2), fake.downloads.Load())

	require.NoError(t, app.Backup(ctx))
	assert.Equal(t, int64(2), fake.downloads.Load(), "an up to date solution is not downloaded again")

	fake.mu.Lock()
	assert.Len(t, fake.runIDs, 2, "each run sends its own id")
	assert.NotContains(t, fake.runIDs, "")
	fake.mu.Unlock()

	var out bytes.Buffer
	require.NoError(t, app.List(ctx, &out, models.CatalogFilter{}))
	assert.Contains(t, out.String(), "two-fer")
	assert.Contains(t, out.String(), lastIterated)
	assert.Contains(t, out.String(), "1 solution(s)")

	out.Reset()
	require.NoError(t, app.List(ctx, &out, models.CatalogFilter{Tracks: []string{"rust"}}))
	assert.NotContains(t, out.String(), "two-fer")
}

func TestApp_Backup_DryRunCreatesNothing(t *testing.T) {
	fake := &fakeExercism{runIDs: map[string]struct{}{}}
	srv := httptest.NewServer(fake.routes(t))
	defer srv.Close()

	dir := t.TempDir()
	cfg := newTestConfig(srv.URL, dir)
	cfg.Backup.DryRun = true
	cfg.Storage.CatalogDSN = ""

	require.NoError(t, NewApp(cfg, logger.Nop()).Backup(context.Background()))

	assert.NoDirExists(t, cfg.Backup.Path)
	assert.Zero(t, fake.downloads.Load())
}

func TestApp_Backup_MissingPath(t *testing.T) {
	cfg := newTestConfig("http://127.0.0.1:1", t.TempDir())
	cfg.Backup.Path = " "

	err := NewApp(cfg, logger.Nop()).Backup(context.Background())

	assert.ErrorIs(t, err, config.ErrMissingBackupPath)
}

func TestApp_ResolveToken(t *testing.T) {
	tests := []struct {
		name      string
		token     string
		creds     adapter.Credentials
		credsErr  error
		wantToken string
		wantErr   error
	}{
		{
			name:      "configured token wins",
			token:     "from-flag",
			creds:     adapter.Credentials{Token: "from-cli"},
			wantToken: "from-flag",
		},
		{
			name:      "falls back to cli token",
			creds:     adapter.Credentials{Token: "from-cli", APIBaseURL: "https://api.exercism.io/v1"},
			wantToken: "from-cli",
		},
		{
			name:     "no token anywhere",
			credsErr: adapter.ErrNoCredentials,
			wantErr:  adapter.ErrNoCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := newTestConfig(config.DefaultAPIBaseURL, t.TempDir())
			cfg.App.Token = tt.token
			app := NewApp(cfg, logger.Nop())
			app.loadCredentials = func() (adapter.Credentials, error) { return tt.creds, tt.credsErr }

			err := app.resolveToken()

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, cfg.App.Token)
			assert.Equal(t, config.DefaultAPIBaseURL, cfg.Adapter.BaseURL, "the cli base url is not used")
		})
	}
}

func TestApp_List_CatalogDisabled(t *testing.T) {
	cfg := newTestConfig(config.DefaultAPIBaseURL, t.TempDir())
	cfg.Storage.CatalogDSN = ""

	err := NewApp(cfg, logger.Nop()).List(context.Background(), &bytes.Buffer{}, models.CatalogFilter{})

	assert.ErrorIs(t, err, ErrCatalogDisabled)
}
