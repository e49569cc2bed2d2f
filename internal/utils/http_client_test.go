package utils

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-exercism-backup/internal/logger"
)

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient()
	client2 := NewHTTPClient()

	require.NotNil(t, client1.Client)
	assert.NotSame(t, client1.Client, client2.Client)
}

func TestNewHTTPClient_Options(t *testing.T) {
	var gotAuth, gotAgent, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotAgent = r.Header.Get("User-Agent")
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := NewHTTPClient(
		WithBaseURL(srv.URL+"/api/"),
		WithTimeout(5*time.Second),
		WithBearerToken("  secret "),
		WithUserAgent("exbackup/test"),
	)

	resp, err := client.R().Get("/v2/solutions")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode())
	assert.Equal(t, "Bearer secret", gotAuth)
	assert.Equal(t, "exbackup/test", gotAgent)
	assert.Equal(t, "/api/v2/solutions", gotPath)
	assert.Equal(t, 5*time.Second, client.GetClient().Timeout)
}

func TestNewHTTPClient_EmptyOptionsAreIgnored(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
	}))
	defer srv.Close()

	client := NewHTTPClient(WithBaseURL(srv.URL), WithBearerToken(""), WithTimeout(0))

	_, err := client.R().Get("/")
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
	assert.Zero(t, client.GetClient().Timeout)
}

func TestWithRunIDHeader(t *testing.T) {
	var got []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = append(got, r.Header.Get(RunIDHeader))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := NewHTTPClient(WithBaseURL(srv.URL), WithRunIDHeader())

	_, err := client.R().SetContext(WithRunID(context.Background(), "run-1")).Get("/")
	require.NoError(t, err)
	_, err = client.R().SetContext(context.Background()).Get("/")
	require.NoError(t, err)

	assert.Equal(t, []string{"run-1", ""}, got)
}

func TestWithRequestLogging_DoesNotAlterResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	}))
	defer srv.Close()

	client := NewHTTPClient(WithBaseURL(srv.URL), WithRequestLogging(logger.Nop()))

	resp, err := client.R().Get("/")
	require.NoError(t, err)
	assert.Equal(t, http.StatusTeapot, resp.StatusCode())
	assert.Equal(t, "short and stout", resp.String())
}
