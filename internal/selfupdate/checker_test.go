package selfupdate

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func releaseServer(t *testing.T, tag string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/repos/anvaya/paperforge/releases/latest", r.URL.Path)
		fmt.Fprintf(w, `{"tag_name": %q, "html_url": "https://github.com/anvaya/paperforge/releases/tag/%s"}`, tag, tag)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestCheck_UpdateAvailable(t *testing.T) {
	srv := releaseServer(t, "v1.2.0")
	checker := NewChecker(WithBaseURL(srv.URL))

	result, err := checker.Check(context.Background(), &CheckInput{Version: "v1.1.0"})
	require.NoError(t, err)
	assert.True(t, result.UpdateAvailable)
	assert.Equal(t, "v1.1.0", result.CurrentVersion)
	assert.Equal(t, "v1.2.0", result.LatestVersion)
	assert.Contains(t, result.ReleaseURL, "v1.2.0")
}

func TestCheck_AlreadyLatest(t *testing.T) {
	srv := releaseServer(t, "v1.1.0")
	checker := NewChecker(WithBaseURL(srv.URL))

	result, err := checker.Check(context.Background(), &CheckInput{Version: "v1.1.0"})
	require.NoError(t, err)
	assert.False(t, result.UpdateAvailable)
}

func TestCheck_NonSemverVersion(t *testing.T) {
	srv := releaseServer(t, "v1.2.0")
	checker := NewChecker(WithBaseURL(srv.URL))

	// A dev build has no comparable version, so no update is offered.
	result, err := checker.Check(context.Background(), &CheckInput{Version: "(devel)"})
	require.NoError(t, err)
	assert.False(t, result.UpdateAvailable)
	assert.Equal(t, "v1.2.0", result.LatestVersion)
}

func TestCheck_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()
	checker := NewChecker(WithBaseURL(srv.URL))

	_, err := checker.Check(context.Background(), &CheckInput{Version: "v1.0.0"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestCheck_EmptyTag(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"html_url": "https://example.com"}`)
	}))
	defer srv.Close()
	checker := NewChecker(WithBaseURL(srv.URL))

	_, err := checker.Check(context.Background(), &CheckInput{Version: "v1.0.0"})
	require.Error(t, err)
}
