package selfupdate

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/repos/mjard/sciquiz/releases/latest" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(`{"tag_name":"v1.2.0","html_url":"https://example.com/v1.2.0"}`))
	}))
	defer server.Close()

	checker := NewChecker(WithBaseURL(server.URL))

	t.Run("newer available", func(t *testing.T) {
		res, err := checker.Check(context.Background(), &CheckInput{Version: "v1.1.0"})
		require.NoError(t, err)
		assert.True(t, res.UpdateAvailable)
		assert.Equal(t, "v1.2.0", res.LatestVersion)
	})

	t.Run("already latest", func(t *testing.T) {
		res, err := checker.Check(context.Background(), &CheckInput{Version: "v1.2.0"})
		require.NoError(t, err)
		assert.False(t, res.UpdateAvailable)
	})

	t.Run("tag without v prefix", func(t *testing.T) {
		res, err := checker.Check(context.Background(), &CheckInput{Version: "1.3.0"})
		require.NoError(t, err)
		assert.False(t, res.UpdateAvailable)
	})
}

func TestCanonicalVersion(t *testing.T) {
	assert.Equal(t, "v1.0.0", canonicalVersion("1.0.0"))
	assert.Equal(t, "v1.0.0", canonicalVersion("v1.0.0"))
	assert.Equal(t, "", canonicalVersion("  "))
}
