package server_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/adrianliechti/wingman-speak/config"
	"github.com/adrianliechti/wingman-speak/server"

	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")

	require.NoError(t, os.WriteFile(path, []byte(`
synthesizer:
  url: http://localhost:9999/tts
player:
  disabled: true
authorizers:
  - type: static
    token: secret
`), 0644))

	t.Setenv("BAIDU_TTS_SAVE_DIR", "")
	t.Setenv("BAIDU_TTS_API_URL", "")

	ctx := context.Background()

	cfg, err := config.Load(ctx, config.Flags{Path: path, SaveDir: t.TempDir()})
	require.NoError(t, err)

	s, err := server.New(ctx, cfg)
	require.NoError(t, err)

	ts := httptest.NewServer(s)
	t.Cleanup(ts.Close)

	return ts
}

func TestHealth(t *testing.T) {
	ts := newServer(t)

	resp, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)

	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestMCPRequiresAuth(t *testing.T) {
	ts := newServer(t)

	for _, token := range []string{"", "wrong"} {
		req, _ := http.NewRequest(http.MethodPost, ts.URL+"/mcp", nil)

		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)

		resp.Body.Close()

		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	}
}

func TestMCPAuthorized(t *testing.T) {
	ts := newServer(t)

	req, _ := http.NewRequest(http.MethodPost, ts.URL+"/mcp", nil)
	req.Header.Set("Authorization", "Bearer secret")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)

	resp.Body.Close()

	require.NotEqual(t, http.StatusUnauthorized, resp.StatusCode)
}
