package download

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/glorpus-work/plugport/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sum(content string) string {
	h := sha256.Sum256([]byte(content))
	return hex.EncodeToString(h[:])
}

func serve(t *testing.T, status int, body string, hits *int32) *url.URL {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if hits != nil {
			atomic.AddInt32(hits, 1)
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	u, err := url.Parse(server.URL + "/plugins/demo.zip")
	require.NoError(t, err)
	return u
}

func TestNewManager(t *testing.T) {
	m := NewManager(time.Second, "")
	assert.Equal(t, time.Second, m.client.Timeout)
	assert.Equal(t, "plugport/1.0", m.userAgent)
}

func TestFetch(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		checksum string
		wantErr  error
	}{
		{name: "successful download", status: http.StatusOK, body: "zip content"},
		{name: "valid checksum", status: http.StatusOK, body: "zip content", checksum: sum("zip content")},
		{name: "checksum mismatch", status: http.StatusOK, body: "zip content", checksum: sum("other"), wantErr: errors.ErrFileHashMismatch},
		{name: "not found", status: http.StatusNotFound, wantErr: errors.ErrDownloadFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := serve(t, tt.status, tt.body, nil)
			dir := t.TempDir()

			path, err := NewManager(time.Second, "test").Fetch(context.Background(),
				Item{URL: u, Checksum: tt.checksum, Filename: "demo.zip"}, Options{Dir: dir})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.NoFileExists(t, filepath.Join(dir, "demo.zip"))
				entries, _ := os.ReadDir(dir)
				assert.Empty(t, entries, "temp files must be cleaned up")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, filepath.Join(dir, "demo.zip"), path)
			content, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, tt.body, string(content))
		})
	}
}

func TestFetch_ReusesVerifiedFile(t *testing.T) {
	var hits int32
	u := serve(t, http.StatusOK, "zip content", &hits)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "demo.zip"), []byte("zip content"), 0o644))

	m := NewManager(time.Second, "")
	item := Item{URL: u, Checksum: sum("zip content"), Filename: "demo.zip"}

	_, err := m.Fetch(context.Background(), item, Options{Dir: dir})
	require.NoError(t, err)
	assert.Equal(t, int32(0), atomic.LoadInt32(&hits))

	_, err = m.Fetch(context.Background(), item, Options{Dir: dir, Force: true})
	require.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
}

func TestFetch_InvalidInput(t *testing.T) {
	u, _ := url.Parse("http://localhost/demo.zip")
	m := NewManager(time.Second, "")
	ctx := context.Background()

	_, err := m.Fetch(ctx, Item{URL: u, Filename: "demo.zip"}, Options{Dir: "relative"})
	assert.ErrorIs(t, err, errors.ErrInvalidPath)

	_, err = m.Fetch(ctx, Item{Filename: "demo.zip"}, Options{Dir: t.TempDir()})
	assert.ErrorIs(t, err, errors.ErrDownloadFailed)

	_, err = m.Fetch(ctx, Item{URL: u, Filename: "../demo.zip"}, Options{Dir: t.TempDir()})
	assert.ErrorIs(t, err, errors.ErrInvalidPath)
}
