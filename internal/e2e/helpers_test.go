package e2e

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"mangastudio/internal/httpapi"
	"mangastudio/internal/validator"
)

// createProject lays out a temporary project root: config/models.json holding
// manifest plus one empty file per entry of files (relative to the root).
// Names ending in "/" become directories.
func createProject(t *testing.T, manifest string, files ...string) string {
	t.Helper()
	root := t.TempDir()
	mustWrite(t, filepath.Join(root, "config", "models.json"), manifest)
	for _, f := range files {
		p := filepath.Join(root, filepath.FromSlash(f))
		if f[len(f)-1] == '/' {
			if err := os.MkdirAll(p, 0o755); err != nil {
				t.Fatalf("mkdir %s: %v", p, err)
			}
			continue
		}
		mustWrite(t, p, "")
	}
	return root
}

func mustWrite(t *testing.T, path, body string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// newServerForProject serves a real validator over root. env stands in for
// the process environment.
func newServerForProject(t *testing.T, root string, env map[string]string) (*httptest.Server, *validator.Validator) {
	t.Helper()
	v := validator.New(validator.Options{
		ProjectRoot: root,
		Getenv:      func(k string) string { return env[k] },
		Workers:     4,
	})
	srv := httptest.NewServer(httpapi.NewMux(v))
	t.Cleanup(srv.Close)
	return srv, v
}

func httpGet(t *testing.T, url string) (*http.Response, []byte) {
	t.Helper()
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, url, nil)
	if err != nil {
		t.Fatalf("new req: %v", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do req: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	return resp, body
}
