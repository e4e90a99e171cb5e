package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeProject lays out a project root with config/models.json and returns it.
func writeProject(t *testing.T, manifest string) string {
	t.Helper()
	root, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatalf("eval: %v", err)
	}
	if err := os.MkdirAll(filepath.Join(root, "config"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(root, "config", "models.json"), []byte(manifest), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	return root
}

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestValidate_AllPresentExitsZero(t *testing.T) {
	t.Setenv("MANGA_MODELS_PATH", "")
	root := writeProject(t, `{"llm": {"path": "models/llm.gguf", "type": "ggml"}}`)
	if err := os.MkdirAll(filepath.Join(root, "models"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "models", "llm.gguf"), nil, 0o644); err != nil {
		t.Fatal(err)
	}
	chdir(t, root)

	code, out, _ := runCLI(t, "models", "validate", "--log-level", "error")
	if code != exitOK {
		t.Fatalf("exit=%d out=%s", code, out)
	}
	if !strings.Contains(out, "Model Manager - model status") || !strings.Contains(out, "OK") {
		t.Fatalf("unexpected table:\n%s", out)
	}
}

func TestValidate_MissingAssetExitsOne(t *testing.T) {
	t.Setenv("MANGA_MODELS_PATH", "")
	root := writeProject(t, `{"sd": {"path": "models/sd", "type": "diffusers"}}`)
	chdir(t, root)

	code, out, stderr := runCLI(t, "models", "validate", "--json", "--log-level", "error")
	if code != exitMissing {
		t.Fatalf("exit=%d stderr=%s", code, stderr)
	}
	var doc struct {
		Results map[string]struct {
			Present bool     `json:"present"`
			Errors  []string `json:"errors"`
		} `json:"results"`
	}
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("json: %v\n%s", err, out)
	}
	if doc.Results["sd"].Present || doc.Results["sd"].Errors[0] != "path does not exist" {
		t.Fatalf("unexpected result: %+v", doc.Results["sd"])
	}
	if strings.Contains(stderr, "error:") {
		t.Fatalf("missing assets should not print an error line: %q", stderr)
	}
}

func TestValidate_ManifestErrorsExitTwo(t *testing.T) {
	root := writeProject(t, `[1, 2]`)
	code, _, stderr := runCLI(t, "models", "validate", "--manifest", filepath.Join(root, "config", "models.json"), "--log-level", "error")
	if code != exitManifest || !strings.Contains(stderr, "malformed") {
		t.Fatalf("exit=%d stderr=%q", code, stderr)
	}

	code, _, stderr = runCLI(t, "models", "validate", "--manifest", filepath.Join(root, "nope.json"), "--log-level", "error")
	if code != exitManifest || !strings.Contains(stderr, "not found") {
		t.Fatalf("exit=%d stderr=%q", code, stderr)
	}
}

func TestValidate_SettingsFileProvidesManifest(t *testing.T) {
	t.Setenv("MANGA_MODELS_PATH", "")
	root := writeProject(t, `{}`)
	settings := filepath.Join(root, "mangastudio.yaml")
	body := "manifest_path: " + filepath.Join(root, "config", "models.json") + "\nproject_root: " + root + "\n"
	if err := os.WriteFile(settings, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	code, out, stderr := runCLI(t, "--config", settings, "models", "validate", "--json", "--log-level", "error")
	if code != exitOK {
		t.Fatalf("exit=%d stderr=%q", code, stderr)
	}
	if !strings.Contains(out, `"results": {}`) {
		t.Fatalf("unexpected output: %s", out)
	}
}

func TestValidate_ProjectRootFlag(t *testing.T) {
	t.Setenv("MANGA_MODELS_PATH", "")
	root := writeProject(t, `{"sd": {"path": "models/sd", "type": "diffusers"}}`)
	if err := os.MkdirAll(filepath.Join(root, "models", "sd", "unet"), 0o755); err != nil {
		t.Fatal(err)
	}
	code, out, stderr := runCLI(t, "--project-root", root, "models", "validate", "--json", "--log-level", "error")
	if code != exitOK {
		t.Fatalf("exit=%d stderr=%q", code, stderr)
	}
	if !strings.Contains(out, filepath.Join(root, "models", "sd")) {
		t.Fatalf("expected path under project root: %s", out)
	}

	code, _, stderr = runCLI(t, "--project-root", filepath.Join(root, "missing"), "models", "validate")
	if code != exitManifest || !strings.Contains(stderr, "project root is not a directory") {
		t.Fatalf("exit=%d stderr=%q", code, stderr)
	}
	code, _, stderr = runCLI(t, "--project-root", filepath.Join(root, "config", "models.json"), "models", "validate")
	if code != exitManifest || !strings.Contains(stderr, "project root is not a directory") {
		t.Fatalf("exit=%d stderr=%q", code, stderr)
	}
}

func TestEstimate(t *testing.T) {
	code, out, _ := runCLI(t, "estimate", "-s", strings.Repeat("word ", 250))
	if code != exitOK {
		t.Fatalf("exit=%d", code)
	}
	var est struct {
		Words, Shots, Keyframes int
		Duration                int `json:"duration_seconds"`
	}
	if err := json.Unmarshal([]byte(out), &est); err != nil {
		t.Fatalf("json: %v\n%s", err, out)
	}
	if est.Words != 250 || est.Shots != 3 || est.Keyframes != 9 || est.Duration != 90 {
		t.Fatalf("unexpected estimate: %+v", est)
	}
}

func TestEstimate_FileWinsAndEmptyIsUsageError(t *testing.T) {
	p := filepath.Join(t.TempDir(), "synopsis.txt")
	if err := os.WriteFile(p, []byte("one two three"), 0o644); err != nil {
		t.Fatal(err)
	}
	code, out, _ := runCLI(t, "estimate", "-s", "ignored", "-f", p)
	if code != exitOK || !strings.Contains(out, `"words": 3`) {
		t.Fatalf("exit=%d out=%s", code, out)
	}

	code, _, stderr := runCLI(t, "estimate")
	if code == exitOK || !strings.Contains(stderr, "--synopsis") {
		t.Fatalf("exit=%d stderr=%q", code, stderr)
	}
}

func TestCompletion(t *testing.T) {
	code, out, _ := runCLI(t, "completion", "bash")
	if code != exitOK || !strings.Contains(out, "mangastudio") {
		t.Fatalf("exit=%d", code)
	}
	if code, _, _ := runCLI(t, "completion", "tcsh"); code == exitOK {
		t.Fatalf("expected unknown shell to fail")
	}
}

func TestNewLogger_Level(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "warn", false)
	l.Info().Msg("hidden")
	l.Warn().Msg("shown")
	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "shown") {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}
