// Package checker decides whether a resolved location plausibly holds a usable
// asset of its declared family.
//
// Checkers stat the location once and, for directories, take a single shallow
// listing. They never recurse and never open file contents.
package checker

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/go-git/go-billy/v5/osfs"

	"mangastudio/internal/manifest"
	"mangastudio/pkg/types"
)

// FS is the read-only subset of billy.Filesystem the checkers need.
type FS interface {
	Stat(filename string) (os.FileInfo, error)
	ReadDir(path string) ([]os.FileInfo, error)
}

// OS is the host filesystem.
var OS FS = osfs.Default

const msgNotFound = "path does not exist"

// layout describes what a directory-shaped family looks like on disk.
type layout struct {
	family string
	// fileExts are accepted when the location is a single file. Empty means
	// the family must be a directory.
	fileExts []string
	// markers are top-level names any one of which accepts a directory.
	markers []string
	// patterns are top-level wildcards any match of which accepts a directory.
	patterns []string
	hint     string
}

var (
	diffusersLayout = layout{
		family:   "diffusers",
		fileExts: []string{".safetensors", ".ckpt", ".bin"},
		markers:  []string{"model_index.json", "unet", "pytorch_model.bin", "vae", "safety_checker"},
		patterns: []string{"*.safetensors"},
		hint:     ".safetensors, model_index.json, pytorch_model.bin, unet folder",
	}
	whisperLayout = layout{
		family:   "whisper",
		fileExts: []string{".bin", ".pt", ".pth"},
		markers:  []string{"pytorch_model.bin", "config.json", "tokenizer.json"},
		hint:     "pytorch_model.bin, config.json",
	}
	coquiLayout = layout{
		family:   "coqui",
		markers:  []string{"config.json", "model.py", "tts_config.json"},
		patterns: []string{"*.pth", "*.pt"},
		hint:     "config.json, *.pth",
	}
)

// ggmlExts are the single-file quantized weight extensions.
var ggmlExts = []string{".bin", ".gguf", ".ggml"}

// Check validates path against the rules of family. Unknown families only
// require the path to exist.
func Check(fsys FS, family manifest.Family, path string) (bool, []types.Issue) {
	switch family {
	case manifest.FamilyDiffusers:
		return checkLayout(fsys, diffusersLayout, path)
	case manifest.FamilyWhisper:
		return checkLayout(fsys, whisperLayout, path)
	case manifest.FamilyCoqui:
		return checkLayout(fsys, coquiLayout, path)
	case manifest.FamilyGGML:
		return checkGGML(fsys, path)
	case manifest.FamilyUnknown:
		return checkExists(fsys, path)
	default:
		return checkExists(fsys, path)
	}
}

func checkLayout(fsys FS, l layout, path string) (bool, []types.Issue) {
	fi, err := fsys.Stat(path)
	if err != nil {
		return statFailure(err, msgNotFound)
	}
	if !fi.IsDir() {
		if len(l.fileExts) == 0 {
			return fail(types.IssueStructural, fmt.Sprintf("expected directory for %s, found file", l.family))
		}
		if hasExt(fi.Name(), l.fileExts) {
			return true, nil
		}
		return fail(types.IssueStructural, fmt.Sprintf("unexpected file: %s", filepath.Base(path)))
	}

	entries, err := fsys.ReadDir(path)
	if err != nil {
		return fail(types.IssueStructural, fmt.Sprintf("cannot list directory: %v", err))
	}
	for _, e := range entries {
		if matchesAny(e.Name(), l.markers, l.patterns) {
			return true, nil
		}
	}
	return fail(types.IssueStructural, fmt.Sprintf("no expected %s files found (%s)", l.family, l.hint))
}

func checkGGML(fsys FS, path string) (bool, []types.Issue) {
	fi, err := fsys.Stat(path)
	if err != nil {
		return statFailure(err, "ggml file not found")
	}
	if fi.IsDir() {
		return fail(types.IssueNotFound, "ggml file not found")
	}
	if hasExt(fi.Name(), ggmlExts) {
		return true, nil
	}
	ext := filepath.Ext(fi.Name())
	if ext == "" {
		ext = "(none)"
	}
	return fail(types.IssueStructural, fmt.Sprintf("file present but unexpected extension for ggml: %s", ext))
}

func checkExists(fsys FS, path string) (bool, []types.Issue) {
	if _, err := fsys.Stat(path); err != nil {
		return statFailure(err, "path not found (generic checker)")
	}
	return true, nil
}

// statFailure classifies a Stat error. Only a missing entry, or a file where
// a directory was needed along the path, is not_found; anything else means the
// location exists but cannot be inspected.
func statFailure(err error, notFound string) (bool, []types.Issue) {
	if errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR) {
		return fail(types.IssueNotFound, notFound)
	}
	return fail(types.IssueStructural, fmt.Sprintf("path not accessible: %v", err))
}

func fail(kind types.IssueKind, msg string) (bool, []types.Issue) {
	return false, []types.Issue{{Kind: kind, Message: msg}}
}

// hasExt reports whether name ends with one of exts, case-insensitively.
func hasExt(name string, exts []string) bool {
	lower := strings.ToLower(name)
	for _, ext := range exts {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

func matchesAny(name string, markers, patterns []string) bool {
	for _, m := range markers {
		if name == m {
			return true
		}
	}
	for _, p := range patterns {
		if ok, _ := doublestar.Match(p, name); ok {
			return true
		}
	}
	return false
}
