// Package resolver turns declared asset paths into absolute, normalized
// filesystem locations.
//
// Relative paths are joined against the first available root:
// the MANGA_MODELS_PATH environment override, the manifest's shared root,
// then the project root. Absolute paths (including ~/...) ignore all roots.
package resolver

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"mangastudio/internal/common/fsutil"
	"mangastudio/pkg/types"
)

// EnvModelsPath is the environment variable overriding the models root.
const EnvModelsPath = "MANGA_MODELS_PATH"

// ErrMissingPath is returned when a declaration carries no usable path.
var ErrMissingPath = errors.New("missing path declaration")

// Context holds the roots a relative declared path may be resolved against.
type Context struct {
	// EnvRoot is the environment override; empty when unset.
	EnvRoot string
	// ManifestRoot is the manifest's shared root; empty when unset.
	ManifestRoot string
	// ProjectRoot is the fallback root. Empty means the working directory.
	ProjectRoot string
}

// NewContext builds a Context, reading the override through getenv
// (os.Getenv when nil). Blank values count as unset.
func NewContext(manifestRoot, projectRoot string, getenv func(string) string) Context {
	if getenv == nil {
		getenv = os.Getenv
	}
	return Context{
		EnvRoot:      strings.TrimSpace(getenv(EnvModelsPath)),
		ManifestRoot: strings.TrimSpace(manifestRoot),
		ProjectRoot:  projectRoot,
	}
}

// RootUsed reports which root wins for relative paths. It is informational;
// the project root fallback is reported as none.
func (c Context) RootUsed() (string, types.RootSource) {
	switch {
	case c.EnvRoot != "":
		return c.EnvRoot, types.RootEnv
	case c.ManifestRoot != "":
		return c.ManifestRoot, types.RootManifest
	default:
		return "", types.RootNone
	}
}

func (c Context) base() string {
	switch {
	case c.EnvRoot != "":
		return c.EnvRoot
	case c.ManifestRoot != "":
		return c.ManifestRoot
	default:
		return c.ProjectRoot
	}
}

// Resolve returns the absolute, normalized location for declared under c.
// Symlinks are evaluated before ".." components are applied, for the part of
// the path that exists; existence itself is not checked.
func Resolve(declared string, c Context) (string, error) {
	if strings.TrimSpace(declared) == "" {
		return "", ErrMissingPath
	}
	p, err := fsutil.ExpandHome(declared)
	if err != nil {
		return "", err
	}
	if !filepath.IsAbs(p) {
		base, err := fsutil.ExpandHome(c.base())
		if err != nil {
			return "", err
		}
		// joined without cleaning: ".." must see symlinks first
		if base != "" {
			p = base + string(filepath.Separator) + p
		}
	}
	if !filepath.IsAbs(p) {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("working directory: %w", err)
		}
		p = wd + string(filepath.Separator) + p
	}
	return fsutil.Realpath(p), nil
}
