// Package manifest loads the declarative list of model assets a project
// expects to find on disk.
//
// A manifest is a JSON (or YAML) mapping from logical asset key to
// {path, type, name}. The reserved key root_models_path carries an optional
// shared root for relative paths. Declaration order is preserved.
package manifest

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const (
	// RootKey is the reserved top-level key holding the shared models root.
	RootKey = "root_models_path"
	// DefaultRelPath is where the manifest lives relative to the project root.
	DefaultRelPath = "config/models.json"
)

// Declaration is one asset entry of a manifest.
type Declaration struct {
	Key  string
	Path string
	// Type is the declared family tag, lowercased.
	Type   string
	Name   string
	Family Family
}

// Manifest is an immutable, ordered set of asset declarations.
type Manifest struct {
	// Source is the location the manifest was read from.
	Source string
	// Root is the shared root for relative paths; empty when unset.
	Root  string
	decls []Declaration
}

// DefaultPath returns the default manifest location under projectRoot.
func DefaultPath(projectRoot string) string {
	return filepath.Join(projectRoot, filepath.FromSlash(DefaultRelPath))
}

// Declarations returns the asset declarations in manifest order.
func (m *Manifest) Declarations() []Declaration {
	out := make([]Declaration, len(m.decls))
	copy(out, m.decls)
	return out
}

// Len returns the number of asset declarations, excluding the root key.
func (m *Manifest) Len() int { return len(m.decls) }

// Load reads and parses the manifest at path. The format is chosen by
// extension: .yaml/.yml, anything else is read as JSON.
func Load(path string) (*Manifest, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty manifest path", ErrManifestNotFound)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrManifestNotFound, path)
		}
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	return Parse(path, b)
}

// Parse builds a Manifest from raw content. source is used for format
// selection and error messages.
func Parse(source string, b []byte) (*Manifest, error) {
	var (
		fields []field
		err    error
	)
	switch strings.ToLower(filepath.Ext(source)) {
	case ".yaml", ".yml":
		fields, err = decodeYAML(b)
	default:
		fields, err = decodeJSON(b)
	}
	if err != nil {
		return nil, malformed(source, "%v", err)
	}
	return build(source, fields)
}

func build(source string, fields []field) (*Manifest, error) {
	m := &Manifest{Source: source}
	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if _, dup := seen[f.key]; dup {
			return nil, malformed(source, "duplicate key %q", f.key)
		}
		seen[f.key] = struct{}{}

		if f.key == RootKey {
			switch v := f.value.(type) {
			case nil:
			case string:
				m.Root = strings.TrimSpace(v)
			default:
				return nil, malformed(source, "%s must be a string, got %s", RootKey, typeName(f.value))
			}
			continue
		}

		entry, ok := f.value.(map[string]any)
		if !ok {
			return nil, malformed(source, "entry %q must be a mapping, got %s", f.key, typeName(f.value))
		}
		d := Declaration{Key: f.key}
		for _, s := range []struct {
			name string
			dst  *string
		}{{"path", &d.Path}, {"type", &d.Type}, {"name", &d.Name}} {
			v, err := optionalString(entry, s.name)
			if err != nil {
				return nil, malformed(source, "entry %q: %v", f.key, err)
			}
			*s.dst = v
		}
		d.Type = strings.ToLower(strings.TrimSpace(d.Type))
		d.Family = ParseFamily(d.Type)
		m.decls = append(m.decls, d)
	}
	return m, nil
}

// optionalString reads key from entry; absent and null both yield "".
func optionalString(entry map[string]any, key string) (string, error) {
	v, ok := entry[key]
	if !ok || v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("field %q must be a string, got %s", key, typeName(v))
	}
	return s, nil
}
