package manifest

import (
	"errors"
	"fmt"
)

// Sentinel errors for manifest loading. Both are fatal to a validation run.
// Use errors.Is or the Is* helpers to check for them.
var (
	// ErrManifestNotFound indicates the manifest location does not exist.
	ErrManifestNotFound = errors.New("manifest not found")

	// ErrManifestMalformed indicates the manifest content could not be parsed
	// into the key -> declaration shape.
	ErrManifestMalformed = errors.New("manifest malformed")
)

// IsManifestNotFound reports whether err indicates a missing manifest.
func IsManifestNotFound(err error) bool { return errors.Is(err, ErrManifestNotFound) }

// IsManifestMalformed reports whether err indicates unparseable manifest content.
func IsManifestMalformed(err error) bool { return errors.Is(err, ErrManifestMalformed) }

func malformed(source, format string, a ...any) error {
	return fmt.Errorf("%w: %s: %s", ErrManifestMalformed, source, fmt.Sprintf(format, a...))
}
