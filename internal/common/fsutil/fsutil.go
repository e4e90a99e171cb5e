package fsutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ExpandHome expands a leading '~' to the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" {
		return path, nil
	}
	if path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home dir: %w", err)
	}
	if path == "~" {
		return home, nil
	}
	// only ~/ and ~\ are ours; ~user is left untouched
	rest := path[1:]
	if !strings.HasPrefix(rest, "/") && !strings.HasPrefix(rest, string(filepath.Separator)) {
		return path, nil
	}
	return filepath.Join(home, rest[1:]), nil
}

// DirExists reports whether path is a directory that can be stat'ed.
// Permission and other stat errors count as absent.
func DirExists(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.IsDir()
}

// maxSymlinks bounds link expansions in Realpath, as the kernel does for loops.
const maxSymlinks = 255

// Realpath returns the absolute form of path with symlinks evaluated
// component by component, left to right. A ".." is applied to the location
// reached so far, so "link/.." is the parent of the link's target, not the
// directory holding the link. Once a component does not exist the remainder
// is appended and cleaned lexically; the result does not have to exist.
// path should be absolute.
func Realpath(path string) string {
	vol := filepath.VolumeName(path)
	rest := splitPath(path[len(vol):])
	cur := vol + string(filepath.Separator)
	links := 0
	for len(rest) > 0 {
		comp := rest[0]
		rest = rest[1:]
		switch comp {
		case ".":
			continue
		case "..":
			cur = filepath.Dir(cur)
			continue
		}
		next := filepath.Join(cur, comp)
		fi, err := os.Lstat(next)
		if err != nil {
			return filepath.Join(append([]string{next}, rest...)...)
		}
		if fi.Mode()&os.ModeSymlink == 0 {
			cur = next
			continue
		}
		target, err := os.Readlink(next)
		links++
		if err != nil || links > maxSymlinks {
			return filepath.Join(append([]string{next}, rest...)...)
		}
		if filepath.IsAbs(target) {
			tv := filepath.VolumeName(target)
			cur = tv + string(filepath.Separator)
			target = target[len(tv):]
		}
		rest = append(splitPath(target), rest...)
	}
	return cur
}

func splitPath(p string) []string {
	return strings.FieldsFunc(p, func(r rune) bool {
		return r == '/' || r == filepath.Separator
	})
}
