package turbopath

import (
	"fmt"
	"path/filepath"
)

// AbsoluteSystemPath is a host-native absolute path, volume root included. It is the
// only path type here that is not portable between operating systems; it exists so that
// filesystem I/O happens on explicitly absolute locations.
type AbsoluteSystemPath string

// ParseAbsoluteSystemPath validates s as a host-absolute path and cleans it.
func ParseAbsoluteSystemPath(s string) (AbsoluteSystemPath, error) {
	if !filepath.IsAbs(s) {
		return "", fmt.Errorf("%w: %q is not absolute", ErrInvalidPath, s)
	}
	return AbsoluteSystemPath(filepath.Clean(s)), nil
}

// AbsoluteSystemPathFromUpstream casts s to an AbsoluteSystemPath without checking.
func AbsoluteSystemPathFromUpstream(s string) AbsoluteSystemPath {
	return AbsoluteSystemPath(s)
}

// String returns the host-native representation.
func (p AbsoluteSystemPath) String() string {
	return string(p)
}

// Join appends an already-normalized relative path using the host separator.
func (p AbsoluteSystemPath) Join(rel RelativeForwardPath) AbsoluteSystemPath {
	if rel == "" {
		return p
	}
	return AbsoluteSystemPath(filepath.Join(string(p), rel.ToSystem()))
}
