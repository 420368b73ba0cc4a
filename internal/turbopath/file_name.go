package turbopath

import (
	"fmt"
	"strings"
)

// FileName is a single validated path component: non-empty, never "." or "..", and free
// of path separators of any supported platform. Equality is byte-exact and
// case-sensitive.
type FileName string

// ParseFileName validates s as a single path component.
func ParseFileName(s string) (FileName, error) {
	if err := checkFileName(s); err != nil {
		return "", err
	}
	return FileName(s), nil
}

// FileNameFromUpstream casts s to a FileName without checking. It is reserved for call
// sites that already proved validity, e.g. components re-derived from a normalized path.
// Passing untrusted input results in downstream errors.
func FileNameFromUpstream(s string) FileName {
	return FileName(s)
}

func checkFileName(s string) error {
	switch s {
	case "":
		return fmt.Errorf("%w: empty component", ErrInvalidFileName)
	case ".", "..":
		return fmt.Errorf("%w: %q", ErrInvalidFileName, s)
	}
	if strings.ContainsAny(s, separators) {
		return fmt.Errorf("%w: %q contains a path separator", ErrInvalidFileName, s)
	}
	return nil
}

// String returns the component verbatim.
func (n FileName) String() string {
	return string(n)
}

// Stem returns the portion of the name before its extension. A name that starts with a
// "." and contains no other "." has no extension, so the whole name is the stem.
func (n FileName) Stem() string {
	stem, _ := n.splitExtension()
	return stem
}

// Extension returns the portion of the name after the last "." not at index 0, and
// whether such an extension exists.
func (n FileName) Extension() (string, bool) {
	_, ext := n.splitExtension()
	if ext == nil {
		return "", false
	}
	return *ext, true
}

func (n FileName) splitExtension() (string, *string) {
	i := strings.LastIndexByte(string(n), '.')
	if i <= 0 {
		return string(n), nil
	}
	ext := string(n[i+1:])
	return string(n[:i]), &ext
}
