// Package turbopath teaches the type system about the paths flowing through a turbo
// invocation. A normalized forward-relative path has one canonical separator, no "." or
// ".." components, and no doubled or trailing separators, so equal logical paths are
// byte-identical strings. That uniqueness is what makes these values safe to use as
// cache keys and to compare across operating systems.
//
// All path values are immutable plain data and safe to share between goroutines. The
// validating constructors are the only way in for untrusted input; the FromUpstream
// variants skip validation and are reserved for values already proven normalized.
package turbopath

import (
	"fmt"
	"iter"
	"path/filepath"
	"strings"
)

const (
	// Separator is the canonical separator of all normalized paths.
	Separator = '/'

	// separators lists the separator characters of every supported platform.
	separators = `/\`
)

// RelativeForwardPath is an immutable view of a normalized, forward-relative path. The
// empty string is the zero-component self path. The zero value is valid and denotes the
// self path.
type RelativeForwardPath string

// ParseRelativeForwardPath validates s as a normalized forward-relative path. It fails
// with ErrInvalidPath if s is absolute or contains empty components, with
// ErrNonNormalizedComponent if s contains "." or "..", and with ErrInvalidFileName if
// any component violates naming rules.
func ParseRelativeForwardPath(s string) (RelativeForwardPath, error) {
	if err := checkRelativeForward(s); err != nil {
		return "", err
	}
	return RelativeForwardPath(s), nil
}

// RelativeForwardPathFromUpstream casts s to a RelativeForwardPath without checking.
// If s is not already normalized, downstream operations will misbehave.
func RelativeForwardPathFromUpstream(s string) RelativeForwardPath {
	return RelativeForwardPath(s)
}

func checkRelativeForward(s string) error {
	if s == "" {
		return nil
	}
	if isAbsoluteString(s) {
		return fmt.Errorf("%w: %q is absolute", ErrInvalidPath, s)
	}
	for _, comp := range strings.Split(s, "/") {
		switch comp {
		case "":
			return fmt.Errorf("%w: %q has an empty component", ErrInvalidPath, s)
		case ".", "..":
			return fmt.Errorf("%w: %q in %q", ErrNonNormalizedComponent, comp, s)
		default:
			if err := checkFileName(comp); err != nil {
				return err
			}
		}
	}
	return nil
}

// isAbsoluteString reports whether s starts with a separator or a drive prefix on any
// supported platform, independently of the host OS.
func isAbsoluteString(s string) bool {
	if s == "" {
		return false
	}
	if s[0] == '/' || s[0] == '\\' {
		return true
	}
	return len(s) >= 2 && s[1] == ':' &&
		('a' <= s[0] && s[0] <= 'z' || 'A' <= s[0] && s[0] <= 'Z')
}

// String returns the canonical external representation, e.g. "foo/bar/baz.txt". The
// empty string denotes the self path.
func (p RelativeForwardPath) String() string {
	return string(p)
}

// IsRoot reports whether p is the zero-component self path.
func (p RelativeForwardPath) IsRoot() bool {
	return p == ""
}

// Join concatenates two already-normalized paths. It cannot fail: both operands satisfy
// all invariants, so their concatenation does too.
func (p RelativeForwardPath) Join(other RelativeForwardPath) RelativeForwardPath {
	switch {
	case p == "":
		return other
	case other == "":
		return p
	}
	return p + "/" + other
}

// JoinNormalized resolves a possibly-unnormalized relative expression against p. The
// expression may contain "." and ".." segments, e.g. "../sibling". Components are
// scanned left to right over a result stack seeded with p's components: "." is skipped,
// ".." pops the stack, anything else is validated and pushed. Popping an empty stack
// fails with ErrPathEscapesRoot.
func (p RelativeForwardPath) JoinNormalized(expr string) (RelativeForwardPath, error) {
	if isAbsoluteString(expr) {
		return "", fmt.Errorf("%w: %q is absolute", ErrInvalidPath, expr)
	}
	stack := p.split()
	for _, comp := range strings.Split(expr, "/") {
		switch comp {
		case "", ".":
		case "..":
			if len(stack) == 0 {
				return "", fmt.Errorf("%w: %q cannot resolve %q", ErrPathEscapesRoot, p, expr)
			}
			stack = stack[:len(stack)-1]
		default:
			if err := checkFileName(comp); err != nil {
				return "", err
			}
			stack = append(stack, comp)
		}
	}
	return RelativeForwardPath(strings.Join(stack, "/")), nil
}

// Parent returns the path with its last component removed. The second return value is
// false only at the self path.
func (p RelativeForwardPath) Parent() (RelativeForwardPath, bool) {
	if p == "" {
		return "", false
	}
	if i := strings.LastIndexByte(string(p), '/'); i >= 0 {
		return p[:i], true
	}
	return "", true
}

// FileName returns the last component, or false at the self path.
func (p RelativeForwardPath) FileName() (FileName, bool) {
	if p == "" {
		return "", false
	}
	i := strings.LastIndexByte(string(p), '/')
	return FileNameFromUpstream(string(p[i+1:])), true
}

// FileStem returns the non-extension portion of the last component.
func (p RelativeForwardPath) FileStem() (string, bool) {
	name, ok := p.FileName()
	if !ok {
		return "", false
	}
	return name.Stem(), true
}

// Extension returns the extension of the last component, if any.
func (p RelativeForwardPath) Extension() (string, bool) {
	name, ok := p.FileName()
	if !ok {
		return "", false
	}
	return name.Extension()
}

// StripPrefix returns the suffix left after removing base from the front of p. It fails
// with ErrNotAPrefix unless base's components are an exact, whole-component prefix of
// p's; it never matches across component boundaries.
func (p RelativeForwardPath) StripPrefix(base RelativeForwardPath) (RelativeForwardPath, error) {
	switch {
	case base == "":
		return p, nil
	case p == base:
		return "", nil
	case strings.HasPrefix(string(p), string(base)+"/"):
		return p[len(base)+1:], nil
	}
	return "", fmt.Errorf("%w: %q does not start with %q", ErrNotAPrefix, p, base)
}

// StartsWith reports whether base's components are a whole-component prefix of p's.
func (p RelativeForwardPath) StartsWith(base RelativeForwardPath) bool {
	return base == "" || p == base || strings.HasPrefix(string(p), string(base)+"/")
}

// EndsWith reports whether suffix's components are a whole-component suffix of p's.
func (p RelativeForwardPath) EndsWith(suffix RelativeForwardPath) bool {
	return suffix == "" || p == suffix || strings.HasSuffix(string(p), "/"+string(suffix))
}

// Components returns a lazy, restartable sequence of the path's components in order.
func (p RelativeForwardPath) Components() iter.Seq[FileName] {
	return func(yield func(FileName) bool) {
		rest := string(p)
		for rest != "" {
			comp, tail, _ := strings.Cut(rest, "/")
			if !yield(FileNameFromUpstream(comp)) {
				return
			}
			rest = tail
		}
	}
}

// ToSystem returns the path using the host separator, for handing to filesystem APIs.
func (p RelativeForwardPath) ToSystem() string {
	return filepath.FromSlash(string(p))
}

// MarshalText implements encoding.TextMarshaler using the normalized string form.
func (p RelativeForwardPath) MarshalText() ([]byte, error) {
	return []byte(p), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, re-validating the input.
func (p *RelativeForwardPath) UnmarshalText(data []byte) error {
	parsed, err := ParseRelativeForwardPath(string(data))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

func (p RelativeForwardPath) split() []string {
	if p == "" {
		return nil
	}
	return strings.Split(string(p), "/")
}
