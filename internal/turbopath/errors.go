package turbopath

import "errors"

// Error kinds returned by the validating constructors and the fallible
// transformations. Every failure is wrapped with context; match with errors.Is.
var (
	// ErrInvalidPath indicates an absolute input where a relative path is required, or
	// separators that cannot be normalized.
	ErrInvalidPath = errors.New("invalid relative path")

	// ErrNonNormalizedComponent indicates a "." or ".." component where a normalized
	// path is required.
	ErrNonNormalizedComponent = errors.New("non-normalized path component")

	// ErrPathEscapesRoot indicates a ".." sequence that resolves past the base path.
	ErrPathEscapesRoot = errors.New("path escapes root")

	// ErrNotAPrefix indicates a strip operation whose base is not a whole-component
	// prefix of the path.
	ErrNotAPrefix = errors.New("not a path prefix")

	// ErrInvalidFileName indicates a component that violates file naming rules.
	ErrInvalidFileName = errors.New("invalid file name")

	// ErrOutsideRoot indicates an absolute path that does not sit under the project root.
	ErrOutsideRoot = errors.New("path outside project root")
)
