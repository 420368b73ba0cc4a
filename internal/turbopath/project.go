package turbopath

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ProjectRoot holds the one absolute directory anchoring all AnchoredPath values for a
// build invocation. It is distinct from the process working directory: turbo may run
// anywhere inside the repository, but anchored paths always resolve against the root.
//
// Relativize and Resolve are string-level transformations only. They guarantee
// normalization, not containment against symlink redirection; callers needing a
// security boundary must resolve symlinks before relativizing.
type ProjectRoot struct {
	root AbsoluteSystemPath
}

// NewProjectRoot anchors a project at the given absolute directory.
func NewProjectRoot(root AbsoluteSystemPath) ProjectRoot {
	return ProjectRoot{root: root}
}

// Root returns the project root directory.
func (r ProjectRoot) Root() AbsoluteSystemPath {
	return r.root
}

// Relativize converts a host-absolute path into an AnchoredPath. It fails with
// ErrOutsideRoot if abs does not sit under the root.
func (r ProjectRoot) Relativize(abs AbsoluteSystemPath) (AnchoredPath, error) {
	root := filepath.Clean(string(r.root))
	target := filepath.Clean(string(abs))
	if target == root {
		return AnchoredPath{}, nil
	}
	// The trailing separator keeps /foo from matching /foo2.
	prefix := root
	if !strings.HasSuffix(prefix, string(filepath.Separator)) {
		prefix += string(filepath.Separator)
	}
	if !strings.HasPrefix(target, prefix) {
		return AnchoredPath{}, fmt.Errorf("%w: %q is not under %q", ErrOutsideRoot, abs, r.root)
	}
	return AnchoredPathFromSystem(target[len(prefix):])
}

// Resolve concatenates the root and an anchored path into a host-absolute path. It is
// pure and infallible: both operands already satisfy their invariants.
func (r ProjectRoot) Resolve(p AnchoredPath) AbsoluteSystemPath {
	return r.root.Join(p.rel)
}
