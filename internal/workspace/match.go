package workspace

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gobwas/glob"

	"github.com/NicholasLYang/turbo/internal/turbopath"
)

var errInvalidGlob = errors.New("invalid workspace glob")

// Matcher decides whether an anchored path is a workspace member directory. Globs are
// matched against the normalized forward-slash form, so matching behaves identically on
// every OS. Patterns starting with "!" exclude.
type Matcher struct {
	includes []glob.Glob
	excludes []glob.Glob
}

// NewMatcher compiles workspace globs, separator-aware: "apps/*" matches one directory
// level, "apps/**" matches any depth.
func NewMatcher(globs []string) (*Matcher, error) {
	m := &Matcher{}
	for _, g := range globs {
		pattern, negated := strings.CutPrefix(g, "!")
		compiled, err := glob.Compile(pattern, rune(turbopath.Separator))
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", errInvalidGlob, g, err)
		}
		if negated {
			m.excludes = append(m.excludes, compiled)
		} else {
			m.includes = append(m.includes, compiled)
		}
	}
	return m, nil
}

// Match reports whether p matches at least one include glob and no exclude glob. The
// project root itself is never a member.
func (m *Matcher) Match(p turbopath.AnchoredPath) bool {
	if p.IsRoot() {
		return false
	}
	s := p.String()
	for _, g := range m.excludes {
		if g.Match(s) {
			return false
		}
	}
	for _, g := range m.includes {
		if g.Match(s) {
			return true
		}
	}
	return false
}
