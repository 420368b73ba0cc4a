package turbopath

import (
	"iter"
	"path/filepath"
)

// AnchoredPath is a normalized forward-relative path whose implicit base is the project
// root, as opposed to an arbitrary relative path between two unspecified locations. It
// carries no extra runtime data; the distinct type keeps anchored and ordinary relative
// values from mixing. The only ways to obtain one are the validating constructors below
// and ProjectRoot.Relativize. The zero value is the project root itself.
type AnchoredPath struct {
	rel RelativeForwardPath
}

// ParseAnchoredPath validates s under the RelativeForwardPath rules and anchors it.
func ParseAnchoredPath(s string) (AnchoredPath, error) {
	rel, err := ParseRelativeForwardPath(s)
	if err != nil {
		return AnchoredPath{}, err
	}
	return AnchoredPath{rel: rel}, nil
}

// AnchoredPathFromUpstream casts s to an AnchoredPath without checking. Reserved for
// values already proven normalized and anchored.
func AnchoredPathFromUpstream(s string) AnchoredPath {
	return AnchoredPath{rel: RelativeForwardPath(s)}
}

// AnchoredPathFromSystem converts a host-native relative path, backslash separators
// included, to an AnchoredPath. The input is re-validated after separator conversion.
func AnchoredPathFromSystem(fp string) (AnchoredPath, error) {
	return ParseAnchoredPath(filepath.ToSlash(fp))
}

// Relative returns the wrapped forward-relative path, discarding the anchor.
func (p AnchoredPath) Relative() RelativeForwardPath {
	return p.rel
}

// String returns the canonical external representation; empty means the project root.
func (p AnchoredPath) String() string {
	return string(p.rel)
}

// IsRoot reports whether p is the project root itself.
func (p AnchoredPath) IsRoot() bool {
	return p.rel == ""
}

// Join appends an already-normalized relative path. It cannot fail.
func (p AnchoredPath) Join(other RelativeForwardPath) AnchoredPath {
	return AnchoredPath{rel: p.rel.Join(other)}
}

// JoinNormalized resolves a relative expression that may contain "." and ".." segments.
// It fails with ErrPathEscapesRoot if the expression resolves past the project root.
func (p AnchoredPath) JoinNormalized(expr string) (AnchoredPath, error) {
	rel, err := p.rel.JoinNormalized(expr)
	if err != nil {
		return AnchoredPath{}, err
	}
	return AnchoredPath{rel: rel}, nil
}

// Parent returns the anchored path with the last component removed, or false at the
// project root.
func (p AnchoredPath) Parent() (AnchoredPath, bool) {
	rel, ok := p.rel.Parent()
	return AnchoredPath{rel: rel}, ok
}

// FileName returns the last component, or false at the project root.
func (p AnchoredPath) FileName() (FileName, bool) {
	return p.rel.FileName()
}

// FileStem returns the non-extension portion of the last component.
func (p AnchoredPath) FileStem() (string, bool) {
	return p.rel.FileStem()
}

// Extension returns the extension of the last component, if any.
func (p AnchoredPath) Extension() (string, bool) {
	return p.rel.Extension()
}

// StripPrefix returns the suffix left after removing base, as an ordinary relative
// path: the result is no longer anchored at the project root.
func (p AnchoredPath) StripPrefix(base AnchoredPath) (RelativeForwardPath, error) {
	return p.rel.StripPrefix(base.rel)
}

// StartsWith reports whether base is a whole-component prefix of p.
func (p AnchoredPath) StartsWith(base AnchoredPath) bool {
	return p.rel.StartsWith(base.rel)
}

// EndsWith reports whether suffix is a whole-component suffix of p.
func (p AnchoredPath) EndsWith(suffix RelativeForwardPath) bool {
	return p.rel.EndsWith(suffix)
}

// Components returns a lazy, restartable sequence of the path's components in order.
func (p AnchoredPath) Components() iter.Seq[FileName] {
	return p.rel.Components()
}

// ToSystem returns the path using the host separator, still relative to the root.
func (p AnchoredPath) ToSystem() string {
	return p.rel.ToSystem()
}

// MarshalText implements encoding.TextMarshaler using the normalized string form.
func (p AnchoredPath) MarshalText() ([]byte, error) {
	return []byte(p.rel), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, re-validating the input.
func (p *AnchoredPath) UnmarshalText(data []byte) error {
	parsed, err := ParseAnchoredPath(string(data))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// AnchoredPathBuf is the owned, growable counterpart of AnchoredPath.
type AnchoredPathBuf struct {
	buf RelativeForwardPathBuf
}

// NewAnchoredPathBuf validates s and copies it into an owned anchored buffer.
func NewAnchoredPathBuf(s string) (*AnchoredPathBuf, error) {
	inner, err := NewRelativeForwardPathBuf(s)
	if err != nil {
		return nil, err
	}
	return &AnchoredPathBuf{buf: *inner}, nil
}

// AnchoredPathBufFromUpstream copies s into an owned anchored buffer without checking.
func AnchoredPathBufFromUpstream(s string) *AnchoredPathBuf {
	return &AnchoredPathBuf{buf: *RelativeForwardPathBufFromUpstream(s)}
}

// AnchoredPathBufWithCapacity returns an empty anchored buffer with room for n bytes.
func AnchoredPathBufWithCapacity(n int) *AnchoredPathBuf {
	return &AnchoredPathBuf{buf: *RelativeForwardPathBufWithCapacity(n)}
}

// Anchored returns an immutable view of the current contents.
func (b *AnchoredPathBuf) Anchored() AnchoredPath {
	return AnchoredPath{rel: b.buf.Path()}
}

// String returns the normalized string form of the current contents.
func (b *AnchoredPathBuf) String() string {
	return b.buf.String()
}

// Capacity returns the size of the underlying buffer.
func (b *AnchoredPathBuf) Capacity() int {
	return b.buf.Capacity()
}

// Reserve grows the buffer so at least n more bytes fit without reallocation.
func (b *AnchoredPathBuf) Reserve(n int) {
	b.buf.Reserve(n)
}

// ShrinkToFit drops excess capacity.
func (b *AnchoredPathBuf) ShrinkToFit() {
	b.buf.ShrinkToFit()
}

// Push appends an already-normalized relative path.
func (b *AnchoredPathBuf) Push(p RelativeForwardPath) {
	b.buf.Push(p)
}

// PushNormalized appends a relative expression, resolving "." and ".." segments. On
// failure the buffer is left unchanged.
func (b *AnchoredPathBuf) PushNormalized(expr string) error {
	return b.buf.PushNormalized(expr)
}
