package turbopath

import "slices"

// RelativeForwardPathBuf is the owned, growable counterpart of RelativeForwardPath. The
// buffer is exclusively mutated by its single holder; the Path views it hands out are
// immutable copies, so a buffer can keep growing after exposing one. Mutating methods
// re-validate their input and never leave a partially valid value behind.
type RelativeForwardPathBuf struct {
	buf []byte
}

// NewRelativeForwardPathBuf validates s and copies it into an owned buffer.
func NewRelativeForwardPathBuf(s string) (*RelativeForwardPathBuf, error) {
	if err := checkRelativeForward(s); err != nil {
		return nil, err
	}
	return &RelativeForwardPathBuf{buf: []byte(s)}, nil
}

// RelativeForwardPathBufFromUpstream copies s into an owned buffer without checking.
func RelativeForwardPathBufFromUpstream(s string) *RelativeForwardPathBuf {
	return &RelativeForwardPathBuf{buf: []byte(s)}
}

// RelativeForwardPathBufWithCapacity returns an empty buffer with room for n bytes.
func RelativeForwardPathBufWithCapacity(n int) *RelativeForwardPathBuf {
	return &RelativeForwardPathBuf{buf: make([]byte, 0, n)}
}

// Path returns an immutable view of the current contents.
func (b *RelativeForwardPathBuf) Path() RelativeForwardPath {
	return RelativeForwardPath(b.buf)
}

// String returns the normalized string form of the current contents.
func (b *RelativeForwardPathBuf) String() string {
	return string(b.buf)
}

// Capacity returns the size of the underlying buffer. Purely a performance hint.
func (b *RelativeForwardPathBuf) Capacity() int {
	return cap(b.buf)
}

// Reserve grows the buffer so at least n more bytes fit without reallocation.
func (b *RelativeForwardPathBuf) Reserve(n int) {
	b.buf = slices.Grow(b.buf, n)
}

// ShrinkToFit drops excess capacity.
func (b *RelativeForwardPathBuf) ShrinkToFit() {
	if cap(b.buf) > len(b.buf) {
		shrunk := make([]byte, len(b.buf))
		copy(shrunk, b.buf)
		b.buf = shrunk
	}
}

// Push appends an already-normalized path. It cannot fail.
func (b *RelativeForwardPathBuf) Push(p RelativeForwardPath) {
	if p == "" {
		return
	}
	if len(b.buf) > 0 {
		b.buf = append(b.buf, '/')
	}
	b.buf = append(b.buf, p...)
}

// PushNormalized appends a possibly-unnormalized relative expression, resolving "." and
// ".." segments against the current contents. On failure the buffer is left unchanged.
func (b *RelativeForwardPathBuf) PushNormalized(expr string) error {
	joined, err := b.Path().JoinNormalized(expr)
	if err != nil {
		return err
	}
	b.buf = append(b.buf[:0], joined...)
	return nil
}
