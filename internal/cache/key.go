// Package cache addresses build artifacts by stable keys derived from anchored paths.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"slices"

	"github.com/NicholasLYang/turbo/internal/turbopath"
)

// keyLength is the number of hex characters in a cache key.
const keyLength = 16

// Key derives a stable cache key for a task from its anchored inputs. Inputs are hashed
// in their normalized string form, sorted and NUL-delimited, so the key is independent
// of input order, host OS, and separator style, and two logically equal path sets can
// never produce different keys.
func Key(task string, inputs []turbopath.AnchoredPath) string {
	names := make([]string, len(inputs))
	for i, input := range inputs {
		names[i] = input.String()
	}
	slices.Sort(names)

	h := sha256.New()
	_, _ = io.WriteString(h, task)
	for _, name := range names {
		_, _ = h.Write([]byte{0})
		_, _ = io.WriteString(h, name)
	}
	return hex.EncodeToString(h.Sum(nil))[:keyLength]
}
