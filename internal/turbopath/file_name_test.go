package turbopath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFileName(t *testing.T) {
	t.Run("accepts ordinary components", func(t *testing.T) {
		for _, s := range []string{"foo", ".gitignore", "foo.tar.gz", "...", "a b"} {
			name, err := ParseFileName(s)
			require.NoError(t, err, s)
			assert.Equal(t, s, name.String())
		}
	})

	t.Run("rejects invalid components", func(t *testing.T) {
		for _, s := range []string{"", ".", "..", "a/b", `a\b`, "/"} {
			_, err := ParseFileName(s)
			require.ErrorIs(t, err, ErrInvalidFileName, s)
		}
	})

	t.Run("is case-sensitive", func(t *testing.T) {
		assert.NotEqual(t, FileName("Foo"), FileName("foo"))
	})
}

func TestFileName_StemExtension(t *testing.T) {
	for key, tc := range map[string]struct {
		name, stem, ext string
		hasExt          bool
	}{
		"simple":        {name: "foo.rs", stem: "foo", ext: "rs", hasExt: true},
		"dotfile":       {name: ".gitignore", stem: ".gitignore"},
		"dotfile w ext": {name: ".config.yaml", stem: ".config", ext: "yaml", hasExt: true},
		"no dot":        {name: "Makefile", stem: "Makefile"},
		"double":        {name: "foo.tar.gz", stem: "foo.tar", ext: "gz", hasExt: true},
	} {
		t.Run(key, func(t *testing.T) {
			name := FileName(tc.name)
			assert.Equal(t, tc.stem, name.Stem())
			ext, ok := name.Extension()
			assert.Equal(t, tc.hasExt, ok)
			assert.Equal(t, tc.ext, ext)
		})
	}
}
