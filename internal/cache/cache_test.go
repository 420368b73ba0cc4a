package cache

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NicholasLYang/turbo/internal/turbopath"
)

func anchored(t *testing.T, s string) turbopath.AnchoredPath {
	t.Helper()
	p, err := turbopath.ParseAnchoredPath(s)
	require.NoError(t, err)
	return p
}

func TestKey(t *testing.T) {
	inputs := []turbopath.AnchoredPath{
		anchored(t, "src/index.ts"),
		anchored(t, "package.json"),
	}

	t.Run("stable", func(t *testing.T) {
		assert.Equal(t, Key("build", inputs), Key("build", inputs))
		assert.Len(t, Key("build", inputs), keyLength)
	})

	t.Run("order insensitive", func(t *testing.T) {
		flipped := []turbopath.AnchoredPath{inputs[1], inputs[0]}
		assert.Equal(t, Key("build", inputs), Key("build", flipped))
	})

	t.Run("task sensitive", func(t *testing.T) {
		assert.NotEqual(t, Key("build", inputs), Key("test", inputs))
	})

	t.Run("input sensitive", func(t *testing.T) {
		assert.NotEqual(t, Key("build", inputs), Key("build", inputs[:1]))
	})
}

func projectRoot(t *testing.T, dir string) turbopath.ProjectRoot {
	t.Helper()
	abs, err := turbopath.ParseAbsoluteSystemPath(dir)
	require.NoError(t, err)
	return turbopath.NewProjectRoot(abs)
}

func TestNoopCache(t *testing.T) {
	root := projectRoot(t, t.TempDir())
	c := NewNoop()

	require.NoError(t, c.Put(root, "k", []turbopath.AnchoredPath{anchored(t, "out.txt")}))
	status, files, err := c.Fetch(root, "k")
	require.NoError(t, err)
	assert.False(t, status.Local)
	assert.Empty(t, files)
	assert.False(t, c.Exists("k").Local)
	require.NoError(t, c.Clean("k"))
	c.Shutdown()
}

func TestFSCache(t *testing.T) {
	newRoot := func(t *testing.T, files map[string]string) turbopath.ProjectRoot {
		t.Helper()
		dir := t.TempDir()
		for name, contents := range files {
			fp := filepath.Join(dir, filepath.FromSlash(name))
			require.NoError(t, os.MkdirAll(filepath.Dir(fp), 0755))
			require.NoError(t, os.WriteFile(fp, []byte(contents), 0644))
		}
		return projectRoot(t, dir)
	}

	t.Run("round trip", func(t *testing.T) {
		src := newRoot(t, map[string]string{
			"dist/main.js":  "console.log(1)",
			"dist/main.map": "{}",
		})
		c, err := NewFS(t.TempDir())
		require.NoError(t, err)
		defer c.Shutdown()

		files := []turbopath.AnchoredPath{anchored(t, "dist/main.js"), anchored(t, "dist/main.map")}
		require.NoError(t, c.Put(src, "abc123", files))
		assert.True(t, c.Exists("abc123").Local)

		dst := newRoot(t, nil)
		status, restored, err := c.Fetch(dst, "abc123")
		require.NoError(t, err)
		assert.True(t, status.Local)
		assert.ElementsMatch(t, files, restored)

		got, err := os.ReadFile(dst.Resolve(files[0]).String())
		require.NoError(t, err)
		assert.Equal(t, "console.log(1)", string(got))
	})

	t.Run("miss", func(t *testing.T) {
		c, err := NewFS(t.TempDir())
		require.NoError(t, err)

		status, restored, err := c.Fetch(newRoot(t, nil), "nope")
		require.NoError(t, err)
		assert.False(t, status.Local)
		assert.Empty(t, restored)
		assert.False(t, c.Exists("nope").Local)
	})

	t.Run("clean", func(t *testing.T) {
		src := newRoot(t, map[string]string{"out.txt": "ok"})
		c, err := NewFS(t.TempDir())
		require.NoError(t, err)

		require.NoError(t, c.Put(src, "k1", []turbopath.AnchoredPath{anchored(t, "out.txt")}))
		require.NoError(t, c.Clean("k1"))
		assert.False(t, c.Exists("k1").Local)
	})

	t.Run("missing source file", func(t *testing.T) {
		src := newRoot(t, nil)
		c, err := NewFS(t.TempDir())
		require.NoError(t, err)

		err = c.Put(src, "k2", []turbopath.AnchoredPath{anchored(t, "gone.txt")})
		assert.ErrorContains(t, err, "gone.txt")
	})
}
