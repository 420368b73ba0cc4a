package workspace

import (
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NicholasLYang/turbo/internal/turbopath"
)

func fakeRoot(files ...string) (turbopath.ProjectRoot, fstest.MapFS) {
	fsys := make(fstest.MapFS)
	for _, fp := range files {
		fsys[fp] = &fstest.MapFile{Data: []byte("{}")}
	}
	root := turbopath.NewProjectRoot(turbopath.AbsoluteSystemPathFromUpstream("/repo"))
	return root, fsys
}

func TestFindMembers(t *testing.T) {
	root, fsys := fakeRoot(
		"package.json",
		"apps/web/package.json",
		"apps/docs/package.json",
		"apps/empty/readme.md",
		"packages/ui/package.json",
		"packages/ui/node_modules/dep/package.json",
		"node_modules/other/package.json",
		"tools/scripts/package.json",
	)
	defer swap(&dirFS, func(turbopath.AbsoluteSystemPath) fs.FS { return fsys })()

	matcher, err := NewMatcher([]string{"apps/*", "packages/*"})
	require.NoError(t, err)

	members, err := FindMembers(root, matcher)
	require.NoError(t, err)

	want := []string{"apps/docs", "apps/web", "packages/ui"}
	var got []string
	for _, member := range members {
		got = append(got, member.String())
	}
	assert.Empty(t, cmp.Diff(want, got))
}

func TestFindMembers_DepthBound(t *testing.T) {
	root, fsys := fakeRoot(
		"a/b/c/d/e/f/g/h/package.json",
		"apps/web/package.json",
	)
	defer swap(&dirFS, func(turbopath.AbsoluteSystemPath) fs.FS { return fsys })()

	matcher, err := NewMatcher([]string{"**"})
	require.NoError(t, err)

	members, err := FindMembers(root, matcher)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, "apps/web", members[0].String())
}

func TestFindMembers_MatchedDirsAreNotDescended(t *testing.T) {
	root, fsys := fakeRoot(
		"packages/ui/package.json",
		"packages/ui/examples/demo/package.json",
	)
	defer swap(&dirFS, func(turbopath.AbsoluteSystemPath) fs.FS { return fsys })()

	matcher, err := NewMatcher([]string{"packages/**"})
	require.NoError(t, err)

	members, err := FindMembers(root, matcher)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, "packages/ui", members[0].String())
}
