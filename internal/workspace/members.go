package workspace

import (
	"cmp"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"slices"

	"github.com/NicholasLYang/turbo/internal/except"
	"github.com/NicholasLYang/turbo/internal/turbopath"
)

var (
	// maxDepth is the maximum filesystem depth explored when searching for members.
	maxDepth uint8 = 6

	// ignoredFolders contains folder names which are never workspace members and are not
	// descended into.
	ignoredFolders = []string{"node_modules", ".git"}

	// dirFS is swapped out for testing.
	dirFS = func(root turbopath.AbsoluteSystemPath) fs.FS {
		return os.DirFS(root.String())
	}

	// errMemberSearchFailed is returned when FindMembers failed.
	errMemberSearchFailed = errors.New("unable to find workspace members")
)

// FindMembers walks the project to find the directories that contain a package.json and
// match the workspace globs. Members do not nest: a matched directory is not descended
// into. Results are sorted by path.
func FindMembers(root turbopath.ProjectRoot, matcher *Matcher) ([]turbopath.AnchoredPath, error) {
	slog.Debug("Finding workspace members.", except.DataAttrs(slog.String("root", root.Root().String())))

	fsys := dirFS(root.Root())
	depths := make(map[string]uint8)
	var members []turbopath.AnchoredPath
	if err := fs.WalkDir(fsys, ".", func(fp string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !entry.IsDir() || fp == "." {
			return nil
		}
		depth := depths[path.Dir(fp)] + 1
		if depth > maxDepth || slices.Contains(ignoredFolders, entry.Name()) {
			return fs.SkipDir
		}
		depths[fp] = depth

		anchored, err := turbopath.AnchoredPathFromSystem(fp)
		if err != nil {
			// A directory whose name cannot be a normalized component (e.g. contains a
			// backslash on a POSIX filesystem) can never be addressed by a cache key.
			slog.Warn("Skipping unrepresentable directory.", except.ErrAttr(err), except.DataAttrs(slog.String("path", fp)))
			return fs.SkipDir
		}
		if matcher.Match(anchored) && hasPackageManifest(fsys, fp) {
			members = append(members, anchored)
			return fs.SkipDir
		}
		return nil
	}); err != nil {
		return nil, fmt.Errorf("%w: %v", errMemberSearchFailed, err)
	}

	slices.SortFunc(members, func(p1, p2 turbopath.AnchoredPath) int {
		return cmp.Compare(p1.String(), p2.String())
	})
	slog.Info(fmt.Sprintf("Found %d workspace member(s).", len(members)))
	return members, nil
}

func hasPackageManifest(fsys fs.FS, dir string) bool {
	info, err := fs.Stat(fsys, path.Join(dir, packageManifestName))
	return err == nil && !info.IsDir()
}
