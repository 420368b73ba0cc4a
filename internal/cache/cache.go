package cache

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/NicholasLYang/turbo/internal/except"
	"github.com/NicholasLYang/turbo/internal/turbopath"
)

// ItemStatus describes where a cached artifact is available.
type ItemStatus struct {
	Local  bool
	Remote bool
}

// Cache stores and restores build artifacts addressed by key. Artifacts are sets of
// files identified by their anchored paths; the cache never sees host-absolute paths
// except through the project root it is handed.
type Cache interface {
	// Put stores the given project files under key.
	Put(root turbopath.ProjectRoot, key string, files []turbopath.AnchoredPath) error
	// Fetch restores the files stored under key into the project and returns them.
	Fetch(root turbopath.ProjectRoot, key string) (ItemStatus, []turbopath.AnchoredPath, error)
	// Exists reports where key is available without touching its contents.
	Exists(key string) ItemStatus
	// Clean drops the artifact stored under key, if any.
	Clean(key string) error
	// Shutdown flushes any pending work.
	Shutdown()
}

var errMissingArtifact = errors.New("missing cache artifact")

// NewNoop returns a cache that stores nothing and never hits.
func NewNoop() Cache {
	return &noopCache{}
}

type noopCache struct{}

func (c *noopCache) Put(turbopath.ProjectRoot, string, []turbopath.AnchoredPath) error {
	return nil
}

func (c *noopCache) Fetch(turbopath.ProjectRoot, string) (ItemStatus, []turbopath.AnchoredPath, error) {
	return ItemStatus{Local: false, Remote: false}, nil, nil
}

func (c *noopCache) Exists(string) ItemStatus { return ItemStatus{} }
func (c *noopCache) Clean(string) error       { return nil }
func (c *noopCache) Shutdown()                {}

// NewFS returns a cache backed by a local directory. An empty dir selects the user's
// cache directory.
func NewFS(dir string) (Cache, error) {
	if dir == "" {
		dir = filepath.Join(xdg.CacheHome, "turbo")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &fsCache{dir: dir}, nil
}

type fsCache struct {
	dir string
}

func (c *fsCache) keyDir(key string) string {
	return filepath.Join(c.dir, key)
}

func (c *fsCache) Put(root turbopath.ProjectRoot, key string, files []turbopath.AnchoredPath) error {
	var errs []error
	for _, file := range files {
		src := root.Resolve(file).String()
		dst := filepath.Join(c.keyDir(key), file.ToSystem())
		if err := copyFile(src, dst); err != nil {
			errs = append(errs, fmt.Errorf("caching %q: %w", file, err))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return err
	}
	slog.Debug("Stored artifact.", except.DataAttrs(slog.String("key", key), slog.Int("files", len(files))))
	return nil
}

func (c *fsCache) Fetch(root turbopath.ProjectRoot, key string) (ItemStatus, []turbopath.AnchoredPath, error) {
	keyDir := c.keyDir(key)
	if _, err := os.Stat(keyDir); err != nil {
		return ItemStatus{}, nil, nil
	}

	var restored []turbopath.AnchoredPath
	if err := fs.WalkDir(os.DirFS(keyDir), ".", func(fp string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			return nil
		}
		file, err := turbopath.ParseAnchoredPath(fp)
		if err != nil {
			return err
		}
		if err := copyFile(filepath.Join(keyDir, file.ToSystem()), root.Resolve(file).String()); err != nil {
			return err
		}
		restored = append(restored, file)
		return nil
	}); err != nil {
		return ItemStatus{}, nil, fmt.Errorf("%w: %v", errMissingArtifact, err)
	}

	slog.Debug("Restored artifact.", except.DataAttrs(slog.String("key", key), slog.Int("files", len(restored))))
	return ItemStatus{Local: true}, restored, nil
}

func (c *fsCache) Exists(key string) ItemStatus {
	_, err := os.Stat(c.keyDir(key))
	return ItemStatus{Local: err == nil}
}

func (c *fsCache) Clean(key string) error {
	return os.RemoveAll(c.keyDir(key))
}

func (c *fsCache) Shutdown() {}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() { except.Require(in.Close()) }()

	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return err
	}
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
