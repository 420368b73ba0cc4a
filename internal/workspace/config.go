// Package workspace resolves workspace membership: which project directories are
// members of the monorepo, according to the package manager's workspace globs.
package workspace

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/NicholasLYang/turbo/internal/turbopath"
)

// PackageManager identifies the tool whose configuration defines the workspace globs.
type PackageManager int

//go:generate go run github.com/dmarkham/enumer -type=PackageManager -trimprefix PackageManager -transform lower
const (
	PackageManagerNpm PackageManager = iota
	PackageManagerPnpm
	PackageManagerYarn
	PackageManagerBerry
)

const (
	packageManifestName = "package.json"
	pnpmWorkspaceName   = "pnpm-workspace.yaml"
)

var (
	errMissingConfig = errors.New("missing workspace configuration")
	errInvalidConfig = errors.New("invalid workspace configuration")
	errNoPackages    = errors.New("no packages found")
)

// pnpmWorkspace mirrors pnpm-workspace.yaml.
type pnpmWorkspace struct {
	Packages []string `yaml:"packages"`
}

// packageManifest mirrors the workspace-related part of package.json.
type packageManifest struct {
	Workspaces []string `json:"workspaces"`
}

// readFile is swapped out for testing.
var readFile = func(fp turbopath.AbsoluteSystemPath) ([]byte, error) {
	return os.ReadFile(fp.String())
}

// Detect picks the package manager from the files present at the project root.
func Detect(root turbopath.ProjectRoot) (PackageManager, error) {
	switch {
	case rootFileExists(root, pnpmWorkspaceName):
		return PackageManagerPnpm, nil
	case rootFileExists(root, ".yarnrc.yml"):
		return PackageManagerBerry, nil
	case rootFileExists(root, "yarn.lock"):
		return PackageManagerYarn, nil
	case rootFileExists(root, packageManifestName):
		return PackageManagerNpm, nil
	}
	return 0, fmt.Errorf("%w: no %s at %s", errMissingConfig, packageManifestName, root.Root())
}

func rootFileExists(root turbopath.ProjectRoot, name string) bool {
	fp := root.Resolve(turbopath.AnchoredPathFromUpstream(name))
	_, err := os.Stat(fp.String())
	return !errors.Is(err, fs.ErrNotExist)
}

// LoadGlobs reads the workspace globs for the given package manager. Pnpm keeps them in
// pnpm-workspace.yaml, the npm family in the root package.json.
func LoadGlobs(root turbopath.ProjectRoot, pm PackageManager) ([]string, error) {
	switch pm {
	case PackageManagerPnpm:
		return loadPnpmGlobs(root)
	case PackageManagerNpm, PackageManagerYarn, PackageManagerBerry:
		return loadManifestGlobs(root)
	}
	return nil, fmt.Errorf("%w: unsupported package manager %v", errInvalidConfig, pm)
}

func loadPnpmGlobs(root turbopath.ProjectRoot) ([]string, error) {
	data, err := readFile(root.Resolve(turbopath.AnchoredPathFromUpstream(pnpmWorkspaceName)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errMissingConfig, err)
	}
	var ws pnpmWorkspace
	if err := yaml.Unmarshal(data, &ws); err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidConfig, err)
	}
	if len(ws.Packages) == 0 {
		return nil, fmt.Errorf("%w in %s: workspaces require packages to be defined", errNoPackages, pnpmWorkspaceName)
	}
	return ws.Packages, nil
}

func loadManifestGlobs(root turbopath.ProjectRoot) ([]string, error) {
	data, err := readFile(root.Resolve(turbopath.AnchoredPathFromUpstream(packageManifestName)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errMissingConfig, err)
	}
	var manifest packageManifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidConfig, err)
	}
	if len(manifest.Workspaces) == 0 {
		return nil, fmt.Errorf("%w in %s: workspaces require packages to be defined", errNoPackages, packageManifestName)
	}
	return manifest.Workspaces, nil
}
