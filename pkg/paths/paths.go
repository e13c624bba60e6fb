// Package paths provides centralized path handling for dotlink.
// It implements XDG Base Directory specification compliance and
// provides a consistent API for all path operations in the codebase.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/dotlink/pkg/errors"
)

// Environment variable names
const (
	// EnvRepoRoot is the primary environment variable for the dotfiles
	// repository checkout location
	EnvRepoRoot = "DOTLINK_REPO"

	// EnvDataDir overrides the XDG data directory for dotlink
	EnvDataDir = "DOTLINK_DATA_DIR"

	// EnvStateDir overrides the XDG state directory for dotlink
	EnvStateDir = "DOTLINK_STATE_DIR"
)

// Default directories and files
const (
	// AppDirName is the directory name for dotlink-specific files
	AppDirName = "dotlink"

	// ManifestFile is the name of the manifest file at the repo root
	ManifestFile = "dotlink.toml"

	// PidFileName is the name of the docs server pid file
	PidFileName = "docs-server.pid"

	// LogFileName is the name of the log file
	LogFileName = "dotlink.log"
)

// Paths provides centralized path management for dotlink
type Paths struct {
	repoRoot string
	dataDir  string
	stateDir string
}

// New creates a Paths instance rooted at repoRoot. An empty repoRoot
// falls back to DOTLINK_REPO, then the current working directory.
func New(repoRoot string) (*Paths, error) {
	if repoRoot == "" {
		repoRoot = os.Getenv(EnvRepoRoot)
	}
	if repoRoot == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "cannot determine working directory")
		}
		repoRoot = cwd
	}

	abs, err := filepath.Abs(repoRoot)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "cannot resolve repo root %q", repoRoot)
	}

	dataDir := os.Getenv(EnvDataDir)
	if dataDir == "" {
		dataDir = filepath.Join(xdg.DataHome, AppDirName)
	}

	stateDir := os.Getenv(EnvStateDir)
	if stateDir == "" {
		stateDir = filepath.Join(xdg.StateHome, AppDirName)
	}

	return &Paths{
		repoRoot: abs,
		dataDir:  dataDir,
		stateDir: stateDir,
	}, nil
}

// RepoRoot returns the dotfiles repository checkout root
func (p *Paths) RepoRoot() string {
	return p.repoRoot
}

// ManifestPath returns the path of the optional manifest override file
// at the repository root
func (p *Paths) ManifestPath() string {
	return filepath.Join(p.repoRoot, ManifestFile)
}

// DataDir returns the dotlink data directory
func (p *Paths) DataDir() string {
	return p.dataDir
}

// StateDir returns the dotlink state directory
func (p *Paths) StateDir() string {
	return p.stateDir
}

// PidFilePath returns the well-known location of the docs server pid file
func (p *Paths) PidFilePath() string {
	return filepath.Join(p.stateDir, PidFileName)
}

// LogFilePath returns the path of the log file
func (p *Paths) LogFilePath() string {
	return filepath.Join(p.stateDir, LogFileName)
}

// ExpandHome resolves a leading ~/ against the user home directory.
// Paths without the prefix are returned unchanged.
func ExpandHome(path string) (string, error) {
	if path == "~" || len(path) >= 2 && path[:2] == "~/" {
		home := os.Getenv("HOME")
		if home == "" {
			var err error
			home, err = os.UserHomeDir()
			if err != nil {
				return "", errors.Wrap(err, errors.ErrInternal, "cannot determine home directory")
			}
		}
		if path == "~" {
			return home, nil
		}
		return filepath.Join(home, path[2:]), nil
	}
	return path, nil
}
