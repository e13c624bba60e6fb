// Package fetcher performs one-time clones of external plugin
// repositories. A destination that is already a clone is left alone;
// a destination occupied by anything else is a conflict.
package fetcher

import (
	"os"
	"os/exec"
	"path/filepath"

	"github.com/arthur-debert/dotlink/pkg/errors"
	"github.com/arthur-debert/dotlink/pkg/logging"
	"github.com/arthur-debert/dotlink/pkg/manifest"
	"github.com/arthur-debert/dotlink/pkg/paths"
)

// Result records the outcome of one plugin spec
type Result struct {
	Spec    manifest.PluginSpec
	Dest    string // expanded absolute destination
	Skipped bool   // destination was already a clone
	Err     error
}

// Fetch clones spec.URL into spec.Dest. It is idempotent: if the
// destination already holds version-control metadata the clone is
// skipped. No update or versioning semantics.
func Fetch(spec manifest.PluginSpec) Result {
	logger := logging.GetLogger("fetcher")

	res := Inspect(spec)
	if res.Skipped {
		logger.Debug().Str("dest", res.Dest).Msg("plugin already cloned, skipping")
		return res
	}
	if res.Err != nil {
		return res
	}
	dest := res.Dest

	if _, err := exec.LookPath("git"); err != nil {
		res.Err = errors.Wrap(err, errors.ErrGitMissing, "git is not available on PATH")
		return res
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		res.Err = errors.Wrapf(err, errors.ErrDirCreate,
			"failed to create parent directory for %s", dest)
		return res
	}

	cmd := exec.Command("git", "clone", spec.URL, dest)
	output, err := cmd.CombinedOutput()
	if err != nil {
		res.Err = errors.Wrapf(err, errors.ErrNetwork,
			"failed to clone %s", spec.URL).
			WithDetail("output", string(output))
		return res
	}

	logger.Info().Str("url", spec.URL).Str("dest", dest).Msg("plugin cloned")
	return res
}

// FetchAll runs every plugin spec, aggregating results. Specs are
// independent: a failed clone does not stop the rest.
func FetchAll(specs []manifest.PluginSpec) []Result {
	results := make([]Result, 0, len(specs))
	for _, spec := range specs {
		results = append(results, Fetch(spec))
	}
	return results
}

// Inspect classifies a plugin destination without cloning anything.
// Skipped means the clone is already in place; an error means the
// destination is occupied by something that is not a clone.
func Inspect(spec manifest.PluginSpec) Result {
	res := Result{Spec: spec}

	dest, err := paths.ExpandHome(spec.Dest)
	if err != nil {
		res.Err = err
		return res
	}
	res.Dest = dest

	if _, err := os.Stat(dest); err != nil {
		return res
	}
	if _, err := os.Stat(filepath.Join(dest, ".git")); err == nil {
		res.Skipped = true
		return res
	}
	res.Err = errors.Newf(errors.ErrDestConflict,
		"%s exists but is not a clone of %s", dest, spec.URL)
	return res
}

// InspectAll inspects every plugin spec read-only
func InspectAll(specs []manifest.PluginSpec) []Result {
	results := make([]Result, 0, len(specs))
	for _, spec := range specs {
		results = append(results, Inspect(spec))
	}
	return results
}

// Failed reports whether any result carries an error
func Failed(results []Result) bool {
	for _, res := range results {
		if res.Err != nil {
			return true
		}
	}
	return false
}
