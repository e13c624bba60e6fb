// Package linker applies the manifest's link specs: it makes every
// target a symlink to its repo source, creating parent directories as
// needed. Reruns are no-ops, and anything else already sitting at a
// target is reported as a conflict, never overwritten.
package linker

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/dotlink/pkg/errors"
	"github.com/arthur-debert/dotlink/pkg/logging"
	"github.com/arthur-debert/dotlink/pkg/manifest"
	"github.com/arthur-debert/dotlink/pkg/paths"
)

// Outcome classifies the end state of a single link spec
type Outcome string

const (
	// OutcomeCreated means the symlink was created by this run
	OutcomeCreated Outcome = "created"

	// OutcomeAlreadyLinked means the target already points at the source
	OutcomeAlreadyLinked Outcome = "already-linked"

	// OutcomeWouldCreate means the target is absent; used by Verify and
	// dry runs where nothing is written
	OutcomeWouldCreate Outcome = "would-create"

	// OutcomeConflict means something else occupies the target
	OutcomeConflict Outcome = "conflict"

	// OutcomeSourceMissing means the repo file does not exist
	OutcomeSourceMissing Outcome = "source-missing"

	// OutcomeFailed means a filesystem operation failed
	OutcomeFailed Outcome = "failed"
)

// Result records the outcome for one spec
type Result struct {
	Spec    manifest.LinkSpec
	Target  string // expanded absolute target path
	Outcome Outcome
	Err     error // set for conflict, source-missing and failed outcomes
}

// Report is the ordered list of per-spec results
type Report struct {
	Results []Result
}

// Failed reports whether any spec ended in an error outcome
func (r *Report) Failed() bool {
	for _, res := range r.Results {
		switch res.Outcome {
		case OutcomeConflict, OutcomeSourceMissing, OutcomeFailed:
			return true
		}
	}
	return false
}

// Counts tallies results per outcome
func (r *Report) Counts() map[Outcome]int {
	counts := make(map[Outcome]int)
	for _, res := range r.Results {
		counts[res.Outcome]++
	}
	return counts
}

// Apply runs every spec against sourceRoot and aggregates the results.
// Specs are independent failure domains: one conflict never stops the
// rest. The caller decides the exit status from Report.Failed.
func Apply(specs []manifest.LinkSpec, sourceRoot string) *Report {
	logger := logging.GetLogger("linker")
	report := &Report{Results: make([]Result, 0, len(specs))}

	for _, spec := range specs {
		res := applyOne(spec, sourceRoot)
		switch res.Outcome {
		case OutcomeCreated:
			logger.Info().Str("source", spec.Source).Str("target", res.Target).Msg("link created")
		case OutcomeAlreadyLinked:
			logger.Debug().Str("source", spec.Source).Str("target", res.Target).Msg("link already correct")
		default:
			logger.Error().Err(res.Err).Str("source", spec.Source).Str("target", res.Target).Msg("link failed")
		}
		report.Results = append(report.Results, res)
	}

	return report
}

// Verify walks the specs read-only, classifying each one without
// touching the filesystem. Absent targets come back as would-create.
func Verify(specs []manifest.LinkSpec, sourceRoot string) *Report {
	report := &Report{Results: make([]Result, 0, len(specs))}
	for _, spec := range specs {
		report.Results = append(report.Results, inspectOne(spec, sourceRoot))
	}
	return report
}

func applyOne(spec manifest.LinkSpec, sourceRoot string) Result {
	res := inspectOne(spec, sourceRoot)
	if res.Outcome != OutcomeWouldCreate {
		return res
	}

	source := filepath.Join(sourceRoot, spec.Source)

	if err := os.MkdirAll(filepath.Dir(res.Target), 0755); err != nil {
		res.Outcome = OutcomeFailed
		res.Err = errors.Wrapf(err, errors.ErrDirCreate,
			"failed to create parent directory for %s", res.Target)
		return res
	}

	if err := os.Symlink(source, res.Target); err != nil {
		res.Outcome = OutcomeFailed
		res.Err = errors.Wrapf(err, errors.ErrSymlinkCreate,
			"failed to link %s", res.Target)
		return res
	}

	res.Outcome = OutcomeCreated
	return res
}

// inspectOne classifies a spec without modifying anything
func inspectOne(spec manifest.LinkSpec, sourceRoot string) Result {
	res := Result{Spec: spec}

	target, err := paths.ExpandHome(spec.Target)
	if err != nil {
		res.Outcome = OutcomeFailed
		res.Err = err
		return res
	}
	res.Target = target

	source := filepath.Join(sourceRoot, spec.Source)
	if _, err := os.Lstat(source); err != nil {
		res.Outcome = OutcomeSourceMissing
		res.Err = errors.Newf(errors.ErrSourceMissing,
			"source %s does not exist under %s", spec.Source, sourceRoot).
			WithDetail("source", source)
		return res
	}

	info, err := os.Lstat(target)
	if err != nil {
		if os.IsNotExist(err) {
			res.Outcome = OutcomeWouldCreate
			return res
		}
		res.Outcome = OutcomeFailed
		res.Err = errors.Wrapf(err, errors.ErrInternal, "cannot stat %s", target)
		return res
	}

	if info.Mode()&os.ModeSymlink != 0 && linksTo(target, source) {
		res.Outcome = OutcomeAlreadyLinked
		return res
	}

	// A file, directory, or symlink pointing elsewhere. Never overwritten.
	res.Outcome = OutcomeConflict
	res.Err = errors.Newf(errors.ErrTargetConflict,
		"%s already exists and is not a link to %s", target, source)
	return res
}

// linksTo reports whether the symlink at path resolves to source
func linksTo(path, source string) bool {
	dest, err := os.Readlink(path)
	if err != nil {
		return false
	}
	if !filepath.IsAbs(dest) {
		dest = filepath.Join(filepath.Dir(path), dest)
	}
	return filepath.Clean(dest) == filepath.Clean(source)
}
