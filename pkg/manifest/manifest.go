// Package manifest defines the declarative list of link and plugin
// operations dotlink applies, and loads it from embedded defaults
// overlaid by an optional dotlink.toml at the repository root.
package manifest

import (
	"os"
	"path/filepath"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/dotlink/pkg/errors"
	"github.com/arthur-debert/dotlink/pkg/logging"
	"github.com/arthur-debert/dotlink/pkg/paths"
)

// LinkSpec maps one repository file onto its home-directory target.
// Source is relative to the repo root; Target is absolute, with a
// leading ~/ allowed.
type LinkSpec struct {
	Source string `koanf:"source" toml:"source"`
	Target string `koanf:"target" toml:"target"`
}

// PluginSpec describes a one-time clone of an external plugin
// repository. No update or versioning semantics.
type PluginSpec struct {
	URL  string `koanf:"url" toml:"url"`
	Dest string `koanf:"dest" toml:"dest"`
}

// Manifest is the ordered set of operations to apply. Order is
// application and report order.
type Manifest struct {
	Links   []LinkSpec   `koanf:"link" toml:"link"`
	Plugins []PluginSpec `koanf:"plugin" toml:"plugin"`
}

// Load builds the manifest: embedded defaults first, then the repo's
// dotlink.toml if present. The repo file replaces the default lists
// wholesale rather than appending to them.
func Load(p *paths.Paths) (*Manifest, error) {
	logger := logging.GetLogger("manifest")

	k, err := loadDefaults()
	if err != nil {
		return nil, err
	}

	override := p.ManifestPath()
	if _, err := os.Stat(override); err == nil {
		if err := k.Load(file.Provider(override), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrManifestParse, "failed to load manifest from %s", override)
		}
		logger.Debug().Str("path", override).Msg("loaded manifest override")
	}

	var m Manifest
	if err := k.Unmarshal("", &m); err != nil {
		return nil, errors.Wrap(err, errors.ErrManifestLoad, "failed to unmarshal manifest")
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}

	logger.Debug().
		Int("links", len(m.Links)).
		Int("plugins", len(m.Plugins)).
		Msg("manifest loaded")

	return &m, nil
}

// loadDefaults loads just the embedded manifest
func loadDefaults() (*koanf.Koanf, error) {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultManifest}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrManifestParse, "failed to load embedded manifest")
	}
	return k, nil
}

// Validate checks structural soundness of the manifest. Each tool's
// config must map to its own target exclusively, so duplicate targets
// are rejected outright.
func (m *Manifest) Validate() error {
	seen := make(map[string]string, len(m.Links))

	for i, spec := range m.Links {
		if spec.Source == "" {
			return errors.Newf(errors.ErrManifestInvalid, "link %d has an empty source", i)
		}
		if spec.Target == "" {
			return errors.Newf(errors.ErrManifestInvalid, "link %d (%s) has an empty target", i, spec.Source)
		}

		expanded, err := paths.ExpandHome(spec.Target)
		if err != nil {
			return err
		}
		if !filepath.IsAbs(expanded) {
			return errors.Newf(errors.ErrManifestInvalid, "link target %q is not absolute", spec.Target)
		}

		if prior, dup := seen[expanded]; dup {
			return errors.Newf(errors.ErrManifestInvalid,
				"links %q and %q both map to target %q", prior, spec.Source, spec.Target)
		}
		seen[expanded] = spec.Source
	}

	for i, spec := range m.Plugins {
		if spec.URL == "" {
			return errors.Newf(errors.ErrManifestInvalid, "plugin %d has an empty url", i)
		}
		if spec.Dest == "" {
			return errors.Newf(errors.ErrManifestInvalid, "plugin %d (%s) has an empty dest", i, spec.URL)
		}
	}

	return nil
}
