package manifest

import (
	gotoml "github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/dotlink/pkg/errors"
)

const starterHeader = `# dotlink manifest
#
# Each [[link]] entry maps a file in this repository (source, relative
# to the repo root) onto a symlink in your home directory (target,
# absolute; ~/ is expanded). Each [[plugin]] entry is cloned once into
# dest and never touched again.
#
# This file replaces the built-in defaults wholesale.

`

// Starter renders a commented starter dotlink.toml seeded from the
// built-in defaults, for the init command to write at the repo root.
func Starter() (string, error) {
	k, err := loadDefaults()
	if err != nil {
		return "", err
	}

	var m Manifest
	if err := k.Unmarshal("", &m); err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to unmarshal embedded manifest")
	}

	body, err := gotoml.Marshal(&m)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to marshal starter manifest")
	}

	return starterHeader + string(body), nil
}
