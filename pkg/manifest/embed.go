package manifest

import (
	_ "embed"
	"errors"
)

//go:embed embedded/manifest.toml
var defaultManifest []byte

// DefaultManifestContent returns the content of the embedded manifest
func DefaultManifestContent() string {
	return string(defaultManifest)
}

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}
