package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func TestSetupLogger_VerbosityLevels(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", t.TempDir())

	cases := []struct {
		verbosity int
		level     zerolog.Level
	}{
		{0, zerolog.WarnLevel},
		{1, zerolog.InfoLevel},
		{2, zerolog.DebugLevel},
		{3, zerolog.TraceLevel},
		{9, zerolog.TraceLevel},
	}

	for _, tc := range cases {
		SetupLogger(tc.verbosity)
		assert.Equal(t, tc.level, zerolog.GlobalLevel(), "verbosity %d", tc.verbosity)
	}
}

func TestGetLogger_TagsComponent(t *testing.T) {
	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf).Level(zerolog.DebugLevel)

	logger := GetLogger("linker")
	logger.Info().Msg("hello")

	out := buf.String()
	assert.Contains(t, out, `"component":"linker"`)
	assert.Contains(t, out, "hello")
}
