package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(ErrTargetConflict, "target occupied")
	assert.Equal(t, "[TARGET_CONFLICT] target occupied", err.Error())
	assert.Equal(t, ErrTargetConflict, err.Code)
}

func TestWrap(t *testing.T) {
	inner := fmt.Errorf("permission denied")
	err := Wrap(inner, ErrDirCreate, "cannot create parent")

	assert.Contains(t, err.Error(), "DIR_CREATE_FAILED")
	assert.Contains(t, err.Error(), "permission denied")
	assert.Equal(t, inner, errors.Unwrap(err))
}

func TestWrap_NilReturnsNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, ErrInternal, "x"))
	assert.Nil(t, Wrapf(nil, ErrInternal, "x %d", 1))
}

func TestIs_MatchesByCode(t *testing.T) {
	err := Newf(ErrSourceMissing, "no such source %s", ".zshrc")

	assert.True(t, errors.Is(err, New(ErrSourceMissing, "")))
	assert.False(t, errors.Is(err, New(ErrTargetConflict, "")))
}

func TestIs_ThroughWrapping(t *testing.T) {
	err := fmt.Errorf("outer: %w", New(ErrStaleHandle, "gone"))
	assert.True(t, errors.Is(err, New(ErrStaleHandle, "")))
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, ErrNoHandle, CodeOf(New(ErrNoHandle, "x")))
	assert.Equal(t, ErrUnknown, CodeOf(fmt.Errorf("plain")))
	assert.Equal(t, ErrNetwork, CodeOf(fmt.Errorf("wrapped: %w", New(ErrNetwork, "x"))))
}

func TestWithDetail(t *testing.T) {
	err := New(ErrDestConflict, "occupied").WithDetail("dest", "/tmp/x")
	require.Contains(t, err.Details, "dest")
	assert.Equal(t, "/tmp/x", err.Details["dest"])
}
