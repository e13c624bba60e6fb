package fetcher

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/dotlink/pkg/errors"
	"github.com/arthur-debert/dotlink/pkg/manifest"
)

func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available on PATH")
	}
}

// newLocalRepo creates a git repo with one commit to clone from
func newLocalRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	run := func(args ...string) {
		cmd := exec.Command("git", args...)
		cmd.Dir = dir
		out, err := cmd.CombinedOutput()
		require.NoError(t, err, "git %v: %s", args, out)
	}

	run("init", "-q")
	run("-c", "user.email=test@test", "-c", "user.name=test",
		"commit", "--allow-empty", "-q", "-m", "init")

	return dir
}

func TestInspect_MissingDestination(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "plugin")

	res := Inspect(manifest.PluginSpec{URL: "https://example.com/x", Dest: dest})

	assert.NoError(t, res.Err)
	assert.False(t, res.Skipped)
	assert.Equal(t, dest, res.Dest)
}

func TestInspect_ExistingClone(t *testing.T) {
	dest := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dest, ".git"), 0755))

	res := Inspect(manifest.PluginSpec{URL: "https://example.com/x", Dest: dest})

	assert.NoError(t, res.Err)
	assert.True(t, res.Skipped)
}

func TestInspect_DestinationConflict(t *testing.T) {
	dest := t.TempDir() // exists, but no version-control metadata

	res := Inspect(manifest.PluginSpec{URL: "https://example.com/x", Dest: dest})

	require.Error(t, res.Err)
	assert.Equal(t, errors.ErrDestConflict, errors.CodeOf(res.Err))
}

func TestFetch_ClonesAndThenSkips(t *testing.T) {
	requireGit(t)
	src := newLocalRepo(t)
	dest := filepath.Join(t.TempDir(), "plugin")

	spec := manifest.PluginSpec{URL: src, Dest: dest}

	first := Fetch(spec)
	require.NoError(t, first.Err)
	assert.False(t, first.Skipped)
	_, err := os.Stat(filepath.Join(dest, ".git"))
	require.NoError(t, err)

	// Second call performs no clone
	second := Fetch(spec)
	require.NoError(t, second.Err)
	assert.True(t, second.Skipped)
}

func TestFetch_UnreachableRemote(t *testing.T) {
	requireGit(t)
	dest := filepath.Join(t.TempDir(), "plugin")

	res := Fetch(manifest.PluginSpec{
		URL:  filepath.Join(t.TempDir(), "does-not-exist"),
		Dest: dest,
	})

	require.Error(t, res.Err)
	assert.Equal(t, errors.ErrNetwork, errors.CodeOf(res.Err))
	_, err := os.Stat(dest)
	assert.True(t, os.IsNotExist(err))
}

func TestFetch_DestinationConflict(t *testing.T) {
	dest := t.TempDir()

	res := Fetch(manifest.PluginSpec{URL: "https://example.com/x", Dest: dest})

	require.Error(t, res.Err)
	assert.Equal(t, errors.ErrDestConflict, errors.CodeOf(res.Err))
}

func TestFetchAll_Aggregates(t *testing.T) {
	conflict := t.TempDir()
	missingParent := filepath.Join(t.TempDir(), "a")
	require.NoError(t, os.MkdirAll(filepath.Join(missingParent, ".git"), 0755))

	results := FetchAll([]manifest.PluginSpec{
		{URL: "u1", Dest: conflict},
		{URL: "u2", Dest: missingParent},
	})

	require.Len(t, results, 2)
	assert.Error(t, results[0].Err)
	assert.True(t, results[1].Skipped)
	assert.True(t, Failed(results))
}
