package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testEnv creates an isolated repo and home, returning their paths
func testEnv(t *testing.T, manifestBody string) (repo, home string) {
	t.Helper()

	repo = t.TempDir()
	home = t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	t.Setenv("DOTLINK_STATE_DIR", t.TempDir())

	if manifestBody != "" {
		require.NoError(t, os.WriteFile(filepath.Join(repo, "dotlink.toml"), []byte(manifestBody), 0644))
	}
	return repo, home
}

// runCommand executes the root command with args, capturing output
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

const singleLinkManifest = `
[[link]]
source = "bashrc"
target = "~/.bashrc"
`

func TestRootCmd_HasExpectedCommands(t *testing.T) {
	cmd := NewRootCmd()

	names := make(map[string]bool)
	for _, sub := range cmd.Commands() {
		names[sub.Name()] = true
	}

	for _, want := range []string{"up", "status", "init", "docs", "version"} {
		assert.True(t, names[want], "missing command %q", want)
	}
}

func TestUp_CreatesLinks(t *testing.T) {
	repo, home := testEnv(t, singleLinkManifest)
	require.NoError(t, os.WriteFile(filepath.Join(repo, "bashrc"), []byte("export A=1\n"), 0644))

	out, err := runCommand(t, "up", "--no-fetch", "--repo", repo)
	require.NoError(t, err)
	assert.Contains(t, out, "linked")

	target := filepath.Join(home, ".bashrc")
	info, statErr := os.Lstat(target)
	require.NoError(t, statErr)
	assert.NotZero(t, info.Mode()&os.ModeSymlink)
}

func TestUp_SecondRunIsNoOp(t *testing.T) {
	repo, _ := testEnv(t, singleLinkManifest)
	require.NoError(t, os.WriteFile(filepath.Join(repo, "bashrc"), []byte(""), 0644))

	_, err := runCommand(t, "up", "--no-fetch", "--repo", repo)
	require.NoError(t, err)

	out, err := runCommand(t, "up", "--no-fetch", "--repo", repo)
	require.NoError(t, err)
	assert.Contains(t, out, "ok")
	assert.Contains(t, out, "0 linked, 1 already in place, 0 problem(s)")
}

func TestUp_ConflictFailsWithoutTouchingFile(t *testing.T) {
	repo, home := testEnv(t, singleLinkManifest)
	require.NoError(t, os.WriteFile(filepath.Join(repo, "bashrc"), []byte("repo\n"), 0644))

	target := filepath.Join(home, ".bashrc")
	require.NoError(t, os.WriteFile(target, []byte("mine\n"), 0644))

	out, err := runCommand(t, "up", "--no-fetch", "--repo", repo)
	require.Error(t, err)
	assert.Contains(t, out, "conflict")

	content, readErr := os.ReadFile(target)
	require.NoError(t, readErr)
	assert.Equal(t, "mine\n", string(content))
}

func TestUp_DryRunTouchesNothing(t *testing.T) {
	repo, home := testEnv(t, singleLinkManifest)
	require.NoError(t, os.WriteFile(filepath.Join(repo, "bashrc"), []byte(""), 0644))

	out, err := runCommand(t, "up", "--dry-run", "--no-fetch", "--repo", repo)
	require.NoError(t, err)
	assert.Contains(t, out, "would link")

	_, statErr := os.Lstat(filepath.Join(home, ".bashrc"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestStatus_IsReadOnly(t *testing.T) {
	repo, home := testEnv(t, singleLinkManifest)
	require.NoError(t, os.WriteFile(filepath.Join(repo, "bashrc"), []byte(""), 0644))

	out, err := runCommand(t, "status", "--repo", repo)
	require.NoError(t, err)
	assert.Contains(t, out, "not linked")

	_, statErr := os.Lstat(filepath.Join(home, ".bashrc"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestInit_WritesStarterManifest(t *testing.T) {
	repo, _ := testEnv(t, "")

	out, err := runCommand(t, "init", "--repo", repo)
	require.NoError(t, err)
	assert.Contains(t, out, "dotlink.toml")

	content, readErr := os.ReadFile(filepath.Join(repo, "dotlink.toml"))
	require.NoError(t, readErr)
	assert.Contains(t, string(content), "[[link]]")
}

func TestInit_RefusesToOverwrite(t *testing.T) {
	repo, _ := testEnv(t, singleLinkManifest)

	_, err := runCommand(t, "init", "--repo", repo)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not overwriting")
}

func TestInit_Stdout(t *testing.T) {
	repo, _ := testEnv(t, "")

	out, err := runCommand(t, "init", "--stdout", "--repo", repo)
	require.NoError(t, err)
	assert.Contains(t, out, "# dotlink manifest")

	// Nothing written to disk
	_, statErr := os.Stat(filepath.Join(repo, "dotlink.toml"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestDocsView_RendersMarkdown(t *testing.T) {
	repo, _ := testEnv(t, "")
	doc := filepath.Join(repo, "README.md")
	require.NoError(t, os.WriteFile(doc, []byte("# Hello\n\nsome text\n"), 0644))

	out, err := runCommand(t, "docs", "view", doc)
	require.NoError(t, err)
	assert.Contains(t, out, "Hello")
}

func TestDocsStop_NoServer(t *testing.T) {
	testEnv(t, "")

	_, err := runCommand(t, "docs", "stop")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NO_HANDLE")
}

func TestVersionCmd(t *testing.T) {
	testEnv(t, "")

	out, err := runCommand(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "dotlink version")
}
