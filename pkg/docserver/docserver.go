// Package docserver manages the documentation server lifecycle. The
// pid file under the state dir is the sole handoff between the start
// and stop invocations, which run as separate process lifetimes.
package docserver

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"syscall"

	"github.com/arthur-debert/dotlink/pkg/errors"
	"github.com/arthur-debert/dotlink/pkg/logging"
	"github.com/arthur-debert/dotlink/pkg/paths"
)

// DefaultPort is the port the docs server binds when none is given
const DefaultPort = 7755

// Handle is the persisted record of a running docs server
type Handle struct {
	PID     int
	PidFile string
}

// URL returns the address the server was started on
func URL(port int) string {
	return fmt.Sprintf("http://localhost:%d/", port)
}

// Start launches a detached docs server child serving root on port,
// records its pid, and best-effort opens the URL in a viewer. The
// caller's process is free to exit; the server keeps running.
func Start(p *paths.Paths, root string, port int) (*Handle, error) {
	logger := logging.GetLogger("docserver")

	if info, err := os.Stat(root); err != nil || !info.IsDir() {
		return nil, errors.Newf(errors.ErrRootMissing, "docs root %s does not exist", root)
	}

	pidFile := p.PidFilePath()
	if pid, err := readPidFile(pidFile); err == nil && alive(pid) {
		return nil, errors.Newf(errors.ErrAlreadyRunning,
			"docs server already running (pid %d)", pid)
	}

	exe, err := os.Executable()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrServerSpawn, "cannot locate own executable")
	}

	cmd := exec.Command(exe, "docs", "__serve",
		"--root", root,
		"--port", strconv.Itoa(port))
	cmd.Stdout = nil
	cmd.Stderr = nil
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}

	if err := cmd.Start(); err != nil {
		return nil, errors.Wrap(err, errors.ErrServerSpawn, "failed to launch docs server")
	}

	handle := &Handle{PID: cmd.Process.Pid, PidFile: pidFile}

	if err := writePidFile(pidFile, handle.PID); err != nil {
		// The child is up but untracked; kill it rather than leak it.
		_ = cmd.Process.Kill()
		return nil, err
	}

	// Fire and forget: the child outlives us.
	if err := cmd.Process.Release(); err != nil {
		logger.Debug().Err(err).Msg("failed to release child process handle")
	}

	logger.Info().Int("pid", handle.PID).Int("port", port).Str("root", root).Msg("docs server started")

	openBrowser(URL(port))

	return handle, nil
}

// Stop terminates the recorded docs server. A stale record (process
// already gone) is reported via ErrStaleHandle but the record is
// cleared regardless; only a missing record is a hard NoHandle error.
func Stop(p *paths.Paths) error {
	logger := logging.GetLogger("docserver")

	pidFile := p.PidFilePath()
	pid, err := readPidFile(pidFile)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.New(errors.ErrNoHandle, "no docs server record found")
		}
		// Unreadable record: clear it so the next start is clean.
		_ = os.Remove(pidFile)
		return errors.Wrap(err, errors.ErrNoHandle, "docs server record is unreadable")
	}

	if !alive(pid) {
		_ = os.Remove(pidFile)
		return errors.Newf(errors.ErrStaleHandle,
			"docs server (pid %d) is already gone, record cleared", pid)
	}

	if err := syscall.Kill(pid, syscall.SIGTERM); err != nil {
		_ = os.Remove(pidFile)
		return errors.Wrapf(err, errors.ErrStaleHandle, "failed to terminate pid %d", pid)
	}

	if err := os.Remove(pidFile); err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to remove pid file")
	}

	logger.Info().Int("pid", pid).Msg("docs server stopped")
	return nil
}

// readPidFile loads the persisted handle. The file holds a single
// integer process identifier as text.
func readPidFile(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, fmt.Errorf("pid file %s is corrupt: %w", path, err)
	}
	return pid, nil
}

func writePidFile(path string, pid int) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrap(err, errors.ErrDirCreate, "failed to create state directory")
	}
	if err := os.WriteFile(path, []byte(strconv.Itoa(pid)+"\n"), 0644); err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to write pid file")
	}
	return nil
}

// alive probes a process with signal 0
func alive(pid int) bool {
	return syscall.Kill(pid, 0) == nil
}

// openBrowser opens url in the system viewer, best effort
func openBrowser(url string) {
	logger := logging.GetLogger("docserver")

	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}

	if err := cmd.Start(); err != nil {
		logger.Debug().Err(err).Str("url", url).Msg("could not open browser")
		return
	}
	_ = cmd.Process.Release()
}
