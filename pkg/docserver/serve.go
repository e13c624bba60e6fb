package docserver

import (
	"fmt"
	"net/http"

	"github.com/arthur-debert/dotlink/pkg/errors"
	"github.com/arthur-debert/dotlink/pkg/logging"
)

// Serve runs the static file server in the foreground. This is the
// entry point of the detached child spawned by Start; it blocks until
// the process is terminated.
func Serve(root string, port int) error {
	logger := logging.GetLogger("docserver.child")

	f, err := http.Dir(root).Open("/")
	if err != nil {
		return errors.Newf(errors.ErrRootMissing, "docs root %s is not servable", root)
	}
	_ = f.Close()

	addr := fmt.Sprintf(":%d", port)
	logger.Info().Str("addr", addr).Str("root", root).Msg("serving docs")

	handler := http.FileServer(http.Dir(root))
	if err := http.ListenAndServe(addr, handler); err != nil {
		return errors.Wrap(err, errors.ErrServerSpawn, "docs server exited")
	}
	return nil
}
