// Package output writes generated files.
package output

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/renameio/v2"

	"github.com/mcncl/cfgmerge/internal/errors"
)

// DefaultPerm is the mode given to newly created output files.
const DefaultPerm os.FileMode = 0644

// WriteFile replaces path with data atomically: readers see either the old
// file or the complete new one, never a partial write. An existing file keeps
// its permissions.
func WriteFile(path string, data []byte) error {
	pendingFile, err := renameio.NewPendingFile(path,
		renameio.WithPermissions(DefaultPerm),
		renameio.WithExistingPermissions(),
	)
	if err != nil {
		return errors.NewOutputError(fmt.Sprintf("failed to create '%s'", path), err)
	}
	defer func() {
		if err := pendingFile.Cleanup(); err != nil {
			slog.Debug("Cleanup pending file", "path", path, "error", err)
		}
	}()

	if _, err := pendingFile.Write(data); err != nil {
		return errors.NewOutputError(fmt.Sprintf("failed to write '%s'", path), err)
	}

	if err := pendingFile.CloseAtomicallyReplace(); err != nil {
		return errors.NewOutputError(fmt.Sprintf("failed to replace '%s'", path), err)
	}

	slog.Debug("Wrote output", "path", path, "bytes", len(data))
	return nil
}

// Write copies data to w, wrapping failures as output errors.
func Write(w io.Writer, data []byte) error {
	if _, err := w.Write(data); err != nil {
		return errors.NewOutputError("failed to write to stdout", err)
	}
	return nil
}
