package db

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/j-veylop/macwrap/internal/logger"
)

// sidecarSuffixes are the SQLite companion files copied next to the main file
// so that committed WAL pages are visible in the snapshot.
var sidecarSuffixes = []string{"-wal", "-shm"}

// WithSnapshot copies the database at source into a private temporary
// directory, opens the copy and calls fn with it. The live store is never
// opened directly. The temporary directory is removed on every exit path,
// including when fn returns an error or panics.
func WithSnapshot(ctx context.Context, source string, fn func(*DB) error) error {
	if _, err := os.Stat(source); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrSourceNotFound, source)
		}
		return fmt.Errorf("failed to stat database: %w", err)
	}

	dir, err := os.MkdirTemp("", "macwrap-*")
	if err != nil {
		return fmt.Errorf("failed to create snapshot directory: %w", err)
	}
	defer func() {
		if err := os.RemoveAll(dir); err != nil {
			logger.Warn("Failed to remove snapshot directory", "dir", dir, "error", err)
		}
	}()

	target := filepath.Join(dir, filepath.Base(source))
	if err := copyFile(source, target); err != nil {
		return err
	}
	for _, suffix := range sidecarSuffixes {
		if err := copyFile(source+suffix, target+suffix); err != nil && !errors.Is(err, os.ErrNotExist) {
			logger.Debug("Skipping database sidecar", "file", source+suffix, "error", err)
		}
	}

	snapshot, err := Open(ctx, target)
	if err != nil {
		return err
	}
	defer func() { _ = snapshot.Close() }()

	return fn(snapshot)
}

// copyFile copies src to dst and preserves the modification time.
func copyFile(src, dst string) (err error) {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", src, err)
	}
	defer func() { _ = in.Close() }()

	info, err := in.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", src, err)
	}

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", dst, err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", dst, cerr)
		}
	}()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("failed to copy %s: %w", src, err)
	}

	if err := os.Chtimes(dst, info.ModTime(), info.ModTime()); err != nil {
		return fmt.Errorf("failed to preserve mtime on %s: %w", dst, err)
	}

	return nil
}
