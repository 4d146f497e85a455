package storage

import (
	"errors"
	"log/slog"
	"os"
)

// ResolveDir returns a directory ready to receive audio files. An empty dir
// selects the temp directory. If dir cannot be created, the temp directory is
// used instead. An error is returned only when no usable directory remains.
func ResolveDir(dir string) (string, error) {
	if dir != "" {
		err := ensureDir(dir)

		if err == nil {
			return dir, nil
		}

		slog.Warn("failed to create audio directory, falling back to temp directory", "dir", dir, "error", err)
	}

	temp := os.TempDir()

	if err := ensureDir(temp); err != nil {
		return "", err
	}

	return temp, nil
}

func ensureDir(dir string) error {
	info, err := os.Stat(dir)

	if err == nil {
		if !info.IsDir() {
			return errors.New(dir + " is not a directory")
		}

		return nil
	}

	if !os.IsNotExist(err) {
		return err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	slog.Info("created audio directory", "dir", dir)

	return nil
}
