package storage

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

type Store struct {
	dir string

	now func() time.Time
}

type Option func(*Store)

func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

func New(dir string, options ...Option) (*Store, error) {
	if dir == "" {
		return nil, errors.New("missing storage directory")
	}

	s := &Store{
		dir: dir,
		now: time.Now,
	}

	for _, option := range options {
		option(s)
	}

	return s, nil
}

func (s *Store) Dir() string {
	return s.dir
}

// Save writes data to tts-<unix millis>.<format> inside the store directory.
// An existing file with the same name is overwritten.
func (s *Store) Save(data []byte, format string) (string, error) {
	format = strings.TrimPrefix(format, ".")

	if format == "" {
		format = "mp3"
	}

	name := fmt.Sprintf("tts-%d.%s", s.now().UnixMilli(), format)
	path := filepath.Join(s.dir, name)

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", &WriteError{Path: path, Err: err}
	}

	slog.Info("audio file saved", "path", path, "bytes", len(data))

	return path, nil
}

type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return "failed to write audio file " + e.Path + ": " + e.Err.Error()
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
