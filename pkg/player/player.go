package player

import (
	"context"
	"errors"
	"os/exec"
	"strings"
)

type Player interface {
	Play(ctx context.Context, path string) error
}

var _ Player = (*Command)(nil)

// Command plays a file by running Name with Args followed by the file path.
type Command struct {
	Name string
	Args []string
}

func (c *Command) Play(ctx context.Context, path string) error {
	args := append(append([]string{}, c.Args...), path)

	cmd := exec.CommandContext(ctx, c.Name, args...)
	output, err := cmd.CombinedOutput()

	if err != nil {
		return &PlaybackError{
			Command: c.String(),
			Output:  strings.TrimSpace(string(output)),
			Err:     err,
		}
	}

	return nil
}

func (c *Command) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// New returns the playback command for the given GOOS.
func New(goos string) *Command {
	switch goos {
	case "windows":
		return &Command{Name: "cmd", Args: []string{"/C", "start", ""}}

	case "darwin":
		return &Command{Name: "afplay"}

	default:
		return &Command{Name: "aplay"}
	}
}

// Parse builds a Command from a command line such as "mpv --no-video".
func Parse(line string) (*Command, error) {
	fields := strings.Fields(line)

	if len(fields) == 0 {
		return nil, errors.New("empty player command")
	}

	return &Command{
		Name: fields[0],
		Args: fields[1:],
	}, nil
}

type PlaybackError struct {
	Command string
	Output  string

	Err error
}

func (e *PlaybackError) Error() string {
	msg := "playback failed: " + e.Command + ": " + e.Err.Error()

	if e.Output != "" {
		msg += ": " + e.Output
	}

	return msg
}

func (e *PlaybackError) Unwrap() error {
	return e.Err
}
