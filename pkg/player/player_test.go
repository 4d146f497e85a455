package player_test

import (
	"context"
	"errors"
	"os/exec"
	"runtime"
	"testing"

	"github.com/adrianliechti/wingman-speak/pkg/player"

	"github.com/stretchr/testify/require"
)

type playerFunc func(ctx context.Context, path string) error

func (f playerFunc) Play(ctx context.Context, path string) error {
	return f(ctx, path)
}

func TestNew(t *testing.T) {
	require.Equal(t, &player.Command{Name: "cmd", Args: []string{"/C", "start", ""}}, player.New("windows"))
	require.Equal(t, &player.Command{Name: "afplay"}, player.New("darwin"))
	require.Equal(t, &player.Command{Name: "aplay"}, player.New("linux"))
	require.Equal(t, &player.Command{Name: "aplay"}, player.New("freebsd"))
}

func TestParse(t *testing.T) {
	c, err := player.Parse("  mpv --no-video   --really-quiet ")
	require.NoError(t, err)

	require.Equal(t, "mpv", c.Name)
	require.Equal(t, []string{"--no-video", "--really-quiet"}, c.Args)
	require.Equal(t, "mpv --no-video --really-quiet", c.String())

	_, err = player.Parse("   ")
	require.Error(t, err)
}

func TestCommandPlay(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires true and false binaries")
	}

	if _, err := exec.LookPath("true"); err != nil {
		t.Skip("true not available")
	}

	ok := &player.Command{Name: "true"}
	require.NoError(t, ok.Play(context.Background(), "/tmp/audio.mp3"))

	fail := &player.Command{Name: "false"}
	err := fail.Play(context.Background(), "/tmp/audio.mp3")

	var playErr *player.PlaybackError
	require.ErrorAs(t, err, &playErr)
	require.Equal(t, "false", playErr.Command)
}

func TestCommandPlayMissingBinary(t *testing.T) {
	c := &player.Command{Name: "wingman-speak-no-such-player"}

	err := c.Play(context.Background(), "audio.mp3")

	var playErr *player.PlaybackError
	require.ErrorAs(t, err, &playErr)
}

func TestStartPlayed(t *testing.T) {
	var played string

	p := playerFunc(func(ctx context.Context, path string) error {
		played = path
		return nil
	})

	result := player.Start(context.Background(), p, "audio.mp3").Wait()

	require.Equal(t, player.StatusPlayed, result.Status)
	require.NoError(t, result.Err)
	require.Equal(t, "audio.mp3", played)
}

func TestStartFailed(t *testing.T) {
	p := playerFunc(func(ctx context.Context, path string) error {
		return errors.New("no audio device")
	})

	result := player.Start(context.Background(), p, "audio.mp3").Wait()

	require.Equal(t, player.StatusFailed, result.Status)
	require.EqualError(t, result.Err, "no audio device")
}

func TestStartSkipped(t *testing.T) {
	task := player.Start(context.Background(), nil, "audio.mp3")

	<-task.Done()

	require.Equal(t, player.StatusSkipped, task.Wait().Status)
}

func TestStartIgnoresCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := playerFunc(func(ctx context.Context, path string) error {
		return ctx.Err()
	})

	result := player.Start(ctx, p, "audio.mp3").Wait()

	require.Equal(t, player.StatusPlayed, result.Status)
}
