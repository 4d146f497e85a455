package player

import (
	"context"
	"log/slog"
)

type Status string

const (
	StatusPlayed  Status = "played"
	StatusFailed  Status = "failed"
	StatusSkipped Status = "skipped"
)

// Result is the outcome of a playback attempt. A failed playback carries its
// error for reporting only.
type Result struct {
	Status Status
	Err    error
}

type Task struct {
	done   chan struct{}
	result Result
}

// Start plays path in the background. Cancelling ctx does not stop a started
// playback. A nil player yields a skipped result.
func Start(ctx context.Context, p Player, path string) *Task {
	t := &Task{
		done: make(chan struct{}),
	}

	if p == nil {
		t.result = Result{Status: StatusSkipped}
		close(t.done)

		return t
	}

	ctx = context.WithoutCancel(ctx)

	go func() {
		defer close(t.done)

		if err := p.Play(ctx, path); err != nil {
			slog.Error("failed to play audio", "path", path, "error", err)

			t.result = Result{Status: StatusFailed, Err: err}
			return
		}

		t.result = Result{Status: StatusPlayed}
	}()

	return t
}

func (t *Task) Done() <-chan struct{} {
	return t.done
}

func (t *Task) Wait() Result {
	<-t.done
	return t.result
}
