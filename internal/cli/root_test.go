package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/five82/redditmodqueue/internal/app"
)

func execute(t *testing.T, run runFunc, args ...string) error {
	t.Helper()
	cmd := newRootCmd(run)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	return cmd.ExecuteContext(context.Background())
}

func TestQueueCmd_PassesOptions(t *testing.T) {
	var got app.Options
	var calls int
	run := func(ctx context.Context, opts app.Options) error {
		calls++
		got = opts
		return nil
	}

	err := execute(t, run, "queue", "--subreddit", "r/golang")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if calls != 1 {
		t.Fatalf("run called %d times, want 1", calls)
	}
	want := app.Options{Subreddit: "r/golang"}
	if got.Subreddit != want.Subreddit || got.EnvFile != "" || got.PrefsPath != "" || got.ClientOptions != nil {
		t.Fatalf("options = %+v, want %+v", got, want)
	}
}

func TestQueueCmd_RejectsUnknownFlags(t *testing.T) {
	run := func(context.Context, app.Options) error { return nil }

	for _, flag := range []string{"--env-file", "--prefs"} {
		if err := execute(t, run, flag, "x", "queue", "--subreddit", "golang"); err == nil {
			t.Fatalf("expected %s to be rejected", flag)
		}
	}
}

func TestQueueCmd_RequiresSubreddit(t *testing.T) {
	run := func(context.Context, app.Options) error {
		t.Fatalf("run should not be called without --subreddit")
		return nil
	}

	err := execute(t, run, "queue")
	if err == nil || !strings.Contains(err.Error(), "subreddit") {
		t.Fatalf("error = %v, want missing subreddit flag", err)
	}
}

func TestQueueCmd_ReturnsRunError(t *testing.T) {
	boom := errors.New("fetch mod queue: boom")
	run := func(context.Context, app.Options) error { return boom }

	if err := execute(t, run, "queue", "--subreddit", "golang"); !errors.Is(err, boom) {
		t.Fatalf("error = %v, want %v", err, boom)
	}
}

func TestQueueCmd_RejectsPositionalArgs(t *testing.T) {
	run := func(context.Context, app.Options) error { return nil }

	if err := execute(t, run, "queue", "--subreddit", "golang", "extra"); err == nil {
		t.Fatalf("expected error for positional args")
	}
}
