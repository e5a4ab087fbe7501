package outcome

import (
	"context"
	"errors"
	"testing"
	"time"
)

// fakeScreen models the host UI: it re-reads the container on every
// update and renders the payload as body text.
type fakeScreen struct {
	body string
}

func (s *fakeScreen) render(v *AsyncValue[string]) {
	v.When(
		func() { s.body = "loading..." },
		func(r Result[string]) {
			if data, ok := r.Value(); ok {
				s.body = data
			}
		},
		func(error) { s.body = "" },
	)
}

// ---------------------------------------------------------------------------
// End to end: delayed resolve → Loading → Data → one notice
// ---------------------------------------------------------------------------

func TestEndToEndDelayedSuccess(t *testing.T) {
	t.Parallel()

	runner := NewRunner(func(context.Context) (Result[string], error) {
		time.Sleep(10 * time.Millisecond)
		return SuccessMsg("Hello World", "Loaded!"), nil
	})

	v := runner.Value()
	screen := &fakeScreen{}
	p := &fakePresenter{}
	h := NewHandler[string](p)

	// The host re-renders and the adapter re-observes on every update.
	settled := make(chan struct{})
	cancel := v.Subscribe(func() {
		screen.render(v)
		Observe(v, h, nil)

		if v.State() == StateData {
			close(settled)
		}
	})
	defer cancel()

	runner.Load(context.Background())

	if got := v.State(); got == StateError {
		t.Fatalf("State() = %v right after Load", got)
	}

	select {
	case <-settled:
	case <-time.After(5 * time.Second):
		t.Fatal("operation never settled")
	}

	if len(p.notices) != 1 || p.notices[0] != "Loaded!" {
		t.Fatalf("notices = %v, want exactly [Loaded!]", p.notices)
	}
	if len(p.dialogs) != 0 {
		t.Fatalf("dialogs = %d, want 0", len(p.dialogs))
	}
	if screen.body != "Hello World" {
		t.Fatalf("body = %q, want Hello World", screen.body)
	}
}

// ---------------------------------------------------------------------------
// End to end: network failure, user retries, second run succeeds
// ---------------------------------------------------------------------------

func TestEndToEndRetryRecovers(t *testing.T) {
	t.Parallel()

	attempts := 0
	runner := NewRunner(func(context.Context) (Result[string], error) {
		attempts++
		if attempts == 1 {
			return Result[string]{}, errors.New("connection refused")
		}
		return SuccessMsg("Hello World", "Loaded!"), nil
	})

	v := runner.Value()
	p := &fakePresenter{}
	h := NewHandler[string](p)

	ctx := context.Background()
	updates := make(chan State, 16)
	cancel := v.Subscribe(func() {
		Observe(v, h, func() { runner.Load(ctx) })
		updates <- v.State()
	})
	defer cancel()

	runner.Load(ctx)

	waitFor := func(want State) {
		t.Helper()
		deadline := time.After(5 * time.Second)
		for {
			select {
			case s := <-updates:
				if s == want {
					return
				}
			case <-deadline:
				t.Fatalf("never observed state %v", want)
			}
		}
	}

	// First run fails with a connectivity error: one dialog, no notices.
	waitFor(StateData)
	if len(p.dialogs) != 1 || len(p.notices) != 0 {
		t.Fatalf("after failure: %d dialogs, %d notices", len(p.dialogs), len(p.notices))
	}

	// The user picks Retry; the second run succeeds.
	p.dialogs[0].pick(t, "Retry")
	waitFor(StateData)

	if len(p.notices) != 1 || p.notices[0] != "Loaded!" {
		t.Fatalf("after retry: notices = %v, want [Loaded!]", p.notices)
	}
	if attempts != 2 {
		t.Fatalf("attempts = %d, want 2", attempts)
	}
}
