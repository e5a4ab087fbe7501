// Package termui provides a terminal Presenter for the outcome library.
//
// Transient notices are rendered as tint-colored slog lines; the blocking
// choice dialog is a numbered stdin prompt. With a dismiss duration set,
// a notice erases itself after the duration elapses, provided nothing
// else was printed in between.
package termui

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/lmittmann/tint"

	"github.com/ferrogh/outcome"
)

// eraseLastLine moves the cursor up one row and clears it.
const eraseLastLine = "\033[1A\033[2K"

// config holds the presenter's optional settings.
type config struct {
	out          io.Writer
	in           io.Reader
	clock        outcome.Clock
	level        slog.Level
	dismissAfter time.Duration
}

// Option configures a [Presenter].
type Option func(*config)

// WithWriter sets the output writer. Default os.Stderr.
func WithWriter(w io.Writer) Option {
	return func(cfg *config) {
		cfg.out = w
	}
}

// WithReader sets the input source for dialog prompts. Default os.Stdin.
func WithReader(r io.Reader) Option {
	return func(cfg *config) {
		cfg.in = r
	}
}

// WithClock sets the clock used for notice dismissal timers. Default
// [outcome.RealClock].
func WithClock(c outcome.Clock) Option {
	return func(cfg *config) {
		cfg.clock = c
	}
}

// WithDismissAfter makes transient notices erase themselves after d when
// they are still the last line printed. Zero (the default) leaves them to
// scroll away.
func WithDismissAfter(d time.Duration) Option {
	return func(cfg *config) {
		cfg.dismissAfter = d
	}
}

// WithLevel sets the minimum slog level of the notice logger. Default
// [slog.LevelInfo].
func WithLevel(level slog.Level) Option {
	return func(cfg *config) {
		cfg.level = level
	}
}

// Presenter implements [outcome.Presenter] and [outcome.ErrorStyler] on a
// terminal. All writes are serialized through an internal mutex so
// concurrent producers cannot interleave dialog prompts with notices.
type Presenter struct {
	logger *slog.Logger
	out    io.Writer
	in     *bufio.Scanner
	clock  outcome.Clock

	mu      sync.Mutex
	writes  int
	dismiss time.Duration
}

// New creates a terminal presenter. The notice logger writes through a
// tint handler on the configured writer.
func New(opts ...Option) *Presenter {
	cfg := config{
		out:   os.Stderr,
		in:    os.Stdin,
		clock: outcome.RealClock{},
		level: slog.LevelInfo,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	p := &Presenter{
		out:     cfg.out,
		in:      bufio.NewScanner(cfg.in),
		clock:   cfg.clock,
		dismiss: cfg.dismissAfter,
	}

	p.logger = slog.New(tint.NewHandler(&lockedWriter{p: p}, &tint.Options{
		Level:      cfg.level,
		TimeFormat: time.Kitchen,
	}))

	return p
}

// ShowTransientMessage renders text as an info-level log line and, when a
// dismiss duration is configured, schedules the line's erasure.
func (p *Presenter) ShowTransientMessage(text string) {
	p.logger.Info(text)
	p.scheduleDismiss()
}

// ShowTransientError renders text as an error-level log line, giving
// domain failures error styling when the handler asks for it.
func (p *Presenter) ShowTransientError(text string) {
	p.logger.Error(text)
	p.scheduleDismiss()
}

// ShowBlockingChoice prints the dialog and loops on input until one of
// the choices is picked, then runs it. Input may be the choice number or
// its label, case-insensitively. EOF on the input picks the first choice
// so a closed stdin cannot wedge the caller.
func (p *Presenter) ShowBlockingChoice(title, body string, choices ...outcome.Choice) {
	if len(choices) == 0 {
		return
	}

	p.mu.Lock()
	p.writes++
	fmt.Fprintf(p.out, "\n%s\n%s\n", title, body)
	for i, c := range choices {
		fmt.Fprintf(p.out, "  [%d] %s\n", i+1, c.Label)
	}
	p.mu.Unlock()

	picked := p.prompt(choices)
	if picked.Run != nil {
		picked.Run()
	}
}

func (p *Presenter) prompt(choices []outcome.Choice) outcome.Choice {
	for {
		p.mu.Lock()
		fmt.Fprint(p.out, "> ")
		p.mu.Unlock()

		if !p.in.Scan() {
			return choices[0]
		}

		line := strings.TrimSpace(p.in.Text())

		if n, err := strconv.Atoi(line); err == nil && n >= 1 && n <= len(choices) {
			return choices[n-1]
		}

		for _, c := range choices {
			if strings.EqualFold(line, c.Label) {
				return c
			}
		}
	}
}

// scheduleDismiss erases the last written line after the dismiss duration,
// unless something else was printed in the meantime.
func (p *Presenter) scheduleDismiss() {
	if p.dismiss <= 0 {
		return
	}

	p.mu.Lock()
	seq := p.writes
	p.mu.Unlock()

	timer := p.clock.NewTimer(p.dismiss)

	go func() {
		<-timer.C()

		p.mu.Lock()
		defer p.mu.Unlock()

		if p.writes == seq {
			fmt.Fprint(p.out, eraseLastLine)
		}
	}()
}

// lockedWriter counts and serializes the tint handler's writes through
// the presenter's mutex.
type lockedWriter struct {
	p *Presenter
}

func (w *lockedWriter) Write(b []byte) (int, error) {
	w.p.mu.Lock()
	defer w.p.mu.Unlock()

	w.p.writes++

	return w.p.out.Write(b)
}
