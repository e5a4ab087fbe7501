package outcome

import "log/slog"

// Pattern: Decorator — presenter decorators wrap the capability interface,
// adding cross-cutting behavior (logging, recording, filtering) without the
// Handler or the concrete Presenter knowing about each other.

// Decorator wraps a Presenter with additional behavior.
type Decorator func(next Presenter) Presenter

// Chain composes multiple decorators into one. Decorators are applied in
// order: the first decorator is the outermost wrapper, so
// Chain(a, b, c)(p) produces a(b(c(p))). Chain() with zero decorators
// returns an identity decorator.
func Chain(decorators ...Decorator) Decorator {
	return func(next Presenter) Presenter {
		for i := len(decorators) - 1; i >= 0; i-- {
			next = decorators[i](next)
		}

		return next
	}
}

// LogDecorator returns a decorator that logs every surface call through
// logger before forwarding it. A nil logger uses [slog.Default]. The
// decorated presenter preserves the [ErrorStyler] capability of the
// wrapped one.
func LogDecorator(logger *slog.Logger) Decorator {
	return func(next Presenter) Presenter {
		if logger == nil {
			logger = slog.Default()
		}

		lp := &loggingPresenter{next: next, logger: logger}
		if es, ok := next.(ErrorStyler); ok {
			return &loggingErrorStyler{loggingPresenter: lp, styler: es}
		}

		return lp
	}
}

type loggingPresenter struct {
	next   Presenter
	logger *slog.Logger
}

func (p *loggingPresenter) ShowTransientMessage(text string) {
	p.logger.Info("transient notice", "text", text)
	p.next.ShowTransientMessage(text)
}

func (p *loggingPresenter) ShowBlockingChoice(title, body string, choices ...Choice) {
	labels := make([]string, 0, len(choices))
	for _, c := range choices {
		labels = append(labels, c.Label)
	}

	p.logger.Warn("blocking dialog", "title", title, "body", body, "choices", labels)
	p.next.ShowBlockingChoice(title, body, choices...)
}

// loggingErrorStyler adds the ErrorStyler capability when the wrapped
// presenter has it, so decoration does not erase styling support.
type loggingErrorStyler struct {
	*loggingPresenter
	styler ErrorStyler
}

func (p *loggingErrorStyler) ShowTransientError(text string) {
	p.logger.Error("transient error notice", "text", text)
	p.styler.ShowTransientError(text)
}
