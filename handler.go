package outcome

// ---------------------------------------------------------------------------
// Handler[T] — centralized presentation dispatch
// ---------------------------------------------------------------------------

// Default presentation strings for the network-failure dialog.
const (
	// DefaultDialogTitle is the title of the blocking connection dialog.
	DefaultDialogTitle = "Connection Error"
	// DefaultRetryLabel is the label of the dialog's single retry choice.
	DefaultRetryLabel = "Retry"
)

// handlerConfig holds the configuration collected from options.
type handlerConfig struct {
	dialogTitle    string
	retryLabel     string
	hooks          Hooks
	decorators     []Decorator
	errorStyling   bool
	routeRawErrors bool
}

// Option configures a [Handler].
type Option func(*handlerConfig)

// WithDialogTitle overrides the title of the blocking connection dialog.
func WithDialogTitle(title string) Option {
	return func(cfg *handlerConfig) {
		cfg.dialogTitle = title
	}
}

// WithRetryLabel overrides the label of the dialog's retry choice.
func WithRetryLabel(label string) Option {
	return func(cfg *handlerConfig) {
		cfg.retryLabel = label
	}
}

// WithErrorStyling routes Failure results through the presenter's
// [ErrorStyler] capability when it has one. Without this option (or
// without the capability) Failure uses the same transient surface as
// Success, differing only in message.
func WithErrorStyling() Option {
	return func(cfg *handlerConfig) {
		cfg.errorStyling = true
	}
}

// WithRawErrorRouting makes the [Observe] and [Bind] adapters route the
// container's raw Error state through the Handler as a synthesized
// NetworkError instead of ignoring it.
func WithRawErrorRouting() Option {
	return func(cfg *handlerConfig) {
		cfg.routeRawErrors = true
	}
}

// WithHooks sets the lifecycle hooks for presentation events.
func WithHooks(h Hooks) Option {
	return func(cfg *handlerConfig) {
		cfg.hooks = h
	}
}

// WithDecorators wraps the presenter with the given decorators; the first
// decorator is outermost (see [Chain]).
func WithDecorators(decorators ...Decorator) Option {
	return func(cfg *handlerConfig) {
		cfg.decorators = append(cfg.decorators, decorators...)
	}
}

// Handler dispatches Result values to exactly one presentation side effect
// per call: a transient notice for Success and Failure, a blocking
// retry-gated dialog for NetworkError. It holds no per-call state and is
// safe for reuse across results.
type Handler[T any] struct {
	p   Presenter
	cfg handlerConfig
}

// NewHandler creates a Handler presenting through p, configured by opts.
func NewHandler[T any](p Presenter, opts ...Option) *Handler[T] {
	cfg := handlerConfig{
		dialogTitle: DefaultDialogTitle,
		retryLabel:  DefaultRetryLabel,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(cfg.decorators) > 0 {
		p = Chain(cfg.decorators...)(p)
	}

	return &Handler[T]{p: p, cfg: cfg}
}

// Handle inspects r and performs exactly one presentation side effect:
//
//   - Success: one transient notice with the result's message.
//   - Failure: the same transient surface (error-styled when configured,
//     see [WithErrorStyling]).
//   - NetworkError: one blocking dialog with a single retry choice;
//     picking it invokes onRetry exactly once.
//
// No state is returned or retained; calling Handle twice with the same
// result produces two independent effects. onRetry may be nil, and may
// itself produce a new Result that re-enters Handle.
func (h *Handler[T]) Handle(r Result[T], onRetry func()) {
	r.Match(
		func(_ T, message string) {
			h.notice(message)
		},
		func(message string) {
			if h.cfg.errorStyling {
				if es, ok := h.p.(ErrorStyler); ok {
					h.cfg.hooks.emitNotice(message)
					es.ShowTransientError(message)
					return
				}
			}
			h.notice(message)
		},
		func(message string) {
			h.dialog(message, onRetry)
		},
	)
}

func (h *Handler[T]) notice(message string) {
	h.cfg.hooks.emitNotice(message)
	h.p.ShowTransientMessage(message)
}

func (h *Handler[T]) dialog(body string, onRetry func()) {
	retried := false
	retry := Choice{
		Label: h.cfg.retryLabel,
		Run: func() {
			// Guards against presenters that run a picked choice twice.
			if retried {
				return
			}
			retried = true

			h.cfg.hooks.emitRetry()

			if onRetry != nil {
				onRetry()
			}
		},
	}

	h.cfg.hooks.emitDialog(h.cfg.dialogTitle, body)
	h.p.ShowBlockingChoice(h.cfg.dialogTitle, body, retry)
}

// Handle is a convenience function that dispatches a single Result through
// an anonymous [Handler] without constructing one.
func Handle[T any](p Presenter, r Result[T], onRetry func(), opts ...Option) {
	NewHandler[T](p, opts...).Handle(r, onRetry)
}
