package outcome

// ---------------------------------------------------------------------------
// Reactive adapter — AsyncValue → Handler bridge
// ---------------------------------------------------------------------------

// Observe performs a single conditional dispatch: if and only if v
// currently holds Data, the held Result and onRetry are forwarded to h.
// Loading produces no effect. The raw Error state also produces no effect
// unless the Handler was built with [WithRawErrorRouting], in which case
// it is synthesized into a NetworkError carrying the error text and routed
// through h. Skipped states fire the OnSkipped hook.
func Observe[T any](v *AsyncValue[T], h *Handler[T], onRetry func()) {
	v.When(
		func() {
			h.cfg.hooks.emitSkipped(StateLoading)
		},
		func(r Result[T]) {
			h.Handle(r, onRetry)
		},
		func(err error) {
			if !h.cfg.routeRawErrors {
				h.cfg.hooks.emitSkipped(StateError)
				return
			}

			body := DefaultNetworkErrorMessage
			if err != nil {
				body = err.Error()
			}
			h.Handle(NetworkErrorMsg[T](body), onRetry)
		},
	)
}

// Bind subscribes the adapter to v so that every subsequent state
// transition is observed through [Observe], and returns a cancel function
// that detaches it. The current state is not observed at bind time; call
// [Observe] first if the container may already hold Data.
func Bind[T any](v *AsyncValue[T], h *Handler[T], onRetry func()) (cancel func()) {
	return v.Subscribe(func() {
		Observe(v, h, onRetry)
	})
}
