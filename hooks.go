package outcome

// Hooks holds optional callback functions for presentation lifecycle
// events. All fields are nil by default; callers set only the hooks they
// care about. Once constructed, a Hooks value must not be mutated — emit
// methods read the function fields without synchronisation, which is safe
// as long as the struct is read-only after initialisation.
//
// Pattern: Observer — decouples presentation event emission from consumers
// (logging, metrics, tests) without the Handler knowing about observers.
type Hooks struct {
	// OnNotice fires when a transient notice is shown, with its text.
	OnNotice func(text string)
	// OnDialog fires when a blocking dialog is presented, before the
	// presenter blocks on the user's choice.
	OnDialog func(title, body string)
	// OnRetry fires when the dialog's retry choice is picked, before the
	// caller-supplied retry action runs.
	OnRetry func()
	// OnSkipped fires when an adapter observes a container state that
	// produces no presentation effect (Loading, or a raw Error that is not
	// routed).
	OnSkipped func(state State)
}

func (h *Hooks) emitNotice(text string) {
	if h.OnNotice != nil {
		h.OnNotice(text)
	}
}

func (h *Hooks) emitDialog(title, body string) {
	if h.OnDialog != nil {
		h.OnDialog(title, body)
	}
}

func (h *Hooks) emitRetry() {
	if h.OnRetry != nil {
		h.OnRetry()
	}
}

func (h *Hooks) emitSkipped(state State) {
	if h.OnSkipped != nil {
		h.OnSkipped(state)
	}
}
