package outcome

// ---------------------------------------------------------------------------
// Presenter — the capability boundary to the host UI
// ---------------------------------------------------------------------------

// Choice is a single action offered by a blocking dialog. Picking a choice
// dismisses the dialog and runs its callback exactly once.
type Choice struct {
	// Run is invoked when the choice is picked. May be nil.
	Run func()
	// Label is the user-visible text of the action.
	Label string
}

// Presenter abstracts the two presentation surfaces the [Handler] needs
// from the host UI. Implementations own all rendering and dismissal
// mechanics; the Handler only decides which surface to use and with what
// text.
//
// Pattern: Capability Interface — the Handler stays testable without a
// live UI tree by injecting a fake Presenter.
type Presenter interface {
	// ShowTransientMessage displays an auto-dismissing, non-blocking
	// notice. Fire and forget.
	ShowTransientMessage(text string)

	// ShowBlockingChoice displays a modal surface that halts interaction
	// until one of the choices is picked.
	ShowBlockingChoice(title, body string, choices ...Choice)
}

// ErrorStyler is an optional Presenter capability for surfacing domain
// failures with error styling. When a Handler is configured with
// [WithErrorStyling] and its Presenter implements ErrorStyler, Failure
// results route through ShowTransientError instead of
// ShowTransientMessage.
type ErrorStyler interface {
	// ShowTransientError displays an auto-dismissing notice styled as an
	// error.
	ShowTransientError(text string)
}
