package outcome

import "sync"

// ---------------------------------------------------------------------------
// AsyncValue[T] — the reactive container
// ---------------------------------------------------------------------------

// State identifies which of the container's three states is active.
type State uint8

const (
	// StateLoading means the asynchronous operation has not settled yet.
	StateLoading State = iota
	// StateData means the operation settled to a [Result].
	StateData
	// StateError means the operation surfaced a raw, unmapped error.
	StateError
)

// String returns the state's name.
func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateData:
		return "data"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// AsyncValue wraps an asynchronous Result in one of three states: Loading,
// Data (holding a Result[T]), or Error (holding a raw error the producer
// did not map). Transitions notify subscribers, which is how the UI layer
// re-observes the container on each update.
//
// Safe for concurrent use: producers settle the value off the UI path
// while observers read it during UI updates.
type AsyncValue[T any] struct {
	res       Result[T]
	err       error
	listeners map[int]func()
	nextID    int
	state     State
	mu        sync.Mutex
}

// Loading returns a new container in the Loading state.
func Loading[T any]() *AsyncValue[T] {
	return &AsyncValue[T]{state: StateLoading}
}

// Data returns a new container already holding r.
func Data[T any](r Result[T]) *AsyncValue[T] {
	return &AsyncValue[T]{state: StateData, res: r}
}

// SetLoading transitions the container back to Loading, clearing any held
// Result or error.
func (v *AsyncValue[T]) SetLoading() {
	v.mu.Lock()
	v.state = StateLoading
	v.res = Result[T]{}
	v.err = nil
	v.mu.Unlock()

	v.notify()
}

// SetData transitions the container to Data holding r.
func (v *AsyncValue[T]) SetData(r Result[T]) {
	v.mu.Lock()
	v.state = StateData
	v.res = r
	v.err = nil
	v.mu.Unlock()

	v.notify()
}

// SetError transitions the container to the raw Error state.
func (v *AsyncValue[T]) SetError(err error) {
	v.mu.Lock()
	v.state = StateError
	v.res = Result[T]{}
	v.err = err
	v.mu.Unlock()

	v.notify()
}

// State returns the currently active state.
func (v *AsyncValue[T]) State() State {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.state
}

// Result returns the held Result and true when the container is in the
// Data state.
func (v *AsyncValue[T]) Result() (Result[T], bool) {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.res, v.state == StateData
}

// Err returns the raw error when the container is in the Error state, and
// nil otherwise.
func (v *AsyncValue[T]) Err() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.err
}

// When observes the container once, calling exactly one of the three
// callbacks for the currently active state. Nil callbacks skip their
// state.
func (v *AsyncValue[T]) When(
	onLoading func(),
	onData func(r Result[T]),
	onError func(err error),
) {
	v.mu.Lock()
	state, res, err := v.state, v.res, v.err
	v.mu.Unlock()

	switch state {
	case StateLoading:
		if onLoading != nil {
			onLoading()
		}
	case StateData:
		if onData != nil {
			onData(res)
		}
	case StateError:
		if onError != nil {
			onError(err)
		}
	}
}

// Subscribe registers fn to run after every state transition and returns a
// cancel function that removes the subscription. fn is called on the
// producer's goroutine; UI hosts are expected to marshal back onto their
// update loop.
func (v *AsyncValue[T]) Subscribe(fn func()) (cancel func()) {
	v.mu.Lock()
	if v.listeners == nil {
		v.listeners = make(map[int]func())
	}
	id := v.nextID
	v.nextID++
	v.listeners[id] = fn
	v.mu.Unlock()

	return func() {
		v.mu.Lock()
		delete(v.listeners, id)
		v.mu.Unlock()
	}
}

// notify snapshots the listener set under the lock and invokes listeners
// outside it, so a listener may re-enter the container.
func (v *AsyncValue[T]) notify() {
	v.mu.Lock()
	fns := make([]func(), 0, len(v.listeners))
	for _, fn := range v.listeners {
		fns = append(fns, fn)
	}
	v.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
