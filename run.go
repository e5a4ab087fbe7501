package outcome

import "context"

// ---------------------------------------------------------------------------
// Producers — turning asynchronous operations into AsyncValues
// ---------------------------------------------------------------------------

// Run starts fn on its own goroutine and returns a container that begins
// Loading and settles to Data when fn returns. An error return from fn is
// mapped by the producer to a NetworkError carrying the error text, so the
// raw Error state is never entered on this path. The operation is not
// cancelled or timed out by this package; fn observes ctx itself.
func Run[T any](ctx context.Context, fn func(context.Context) (Result[T], error)) *AsyncValue[T] {
	v := Loading[T]()

	go settle(ctx, v, fn)

	return v
}

// RunValue is like [Run] for plain (value, error) operations; the pair is
// classified via [From].
func RunValue[T any](ctx context.Context, fn func(context.Context) (T, error)) *AsyncValue[T] {
	return Run(ctx, func(ctx context.Context) (Result[T], error) {
		return From(fn(ctx)), nil
	})
}

func settle[T any](ctx context.Context, v *AsyncValue[T], fn func(context.Context) (Result[T], error)) {
	r, err := fn(ctx)
	if err != nil {
		msg := DefaultNetworkErrorMessage
		if err.Error() != "" {
			msg = err.Error()
		}
		v.SetData(NetworkErrorMsg[T](msg))
		return
	}

	v.SetData(r)
}

// Runner binds an asynchronous operation to a single container so the
// operation can be re-run in place: each Load resets the container to
// Loading and starts a fresh, unrelated run. Its Load method is the
// natural retry action for a Handler.
type Runner[T any] struct {
	fn  func(context.Context) (Result[T], error)
	val *AsyncValue[T]
}

// NewRunner creates a Runner for fn. The container starts Loading and
// stays there until the first Load.
func NewRunner[T any](fn func(context.Context) (Result[T], error)) *Runner[T] {
	return &Runner[T]{fn: fn, val: Loading[T]()}
}

// Value returns the container the Runner settles into.
func (r *Runner[T]) Value() *AsyncValue[T] { return r.val }

// Load resets the container to Loading and starts a new run of the bound
// operation. Each call is an independent operation; an earlier in-flight
// run is not cancelled, and whichever run settles later wins.
func (r *Runner[T]) Load(ctx context.Context) {
	r.val.SetLoading()

	go settle(ctx, r.val, r.fn)
}
