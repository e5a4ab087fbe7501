package outcome

import "fmt"

// ---------------------------------------------------------------------------
// Result[T] — the closed tri-state outcome type
// ---------------------------------------------------------------------------

// Default messages carried by variants constructed without an explicit one.
const (
	// DefaultSuccessMessage is the message of a Success built via [Success].
	DefaultSuccessMessage = "Success"
	// DefaultNetworkErrorMessage is the message of a NetworkError built via
	// [NetworkError].
	DefaultNetworkErrorMessage = "No internet connection"
)

// kind tags the active variant. It is unexported so no fourth variant can be
// constructed outside this package.
type kind uint8

const (
	kindSuccess kind = iota
	kindFailure
	kindNetworkError
)

// Result is a closed sum over exactly three outcome variants: Success
// (message + payload), Failure (message), and NetworkError (message).
// Exactly one variant is active; a Result is immutable after construction.
//
// The zero value is a Success carrying the zero payload and an empty
// message; producers should always go through a constructor.
//
// Pattern: Tagged Union — dispatch happens in [Result.Match] driven by the
// unexported tag, so an unmatched variant is impossible rather than a
// silent no-op.
type Result[T any] struct {
	message string
	data    T
	k       kind
}

// Success returns a success Result carrying data and the default message.
func Success[T any](data T) Result[T] {
	return Result[T]{k: kindSuccess, message: DefaultSuccessMessage, data: data}
}

// SuccessMsg returns a success Result carrying data and an explicit message.
func SuccessMsg[T any](data T, message string) Result[T] {
	return Result[T]{k: kindSuccess, message: message, data: data}
}

// Failure returns a domain-failure Result with the given message.
func Failure[T any](message string) Result[T] {
	return Result[T]{k: kindFailure, message: message}
}

// NetworkError returns a network-failure Result with the default message.
func NetworkError[T any]() Result[T] {
	return Result[T]{k: kindNetworkError, message: DefaultNetworkErrorMessage}
}

// NetworkErrorMsg returns a network-failure Result with an explicit message.
func NetworkErrorMsg[T any](message string) Result[T] {
	return Result[T]{k: kindNetworkError, message: message}
}

// IsSuccess reports whether the Success variant is active.
func (r Result[T]) IsSuccess() bool { return r.k == kindSuccess }

// IsFailure reports whether the Failure variant is active.
func (r Result[T]) IsFailure() bool { return r.k == kindFailure }

// IsNetworkError reports whether the NetworkError variant is active.
func (r Result[T]) IsNetworkError() bool { return r.k == kindNetworkError }

// Message returns the message carried by the active variant.
func (r Result[T]) Message() string { return r.message }

// Value returns the payload and true when the Success variant is active,
// and the zero value and false otherwise.
func (r Result[T]) Value() (T, bool) {
	if r.k != kindSuccess {
		var zero T
		return zero, false
	}

	return r.data, true
}

// MustValue returns the payload of a Success and panics on any other
// variant. Intended for tests and examples where the variant is known.
func (r Result[T]) MustValue() T {
	if r.k != kindSuccess {
		panic("outcome: MustValue on " + r.kindString() + " result")
	}

	return r.data
}

// Match dispatches on the active variant, calling exactly one of the three
// callbacks. A nil callback skips that variant. All dispatch in this
// package funnels through Match, so adding a variant breaks exactly one
// place instead of silently falling through at every call site.
func (r Result[T]) Match(
	onSuccess func(data T, message string),
	onFailure func(message string),
	onNetworkError func(message string),
) {
	switch r.k {
	case kindSuccess:
		if onSuccess != nil {
			onSuccess(r.data, r.message)
		}
	case kindFailure:
		if onFailure != nil {
			onFailure(r.message)
		}
	case kindNetworkError:
		if onNetworkError != nil {
			onNetworkError(r.message)
		}
	default:
		panic(fmt.Sprintf("outcome: impossible result kind %d", r.k))
	}
}

// String returns a compact debug form such as `success("Loaded!")`.
func (r Result[T]) String() string {
	return fmt.Sprintf("%s(%q)", r.kindString(), r.message)
}

func (r Result[T]) kindString() string {
	switch r.k {
	case kindSuccess:
		return "success"
	case kindFailure:
		return "failure"
	case kindNetworkError:
		return "network_error"
	default:
		return "unknown"
	}
}
