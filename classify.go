package outcome

import (
	"context"
	"errors"
	"net"
	"syscall"
)

// ---------------------------------------------------------------------------
// Error classification wrappers
// ---------------------------------------------------------------------------

type (
	// networkErr marks a wrapped error as a connectivity failure.
	networkErr struct {
		err error
	}

	// domainErr marks a wrapped error as a domain failure, overriding any
	// connectivity-shaped cause further down the chain.
	domainErr struct {
		err error
	}
)

func (e *networkErr) Error() string { return "network: " + e.err.Error() }
func (e *networkErr) Unwrap() error { return e.err }

func (e *domainErr) Error() string { return "domain: " + e.err.Error() }
func (e *domainErr) Unwrap() error { return e.err }

// Network wraps err to mark it as a connectivity failure, so that [From]
// maps it to the NetworkError variant. Returns nil if err is nil.
func Network(err error) error {
	if err == nil {
		return nil
	}

	return &networkErr{err: err}
}

// Domain wraps err to mark it as a domain failure, so that [From] maps it
// to the Failure variant even when the underlying cause looks like a
// connectivity problem. Returns nil if err is nil.
func Domain(err error) error {
	if err == nil {
		return nil
	}

	return &domainErr{err: err}
}

// IsNetwork reports whether err classifies as a connectivity failure:
// explicitly marked via [Network], a net.Error, a connection-level syscall
// error, or a deadline expiry. An explicit [Domain] mark wins over all of
// these. Returns false for nil.
func IsNetwork(err error) bool {
	if err == nil {
		return false
	}

	var de *domainErr
	if errors.As(err, &de) {
		return false
	}

	var ne *networkErr
	if errors.As(err, &ne) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	if errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.EPIPE) {
		return true
	}

	// Deadline expiry on an asynchronous operation almost always means the
	// far side never answered; cancellation means the caller gave up.
	return errors.Is(err, context.DeadlineExceeded)
}

// IsDomain reports whether err was explicitly marked via [Domain].
// Returns false for nil and for unmarked errors.
func IsDomain(err error) bool {
	if err == nil {
		return false
	}

	var de *domainErr

	return errors.As(err, &de)
}

// From converts a (value, error) pair into a Result. A nil error yields
// Success with the default message; a connectivity-shaped error (see
// [IsNetwork]) yields NetworkError carrying the error text; any other
// error yields Failure carrying the error text.
func From[T any](data T, err error) Result[T] {
	if err == nil {
		return Success(data)
	}

	if IsNetwork(err) {
		return NetworkErrorMsg[T](err.Error())
	}

	return Failure[T](err.Error())
}
