package fetchx

import (
	"context"
	"net/http"
	"strconv"

	json "github.com/goccy/go-json"

	"github.com/ferrogh/outcome"
)

// Class tells the adapter which outcome variant an HTTP status code maps
// to.
type Class int

const (
	// ClassSuccess means the request succeeded (e.g. 2xx).
	ClassSuccess Class = iota
	// ClassDomain means a domain failure (e.g. 400, 404).
	ClassDomain
	// ClassNetwork means a connectivity-shaped failure (e.g. 502, 503).
	ClassNetwork
)

// Classifier maps an HTTP status code to a Class.
//
// Pattern: Strategy — caller injects classification logic without
// modifying the adapter.
type Classifier func(statusCode int) Class

// DefaultClassifier treats 2xx as success; 408, 429 and the 502/503/504
// gateway family as network failures; everything else as domain failures.
func DefaultClassifier(statusCode int) Class {
	switch {
	case statusCode >= 200 && statusCode < 300:
		return ClassSuccess
	case statusCode == http.StatusRequestTimeout,
		statusCode == http.StatusTooManyRequests,
		statusCode == http.StatusBadGateway,
		statusCode == http.StatusServiceUnavailable,
		statusCode == http.StatusGatewayTimeout:
		return ClassNetwork
	default:
		return ClassDomain
	}
}

// StatusError carries a non-success HTTP status as the message of the
// resulting Failure or NetworkError variant.
type StatusError struct {
	StatusCode int
}

// Error returns a human-readable description of the status error.
func (e *StatusError) Error() string {
	return "http status " + strconv.Itoa(e.StatusCode)
}

// config holds the adapter's optional settings.
type config struct {
	classifier Classifier
	successMsg string
}

// Option configures Get and Do.
type Option func(*config)

// WithClassifier replaces [DefaultClassifier] for status code mapping.
func WithClassifier(cl Classifier) Option {
	return func(cfg *config) {
		cfg.classifier = cl
	}
}

// WithSuccessMessage sets the message carried by a successful result
// instead of the package default.
func WithSuccessMessage(msg string) Option {
	return func(cfg *config) {
		cfg.successMsg = msg
	}
}

// Get issues a GET request to url through hc and settles it into a
// Result. See [Do] for the mapping rules.
func Get[T any](ctx context.Context, hc *http.Client, url string, opts ...Option) outcome.Result[T] {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return outcome.Failure[T]("build request: " + err.Error())
	}

	return Do[T](hc, req, opts...)
}

// Do executes req through hc and settles the response into a Result:
//
//   - transport errors (connection refused, DNS, timeouts) become
//     NetworkError carrying the error text;
//   - non-success status codes become Failure or NetworkError per the
//     classifier, carrying the [StatusError] text;
//   - success status codes decode the JSON body into T and become
//     Success.
func Do[T any](hc *http.Client, req *http.Request, opts ...Option) outcome.Result[T] {
	cfg := config{
		classifier: DefaultClassifier,
		successMsg: outcome.DefaultSuccessMessage,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if hc == nil {
		hc = http.DefaultClient
	}

	resp, err := hc.Do(req)
	if err != nil {
		return outcome.NetworkErrorMsg[T](err.Error())
	}
	defer resp.Body.Close()

	statusErr := &StatusError{StatusCode: resp.StatusCode}

	switch cfg.classifier(resp.StatusCode) {
	case ClassNetwork:
		return outcome.NetworkErrorMsg[T](statusErr.Error())
	case ClassDomain:
		return outcome.Failure[T](statusErr.Error())
	case ClassSuccess:
	}

	var data T
	if err = json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return outcome.Failure[T]("decode response: " + err.Error())
	}

	return outcome.SuccessMsg(data, cfg.successMsg)
}
