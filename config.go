package outcome

import (
	"fmt"
	"os"

	json "github.com/goccy/go-json"
)

type (
	// configFile is the top-level JSON structure.
	configFile struct {
		Handlers map[string]HandlerConfig `json:"handlers"`
	}

	// HandlerConfig holds the decoded configuration for a single named
	// handler profile. Export it to embed in your own app config structs
	// for JSON or YAML unmarshaling, then call [BuildOptions] to obtain
	// functional options for [NewHandler].
	HandlerConfig struct {
		// DialogTitle overrides the blocking dialog title.
		// Optional. Example: "Offline".
		DialogTitle *string `json:"dialog_title,omitempty" yaml:"dialog_title,omitempty"`
		// RetryLabel overrides the dialog's retry choice label.
		// Optional. Example: "Try again".
		RetryLabel *string `json:"retry_label,omitempty" yaml:"retry_label,omitempty"`
		// ErrorStyling routes Failure results through the presenter's
		// error-styled surface when it has one.
		// Optional. Default false.
		ErrorStyling *bool `json:"error_styling,omitempty" yaml:"error_styling,omitempty"`
		// RouteRawErrors routes the container's raw Error state through
		// the handler as a synthesized network failure.
		// Optional. Default false.
		RouteRawErrors *bool `json:"route_raw_errors,omitempty" yaml:"route_raw_errors,omitempty"`
	}
)

// LoadConfig reads a JSON file of named handler profiles and returns a
// [Registry] holding them. Actual [Handler] instances are not created
// until [GetHandler] is called, allowing the caller to provide the type
// parameter, the presenter, and additional code-level options.
func LoadConfig(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("outcome: read config: %w", err)
	}

	var cfg configFile
	if err = json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("outcome: parse config: %w", err)
	}

	reg := NewRegistry()
	reg.mu.Lock()
	reg.configs = cfg.Handlers
	reg.mu.Unlock()

	return reg, nil
}

// BuildOptions converts a [HandlerConfig] into functional options for
// [NewHandler]. Use this when you embed [HandlerConfig] in your own
// config struct and want to build a handler without going through
// [LoadConfig].
func BuildOptions(hc *HandlerConfig) []Option {
	var opts []Option

	if hc.DialogTitle != nil {
		opts = append(opts, WithDialogTitle(*hc.DialogTitle))
	}

	if hc.RetryLabel != nil {
		opts = append(opts, WithRetryLabel(*hc.RetryLabel))
	}

	if hc.ErrorStyling != nil && *hc.ErrorStyling {
		opts = append(opts, WithErrorStyling())
	}

	if hc.RouteRawErrors != nil && *hc.RouteRawErrors {
		opts = append(opts, WithRawErrorRouting())
	}

	return opts
}

// GetHandler retrieves a named handler profile from a config-loaded
// [Registry] and returns a typed [Handler] presenting through p. If the
// name is not found, a handler with package defaults is created.
//
// Additional options can be provided to augment or override the stored
// profile (e.g., adding hooks or decorators). User-provided options are
// applied after config options, so they take precedence.
func GetHandler[T any](reg *Registry, name string, p Presenter, opts ...Option) *Handler[T] {
	reg.mu.Lock()
	hc, ok := reg.configs[name]
	reg.mu.Unlock()

	var allOpts []Option

	if ok {
		allOpts = append(allOpts, BuildOptions(&hc)...)
	}

	// User opts come last so they can override config values.
	allOpts = append(allOpts, opts...)

	return NewHandler[T](p, allOpts...)
}
