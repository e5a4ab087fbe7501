package outcome

import "sync"

// Registry stores named [HandlerConfig] profiles, typically loaded from a
// config file via [LoadConfig], for later instantiation with [GetHandler].
//
// Pattern: Singleton — DefaultRegistry uses sync.OnceValue for safe lazy
// init; explicit registries can be created for testing or per-screen
// profile sets.
type Registry struct {
	configs map[string]HandlerConfig
	mu      sync.Mutex
}

//nolint:gochecknoglobals // singleton via sync.OnceValue
var defaultRegistry = sync.OnceValue(NewRegistry)

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{configs: make(map[string]HandlerConfig)}
}

// SetConfig stores (or replaces) the profile for name.
// It is safe for concurrent use but intended for initialization only.
func (r *Registry) SetConfig(name string, hc HandlerConfig) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.configs == nil {
		r.configs = make(map[string]HandlerConfig)
	}
	r.configs[name] = hc
}

// Config returns the stored profile for name and whether it exists.
func (r *Registry) Config(name string) (HandlerConfig, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	hc, ok := r.configs[name]

	return hc, ok
}

// Names returns the names of all stored profiles, in no particular order.
func (r *Registry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	names := make([]string, 0, len(r.configs))
	for name := range r.configs {
		names = append(names, name)
	}

	return names
}

// DefaultRegistry returns the package-level global registry, creating it
// on first call.
func DefaultRegistry() *Registry {
	return defaultRegistry()
}
