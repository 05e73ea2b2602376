package tool

import (
	"context"
	"sort"

	"voice-tool-backend/internal/locale"
)

// Language identifies the locale stamped onto every result.
type Language struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Result is the JSON-serializable mapping returned to the session for
// every invocation, success or failure alike.
type Result map[string]any

// Handler executes one registered tool. The resolved locale profile is
// injected by the router and serves as the request default (timezone,
// weather language).
type Handler interface {
	// Name returns the tool name the handler is registered under.
	Name() string

	// Execute runs the tool with the given arguments.
	Execute(ctx context.Context, profile locale.Profile, args map[string]any) (any, error)
}

// Registry maps tool names to handlers. Dispatch is a single keyed
// lookup, so new tools extend the registry without touching routing
// logic.
type Registry struct {
	handlers map[string]Handler
}

// NewRegistry creates an empty tool registry.
func NewRegistry() *Registry {
	return &Registry{
		handlers: make(map[string]Handler),
	}
}

// Register adds a handler under its own name.
func (r *Registry) Register(h Handler) {
	r.handlers[h.Name()] = h
}

// Get retrieves a handler by tool name.
func (r *Registry) Get(name string) (Handler, bool) {
	h, ok := r.handlers[name]
	return h, ok
}

// Names returns every registered tool name, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
