package bindery

import "reflect"

// BindingRegistry is the metadata store the annotators write into and
// the consuming router reads from. Bindings are keyed by controller
// name and created lazily on first access.
type BindingRegistry interface {
	// Binding fetches or creates the binding for a controller name
	Binding(name string) *Binding

	// Lookup returns the binding for a controller name, if any
	Lookup(name string) (*Binding, bool)

	// Bindings returns all bindings in registration order
	Bindings() []*Binding

	// Table builds a finalized snapshot for the consuming router
	Table() *Table
}

// inMemoryBindingRegistry implements BindingRegistry
type inMemoryBindingRegistry struct {
	bindings map[string]*Binding
	order    []string
}

// NewBindingRegistry creates a new in-memory binding registry
func NewBindingRegistry() BindingRegistry {
	return &inMemoryBindingRegistry{
		bindings: make(map[string]*Binding),
	}
}

func (r *inMemoryBindingRegistry) Binding(name string) *Binding {
	if b, ok := r.bindings[name]; ok {
		return b
	}
	b := newBinding(name)
	r.bindings[name] = b
	r.order = append(r.order, name)
	return b
}

func (r *inMemoryBindingRegistry) Lookup(name string) (*Binding, bool) {
	b, ok := r.bindings[name]
	return b, ok
}

func (r *inMemoryBindingRegistry) Bindings() []*Binding {
	out := make([]*Binding, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.bindings[name])
	}
	return out
}

func (r *inMemoryBindingRegistry) Table() *Table {
	return buildTable(r.Bindings())
}

// DefaultBindingRegistry is the global binding registry
var DefaultBindingRegistry = NewBindingRegistry()

// NamedMiddleware is a middleware registered under a well-known name,
// resolved by consumers when a binding references it via Named.
type NamedMiddleware struct {
	// Name is the registration key referenced by Named middleware
	Name string

	// Handler is the middleware value in the consuming framework's
	// native shape. Opaque until an adapter applies it.
	Handler any
}

// MiddlewareRegistry provides access to all registered named middlewares
type MiddlewareRegistry interface {
	// Register adds a middleware to the registry under a name
	Register(name string, handler any)

	// Get retrieves a middleware by name
	Get(name string) (NamedMiddleware, bool)

	// All returns all registered middlewares
	All() []NamedMiddleware
}

// inMemoryMiddlewareRegistry implements MiddlewareRegistry
type inMemoryMiddlewareRegistry struct {
	middlewares map[string]NamedMiddleware
	order       []string
}

// NewMiddlewareRegistry creates a new in-memory middleware registry
func NewMiddlewareRegistry() MiddlewareRegistry {
	return &inMemoryMiddlewareRegistry{
		middlewares: make(map[string]NamedMiddleware),
	}
}

func (r *inMemoryMiddlewareRegistry) Register(name string, handler any) {
	if _, exists := r.middlewares[name]; !exists {
		r.order = append(r.order, name)
	}
	r.middlewares[name] = NamedMiddleware{Name: name, Handler: handler}
}

func (r *inMemoryMiddlewareRegistry) Get(name string) (NamedMiddleware, bool) {
	mw, exists := r.middlewares[name]
	return mw, exists
}

func (r *inMemoryMiddlewareRegistry) All() []NamedMiddleware {
	out := make([]NamedMiddleware, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.middlewares[name])
	}
	return out
}

// DefaultMiddlewareRegistry is the global middleware registry
var DefaultMiddlewareRegistry = NewMiddlewareRegistry()

// Convenience functions over the default registries

// Bind fetches or creates a binding in the default registry
func Bind(name string) *Binding {
	return DefaultBindingRegistry.Binding(name)
}

// Controller fetches or creates a binding named after the controller's
// concrete type and declares its exported methods.
func Controller(controller any) *Binding {
	return Bind(controllerName(controller)).Methods(controller)
}

// BuildTable builds a finalized table from the default registry
func BuildTable() *Table {
	return DefaultBindingRegistry.Table()
}

// RegisterMiddleware registers a named middleware with the global registry
func RegisterMiddleware(name string, handler any) {
	DefaultMiddlewareRegistry.Register(name, handler)
}

// GetMiddleware retrieves a named middleware from the global registry
func GetMiddleware(name string) (NamedMiddleware, bool) {
	return DefaultMiddlewareRegistry.Get(name)
}

// controllerName derives a stable controller key from the concrete
// type, dereferencing pointers so *UserController and UserController
// share one binding.
func controllerName(controller any) string {
	t := reflect.TypeOf(controller)
	if t == nil {
		return ""
	}
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}
