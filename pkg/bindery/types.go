package bindery

import "fmt"

// Middleware is a single middleware declaration attached to a controller
// binding. It is either a direct handler in whatever shape the consuming
// router expects, or a named reference resolved elsewhere. The binding
// layer never inspects or invokes the payload.
type Middleware struct {
	// Name references a middleware registered by name. Resolution happens
	// at apply time, in the consuming adapter — never at binding time.
	Name string

	// Handler is the middleware value itself (e.g. an echo.MiddlewareFunc,
	// a gin.HandlerFunc, or a fiber.Handler). Opaque to this package.
	Handler any
}

// Handler wraps a framework-native middleware value.
func Handler(h any) Middleware {
	return Middleware{Handler: h}
}

// Named references a middleware by its registered name.
func Named(name string) Middleware {
	return Middleware{Name: name}
}

// IsNamed reports whether the middleware is a named reference.
func (m Middleware) IsNamed() bool {
	return m.Name != ""
}

// Label returns a human-readable identifier for listings and error
// messages: the registered name, or the handler's Go type.
func (m Middleware) Label() string {
	if m.IsNamed() {
		return m.Name
	}
	return fmt.Sprintf("%T", m.Handler)
}

// Group is one ordered middleware group. Groups are the unit of
// appending: every annotator call contributes exactly one group.
type Group []Middleware

// Flatten concatenates groups in order into a single middleware
// sequence. Declared order is execution order; consumers rely on it
// for precedence.
func Flatten(groups []Group) Group {
	var n int
	for _, g := range groups {
		n += len(g)
	}
	flat := make(Group, 0, n)
	for _, g := range groups {
		flat = append(flat, g...)
	}
	return flat
}
