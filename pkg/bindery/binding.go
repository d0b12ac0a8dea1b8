package bindery

import "reflect"

// initMethod is the conventional constructor-style method name excluded
// from reflective declaration; it is never a request handler.
const initMethod = "Init"

// Binding accumulates middleware declarations for one controller. It is
// the explicit replacement for decorator-time metadata attachment:
// controllers declare their handler methods, then attach middleware to
// all of them, to single methods, or to resource actions. All mutation
// happens at startup, before the consuming router reads the table.
type Binding struct {
	name string

	// declared handler method names, in declaration order
	declared []string
	seen     map[string]bool

	// per-method metadata, created lazily on first annotation
	entries map[string]*MethodMetadata
	order   []string

	resource []ResourceBinding
}

func newBinding(name string) *Binding {
	return &Binding{
		name:    name,
		seen:    make(map[string]bool),
		entries: make(map[string]*MethodMetadata),
	}
}

// Name returns the controller name the binding is keyed by.
func (b *Binding) Name() string {
	return b.name
}

// Handle declares handler method names on the binding. Declaration
// order is preserved; duplicates are ignored.
func (b *Binding) Handle(methods ...string) *Binding {
	for _, m := range methods {
		if b.seen[m] {
			continue
		}
		b.seen[m] = true
		b.declared = append(b.declared, m)
	}
	return b
}

// Methods declares every exported method of the controller value,
// excluding the conventional Init constructor. Only methods present at
// call time are declared: methods on types registered later, or
// bindings extended after a Use call, are not annotated retroactively.
func (b *Binding) Methods(controller any) *Binding {
	t := reflect.TypeOf(controller)
	if t == nil {
		return b
	}
	for i := 0; i < t.NumMethod(); i++ {
		name := t.Method(i).Name
		if name == initMethod {
			continue
		}
		b.Handle(name)
	}
	return b
}

// DeclaredMethods returns the declared handler method names in
// declaration order.
func (b *Binding) DeclaredMethods() []string {
	return append([]string(nil), b.declared...)
}

// entry fetches or lazily creates the metadata record for a method.
func (b *Binding) entry(method string) *MethodMetadata {
	if m, ok := b.entries[method]; ok {
		return m
	}
	m := &MethodMetadata{}
	b.entries[method] = m
	b.order = append(b.order, method)
	return m
}

// Use appends one middleware group to every method declared so far.
// A binding with no declared methods is a no-op. Repeated calls append
// repeated groups; nothing is deduplicated.
func (b *Binding) Use(middleware ...Middleware) *Binding {
	group := append(Group(nil), middleware...)
	for _, method := range b.declared {
		b.entry(method).append(group)
	}
	return b
}

// UseOn appends one middleware group to a single method, creating its
// metadata record if needed. Sibling methods are untouched. Groups land
// in pure call order, so UseOn followed by Use leaves the per-method
// group before the controller-wide one.
func (b *Binding) UseOn(method string, middleware ...Middleware) *Binding {
	b.entry(method).append(append(Group(nil), middleware...))
	return b
}

// UseResource appends one action-scoped middleware record. Records
// accumulate in insertion order and are never merged, even when action
// sets repeat or overlap; the consumer flattens them at dispatch time.
// Action names are not validated here.
func (b *Binding) UseResource(actions ActionSet, middleware ...Middleware) *Binding {
	b.resource = append(b.resource, ResourceBinding{
		Actions:    actions,
		Middleware: append(Group(nil), middleware...),
	})
	return b
}

// MethodGroups returns the middleware groups bound to a method, in
// binding order. Unknown methods yield nil rather than an error.
func (b *Binding) MethodGroups(method string) []Group {
	return b.entries[method].Groups()
}

// AnnotatedMethods returns the method names that have at least one
// metadata record, in record-creation order.
func (b *Binding) AnnotatedMethods() []string {
	return append([]string(nil), b.order...)
}

// ResourceBindings returns the accumulated action-scoped records in
// insertion order.
func (b *Binding) ResourceBindings() []ResourceBinding {
	return copyResourceBindings(b.resource)
}
