package bindery

// Table is a finalized, read-only snapshot of a binding registry. It is
// the surface the consuming router works against: bindings keep
// mutating freely at startup, and a table built afterwards is immune to
// later changes.
type Table struct {
	controllers map[string]*controllerTable
	order       []string
}

type controllerTable struct {
	methods     map[string][]Group
	methodOrder []string
	resource    []ResourceBinding
}

func buildTable(bindings []*Binding) *Table {
	t := &Table{controllers: make(map[string]*controllerTable)}
	for _, b := range bindings {
		ct := &controllerTable{methods: make(map[string][]Group)}
		for _, method := range b.order {
			ct.methods[method] = copyGroups(b.entries[method].groups)
			ct.methodOrder = append(ct.methodOrder, method)
		}
		ct.resource = copyResourceBindings(b.resource)
		t.controllers[b.name] = ct
		t.order = append(t.order, b.name)
	}
	return t
}

// Controllers returns the controller names in registration order.
func (t *Table) Controllers() []string {
	return append([]string(nil), t.order...)
}

// Methods returns the annotated method names of a controller. Unknown
// controllers yield nil.
func (t *Table) Methods(controller string) []string {
	ct, ok := t.controllers[controller]
	if !ok {
		return nil
	}
	return append([]string(nil), ct.methodOrder...)
}

// MethodGroups returns the middleware groups bound to one method, in
// binding order. Unknown controllers or methods yield nil, never an
// error: absent metadata simply means no middleware.
func (t *Table) MethodGroups(controller, method string) []Group {
	ct, ok := t.controllers[controller]
	if !ok {
		return nil
	}
	return copyGroups(ct.methods[method])
}

// MethodMiddleware returns the flattened middleware sequence for one
// method, groups concatenated in binding order.
func (t *Table) MethodMiddleware(controller, method string) Group {
	return Flatten(t.MethodGroups(controller, method))
}

// ResourceBindings returns a controller's action-scoped records in
// insertion order.
func (t *Table) ResourceBindings(controller string) []ResourceBinding {
	ct, ok := t.controllers[controller]
	if !ok {
		return nil
	}
	return copyResourceBindings(ct.resource)
}

// ActionMiddleware flattens the resource bindings covering one action —
// wildcard records and records whose set contains the action — in
// insertion order.
func (t *Table) ActionMiddleware(controller string, action Action) Group {
	var flat Group
	for _, rb := range t.ResourceBindings(controller) {
		if rb.Actions.Contains(action) {
			flat = append(flat, rb.Middleware...)
		}
	}
	return flat
}
