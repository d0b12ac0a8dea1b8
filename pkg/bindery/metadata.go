package bindery

// MethodMetadata holds the middleware groups accumulated for one
// controller method. Groups are strictly append-only and never
// deduplicated: binding the same group twice yields two entries, and
// list order is the order the annotator calls were made.
type MethodMetadata struct {
	groups []Group
}

func (m *MethodMetadata) append(g Group) {
	m.groups = append(m.groups, g)
}

// Groups returns a copy of the accumulated middleware groups in
// declaration order.
func (m *MethodMetadata) Groups() []Group {
	if m == nil {
		return nil
	}
	return copyGroups(m.groups)
}

// ResourceBinding scopes one middleware group to a set of resource
// actions (or to all of them via the wildcard). Resource bindings are a
// flat, append-only list per controller: overlapping or repeated action
// sets are all retained in insertion order, and flattening them per
// action is left to the consumer.
type ResourceBinding struct {
	Actions    ActionSet
	Middleware Group
}

func copyGroups(groups []Group) []Group {
	if groups == nil {
		return nil
	}
	out := make([]Group, len(groups))
	for i, g := range groups {
		out[i] = append(Group(nil), g...)
	}
	return out
}

func copyResourceBindings(bindings []ResourceBinding) []ResourceBinding {
	if bindings == nil {
		return nil
	}
	out := make([]ResourceBinding, len(bindings))
	for i, rb := range bindings {
		out[i] = ResourceBinding{
			Actions:    rb.Actions,
			Middleware: append(Group(nil), rb.Middleware...),
		}
	}
	return out
}
