package bindery

import "strings"

// Action is a conventional resource-controller action name.
type Action string

const (
	ActionIndex   Action = "index"
	ActionCreate  Action = "create"
	ActionStore   Action = "store"
	ActionShow    Action = "show"
	ActionEdit    Action = "edit"
	ActionUpdate  Action = "update"
	ActionDestroy Action = "destroy"
)

// AllActions lists the conventional resource actions in route-table order.
var AllActions = []Action{
	ActionIndex,
	ActionCreate,
	ActionStore,
	ActionShow,
	ActionEdit,
	ActionUpdate,
	ActionDestroy,
}

// MethodName returns the exported controller method name conventionally
// backing the action (index -> "Index").
func (a Action) MethodName() string {
	s := string(a)
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// ActionSet is either the wildcard (all actions) or an explicit list of
// action names in the order they were given. Names are not validated:
// unknown or misspelled actions are carried through untouched and it is
// the consuming router's job to reject or ignore them.
type ActionSet struct {
	wildcard bool
	actions  []Action
}

// Wildcard matches every action.
var Wildcard = ActionSet{wildcard: true}

// Actions builds an explicit action set.
func Actions(actions ...Action) ActionSet {
	return ActionSet{actions: append([]Action(nil), actions...)}
}

// IsWildcard reports whether the set matches all actions.
func (s ActionSet) IsWildcard() bool {
	return s.wildcard
}

// Contains reports whether the set covers the given action.
func (s ActionSet) Contains(a Action) bool {
	if s.wildcard {
		return true
	}
	for _, candidate := range s.actions {
		if candidate == a {
			return true
		}
	}
	return false
}

// Actions returns the explicit action list, nil for the wildcard.
func (s ActionSet) Actions() []Action {
	if s.wildcard {
		return nil
	}
	return append([]Action(nil), s.actions...)
}

// String renders the set the way it was declared: "*" for the wildcard,
// otherwise a comma-separated action list.
func (s ActionSet) String() string {
	if s.wildcard {
		return "*"
	}
	names := make([]string, len(s.actions))
	for i, a := range s.actions {
		names[i] = string(a)
	}
	return strings.Join(names, ",")
}
