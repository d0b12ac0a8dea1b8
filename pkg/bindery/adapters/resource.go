package adapters

import "github.com/fenwick/bindery/pkg/bindery"

// actionRoute pairs one resource action with its HTTP method and path
type actionRoute struct {
	method string
	path   string
	action bindery.Action
}

// resourceRoutes returns the conventional CRUD route table for a base
// path. Static segments (/create, /:id/edit) come before /:id so
// routers that match in registration order resolve them first.
func resourceRoutes(basePath string) []actionRoute {
	return []actionRoute{
		{"GET", basePath, bindery.ActionIndex},
		{"GET", basePath + "/create", bindery.ActionCreate},
		{"POST", basePath, bindery.ActionStore},
		{"GET", basePath + "/:id/edit", bindery.ActionEdit},
		{"GET", basePath + "/:id", bindery.ActionShow},
		{"PUT", basePath + "/:id", bindery.ActionUpdate},
		{"PATCH", basePath + "/:id", bindery.ActionUpdate},
		{"DELETE", basePath + "/:id", bindery.ActionDestroy},
	}
}

// actionChain builds the middleware sequence for one resource action:
// action-scoped bindings first, then the groups bound to the action's
// backing method. Resource-before-method is this layer's policy; the
// binding core itself takes no position on their relative order.
func actionChain(table *bindery.Table, controller string, action bindery.Action) bindery.Group {
	chain := table.ActionMiddleware(controller, action)
	return append(chain, table.MethodMiddleware(controller, action.MethodName())...)
}
