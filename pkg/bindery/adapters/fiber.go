package adapters

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/fenwick/bindery/pkg/bindery"
)

// FiberAdapter applies a finalized binding table to a Fiber app
type FiberAdapter struct {
	app        *fiber.App
	middleware bindery.MiddlewareRegistry
}

// NewFiberAdapter creates a new Fiber adapter resolving named
// middleware from the global registry
func NewFiberAdapter(app *fiber.App) *FiberAdapter {
	return &FiberAdapter{app: app, middleware: bindery.DefaultMiddlewareRegistry}
}

// NewFiberAdapterWithRegistry creates a new Fiber adapter with an
// explicit named-middleware registry
func NewFiberAdapterWithRegistry(app *fiber.App, registry bindery.MiddlewareRegistry) *FiberAdapter {
	return &FiberAdapter{app: app, middleware: registry}
}

// Name returns the adapter name
func (fa *FiberAdapter) Name() string {
	return "Fiber"
}

// GetApp returns the underlying Fiber app
func (fa *FiberAdapter) GetApp() *fiber.App {
	return fa.app
}

// Register registers one route with the middleware bound to the given
// controller method. Fiber chains handlers in registration order, so
// the middleware precede the route handler.
func (fa *FiberAdapter) Register(method, path string, table *bindery.Table, controller, handlerMethod string, h fiber.Handler) error {
	mws, err := fa.resolve(table.MethodMiddleware(controller, handlerMethod))
	if err != nil {
		return fmt.Errorf("route %s %s: %w", method, path, err)
	}
	fa.app.Add(method, path, append(mws, h)...)
	return nil
}

// RegisterResource registers the conventional CRUD routes for a
// resource controller under basePath, skipping actions without a
// handler.
func (fa *FiberAdapter) RegisterResource(basePath string, table *bindery.Table, controller string, handlers map[bindery.Action]fiber.Handler) error {
	for _, rt := range resourceRoutes(basePath) {
		h, ok := handlers[rt.action]
		if !ok {
			continue
		}
		mws, err := fa.resolve(actionChain(table, controller, rt.action))
		if err != nil {
			return fmt.Errorf("resource %s action %s: %w", basePath, rt.action, err)
		}
		fa.app.Add(rt.method, rt.path, append(mws, h)...)
	}
	return nil
}

// resolve converts a middleware group to Fiber handlers, looking up
// named references in the adapter's registry.
func (fa *FiberAdapter) resolve(group bindery.Group) ([]fiber.Handler, error) {
	mws := make([]fiber.Handler, 0, len(group))
	for _, m := range group {
		handler := m.Handler
		if m.IsNamed() {
			named, ok := fa.middleware.Get(m.Name)
			if !ok {
				return nil, fmt.Errorf("middleware %q is not registered", m.Name)
			}
			handler = named.Handler
		}
		// fiber.Handler is an alias for func(*fiber.Ctx) error, so one
		// assertion covers both spellings.
		fn, ok := handler.(fiber.Handler)
		if !ok {
			return nil, fmt.Errorf("middleware %s is not a Fiber handler (got %T)", m.Label(), handler)
		}
		mws = append(mws, fn)
	}
	return mws, nil
}
