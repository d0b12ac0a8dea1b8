package adapters

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"github.com/fenwick/bindery/pkg/bindery"
)

// EchoAdapter applies a finalized binding table to an Echo engine
type EchoAdapter struct {
	engine     *echo.Echo
	middleware bindery.MiddlewareRegistry
}

// NewEchoAdapter creates a new Echo adapter resolving named middleware
// from the global registry
func NewEchoAdapter(e *echo.Echo) *EchoAdapter {
	return &EchoAdapter{engine: e, middleware: bindery.DefaultMiddlewareRegistry}
}

// NewEchoAdapterWithRegistry creates a new Echo adapter with an
// explicit named-middleware registry
func NewEchoAdapterWithRegistry(e *echo.Echo, registry bindery.MiddlewareRegistry) *EchoAdapter {
	return &EchoAdapter{engine: e, middleware: registry}
}

// Name returns the adapter name
func (ea *EchoAdapter) Name() string {
	return "Echo"
}

// GetEngine returns the underlying Echo instance
func (ea *EchoAdapter) GetEngine() *echo.Echo {
	return ea.engine
}

// Register registers one route with the middleware bound to the given
// controller method. Unknown controllers or methods register the bare
// handler; unresolvable middleware fails here, at apply time.
func (ea *EchoAdapter) Register(method, path string, table *bindery.Table, controller, handlerMethod string, h echo.HandlerFunc) error {
	mws, err := ea.resolve(table.MethodMiddleware(controller, handlerMethod))
	if err != nil {
		return fmt.Errorf("route %s %s: %w", method, path, err)
	}
	ea.engine.Add(method, path, h, mws...)
	return nil
}

// RegisterResource registers the conventional CRUD routes for a
// resource controller under basePath. Actions without a handler are
// skipped; each registered action gets its action-scoped middleware
// followed by its method-level groups.
func (ea *EchoAdapter) RegisterResource(basePath string, table *bindery.Table, controller string, handlers map[bindery.Action]echo.HandlerFunc) error {
	for _, rt := range resourceRoutes(basePath) {
		h, ok := handlers[rt.action]
		if !ok {
			continue
		}
		mws, err := ea.resolve(actionChain(table, controller, rt.action))
		if err != nil {
			return fmt.Errorf("resource %s action %s: %w", basePath, rt.action, err)
		}
		ea.engine.Add(rt.method, rt.path, h, mws...)
	}
	return nil
}

// resolve converts a middleware group to Echo middleware, looking up
// named references in the adapter's registry.
func (ea *EchoAdapter) resolve(group bindery.Group) ([]echo.MiddlewareFunc, error) {
	mws := make([]echo.MiddlewareFunc, 0, len(group))
	for _, m := range group {
		handler := m.Handler
		if m.IsNamed() {
			named, ok := ea.middleware.Get(m.Name)
			if !ok {
				return nil, fmt.Errorf("middleware %q is not registered", m.Name)
			}
			handler = named.Handler
		}
		switch fn := handler.(type) {
		case echo.MiddlewareFunc:
			mws = append(mws, fn)
		case func(echo.HandlerFunc) echo.HandlerFunc:
			mws = append(mws, fn)
		default:
			return nil, fmt.Errorf("middleware %s is not an Echo middleware (got %T)", m.Label(), handler)
		}
	}
	return mws, nil
}
