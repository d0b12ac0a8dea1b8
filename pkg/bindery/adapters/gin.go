package adapters

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/fenwick/bindery/pkg/bindery"
)

// GinAdapter applies a finalized binding table to a Gin engine
type GinAdapter struct {
	engine     *gin.Engine
	middleware bindery.MiddlewareRegistry
}

// NewGinAdapter creates a new Gin adapter resolving named middleware
// from the global registry
func NewGinAdapter(g *gin.Engine) *GinAdapter {
	return &GinAdapter{engine: g, middleware: bindery.DefaultMiddlewareRegistry}
}

// NewGinAdapterWithRegistry creates a new Gin adapter with an explicit
// named-middleware registry
func NewGinAdapterWithRegistry(g *gin.Engine, registry bindery.MiddlewareRegistry) *GinAdapter {
	return &GinAdapter{engine: g, middleware: registry}
}

// Name returns the adapter name
func (ga *GinAdapter) Name() string {
	return "Gin"
}

// GetEngine returns the underlying Gin engine
func (ga *GinAdapter) GetEngine() *gin.Engine {
	return ga.engine
}

// Register registers one route with the middleware bound to the given
// controller method. Gin middleware are plain handlers run ahead of the
// route handler, so the chain is middleware first, handler last.
func (ga *GinAdapter) Register(method, path string, table *bindery.Table, controller, handlerMethod string, h gin.HandlerFunc) error {
	mws, err := ga.resolve(table.MethodMiddleware(controller, handlerMethod))
	if err != nil {
		return fmt.Errorf("route %s %s: %w", method, path, err)
	}
	ga.engine.Handle(method, path, append(mws, h)...)
	return nil
}

// RegisterResource registers the conventional CRUD routes for a
// resource controller under basePath, skipping actions without a
// handler.
func (ga *GinAdapter) RegisterResource(basePath string, table *bindery.Table, controller string, handlers map[bindery.Action]gin.HandlerFunc) error {
	for _, rt := range resourceRoutes(basePath) {
		h, ok := handlers[rt.action]
		if !ok {
			continue
		}
		mws, err := ga.resolve(actionChain(table, controller, rt.action))
		if err != nil {
			return fmt.Errorf("resource %s action %s: %w", basePath, rt.action, err)
		}
		ga.engine.Handle(rt.method, rt.path, append(mws, h)...)
	}
	return nil
}

// resolve converts a middleware group to Gin handlers, looking up named
// references in the adapter's registry.
func (ga *GinAdapter) resolve(group bindery.Group) ([]gin.HandlerFunc, error) {
	mws := make([]gin.HandlerFunc, 0, len(group))
	for _, m := range group {
		handler := m.Handler
		if m.IsNamed() {
			named, ok := ga.middleware.Get(m.Name)
			if !ok {
				return nil, fmt.Errorf("middleware %q is not registered", m.Name)
			}
			handler = named.Handler
		}
		switch fn := handler.(type) {
		case gin.HandlerFunc:
			mws = append(mws, fn)
		case func(*gin.Context):
			mws = append(mws, fn)
		default:
			return nil, fmt.Errorf("middleware %s is not a Gin handler (got %T)", m.Label(), handler)
		}
	}
	return mws, nil
}
