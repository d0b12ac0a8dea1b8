package adapters

import (
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/fenwick/bindery/pkg/bindery"
)

func echoRecordMW(calls *[]string, name string) func(echo.HandlerFunc) echo.HandlerFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			*calls = append(*calls, name)
			return next(c)
		}
	}
}

func TestEchoAdapter_RegisterAppliesBoundMiddlewareInOrder(t *testing.T) {
	var calls []string

	registry := bindery.NewBindingRegistry()
	registry.Binding("UserController").
		Handle("Show").
		UseOn("Show", bindery.Handler(echoRecordMW(&calls, "route"))).
		Use(bindery.Handler(echoRecordMW(&calls, "group")))

	e := echo.New()
	adapter := NewEchoAdapterWithRegistry(e, bindery.NewMiddlewareRegistry())

	handler := func(c echo.Context) error {
		calls = append(calls, "handler")
		return c.NoContent(200)
	}

	if err := adapter.Register("GET", "/users/:id", registry.Table(), "UserController", "Show", handler); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	req := httptest.NewRequest("GET", "/users/42", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != 200 {
		t.Errorf("Expected status 200, got %d", rec.Code)
	}

	expected := []string{"route", "group", "handler"}
	if len(calls) != len(expected) {
		t.Fatalf("Expected calls %v, got %v", expected, calls)
	}
	for i := range expected {
		if calls[i] != expected[i] {
			t.Errorf("Expected calls %v, got %v", expected, calls)
			break
		}
	}
}

func TestEchoAdapter_ResolvesNamedMiddleware(t *testing.T) {
	var calls []string

	middlewares := bindery.NewMiddlewareRegistry()
	middlewares.Register("auth", echo.MiddlewareFunc(echoRecordMW(&calls, "auth")))

	registry := bindery.NewBindingRegistry()
	registry.Binding("UserController").
		Handle("Index").
		Use(bindery.Named("auth"))

	e := echo.New()
	adapter := NewEchoAdapterWithRegistry(e, middlewares)

	handler := func(c echo.Context) error { return c.NoContent(200) }
	if err := adapter.Register("GET", "/users", registry.Table(), "UserController", "Index", handler); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	req := httptest.NewRequest("GET", "/users", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if len(calls) != 1 || calls[0] != "auth" {
		t.Errorf("Expected auth middleware to run, got %v", calls)
	}
}

func TestEchoAdapter_UnregisteredNameFailsAtApplyTime(t *testing.T) {
	registry := bindery.NewBindingRegistry()
	registry.Binding("UserController").
		Handle("Index").
		Use(bindery.Named("missing"))

	adapter := NewEchoAdapterWithRegistry(echo.New(), bindery.NewMiddlewareRegistry())

	handler := func(c echo.Context) error { return c.NoContent(200) }
	err := adapter.Register("GET", "/users", registry.Table(), "UserController", "Index", handler)
	if err == nil {
		t.Fatal("Expected error for unregistered middleware name")
	}
}

func TestEchoAdapter_RejectsForeignMiddlewarePayload(t *testing.T) {
	registry := bindery.NewBindingRegistry()
	registry.Binding("UserController").
		Handle("Index").
		Use(bindery.Handler(42))

	adapter := NewEchoAdapter(echo.New())

	handler := func(c echo.Context) error { return c.NoContent(200) }
	err := adapter.Register("GET", "/users", registry.Table(), "UserController", "Index", handler)
	if err == nil {
		t.Fatal("Expected error for non-Echo middleware payload")
	}
}

func TestEchoAdapter_RegisterResource(t *testing.T) {
	var calls []string

	registry := bindery.NewBindingRegistry()
	registry.Binding("UserController").
		Handle("Index", "Store").
		UseOn("Store", bindery.Handler(echoRecordMW(&calls, "store-only"))).
		UseResource(bindery.Actions(bindery.ActionStore), bindery.Handler(echoRecordMW(&calls, "csrf"))).
		UseResource(bindery.Wildcard, bindery.Handler(echoRecordMW(&calls, "trace")))

	e := echo.New()
	adapter := NewEchoAdapterWithRegistry(e, bindery.NewMiddlewareRegistry())

	handlers := map[bindery.Action]echo.HandlerFunc{
		bindery.ActionIndex: func(c echo.Context) error { calls = append(calls, "index"); return c.NoContent(200) },
		bindery.ActionStore: func(c echo.Context) error { calls = append(calls, "store"); return c.NoContent(201) },
	}

	if err := adapter.RegisterResource("/users", registry.Table(), "UserController", handlers); err != nil {
		t.Fatalf("RegisterResource failed: %v", err)
	}

	// Store: scoped record, wildcard record, then the method group.
	req := httptest.NewRequest("POST", "/users", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != 201 {
		t.Errorf("Expected status 201, got %d", rec.Code)
	}
	expected := []string{"csrf", "trace", "store-only", "store"}
	if len(calls) != len(expected) {
		t.Fatalf("Expected calls %v, got %v", expected, calls)
	}
	for i := range expected {
		if calls[i] != expected[i] {
			t.Fatalf("Expected calls %v, got %v", expected, calls)
		}
	}

	// Index: only the wildcard record applies.
	calls = nil
	req = httptest.NewRequest("GET", "/users", nil)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if len(calls) != 2 || calls[0] != "trace" || calls[1] != "index" {
		t.Errorf("Expected [trace index], got %v", calls)
	}

	// Actions without handlers are not registered.
	req = httptest.NewRequest("DELETE", "/users/42", nil)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code == 200 {
		t.Errorf("Expected destroy route to be absent, got %d", rec.Code)
	}
}
