package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestRBAC_AllowsAdmin(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("role", "admin")

	called := false
	mw := RBAC("admin")
	handler := mw(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next handler not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRBAC_DeniesOtherRoles(t *testing.T) {
	for _, role := range []string{"staff", "", "Admin"} {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		if role != "" {
			c.Set("role", role)
		}

		mw := RBAC("admin")
		handler := mw(func(c echo.Context) error {
			t.Fatalf("role %q: should not reach next handler", role)
			return nil
		})

		if err := handler(c); err != nil {
			t.Fatalf("role %q: handler error: %v", role, err)
		}
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("role %q: expected 400, got %d", role, rec.Code)
		}

		var body map[string]interface{}
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("role %q: bad body: %v", role, err)
		}
		if body["message"] != "Admin Access Only" {
			t.Fatalf("role %q: unexpected message %v", role, body["message"])
		}
		if body["status"] != float64(http.StatusBadRequest) {
			t.Fatalf("role %q: unexpected status field %v", role, body["status"])
		}
	}
}

func TestRBAC_DenialSkipsHandlerEntirely(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/employee/3201", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("role", "staff")

	// Any store access would happen inside next; it must never run.
	mutations := 0
	mw := RBAC("admin")
	handler := mw(func(c echo.Context) error {
		mutations++
		return nil
	})

	_ = handler(c)
	if mutations != 0 {
		t.Fatalf("expected zero store mutations, got %d", mutations)
	}
}
