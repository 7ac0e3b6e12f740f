package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/presensia/employee-system/internal/core/domain"
)

func renderError(t *testing.T, err error) (int, errorResponse) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := NewHTTPErrorHandler(zerolog.Nop())
	handler(err, c)

	var resp errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	return rec.Code, resp
}

func TestErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		err     error
		code    int
		message string
	}{
		{domain.ErrNotAllowed, http.StatusBadRequest, "Admin Access Only"},
		{domain.ErrEmployeeExists, http.StatusBadRequest, "Data Already Exist"},
		{domain.ErrEmployeeNotFound, http.StatusBadRequest, "Data Not Exist"},
		{domain.ErrUserNotFound, http.StatusBadRequest, "Data Not Exist"},
		{domain.ErrPasswordMismatch, http.StatusBadRequest, "Password Incorrect"},
		{domain.ErrUserExists, http.StatusBadRequest, "User Already Exist!"},
		{domain.ErrAdminReserved, http.StatusBadRequest, "Cannot Register Admin User!"},
	}

	for _, tc := range cases {
		code, resp := renderError(t, tc.err)
		if code != tc.code {
			t.Fatalf("%v: expected code %d, got %d", tc.err, tc.code, code)
		}
		if resp.Status != tc.code {
			t.Fatalf("%v: status field %d does not mirror code %d", tc.err, resp.Status, tc.code)
		}
		if resp.Message != tc.message {
			t.Fatalf("%v: expected message %q, got %q", tc.err, tc.message, resp.Message)
		}
	}
}

func TestErrorHandler_EchoHTTPErrorPassesThrough(t *testing.T) {
	code, resp := renderError(t, echo.NewHTTPError(http.StatusUnauthorized, "invalid token"))
	if code != http.StatusUnauthorized || resp.Status != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d / %d", code, resp.Status)
	}
	if resp.Message != "invalid token" {
		t.Fatalf("unexpected message: %q", resp.Message)
	}
}

func TestErrorHandler_SanitizesUnexpectedErrors(t *testing.T) {
	driverErr := errors.New(`pq: relation "employee" does not exist`)
	code, resp := renderError(t, driverErr)
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if resp.Message != "Something went wrong" {
		t.Fatalf("driver detail leaked into response: %q", resp.Message)
	}
}
