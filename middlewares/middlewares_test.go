package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ramya05916-rgb/Hostel-Leave-Management-System/auth"
)

func testApp(mw echo.MiddlewareFunc) *echo.Echo {
	e := echo.New()
	e.GET("/protected", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	}, mw)
	return e
}

func TestRequireAuth(t *testing.T) {
	e := testApp(RequireAuth("secret"))

	// no header
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without header, got %d", rec.Code)
	}

	// malformed header
	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token abc")
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for malformed header, got %d", rec.Code)
	}

	// bad token
	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for bad token, got %d", rec.Code)
	}

	// valid token
	token, err := auth.SignToken("secret", 1, "a@x.com", time.Hour)
	if err != nil {
		t.Fatalf("sign error: %v", err)
	}
	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 with valid token, got %d", rec.Code)
	}
}

func TestRequireAuthAttachesIdentity(t *testing.T) {
	e := echo.New()
	e.GET("/whoami", func(c echo.Context) error {
		id, ok := StudentID(c)
		if !ok {
			t.Fatalf("expected student id in context")
		}
		if id != 42 {
			t.Fatalf("expected id 42, got %d", id)
		}
		return c.String(http.StatusOK, "ok")
	}, RequireAuth("secret"))

	token, err := auth.SignToken("secret", 42, "a@x.com", time.Hour)
	if err != nil {
		t.Fatalf("sign error: %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRequireAdminSecret(t *testing.T) {
	e := testApp(RequireAdminSecret("top-secret"))

	// missing header
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 without secret, got %d", rec.Code)
	}

	// wrong secret
	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(AdminSecretHeader, "nope")
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for wrong secret, got %d", rec.Code)
	}

	// correct secret
	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(AdminSecretHeader, "top-secret")
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 with correct secret, got %d", rec.Code)
	}
}

func TestRequireAdminSecretEmptyConfig(t *testing.T) {
	// an unset secret must never open the gate
	e := testApp(RequireAdminSecret(""))
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(AdminSecretHeader, "")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 with empty configured secret, got %d", rec.Code)
	}
}
