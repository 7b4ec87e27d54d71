package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"lenddesk-backend/internal/domain/application"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

var testSecret = []byte("test-secret")

func signToken(t *testing.T, secret []byte, claims jwt.MapClaims) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := tok.SignedString(secret)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return s
}

func callAuth(t *testing.T, authz string) (*httptest.ResponseRecorder, *application.Actor) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authz != "" {
		req.Header.Set(echo.HeaderAuthorization, authz)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var got *application.Actor
	h := Auth(testSecret)(func(c echo.Context) error {
		if a, ok := ActorFrom(c); ok {
			got = &a
		}
		return c.NoContent(http.StatusOK)
	})
	if err := h(c); err != nil {
		t.Fatalf("handler: %v", err)
	}
	return rec, got
}

func TestAuth_ResolvesActor(t *testing.T) {
	sub := strings.Repeat("a", 32)
	tok := signToken(t, testSecret, jwt.MapClaims{
		"sub":  sub,
		"role": "LOAN_OFFICER",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	rec, actor := callAuth(t, "Bearer "+tok)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if actor == nil || actor.ID != sub || actor.Role != application.RoleOfficer {
		t.Fatalf("actor = %+v", actor)
	}
}

func TestAuth_Rejections(t *testing.T) {
	valid := func(claims jwt.MapClaims) string { return "Bearer " + signToken(t, testSecret, claims) }
	sub := strings.Repeat("a", 32)

	tests := []struct {
		name  string
		authz string
	}{
		{"no header", ""},
		{"not bearer", "Basic abc"},
		{"garbage token", "Bearer not.a.jwt"},
		{"wrong secret", "Bearer " + signToken(t, []byte("other"), jwt.MapClaims{"sub": sub, "role": "ADMIN"})},
		{"expired", valid(jwt.MapClaims{"sub": sub, "role": "ADMIN", "exp": time.Now().Add(-time.Hour).Unix()})},
		{"missing sub", valid(jwt.MapClaims{"role": "ADMIN"})},
		{"missing role", valid(jwt.MapClaims{"sub": sub})},
		{"unknown role", valid(jwt.MapClaims{"sub": sub, "role": "SUPERUSER"})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, actor := callAuth(t, tt.authz)
			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("status = %d, want 401", rec.Code)
			}
			if actor != nil {
				t.Fatalf("actor leaked: %+v", actor)
			}
		})
	}
}

func TestAuth_RejectsUnsignedAlg(t *testing.T) {
	tok := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub":  strings.Repeat("a", 32),
		"role": "ADMIN",
	})
	s, err := tok.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	rec, _ := callAuth(t, "Bearer "+s)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestRequireRoles(t *testing.T) {
	e := echo.New()
	h := RequireRoles(application.RoleApprover, application.RoleAdmin)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	run := func(role application.Role) int {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		SetActor(c, application.Actor{ID: strings.Repeat("a", 32), Role: role})
		if err := h(c); err != nil {
			t.Fatalf("handler: %v", err)
		}
		return rec.Code
	}

	if code := run(application.RoleApprover); code != http.StatusOK {
		t.Fatalf("approver: %d", code)
	}
	if code := run(application.RoleAdmin); code != http.StatusOK {
		t.Fatalf("admin: %d", code)
	}
	if code := run(application.RoleOfficer); code != http.StatusForbidden {
		t.Fatalf("officer: %d, want 403", code)
	}

	// no actor at all
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	if err := h(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("no actor: %d, want 401", rec.Code)
	}
}
