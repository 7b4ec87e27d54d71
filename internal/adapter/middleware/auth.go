package middleware

import (
	"net/http"
	"strings"

	"lenddesk-backend/internal/domain/application"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const actorContextKey = "lenddesk.actor"

// Auth verifies the bearer token minted by the external auth provider and
// resolves it into a per-request actor (user id + role). Token issuance is
// out of scope here; this middleware only checks the HMAC signature and the
// sub/role claims.
func Auth(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := bearerToken(c.Request())
			if raw == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing bearer token"})
			}

			tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return secret, nil
			})
			if err != nil || !tok.Valid {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid token"})
			}

			claims, ok := tok.Claims.(jwt.MapClaims)
			if !ok {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid token"})
			}
			sub, _ := claims["sub"].(string)
			role, _ := claims["role"].(string)
			actor := application.Actor{ID: sub, Role: application.Role(role)}
			if actor.ID == "" || !validRole(actor.Role) {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "token missing subject or role"})
			}

			SetActor(c, actor)
			return next(c)
		}
	}
}

// RequireRoles gates a route on the actor's role. Must run after Auth.
func RequireRoles(roles ...application.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor, ok := ActorFrom(c)
			if !ok {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing bearer token"})
			}
			for _, r := range roles {
				if actor.Role == r {
					return next(c)
				}
			}
			return c.JSON(http.StatusForbidden, map[string]string{"error": "insufficient role"})
		}
	}
}

// SetActor places the resolved actor on the request context.
func SetActor(c echo.Context, a application.Actor) {
	c.Set(actorContextKey, a)
}

func ActorFrom(c echo.Context) (application.Actor, bool) {
	actor, ok := c.Get(actorContextKey).(application.Actor)
	return actor, ok
}

func bearerToken(req *http.Request) string {
	h := req.Header.Get(echo.HeaderAuthorization)
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func validRole(r application.Role) bool {
	switch r {
	case application.RoleApplicant, application.RoleOfficer, application.RoleApprover, application.RoleAdmin:
		return true
	}
	return false
}
