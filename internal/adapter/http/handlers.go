package http

import (
	"net/http"
	"time"

	appDomain "lenddesk-backend/internal/domain/application"
	"lenddesk-backend/internal/domain/audit"
	mw "lenddesk-backend/internal/adapter/middleware"

	"github.com/labstack/echo/v4"
)

type Handler struct{}

func NewHandler() *Handler { return &Handler{} }

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339Nano),
	})
}

// actorAndMeta pulls the authorization context and requester fingerprints
// every mutating handler needs.
func actorAndMeta(c echo.Context) (appDomain.Actor, audit.RequestMeta, bool) {
	actor, ok := mw.ActorFrom(c)
	return actor, audit.NewRequestMeta(c.RealIP(), c.Request().UserAgent()), ok
}
