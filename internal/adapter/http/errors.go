package http

import (
	"errors"
	"net/http"

	appDomain "lenddesk-backend/internal/domain/application"
	loanDomain "lenddesk-backend/internal/domain/loan"
	rateDomain "lenddesk-backend/internal/domain/rate"
	reviewDomain "lenddesk-backend/internal/domain/review"
	ucApp "lenddesk-backend/internal/usecase/application"
	ucLoan "lenddesk-backend/internal/usecase/loan"
	ucRate "lenddesk-backend/internal/usecase/rate"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// respondDomainError maps domain errors onto the API's error taxonomy:
// 403 wrong role/ownership, 404 unknown entity, 400 validation and state
// conflicts, 500 opaque for everything else (detail logged server-side only).
func respondDomainError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, appDomain.ErrRoleNotAllowed),
		errors.Is(err, appDomain.ErrNotOwner):
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})

	case errors.Is(err, appDomain.ErrNotFound),
		errors.Is(err, loanDomain.ErrNotFound),
		errors.Is(err, reviewDomain.ErrNotFound),
		errors.Is(err, rateDomain.ErrNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})

	case errors.Is(err, appDomain.ErrInvalidDecision),
		errors.Is(err, rateDomain.ErrNoActiveTier),
		errors.Is(err, ucApp.ErrInvalidInput),
		errors.Is(err, ucLoan.ErrInvalidInput),
		errors.Is(err, ucRate.ErrInvalidInput):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})

	case errors.Is(err, appDomain.ErrNotReviewable),
		errors.Is(err, appDomain.ErrNotDisbursable),
		errors.Is(err, appDomain.ErrAlreadyDisbursed),
		errors.Is(err, appDomain.ErrStaleStatus),
		errors.Is(err, loanDomain.ErrExists),
		errors.Is(err, loanDomain.ErrApplicationNotApproved):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})

	default:
		log.Error().Err(err).Str("path", c.Path()).Msg("unexpected error")
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
