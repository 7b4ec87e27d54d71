package http

import (
	"net/http"

	appDomain "lenddesk-backend/internal/domain/application"
	reviewDomain "lenddesk-backend/internal/domain/review"
	ucApp "lenddesk-backend/internal/usecase/application"
	ucDisb "lenddesk-backend/internal/usecase/disbursement"
	ucReview "lenddesk-backend/internal/usecase/review"

	"github.com/labstack/echo/v4"
)

type ApplicationHandler struct {
	apps    *ucApp.Usecase
	reviews *ucReview.Usecase
	disb    *ucDisb.Usecase
}

func NewApplicationHandler(apps *ucApp.Usecase, reviews *ucReview.Usecase, disb *ucDisb.Usecase) *ApplicationHandler {
	return &ApplicationHandler{apps: apps, reviews: reviews, disb: disb}
}

type createApplicationReq struct {
	Amount  float64 `json:"amount"  validate:"required,gt=0,dec2"`
	Purpose string  `json:"purpose" validate:"required,max=2000"`
}

func (h *ApplicationHandler) Create(c echo.Context) error {
	actor, meta, ok := actorAndMeta(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing bearer token"})
	}
	var req createApplicationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	dto, err := h.apps.Create(c.Request().Context(), ucApp.CreateInput{
		Actor:   actor,
		Amount:  req.Amount,
		Purpose: req.Purpose,
		Meta:    meta,
	})
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]any{"application": dto})
}

func (h *ApplicationHandler) Get(c echo.Context) error {
	actor, _, ok := actorAndMeta(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing bearer token"})
	}
	dto, err := h.apps.Get(c.Request().Context(), actor, c.Param("application_id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"application": dto})
}

type submitInfoReq struct {
	Info string `json:"info" validate:"required,max=4000"`
}

func (h *ApplicationHandler) SubmitInfo(c echo.Context) error {
	actor, meta, ok := actorAndMeta(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing bearer token"})
	}
	var req submitInfoReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	dto, err := h.apps.SubmitInfo(c.Request().Context(), ucApp.SubmitInfoInput{
		ApplicationID: c.Param("application_id"),
		Actor:         actor,
		Info:          req.Info,
		Meta:          meta,
	})
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"application": dto})
}

type reviewReq struct {
	Decision string `json:"decision"    validate:"required,oneof=APPROVED REJECTED REQUEST_INFO"`
	Comments string `json:"comments"    validate:"omitempty,max=2000"`
	// Optional; when set it must match the type implied by the actor's role.
	ReviewType string `json:"review_type" validate:"omitempty,oneof=OFFICER_REVIEW APPROVER_REVIEW"`
}

func (h *ApplicationHandler) Review(c echo.Context) error {
	actor, meta, ok := actorAndMeta(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing bearer token"})
	}
	var req reviewReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	if req.ReviewType != "" && !reviewTypeMatchesRole(req.ReviewType, actor.Role) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "review_type does not match actor role"})
	}
	res, err := h.reviews.Review(c.Request().Context(), ucReview.ReviewInput{
		ApplicationID: c.Param("application_id"),
		Actor:         actor,
		Decision:      appDomain.Decision(req.Decision),
		Comments:      req.Comments,
		Meta:          meta,
	})
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *ApplicationHandler) Disburse(c echo.Context) error {
	actor, meta, ok := actorAndMeta(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing bearer token"})
	}
	res, err := h.disb.Disburse(c.Request().Context(), ucDisb.DisburseInput{
		ApplicationID: c.Param("application_id"),
		Actor:         actor,
		Meta:          meta,
	})
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

func reviewTypeMatchesRole(reviewType string, role appDomain.Role) bool {
	switch reviewDomain.Type(reviewType) {
	case reviewDomain.TypeOfficer:
		return role == appDomain.RoleOfficer
	case reviewDomain.TypeApprover:
		return role == appDomain.RoleApprover
	}
	return false
}
