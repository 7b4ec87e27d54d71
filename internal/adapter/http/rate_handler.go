package http

import (
	"net/http"

	ucRate "lenddesk-backend/internal/usecase/rate"

	"github.com/labstack/echo/v4"
)

type RateHandler struct{ uc *ucRate.Usecase }

func NewRateHandler(uc *ucRate.Usecase) *RateHandler { return &RateHandler{uc: uc} }

type upsertRateReq struct {
	TierID     string  `json:"tier_id"     validate:"omitempty,hex32"`
	Name       string  `json:"name"        validate:"required,max=128"`
	MinMonths  int     `json:"min_months"  validate:"required,gte=1"`
	MaxMonths  int     `json:"max_months"  validate:"required,gte=1"`
	AnnualRate float64 `json:"annual_rate" validate:"required,gt=0,lte=1"`
	Active     *bool   `json:"active"`
}

func (h *RateHandler) Upsert(c echo.Context) error {
	actor, meta, ok := actorAndMeta(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing bearer token"})
	}
	var req upsertRateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	active := true
	if req.Active != nil {
		active = *req.Active
	}
	tier, err := h.uc.Upsert(c.Request().Context(), ucRate.UpsertInput{
		TierID:     req.TierID,
		Name:       req.Name,
		MinMonths:  req.MinMonths,
		MaxMonths:  req.MaxMonths,
		AnnualRate: req.AnnualRate,
		Active:     active,
		Actor:      actor,
		Meta:       meta,
	})
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"rate_tier": tier})
}

func (h *RateHandler) List(c echo.Context) error {
	tiers, err := h.uc.ListActive(c.Request().Context())
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"rate_tiers": tiers})
}
