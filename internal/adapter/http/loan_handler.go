package http

import (
	"net/http"

	ucLoan "lenddesk-backend/internal/usecase/loan"

	"github.com/labstack/echo/v4"
)

type LoanHandler struct{ uc *ucLoan.Usecase }

func NewLoanHandler(uc *ucLoan.Usecase) *LoanHandler { return &LoanHandler{uc: uc} }

type createLoanReq struct {
	ApplicationID      string  `json:"application_id"      validate:"required,hex32"`
	ApprovedAmount     float64 `json:"approved_amount"     validate:"required,gt=0,dec2"`
	DisbursementAmount float64 `json:"disbursement_amount" validate:"omitempty,gt=0,dec2"`
	InterestRate       float64 `json:"interest_rate"       validate:"omitempty,gt=0,lte=1"`
	DurationMonths     int     `json:"duration"            validate:"required,gte=1,lte=360"`
	MonthlyPayment     float64 `json:"monthly_payment"     validate:"omitempty,gt=0,dec2"`
	BankAccount        string  `json:"bank_account"        validate:"omitempty,max=64"`
	BankName           string  `json:"bank_name"           validate:"omitempty,max=128"`
}

func (h *LoanHandler) CreateLoan(c echo.Context) error {
	actor, meta, ok := actorAndMeta(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing bearer token"})
	}
	var req createLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	dto, err := h.uc.Create(c.Request().Context(), ucLoan.CreateLoanInput{
		ApplicationID:      req.ApplicationID,
		ApprovedAmount:     req.ApprovedAmount,
		DisbursementAmount: req.DisbursementAmount,
		InterestRate:       req.InterestRate,
		DurationMonths:     req.DurationMonths,
		MonthlyPayment:     req.MonthlyPayment,
		BankAccount:        req.BankAccount,
		BankName:           req.BankName,
		Actor:              actor,
		Meta:               meta,
	})
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]any{"loan": dto})
}

func (h *LoanHandler) GetLoan(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("loan_id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"loan": dto})
}
