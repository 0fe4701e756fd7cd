package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	domain "crefinso-portal/internal/domain/payment"
	"crefinso-portal/internal/usecase/payment"
)

type PaymentHandler struct {
	repo domain.Repository
	uc   *payment.Usecase
}

func NewPaymentHandler(repo domain.Repository, uc *payment.Usecase) *PaymentHandler {
	return &PaymentHandler{repo: repo, uc: uc}
}

func (h *PaymentHandler) List(c echo.Context) error {
	out, err := h.repo.List(c.Request().Context())
	if err != nil {
		return writeRemoteError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PaymentHandler) Get(c echo.Context) error {
	pid, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid payment id"})
	}
	out, err := h.repo.Get(c.Request().Context(), pid)
	if err != nil {
		return writeRemoteError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PaymentHandler) Create(c echo.Context) error {
	var p domain.Payment
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := h.repo.Create(c.Request().Context(), &p); err != nil {
		return writeRemoteError(c, err)
	}
	return c.NoContent(http.StatusCreated)
}

func (h *PaymentHandler) Update(c echo.Context) error {
	pid, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid payment id"})
	}
	var p domain.Payment
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	p.PagoID = pid
	if err := h.repo.Update(c.Request().Context(), &p); err != nil {
		return writeRemoteError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *PaymentHandler) Delete(c echo.Context) error {
	pid, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid payment id"})
	}
	if err := h.repo.Delete(c.Request().Context(), pid); err != nil {
		return writeRemoteError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *PaymentHandler) Upcoming(c echo.Context) error {
	loanID, err := strconv.Atoi(c.Param("loanId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid loan id"})
	}
	out, err := h.repo.ListUpcoming(c.Request().Context(), loanID)
	if err != nil {
		return writeRemoteError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PaymentHandler) Overdue(c echo.Context) error {
	out, err := h.repo.ListOverdue(c.Request().Context())
	if err != nil {
		return writeRemoteError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

type previewReq struct {
	PrestamoID int    `json:"prestamoId" validate:"required,gte=1"`
	Monto      string `json:"monto" validate:"required"`
}

// Preview returns the interest/capital split the payment screen shows before
// an installment is registered.
func (h *PaymentHandler) Preview(c echo.Context) error {
	var req previewReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	amount, err := decimal.NewFromString(req.Monto)
	if err != nil || amount.IsNegative() {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "monto must be a non-negative decimal"})
	}

	pv, err := h.uc.Preview(c.Request().Context(), req.PrestamoID, amount)
	if err != nil {
		return writeRemoteError(c, err)
	}
	return c.JSON(http.StatusOK, pv)
}

// ProcessAutomatic is fire-and-forget: the trigger never fails from the
// browser's point of view.
func (h *PaymentHandler) ProcessAutomatic(c echo.Context) error {
	h.uc.TriggerAutomatic(c.Request().Context())
	return c.NoContent(http.StatusAccepted)
}
