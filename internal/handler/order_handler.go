package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"ecogood/internal/config"
	"ecogood/internal/middleware"
	"ecogood/internal/usecase"
)

// OrderHandler serves checkout and payment confirmation.
type OrderHandler struct {
	uc *usecase.OrderUsecase
}

func NewOrderHandler(uc *usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

type ConfirmPaymentRequest struct {
	OrderID       string `json:"orderId"`
	PaymentMethod string `json:"paymentMethod"`
	Status        string `json:"status"`
}

type CheckoutRequest struct {
	Customer      usecase.CustomerInfo `json:"customer"`
	PaymentMethod string               `json:"payment_method"`
}

func (h *OrderHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	// Payment confirmation arrives from the payment page without a
	// session; the order number is the credential.
	e.POST("/orders/confirm-payment", h.confirmPayment)

	g := e.Group("/checkout")
	g.Use(middleware.AuthJWT(cfg))
	g.POST("", h.checkout)
}

func (h *OrderHandler) confirmPayment(c echo.Context) error {
	var req ConfirmPaymentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, EnvelopeError{Error: "invalid body"})
	}

	order, err := h.uc.ConfirmPayment(c.Request().Context(), usecase.ConfirmPaymentInput{
		OrderID:       req.OrderID,
		PaymentMethod: req.PaymentMethod,
		Status:        req.Status,
	})
	if err != nil {
		return writeEnvelopeError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"order":   order,
	})
}

func (h *OrderHandler) checkout(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, EnvelopeError{Error: "unauthorized"})
	}

	var req CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, EnvelopeError{Error: "invalid body"})
	}

	order, err := h.uc.Checkout(c.Request().Context(), userID, usecase.CheckoutInput{
		Customer:      req.Customer,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		return writeEnvelopeError(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"success": true,
		"order":   order,
	})
}
