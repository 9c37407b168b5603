package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"ecogood/internal/config"
	"ecogood/internal/middleware"
	"ecogood/internal/usecase"
)

// CartHandler serves the cart routes.
type CartHandler struct {
	uc *usecase.CartUsecase
}

func NewCartHandler(uc *usecase.CartUsecase) *CartHandler {
	return &CartHandler{uc: uc}
}

type AddCartItemRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int64 `json:"quantity"`
}

type UpdateCartItemRequest struct {
	Quantity int64 `json:"quantity"`
}

type CartMetadataSyncRequest struct {
	Action       string                    `json:"action"`
	CartData     usecase.CartMetadataInput `json:"cartData"`
	CustomerInfo usecase.CustomerInfo      `json:"customerInfo"`
}

func (h *CartHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("/cart")
	g.Use(middleware.AuthJWT(cfg))
	g.GET("", h.getCart)

	items := e.Group("/cart-items")
	items.Use(middleware.AuthJWT(cfg))
	items.POST("", h.addItem)
	// Item mutation checks the id only, not who owns the cart.
	items.PATCH("/:id", h.patchItem)
	items.DELETE("/:id", h.deleteItem)

	e.POST("/cart-metadata-sync", h.metadataSync)
}

func (h *CartHandler) getCart(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, EnvelopeError{Error: "unauthorized"})
	}

	out, err := h.uc.GetOrCreateCart(c.Request().Context(), userID)
	if err != nil {
		return writeEnvelopeError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"cart":    out,
	})
}

func (h *CartHandler) addItem(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, EnvelopeError{Error: "unauthorized"})
	}

	var req AddCartItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, EnvelopeError{Error: "invalid body"})
	}

	out, err := h.uc.AddItem(c.Request().Context(), userID, usecase.AddCartItemInput{
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		return writeEnvelopeError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"cart":    out,
	})
}

func (h *CartHandler) patchItem(c echo.Context) error {
	itemID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, EnvelopeError{Error: "invalid id"})
	}

	var req UpdateCartItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, EnvelopeError{Error: "invalid body"})
	}

	item, err := h.uc.UpdateItemQuantity(c.Request().Context(), itemID, req.Quantity)
	if err != nil {
		return writeEnvelopeError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"item":    item,
	})
}

func (h *CartHandler) deleteItem(c echo.Context) error {
	itemID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, EnvelopeError{Error: "invalid id"})
	}

	if err := h.uc.RemoveItem(c.Request().Context(), itemID); err != nil {
		return writeEnvelopeError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
	})
}

func (h *CartHandler) metadataSync(c echo.Context) error {
	var req CartMetadataSyncRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, EnvelopeError{Error: "invalid body"})
	}

	if req.Action != "update_cart_order" {
		return c.JSON(http.StatusBadRequest, EnvelopeError{Error: "invalid action"})
	}

	meta := h.uc.SyncCartMetadata(req.CartData, req.CustomerInfo)

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success":  true,
		"metadata": meta,
	})
}
