package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"ecogood/internal/config"
	"ecogood/internal/domain/model"
	"ecogood/internal/middleware"
	repo "ecogood/internal/repository"
	"ecogood/internal/usecase"
)

// AdminHandler serves the /admin dashboard routes.
type AdminHandler struct {
	orderUC *usecase.OrderUsecase
	syncUC  *usecase.AdminSyncUsecase
}

func NewAdminHandler(orderUC *usecase.OrderUsecase, syncUC *usecase.AdminSyncUsecase) *AdminHandler {
	return &AdminHandler{orderUC: orderUC, syncUC: syncUC}
}

type AdminDataRequest struct {
	Action string          `json:"action"`
	Key    string          `json:"key"`
	Data   json.RawMessage `json:"data"`
}

type SyncDataRequest struct {
	Action string           `json:"action"`
	Data   usecase.SiteData `json:"data"`
}

func (h *AdminHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("/admin")
	g.Use(middleware.AuthJWT(cfg))
	g.Use(middleware.AdminRoleGuard())

	g.GET("/cart-orders", h.cartOrders)
	g.POST("/sync-data", h.syncData)
	g.GET("/load-data", h.loadData)
	g.POST("/data", h.data)
	g.GET("/audit-logs", h.auditLogs)
}

func (h *AdminHandler) cartOrders(c echo.Context) error {
	out, err := h.orderUC.ListCartOrders(c.Request().Context())
	if err != nil {
		return writeEnvelopeError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success":    true,
		"cartOrders": out,
	})
}

func (h *AdminHandler) syncData(c echo.Context) error {
	adminID, _ := getUserIDFromContext(c)

	var req SyncDataRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	// The action gates the destructive overwrite; anything unknown is
	// rejected before storage is touched.
	switch req.Action {
	case "sync":
		res, err := h.syncUC.SyncAllDataToStore(c.Request().Context(), adminID, req.Data)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, res)
	case "load":
		data, err := h.syncUC.LoadDataFromStore(c.Request().Context())
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, data)
	default:
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid action"})
	}
}

func (h *AdminHandler) loadData(c echo.Context) error {
	data, err := h.syncUC.LoadDataFromStore(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, data)
}

func (h *AdminHandler) auditLogs(c echo.Context) error {
	var filter repo.AuditLogFilter

	if v := c.QueryParam("actor"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid actor"})
		}
		filter.ActorUserID = &id
	}
	if v := c.QueryParam("action"); v != "" {
		action := model.AuditAction(v)
		filter.Action = &action
	}
	if v := c.QueryParam("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid limit"})
		}
		filter.Limit = n
	}
	if v := c.QueryParam("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid offset"})
		}
		filter.Offset = n
	}

	logs, err := h.syncUC.ListAuditLogs(c.Request().Context(), filter)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, logs)
}

func (h *AdminHandler) data(c echo.Context) error {
	var req AdminDataRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, EnvelopeError{Error: "invalid body"})
	}

	switch req.Action {
	case "save":
		if err := h.syncUC.SaveBlob(c.Request().Context(), req.Key, req.Data); err != nil {
			return writeEnvelopeError(c, err)
		}
		return c.JSON(http.StatusOK, map[string]interface{}{
			"success": true,
		})
	case "load":
		raw, err := h.syncUC.LoadBlob(c.Request().Context(), req.Key)
		if err != nil {
			return writeEnvelopeError(c, err)
		}
		return c.JSON(http.StatusOK, map[string]interface{}{
			"success": true,
			"data":    json.RawMessage(raw),
		})
	default:
		return c.JSON(http.StatusBadRequest, EnvelopeError{Error: "invalid action"})
	}
}
