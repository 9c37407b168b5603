package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"ecogood/internal/config"
	"ecogood/internal/middleware"
	"ecogood/internal/usecase"
)

// BlogHandler serves the journal section.
type BlogHandler struct {
	uc *usecase.BlogUsecase
}

func NewBlogHandler(uc *usecase.BlogUsecase) *BlogHandler {
	return &BlogHandler{uc: uc}
}

type BlogPostRequest struct {
	Title    string `json:"title"`
	Excerpt  string `json:"excerpt"`
	Image    string `json:"image"`
	Category string `json:"category"`
	Date     string `json:"date"`
}

func (h *BlogHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	e.GET("/posts", h.list)
	e.GET("/posts/:id", h.detail)

	g := e.Group("/admin/posts")
	g.Use(middleware.AuthJWT(cfg))
	g.Use(middleware.AdminRoleGuard())
	g.POST("", h.create)
	g.DELETE("/:id", h.delete)
}

func (h *BlogHandler) list(c echo.Context) error {
	out, err := h.uc.ListPosts(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *BlogHandler) detail(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	out, err := h.uc.GetPostDetail(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *BlogHandler) create(c echo.Context) error {
	var req BlogPostRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.CreatePost(c.Request().Context(), usecase.BlogPostInput{
		Title:    req.Title,
		Excerpt:  req.Excerpt,
		Image:    req.Image,
		Category: req.Category,
		Date:     req.Date,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, out)
}

func (h *BlogHandler) delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	if err := h.uc.DeletePost(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
