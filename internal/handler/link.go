package handler

import (
	"errors"
	"net/http"

	"github.com/omayconaguiar/url-shortner/internal/model"
	"github.com/omayconaguiar/url-shortner/internal/service"
	"github.com/omayconaguiar/url-shortner/pkg/middleware"

	"github.com/gin-gonic/gin"
)

// LinkHandler handles link management endpoints
type LinkHandler struct {
	service service.LinkServiceInterface
}

// NewLinkHandler creates a new LinkHandler
func NewLinkHandler(service service.LinkServiceInterface) *LinkHandler {
	return &LinkHandler{service: service}
}

// Create handles POST /api/v1/urls
// @Summary Create a shortened URL
// @Description Creates a short link for the given URL, optionally under a custom slug
// @Tags urls
// @Accept json
// @Produce json
// @Param request body model.CreateLinkRequest true "Link to create"
// @Success 201 {object} model.ShortLink
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/urls [post]
func (h *LinkHandler) Create(c *gin.Context) {
	var req model.CreateLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request: " + err.Error(),
		})
		return
	}

	link, err := h.service.Create(c.Request.Context(), &req, middleware.OwnerID(c))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, link)
}

// FindAll handles GET /api/v1/urls
// @Summary List the authenticated owner's URLs
// @Tags urls
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.ShortLink
// @Router /api/v1/urls [get]
func (h *LinkHandler) FindAll(c *gin.Context) {
	links, err := h.service.FindAll(c.Request.Context(), middleware.OwnerID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, links)
}

// FindAllPublic handles GET /api/v1/urls/all
// @Summary List all URLs
// @Tags urls
// @Produce json
// @Success 200 {array} model.ShortLink
// @Router /api/v1/urls/all [get]
func (h *LinkHandler) FindAllPublic(c *gin.Context) {
	links, err := h.service.FindAll(c.Request.Context(), nil)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, links)
}

// Dashboard handles GET /api/v1/urls/dashboard
// @Summary Dashboard statistics for the authenticated owner
// @Tags urls
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.DashboardStats
// @Router /api/v1/urls/dashboard [get]
func (h *LinkHandler) Dashboard(c *gin.Context) {
	ownerID := middleware.OwnerID(c)
	if ownerID == nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Code:    http.StatusUnauthorized,
			Message: "Unauthorized",
		})
		return
	}

	stats, err := h.service.Dashboard(c.Request.Context(), *ownerID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// Stats handles GET /api/v1/urls/:id/stats, where :id is the slug
// @Summary Visit statistics for a URL
// @Tags urls
// @Produce json
// @Param id path string true "URL slug"
// @Success 200 {object} model.LinkStats
// @Failure 404 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /api/v1/urls/{id}/stats [get]
func (h *LinkHandler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context(), c.Param("id"), middleware.OwnerID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// Update handles PATCH /api/v1/urls/:id
// @Summary Update a URL
// @Tags urls
// @Accept json
// @Produce json
// @Param id path string true "URL id"
// @Param request body model.UpdateLinkRequest true "Fields to update"
// @Success 200 {object} model.ShortLink
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/urls/{id} [patch]
func (h *LinkHandler) Update(c *gin.Context) {
	var req model.UpdateLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request: " + err.Error(),
		})
		return
	}

	link, err := h.service.Update(c.Request.Context(), c.Param("id"), &req, middleware.OwnerID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, link)
}

// Remove handles DELETE /api/v1/urls/:id
// @Summary Delete a URL and its visits
// @Tags urls
// @Param id path string true "URL id"
// @Success 204
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/urls/{id} [delete]
func (h *LinkHandler) Remove(c *gin.Context) {
	if err := h.service.Remove(c.Request.Context(), c.Param("id"), middleware.OwnerID(c)); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ErrorResponse is the error API response
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// writeError maps registry errors to HTTP status codes
func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := "Internal server error"

	switch {
	case errors.Is(err, service.ErrLinkNotFound):
		status = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, service.ErrSlugTaken):
		status = http.StatusConflict
		message = err.Error()
	case errors.Is(err, service.ErrForbidden):
		status = http.StatusForbidden
		message = err.Error()
	case errors.Is(err, service.ErrInvalidURL),
		errors.Is(err, service.ErrSelfReference),
		errors.Is(err, service.ErrInvalidSlug),
		errors.Is(err, service.ErrSlugExhausted):
		status = http.StatusBadRequest
		message = err.Error()
	}

	c.JSON(status, ErrorResponse{Code: status, Message: message})
}
