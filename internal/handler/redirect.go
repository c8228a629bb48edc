package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/omayconaguiar/url-shortner/internal/model"
	"github.com/omayconaguiar/url-shortner/internal/mq"
	"github.com/omayconaguiar/url-shortner/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// RedirectHandler handles short link redirection
type RedirectHandler struct {
	service  service.LinkServiceInterface
	producer mq.ProducerInterface
}

// NewRedirectHandler creates a new RedirectHandler
func NewRedirectHandler(service service.LinkServiceInterface, producer mq.ProducerInterface) *RedirectHandler {
	return &RedirectHandler{
		service:  service,
		producer: producer,
	}
}

// Redirect handles GET /:slug
// @Summary Redirect to the original URL
// @Description Resolves the slug, records the visit, and redirects
// @Tags redirect
// @Param slug path string true "URL slug"
// @Success 302
// @Failure 404 {object} ErrorResponse
// @Router /{slug} [get]
func (h *RedirectHandler) Redirect(c *gin.Context) {
	slug := c.Param("slug")
	meta := &model.VisitMeta{
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
		Referer:   c.Request.Referer(),
	}

	link, err := h.service.Redirect(c.Request.Context(), slug, meta)
	if err != nil {
		if errors.Is(err, service.ErrLinkNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Code:    http.StatusNotFound,
				Message: "Short link not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to resolve short link",
		})
		return
	}

	// The visit is already recorded; publication is fan-out only and
	// must not delay or fail the redirect.
	if h.producer != nil {
		event := &mq.VisitEvent{
			LinkID:    link.ID,
			Slug:      link.Slug,
			IPAddress: meta.IPAddress,
			UserAgent: meta.UserAgent,
			Referer:   meta.Referer,
			VisitedAt: time.Now(),
		}
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := h.producer.SendVisitEvent(ctx, event); err != nil {
				log.Error().Err(err).Str("slug", event.Slug).Msg("Failed to publish visit event")
			}
		}()
	}

	c.Redirect(http.StatusFound, link.OriginalURL)
}
