package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omayconaguiar/url-shortner/internal/mocks"
	"github.com/omayconaguiar/url-shortner/internal/model"
	"github.com/omayconaguiar/url-shortner/internal/mq"
	"github.com/omayconaguiar/url-shortner/internal/service"
)

func newRedirectRouter(svc service.LinkServiceInterface, producer mq.ProducerInterface) *gin.Engine {
	h := NewRedirectHandler(svc, producer)
	router := gin.New()
	router.GET("/:slug", h.Redirect)
	return router
}

func TestRedirectHandler_Redirect(t *testing.T) {
	t.Run("302 to the original URL", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockSvc := mocks.NewMockLinkServiceInterface(ctrl)
		link := &model.ShortLink{ID: "id-1", Slug: "abc123", OriginalURL: "https://example.com/a", IsActive: true}
		mockSvc.EXPECT().
			Redirect(gomock.Any(), "abc123", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, meta *model.VisitMeta) (*model.ShortLink, error) {
				assert.Equal(t, "test-agent", meta.UserAgent)
				assert.Equal(t, "https://referrer.example.com", meta.Referer)
				return link, nil
			})

		router := newRedirectRouter(mockSvc, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/abc123", nil)
		req.Header.Set("User-Agent", "test-agent")
		req.Header.Set("Referer", "https://referrer.example.com")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "https://example.com/a", w.Header().Get("Location"))
	})

	t.Run("missing slug yields a structured 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockSvc := mocks.NewMockLinkServiceInterface(ctrl)
		mockSvc.EXPECT().
			Redirect(gomock.Any(), "nosuch", gomock.Any()).
			Return(nil, service.ErrLinkNotFound)

		router := newRedirectRouter(mockSvc, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/nosuch", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)

		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, http.StatusNotFound, resp.Code)
		assert.Equal(t, "Short link not found", resp.Message)
	})

	t.Run("visit recording failure is a 500, not a redirect", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockSvc := mocks.NewMockLinkServiceInterface(ctrl)
		mockSvc.EXPECT().
			Redirect(gomock.Any(), "abc123", gomock.Any()).
			Return(nil, assert.AnError)

		router := newRedirectRouter(mockSvc, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/abc123", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Empty(t, w.Header().Get("Location"))
	})

	t.Run("publishes a visit event when a producer is wired", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockSvc := mocks.NewMockLinkServiceInterface(ctrl)
		link := &model.ShortLink{ID: "id-1", Slug: "abc123", OriginalURL: "https://example.com/a", IsActive: true}
		mockSvc.EXPECT().
			Redirect(gomock.Any(), "abc123", gomock.Any()).
			Return(link, nil)

		var wg sync.WaitGroup
		wg.Add(1)
		mockProducer := mocks.NewMockProducerInterface(ctrl)
		mockProducer.EXPECT().
			SendVisitEvent(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, event *mq.VisitEvent) error {
				defer wg.Done()
				assert.Equal(t, "id-1", event.LinkID)
				assert.Equal(t, "abc123", event.Slug)
				assert.WithinDuration(t, time.Now(), event.VisitedAt, time.Minute)
				return nil
			})

		router := newRedirectRouter(mockSvc, mockProducer)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/abc123", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusFound, w.Code)

		// Publication happens off the request path.
		wg.Wait()
	})
}
