//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"booking-system/internal/handler/httperr"
	"booking-system/internal/handler/middleware"
	"booking-system/internal/pkg/errs"
	"booking-system/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func newErrorTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(middleware.ErrorHandler())
	return engine
}

func TestErrorHandler(t *testing.T) {
	t.Run("renders the recorded error as a flat body", func(t *testing.T) {
		router := newErrorTestRouter()
		router.GET("/missing", func(c *gin.Context) {
			httperr.AbortWithError(c, http.StatusNotFound,
				errs.New("booking not in store"), "Resource not found")
		})

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/missing", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusNotFound, "Resource not found")
	})

	t.Run("last recorded error wins", func(t *testing.T) {
		router := newErrorTestRouter()
		router.GET("/layered", func(c *gin.Context) {
			httperr.AbortWithError(c, http.StatusBadRequest,
				errs.New("first failure"), "Invalid request format")
			httperr.AbortWithError(c, http.StatusConflict,
				errs.New("second failure"), "Time slot conflicts with an existing booking")
		})

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/layered", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusConflict, "Time slot conflicts")
	})

	t.Run("does not touch responses the handler already wrote", func(t *testing.T) {
		router := newErrorTestRouter()
		router.GET("/ok", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/ok", nil, "")
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "ok")
	})

	t.Run("flushes bodyless statuses untouched", func(t *testing.T) {
		router := newErrorTestRouter()
		router.DELETE("/gone", func(c *gin.Context) {
			c.Status(http.StatusNoContent)
		})

		rec := httptest.PerformRequest(t, router, http.MethodDelete, "/gone", nil, "")
		require.Equal(t, http.StatusNoContent, rec.Code)
		require.Empty(t, rec.Body.String())
	})
}
