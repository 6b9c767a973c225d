package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	appcontext "github.com/SeakMengs/PdfImage/internal/app_context"
	"github.com/SeakMengs/PdfImage/internal/config"
	"github.com/SeakMengs/PdfImage/internal/constant"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newTestMiddleware() (*Middleware, *observer.ObservedLogs) {
	core, logs := observer.New(zap.InfoLevel)
	cfg := config.GetConfig()
	app := appcontext.NewApplication(&cfg, zap.New(core).Sugar())
	return NewMiddleware(app), logs
}

func TestRequestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m, logs := newTestMiddleware()

	r := gin.New()
	r.Use(m.RequestLogger)
	r.GET("/ok", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, ctx.GetString(constant.CTX_REQUEST_ID))
	})
	r.GET("/fail", func(ctx *gin.Context) {
		ctx.Status(http.StatusInternalServerError)
	})

	t.Run("Keeps the caller request id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ok", nil)
		req.Header.Set(constant.HEADER_REQUEST_ID, "abc-123")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, "abc-123", rec.Header().Get(constant.HEADER_REQUEST_ID))
		assert.Equal(t, "abc-123", rec.Body.String())
	})

	t.Run("Generates a request id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ok", nil))

		assert.Len(t, rec.Header().Get(constant.HEADER_REQUEST_ID), 36)
	})

	t.Run("Logs server errors as errors", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/fail", nil))

		failed := logs.FilterMessage("Request failed").All()
		if assert.Len(t, failed, 1) {
			assert.Equal(t, int64(http.StatusInternalServerError), failed[0].ContextMap()["status"])
		}
	})
}

func TestGetUploadsWithoutMiddleware(t *testing.T) {
	ctx, _ := gin.CreateTestContext(httptest.NewRecorder())

	assert.Nil(t, GetUploads(ctx, constant.FIELD_IMAGES))
}
