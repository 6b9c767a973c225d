package middleware

import (
	"time"

	"github.com/SeakMengs/PdfImage/internal/constant"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Tag every request with an id and log it once the handler is done.
func (m Middleware) RequestLogger(ctx *gin.Context) {
	start := time.Now()

	requestID := ctx.GetHeader(constant.HEADER_REQUEST_ID)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	ctx.Set(constant.CTX_REQUEST_ID, requestID)
	ctx.Header(constant.HEADER_REQUEST_ID, requestID)

	ctx.Next()

	fields := []any{
		"requestId", requestID,
		"method", ctx.Request.Method,
		"path", ctx.Request.URL.Path,
		"status", ctx.Writer.Status(),
		"latency", time.Since(start),
		"clientIp", ctx.ClientIP(),
	}
	if len(ctx.Errors) > 0 {
		fields = append(fields, "errors", ctx.Errors.String())
	}

	if ctx.Writer.Status() >= 500 {
		m.app.Logger.Errorw("Request failed", fields...)
		return
	}
	m.app.Logger.Infow("Request handled", fields...)
}
