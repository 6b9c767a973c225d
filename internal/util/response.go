package util

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func BuildResponseFailed(message string) ErrorResponse {
	if message == "" {
		message = http.StatusText(http.StatusInternalServerError)
	}

	return ErrorResponse{Error: message}
}

func ResponseFailed(ctx *gin.Context, code int, message string) {
	ctx.AbortWithStatusJSON(code, BuildResponseFailed(message))
}

func ResponseSuccess(ctx *gin.Context, data any) {
	if data == nil {
		data = gin.H{}
	}

	ctx.JSON(http.StatusOK, data)
	ctx.Abort()
}

// Send a generated document as a download
func ResponsePdf(ctx *gin.Context, filename string, pdf []byte) {
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	ctx.Data(http.StatusOK, "application/pdf", pdf)
	ctx.Abort()
}
