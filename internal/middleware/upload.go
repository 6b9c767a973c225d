package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/SeakMengs/PdfImage/internal/constant"
	"github.com/SeakMengs/PdfImage/internal/util"
	"github.com/gin-gonic/gin"
)

// One megabyte on top of the file limits for multipart boundaries and headers
const multipartOverhead = 1 << 20

// Rule for a field that accepts images, using the configured size and count limits
func (m Middleware) ImageRule(field string, maxCount int) util.UploadRule {
	if maxCount <= 0 {
		maxCount = m.app.Config.Upload.MaxFiles
	}

	return util.UploadRule{
		Field:    field,
		Kind:     util.UploadKindImage,
		MaxCount: maxCount,
		MaxSize:  m.app.Config.Upload.MaxFileSize,
	}
}

func (m Middleware) PdfRule(field string) util.UploadRule {
	return util.UploadRule{
		Field:    field,
		Kind:     util.UploadKindPdf,
		MaxCount: 1,
		MaxSize:  m.app.Config.Upload.MaxFileSize,
	}
}

// Uploads parses the multipart body and checks every field against its rule before the handler runs.
// Accepted files are stored on the context under constant.CTX_UPLOADS keyed by field name.
// A request without a multipart body passes with no files so the handler can report what is missing.
func (m Middleware) Uploads(rules ...util.UploadRule) gin.HandlerFunc {
	var maxBody int64 = multipartOverhead
	for _, rule := range rules {
		maxBody += rule.MaxSize * int64(max(rule.MaxCount, 1))
	}

	return func(ctx *gin.Context) {
		uploads := make(map[string][]util.UploadedFile, len(rules))
		ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, maxBody)

		form, err := ctx.MultipartForm()
		if err != nil && !errors.Is(err, http.ErrNotMultipart) {
			var maxBytesErr *http.MaxBytesError
			if errors.As(err, &maxBytesErr) {
				util.ResponseFailed(ctx, http.StatusRequestEntityTooLarge, "File too large")
				return
			}

			m.app.Logger.Debugf("Failed to parse multipart form: %v", err)
			util.ResponseFailed(ctx, http.StatusBadRequest, fmt.Sprintf("Invalid upload: %v", err))
			return
		}

		for _, rule := range rules {
			files, err := util.ReadUploads(form, rule)
			if err != nil {
				m.app.Logger.Debugf("Rejected upload for field %s: %v", rule.Field, err)
				code, message := uploadErrorResponse(err, rule)
				util.ResponseFailed(ctx, code, message)
				return
			}
			uploads[rule.Field] = files
		}

		ctx.Set(constant.CTX_UPLOADS, uploads)
		ctx.Next()
	}
}

func uploadErrorResponse(err error, rule util.UploadRule) (int, string) {
	switch {
	case errors.Is(err, util.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge, "File too large"
	case errors.Is(err, util.ErrImageTypeNotAllowed):
		return http.StatusBadRequest, "Only JPEG and PNG images are allowed"
	case errors.Is(err, util.ErrPdfTypeNotAllowed):
		return http.StatusBadRequest, "Only PDF files are allowed"
	case errors.Is(err, util.ErrTooManyFiles):
		return http.StatusBadRequest, fmt.Sprintf("Too many files for field %s", rule.Field)
	default:
		return http.StatusBadRequest, err.Error()
	}
}

// Files accepted by Uploads for the given field, nil if none
func GetUploads(ctx *gin.Context, field string) []util.UploadedFile {
	val, ok := ctx.Get(constant.CTX_UPLOADS)
	if !ok {
		return nil
	}

	uploads, ok := val.(map[string][]util.UploadedFile)
	if !ok {
		return nil
	}

	return uploads[field]
}
