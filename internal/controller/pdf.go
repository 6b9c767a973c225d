package controller

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/SeakMengs/PdfImage/internal/constant"
	"github.com/SeakMengs/PdfImage/internal/middleware"
	"github.com/SeakMengs/PdfImage/internal/util"
	"github.com/SeakMengs/PdfImage/pkg/pdfimage"
	"github.com/gin-gonic/gin"
)

type PdfController struct {
	*baseController
}

func (pc PdfController) failed(ctx *gin.Context, err error, fallback string) {
	pc.app.Logger.Errorw(fallback, "error", err, "path", ctx.Request.URL.Path)
	_ = ctx.Error(err)

	message := err.Error()
	if message == "" {
		message = fallback
	}
	util.ResponseFailed(ctx, http.StatusInternalServerError, message)
}

// Draw the uploaded image into the placement box on the first page of the template
func (pc PdfController) InsertImage(ctx *gin.Context) {
	files := middleware.GetUploads(ctx, constant.FIELD_IMAGE)
	if len(files) == 0 {
		util.ResponseFailed(ctx, http.StatusBadRequest, "No image provided")
		return
	}

	pdf, err := pc.app.Compositor.InsertIntoTemplate(toImages(files)[0])
	if err != nil {
		switch {
		case errors.Is(err, pdfimage.ErrTemplateNotFound):
			pc.app.Logger.Errorw("Template PDF not found", "path", pc.app.Config.PDF.TemplatePath)
			util.ResponseFailed(ctx, http.StatusInternalServerError, fmt.Sprintf("Template PDF not found. Put your PDF at %s", pc.app.Config.PDF.TemplatePath))
		case errors.Is(err, pdfimage.ErrTemplateNoPages):
			pc.app.Logger.Errorw("Template PDF has no pages", "path", pc.app.Config.PDF.TemplatePath)
			util.ResponseFailed(ctx, http.StatusInternalServerError, "Template PDF has no pages")
		default:
			pc.failed(ctx, err, "Failed to insert image into PDF")
		}
		return
	}

	util.ResponsePdf(ctx, constant.FILENAME_TEMPLATE_DOCUMENT, pdf)
}

// Create a new document with one page per uploaded image
func (pc PdfController) ImagesToPdf(ctx *gin.Context) {
	files := middleware.GetUploads(ctx, constant.FIELD_IMAGES)
	if len(files) == 0 {
		util.ResponseFailed(ctx, http.StatusBadRequest, "No images provided")
		return
	}

	pdf, err := pc.app.Compositor.ImagesToPdf(toImages(files))
	if err != nil {
		pc.failed(ctx, err, "Failed to create PDF")
		return
	}

	util.ResponsePdf(ctx, constant.FILENAME_IMAGES_DOCUMENT, pdf)
}

// Append one page per uploaded image to the uploaded document
func (pc PdfController) AddToExistingPdf(ctx *gin.Context) {
	pdfFiles := middleware.GetUploads(ctx, constant.FIELD_PDF)
	if len(pdfFiles) == 0 {
		util.ResponseFailed(ctx, http.StatusBadRequest, "No PDF file provided")
		return
	}

	images := toImages(middleware.GetUploads(ctx, constant.FIELD_IMAGES))

	pdf, err := pc.app.Compositor.AppendImagesToPdf(pdfFiles[0].Data, images)
	if err != nil {
		pc.failed(ctx, err, "Failed to add images to PDF")
		return
	}

	util.ResponsePdf(ctx, constant.FILENAME_APPENDED_DOCUMENT, pdf)
}
