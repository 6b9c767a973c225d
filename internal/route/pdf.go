package route

import (
	"github.com/SeakMengs/PdfImage/internal/constant"
	"github.com/SeakMengs/PdfImage/internal/controller"
	"github.com/SeakMengs/PdfImage/internal/middleware"
	"github.com/gin-gonic/gin"
)

func Pdf(r *gin.RouterGroup, pc *controller.PdfController, middleware *middleware.Middleware) {
	r.POST("/insert-image",
		middleware.Uploads(middleware.ImageRule(constant.FIELD_IMAGE, 1)),
		pc.InsertImage,
	)
	r.POST("/images-to-pdf",
		middleware.Uploads(middleware.ImageRule(constant.FIELD_IMAGES, 0)),
		pc.ImagesToPdf,
	)
	r.POST("/add-to-existing-pdf",
		middleware.Uploads(middleware.PdfRule(constant.FIELD_PDF), middleware.ImageRule(constant.FIELD_IMAGES, 0)),
		pc.AddToExistingPdf,
	)
}
