package controller

import (
	appcontext "github.com/SeakMengs/PdfImage/internal/app_context"
	"github.com/SeakMengs/PdfImage/internal/util"
	"github.com/SeakMengs/PdfImage/pkg/pdfimage"
)

type baseController struct {
	app *appcontext.Application
}

type Controller struct {
	Index *IndexController
	Pdf   *PdfController
}

func newBaseController(app *appcontext.Application) *baseController {
	return &baseController{app: app}
}

func NewController(app *appcontext.Application) *Controller {
	bc := newBaseController(app)

	return &Controller{
		Index: &IndexController{baseController: bc},
		Pdf:   &PdfController{baseController: bc},
	}
}

func toImages(files []util.UploadedFile) []pdfimage.Image {
	images := make([]pdfimage.Image, 0, len(files))
	for _, f := range files {
		images = append(images, pdfimage.NewImage(f.Filename, f.Data))
	}
	return images
}
