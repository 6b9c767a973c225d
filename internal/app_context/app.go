package appcontext

import (
	"github.com/SeakMengs/PdfImage/internal/config"
	"github.com/SeakMengs/PdfImage/pkg/pdfimage"
	"go.uber.org/zap"
)

// Application contains core dependencies for the app.
type Application struct {
	// Config holds application settings provided from the environment or .env file.
	Config *config.Config

	Logger *zap.SugaredLogger

	// Compositor draws uploaded images into template, new and existing documents.
	Compositor *pdfimage.Compositor
}

func NewApplication(cfg *config.Config, logger *zap.SugaredLogger) *Application {
	return &Application{
		Config:     cfg,
		Logger:     logger,
		Compositor: pdfimage.NewCompositor(cfg.PDF.Compositor()),
	}
}
