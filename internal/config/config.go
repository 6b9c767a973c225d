package config

import (
	"fmt"
	"strings"

	"github.com/SeakMengs/PdfImage/internal/env"
	"github.com/SeakMengs/PdfImage/pkg/pdfimage"
	"github.com/go-playground/validator/v10"
)

const MB = 1 << 20

type Config struct {
	Port      string `validate:"required,numeric"`
	ENV       string `validate:"required"`
	APIPrefix string `validate:"required,startswith=/"`
	// Directory of the built web UI, served for every route outside the api prefix
	StaticDir string
	Cors      CorsConfig
	Upload    UploadConfig
	PDF       PDFConfig

	// Environment values that were set but could not be parsed
	envErr error
}

type CorsConfig struct {
	AllowOrigins []string `validate:"required,min=1"`
}

type UploadConfig struct {
	MaxFileSize int64 `validate:"gt=0"`
	// Max number of images accepted in one request
	MaxFiles int `validate:"gt=0"`
}

type PDFConfig struct {
	TemplatePath string `validate:"required"`
	TemplateBox  pdfimage.PlacementRegion
	PageSize     pdfimage.PageSize
	// Must leave room for an image below it
	TopMargin float64 `validate:"gte=0"`
}

func (c Config) IsProduction() bool {
	return strings.EqualFold(c.ENV, "production")
}

func (c PDFConfig) Compositor() pdfimage.Config {
	return pdfimage.Config{
		TemplatePath: c.TemplatePath,
		TemplateBox:  c.TemplateBox,
		PageSize:     c.PageSize,
		TopMargin:    c.TopMargin,
	}
}

func (c Config) Validate() error {
	if c.envErr != nil {
		return fmt.Errorf("invalid environment: %w", c.envErr)
	}

	if err := validator.New().Struct(c); err != nil {
		return err
	}

	if c.PDF.TopMargin >= c.PDF.PageSize.Height {
		return fmt.Errorf("page top margin %.2f must be smaller than page height %.2f", c.PDF.TopMargin, c.PDF.PageSize.Height)
	}

	return nil
}

func GetConfig() Config {
	defaults := pdfimage.NewDefaultConfig()
	var p env.Parser

	cfg := Config{
		Port:      env.GetString("PORT", "3001"),
		ENV:       env.GetString("ENV", "development"),
		APIPrefix: env.GetString("API_PREFIX", "/api"),
		StaticDir: env.GetString("STATIC_DIR", "frontend/dist"),
		Cors: CorsConfig{
			AllowOrigins: env.GetStrings("CORS_ALLOW_ORIGINS", []string{"http://localhost:5173"}),
		},
		Upload: UploadConfig{
			MaxFileSize: int64(p.Int("UPLOAD_MAX_FILE_SIZE_MB", 50)) * MB,
			MaxFiles:    p.Int("UPLOAD_MAX_FILES", 50),
		},
		PDF: PDFConfig{
			TemplatePath: env.GetString("TEMPLATE_PDF_PATH", defaults.TemplatePath),
			// Tweak these to match the white box in the template, in PDF points from the bottom-left corner
			TemplateBox: pdfimage.PlacementRegion{
				X:      p.Float("IMAGE_PLACEMENT_X", defaults.TemplateBox.X),
				Y:      p.Float("IMAGE_PLACEMENT_Y", defaults.TemplateBox.Y),
				Width:  p.Float("IMAGE_PLACEMENT_WIDTH", defaults.TemplateBox.Width),
				Height: p.Float("IMAGE_PLACEMENT_HEIGHT", defaults.TemplateBox.Height),
			},
			PageSize: pdfimage.PageSize{
				Width:  p.Float("PAGE_WIDTH", defaults.PageSize.Width),
				Height: p.Float("PAGE_HEIGHT", defaults.PageSize.Height),
			},
			TopMargin: p.Float("PAGE_TOP_MARGIN", defaults.TopMargin),
		},
	}
	cfg.envErr = p.Err()

	return cfg
}
