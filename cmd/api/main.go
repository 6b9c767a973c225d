package main

import (
	appcontext "github.com/SeakMengs/PdfImage/internal/app_context"
	"github.com/SeakMengs/PdfImage/internal/config"
	"github.com/SeakMengs/PdfImage/internal/env"
	"github.com/SeakMengs/PdfImage/internal/route"
	"github.com/SeakMengs/PdfImage/internal/util"
	"github.com/gin-gonic/gin"
)

// this function run before main
func init() {
	env.LoadEnv(".env")
}

func main() {
	cfg := config.GetConfig()

	logger := util.NewLogger(cfg.IsProduction())
	logger.Debugf("Configuration: %+v \n", cfg)

	if err := cfg.Validate(); err != nil {
		logger.Fatalf("Invalid configuration: %s", util.GenerateErrorMessagesAsString(err))
	}

	if cfg.IsProduction() {
		logger.Info("Running in production mode")
		gin.SetMode(gin.ReleaseMode)
	}

	app := appcontext.NewApplication(&cfg, logger)
	r := route.NewRouter(app)

	logger.Infof("%s running at http://localhost:%s%s", util.GetAppName(), cfg.Port, cfg.APIPrefix)
	logger.Infow("Template placement", "template", cfg.PDF.TemplatePath, "box", cfg.PDF.TemplateBox)

	if err := r.Run("0.0.0.0:" + cfg.Port); err != nil {
		logger.Panicf("Error running server: %v \n", err)
	}
}
