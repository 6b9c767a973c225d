package route

import (
	appcontext "github.com/SeakMengs/PdfImage/internal/app_context"
	"github.com/SeakMengs/PdfImage/internal/controller"
	"github.com/SeakMengs/PdfImage/internal/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter builds the gin engine with every route of the service.
func NewRouter(app *appcontext.Application) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	_middleware := middleware.NewMiddleware(app)
	r.Use(_middleware.RequestLogger)

	// docs: https://github.com/gin-contrib/cors?tab=readme-ov-file#using-defaultconfig-as-start-point
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = app.Config.Cors.AllowOrigins
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "X-Requested-With", "Accept"}
	corsConfig.ExposeHeaders = []string{"Content-Disposition", "X-Request-ID"}
	r.Use(cors.New(corsConfig))

	_controller := controller.NewController(app)

	rApi := r.Group(app.Config.APIPrefix)
	Index(rApi, _controller.Index)
	Pdf(rApi, _controller.Pdf, _middleware)

	// SPA fallback, must come after api routes
	r.NoRoute(_controller.Index.StaticFallback)

	return r
}
