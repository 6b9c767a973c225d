package route

import (
	"github.com/SeakMengs/PdfImage/internal/controller"
	"github.com/gin-gonic/gin"
)

func Index(r *gin.RouterGroup, ic *controller.IndexController) {
	r.GET("/health", ic.Health)
}
