package controller

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/SeakMengs/PdfImage/internal/util"
	"github.com/gin-gonic/gin"
)

type IndexController struct {
	*baseController
}

func (ic IndexController) Health(ctx *gin.Context) {
	util.ResponseSuccess(ctx, gin.H{"status": "ok"})
}

// Serve the built web UI. Any path that is not a file in the static directory gets index.html
// so client side routes work on reload. Unknown api routes stay 404.
func (ic IndexController) StaticFallback(ctx *gin.Context) {
	cfg := ic.app.Config
	urlPath := ctx.Request.URL.Path

	if strings.HasPrefix(urlPath, cfg.APIPrefix+"/") || urlPath == cfg.APIPrefix {
		util.ResponseFailed(ctx, http.StatusNotFound, "Not found")
		return
	}

	if ctx.Request.Method != http.MethodGet && ctx.Request.Method != http.MethodHead {
		util.ResponseFailed(ctx, http.StatusNotFound, "Not found")
		return
	}

	if cfg.StaticDir == "" {
		util.ResponseFailed(ctx, http.StatusNotFound, "Not found")
		return
	}

	root, err := filepath.Abs(cfg.StaticDir)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Not found")
		return
	}

	// Clean against "/" first so the request cannot climb out of the static directory
	requested := filepath.Join(root, filepath.FromSlash(filepath.Clean("/"+urlPath)))
	if info, err := os.Stat(requested); err == nil && !info.IsDir() {
		ctx.File(requested)
		return
	}

	index := filepath.Join(root, "index.html")
	if _, err := os.Stat(index); err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Not found")
		return
	}

	ctx.File(index)
}
