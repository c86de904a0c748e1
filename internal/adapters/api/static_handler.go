package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"lotteryfrontend.app/internal/core/site"
)

// setupStaticFiles configures static file serving
func (s *HTTPServerAdapter) setupStaticFiles() {
	s.router.GET("/", s.getIndex)
	s.router.HEAD("/", s.getIndex)

	s.router.GET("/assets/*filepath", s.getAsset)
	s.router.HEAD("/assets/*filepath", s.getAsset)

	s.router.NoRoute(s.getStaticFile)
}

// getIndex handles GET / requests
func (s *HTTPServerAdapter) getIndex(c *gin.Context) {
	asset, err := s.siteUseCase.Index(c.Request.Context())
	if err != nil {
		s.handleError(c, err)
		return
	}
	s.serveAsset(c, asset)
}

// getAsset handles GET /assets/*filepath requests
func (s *HTTPServerAdapter) getAsset(c *gin.Context) {
	asset, err := s.siteUseCase.Asset(c.Request.Context(), site.AssetRequest{
		Base: site.AssetsDir,
		Path: c.Param("filepath"),
	})
	if err != nil {
		s.handleError(c, err)
		return
	}
	s.serveAsset(c, asset)
}

// getStaticFile serves every GET or HEAD path no other route matched
func (s *HTTPServerAdapter) getStaticFile(c *gin.Context) {
	if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Not found"})
		return
	}

	asset, err := s.siteUseCase.Asset(c.Request.Context(), site.AssetRequest{
		Path: c.Request.URL.Path,
	})
	if err != nil {
		s.handleError(c, err)
		return
	}
	s.serveAsset(c, asset)
}

// serveAsset streams the file with Range and conditional request support.
// http.ServeContent keeps the Content-Type we set instead of sniffing.
func (s *HTTPServerAdapter) serveAsset(c *gin.Context, asset *site.Asset) {
	defer asset.Close()

	c.Header("Content-Type", asset.ContentType)
	c.Header("X-Content-Type-Options", "nosniff")
	http.ServeContent(c.Writer, c.Request, asset.Name, asset.ModTime, asset.Content)
}
