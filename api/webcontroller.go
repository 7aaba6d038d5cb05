package api

import (
	"net/http"

	"randomdog/web"

	"github.com/gin-gonic/gin"
)

// RegisterWebRoutes serves the browser view at the site root.
// The page calls backendURL for images.
func RegisterWebRoutes(r *gin.Engine, backendURL string) error {
	tmpl, err := web.Templates()
	if err != nil {
		return err
	}
	r.SetHTMLTemplate(tmpl)
	r.GET("/", func(c *gin.Context) {
		c.HTML(http.StatusOK, web.IndexTemplate, gin.H{"BackendURL": backendURL})
	})
	return nil
}
