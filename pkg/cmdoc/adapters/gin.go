package adapters

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/toyz/cmdoc/pkg/cmdoc"
)

// GinAdapter serves a documentation registry from a Gin application
type GinAdapter struct {
	registry *cmdoc.Registry
}

// NewGinAdapter creates an adapter for the given registry
func NewGinAdapter(registry *cmdoc.Registry) *GinAdapter {
	return &GinAdapter{registry: registry}
}

// Register mounts the documentation routes under prefix:
// GET <prefix> serves the full doc set, GET <prefix>/commands/:name a
// single command.
func (a *GinAdapter) Register(router gin.IRouter, prefix string) {
	group := router.Group(prefix)
	group.GET("", a.handleIndex)
	group.GET("/commands/:name", a.handleCommand)
}

func (a *GinAdapter) handleIndex(c *gin.Context) {
	c.JSON(http.StatusOK, a.registry.Set())
}

func (a *GinAdapter) handleCommand(c *gin.Context) {
	name := c.Param("name")
	if unescaped, err := url.PathUnescape(name); err == nil {
		name = unescaped
	}

	cmd, ok := a.registry.Lookup(name)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown command: " + name})
		return
	}
	c.JSON(http.StatusOK, cmd)
}
