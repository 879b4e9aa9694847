// Package adapters mounts cmdoc documentation registries onto the web
// frameworks the generated applications are typically built with.
package adapters

import (
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"github.com/toyz/cmdoc/pkg/cmdoc"
)

// EchoAdapter serves a documentation registry from an Echo application
type EchoAdapter struct {
	registry *cmdoc.Registry
}

// NewEchoAdapter creates an adapter for the given registry
func NewEchoAdapter(registry *cmdoc.Registry) *EchoAdapter {
	return &EchoAdapter{registry: registry}
}

// Register mounts the documentation routes under prefix:
// GET <prefix> serves the full doc set, GET <prefix>/commands/:name a
// single command.
func (a *EchoAdapter) Register(e *echo.Echo, prefix string) {
	e.GET(prefix, a.handleIndex)
	e.GET(prefix+"/commands/:name", a.handleCommand)
}

func (a *EchoAdapter) handleIndex(c echo.Context) error {
	return c.JSON(http.StatusOK, a.registry.Set())
}

func (a *EchoAdapter) handleCommand(c echo.Context) error {
	name := c.Param("name")
	if unescaped, err := url.PathUnescape(name); err == nil {
		name = unescaped
	}

	cmd, ok := a.registry.Lookup(name)
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{
			"error": "unknown command: " + name,
		})
	}
	return c.JSON(http.StatusOK, cmd)
}
