package adapters

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/toyz/cmdoc/pkg/cmdoc"
)

// FiberAdapter serves a documentation registry from a Fiber application
type FiberAdapter struct {
	registry *cmdoc.Registry
}

// NewFiberAdapter creates an adapter for the given registry
func NewFiberAdapter(registry *cmdoc.Registry) *FiberAdapter {
	return &FiberAdapter{registry: registry}
}

// Register mounts the documentation routes under prefix:
// GET <prefix> serves the full doc set, GET <prefix>/commands/:name a
// single command.
func (a *FiberAdapter) Register(app *fiber.App, prefix string) {
	group := app.Group(prefix)
	group.Get("", a.handleIndex)
	group.Get("/commands/:name", a.handleCommand)
}

func (a *FiberAdapter) handleIndex(c *fiber.Ctx) error {
	return c.JSON(a.registry.Set())
}

func (a *FiberAdapter) handleCommand(c *fiber.Ctx) error {
	name := c.Params("name")
	if unescaped, err := url.PathUnescape(name); err == nil {
		name = unescaped
	}

	cmd, ok := a.registry.Lookup(name)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "unknown command: " + name,
		})
	}
	return c.JSON(cmd)
}
