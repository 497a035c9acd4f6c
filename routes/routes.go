package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/graphql-go/graphql"
	"github.com/lumicoach/coaching-api/controllers"
	"github.com/lumicoach/coaching-api/graph"
	"github.com/lumicoach/coaching-api/middleware"
)

// Setup mounts the GraphQL endpoint and the few REST routes that sit
// beside it.
func Setup(app *fiber.App, schema graphql.Schema) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	app.Post("/graphql", middleware.WithViewer(), graph.Handler(schema))

	app.Post("/uploads", middleware.Protected(), controllers.UploadMedia)
}
