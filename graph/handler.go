package graph

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/graphql-go/graphql"
)

type graphqlRequest struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// Handler serves the single GraphQL endpoint. The viewer identity comes
// from the auth middleware via locals; the client IP feeds the geo-based
// display price resolver.
func Handler(schema graphql.Schema) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req graphqlRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Cannot parse JSON",
			})
		}

		ctx := context.Background()
		if userID, ok := c.Locals("userID").(uint); ok {
			role, _ := c.Locals("role").(string)
			email, _ := c.Locals("email").(string)
			ctx = WithViewer(ctx, &Viewer{ID: userID, Email: email, Role: role})
		}
		ctx = WithClientIP(ctx, c.IP())

		result := graphql.Do(graphql.Params{
			Schema:         schema,
			RequestString:  req.Query,
			OperationName:  req.OperationName,
			VariableValues: req.Variables,
			Context:        ctx,
		})
		return c.JSON(result)
	}
}
