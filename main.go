package main

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/lumicoach/coaching-api/cron"
	"github.com/lumicoach/coaching-api/db"
	"github.com/lumicoach/coaching-api/graph"
	"github.com/lumicoach/coaching-api/redis"
	"github.com/lumicoach/coaching-api/routes"
)

func main() {
	app := fiber.New()
	db.Init()
	redis.InitRedis()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	schema, err := graph.BuildSchema()
	if err != nil {
		log.Fatal("Failed to build GraphQL schema: ", err)
	}

	routes.Setup(app, schema)
	cron.StartCronJobs()

	if err := app.Listen(":8000"); err != nil {
		log.Fatal(err)
	}
}
