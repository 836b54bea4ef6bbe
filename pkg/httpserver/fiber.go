package httpserver

import (
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/oklog/ulid/v2"
)

func InitFiberServer(appName string) *fiber.App {
	s := fiber.New(fiber.Config{
		AppName:      appName,
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
		ErrorHandler: errorHandler,
	})

	s.Use(recover.New(recover.Config{
		EnableStackTrace: true,
	}))
	s.Use(requestid.New(requestid.Config{
		Generator: func() string {
			return ulid.Make().String()
		},
	}))
	s.Use(cors.New())
	s.Use(healthcheck.New(healthcheck.Config{
		LivenessEndpoint:  "/manage/health",
		ReadinessEndpoint: "/manage/ready",
	}))

	return s
}

// errorHandler keeps error bodies in the same {"error": ...} shape the
// handlers use.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}
