package http

import (
	nethttp "net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/artem13815/asemic/api/http/handlers"
	"github.com/artem13815/asemic/api/http/presenter"
	"github.com/artem13815/asemic/api/http/web"
)

// FilesRoute is where saved SVGs are downloaded from.
const FilesRoute = "/api/v1/files"

// Handlers bundles everything Register mounts.
type Handlers struct {
	Health   *handlers.HealthHandler
	Options  *handlers.OptionsHandler
	Generate *handlers.GenerateHandler
	Files    *handlers.FilesHandler
	History  *handlers.HistoryHandler
	// GenerateRate caps POST /generate per client per minute; 0 disables the limit.
	GenerateRate int
}

// Register wires all HTTP routes onto given Fiber app.
func Register(app *fiber.App, h Handlers) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", h.Health.Health)
	v1.Get("/ready", h.Health.Ready)

	v1.Get("/options", h.Options.Options)
	v1.Get("/surprise", h.Options.Surprise)

	gen := []fiber.Handler{}
	if h.GenerateRate > 0 {
		gen = append(gen, limiter.New(limiter.Config{
			Max:        h.GenerateRate,
			Expiration: time.Minute,
			LimitReached: func(c *fiber.Ctx) error {
				return presenter.Error(c, fiber.StatusTooManyRequests, "too many generations, try again in a minute")
			},
		}))
	}
	v1.Post("/generate", append(gen, h.Generate.Generate)...)
	v1.Get("/files/:id", h.Files.Download)
	v1.Get("/generations", h.History.List)

	// Single-page UI
	app.Use("/", filesystem.New(filesystem.Config{
		Root:   nethttp.FS(web.FS()),
		Index:  "index.html",
		MaxAge: 0,
	}))
}
