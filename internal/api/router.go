package api

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/jackc/pgx/v5/pgxpool"

	swagger "github.com/go-swagno/swagno-fiber/swagger"

	"github.com/elifarslancelik/GARLIC-Q/internal/api/docs"
	"github.com/elifarslancelik/GARLIC-Q/internal/api/handler"
	"github.com/elifarslancelik/GARLIC-Q/internal/api/middleware"
)

type Dependencies struct {
	Enroller      handler.Enroller
	Authenticator handler.Authenticator
	Generation    handler.GenerationService
	DB            *pgxpool.Pool
}

type Router struct {
	app         *fiber.App
	logger      *slog.Logger
	deps        *Dependencies
	rateLimiter *middleware.RateLimiter
}

func NewRouter(logger *slog.Logger, deps *Dependencies) *Router {
	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler(logger),
		AppName:      "GARLIC-Q API",
		BodyLimit:    12 * 1024 * 1024,
	})

	return &Router{
		app:    app,
		logger: logger,
		deps:   deps,
	}
}

func (r *Router) Setup() {
	// Global middlewares
	r.app.Use(requestid.New())
	r.app.Use(middleware.Recover(r.logger))
	r.app.Use(middleware.Logger(r.logger))
	r.app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))

	// Swagger documentation
	sw := docs.NewSwagger()
	swagger.SwaggerHandler(r.app, sw.MustToJson())

	// Health check endpoints
	var pinger handler.Pinger
	if r.deps != nil && r.deps.DB != nil {
		pinger = r.deps.DB
	}
	healthHandler := handler.NewHealthHandler(pinger)
	r.app.Get("/health", healthHandler.Health)
	r.app.Get("/ready", healthHandler.Ready)

	if r.deps == nil {
		return
	}

	v1 := r.app.Group("/api/v1")

	// Rate limiting (per client IP)
	r.rateLimiter = middleware.NewRateLimiter(middleware.DefaultRateLimiterConfig())
	v1.Use(r.rateLimiter.Handler())

	// Face authentication routes
	authHandler := handler.NewAuthHandler(r.deps.Enroller, r.deps.Authenticator, r.logger)
	users := v1.Group("/users")
	users.Post("/signup", authHandler.Signup)
	users.Post("/login", authHandler.Login)

	// Code and chat generation routes
	if r.deps.Generation != nil {
		generateHandler := handler.NewGenerateHandler(r.deps.Generation, r.logger)

		code := v1.Group("/code")
		code.Post("/generate", generateHandler.GenerateCode)
		code.Post("/translate", generateHandler.TranslateCode)
		code.Get("/languages", generateHandler.Languages)

		chat := v1.Group("/chat")
		chat.Post("/generate", generateHandler.GenerateChat)
	}
}

func (r *Router) App() *fiber.App {
	return r.app
}

func (r *Router) Listen(addr string) error {
	return r.app.Listen(addr)
}

func (r *Router) Shutdown() error {
	if r.rateLimiter != nil {
		r.rateLimiter.Stop()
	}
	return r.app.Shutdown()
}
