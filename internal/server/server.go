package server

import (
	"strings"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/session"
	swagger "github.com/gofiber/swagger"
	"github.com/google/uuid"
	"github.com/localnerve/routinesdb/internal/config"
	"github.com/localnerve/routinesdb/internal/database"
	"github.com/localnerve/routinesdb/internal/handlers"
	"github.com/localnerve/routinesdb/internal/metrics"
	"github.com/localnerve/routinesdb/internal/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"gorm.io/gorm"

	_ "github.com/localnerve/routinesdb/docs/api" // Swagger docs
)

// Options tune the app for the environment it runs in
type Options struct {
	// AccessLog enables the request logger
	AccessLog bool
}

// Server is the assembled HTTP application
type Server struct {
	App      *fiber.App
	Registry *prometheus.Registry
	Metrics  *metrics.Metrics
	Sessions *session.Store
	storage  *database.SessionStorage
}

// New builds the application with every route mounted
func New(cfg *config.Config, db *gorm.DB, opts Options) *Server {
	app := fiber.New(fiber.Config{
		ErrorHandler:          handlers.ErrorHandler,
		DisableStartupMessage: true,
	})

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	domainMetrics := metrics.New(registry)

	storage := database.NewSessionStorage(db, cfg.SessionGCInterval)
	store := session.New(session.Config{
		Expiration:     cfg.SessionLifetime,
		Storage:        storage,
		KeyLookup:      "cookie:" + cfg.SessionCookieName,
		CookiePath:     "/",
		CookieSecure:   cfg.SessionCookieSecure,
		CookieHTTPOnly: true,
		CookieSameSite: fiber.CookieSameSiteLaxMode,
		KeyGenerator:   uuid.NewString,
	})

	// Global middleware
	app.Use(recover.New())
	if opts.AccessLog {
		app.Use(logger.New())
	}
	app.Use(compress.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Join(cfg.CORSOrigins, ","),
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept, X-Api-Version",
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
	}))

	// Prometheus metrics
	prom := fiberprometheus.NewWithRegistry(registry, "routinesdb", "http", "", nil)
	prom.RegisterAt(app, "/metrics")
	app.Use(prom.Middleware)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API routes under /api
	api := app.Group("/api")
	api.Use(middleware.VersionMiddleware())

	authHandler := &handlers.AuthHandler{DB: db, Store: store, Config: cfg, Metrics: domainMetrics}
	userDataHandler := &handlers.UserDataHandler{DB: db}
	routineHandler := &handlers.RoutineHandler{DB: db}
	entryHandler := &handlers.RoutineExerciseHandler{DB: db, Metrics: domainMetrics}
	exerciseHandler := &handlers.ExerciseHandler{DB: db}

	// Session routes
	api.Post("/register", authHandler.Register)
	api.Post("/login", authHandler.Login)
	api.Post("/logout", authHandler.Logout)
	api.Get("/check-auth", authHandler.CheckAuth)

	// Everything below requires a live session
	auth := middleware.RequireAuth(store, db)

	api.Put("/account/password", auth, authHandler.ChangePassword)
	api.Delete("/account", auth, authHandler.DeleteAccount)
	api.Get("/user-data", auth, userDataHandler.GetUserData)

	api.Get("/routines", auth, routineHandler.ListRoutines)
	api.Post("/routines", auth, routineHandler.CreateRoutine)
	api.Get("/routines/:id", auth, routineHandler.GetRoutine)
	api.Put("/routines/:id", auth, routineHandler.UpdateRoutine)
	api.Delete("/routines/:id", auth, routineHandler.DeleteRoutine)

	api.Get("/routines/:id/exercises", auth, entryHandler.ListEntries)
	api.Post("/routines/:id/exercises", auth, entryHandler.AddEntry)
	api.Put("/routines/:id/exercises/order", auth, entryHandler.ReorderEntries)
	api.Get("/routine-exercises/:id", auth, entryHandler.GetEntry)
	api.Put("/routine-exercises/:id", auth, entryHandler.UpdateEntry)
	api.Delete("/routine-exercises/:id", auth, entryHandler.RemoveEntry)

	api.Get("/exercises", auth, exerciseHandler.ListExercises)
	api.Post("/exercises", auth, exerciseHandler.CreateExercise)
	api.Get("/exercises/:id", auth, exerciseHandler.GetExercise)
	api.Get("/muscle-groups", auth, exerciseHandler.MuscleGroups)
	api.Get("/equipment", auth, exerciseHandler.Equipment)

	// 404 handler
	app.Use(handlers.NotFoundHandler)

	return &Server{
		App:      app,
		Registry: registry,
		Metrics:  domainMetrics,
		Sessions: store,
		storage:  storage,
	}
}

// Listen serves on the configured port until Shutdown
func (s *Server) Listen(port string) error {
	return s.App.Listen(":" + port)
}

// Shutdown stops accepting requests, waits up to timeout for in-flight ones,
// then stops the session cleanup.
func (s *Server) Shutdown(timeout time.Duration) error {
	err := s.App.ShutdownWithTimeout(timeout)
	if cerr := s.storage.Close(); err == nil {
		err = cerr
	}
	return err
}
