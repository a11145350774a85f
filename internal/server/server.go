package server

import (
	"github.com/gofiber/fiber/v2"

	"github.com/taskflow/taskflow/internal/auth"
	"github.com/taskflow/taskflow/internal/config"
	"github.com/taskflow/taskflow/internal/fieldcipher"
	"github.com/taskflow/taskflow/internal/repository"
)

// Server wires the auth core, repositories, and HTTP handlers into a
// fiber application.
type Server struct {
	app     *fiber.App
	cfg     *config.Config
	repos   repository.Manager
	authn   *auth.Authenticator
	tokens  *auth.TokenService
	cookies *auth.CookieManager
	guard   *auth.Guard
	cipher  *fieldcipher.Cipher
	logger  auth.Logger
}

// New builds the server. It fails when the signing secret is missing so
// the process never runs without one.
func New(cfg *config.Config, repos repository.Manager, logger auth.Logger) (*Server, error) {
	if logger == nil {
		logger = auth.DefaultLogger()
	}

	tokens, err := auth.NewTokenService([]byte(cfg.JWTSecret), logger)
	if err != nil {
		return nil, err
	}

	cipher, err := fieldcipher.New(cfg.AESSecretKey)
	if err != nil {
		return nil, err
	}

	cookies := auth.NewCookieManager(cfg.IsProduction(), tokens.TTL())
	resolver := auth.NewResolver(tokens, cookies, logger)

	s := &Server{
		cfg:     cfg,
		repos:   repos,
		authn:   auth.NewAuthenticator(repos.Users(), tokens, logger),
		tokens:  tokens,
		cookies: cookies,
		guard:   auth.NewGuard(resolver),
		cipher:  cipher,
		logger:  logger,
	}

	s.app = fiber.New(fiber.Config{
		AppName:               "TaskFlow API",
		DisableStartupMessage: true,
		ErrorHandler:          s.errorHandler,
	})

	s.registerRoutes()

	return s, nil
}

// App exposes the fiber application, mainly for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen starts serving on the given address.
func (s *Server) Listen(addr string) error {
	return s.app.Listen(addr)
}

// Shutdown drains in-flight requests and stops the listener.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

func (s *Server) registerRoutes() {
	s.app.Get("/api/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"success": true,
			"message": "TaskFlow API is running",
		})
	})

	authGroup := s.app.Group("/api/auth")
	authGroup.Post("/register", s.Register)
	authGroup.Post("/login", s.Login)
	authGroup.Post("/logout", s.Logout)
	authGroup.Get("/me", s.guard.RequireAuth(), s.Me)

	tasks := s.app.Group("/api/tasks", s.guard.RequireAuth())
	tasks.Get("/", s.ListTasks)
	tasks.Post("/", s.CreateTask)
	tasks.Get("/:id", s.GetTask)
	tasks.Put("/:id", s.UpdateTask)
	tasks.Delete("/:id", s.DeleteTask)

	admin := s.app.Group("/api/admin", s.guard.RequireAuth(), s.guard.RequireRole(auth.RoleAdmin))
	admin.Get("/users", s.AdminListUsers)
	admin.Get("/tasks", s.AdminListTasks)
	admin.Delete("/tasks/:id", s.AdminDeleteTask)
	admin.Put("/users/:id/role", s.AdminUpdateUserRole)
}

// errorHandler keeps unexpected failures inside the envelope without
// leaking internals.
func (s *Server) errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	if code >= fiber.StatusInternalServerError {
		s.logger.Error("request failed", "method", c.Method(), "path", c.Path(), "error", err)
		return respondError(c, code, "Internal server error")
	}

	return respondError(c, code, err.Error())
}
