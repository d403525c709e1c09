// Package api assembles the Echo application: repositories, services,
// handlers, middleware, and routes.
package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	driver "go.mongodb.org/mongo-driver/mongo"

	"github.com/weblibrary/library-system/internal/api/handler"
	"github.com/weblibrary/library-system/internal/api/metrics"
	"github.com/weblibrary/library-system/internal/api/middleware"
	"github.com/weblibrary/library-system/internal/core/domain"
	"github.com/weblibrary/library-system/internal/core/ports"
	"github.com/weblibrary/library-system/internal/core/service"
	"github.com/weblibrary/library-system/internal/infrastructure/config"
	mongodb "github.com/weblibrary/library-system/internal/infrastructure/db/mongo"
	redisdb "github.com/weblibrary/library-system/internal/infrastructure/db/redis"
)

// Dependencies carries everything the router needs that is created at boot.
type Dependencies struct {
	Config      *config.Config
	Logger      zerolog.Logger
	MongoClient *driver.Client
	MongoDB     *driver.Database
	Redis       *redis.Client
	Mailer      ports.Mailer
	Store       ports.FileStore
}

// NewRouter wires repositories, services, and handlers into a configured
// Echo instance. The caller owns startup and shutdown.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(echoprometheus.NewMiddleware("library"))

	// Repositories.
	userRepo := mongodb.NewUserRepository(deps.MongoDB)
	categoryRepo := mongodb.NewCategoryRepository(deps.MongoDB)
	authorRepo := mongodb.NewAuthorRepository(deps.MongoDB)
	bookRepo := mongodb.NewBookRepository(deps.MongoDB)
	fileRepo := mongodb.NewFileRepository(deps.MongoDB)
	revoker := redisdb.NewRevocationList(deps.Redis, deps.Config.JWTTTL)

	// Services.
	hasher := service.NewPasswordHasher(deps.Config.BcryptCost)
	tokens := service.NewTokenService(deps.Config.JWTSecret, deps.Config.JWTTTL)
	mailer := metrics.NewInstrumentedMailer(deps.Mailer)
	authSvc := service.NewAuthService(userRepo, tokens, mailer, hasher, deps.Logger)
	userSvc := service.NewUserService(userRepo, fileRepo, deps.Store, revoker, deps.Logger)
	categorySvc := service.NewCategoryService(categoryRepo, userRepo, deps.Logger)
	authorSvc := service.NewAuthorService(authorRepo, deps.Logger)
	bookSvc := service.NewBookService(bookRepo, fileRepo, deps.Store, deps.Logger)

	// Handlers.
	authHandler := handler.NewAuthHandler(authSvc, deps.Logger)
	userHandler := handler.NewUserHandler(userSvc, deps.Logger)
	categoryHandler := handler.NewCategoryHandler(categorySvc, deps.Logger)
	authorHandler := handler.NewAuthorHandler(authorSvc, deps.Logger)
	bookHandler := handler.NewBookHandler(bookSvc, deps.Logger)
	healthHandler := handler.NewHealthHandler(deps.MongoClient, deps.Redis)

	authenticated := middleware.Auth(tokens, userRepo, revoker)

	// Public surface.
	e.GET("/health", healthHandler.Live)
	e.GET("/health/ready", healthHandler.Ready)
	e.GET("/metrics", echoprometheus.NewHandler())

	auth := e.Group("/auth")
	auth.POST("/signup", authHandler.Signup)
	auth.POST("/signin", authHandler.Signin)
	auth.POST("/activate-account", authHandler.Activate)
	auth.POST("/forgot-password", authHandler.ForgotPassword)
	auth.POST("/reset-password", authHandler.ResetPassword)

	// Protected surface. Every route carries the exact module/action pair it
	// exercises so the role catalog is enforced uniformly.
	users := e.Group("/users", authenticated)
	users.GET("", userHandler.List, middleware.Permission(domain.ModuleUsers, domain.ActionRead))
	users.GET("/:id", userHandler.Get, middleware.Permission(domain.ModuleUsers, domain.ActionRead))
	users.PUT("/:id", userHandler.Update, middleware.Permission(domain.ModuleUsers, domain.ActionUpdate))
	users.DELETE("/:id", userHandler.Delete, middleware.Permission(domain.ModuleUsers, domain.ActionDelete))
	users.POST("/:id/avatar", userHandler.Avatar, middleware.Permission(domain.ModuleUsers, domain.ActionUpdate))

	categories := e.Group("/categories", authenticated)
	categories.POST("/create", categoryHandler.Create, middleware.Permission(domain.ModuleCategories, domain.ActionCreate))
	categories.GET("", categoryHandler.List, middleware.Permission(domain.ModuleCategories, domain.ActionRead))
	// Autocomplete feeds the create/edit forms, so it carries the create
	// permission rather than read.
	categories.GET("/autocomplete", categoryHandler.Autocomplete, middleware.Permission(domain.ModuleCategories, domain.ActionCreate))
	categories.PUT("/:id", categoryHandler.Update, middleware.Permission(domain.ModuleCategories, domain.ActionUpdate))
	categories.DELETE("/:id", categoryHandler.Delete, middleware.Permission(domain.ModuleCategories, domain.ActionDelete))

	authors := e.Group("/authors", authenticated)
	authors.POST("/create", authorHandler.Create, middleware.Permission(domain.ModuleAuthors, domain.ActionCreate))
	authors.GET("", authorHandler.List, middleware.Permission(domain.ModuleAuthors, domain.ActionRead))
	authors.GET("/autocomplete", authorHandler.Autocomplete, middleware.Permission(domain.ModuleAuthors, domain.ActionCreate))
	authors.PUT("/:id", authorHandler.Update, middleware.Permission(domain.ModuleAuthors, domain.ActionUpdate))
	authors.DELETE("/:id", authorHandler.Delete, middleware.Permission(domain.ModuleAuthors, domain.ActionDelete))

	books := e.Group("/books", authenticated)
	books.POST("/create", bookHandler.Create, middleware.Permission(domain.ModuleBooks, domain.ActionCreate))
	books.GET("", bookHandler.List, middleware.Permission(domain.ModuleBooks, domain.ActionRead))
	books.DELETE("/:id", bookHandler.Delete, middleware.Permission(domain.ModuleBooks, domain.ActionDelete))

	return e
}
