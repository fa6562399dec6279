package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/campushq/student-admin-api/internal/api/handler"
	"github.com/campushq/student-admin-api/internal/core/service"
	mongodb "github.com/campushq/student-admin-api/internal/infrastructure/db/mongo"
	redisdb "github.com/campushq/student-admin-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The store handles are constructed once at startup and passed in; nothing
// here owns their lifecycle.
func NewRouter(db *mongo.Database, rdb *redis.Client, corsOrigin string, audit service.AuditSink, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{corsOrigin},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
	}))
	e.Use(echoprometheus.NewMiddleware("student_admin"))

	// --- Dependencies ---
	hasher := service.NewBcryptHasher()
	throttle := redisdb.NewLoginThrottle(rdb)

	authRepo := mongodb.NewAuthRepository(db)
	authService := service.NewAuthService(authRepo, hasher, throttle, log)
	authHandler := handler.NewAuthHandler(authService)

	userService := service.NewUserService(authRepo, audit, log)
	userHandler := handler.NewUserHandler(userService)

	studentRepo := mongodb.NewStudentRepository(db)
	studentService := service.NewStudentService(studentRepo, log)
	studentHandler := handler.NewStudentHandler(studentService)

	// --- Auth routes ---
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)

	// --- User administration routes ---
	e.GET("/users", userHandler.List)
	e.PUT("/users/:id/block", userHandler.Block)
	e.PUT("/users/:id/unblock", userHandler.Unblock)
	e.PUT("/users/:id/role", userHandler.UpdateRole)

	// --- Student record routes ---
	e.POST("/students", studentHandler.Create)
	e.GET("/students", studentHandler.List)
	e.GET("/students/:id", studentHandler.Get)
	e.PUT("/students/:id", studentHandler.Update)
	e.DELETE("/students/:id", studentHandler.Delete)

	// --- Observability ---
	healthHandler := handler.NewHealthHandler(db, rdb)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
