package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/aurasalon/salon-system/internal/api/handler"
	"github.com/aurasalon/salon-system/internal/api/middleware"
	"github.com/aurasalon/salon-system/internal/core/domain"
	"github.com/aurasalon/salon-system/internal/core/ports"
	"github.com/aurasalon/salon-system/internal/core/service"
	"github.com/aurasalon/salon-system/internal/infrastructure/config"
	mongostore "github.com/aurasalon/salon-system/internal/infrastructure/db/mongo"
	redisstore "github.com/aurasalon/salon-system/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The notifier is built by main, which owns the worker lifecycle.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, notifier ports.LeadNotifier, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("salon"))

	// --- Dependencies ---
	accountRepo := mongostore.NewAccountRepository(db)
	leadRepo := mongostore.NewLeadRepository(db)
	sessionStore := redisstore.NewSessionStore(rdb)
	activityLog := redisstore.NewActivityLog(rdb)

	policy := domain.RolePolicy{
		AdminDomain:   cfg.AdminEmailDomain,
		ManagerDomain: cfg.ManagerEmailDomain,
	}

	accountService := service.NewAccountService(accountRepo, leadRepo, policy, log)
	leadService := service.NewLeadService(leadRepo, notifier, cfg.EnforceTransitions, log)
	sessionService := service.NewSessionService(accountService, sessionStore, cfg.SessionSecret, cfg.SessionTTL, log)

	authHandler := handler.NewAuthHandler(accountService, sessionService)
	accountHandler := handler.NewAccountHandler(accountService, sessionService)
	leadHandler := handler.NewLeadHandler(leadService, sessionService, activityLog)
	customerHandler := handler.NewCustomerHandler(leadService, sessionService)

	e.Use(middleware.Session(sessionService))

	// --- Public routes ---
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"message": "welcome to the salon"})
	})
	e.POST("/signup", authHandler.Signup)
	e.POST("/login", authHandler.Login)
	e.GET("/logout", authHandler.Logout)
	e.POST("/contact_us", leadHandler.Contact)

	// --- Administrator routes ---
	adminOnly := middleware.RequireRole(domain.RoleAdmin)
	e.GET("/login/admin", accountHandler.Dashboard, adminOnly)
	e.POST("/admin/add", accountHandler.Add, adminOnly)
	e.POST("/admin/update", accountHandler.Update, adminOnly)
	e.POST("/admin/delete", accountHandler.Delete, adminOnly)

	// --- Manager routes ---
	managerOnly := middleware.RequireRole(domain.RoleManager)
	e.GET("/login/manager", leadHandler.Dashboard, managerOnly)
	e.GET("/manager/all_leads", leadHandler.List, managerOnly)
	e.POST("/manager/all_leads/add", leadHandler.Add, managerOnly)
	e.POST("/manager/all_leads/update", leadHandler.Update, managerOnly)
	e.POST("/manager/all_leads/delete", leadHandler.Delete, managerOnly)

	// --- Customer routes ---
	customerOnly := middleware.RequireRole(domain.RoleCustomer)
	e.GET("/login/user", customerHandler.Landing, customerOnly)
	e.POST("/login/user/contact_us", customerHandler.Contact, customerOnly)
	e.GET("/your_details", customerHandler.Details, customerOnly)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
