package v1

import (
	"log/slog"
	"net/http"
	"standeal-backend/config"
	"standeal-backend/internal/delivery/http/middleware"
	"standeal-backend/internal/domain"
	"standeal-backend/internal/usecase"
	"standeal-backend/pkg/apperror"
	"standeal-backend/pkg/security"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	CompanyUC      domain.CompanyUsecase
	QuoteUC        domain.QuoteUsecase
	ContactUC      domain.ContactUsecase
	StatusUC       domain.StatusUsecase
	HealthUC       usecase.HealthUsecase
	RateLimiter    *middleware.RateLimiter
	SecurityLogger *security.SecurityLogger
	Logger         *slog.Logger
	Config         *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	// Only these peers may set the client address through X-Forwarded-For
	if err := r.SetTrustedProxies(deps.Config.TrustedProxies); err != nil {
		deps.Logger.Warn("Invalid TRUSTED_PROXIES, forwarded addresses are ignored", "error", err)
		_ = r.SetTrustedProxies(nil)
	}

	window := time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.CORSOrigins)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler(deps.Logger))

	r.NoRoute(func(c *gin.Context) {
		_ = c.Error(apperror.NotFound("Resursa solicitată nu există"))
	})

	api := r.Group("/api")
	api.Use(deps.RateLimiter.Middleware(middleware.DefaultRateLimitConfig(deps.Config.RateLimitGlobalThreshold, window)))

	api.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Standeal.md Transport Services API", "status": "active"})
	})
	NewHealthHandler(api, deps.HealthUC)

	// Swagger
	api.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Public routes
	intake := deps.RateLimiter.Middleware(middleware.IntakeRateLimitConfig(deps.Config.RateLimitIntakeThreshold, window))
	NewCompanyHandler(api, deps.CompanyUC)
	NewStatusHandler(api, deps.StatusUC)

	// Admin routes
	admin := api.Group("")
	admin.Use(middleware.AdminAuthMiddleware(deps.Config.AdminJWTSecret, deps.SecurityLogger))
	{
		NewQuoteHandler(api, admin, intake, deps.QuoteUC)
		NewContactHandler(api, admin, intake, deps.ContactUC)
	}

	return r
}
