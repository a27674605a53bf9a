package v1

import (
	"net/http"
	"time"

	"contact-mail-backend/config"
	_ "contact-mail-backend/docs" // Important for Swagger
	"contact-mail-backend/internal/delivery/http/middleware"
	"contact-mail-backend/internal/delivery/http/response"
	"contact-mail-backend/internal/domain"
	"contact-mail-backend/internal/usecase"
	"contact-mail-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	ContactUC domain.ContactUsecase
	HealthUC  usecase.HealthUsecase
	Config    *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	if err := r.SetTrustedProxies(deps.Config.TrustedProxies); err != nil {
		logger.Log.Warn("Invalid TRUSTED_PROXIES, trusting none", "error", err)
		_ = r.SetTrustedProxies(nil)
	}

	// Global Middlewares
	r.Use(middleware.RequestID())
	r.Use(gin.Logger()) // Use standard Gin logger
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.Recovery())

	api := r.Group("")
	api.Use(middleware.SecurityHeadersMiddleware(deps.Config.Production))

	// Health Check
	api.GET("/health", func(c *gin.Context) {
		var data map[string]string
		if deps.HealthUC != nil {
			data = deps.HealthUC.Check(c.Request.Context())
		}
		response.Success(c, http.StatusOK, "System operational", data)
	})

	// Rate limit runs before CORS so rejected origins still count.
	window := time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second
	NewContactHandler(api, deps.ContactUC,
		middleware.RateLimitMiddleware(middleware.MailRateLimitConfig(deps.Config.RateLimitMaxRequests, window)),
		middleware.CORSMiddleware(deps.Config.AllowList),
	)

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
