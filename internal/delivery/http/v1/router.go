package v1

import (
	"net/http"
	"time"

	"job-portal-backend/config"
	"job-portal-backend/internal/delivery/http/middleware"
	"job-portal-backend/internal/delivery/http/response"
	"job-portal-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type RouterDeps struct {
	AuthUC      domain.AuthUsecase
	CandidateUC domain.CandidateUsecase
	EmployerUC  domain.EmployerUsecase
	DashboardUC domain.DashboardUsecase
	Config      *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())

	api := r.Group("/api")

	// Health Check
	api.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	loginLimiter := middleware.RateLimitMiddleware(middleware.LoginRateLimitConfig(
		deps.Config.RateLimitLoginThreshold,
		time.Duration(deps.Config.RateLimitWindowSeconds)*time.Second,
	))

	// Protected routes
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(deps.AuthUC))
	{
		NewAuthHandler(api, protected, deps.AuthUC, loginLimiter)
		NewProfileHandler(protected, deps.CandidateUC, deps.EmployerUC)
		NewDashboardHandler(protected, deps.DashboardUC)
	}

	return r
}
