package v1

import (
	"net/http"

	"job-portal-backend/internal/delivery/http/response"
	"job-portal-backend/internal/domain"
	"job-portal-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUC domain.AuthUsecase
}

func NewAuthHandler(public *gin.RouterGroup, protected *gin.RouterGroup, authUC domain.AuthUsecase, loginLimiter gin.HandlerFunc) {
	handler := &AuthHandler{authUC: authUC}

	// Public Routes
	publicAuth := public.Group("/auth")
	{
		publicAuth.POST("/register", handler.Register)
		publicAuth.POST("/login", loginLimiter, handler.Login)
	}

	// Protected Routes
	protectedAuth := protected.Group("/auth")
	{
		protectedAuth.POST("/logout", handler.Logout)
		protectedAuth.GET("/me", handler.Me)
	}
}

type RegisterRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required"`
	AccountKind string `json:"accountKind" binding:"required,oneof=candidate employer"`
	// Registration-time profile seed fields, all optional
	FirstName              string `json:"firstName"`
	LastName               string `json:"lastName"`
	CompanyName            string `json:"companyName"`
	HiringManagerFirstName string `json:"hiringManagerFirstName"`
	HiringManagerLastName  string `json:"hiringManagerLastName"`
	HiringManagerPhone     string `json:"hiringManagerPhone"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register creates an account plus its empty owned profile. 409 when the
// email is taken, 400 for a weak password or malformed body.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	account, err := h.authUC.Register(c.Request.Context(), domain.RegisterInput{
		Email:                  req.Email,
		Password:               req.Password,
		Kind:                   domain.AccountKind(req.AccountKind),
		FirstName:              req.FirstName,
		LastName:               req.LastName,
		CompanyName:            req.CompanyName,
		HiringManagerFirstName: req.HiringManagerFirstName,
		HiringManagerLastName:  req.HiringManagerLastName,
		HiringManagerPhone:     req.HiringManagerPhone,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Registration successful", gin.H{"user": account})
}

// Login verifies credentials and issues a session token. The failure
// message never distinguishes an unknown email from a wrong password.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	account, tokenString, err := h.authUC.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Login successful", gin.H{
		"token": tokenString,
		"user":  account,
	})
}

// Logout revokes the current session. Idempotent: a second call with the
// same token still returns 200.
func (h *AuthHandler) Logout(c *gin.Context) {
	tokenString := c.GetString("Token")
	if err := h.authUC.Logout(c.Request.Context(), tokenString); err != nil {
		c.Error(apperror.Internal(err))
		return
	}
	response.Success(c, http.StatusOK, "Logged out", nil)
}

func (h *AuthHandler) Me(c *gin.Context) {
	tokenString := c.GetString("Token")
	account, err := h.authUC.CurrentUser(c.Request.Context(), tokenString)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "User details", gin.H{"user": account})
}
