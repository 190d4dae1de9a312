package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"civicdesk/internal/application/user/usecases"
	"civicdesk/internal/shared/config"
	"civicdesk/internal/shared/logger"
	"civicdesk/internal/shared/utils"
)

type AuthHandler struct {
	registerUseCase usecases.RegisterUserExecutor
	loginUseCase    usecases.LoginUserExecutor
	logger          logger.Interface
	cookieConfig    config.CookieConfig
	jwtConfig       config.JWTConfig
}

func NewAuthHandler(
	registerUC usecases.RegisterUserExecutor,
	loginUC usecases.LoginUserExecutor,
	logger logger.Interface,
	cookieConfig config.CookieConfig,
	jwtConfig config.JWTConfig,
) *AuthHandler {
	return &AuthHandler{
		registerUseCase: registerUC,
		loginUseCase:    loginUC,
		logger:          logger,
		cookieConfig:    cookieConfig,
		jwtConfig:       jwtConfig,
	}
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, utils.FormatBindingError(err))
		return
	}

	cmd := usecases.RegisterUserCommand{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	}

	result, err := h.registerUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		h.logger.Warnw("registration failed", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "registration successful", gin.H{
		"user_id": result.UserID,
		"name":    result.Name,
		"email":   result.Email,
		"role":    result.Role,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, utils.FormatBindingError(err))
		return
	}

	cmd := usecases.LoginUserCommand{
		Email:    req.Email,
		Password: req.Password,
	}

	result, err := h.loginUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		h.logger.Warnw("login failed", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	accessMaxAge := h.jwtConfig.AccessExpMinutes * 60
	refreshMaxAge := h.jwtConfig.RefreshExpDays * 24 * 60 * 60

	utils.SetAuthCookies(c, h.cookieConfig, result.AccessToken, result.RefreshToken, accessMaxAge, refreshMaxAge)

	utils.SuccessResponse(c, http.StatusOK, "login successful", gin.H{
		"user": gin.H{
			"id":    result.UserID,
			"name":  result.Name,
			"email": result.Email,
			"role":  result.Role,
		},
		"expires_in": result.ExpiresIn,
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	utils.ClearAuthCookies(c, h.cookieConfig)
	utils.SuccessResponse(c, http.StatusOK, "logout successful", nil)
}
