package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JanviSingh1712/portfolio/internal/application/usecase/auth"
	"github.com/JanviSingh1712/portfolio/pkg/apperror"
	"github.com/JanviSingh1712/portfolio/pkg/logger"
)

type AuthHandler struct {
	loginUseCase *auth.LoginUseCase
	logger       logger.Logger
}

func NewAuthHandler(loginUC *auth.LoginUseCase, log logger.Logger) *AuthHandler {
	return &AuthHandler{
		loginUseCase: loginUC,
		logger:       log,
	}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid login request", err))
		return
	}

	output, err := h.loginUseCase.Execute(c.Request.Context(), auth.LoginInput{Password: req.Password})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, LoginResponse{AccessToken: output.AccessToken})
}
