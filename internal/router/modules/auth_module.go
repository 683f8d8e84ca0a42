package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/echomap/echomap/internal/container"
	handlers "github.com/echomap/echomap/internal/interface/http"
	"github.com/echomap/echomap/internal/interface/middleware"
	"github.com/echomap/echomap/pkg/helpers"
)

// AuthModule wires account routes.
// Public: POST /api/auth/register, POST /api/auth/login
// Protected: GET /api/auth/profile

type AuthModule struct {
	Handler *handlers.AuthHandler
	JWT     *helpers.JWTManager
}

func NewAuthModule(h *handlers.AuthHandler, jwt *helpers.JWTManager) *AuthModule {
	return &AuthModule{Handler: h, JWT: jwt}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	registerLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath())
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIP())

	rg.POST("/auth/register", registerLimiter, m.Handler.Register)
	rg.POST("/auth/login", loginLimiter, m.Handler.Login)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT))
	{
		auth.GET("/auth/profile", m.Handler.Profile)
	}
}
