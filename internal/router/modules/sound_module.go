package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/echomap/echomap/internal/container"
	handlers "github.com/echomap/echomap/internal/interface/http"
	"github.com/echomap/echomap/internal/interface/middleware"
	"github.com/echomap/echomap/pkg/helpers"
)

// SoundModule wires the sound catalog routes.
// Public: GET /api/sounds, GET /api/sounds/user/:userId
// Protected: POST /api/sounds, POST /api/sounds/:id/report

type SoundModule struct {
	Handler *handlers.SoundHandler
	JWT     *helpers.JWTManager
}

func NewSoundModule(h *handlers.SoundHandler, jwt *helpers.JWTManager) *SoundModule {
	return &SoundModule{Handler: h, JWT: jwt}
}

func (m *SoundModule) Register(rg *gin.RouterGroup) {
	rg.GET("/sounds", m.Handler.List)
	rg.GET("/sounds/user/:userId", m.Handler.ListByUser)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 30, time.Minute, middleware.KeyByUserID()))
	{
		auth.POST("/sounds", m.Handler.Create)
		auth.POST("/sounds/:id/report", m.Handler.Report)
	}
}
