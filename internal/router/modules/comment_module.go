package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/echomap/echomap/internal/container"
	handlers "github.com/echomap/echomap/internal/interface/http"
	"github.com/echomap/echomap/internal/interface/middleware"
	"github.com/echomap/echomap/pkg/helpers"
)

// CommentModule wires per-sound comment routes.
// Public: GET /api/comments/:soundId
// Protected: POST /api/comments/:soundId

type CommentModule struct {
	Handler *handlers.CommentHandler
	JWT     *helpers.JWTManager
}

func NewCommentModule(h *handlers.CommentHandler, jwt *helpers.JWTManager) *CommentModule {
	return &CommentModule{Handler: h, JWT: jwt}
}

func (m *CommentModule) Register(rg *gin.RouterGroup) {
	rg.GET("/comments/:soundId", m.Handler.List)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByUserID()))
	{
		auth.POST("/comments/:soundId", m.Handler.Create)
	}
}
