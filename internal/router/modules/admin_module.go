package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/echomap/echomap/internal/interface/http"
	"github.com/echomap/echomap/internal/interface/middleware"
	"github.com/echomap/echomap/pkg/helpers"
)

// AdminModule wires the moderation surface. Every route requires a valid
// token carrying the admin role.

type AdminModule struct {
	Handler *handlers.AdminHandler
	JWT     *helpers.JWTManager
}

func NewAdminModule(h *handlers.AdminHandler, jwt *helpers.JWTManager) *AdminModule {
	return &AdminModule{Handler: h, JWT: jwt}
}

func (m *AdminModule) Register(rg *gin.RouterGroup) {
	admin := rg.Group("/admin")
	admin.Use(middleware.Auth(m.JWT), middleware.RequireAdmin())
	{
		admin.GET("/sounds", m.Handler.ListSounds)
		admin.DELETE("/sounds/:soundId", m.Handler.DeleteSound)
		admin.GET("/reports", m.Handler.ListReports)
	}
}
