package router

import (
	"github.com/echomap/echomap/internal/application"
	"github.com/echomap/echomap/internal/container"
	"github.com/echomap/echomap/internal/infrastructure/jsonstore"
	handlers "github.com/echomap/echomap/internal/interface/http"
	"github.com/echomap/echomap/internal/router/modules"
)

// InitModules initializes all application modules and registers them with the
// router registry. Called once during startup after the container is filled.
func InitModules(r *Registry) {
	store := container.GetStore()
	logger := container.GetLogger()
	jwt := container.GetJWT()

	users := jsonstore.NewUserRepository(store)
	sounds := jsonstore.NewSoundRepository(store)
	reports := jsonstore.NewReportRepository(store)
	comments := jsonstore.NewCommentRepository(store)

	accountSvc := application.NewAccountService(users, jwt, logger, container.GetConfig().AdminEmailList())
	soundSvc := application.NewSoundService(sounds, users, reports, container.GetUploader(), logger)
	commentSvc := application.NewCommentService(comments, sounds, users)
	adminSvc := application.NewAdminService(sounds, reports, users, logger)

	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(accountSvc, logger), jwt))
	r.Add(modules.NewSoundModule(handlers.NewSoundHandler(soundSvc, logger), jwt))
	r.Add(modules.NewCommentModule(handlers.NewCommentHandler(commentSvc, logger), jwt))
	r.Add(modules.NewAdminModule(handlers.NewAdminHandler(adminSvc, logger), jwt))
}
