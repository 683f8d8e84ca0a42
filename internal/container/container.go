package container

import (
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/echomap/echomap/config"
	"github.com/echomap/echomap/internal/infrastructure/blob"
	"github.com/echomap/echomap/internal/infrastructure/jsonstore"
	"github.com/echomap/echomap/internal/realtime"
	"github.com/echomap/echomap/pkg/helpers"
)

// app-level container to share constructed components across packages
// Router can auto-wire modules from these singletons.

var (
	cfg         *config.Config
	logger      *logrus.Logger
	store       *jsonstore.Store
	redisClient *redis.Client
	uploader    blob.Uploader
	jwtManager  *helpers.JWTManager
	hub         *realtime.Hub
)

func SetConfig(c *config.Config)       { cfg = c }
func GetConfig() *config.Config        { return cfg }
func SetLogger(l *logrus.Logger)       { logger = l }
func GetLogger() *logrus.Logger        { return logger }
func SetStore(s *jsonstore.Store)      { store = s }
func GetStore() *jsonstore.Store       { return store }
func SetRedis(r *redis.Client)         { redisClient = r }
func GetRedis() *redis.Client          { return redisClient }
func SetUploader(u blob.Uploader)      { uploader = u }
func GetUploader() blob.Uploader       { return uploader }
func SetJWT(m *helpers.JWTManager)     { jwtManager = m }
func GetJWT() *helpers.JWTManager      { return jwtManager }
func SetHub(h *realtime.Hub)           { hub = h }
func GetHub() *realtime.Hub            { return hub }
