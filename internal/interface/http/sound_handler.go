package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/echomap/echomap/internal/application"
	"github.com/echomap/echomap/internal/interface/middleware"
	"github.com/echomap/echomap/pkg/response"
	"github.com/echomap/echomap/pkg/validation"
)

type SoundHandler struct {
	Svc    *application.SoundService
	Logger *logrus.Logger
}

func NewSoundHandler(svc *application.SoundService, logger *logrus.Logger) *SoundHandler {
	return &SoundHandler{Svc: svc, Logger: logger}
}

// List GET /api/sounds — public pins joined with owner summaries
func (h *SoundHandler) List(c *gin.Context) {
	sounds, err := h.Svc.List()
	if err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"sounds": sounds}, "sounds")
}

// ListByUser GET /api/sounds/user/:userId — that account's public pins only
func (h *SoundHandler) ListByUser(c *gin.Context) {
	sounds, err := h.Svc.ListByAccount(c.Param("userId"))
	if err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"sounds": sounds}, "sounds")
}

// Create POST /api/sounds (auth required) — multipart metadata plus an audio
// file under the "file" field.
func (h *SoundHandler) Create(c *gin.Context) {
	in := application.CreateSoundInput{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Tags:        c.PostForm("tags"),
		Category:    c.PostForm("category"),
		Language:    c.PostForm("language"),
		Privacy:     c.PostForm("privacy"),
		Latitude:    c.PostForm("latitude"),
		Longitude:   c.PostForm("longitude"),
	}

	var audio *application.AudioPayload
	if fh, err := c.FormFile("file"); err == nil {
		f, err := fh.Open()
		if err != nil {
			writeServiceError(c, h.Logger, err)
			return
		}
		defer func() { _ = f.Close() }()
		audio = &application.AudioPayload{
			Reader:      f,
			Filename:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
		}
	}

	view, err := h.Svc.Create(c.Request.Context(), c.GetString(middleware.CtxUserIDKey), in, audio)
	if err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"sound": view}, "sound uploaded successfully")
}

type reportRequest struct {
	Reason string `json:"reason"`
}

// Report POST /api/sounds/:id/report (auth required)
func (h *SoundHandler) Report(c *gin.Context) {
	var req reportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	rep, err := h.Svc.Report(c.GetString(middleware.CtxUserIDKey), c.Param("id"), req.Reason)
	if err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"report": rep}, "report filed")
}
