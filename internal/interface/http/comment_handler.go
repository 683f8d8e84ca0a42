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

type CommentHandler struct {
	Svc    *application.CommentService
	Logger *logrus.Logger
}

func NewCommentHandler(svc *application.CommentService, logger *logrus.Logger) *CommentHandler {
	return &CommentHandler{Svc: svc, Logger: logger}
}

// List GET /api/comments/:soundId
func (h *CommentHandler) List(c *gin.Context) {
	comments, err := h.Svc.ListBySound(c.Param("soundId"))
	if err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"comments": comments}, "comments")
}

type createCommentRequest struct {
	Text string `json:"text" binding:"required"`
}

// Create POST /api/comments/:soundId (auth required)
func (h *CommentHandler) Create(c *gin.Context) {
	var req createCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	view, err := h.Svc.Create(c.GetString(middleware.CtxUserIDKey), c.Param("soundId"), req.Text)
	if err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"comment": view}, "comment added")
}
