package draft

import (
	"encoding/json"
	"net/http"

	"go-bizdash/internal/shared/apperror"
	"go-bizdash/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("draft.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("draft.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("draft request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

type openRequest struct {
	Kind     string `json:"kind" binding:"required"`
	EntityID string `json:"entityId"`
}

func (h *Handler) Open(c *gin.Context) {
	h.logger.Debug("http open draft session")
	var req openRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		mapped := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, mapped.Status, mapped.Code, mapped.Message, err.Error())
		return
	}

	sess, err := h.service.Open(c.Request.Context(), Kind(req.Kind), req.EntityID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, sess, nil)
}

func (h *Handler) Get(c *gin.Context) {
	sess, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, sess, nil)
}

func (h *Handler) Edit(c *gin.Context) {
	id := c.Param("id")
	h.logger.Debug("http edit draft session", zap.String("session_id", id))

	sess, err := h.service.Edit(c.Request.Context(), id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, sess, nil)
}

func (h *Handler) Apply(c *gin.Context) {
	id := c.Param("id")
	h.logger.Debug("http apply draft patch", zap.String("session_id", id))

	var patch json.RawMessage
	if err := c.ShouldBindJSON(&patch); err != nil {
		mapped := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, mapped.Status, mapped.Code, mapped.Message, err.Error())
		return
	}

	sess, err := h.service.Apply(c.Request.Context(), id, patch)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, sess, nil)
}

func (h *Handler) Submit(c *gin.Context) {
	id := c.Param("id")
	h.logger.Debug("http submit draft session", zap.String("session_id", id))

	result, err := h.service.Submit(c.Request.Context(), id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, result, nil)
}

func (h *Handler) Cancel(c *gin.Context) {
	id := c.Param("id")
	h.logger.Debug("http cancel draft session", zap.String("session_id", id))

	if err := h.service.Cancel(c.Request.Context(), id); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"cancelled": true}, nil)
}
