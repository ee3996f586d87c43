package financials

import (
	"net/http"
	"strconv"
	"time"

	financialserrors "go-bizdash/internal/financials/errors"
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
	l := zap.L().Named("financials.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("financials.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("financials request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Overview(c *gin.Context) {
	ctx := c.Request.Context()

	year, err := strconv.Atoi(c.DefaultQuery("year", strconv.Itoa(time.Now().UTC().Year())))
	if err != nil || year < 2000 || year > 2200 {
		h.writeServiceError(c, financialserrors.ErrInvalidPeriod)
		return
	}

	var month time.Month
	if raw := c.Query("month"); raw != "" {
		m, err := strconv.Atoi(raw)
		if err != nil || m < 1 || m > 12 {
			h.writeServiceError(c, financialserrors.ErrInvalidPeriod)
			return
		}
		month = time.Month(m)
	}

	resp, err := h.service.Overview(ctx, year, month)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) ProjectChart(c *gin.Context) {
	ctx := c.Request.Context()
	projectID := c.Param("id")

	resp, err := h.service.ProjectChart(ctx, projectID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}
