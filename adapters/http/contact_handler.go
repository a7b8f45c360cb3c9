package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	contactUC "github.com/sammy-mbugua/portfolio/internal/application/usecase/contact"
	"github.com/sammy-mbugua/portfolio/pkg/apperror"
	"github.com/sammy-mbugua/portfolio/pkg/logger"
	"github.com/sammy-mbugua/portfolio/pkg/pagination"
)

// ContactHandler is the admin inbox for contact form submissions.
type ContactHandler struct {
	adminUseCase *contactUC.AdminUseCase
	logger       logger.Logger
}

func NewContactHandler(uc *contactUC.AdminUseCase, log logger.Logger) *ContactHandler {
	return &ContactHandler{adminUseCase: uc, logger: log}
}

func (h *ContactHandler) ListMessages(c *gin.Context) {
	input := contactUC.ListInput{Page: pagination.ParseNumber(c.DefaultQuery("page", "1"))}
	if raw := c.Query("read"); raw != "" {
		read, err := strconv.ParseBool(raw)
		if err != nil {
			c.Error(apperror.NewInvalidInput("read must be true or false", err))
			return
		}
		input.Read = &read
	}

	out, err := h.adminUseCase.List(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ContactMessageListDTO{Messages: out.Messages, Pagination: out.Page})
}

func (h *ContactHandler) GetMessage(c *gin.Context) {
	id, ok := pathID(c, "contact message")
	if !ok {
		return
	}
	m, err := h.adminUseCase.Get(c.Request.Context(), id)
	respond(c, http.StatusOK, m, err)
}

func (h *ContactHandler) MarkRead(c *gin.Context) {
	h.setRead(c, true)
}

func (h *ContactHandler) MarkUnread(c *gin.Context) {
	h.setRead(c, false)
}

func (h *ContactHandler) setRead(c *gin.Context, read bool) {
	var req MarkReadRequest
	if !bindJSON(c, &req) {
		return
	}
	var (
		n   int64
		err error
	)
	if read {
		n, err = h.adminUseCase.MarkRead(c.Request.Context(), req.IDs)
	} else {
		n, err = h.adminUseCase.MarkUnread(c.Request.Context(), req.IDs)
	}
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": n})
}

func (h *ContactHandler) DeleteMessage(c *gin.Context) {
	id, ok := pathID(c, "contact message")
	if !ok {
		return
	}
	respond(c, http.StatusNoContent, nil, h.adminUseCase.Delete(c.Request.Context(), id))
}
