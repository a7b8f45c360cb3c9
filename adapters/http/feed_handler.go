package http

import (
	"github.com/gin-gonic/gin"

	portfolioUC "github.com/sammy-mbugua/portfolio/internal/application/usecase/portfolio"
	"github.com/sammy-mbugua/portfolio/pkg/apperror"
	"github.com/sammy-mbugua/portfolio/pkg/logger"
)

type FeedHandler struct {
	feedUseCase *portfolioUC.FeedUseCase
	logger      logger.Logger
}

func NewFeedHandler(uc *portfolioUC.FeedUseCase, log logger.Logger) *FeedHandler {
	return &FeedHandler{
		feedUseCase: uc,
		logger:      log,
	}
}

func (h *FeedHandler) ProjectsRSS(c *gin.Context) {
	feed, err := h.feedUseCase.Execute(c.Request.Context(), requestOrigin(c))
	if err != nil {
		c.Error(apperror.NewInternal("failed to generate project feed", err))
		return
	}

	c.Header("Content-Type", "application/rss+xml; charset=utf-8")
	if err := feed.WriteRss(c.Writer); err != nil {
		h.logger.Error("Failed to write project feed to response", err)
	}
}

// requestOrigin reconstructs scheme://host, honouring a reverse proxy's X-Forwarded-Proto.
func requestOrigin(c *gin.Context) string {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	if proto := c.GetHeader("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}
	return scheme + "://" + c.Request.Host
}
