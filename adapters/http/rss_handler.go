package http

import (
	"github.com/gin-gonic/gin"

	projectUC "github.com/JanviSingh1712/portfolio/internal/application/usecase/project"
	"github.com/JanviSingh1712/portfolio/pkg/apperror"
	"github.com/JanviSingh1712/portfolio/pkg/logger"
)

type RSSHandler struct {
	feedUseCase *projectUC.ProjectFeedUseCase
	logger      logger.Logger
}

func NewRSSHandler(uc *projectUC.ProjectFeedUseCase, log logger.Logger) *RSSHandler {
	return &RSSHandler{
		feedUseCase: uc,
		logger:      log,
	}
}

func (h *RSSHandler) ProjectsFeed(c *gin.Context) {
	feed, err := h.feedUseCase.Execute(c.Request.Context())
	if err != nil {
		c.Error(apperror.NewInternal("failed to generate RSS feed", err))
		return
	}

	c.Header("Content-Type", "application/rss+xml; charset=utf-8")
	if err := feed.WriteRss(c.Writer); err != nil {
		h.logger.Error("Failed to write RSS feed to response", err)
	}
}
