package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	analyticsUC "github.com/JanviSingh1712/portfolio/internal/application/usecase/analytics"
	cacheUC "github.com/JanviSingh1712/portfolio/internal/application/usecase/cache"
	"github.com/JanviSingh1712/portfolio/pkg/apperror"
	"github.com/JanviSingh1712/portfolio/pkg/logger"
)

type AdminHandler struct {
	viewStatsUseCase  *analyticsUC.ViewStatsUseCase
	purgeCacheUseCase *cacheUC.PurgeCacheUseCase
	logger            logger.Logger
}

// NewAdminHandler accepts a nil viewStats use case when no counter store is
// configured; the views endpoint then answers 503.
func NewAdminHandler(viewStatsUC *analyticsUC.ViewStatsUseCase, purgeUC *cacheUC.PurgeCacheUseCase, log logger.Logger) *AdminHandler {
	return &AdminHandler{
		viewStatsUseCase:  viewStatsUC,
		purgeCacheUseCase: purgeUC,
		logger:            log,
	}
}

func (h *AdminHandler) Views(c *gin.Context) {
	if h.viewStatsUseCase == nil {
		c.Error(apperror.NewUnavailable("view statistics"))
		return
	}

	output, err := h.viewStatsUseCase.Execute(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ViewStatsResponse{Counts: output.Counts, Total: output.Total})
}

func (h *AdminHandler) PurgeCache(c *gin.Context) {
	ownerID, _ := GetOwnerIDFromGinContext(c)
	h.logger.Info("Cache purge requested", zap.String("owner_id", ownerID.String()))

	output, err := h.purgeCacheUseCase.Execute(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, PurgeCacheResponse{Removed: output.Removed})
}
