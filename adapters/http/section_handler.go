package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	sectionUC "github.com/JanviSingh1712/portfolio/internal/application/usecase/section"
	"github.com/JanviSingh1712/portfolio/pkg/logger"
)

const htmlContentType = "text/html; charset=utf-8"

type SectionHandler struct {
	renderSectionUseCase *sectionUC.RenderSectionUseCase
	renderPageUseCase    *sectionUC.RenderPageUseCase
	logger               logger.Logger
}

func NewSectionHandler(sectionUseCase *sectionUC.RenderSectionUseCase, pageUseCase *sectionUC.RenderPageUseCase, log logger.Logger) *SectionHandler {
	return &SectionHandler{
		renderSectionUseCase: sectionUseCase,
		renderPageUseCase:    pageUseCase,
		logger:               log,
	}
}

func (h *SectionHandler) Page(c *gin.Context) {
	c.Set(GinContextKeyHTML, true)

	output, err := h.renderPageUseCase.Execute(c.Request.Context(), sectionUC.RenderPageInput{
		Path:        c.Request.URL.Path,
		VisitorHash: GetVisitorHashFromGinContext(c),
	})
	if err != nil {
		c.Error(err)
		return
	}
	h.write(c, output)
}

func (h *SectionHandler) Section(c *gin.Context) {
	c.Set(GinContextKeyHTML, true)

	output, err := h.renderSectionUseCase.Execute(c.Request.Context(), sectionUC.RenderSectionInput{
		Name:        c.Param("name"),
		Path:        c.Request.URL.Path,
		VisitorHash: GetVisitorHashFromGinContext(c),
	})
	if err != nil {
		c.Error(err)
		return
	}
	h.write(c, output)
}

func (h *SectionHandler) write(c *gin.Context, output *sectionUC.RenderSectionOutput) {
	if output.Cached {
		c.Header("X-Cache", "HIT")
	} else {
		c.Header("X-Cache", "MISS")
	}
	h.logger.Debug("Rendered", zap.String("path", c.Request.URL.Path), zap.Bool("cached", output.Cached))
	c.Data(http.StatusOK, htmlContentType, output.HTML)
}
