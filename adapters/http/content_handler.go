package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	certificationUC "github.com/JanviSingh1712/portfolio/internal/application/usecase/certification"
	introductionUC "github.com/JanviSingh1712/portfolio/internal/application/usecase/introduction"
	projectUC "github.com/JanviSingh1712/portfolio/internal/application/usecase/project"
)

// ContentHandler exposes the portfolio records as JSON.
type ContentHandler struct {
	getIntroductionUseCase    *introductionUC.GetIntroductionUseCase
	listCertificationsUseCase *certificationUC.ListCertificationsUseCase
	listProjectsUseCase       *projectUC.ListProjectsUseCase
	getProjectUseCase         *projectUC.GetProjectUseCase
}

func NewContentHandler(
	getIntroductionUC *introductionUC.GetIntroductionUseCase,
	listCertificationsUC *certificationUC.ListCertificationsUseCase,
	listProjectsUC *projectUC.ListProjectsUseCase,
	getProjectUC *projectUC.GetProjectUseCase,
) *ContentHandler {
	return &ContentHandler{
		getIntroductionUseCase:    getIntroductionUC,
		listCertificationsUseCase: listCertificationsUC,
		listProjectsUseCase:       listProjectsUC,
		getProjectUseCase:         getProjectUC,
	}
}

func (h *ContentHandler) GetIntroduction(c *gin.Context) {
	output, err := h.getIntroductionUseCase.Execute(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToIntroductionDTO(output.Introduction))
}

func (h *ContentHandler) ListCertifications(c *gin.Context) {
	output, err := h.listCertificationsUseCase.Execute(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"certifications": ToCertificationDTOs(output.Certifications)})
}

func (h *ContentHandler) ListProjects(c *gin.Context) {
	output, err := h.listProjectsUseCase.Execute(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"projects": ToProjectDTOs(output.Projects)})
}

func (h *ContentHandler) GetProject(c *gin.Context) {
	output, err := h.getProjectUseCase.Execute(c.Request.Context(), projectUC.GetProjectInput{ID: c.Param("id")})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToProjectDTO(output.Project))
}
