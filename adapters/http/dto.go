package http

import (
	"github.com/JanviSingh1712/portfolio/internal/domain/certification"
	"github.com/JanviSingh1712/portfolio/internal/domain/introduction"
	"github.com/JanviSingh1712/portfolio/internal/domain/project"
)

// Introduction DTOs
type EducationDTO struct {
	Degree         string `json:"degree"`
	University     string `json:"university"`
	GraduationYear string `json:"graduation_year"`
}

type IntroductionDTO struct {
	FullName        string       `json:"full_name"`
	Role            string       `json:"role"`
	Education       EducationDTO `json:"education"`
	Bio             string       `json:"bio"`
	ProfileImageURL *string      `json:"profile_image_url,omitempty"`
	LinkedInURL     *string      `json:"linkedin_url,omitempty"`
	GitHubURL       *string      `json:"github_url,omitempty"`
}

func ToIntroductionDTO(in *introduction.Introduction) IntroductionDTO {
	return IntroductionDTO{
		FullName: in.FullName,
		Role:     in.Role,
		Education: EducationDTO{
			Degree:         in.Education.Degree,
			University:     in.Education.University,
			GraduationYear: in.Education.GraduationYear,
		},
		Bio:             in.Bio,
		ProfileImageURL: present(in.ProfileImageURL),
		LinkedInURL:     present(in.LinkedInURL),
		GitHubURL:       present(in.GitHubURL),
	}
}

// Certification DTOs
type CertificationDTO struct {
	Title               string  `json:"title"`
	IssuingOrganization string  `json:"issuing_organization"`
	Description         *string `json:"description,omitempty"`
	Icon                string  `json:"icon"`
	URL                 *string `json:"url,omitempty"`
}

func ToCertificationDTO(c certification.Certification) CertificationDTO {
	return CertificationDTO{
		Title:               c.Title,
		IssuingOrganization: c.IssuingOrganization,
		Description:         present(c.Description),
		Icon:                c.IconName(),
		URL:                 present(c.URL),
	}
}

func ToCertificationDTOs(certs []certification.Certification) []CertificationDTO {
	dtos := make([]CertificationDTO, len(certs))
	for i, c := range certs {
		dtos[i] = ToCertificationDTO(c)
	}
	return dtos
}

// Project DTOs
type ProjectDTO struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	ImageURL     *string  `json:"image_url,omitempty"`
	ImageHint    string   `json:"image_hint"`
	GitHubLink   *string  `json:"github_link,omitempty"`
	LiveDemoLink *string  `json:"live_demo_link,omitempty"`
}

func ToProjectDTO(p *project.Project) ProjectDTO {
	return ProjectDTO{
		ID:           p.ID,
		Title:        p.Title,
		Description:  p.Description,
		Technologies: p.Technologies,
		ImageURL:     present(p.ImageURL),
		ImageHint:    p.ImageHint(),
		GitHubLink:   present(p.GitHubLink),
		LiveDemoLink: present(p.LiveDemoLink),
	}
}

func ToProjectDTOs(projects []*project.Project) []ProjectDTO {
	dtos := make([]ProjectDTO, len(projects))
	for i, p := range projects {
		dtos[i] = ToProjectDTO(p)
	}
	return dtos
}

// Admin DTOs
type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
}

type ViewStatsResponse struct {
	Counts map[string]int64 `json:"counts"`
	Total  int64            `json:"total"`
}

type PurgeCacheResponse struct {
	Removed int `json:"removed"`
}

// present drops empty optional strings so they are omitted like nil ones.
func present(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
