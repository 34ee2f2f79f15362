package persistence

import (
	"context"

	"github.com/JanviSingh1712/portfolio/internal/content"
	"github.com/JanviSingh1712/portfolio/internal/domain/certification"
	"github.com/JanviSingh1712/portfolio/internal/domain/introduction"
	"github.com/JanviSingh1712/portfolio/internal/domain/project"
	"github.com/JanviSingh1712/portfolio/pkg/apperror"
)

// The static repositories serve the compiled-in content literals. They are
// the default source and need no infrastructure.

type staticIntroductionRepo struct{}

func NewStaticIntroductionRepo() introduction.Repository {
	return staticIntroductionRepo{}
}

func (staticIntroductionRepo) Get(context.Context) (*introduction.Introduction, error) {
	return content.Introduction(), nil
}

type staticCertificationRepo struct{}

func NewStaticCertificationRepo() certification.Repository {
	return staticCertificationRepo{}
}

func (staticCertificationRepo) List(context.Context) ([]certification.Certification, error) {
	return content.Certifications(), nil
}

type staticProjectRepo struct{}

func NewStaticProjectRepo() project.Repository {
	return staticProjectRepo{}
}

func (staticProjectRepo) List(context.Context) ([]*project.Project, error) {
	return content.Projects(), nil
}

func (staticProjectRepo) FindByID(_ context.Context, id string) (*project.Project, error) {
	for _, p := range content.Projects() {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, apperror.NewNotFound("project", id)
}
