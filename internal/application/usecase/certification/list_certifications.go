package certification

import (
	"context"

	"github.com/JanviSingh1712/portfolio/internal/domain/certification"
	"github.com/JanviSingh1712/portfolio/pkg/logger"
)

type ListCertificationsUseCase struct {
	repo   certification.Repository
	logger logger.Logger
}

func NewListCertificationsUseCase(repo certification.Repository, log logger.Logger) *ListCertificationsUseCase {
	return &ListCertificationsUseCase{repo: repo, logger: log}
}

type ListCertificationsOutput struct {
	Certifications []certification.Certification
}

func (uc *ListCertificationsUseCase) Execute(ctx context.Context) (*ListCertificationsOutput, error) {
	certs, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return &ListCertificationsOutput{Certifications: certs}, nil
}
