package project

import (
	"context"
	"strings"

	"github.com/JanviSingh1712/portfolio/internal/domain/project"
	"github.com/JanviSingh1712/portfolio/pkg/apperror"
	"github.com/JanviSingh1712/portfolio/pkg/logger"
)

type GetProjectUseCase struct {
	projectRepo project.Repository
	logger      logger.Logger
}

func NewGetProjectUseCase(pRepo project.Repository, log logger.Logger) *GetProjectUseCase {
	return &GetProjectUseCase{projectRepo: pRepo, logger: log}
}

type GetProjectInput struct {
	ID string
}

type GetProjectOutput struct {
	Project *project.Project
}

func (uc *GetProjectUseCase) Execute(ctx context.Context, input GetProjectInput) (*GetProjectOutput, error) {
	if strings.TrimSpace(input.ID) == "" {
		return nil, apperror.NewInvalidInput("project id is required", nil)
	}
	p, err := uc.projectRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	return &GetProjectOutput{Project: p}, nil
}
