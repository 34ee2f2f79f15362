package introduction

import (
	"context"
	"fmt"

	"github.com/JanviSingh1712/portfolio/internal/domain/introduction"
)

type GetIntroductionUseCase struct {
	repo introduction.Repository
}

func NewGetIntroductionUseCase(repo introduction.Repository) *GetIntroductionUseCase {
	return &GetIntroductionUseCase{repo: repo}
}

type GetIntroductionOutput struct {
	Introduction *introduction.Introduction
}

func (uc *GetIntroductionUseCase) Execute(ctx context.Context) (*GetIntroductionOutput, error) {
	in, err := uc.repo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("get introduction failed: %w", err)
	}
	return &GetIntroductionOutput{Introduction: in}, nil
}
