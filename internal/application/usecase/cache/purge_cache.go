package cache

import (
	"context"

	"go.uber.org/zap"

	"github.com/JanviSingh1712/portfolio/internal/application/service"
	"github.com/JanviSingh1712/portfolio/pkg/apperror"
	"github.com/JanviSingh1712/portfolio/pkg/logger"
)

type PurgeCacheUseCase struct {
	cache  service.SectionCache
	logger logger.Logger
}

func NewPurgeCacheUseCase(c service.SectionCache, log logger.Logger) *PurgeCacheUseCase {
	return &PurgeCacheUseCase{cache: c, logger: log}
}

type PurgeCacheOutput struct {
	Removed int
}

func (uc *PurgeCacheUseCase) Execute(ctx context.Context) (*PurgeCacheOutput, error) {
	n, err := uc.cache.Purge(ctx)
	if err != nil {
		return nil, apperror.NewInternal("failed to purge section cache", err)
	}
	uc.logger.Info("Section cache purged", zap.Int("removed", n))
	return &PurgeCacheOutput{Removed: n}, nil
}
