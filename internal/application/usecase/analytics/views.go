package analytics

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/JanviSingh1712/portfolio/internal/domain/analytics"
	"github.com/JanviSingh1712/portfolio/pkg/apperror"
	"github.com/JanviSingh1712/portfolio/pkg/logger"
)

// RecordViewUseCase is run by the worker for every consumed view event.
type RecordViewUseCase struct {
	counter analytics.Counter
	logger  logger.Logger
}

func NewRecordViewUseCase(counter analytics.Counter, log logger.Logger) *RecordViewUseCase {
	return &RecordViewUseCase{counter: counter, logger: log}
}

func (uc *RecordViewUseCase) Execute(ctx context.Context, event analytics.ViewEvent) error {
	section := strings.TrimSpace(event.Section)
	if section == "" {
		return apperror.NewInvalidInput("view event without section", nil)
	}
	if err := uc.counter.Increment(ctx, section); err != nil {
		return apperror.NewInternal("failed to increment view counter", err)
	}
	uc.logger.Debug("View recorded", zap.String("section", section), zap.String("path", event.Path))
	return nil
}

type ViewStatsUseCase struct {
	counter analytics.Counter
}

func NewViewStatsUseCase(counter analytics.Counter) *ViewStatsUseCase {
	return &ViewStatsUseCase{counter: counter}
}

type ViewStatsOutput struct {
	Counts map[string]int64
	Total  int64
}

func (uc *ViewStatsUseCase) Execute(ctx context.Context) (*ViewStatsOutput, error) {
	counts, err := uc.counter.Counts(ctx)
	if err != nil {
		return nil, apperror.NewInternal("failed to read view counters", err)
	}
	out := &ViewStatsOutput{Counts: counts}
	for _, n := range counts {
		out.Total += n
	}
	return out, nil
}
