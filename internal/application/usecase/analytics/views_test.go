package analytics

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JanviSingh1712/portfolio/internal/domain/analytics"
	"github.com/JanviSingh1712/portfolio/pkg/apperror"
	"github.com/JanviSingh1712/portfolio/pkg/logger"
)

type mapCounter struct {
	counts map[string]int64
	err    error
}

func (c *mapCounter) Increment(_ context.Context, section string) error {
	if c.err != nil {
		return c.err
	}
	c.counts[section]++
	return nil
}

func (c *mapCounter) Counts(context.Context) (map[string]int64, error) {
	return c.counts, c.err
}

func TestRecordAndReadViews(t *testing.T) {
	counter := &mapCounter{counts: map[string]int64{}}
	record := NewRecordViewUseCase(counter, logger.NewNop())
	ctx := context.Background()

	require.NoError(t, record.Execute(ctx, analytics.ViewEvent{Section: "about"}))
	require.NoError(t, record.Execute(ctx, analytics.ViewEvent{Section: "about"}))
	require.NoError(t, record.Execute(ctx, analytics.ViewEvent{Section: "projects"}))

	out, err := NewViewStatsUseCase(counter).Execute(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), out.Counts["about"])
	assert.Equal(t, int64(3), out.Total)
}

func TestRecordView_Errors(t *testing.T) {
	counter := &mapCounter{counts: map[string]int64{}}
	record := NewRecordViewUseCase(counter, logger.NewNop())

	err := record.Execute(context.Background(), analytics.ViewEvent{Section: "  "})
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)

	counter.err = errors.New("redis down")
	err = record.Execute(context.Background(), analytics.ViewEvent{Section: "about"})
	assert.ErrorIs(t, err, apperror.ErrInternal)
}
