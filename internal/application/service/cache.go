package service

import (
	"context"

	"github.com/JanviSingh1712/portfolio/internal/domain/analytics"
)

// SectionCache keeps rendered markup keyed by section name.
type SectionCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Purge(ctx context.Context) (int, error)
}

// NopCache never stores anything; every Get misses.
type NopCache struct{}

func (NopCache) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }
func (NopCache) Set(context.Context, string, []byte) error          { return nil }
func (NopCache) Purge(context.Context) (int, error)                 { return 0, nil }

// NopPublisher drops view events. Used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) PublishView(context.Context, analytics.ViewEvent) error { return nil }
