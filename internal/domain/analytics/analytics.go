package analytics

import (
	"context"
	"time"
)

// ViewEvent records one rendering of a section or of the whole page.
type ViewEvent struct {
	Section     string    `json:"section"`
	Path        string    `json:"path"`
	VisitorHash string    `json:"visitor_hash,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
}

type Publisher interface {
	PublishView(ctx context.Context, event ViewEvent) error
}

type Counter interface {
	Increment(ctx context.Context, section string) error
	Counts(ctx context.Context) (map[string]int64, error)
}
