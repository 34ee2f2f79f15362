package certification

import (
	"context"
	"errors"
	"fmt"
)

// DefaultIcon is the Lucide icon shown when a certification has none.
const DefaultIcon = "award"

type Certification struct {
	Title               string  `json:"title"`
	IssuingOrganization string  `json:"issuing_organization"`
	Description         *string `json:"description,omitempty"`
	Icon                *string `json:"icon,omitempty"`
	URL                 *string `json:"url,omitempty"`
}

// IconName returns the certification's icon or DefaultIcon.
func (c Certification) IconName() string {
	if c.Icon != nil && *c.Icon != "" {
		return *c.Icon
	}
	return DefaultIcon
}

var (
	ErrEmptyTitle     = errors.New("certification title is required")
	ErrDuplicateTitle = errors.New("certification title must be unique")
)

// ValidateList checks the list-key invariant: titles are present and unique.
func ValidateList(certs []Certification) error {
	seen := make(map[string]struct{}, len(certs))
	for i, c := range certs {
		if c.Title == "" {
			return fmt.Errorf("entry %d: %w", i, ErrEmptyTitle)
		}
		if _, dup := seen[c.Title]; dup {
			return fmt.Errorf("%q: %w", c.Title, ErrDuplicateTitle)
		}
		seen[c.Title] = struct{}{}
	}
	return nil
}

type Repository interface {
	List(ctx context.Context) ([]Certification, error)
}
