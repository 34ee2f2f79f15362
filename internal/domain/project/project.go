package project

import (
	"context"
	"errors"
	"fmt"
)

// DefaultImageHint is used when a project has a cover image but no hint.
const DefaultImageHint = "project image"

type Project struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	ImageURL     *string  `json:"image_url,omitempty"`
	DataAIHint   *string  `json:"data_ai_hint,omitempty"`
	GitHubLink   *string  `json:"github_link,omitempty"`
	LiveDemoLink *string  `json:"live_demo_link,omitempty"`
}

func (p *Project) ImageHint() string {
	if p.DataAIHint != nil && *p.DataAIHint != "" {
		return *p.DataAIHint
	}
	return DefaultImageHint
}

var (
	ErrEmptyID        = errors.New("project id is required")
	ErrDuplicateID    = errors.New("project id must be unique")
	ErrNoTechnologies = errors.New("project must list at least one technology")
)

func (p *Project) Validate() error {
	if p.ID == "" {
		return ErrEmptyID
	}
	if len(p.Technologies) == 0 {
		return fmt.Errorf("%q: %w", p.ID, ErrNoTechnologies)
	}
	return nil
}

// ValidateList validates every project and the uniqueness of their ids.
func ValidateList(projects []*Project) error {
	seen := make(map[string]struct{}, len(projects))
	for _, p := range projects {
		if err := p.Validate(); err != nil {
			return err
		}
		if _, dup := seen[p.ID]; dup {
			return fmt.Errorf("%q: %w", p.ID, ErrDuplicateID)
		}
		seen[p.ID] = struct{}{}
	}
	return nil
}

type Repository interface {
	List(ctx context.Context) ([]*Project, error)
	FindByID(ctx context.Context, id string) (*Project, error)
}
