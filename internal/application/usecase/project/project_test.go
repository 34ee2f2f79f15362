package project

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JanviSingh1712/portfolio/internal/content"
	"github.com/JanviSingh1712/portfolio/internal/domain/introduction"
	"github.com/JanviSingh1712/portfolio/internal/domain/project"
	"github.com/JanviSingh1712/portfolio/pkg/apperror"
	"github.com/JanviSingh1712/portfolio/pkg/logger"
)

type fakeProjects struct{ projects []*project.Project }

func (f fakeProjects) List(context.Context) ([]*project.Project, error) { return f.projects, nil }

func (f fakeProjects) FindByID(_ context.Context, id string) (*project.Project, error) {
	for _, p := range f.projects {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, apperror.NewNotFound("project", id)
}

type fakeIntro struct{}

func (fakeIntro) Get(context.Context) (*introduction.Introduction, error) {
	return content.Introduction(), nil
}

func strPtr(s string) *string { return &s }

func TestListProjects_PreservesOrder(t *testing.T) {
	repo := fakeProjects{projects: content.Projects()}

	out, err := NewListProjectsUseCase(repo, logger.NewNop()).Execute(context.Background())

	require.NoError(t, err)
	require.Len(t, out.Projects, 3)
	assert.Equal(t, "Voice-to-Visual", out.Projects[0].ID)
	assert.Equal(t, "Medicine_Delivery", out.Projects[2].ID)
}

func TestGetProject(t *testing.T) {
	uc := NewGetProjectUseCase(fakeProjects{projects: content.Projects()}, logger.NewNop())
	ctx := context.Background()

	out, err := uc.Execute(ctx, GetProjectInput{ID: "Event Ticket"})
	require.NoError(t, err)
	assert.Equal(t, "Event Ticket Booking System", out.Project.Title)

	_, err = uc.Execute(ctx, GetProjectInput{ID: "missing"})
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	_, err = uc.Execute(ctx, GetProjectInput{ID: " "})
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
}

func TestProjectFeed(t *testing.T) {
	repo := fakeProjects{projects: []*project.Project{
		{ID: "plain", Title: "Plain", Description: "D", Technologies: []string{"A", "B"}},
		{ID: "repo", Title: "Repo", Technologies: []string{"Go"}, GitHubLink: strPtr("https://github.example/repo")},
		{ID: "demo", Title: "Demo", Technologies: []string{"Go"}, GitHubLink: strPtr("https://github.example/demo"), LiveDemoLink: strPtr("https://demo.example")},
	}}
	uc := NewProjectFeedUseCase(repo, fakeIntro{}, "https://site.example/", logger.NewNop())

	feed, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Janvi Singh - Projects", feed.Title)
	require.Len(t, feed.Items, 3)
	assert.Equal(t, "https://site.example/#projects", feed.Items[0].Link.Href)
	assert.Equal(t, "D Technologies: A, B.", feed.Items[0].Description)
	assert.Equal(t, "https://github.example/repo", feed.Items[1].Link.Href)
	assert.Equal(t, "https://demo.example", feed.Items[2].Link.Href)

	rss, err := feed.ToRss()
	require.NoError(t, err)
	assert.Contains(t, rss, "<title>Plain</title>")
}
