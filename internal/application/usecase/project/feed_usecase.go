package project

import (
	"context"
	"strings"
	"time"

	"github.com/gorilla/feeds"
	"go.uber.org/zap"

	"github.com/JanviSingh1712/portfolio/internal/domain/introduction"
	"github.com/JanviSingh1712/portfolio/internal/domain/project"
	"github.com/JanviSingh1712/portfolio/pkg/logger"
)

type ProjectFeedUseCase struct {
	projectRepo project.Repository
	introRepo   introduction.Repository
	siteURL     string
	logger      logger.Logger
	now         func() time.Time
}

func NewProjectFeedUseCase(pRepo project.Repository, iRepo introduction.Repository, siteURL string, log logger.Logger) *ProjectFeedUseCase {
	return &ProjectFeedUseCase{
		projectRepo: pRepo,
		introRepo:   iRepo,
		siteURL:     strings.TrimRight(siteURL, "/"),
		logger:      log,
		now:         time.Now,
	}
}

// Execute builds an RSS feed with one item per project in display order.
// Items link to the live demo, then the repository, then the projects
// anchor on the site.
func (uc *ProjectFeedUseCase) Execute(ctx context.Context) (*feeds.Feed, error) {
	owner, err := uc.introRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	projects, err := uc.projectRepo.List(ctx)
	if err != nil {
		uc.logger.Error("Failed to list projects for feed", err)
		return nil, err
	}

	now := uc.now()
	feed := &feeds.Feed{
		Title:       owner.FullName + " - Projects",
		Link:        &feeds.Link{Href: uc.siteURL + "/"},
		Description: owner.Role,
		Author:      &feeds.Author{Name: owner.FullName},
		Created:     now,
	}

	items := make([]*feeds.Item, 0, len(projects))
	for _, p := range projects {
		items = append(items, &feeds.Item{
			Id:          uc.siteURL + "/api/projects/" + p.ID,
			Title:       p.Title,
			Link:        &feeds.Link{Href: uc.itemLink(p)},
			Description: p.Description + " Technologies: " + strings.Join(p.Technologies, ", ") + ".",
			Created:     now,
		})
	}
	feed.Items = items

	uc.logger.Debug("Project feed generated", zap.Int("item_count", len(items)))
	return feed, nil
}

func (uc *ProjectFeedUseCase) itemLink(p *project.Project) string {
	if p.LiveDemoLink != nil && *p.LiveDemoLink != "" {
		return *p.LiveDemoLink
	}
	if p.GitHubLink != nil && *p.GitHubLink != "" {
		return *p.GitHubLink
	}
	return uc.siteURL + "/#projects"
}
