package section

import (
	"bytes"
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/JanviSingh1712/portfolio/internal/application/service"
	"github.com/JanviSingh1712/portfolio/internal/domain/analytics"
	"github.com/JanviSingh1712/portfolio/internal/domain/certification"
	"github.com/JanviSingh1712/portfolio/internal/domain/introduction"
	"github.com/JanviSingh1712/portfolio/internal/domain/project"
	"github.com/JanviSingh1712/portfolio/internal/render"
	"github.com/JanviSingh1712/portfolio/pkg/apperror"
	"github.com/JanviSingh1712/portfolio/pkg/logger"
)

var tracer = otel.Tracer("section_usecase")

// Sources groups the repositories every section is built from.
type Sources struct {
	Introduction   introduction.Repository
	Certifications certification.Repository
	Projects       project.Repository
}

type RenderSectionUseCase struct {
	sources   Sources
	renderer  *render.Renderer
	images    render.ImageResolver
	cache     service.SectionCache
	publisher analytics.Publisher
	logger    logger.Logger
	now       func() time.Time
}

func NewRenderSectionUseCase(
	src Sources,
	r *render.Renderer,
	images render.ImageResolver,
	cache service.SectionCache,
	pub analytics.Publisher,
	log logger.Logger,
) *RenderSectionUseCase {
	return &RenderSectionUseCase{
		sources:   src,
		renderer:  r,
		images:    images,
		cache:     cache,
		publisher: pub,
		logger:    log,
		now:       time.Now,
	}
}

type RenderSectionInput struct {
	Name        string
	Path        string
	VisitorHash string
}

type RenderSectionOutput struct {
	HTML   []byte
	Cached bool
}

func (uc *RenderSectionUseCase) Execute(ctx context.Context, input RenderSectionInput) (*RenderSectionOutput, error) {
	ctx, span := tracer.Start(ctx, "RenderSection")
	defer span.End()
	span.SetAttributes(attribute.String("section", input.Name))

	if !render.KnownSection(input.Name) {
		return nil, apperror.NewNotFound("section", input.Name)
	}

	key := CacheKey(input.Name)
	if cached, ok := uc.lookup(ctx, key); ok {
		span.SetAttributes(attribute.Bool("cache_hit", true))
		uc.track(ctx, input.Name, input.Path, input.VisitorHash)
		return &RenderSectionOutput{HTML: cached, Cached: true}, nil
	}

	data, err := uc.buildSection(ctx, input.Name)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	var buf bytes.Buffer
	if err := uc.renderer.Section(&buf, input.Name, data); err != nil {
		span.RecordError(err)
		return nil, apperror.NewInternal("failed to render section "+input.Name, err)
	}

	uc.store(ctx, key, buf.Bytes())
	uc.track(ctx, input.Name, input.Path, input.VisitorHash)
	return &RenderSectionOutput{HTML: buf.Bytes()}, nil
}

func (uc *RenderSectionUseCase) buildSection(ctx context.Context, name string) (any, error) {
	switch name {
	case render.SectionAbout:
		in, err := uc.sources.Introduction.Get(ctx)
		if err != nil {
			return nil, err
		}
		return render.BuildIntroduction(in, uc.images), nil
	case render.SectionCertifications:
		certs, err := uc.sources.Certifications.List(ctx)
		if err != nil {
			return nil, err
		}
		return render.BuildCertificationCards(certs), nil
	case render.SectionProjects:
		projects, err := uc.sources.Projects.List(ctx)
		if err != nil {
			return nil, err
		}
		return render.BuildProjectCards(projects, uc.images), nil
	}
	return nil, apperror.NewNotFound("section", name)
}

// Cache and analytics failures never fail a render.

func (uc *RenderSectionUseCase) lookup(ctx context.Context, key string) ([]byte, bool) {
	cached, ok, err := uc.cache.Get(ctx, key)
	if err != nil {
		uc.logger.Warn("Section cache read failed", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	return cached, ok
}

func (uc *RenderSectionUseCase) store(ctx context.Context, key string, value []byte) {
	if err := uc.cache.Set(ctx, key, value); err != nil {
		uc.logger.Warn("Section cache write failed", zap.String("key", key), zap.Error(err))
	}
}

func (uc *RenderSectionUseCase) track(ctx context.Context, section, path, visitor string) {
	if visitor == "" {
		return
	}
	event := analytics.ViewEvent{
		Section:     section,
		Path:        path,
		VisitorHash: visitor,
		OccurredAt:  uc.now().UTC(),
	}
	if err := uc.publisher.PublishView(ctx, event); err != nil {
		uc.logger.Warn("Failed to publish view event", zap.String("section", section), zap.Error(err))
	}
}

// CacheKey is the cache key of a section or of render.PageKey.
func CacheKey(name string) string {
	return "section:" + name
}
