package section

import (
	"bytes"
	"context"

	"github.com/JanviSingh1712/portfolio/internal/render"
	"github.com/JanviSingh1712/portfolio/pkg/apperror"
)

type SiteInfo struct {
	Title       string
	Description string
	URL         string
}

// RenderPageUseCase renders the page shell with all three sections. It
// shares repositories, cache and publisher with the section use case.
type RenderPageUseCase struct {
	sections *RenderSectionUseCase
	site     SiteInfo
}

func NewRenderPageUseCase(sections *RenderSectionUseCase, site SiteInfo) *RenderPageUseCase {
	return &RenderPageUseCase{sections: sections, site: site}
}

type RenderPageInput struct {
	Path        string
	VisitorHash string
}

func (uc *RenderPageUseCase) Execute(ctx context.Context, input RenderPageInput) (*RenderSectionOutput, error) {
	ctx, span := tracer.Start(ctx, "RenderPage")
	defer span.End()

	s := uc.sections
	key := CacheKey(render.PageKey)
	if cached, ok := s.lookup(ctx, key); ok {
		s.track(ctx, render.PageKey, input.Path, input.VisitorHash)
		return &RenderSectionOutput{HTML: cached, Cached: true}, nil
	}

	in, err := s.sources.Introduction.Get(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	certs, err := s.sources.Certifications.List(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	projects, err := s.sources.Projects.List(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	title := uc.site.Title
	if title == "" {
		title = in.FullName + " | " + in.Role
	}
	data := render.PageData{
		Title:          title,
		Description:    uc.site.Description,
		SiteURL:        uc.site.URL,
		Introduction:   render.BuildIntroduction(in, s.images),
		Certifications: render.BuildCertificationCards(certs),
		Projects:       render.BuildProjectCards(projects, s.images),
	}

	var buf bytes.Buffer
	if err := s.renderer.Page(&buf, data); err != nil {
		span.RecordError(err)
		return nil, apperror.NewInternal("failed to render page", err)
	}

	s.store(ctx, key, buf.Bytes())
	s.track(ctx, render.PageKey, input.Path, input.VisitorHash)
	return &RenderSectionOutput{HTML: buf.Bytes()}, nil
}
