// Package render turns content records into card view models and renders
// them with the embedded HTML templates.
//
// Every builder follows the same rule: one card per record, in list order,
// and an optional fragment only when its field is set.
package render

import (
	"fmt"

	"github.com/JanviSingh1712/portfolio/internal/domain/certification"
	"github.com/JanviSingh1712/portfolio/internal/domain/introduction"
	"github.com/JanviSingh1712/portfolio/internal/domain/project"
)

// ImageResolver maps a stored image reference to a URL the browser can load.
type ImageResolver interface {
	Resolve(ref string) string
}

// IdentityImages leaves references untouched.
type IdentityImages struct{}

func (IdentityImages) Resolve(ref string) string { return ref }

type Image struct {
	Src    string
	Alt    string
	Hint   string
	Width  int
	Height int
}

// LinkButton is an external link styled as a button. It always opens in a
// new browsing context.
type LinkButton struct {
	Href    string
	Label   string
	Icon    string
	Variant string
	Class   string
}

type IntroductionView struct {
	FullName      string
	Role          string
	EducationLine string
	Bio           string
	Photo         *Image
	Links         []LinkButton
}

type CertificationCard struct {
	Key         string
	Icon        string
	Title       string
	Subtitle    string
	Description string
	Action      *LinkButton
}

type ProjectCard struct {
	Key         string
	Title       string
	Description string
	Cover       *Image
	Tags        []string
	Actions     []LinkButton
}

const (
	profilePhotoSize = 200
	profilePhotoHint = "profile outdoor"
)

func present(s *string) bool {
	return s != nil && *s != ""
}

func BuildIntroduction(in *introduction.Introduction, images ImageResolver) IntroductionView {
	v := IntroductionView{
		FullName: in.FullName,
		Role:     in.Role,
		EducationLine: fmt.Sprintf("%s, %s (%s)",
			in.Education.Degree, in.Education.University, in.Education.GraduationYear),
		Bio:   in.Bio,
		Links: []LinkButton{},
	}
	if present(in.ProfileImageURL) {
		v.Photo = &Image{
			Src:    images.Resolve(*in.ProfileImageURL),
			Alt:    in.FullName,
			Hint:   profilePhotoHint,
			Width:  profilePhotoSize,
			Height: profilePhotoSize,
		}
	}
	if present(in.LinkedInURL) {
		v.Links = append(v.Links, LinkButton{
			Href:    *in.LinkedInURL,
			Label:   "LinkedIn",
			Icon:    "linkedin",
			Variant: "outline",
			Class:   "hover:bg-primary hover:text-primary-foreground",
		})
	}
	if present(in.GitHubURL) {
		v.Links = append(v.Links, LinkButton{
			Href:    *in.GitHubURL,
			Label:   "GitHub",
			Icon:    "github",
			Variant: "outline",
			Class:   "hover:bg-foreground hover:text-background",
		})
	}
	return v
}

func BuildCertificationCards(certs []certification.Certification) []CertificationCard {
	cards := make([]CertificationCard, 0, len(certs))
	for _, c := range certs {
		card := CertificationCard{
			Key:      c.Title,
			Icon:     c.IconName(),
			Title:    c.Title,
			Subtitle: c.IssuingOrganization,
		}
		if present(c.Description) {
			card.Description = *c.Description
		}
		if present(c.URL) {
			card.Action = &LinkButton{
				Href:    *c.URL,
				Label:   "View Certificate",
				Icon:    "external-link",
				Variant: "outline",
				Class:   "mt-auto w-full sm:w-auto hover:bg-accent hover:text-accent-foreground",
			}
		}
		cards = append(cards, card)
	}
	return cards
}

func BuildProjectCards(projects []*project.Project, images ImageResolver) []ProjectCard {
	cards := make([]ProjectCard, 0, len(projects))
	for _, p := range projects {
		card := ProjectCard{
			Key:         p.ID,
			Title:       p.Title,
			Description: p.Description,
			Tags:        append([]string(nil), p.Technologies...),
			Actions:     []LinkButton{},
		}
		if present(p.ImageURL) {
			card.Cover = &Image{
				Src:  images.Resolve(*p.ImageURL),
				Alt:  p.Title,
				Hint: p.ImageHint(),
			}
		}
		if present(p.GitHubLink) {
			card.Actions = append(card.Actions, LinkButton{
				Href:    *p.GitHubLink,
				Label:   "GitHub",
				Icon:    "github",
				Variant: "outline",
				Class:   "hover:bg-primary hover:text-primary-foreground",
			})
		}
		if present(p.LiveDemoLink) {
			card.Actions = append(card.Actions, LinkButton{
				Href:    *p.LiveDemoLink,
				Label:   "Live Demo",
				Icon:    "external-link",
				Variant: "default",
				Class:   "bg-accent text-accent-foreground hover:bg-accent/90",
			})
		}
		cards = append(cards, card)
	}
	return cards
}
