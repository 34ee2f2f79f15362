package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
)

const (
	SectionAbout          = "about"
	SectionCertifications = "certifications"
	SectionProjects       = "projects"

	// PageKey identifies the full page in caches and view events.
	PageKey = "page"
)

var sectionOrder = []string{SectionAbout, SectionCertifications, SectionProjects}

// Sections lists the section names in page order.
func Sections() []string {
	return append([]string(nil), sectionOrder...)
}

func KnownSection(name string) bool {
	for _, s := range sectionOrder {
		if s == name {
			return true
		}
	}
	return false
}

//go:embed templates/*.html
var templateFS embed.FS

type PageData struct {
	Title          string
	Description    string
	SiteURL        string
	Introduction   IntroductionView
	Certifications []CertificationCard
	Projects       []ProjectCard
}

type Renderer struct {
	tmpl *template.Template
}

func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("portfolio").ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Section renders one section fragment. data must be the view model the
// section expects: IntroductionView, []CertificationCard or []ProjectCard.
func (r *Renderer) Section(w io.Writer, name string, data any) error {
	if !KnownSection(name) {
		return fmt.Errorf("unknown section %q", name)
	}
	return r.tmpl.ExecuteTemplate(w, "section/"+name, data)
}

func (r *Renderer) Page(w io.Writer, data PageData) error {
	return r.tmpl.ExecuteTemplate(w, "page", data)
}
