package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/JanviSingh1712/portfolio/internal/content"
	"github.com/JanviSingh1712/portfolio/internal/domain/certification"
	"github.com/JanviSingh1712/portfolio/internal/domain/project"
)

func parse(t *testing.T, markup string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(markup))
	require.NoError(t, err)
	return doc
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// findAll returns the element nodes below root for which match is true, in
// document order.
func findAll(root *html.Node, match func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && match(n) {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return out
}

func withAttr(key string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		_, ok := attr(n, key)
		return ok
	}
}

func withAttrValue(key, val string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		v, ok := attr(n, key)
		return ok && v == val
	}
}

func text(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.TrimSpace(b.String())
}

func renderSection(t *testing.T, name string, data any) *html.Node {
	t.Helper()
	r, err := NewRenderer()
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, r.Section(&buf, name, data))
	return parse(t, buf.String())
}

func TestRenderer_UnknownSection(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)
	assert.Error(t, r.Section(&bytes.Buffer{}, "contact", nil))
}

func TestRenderer_CertificationMinimalCard(t *testing.T) {
	cards := BuildCertificationCards([]certification.Certification{{Title: "X", IssuingOrganization: "Y"}})

	doc := renderSection(t, SectionCertifications, cards)

	articles := findAll(doc, withAttrValue("data-card", "certification"))
	require.Len(t, articles, 1)
	card := articles[0]
	assert.Equal(t, "X", text(findAll(card, func(n *html.Node) bool { return n.Data == "h3" })[0]))
	assert.Equal(t, "Y", text(findAll(card, withAttrValue("data-field", "subtitle"))[0]))
	assert.Empty(t, findAll(card, withAttrValue("data-field", "description")))
	assert.Empty(t, findAll(card, withAttr("data-action")))

	icons := findAll(card, withAttrValue("data-lucide", certification.DefaultIcon))
	assert.Len(t, icons, 1)
}

func TestRenderer_CertificationLinkButton(t *testing.T) {
	cards := BuildCertificationCards([]certification.Certification{
		{Title: "A", IssuingOrganization: "o", URL: strPtr("https://cert.example/a"), Description: strPtr("about A")},
	})

	doc := renderSection(t, SectionCertifications, cards)

	buttons := findAll(doc, withAttr("data-action"))
	require.Len(t, buttons, 1)
	href, _ := attr(buttons[0], "href")
	assert.Equal(t, "https://cert.example/a", href)
	target, _ := attr(buttons[0], "target")
	assert.Equal(t, "_blank", target)
	rel, _ := attr(buttons[0], "rel")
	assert.Equal(t, "noopener noreferrer", rel)
	assert.Equal(t, "View Certificate", text(buttons[0]))
	assert.Len(t, findAll(doc, withAttrValue("data-field", "description")), 1)
}

func TestRenderer_ProjectWithoutLinks(t *testing.T) {
	cards := BuildProjectCards([]*project.Project{
		{ID: "p1", Title: "T", Description: "D", Technologies: []string{"A", "B"}},
	}, IdentityImages{})

	doc := renderSection(t, SectionProjects, cards)

	articles := findAll(doc, withAttrValue("data-card", "project"))
	require.Len(t, articles, 1)
	tags := findAll(articles[0], withAttr("data-tag"))
	require.Len(t, tags, 2)
	assert.Equal(t, "A", text(tags[0]))
	assert.Equal(t, "B", text(tags[1]))
	assert.Empty(t, findAll(articles[0], withAttr("data-action")))
	assert.Empty(t, findAll(articles[0], func(n *html.Node) bool { return n.Data == "img" }))
}

func TestRenderer_StaticContentCardsMatchLists(t *testing.T) {
	certs := content.Certifications()
	projects := content.Projects()

	certDoc := renderSection(t, SectionCertifications, BuildCertificationCards(certs))
	projDoc := renderSection(t, SectionProjects, BuildProjectCards(projects, IdentityImages{}))

	certCards := findAll(certDoc, withAttrValue("data-card", "certification"))
	require.Len(t, certCards, len(certs))
	for i, c := range certs {
		key, _ := attr(certCards[i], "data-key")
		assert.Equal(t, c.Title, key)
	}

	projCards := findAll(projDoc, withAttrValue("data-card", "project"))
	require.Len(t, projCards, len(projects))
	for i, p := range projects {
		key, _ := attr(projCards[i], "data-key")
		assert.Equal(t, p.ID, key)
		buttons := findAll(projCards[i], withAttr("data-action"))
		want := 0
		if p.GitHubLink != nil {
			want++
		}
		if p.LiveDemoLink != nil {
			want++
		}
		assert.Len(t, buttons, want, p.ID)
	}
}

func TestRenderer_Page(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	data := PageData{
		Title:          "Janvi Singh",
		SiteURL:        "https://example.com",
		Introduction:   BuildIntroduction(content.Introduction(), IdentityImages{}),
		Certifications: BuildCertificationCards(content.Certifications()),
		Projects:       BuildProjectCards(content.Projects(), IdentityImages{}),
	}
	var buf bytes.Buffer
	require.NoError(t, r.Page(&buf, data))
	doc := parse(t, buf.String())

	sections := findAll(doc, func(n *html.Node) bool { return n.Data == "section" })
	require.Len(t, sections, 3)
	for i, name := range Sections() {
		id, _ := attr(sections[i], "id")
		assert.Equal(t, name, id)
	}

	about := sections[0]
	assert.Len(t, findAll(about, withAttr("data-action")), 2)
	assert.Equal(t, "BE. in Computer Science, Chandigarh University (2022-2026)",
		text(findAll(about, withAttrValue("data-field", "education"))[0]))
	imgs := findAll(about, func(n *html.Node) bool { return n.Data == "img" })
	require.Len(t, imgs, 1)
	alt, _ := attr(imgs[0], "alt")
	assert.Equal(t, "Janvi Singh", alt)
}

func TestRenderer_EscapesContent(t *testing.T) {
	cards := BuildCertificationCards([]certification.Certification{
		{Title: "<script>alert(1)</script>", IssuingOrganization: "o"},
	})
	r, err := NewRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Section(&buf, SectionCertifications, cards))

	assert.NotContains(t, buf.String(), "<script>alert(1)</script>")
}
