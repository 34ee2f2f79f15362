package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/JanviSingh1712/portfolio/adapters/persistence"
	"github.com/JanviSingh1712/portfolio/internal/application/service"
	analyticsUC "github.com/JanviSingh1712/portfolio/internal/application/usecase/analytics"
	authUC "github.com/JanviSingh1712/portfolio/internal/application/usecase/auth"
	cacheUC "github.com/JanviSingh1712/portfolio/internal/application/usecase/cache"
	certificationUC "github.com/JanviSingh1712/portfolio/internal/application/usecase/certification"
	introductionUC "github.com/JanviSingh1712/portfolio/internal/application/usecase/introduction"
	projectUC "github.com/JanviSingh1712/portfolio/internal/application/usecase/project"
	sectionUC "github.com/JanviSingh1712/portfolio/internal/application/usecase/section"
	"github.com/JanviSingh1712/portfolio/internal/domain/analytics"
	"github.com/JanviSingh1712/portfolio/internal/render"
	"github.com/JanviSingh1712/portfolio/pkg/auth"
	"github.com/JanviSingh1712/portfolio/pkg/logger"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []analytics.ViewEvent
}

func (p *recordingPublisher) PublishView(_ context.Context, ev analytics.ViewEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, ev)
	return nil
}

func (p *recordingPublisher) reset() []analytics.ViewEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := p.events
	p.events = nil
	return out
}

type memoryCounter struct {
	counts map[string]int64
}

func (m *memoryCounter) Increment(_ context.Context, section string) error {
	m.counts[section]++
	return nil
}

func (m *memoryCounter) Counts(context.Context) (map[string]int64, error) {
	return m.counts, nil
}

type RouterTestSuite struct {
	suite.Suite
	router    *gin.Engine
	publisher *recordingPublisher
	password  string
}

func TestRouter(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}

func (s *RouterTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	log := logger.NewNop()

	renderer, err := render.NewRenderer()
	s.Require().NoError(err)

	introRepo := persistence.NewStaticIntroductionRepo()
	certRepo := persistence.NewStaticCertificationRepo()
	projectRepo := persistence.NewStaticProjectRepo()

	s.publisher = &recordingPublisher{}
	sectionUseCase := sectionUC.NewRenderSectionUseCase(
		sectionUC.Sources{Introduction: introRepo, Certifications: certRepo, Projects: projectRepo},
		renderer, render.IdentityImages{}, service.NopCache{}, s.publisher, log,
	)
	pageUseCase := sectionUC.NewRenderPageUseCase(sectionUseCase, sectionUC.SiteInfo{URL: "https://janvi.dev"})

	s.password = "correct horse"
	hash, err := auth.HashPassword(s.password)
	s.Require().NoError(err)
	jwtSvc := auth.NewJWTService("test-secret", time.Hour)
	loginUseCase := authUC.NewLoginUseCase(authUC.Owner{ID: uuid.New(), PasswordHash: hash}, jwtSvc, log)

	counter := &memoryCounter{counts: map[string]int64{"about": 3, "page": 4}}

	s.router = NewRouter(RouterConfig{
		TrackingSalt: "salt",
		JWTService:   jwtSvc,
		Sections:     NewSectionHandler(sectionUseCase, pageUseCase, log),
		Content: NewContentHandler(
			introductionUC.NewGetIntroductionUseCase(introRepo),
			certificationUC.NewListCertificationsUseCase(certRepo, log),
			projectUC.NewListProjectsUseCase(projectRepo, log),
			projectUC.NewGetProjectUseCase(projectRepo, log),
		),
		RSS:   NewRSSHandler(projectUC.NewProjectFeedUseCase(projectRepo, introRepo, "https://janvi.dev", log), log),
		Auth:  NewAuthHandler(loginUseCase, log),
		Admin: NewAdminHandler(analyticsUC.NewViewStatsUseCase(counter), cacheUC.NewPurgeCacheUseCase(service.NopCache{}, log), log),
	}, log)
}

func (s *RouterTestSuite) SetupTest() {
	s.publisher.reset()
}

func (s *RouterTestSuite) do(method, path string, body []byte, header map[string]string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, path, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rr := httptest.NewRecorder()
	s.router.ServeHTTP(rr, req)
	return rr
}

func (s *RouterTestSuite) Test_Page() {
	rr := s.do(http.MethodGet, "/", nil, nil)

	s.Equal(http.StatusOK, rr.Code)
	s.Contains(rr.Header().Get("Content-Type"), "text/html")
	body := rr.Body.String()
	about := strings.Index(body, `id="about"`)
	certs := strings.Index(body, `id="certifications"`)
	projects := strings.Index(body, `id="projects"`)
	s.True(about >= 0 && about < certs && certs < projects, "sections out of order")

	events := s.publisher.reset()
	s.Require().Len(events, 1)
	s.Equal(render.PageKey, events[0].Section)
	s.Len(events[0].VisitorHash, visitorHashLength)
}

func (s *RouterTestSuite) Test_Section() {
	rr := s.do(http.MethodGet, "/sections/projects", nil, nil)

	s.Equal(http.StatusOK, rr.Code)
	s.Equal(3, strings.Count(rr.Body.String(), "data-card"))
	s.Equal("MISS", rr.Header().Get("X-Cache"))
}

func (s *RouterTestSuite) Test_UnknownSection_HTMLNotFound() {
	rr := s.do(http.MethodGet, "/sections/blog", nil, nil)

	s.Equal(http.StatusNotFound, rr.Code)
	s.Contains(rr.Header().Get("Content-Type"), "text/html")
	s.Contains(rr.Body.String(), "404 Not Found")
}

func (s *RouterTestSuite) Test_DoNotTrack() {
	rr := s.do(http.MethodGet, "/sections/about", nil, map[string]string{"DNT": "1"})

	s.Equal(http.StatusOK, rr.Code)
	s.Empty(s.publisher.reset())
}

func (s *RouterTestSuite) Test_ProjectsAPI() {
	rr := s.do(http.MethodGet, "/api/projects", nil, nil)
	s.Require().Equal(http.StatusOK, rr.Code)

	var list struct {
		Projects []map[string]any `json:"projects"`
	}
	s.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &list))
	s.Require().Len(list.Projects, 3)
	s.Equal("Voice-to-Visual", list.Projects[0]["id"])
	s.NotContains(list.Projects[0], "github_link")
	s.NotContains(list.Projects[0], "live_demo_link")
	s.Equal("https://github.com/JanviSingh1712/Event_Ticket_Booking_System", list.Projects[1]["github_link"])

	rr = s.do(http.MethodGet, "/api/projects/Medicine_Delivery", nil, nil)
	s.Equal(http.StatusOK, rr.Code)
	s.Contains(rr.Body.String(), "Medicine_Delivery Ecommerce")

	rr = s.do(http.MethodGet, "/api/projects/missing", nil, nil)
	s.Equal(http.StatusNotFound, rr.Code)
	s.Contains(rr.Header().Get("Content-Type"), "application/json")
}

func (s *RouterTestSuite) Test_IntroductionAndCertificationsAPI() {
	rr := s.do(http.MethodGet, "/api/introduction", nil, nil)
	s.Require().Equal(http.StatusOK, rr.Code)
	s.Contains(rr.Body.String(), `"full_name":"Janvi Singh"`)

	rr = s.do(http.MethodGet, "/api/certifications", nil, nil)
	s.Require().Equal(http.StatusOK, rr.Code)

	var list struct {
		Certifications []CertificationDTO `json:"certifications"`
	}
	s.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &list))
	s.Len(list.Certifications, 5)
	for _, c := range list.Certifications {
		s.Equal("award", c.Icon)
		s.Nil(c.URL)
	}
}

func (s *RouterTestSuite) Test_Feed() {
	rr := s.do(http.MethodGet, "/feed.xml", nil, nil)

	s.Equal(http.StatusOK, rr.Code)
	s.Contains(rr.Header().Get("Content-Type"), "application/rss+xml")
	s.Equal(3, strings.Count(rr.Body.String(), "<item>"))
	s.Contains(rr.Body.String(), "https://janvi.dev/#projects")
}

func (s *RouterTestSuite) Test_Health() {
	rr := s.do(http.MethodGet, "/api/health", nil, nil)
	s.Equal(http.StatusOK, rr.Code)
	s.JSONEq(`{"status":"UP"}`, rr.Body.String())
}

func (s *RouterTestSuite) Test_Admin_Flow() {
	bodyBad, _ := json.Marshal(gin.H{"password": "wrong"})
	rr := s.do(http.MethodPost, "/api/admin/auth/login", bodyBad, nil)
	s.Equal(http.StatusUnauthorized, rr.Code)

	rr = s.do(http.MethodPost, "/api/admin/auth/login", []byte(`{}`), nil)
	s.Equal(http.StatusBadRequest, rr.Code)

	bodyGood, _ := json.Marshal(gin.H{"password": s.password})
	rr = s.do(http.MethodPost, "/api/admin/auth/login", bodyGood, nil)
	s.Require().Equal(http.StatusOK, rr.Code)

	var login LoginResponse
	s.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &login))
	s.Require().NotEmpty(login.AccessToken)
	bearer := map[string]string{"Authorization": "Bearer " + login.AccessToken}

	rr = s.do(http.MethodGet, "/api/admin/views", nil, bearer)
	s.Require().Equal(http.StatusOK, rr.Code)
	var stats ViewStatsResponse
	s.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &stats))
	s.Equal(int64(7), stats.Total)
	s.Equal(int64(3), stats.Counts["about"])

	rr = s.do(http.MethodDelete, "/api/admin/cache", nil, bearer)
	s.Equal(http.StatusOK, rr.Code)
	s.JSONEq(`{"removed":0}`, rr.Body.String())

	rr = s.do(http.MethodGet, "/api/admin/views", nil, nil)
	s.Equal(http.StatusUnauthorized, rr.Code)

	rr = s.do(http.MethodGet, "/api/admin/views", nil, map[string]string{"Authorization": login.AccessToken})
	s.Equal(http.StatusUnauthorized, rr.Code)
}

func TestAdminDisabled(t *testing.T) {
	gin.SetMode(gin.TestMode)
	log := logger.NewNop()
	projectRepo := persistence.NewStaticProjectRepo()

	router := NewRouter(RouterConfig{
		Sections: &SectionHandler{},
		Content:  &ContentHandler{},
		RSS:      NewRSSHandler(projectUC.NewProjectFeedUseCase(projectRepo, persistence.NewStaticIntroductionRepo(), "", log), log),
	}, log)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/auth/login", strings.NewReader(`{"password":"x"}`))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
}

func TestVisitorHash(t *testing.T) {
	a := VisitorHash("salt", "10.0.0.1", "curl/8")
	b := VisitorHash("salt", "10.0.0.1", "curl/8")
	c := VisitorHash("other", "10.0.0.1", "curl/8")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, visitorHashLength)
}
