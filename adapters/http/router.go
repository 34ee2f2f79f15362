package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JanviSingh1712/portfolio/pkg/apperror"
	"github.com/JanviSingh1712/portfolio/pkg/auth"
	"github.com/JanviSingh1712/portfolio/pkg/logger"
)

type RouterConfig struct {
	PublicDir    string
	TrackingSalt string
	// JWTService is nil when admin access is not configured; admin routes
	// then answer 503.
	JWTService *auth.JWTService

	Sections *SectionHandler
	Content  *ContentHandler
	RSS      *RSSHandler
	Auth     *AuthHandler
	Admin    *AdminHandler
}

func NewRouter(cfg RouterConfig, log logger.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestLogger(log), ErrorMiddleware(log))

	if cfg.PublicDir != "" {
		router.Static("/assets", cfg.PublicDir)
	}

	site := router.Group("/")
	site.Use(VisitorMiddleware(cfg.TrackingSalt))
	{
		site.GET("/", cfg.Sections.Page)
		site.GET("/sections/:name", cfg.Sections.Section)
	}
	router.GET("/feed.xml", cfg.RSS.ProjectsFeed)

	api := router.Group("/api")
	{
		public := api.Group("/")
		{
			public.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "UP"}) })
			public.GET("/introduction", cfg.Content.GetIntroduction)
			public.GET("/certifications", cfg.Content.ListCertifications)
			public.GET("/projects", cfg.Content.ListProjects)
			public.GET("/projects/:id", cfg.Content.GetProject)
		}

		admin := api.Group("/admin")
		if cfg.JWTService == nil || cfg.Auth == nil {
			admin.Any("/*path", func(c *gin.Context) {
				c.Error(apperror.NewUnavailable("admin access"))
			})
		} else {
			admin.POST("/auth/login", cfg.Auth.Login)

			adminPrivate := admin.Group("/")
			adminPrivate.Use(AuthMiddleware(cfg.JWTService, log))
			{
				adminPrivate.GET("/views", cfg.Admin.Views)
				adminPrivate.DELETE("/cache", cfg.Admin.PurgeCache)
			}
		}
	}

	router.NoRoute(func(c *gin.Context) {
		c.Error(apperror.NewNotFound("route", c.Request.URL.Path))
	})
	return router
}
