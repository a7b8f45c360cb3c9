package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"

	"github.com/sammy-mbugua/portfolio/pkg/apperror"
	"github.com/sammy-mbugua/portfolio/pkg/auth"
	"github.com/sammy-mbugua/portfolio/pkg/logger"
)

type Handlers struct {
	Public  *PublicHandler
	Auth    *AuthHandler
	Profile *ProfileHandler
	Project *ProjectHandler
	Content *ContentHandler
	Contact *ContactHandler
	Feed    *FeedHandler
}

type RouterOptions struct {
	Templates render.HTMLRender
	JWT       *auth.JWTService
	Logger    logger.Logger
	// Renderer supplies the site context for error pages.
	Renderer  *Renderer
	// MediaRoot, when set, is served under MediaURL.
	MediaRoot string
	MediaURL  string
}

func NewRouter(h Handlers, opts RouterOptions) *gin.Engine {
	router := gin.New()
	router.HTMLRender = opts.Templates
	router.Use(gin.Recovery(), RequestLogger(opts.Logger), ErrorMiddleware(opts.Logger, opts.Renderer))

	router.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "UP"}) })
	if opts.MediaRoot != "" && opts.MediaURL != "" {
		router.Static(opts.MediaURL, opts.MediaRoot)
	}

	router.GET("/", h.Public.Home)
	router.GET("/about/", h.Public.About)
	router.GET("/experience/", h.Public.Experience)
	router.GET("/projects/", h.Public.Projects)
	router.GET("/project/:id/", h.Public.ProjectDetail)
	router.GET("/contact/", h.Public.ContactForm)
	router.POST("/contact/", h.Public.ContactSubmit)
	router.POST("/contact/ajax/", JSONErrors(), h.Public.ContactAjax)
	router.GET("/download-resume/", h.Public.DownloadResume)
	if h.Feed != nil {
		router.GET("/feed/projects.xml", h.Feed.ProjectsRSS)
	}

	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.Set(GinContextKeyWantsJSON, true)
		}
		c.Error(apperror.NewNotFound("page", c.Request.URL.Path))
	})

	api := router.Group("/api", JSONErrors())
	{
		admin := api.Group("/admin")
		{
			admin.POST("/auth/login", h.Auth.Login)

			private := admin.Group("/")
			private.Use(AuthMiddleware(opts.JWT, opts.Logger))
			{
				private.GET("/profile", h.Profile.GetProfile)
				private.PUT("/profile", h.Profile.SaveProfile)
				private.DELETE("/profile/:id", h.Profile.DeleteProfile)
				private.POST("/profile/image", h.Profile.UploadImage)
				private.POST("/profile/resume", h.Profile.UploadResume)

				education := private.Group("/education")
				{
					education.GET("", h.Content.ListEducation)
					education.POST("", h.Content.CreateEducation)
					education.PUT("/:id", h.Content.UpdateEducation)
					education.DELETE("/:id", h.Content.DeleteEducation)
				}

				experiences := private.Group("/experiences")
				{
					experiences.GET("", h.Content.ListExperience)
					experiences.POST("", h.Content.CreateExperience)
					experiences.PUT("/:id", h.Content.UpdateExperience)
					experiences.DELETE("/:id", h.Content.DeleteExperience)
					experiences.POST("/:id/achievements", h.Content.AddAchievement)
				}
				private.PUT("/achievements/:id", h.Content.UpdateAchievement)
				private.DELETE("/achievements/:id", h.Content.DeleteAchievement)

				categories := private.Group("/skill-categories")
				{
					categories.GET("", h.Content.ListSkillCategories)
					categories.POST("", h.Content.CreateSkillCategory)
					categories.PUT("/:id", h.Content.UpdateSkillCategory)
					categories.DELETE("/:id", h.Content.DeleteSkillCategory)
					categories.POST("/:id/skills", h.Content.AddSkill)
				}
				private.PUT("/skills/:id", h.Content.UpdateSkill)
				private.DELETE("/skills/:id", h.Content.DeleteSkill)

				projects := private.Group("/projects")
				{
					projects.GET("", h.Project.ListProjects)
					projects.POST("", h.Project.CreateProject)
					projects.GET("/:id", h.Project.GetProject)
					projects.PUT("/:id", h.Project.UpdateProject)
					projects.DELETE("/:id", h.Project.DeleteProject)
					projects.POST("/:id/image", h.Project.UploadImage)
				}

				social := private.Group("/social-links")
				{
					social.GET("", h.Content.ListSocialLinks)
					social.POST("", h.Content.CreateSocialLink)
					social.PUT("/:id", h.Content.UpdateSocialLink)
					social.DELETE("/:id", h.Content.DeleteSocialLink)
				}

				messages := private.Group("/contact-messages")
				{
					messages.GET("", h.Contact.ListMessages)
					messages.GET("/:id", h.Contact.GetMessage)
					messages.POST("/mark-read", h.Contact.MarkRead)
					messages.POST("/mark-unread", h.Contact.MarkUnread)
					messages.DELETE("/:id", h.Contact.DeleteMessage)
				}
			}
		}
	}

	return router
}
