package http

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
	"go.uber.org/zap"

	"github.com/sammy-mbugua/portfolio/adapters/session"
	"github.com/sammy-mbugua/portfolio/internal/application/service"
	"github.com/sammy-mbugua/portfolio/internal/application/usecase/sitecontext"
	"github.com/sammy-mbugua/portfolio/pkg/logger"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	layoutTemplate   = "layout"
	templatePartials = "templates/partials.html"

	PageHome          = "home"
	PageAbout         = "about"
	PageExperience    = "experience"
	PageProjects      = "projects"
	PageProjectDetail = "project_detail"
	PageContact       = "contact"
	PageError         = "error"
)

var pages = []string{PageHome, PageAbout, PageExperience, PageProjects, PageProjectDetail, PageContact, PageError}

// PageData is what every page template receives.
type PageData struct {
	Site    sitecontext.SiteContext
	Flashes []session.Flash
	Content any
}

// templateSet satisfies gin's render.HTMLRender with one template tree per page, each
// holding the shared layout and partials.
type templateSet map[string]*template.Template

func (s templateSet) Instance(name string, data any) render.Render {
	return render.HTML{Template: s[name], Name: layoutTemplate, Data: data}
}

// NewTemplateSet parses the embedded pages. mediaURL is exposed to templates for
// turning stored file references into links.
func NewTemplateSet(storage service.BlobStorage) (render.HTMLRender, error) {
	funcs := template.FuncMap{
		"mediaURL": storage.URL,
		"year":     func() int { return time.Now().Year() },
	}

	set := templateSet{}
	for _, page := range pages {
		t, err := template.New(page).Funcs(funcs).ParseFS(templateFS,
			"templates/layout.html",
			templatePartials,
			"templates/"+page+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", page, err)
		}
		set[page] = t
	}
	return set, nil
}

// Renderer writes full pages: site context and pending flashes are gathered here so
// handlers only supply their own content.
type Renderer struct {
	site   *sitecontext.Supplier
	flash  session.FlashStore
	logger logger.Logger
}

func NewRenderer(site *sitecontext.Supplier, flash session.FlashStore, log logger.Logger) *Renderer {
	return &Renderer{site: site, flash: flash, logger: log}
}

func (r *Renderer) Page(c *gin.Context, status int, page string, content any) {
	site, err := r.site.Get(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	flashes, err := r.flash.Pop(c)
	if err != nil {
		r.logger.Warn("Failed to read flash messages", zap.Error(err))
	}
	c.HTML(status, page, PageData{Site: site, Flashes: flashes, Content: content})
}

// ErrorPage renders the error template with the site context. Flashes stay queued for
// the next page. A failing site lookup falls back to an empty context.
func (r *Renderer) ErrorPage(c *gin.Context, status int, view ErrorView) {
	var site sitecontext.SiteContext
	if r != nil && r.site != nil {
		s, err := r.site.Get(c.Request.Context())
		if err != nil {
			r.logger.Warn("Failed to load site context for error page", zap.Error(err))
		} else {
			site = s
		}
	}
	c.HTML(status, PageError, PageData{Site: site, Flashes: []session.Flash{}, Content: view})
}

// Redirect queues f and sends a 303 to location.
func (r *Renderer) Redirect(c *gin.Context, location string, f session.Flash) {
	if err := r.flash.Add(c, f); err != nil {
		r.logger.Warn("Failed to store flash message", zap.Error(err))
	}
	c.Redirect(http.StatusSeeOther, location)
}
