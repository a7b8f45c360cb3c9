package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sammy-mbugua/portfolio/adapters/session"
	contactUC "github.com/sammy-mbugua/portfolio/internal/application/usecase/contact"
	portfolioUC "github.com/sammy-mbugua/portfolio/internal/application/usecase/portfolio"
	resumeUC "github.com/sammy-mbugua/portfolio/internal/application/usecase/resume"
	"github.com/sammy-mbugua/portfolio/internal/domain/contact"
	"github.com/sammy-mbugua/portfolio/pkg/apperror"
	"github.com/sammy-mbugua/portfolio/pkg/logger"
	"github.com/sammy-mbugua/portfolio/pkg/pagination"
)

const (
	MsgContactThanks     = "Thank you for your message! I will get back to you soon."
	MsgContactAjaxThanks = "Thank you for your message!"
	MsgResumeUnavailable = "Resume not available."
)

type PublicHandler struct {
	queryUseCase  *portfolioUC.QueryUseCase
	submitUseCase *contactUC.SubmitContactUseCase
	resumeUseCase *resumeUC.DownloadResumeUseCase
	renderer      *Renderer
	logger        logger.Logger
}

func NewPublicHandler(
	queryUseCase *portfolioUC.QueryUseCase,
	submitUseCase *contactUC.SubmitContactUseCase,
	resumeUseCase *resumeUC.DownloadResumeUseCase,
	renderer *Renderer,
	log logger.Logger,
) *PublicHandler {
	return &PublicHandler{
		queryUseCase:  queryUseCase,
		submitUseCase: submitUseCase,
		resumeUseCase: resumeUseCase,
		renderer:      renderer,
		logger:        log,
	}
}

func (h *PublicHandler) Home(c *gin.Context) {
	out, err := h.queryUseCase.Home(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	h.renderer.Page(c, http.StatusOK, PageHome, out)
}

func (h *PublicHandler) About(c *gin.Context) {
	out, err := h.queryUseCase.About(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	h.renderer.Page(c, http.StatusOK, PageAbout, out)
}

func (h *PublicHandler) Experience(c *gin.Context) {
	out, err := h.queryUseCase.Experience(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	h.renderer.Page(c, http.StatusOK, PageExperience, out)
}

func (h *PublicHandler) Projects(c *gin.Context) {
	input := portfolioUC.ListProjectsInput{
		FeaturedOnly: c.Query("featured") == "true",
		Page:         pagination.ParseNumber(c.Query("page")),
	}
	out, err := h.queryUseCase.ListProjects(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	h.renderer.Page(c, http.StatusOK, PageProjects, out)
}

func (h *PublicHandler) ProjectDetail(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewNotFound("project", c.Param("id")))
		return
	}
	out, err := h.queryUseCase.ProjectDetail(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	h.renderer.Page(c, http.StatusOK, PageProjectDetail, out)
}

// ContactField is one input of the rendered contact form.
type ContactField struct {
	Name      string
	Label     string
	InputType string
	MaxLen    int
	Value     string
}

type ContactView struct {
	Fields []ContactField
	Errors apperror.FieldErrors
}

func newContactView(values map[string]string, errs apperror.FieldErrors) ContactView {
	return ContactView{
		Fields: []ContactField{
			{Name: contact.FieldName, Label: "Name", InputType: "text", MaxLen: contact.MaxNameLen, Value: values[contact.FieldName]},
			{Name: contact.FieldEmail, Label: "Email", InputType: "email", MaxLen: contact.MaxEmailLen, Value: values[contact.FieldEmail]},
			{Name: contact.FieldSubject, Label: "Subject", InputType: "text", MaxLen: contact.MaxSubjectLen, Value: values[contact.FieldSubject]},
			{Name: contact.FieldMessage, Label: "Message", Value: values[contact.FieldMessage]},
		},
		Errors: errs,
	}
}

func (h *PublicHandler) ContactForm(c *gin.Context) {
	h.renderer.Page(c, http.StatusOK, PageContact, newContactView(nil, nil))
}

// ContactSubmit handles the HTML form. Invalid input re-renders the form with the
// submitted values and per-field errors.
func (h *PublicHandler) ContactSubmit(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBind(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid contact form", err))
		return
	}

	_, err := h.submitUseCase.Execute(c.Request.Context(), contactUC.SubmitContactInput{Values: req.Values()})
	if fields, ok := apperror.FieldErrorsOf(err); ok {
		h.renderer.Page(c, http.StatusOK, PageContact, newContactView(req.Values(), fields))
		return
	}
	if err != nil {
		c.Error(err)
		return
	}
	h.renderer.Redirect(c, "/contact/", session.Success(MsgContactThanks))
}

// ContactAjax is the programmatic variant of ContactSubmit.
func (h *PublicHandler) ContactAjax(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "errors": gin.H{"__all__": []string{"Malformed request body."}}})
		return
	}

	_, err := h.submitUseCase.Execute(c.Request.Context(), contactUC.SubmitContactInput{Values: req.Values()})
	if fields, ok := apperror.FieldErrorsOf(err); ok {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "errors": fields})
		return
	}
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": MsgContactAjaxThanks})
}

// DownloadResume streams the stored resume as an attachment, or sends the visitor home
// with an error flash when there is none.
func (h *PublicHandler) DownloadResume(c *gin.Context) {
	out, err := h.resumeUseCase.Execute(c.Request.Context())
	if errors.Is(err, apperror.ErrMissingResource) {
		h.renderer.Redirect(c, "/", session.Error(MsgResumeUnavailable))
		return
	}
	if err != nil {
		c.Error(err)
		return
	}
	defer out.Body.Close()

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", out.Filename))
	size := out.Size
	if size <= 0 {
		size = -1
	}
	c.DataFromReader(http.StatusOK, size, out.ContentType, out.Body, nil)
	h.logger.Debug("Resume downloaded", zap.String("filename", out.Filename), zap.Int64("size", out.Size))
}
