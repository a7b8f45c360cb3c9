package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	contentUC "github.com/sammy-mbugua/portfolio/internal/application/usecase/content"
	"github.com/sammy-mbugua/portfolio/pkg/apperror"
	"github.com/sammy-mbugua/portfolio/pkg/logger"
)

// ContentHandler is the admin API for education, experience, skills and social links.
type ContentHandler struct {
	contentUseCase *contentUC.ContentUseCase
	logger         logger.Logger
}

func NewContentHandler(uc *contentUC.ContentUseCase, log logger.Logger) *ContentHandler {
	return &ContentHandler{contentUseCase: uc, logger: log}
}

func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid "+name+" ID", err))
		return uuid.Nil, false
	}
	return id, true
}

func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return false
	}
	return true
}

// respond writes v with status, or records err.
func respond(c *gin.Context, status int, v any, err error) {
	if err != nil {
		c.Error(err)
		return
	}
	if v == nil {
		c.Status(status)
		return
	}
	c.JSON(status, v)
}

// Education

func (h *ContentHandler) ListEducation(c *gin.Context) {
	items, err := h.contentUseCase.ListEducation(c.Request.Context())
	respond(c, http.StatusOK, items, err)
}

func (h *ContentHandler) educationInput(c *gin.Context) (contentUC.EducationInput, bool) {
	var req EducationRequest
	if !bindJSON(c, &req) {
		return contentUC.EducationInput{}, false
	}
	start, err := parseDate(req.StartDate)
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid start_date", err))
		return contentUC.EducationInput{}, false
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid end_date", err))
		return contentUC.EducationInput{}, false
	}
	return contentUC.EducationInput{
		Degree:      req.Degree,
		Institution: req.Institution,
		StartDate:   start,
		EndDate:     end,
		Description: req.Description,
		Grade:       req.Grade,
		Location:    req.Location,
	}, true
}

func (h *ContentHandler) CreateEducation(c *gin.Context) {
	in, ok := h.educationInput(c)
	if !ok {
		return
	}
	e, err := h.contentUseCase.CreateEducation(c.Request.Context(), in)
	respond(c, http.StatusCreated, e, err)
}

func (h *ContentHandler) UpdateEducation(c *gin.Context) {
	id, ok := pathID(c, "education")
	if !ok {
		return
	}
	in, ok := h.educationInput(c)
	if !ok {
		return
	}
	e, err := h.contentUseCase.UpdateEducation(c.Request.Context(), id, in)
	respond(c, http.StatusOK, e, err)
}

func (h *ContentHandler) DeleteEducation(c *gin.Context) {
	id, ok := pathID(c, "education")
	if !ok {
		return
	}
	respond(c, http.StatusNoContent, nil, h.contentUseCase.DeleteEducation(c.Request.Context(), id))
}

// Experience

func (h *ContentHandler) ListExperience(c *gin.Context) {
	items, err := h.contentUseCase.ListExperience(c.Request.Context())
	respond(c, http.StatusOK, items, err)
}

func (h *ContentHandler) experienceInput(c *gin.Context) (contentUC.ExperienceInput, bool) {
	var req ExperienceRequest
	if !bindJSON(c, &req) {
		return contentUC.ExperienceInput{}, false
	}
	start, err := parseDate(req.StartDate)
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid start_date", err))
		return contentUC.ExperienceInput{}, false
	}
	end, err := parseOptionalDate(req.EndDate)
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid end_date", err))
		return contentUC.ExperienceInput{}, false
	}
	return contentUC.ExperienceInput{
		Title:            req.Title,
		Company:          req.Company,
		Location:         req.Location,
		StartDate:        start,
		EndDate:          end,
		Description:      req.Description,
		CurrentlyWorking: req.CurrentlyWorking,
	}, true
}

func (h *ContentHandler) CreateExperience(c *gin.Context) {
	in, ok := h.experienceInput(c)
	if !ok {
		return
	}
	e, err := h.contentUseCase.CreateExperience(c.Request.Context(), in)
	respond(c, http.StatusCreated, e, err)
}

func (h *ContentHandler) UpdateExperience(c *gin.Context) {
	id, ok := pathID(c, "experience")
	if !ok {
		return
	}
	in, ok := h.experienceInput(c)
	if !ok {
		return
	}
	e, err := h.contentUseCase.UpdateExperience(c.Request.Context(), id, in)
	respond(c, http.StatusOK, e, err)
}

func (h *ContentHandler) DeleteExperience(c *gin.Context) {
	id, ok := pathID(c, "experience")
	if !ok {
		return
	}
	respond(c, http.StatusNoContent, nil, h.contentUseCase.DeleteExperience(c.Request.Context(), id))
}

func (h *ContentHandler) AddAchievement(c *gin.Context) {
	id, ok := pathID(c, "experience")
	if !ok {
		return
	}
	var req AchievementRequest
	if !bindJSON(c, &req) {
		return
	}
	a, err := h.contentUseCase.AddAchievement(c.Request.Context(), id, contentUC.AchievementInput{
		Description: req.Description,
		Order:       req.Order,
	})
	respond(c, http.StatusCreated, a, err)
}

func (h *ContentHandler) UpdateAchievement(c *gin.Context) {
	id, ok := pathID(c, "achievement")
	if !ok {
		return
	}
	var req AchievementRequest
	if !bindJSON(c, &req) {
		return
	}
	a, err := h.contentUseCase.UpdateAchievement(c.Request.Context(), id, contentUC.AchievementInput{
		Description: req.Description,
		Order:       req.Order,
	})
	respond(c, http.StatusOK, a, err)
}

func (h *ContentHandler) DeleteAchievement(c *gin.Context) {
	id, ok := pathID(c, "achievement")
	if !ok {
		return
	}
	respond(c, http.StatusNoContent, nil, h.contentUseCase.DeleteAchievement(c.Request.Context(), id))
}

// Skills

func (h *ContentHandler) ListSkillCategories(c *gin.Context) {
	items, err := h.contentUseCase.ListSkillCategories(c.Request.Context())
	respond(c, http.StatusOK, items, err)
}

func (h *ContentHandler) CreateSkillCategory(c *gin.Context) {
	var req SkillCategoryRequest
	if !bindJSON(c, &req) {
		return
	}
	cat, err := h.contentUseCase.CreateSkillCategory(c.Request.Context(), contentUC.CategoryInput{Name: req.Name, Order: req.Order})
	respond(c, http.StatusCreated, cat, err)
}

func (h *ContentHandler) UpdateSkillCategory(c *gin.Context) {
	id, ok := pathID(c, "skill category")
	if !ok {
		return
	}
	var req SkillCategoryRequest
	if !bindJSON(c, &req) {
		return
	}
	cat, err := h.contentUseCase.UpdateSkillCategory(c.Request.Context(), id, contentUC.CategoryInput{Name: req.Name, Order: req.Order})
	respond(c, http.StatusOK, cat, err)
}

func (h *ContentHandler) DeleteSkillCategory(c *gin.Context) {
	id, ok := pathID(c, "skill category")
	if !ok {
		return
	}
	respond(c, http.StatusNoContent, nil, h.contentUseCase.DeleteSkillCategory(c.Request.Context(), id))
}

func (h *ContentHandler) AddSkill(c *gin.Context) {
	id, ok := pathID(c, "skill category")
	if !ok {
		return
	}
	var req SkillRequest
	if !bindJSON(c, &req) {
		return
	}
	s, err := h.contentUseCase.AddSkill(c.Request.Context(), id, contentUC.SkillInput{
		Name:        req.Name,
		Proficiency: req.Proficiency,
		Order:       req.Order,
	})
	respond(c, http.StatusCreated, s, err)
}

func (h *ContentHandler) UpdateSkill(c *gin.Context) {
	id, ok := pathID(c, "skill")
	if !ok {
		return
	}
	var req SkillRequest
	if !bindJSON(c, &req) {
		return
	}
	s, err := h.contentUseCase.UpdateSkill(c.Request.Context(), id, contentUC.SkillInput{
		Name:        req.Name,
		Proficiency: req.Proficiency,
		Order:       req.Order,
	})
	respond(c, http.StatusOK, s, err)
}

func (h *ContentHandler) DeleteSkill(c *gin.Context) {
	id, ok := pathID(c, "skill")
	if !ok {
		return
	}
	respond(c, http.StatusNoContent, nil, h.contentUseCase.DeleteSkill(c.Request.Context(), id))
}

// Social links

func (h *ContentHandler) ListSocialLinks(c *gin.Context) {
	items, err := h.contentUseCase.ListSocialLinks(c.Request.Context())
	respond(c, http.StatusOK, items, err)
}

func (h *ContentHandler) CreateSocialLink(c *gin.Context) {
	var req SocialLinkRequest
	if !bindJSON(c, &req) {
		return
	}
	l, err := h.contentUseCase.CreateSocialLink(c.Request.Context(), contentUC.SocialLinkInput{
		Platform: req.Platform,
		URL:      req.URL,
		Order:    req.Order,
	})
	respond(c, http.StatusCreated, l, err)
}

func (h *ContentHandler) UpdateSocialLink(c *gin.Context) {
	id, ok := pathID(c, "social link")
	if !ok {
		return
	}
	var req SocialLinkRequest
	if !bindJSON(c, &req) {
		return
	}
	l, err := h.contentUseCase.UpdateSocialLink(c.Request.Context(), id, contentUC.SocialLinkInput{
		Platform: req.Platform,
		URL:      req.URL,
		Order:    req.Order,
	})
	respond(c, http.StatusOK, l, err)
}

func (h *ContentHandler) DeleteSocialLink(c *gin.Context) {
	id, ok := pathID(c, "social link")
	if !ok {
		return
	}
	respond(c, http.StatusNoContent, nil, h.contentUseCase.DeleteSocialLink(c.Request.Context(), id))
}
