package http

import (
	"time"

	"github.com/google/uuid"

	"github.com/sammy-mbugua/portfolio/internal/application/service"
	"github.com/sammy-mbugua/portfolio/internal/domain/contact"
	"github.com/sammy-mbugua/portfolio/internal/domain/profile"
	"github.com/sammy-mbugua/portfolio/internal/domain/project"
	"github.com/sammy-mbugua/portfolio/pkg/pagination"
)

const dateLayout = "2006-01-02"

// Auth

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Contact

// ContactRequest binds both form posts and JSON bodies. Validation happens in the
// contact schema so the messages match between the HTML and AJAX surfaces.
type ContactRequest struct {
	Name    string `form:"name" json:"name"`
	Email   string `form:"email" json:"email"`
	Subject string `form:"subject" json:"subject"`
	Message string `form:"message" json:"message"`
}

func (r ContactRequest) Values() map[string]string {
	return map[string]string{
		contact.FieldName:    r.Name,
		contact.FieldEmail:   r.Email,
		contact.FieldSubject: r.Subject,
		contact.FieldMessage: r.Message,
	}
}

type MarkReadRequest struct {
	IDs []uuid.UUID `json:"ids" binding:"required,min=1"`
}

type ContactMessageListDTO struct {
	Messages   []*contact.Message `json:"messages"`
	Pagination pagination.Page    `json:"pagination"`
}

// Profile

type SaveProfileRequest struct {
	Name        string  `json:"name" binding:"required"`
	Title       string  `json:"title" binding:"required"`
	Email       string  `json:"email" binding:"required,email"`
	Phone       string  `json:"phone"`
	Location    string  `json:"location"`
	GithubURL   *string `json:"github_url" binding:"omitempty,url"`
	LinkedinURL *string `json:"linkedin_url" binding:"omitempty,url"`
	About       string  `json:"about"`
}

type ProfileDTO struct {
	*profile.Profile
	FormattedPhone string `json:"formatted_phone"`
	ImageURL       string `json:"image_url,omitempty"`
	ResumeURL      string `json:"resume_url,omitempty"`
}

func ToProfileDTO(p *profile.Profile, storage service.BlobStorage) ProfileDTO {
	dto := ProfileDTO{Profile: p, FormattedPhone: p.FormattedPhone()}
	if p.ImageRef != nil {
		dto.ImageURL = storage.URL(*p.ImageRef)
	}
	if p.ResumeRef != nil {
		dto.ResumeURL = storage.URL(*p.ResumeRef)
	}
	return dto
}

// Education

type EducationRequest struct {
	Degree      string `json:"degree" binding:"required"`
	Institution string `json:"institution" binding:"required"`
	StartDate   string `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate     string `json:"end_date" binding:"required,datetime=2006-01-02"`
	Description string `json:"description"`
	Grade       string `json:"grade"`
	Location    string `json:"location"`
}

// Experience

type ExperienceRequest struct {
	Title            string  `json:"title" binding:"required"`
	Company          string  `json:"company" binding:"required"`
	Location         string  `json:"location"`
	StartDate        string  `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate          *string `json:"end_date" binding:"omitempty,datetime=2006-01-02"`
	Description      string  `json:"description" binding:"required"`
	CurrentlyWorking bool    `json:"currently_working"`
}

type AchievementRequest struct {
	Description string `json:"description" binding:"required"`
	Order       int    `json:"order"`
}

// Skills

type SkillCategoryRequest struct {
	Name  string `json:"name" binding:"required"`
	Order int    `json:"order"`
}

type SkillRequest struct {
	Name        string `json:"name" binding:"required"`
	Proficiency *int   `json:"proficiency"`
	Order       int    `json:"order"`
}

// Projects

type ProjectRequest struct {
	Title        string  `json:"title" binding:"required"`
	Description  string  `json:"description" binding:"required"`
	Technologies string  `json:"technologies" binding:"required"`
	GithubURL    *string `json:"github_url" binding:"omitempty,url"`
	LiveURL      *string `json:"live_url" binding:"omitempty,url"`
	Featured     bool    `json:"featured"`
	Order        int     `json:"order"`
}

type ProjectDTO struct {
	*project.Project
	TechList []string `json:"tech_list"`
	ImageURL string   `json:"image_url,omitempty"`
}

func ToProjectDTO(p *project.Project, storage service.BlobStorage) ProjectDTO {
	dto := ProjectDTO{Project: p, TechList: p.TechList()}
	if p.ImageRef != nil {
		dto.ImageURL = storage.URL(*p.ImageRef)
	}
	return dto
}

type ProjectListDTO struct {
	Projects   []ProjectDTO    `json:"projects"`
	Pagination pagination.Page `json:"pagination"`
}

// Social links

type SocialLinkRequest struct {
	Platform string `json:"platform" binding:"required"`
	URL      string `json:"url" binding:"required,url"`
	Order    int    `json:"order"`
}

func parseDate(raw string) (time.Time, error) {
	return time.Parse(dateLayout, raw)
}

func parseOptionalDate(raw *string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	t, err := parseDate(*raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
