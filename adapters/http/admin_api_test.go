package http

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sammy-mbugua/portfolio/internal/domain/contact"
)

func (s *testServer) upload(path, token, filename string, content []byte) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile(uploadField, filename)
	require.NoError(s.t, err)
	_, err = part.Write(content)
	require.NoError(s.t, err)
	require.NoError(s.t, w.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	return s.do(req)
}

func TestAdminProfile_SaveAndUploadResume(t *testing.T) {
	s := newTestServer(t)
	token := s.login()

	rr := s.api(http.MethodGet, "/api/admin/profile", token, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = s.upload("/api/admin/profile/resume", token, "cv.pdf", []byte("%PDF"))
	assert.Equal(t, http.StatusNotFound, rr.Code)

	body := map[string]any{"name": "Sammy", "title": "Developer", "email": "sammy@example.com", "phone": "0712 345 678"}
	rr = s.api(http.MethodPut, "/api/admin/profile", token, body)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	out := decodeJSON(t, rr)
	assert.Equal(t, "0712-345-678", out["formatted_phone"])

	body["title"] = "Senior Developer"
	rr = s.api(http.MethodPut, "/api/admin/profile", token, body)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = s.api(http.MethodPut, "/api/admin/profile", token, map[string]any{"name": "x", "title": "y", "email": "not-an-email"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = s.upload("/api/admin/profile/resume", token, "cv.pdf", []byte("%PDF"))
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Contains(t, decodeJSON(t, rr)["resume_url"], "/media/resume/")

	dl := s.get("/download-resume/")
	require.Equal(t, http.StatusOK, dl.Code)
	assert.Equal(t, "%PDF", dl.Body.String())
}

func TestAdminProjects_CRUD(t *testing.T) {
	s := newTestServer(t)
	token := s.login()

	rr := s.api(http.MethodPost, "/api/admin/projects", token, map[string]any{
		"title": "Portfolio", "description": "My site", "technologies": "Go, Postgres", "featured": true,
	})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	created := decodeJSON(t, rr)
	id := created["id"].(string)
	assert.Equal(t, []any{"Go", "Postgres"}, created["tech_list"])

	rr = s.api(http.MethodPost, "/api/admin/projects", token, map[string]any{"title": "No tech", "description": "d"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = s.upload("/api/admin/projects/"+id+"/image", token, "shot.png", []byte("png"))
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Contains(t, decodeJSON(t, rr)["image_url"], "/media/projects/")

	rr = s.api(http.MethodGet, "/api/admin/projects?page=1", token, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	list := decodeJSON(t, rr)
	assert.Len(t, list["projects"], 1)

	rr = s.api(http.MethodPut, "/api/admin/projects/"+id, token, map[string]any{
		"title": "Portfolio v2", "description": "My site", "technologies": "Go",
	})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Equal(t, "Portfolio v2", decodeJSON(t, rr)["title"])

	rr = s.api(http.MethodDelete, "/api/admin/projects/"+id, token, nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = s.api(http.MethodGet, "/api/admin/projects/"+id, token, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = s.api(http.MethodGet, "/api/admin/projects/not-a-uuid", token, nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestAdminExperience_CurrentPositionAndAchievements(t *testing.T) {
	s := newTestServer(t)
	token := s.login()

	rr := s.api(http.MethodPost, "/api/admin/experiences", token, map[string]any{
		"title": "Developer", "company": "Acme", "start_date": "2023-01-01", "end_date": "2024-01-01",
		"description": "Work", "currently_working": true,
	})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	exp := decodeJSON(t, rr)
	assert.Nil(t, exp["end_date"])
	id := exp["id"].(string)

	rr = s.api(http.MethodPost, "/api/admin/experiences/"+id+"/achievements", token, map[string]any{"description": "Shipped it"})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	rr = s.api(http.MethodPost, "/api/admin/experiences/"+uuid.NewString()+"/achievements", token, map[string]any{"description": "x"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = s.api(http.MethodPost, "/api/admin/experiences", token, map[string]any{
		"title": "Developer", "company": "Acme", "start_date": "01/01/2023", "description": "Work",
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	page := s.get("/experience/")
	require.Equal(t, http.StatusOK, page.Code)
	assert.Contains(t, page.Body.String(), "Jan 2023 - Present")
	assert.Contains(t, page.Body.String(), "Shipped it")
}

func TestAdminSkills_ProficiencyRange(t *testing.T) {
	s := newTestServer(t)
	token := s.login()

	rr := s.api(http.MethodPost, "/api/admin/skill-categories", token, map[string]any{"name": "Backend"})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	catID := decodeJSON(t, rr)["id"].(string)

	rr = s.api(http.MethodPost, "/api/admin/skill-categories/"+catID+"/skills", token, map[string]any{"name": "Go"})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	sk := decodeJSON(t, rr)
	assert.EqualValues(t, 50, sk["proficiency"])

	rr = s.api(http.MethodPut, "/api/admin/skills/"+sk["id"].(string), token, map[string]any{"name": "Go", "proficiency": 120})
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = s.api(http.MethodPost, "/api/admin/skill-categories/"+uuid.NewString()+"/skills", token, map[string]any{"name": "Rust"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = s.api(http.MethodGet, "/api/admin/skill-categories", token, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"proficiency":50`)
}

func TestAdminSocialLinks(t *testing.T) {
	s := newTestServer(t)
	token := s.login()

	rr := s.api(http.MethodPost, "/api/admin/social-links", token, map[string]any{"platform": "github", "url": "https://github.com/sammy"})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	rr = s.api(http.MethodPost, "/api/admin/social-links", token, map[string]any{"platform": "myspace", "url": "https://myspace.com/x"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	home := s.get("/")
	assert.Contains(t, home.Body.String(), "https://github.com/sammy")
	assert.Contains(t, home.Body.String(), "GitHub")
}

func TestAdminContactMessages(t *testing.T) {
	s := newTestServer(t)
	token := s.login()
	ctx := context.Background()

	ids := make([]uuid.UUID, 3)
	for i := range ids {
		m := &contact.Message{ID: uuid.New(), Name: "n", Email: "e@x.com", Subject: "s", Body: "b"}
		require.NoError(t, s.store.Contact().Save(ctx, m))
		ids[i] = m.ID
	}

	rr := s.api(http.MethodPost, "/api/admin/contact-messages/mark-read", token, map[string]any{"ids": ids[:2]})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.EqualValues(t, 2, decodeJSON(t, rr)["updated"])

	rr = s.api(http.MethodPost, "/api/admin/contact-messages/mark-read", token, map[string]any{"ids": []string{}})
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = s.api(http.MethodGet, "/api/admin/contact-messages?read=false", token, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, decodeJSON(t, rr)["messages"], 1)

	rr = s.api(http.MethodGet, "/api/admin/contact-messages?read=maybe", token, nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = s.api(http.MethodGet, "/api/admin/contact-messages/"+ids[0].String(), token, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, true, decodeJSON(t, rr)["read"])

	rr = s.api(http.MethodDelete, "/api/admin/contact-messages/"+ids[2].String(), token, nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = s.api(http.MethodGet, "/api/admin/contact-messages", token, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	out := decodeJSON(t, rr)
	assert.Len(t, out["messages"], 2)
	pg := out["pagination"].(map[string]any)
	assert.EqualValues(t, 2, pg["total_count"])
}
