package http

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sammy-mbugua/portfolio/internal/domain/contact"
	"github.com/sammy-mbugua/portfolio/internal/domain/social"
)

func TestHome_RendersProfileAndFeaturedProjects(t *testing.T) {
	s := newTestServer(t)
	s.saveProfile(nil)
	s.saveProject("Featured Thing", true)
	s.saveProject("Side Thing", false)

	rr := s.get("/")
	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, "Sammy Mbugua")
	assert.Contains(t, body, "Featured Thing")
	assert.NotContains(t, body, "Side Thing")
	assert.NotContains(t, body, "/download-resume/", "no resume link without a resume")
}

func TestHome_EmptySiteStillRenders(t *testing.T) {
	s := newTestServer(t)
	rr := s.get("/")
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestStaticPages(t *testing.T) {
	s := newTestServer(t)
	s.saveProfile(nil)
	for _, path := range []string{"/about/", "/experience/", "/projects/", "/contact/"} {
		rr := s.get(path)
		assert.Equal(t, http.StatusOK, rr.Code, path)
		assert.Contains(t, rr.Body.String(), "Sammy Mbugua", path)
	}
}

func TestProjects_PaginationKeepsFilter(t *testing.T) {
	s := newTestServer(t)
	for i := 0; i < 12; i++ {
		s.saveProject(fmt.Sprintf("Project %02d", i), true)
	}

	rr := s.get("/projects/?featured=true&page=1")
	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, "Page 1 of 2")
	assert.Contains(t, body, "?page=2&featured=true")

	rr = s.get("/projects/?page=abc")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Page 1 of 2")

	rr = s.get("/projects/?page=50")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Page 2 of 2")

	rr = s.get("/projects/?page=99999999999999999999")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Page 2 of 2")
}

func TestProjectDetail(t *testing.T) {
	s := newTestServer(t)
	p := s.saveProject("Portfolio Site", true)
	other := s.saveProject("Other Site", true)

	rr := s.get("/project/" + p.ID.String() + "/")
	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, "Portfolio Site")
	assert.Contains(t, body, "/project/"+other.ID.String()+"/")
	assert.NotContains(t, body, `href="/project/`+p.ID.String()+`/"`)
}

func TestProjectDetail_NotFound(t *testing.T) {
	s := newTestServer(t)
	for _, path := range []string{"/project/" + "00000000-0000-0000-0000-000000000001/", "/project/not-a-uuid/"} {
		rr := s.get(path)
		assert.Equal(t, http.StatusNotFound, rr.Code, path)
		assert.Contains(t, rr.Body.String(), "does not exist", path)
	}
}

func TestUnknownRoute(t *testing.T) {
	s := newTestServer(t)

	rr := s.get("/nope/")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "text/html")

	rr = s.get("/api/nope")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "not found", decodeJSON(t, rr)["error"])
}

func TestErrorPage_CarriesSiteContext(t *testing.T) {
	s := newTestServer(t)
	s.saveProfile(nil)
	require.NoError(t, s.store.Social().Save(context.Background(), &social.Link{
		ID: uuid.New(), Platform: social.PlatformGithub, URL: "https://github.com/sammy",
	}))

	rr := s.get("/project/" + uuid.NewString() + "/")
	require.Equal(t, http.StatusNotFound, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, "Sammy Mbugua")
	assert.Contains(t, body, "https://github.com/sammy")

	rr = s.get("/nope/")
	require.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "Sammy Mbugua")
}

func contactForm(email string) url.Values {
	return url.Values{"name": {"Jane"}, "email": {email}, "subject": {"Hi"}, "message": {"Hello"}}
}

func TestContactSubmit_Success(t *testing.T) {
	s := newTestServer(t)

	rr := s.postForm("/contact/", contactForm("jane@x.com"))
	require.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/contact/", rr.Header().Get("Location"))

	flash := cookieNamed(rr, "portfolio_flash")
	require.NotNil(t, flash)

	page := s.get("/contact/", flash)
	require.Equal(t, http.StatusOK, page.Code)
	assert.Contains(t, page.Body.String(), "Thank you for your message! I will get back to you soon.")

	msgs, err := s.store.Contact().List(context.Background(), contact.ListFilter{}, 0, 0)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "Jane", msgs[0].Name)
	assert.Equal(t, "jane@x.com", msgs[0].Email)
	assert.Equal(t, "Hi", msgs[0].Subject)
	assert.Equal(t, "Hello", msgs[0].Body)
	assert.False(t, msgs[0].Read)
}

func TestContactSubmit_InvalidRerendersForm(t *testing.T) {
	s := newTestServer(t)

	rr := s.postForm("/contact/", contactForm("not-an-email"))
	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, "Enter a valid email address.")
	assert.Contains(t, body, `value="Jane"`)
	assert.Contains(t, body, "Hello</textarea>")

	n, err := s.store.Contact().Count(context.Background(), contact.ListFilter{})
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestContactAjax(t *testing.T) {
	s := newTestServer(t)

	rr := s.postForm("/contact/ajax/", contactForm("jane@x.com"))
	require.Equal(t, http.StatusOK, rr.Code)
	out := decodeJSON(t, rr)
	assert.Equal(t, true, out["success"])
	assert.Equal(t, "Thank you for your message!", out["message"])

	rr = s.postForm("/contact/ajax/", url.Values{"name": {"Jane"}, "email": {"bad"}})
	require.Equal(t, http.StatusBadRequest, rr.Code)
	out = decodeJSON(t, rr)
	assert.Equal(t, false, out["success"])
	errs, ok := out["errors"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, errs, "email")
	assert.Contains(t, errs, "subject")
	assert.Contains(t, errs, "message")
	assert.NotContains(t, errs, "name")

	n, err := s.store.Contact().Count(context.Background(), contact.ListFilter{})
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestContactAjax_JSONBody(t *testing.T) {
	s := newTestServer(t)
	rr := s.api(http.MethodPost, "/contact/ajax/", "", map[string]string{
		"name": "Jane", "email": "jane@x.com", "subject": "Hi", "message": "Hello",
	})
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, true, decodeJSON(t, rr)["success"])
}

func TestDownloadResume_Missing(t *testing.T) {
	s := newTestServer(t)
	s.saveProfile(nil)

	rr := s.get("/download-resume/")
	require.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/", rr.Header().Get("Location"))

	flash := cookieNamed(rr, "portfolio_flash")
	require.NotNil(t, flash)
	home := s.get("/", flash)
	assert.Contains(t, home.Body.String(), "Resume not available.")
}

func TestDownloadResume_Attachment(t *testing.T) {
	s := newTestServer(t)
	ref, err := s.blobs.Upload(context.Background(), strings.NewReader("%PDF-1.4 resume"), "resume", "cv.pdf")
	require.NoError(t, err)
	s.saveProfile(&ref)

	rr := s.get("/download-resume/")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "%PDF-1.4 resume", rr.Body.String())
	assert.Contains(t, rr.Header().Get("Content-Disposition"), "attachment")
	assert.Contains(t, rr.Header().Get("Content-Disposition"), "cv.pdf")

	home := s.get("/")
	assert.Contains(t, home.Body.String(), "/download-resume/")
}

func TestProjectFeed(t *testing.T) {
	s := newTestServer(t)
	s.saveProfile(nil)
	p := s.saveProject("Feed Me", true)

	rr := s.get("/feed/projects.xml")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "application/rss+xml")
	assert.Contains(t, rr.Body.String(), "<title>Feed Me</title>")
	assert.Contains(t, rr.Body.String(), "http://example.com/project/"+p.ID.String()+"/")
}
