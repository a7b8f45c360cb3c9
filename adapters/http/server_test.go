package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/sammy-mbugua/portfolio/adapters/session"
	authUC "github.com/sammy-mbugua/portfolio/internal/application/usecase/auth"
	contactUC "github.com/sammy-mbugua/portfolio/internal/application/usecase/contact"
	contentUC "github.com/sammy-mbugua/portfolio/internal/application/usecase/content"
	portfolioUC "github.com/sammy-mbugua/portfolio/internal/application/usecase/portfolio"
	profileUC "github.com/sammy-mbugua/portfolio/internal/application/usecase/profile"
	projectUC "github.com/sammy-mbugua/portfolio/internal/application/usecase/project"
	resumeUC "github.com/sammy-mbugua/portfolio/internal/application/usecase/resume"
	"github.com/sammy-mbugua/portfolio/internal/application/usecase/sitecontext"
	"github.com/sammy-mbugua/portfolio/internal/domain/profile"
	"github.com/sammy-mbugua/portfolio/internal/domain/project"
	"github.com/sammy-mbugua/portfolio/internal/domain/user"
	"github.com/sammy-mbugua/portfolio/internal/testutil/memstore"
	"github.com/sammy-mbugua/portfolio/pkg/auth"
	"github.com/sammy-mbugua/portfolio/pkg/logger"
)

const (
	testJWTSecret = "test-secret"
	ownerEmail    = "owner@example.com"
	ownerPassword = "owner-password"
)

// testServer is the full router over in-memory repositories.
type testServer struct {
	t      *testing.T
	store  *memstore.Store
	blobs  *memstore.Blobs
	router *gin.Engine
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := memstore.New()
	blobs := memstore.NewBlobs()
	log := logger.NewNop()
	jwtSvc := auth.NewJWTService(testJWTSecret, time.Hour)

	hash, err := auth.HashPassword(ownerPassword)
	require.NoError(t, err)
	require.NoError(t, store.Users().Upsert(context.Background(), &user.User{ID: uuid.New(), Email: ownerEmail, PasswordHash: hash}))

	templates, err := NewTemplateSet(blobs)
	require.NoError(t, err)

	queryUseCase := portfolioUC.NewQueryUseCase(store.Profiles(), store.Education(), store.Experience(), store.Skills(), store.Projects(), store.Social(), log)
	renderer := NewRenderer(sitecontext.NewSupplier(store.Profiles(), store.Social()), session.NewCookieStore(false), log)

	handlers := Handlers{
		Public: NewPublicHandler(
			queryUseCase,
			contactUC.NewSubmitContactUseCase(store.Contact(), nil, log),
			resumeUC.NewDownloadResumeUseCase(store.Profiles(), blobs),
			renderer,
			log,
		),
		Auth:    NewAuthHandler(authUC.NewLoginUseCase(store.Users(), jwtSvc, log), log),
		Profile: NewProfileHandler(profileUC.NewProfileUseCase(store.Profiles(), blobs, log), blobs, log),
		Project: NewProjectHandler(
			projectUC.NewCreateProjectUseCase(store.Projects()),
			projectUC.NewListProjectsUseCase(store.Projects()),
			projectUC.NewGetProjectUseCase(store.Projects()),
			projectUC.NewUpdateProjectUseCase(store.Projects()),
			projectUC.NewDeleteProjectUseCase(store.Projects(), blobs, log),
			projectUC.NewUploadImageUseCase(store.Projects(), blobs, log),
			blobs,
			log,
		),
		Content: NewContentHandler(contentUC.NewContentUseCase(store.Education(), store.Experience(), store.Skills(), store.Social(), log), log),
		Contact: NewContactHandler(contactUC.NewAdminUseCase(store.Contact(), log), log),
		Feed:    NewFeedHandler(portfolioUC.NewFeedUseCase(store.Profiles(), store.Projects(), log), log),
	}

	router := NewRouter(handlers, RouterOptions{Templates: templates, JWT: jwtSvc, Logger: log, Renderer: renderer})
	return &testServer{t: t, store: store, blobs: blobs, router: router}
}

func (s *testServer) do(req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	s.router.ServeHTTP(rr, req)
	return rr
}

func (s *testServer) get(path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	return s.do(req)
}

func (s *testServer) postForm(path string, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return s.do(req)
}

// api sends a JSON request, authenticated when token is non-empty.
func (s *testServer) api(method, path, token string, body any) *httptest.ResponseRecorder {
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(s.t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return s.do(req)
}

func (s *testServer) login() string {
	rr := s.api(http.MethodPost, "/api/admin/auth/login", "", gin.H{"email": ownerEmail, "password": ownerPassword})
	require.Equal(s.t, http.StatusOK, rr.Code, rr.Body.String())
	var out struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(s.t, json.Unmarshal(rr.Body.Bytes(), &out))
	return out.AccessToken
}

func (s *testServer) saveProfile(resumeRef *string) *profile.Profile {
	p := &profile.Profile{
		ID: uuid.New(), Name: "Sammy Mbugua", Title: "Software Developer", Email: "sammy@example.com",
		Phone: "+254 757 255 028", Location: "Nairobi", ResumeRef: resumeRef,
	}
	require.NoError(s.t, s.store.Profiles().Save(context.Background(), p))
	return p
}

func (s *testServer) saveProject(title string, featured bool) *project.Project {
	p := &project.Project{ID: uuid.New(), Title: title, Description: "About " + title, Technologies: "Go, HTMX", Featured: featured}
	require.NoError(s.t, s.store.Projects().Save(context.Background(), p))
	return p
}

func decodeJSON(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out), rr.Body.String())
	return out
}

func cookieNamed(rr *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rr.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}
