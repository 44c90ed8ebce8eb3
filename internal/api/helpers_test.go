package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/keepnote/keepnote-api/internal/api"
	"github.com/keepnote/keepnote-api/internal/api/middleware"
	"github.com/keepnote/keepnote-api/internal/mocks"
	"github.com/keepnote/keepnote-api/internal/service"
	"github.com/keepnote/keepnote-api/internal/service/auth"
)

// stubJWTService issues and validates tokens of the form "tok:<userID>".
type stubJWTService struct{}

func (stubJWTService) GenerateToken(ctx context.Context, userID string) (string, error) {
	return "tok:" + userID, nil
}

func (stubJWTService) ValidateToken(ctx context.Context, tokenString string) (*auth.Claims, error) {
	userID, ok := strings.CutPrefix(tokenString, "tok:")
	if !ok || userID == "" {
		return nil, auth.ErrInvalidToken
	}
	return &auth.Claims{UserID: userID, Subject: userID}, nil
}

var _ auth.JWTService = stubJWTService{}

// apiFixture wires the full handler stack over mock stores.
type apiFixture struct {
	users      *mocks.MockUserStore
	categories *mocks.MockCategoryStore
	reminders  *mocks.MockReminderStore
	notes      *mocks.MockNoteStore
	router     http.Handler
}

func newAPIFixture() *apiFixture {
	f := &apiFixture{
		users:      mocks.NewMockUserStore(),
		categories: mocks.NewMockCategoryStore(),
		reminders:  mocks.NewMockReminderStore(),
		notes:      mocks.NewMockNoteStore(),
	}

	userService := service.NewUserService(f.users, auth.NewExactVerifier(), nil)
	categoryService := service.NewCategoryService(f.categories, nil)
	reminderService := service.NewReminderService(f.reminders, nil)
	noteService := service.NewNoteService(f.notes, f.categories, f.reminders, nil, nil)

	jwtService := stubJWTService{}

	authHandler := api.NewAuthHandler(userService, jwtService, nil)
	userHandler := api.NewUserHandler(userService, nil)
	categoryHandler := api.NewCategoryHandler(categoryService, nil)
	reminderHandler := api.NewReminderHandler(reminderService, noteService, nil)
	noteHandler := api.NewNoteHandler(noteService, nil)

	authMiddleware := middleware.NewAuthMiddleware(jwtService)

	r := chi.NewRouter()
	r.Use(middleware.TraceMiddleware)

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Route("/users/{id}", func(r chi.Router) {
				r.Get("/", userHandler.Get)
				r.Put("/", userHandler.Update)
				r.Delete("/", userHandler.Delete)
			})

			r.Route("/categories", func(r chi.Router) {
				r.Post("/", categoryHandler.Create)
				r.Get("/", categoryHandler.List)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", categoryHandler.Get)
					r.Put("/", categoryHandler.Update)
					r.Delete("/", categoryHandler.Delete)
				})
			})

			r.Route("/reminders", func(r chi.Router) {
				r.Post("/", reminderHandler.Create)
				r.Get("/", reminderHandler.List)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", reminderHandler.Get)
					r.Put("/", reminderHandler.Update)
					r.Delete("/", reminderHandler.Delete)
					r.Get("/notes", reminderHandler.ListNotes)
				})
			})

			r.Route("/notes", func(r chi.Router) {
				r.Post("/", noteHandler.Create)
				r.Get("/", noteHandler.List)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", noteHandler.Get)
					r.Put("/", noteHandler.Update)
					r.Delete("/", noteHandler.Delete)
				})
			})
		})
	})

	f.router = r
	return f
}

// do executes a request against the fixture router. A non-empty user
// attaches the stub bearer token for that user.
func (f *apiFixture) do(t *testing.T, method, path, asUser string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if asUser != "" {
		req.Header.Set("Authorization", "Bearer tok:"+asUser)
	}

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

// decodeBody unmarshals the response body into out.
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

// register creates a user account through the public endpoint.
func (f *apiFixture) register(t *testing.T, userID, password string) {
	t.Helper()
	rec := f.do(t, http.MethodPost, "/api/auth/register", "", api.RegisterRequest{
		UserID:   userID,
		Password: password,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
}
