package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Labeddit/internal/api/middleware"
	"Labeddit/internal/auth"
	"Labeddit/internal/core/posts"
	"Labeddit/internal/core/users"
)

type stubPostService struct {
	posts.Service
	lastReaction posts.PutReactionRequest
}

func (s *stubPostService) ListPosts(context.Context, string) ([]*posts.PostView, error) {
	return []*posts.PostView{}, nil
}

func (s *stubPostService) PutReaction(_ context.Context, req posts.PutReactionRequest) (*posts.PutReactionResponse, error) {
	s.lastReaction = req
	return &posts.PutReactionResponse{Message: "reaction recorded", Outcome: "recorded"}, nil
}

type stubUserService struct {
	users.UserService
}

func (stubUserService) Login(context.Context, users.LoginRequest) (*users.LoginResponse, error) {
	return &users.LoginResponse{Message: "login successful", UserName: "Ana", Token: "tok"}, nil
}

func newRouter(t *testing.T) (http.Handler, *stubPostService, *auth.TokenManager) {
	t.Helper()
	tokens, err := auth.NewTokenManager("routes-secret", "labeddit", time.Hour)
	require.NoError(t, err)

	postService := &stubPostService{}
	r := chi.NewRouter()
	RegisterPostRoutes(r, postService, middleware.NewAuthMiddleware(tokens))
	RegisterUserRoutes(r, stubUserService{})
	return r, postService, tokens
}

func TestPostRoutes_RequireToken(t *testing.T) {
	r, _, _ := newRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/posts", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "InvalidToken")
}

func TestPostRoutes_ReactionCarriesTokenSubject(t *testing.T) {
	r, postService, tokens := newRouter(t)
	token, err := tokens.CreateToken(auth.TokenPayload{ID: "user-7", Name: "Bea", Role: users.RoleNormal})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPut, "/posts/post-3/like", strings.NewReader(`{"like":false}`))
	req.Header.Set("Authorization", token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, posts.PutReactionRequest{PostID: "post-3", UserID: "user-7", Like: false}, postService.lastReaction)
}

func TestUserRoutes_LoginIsPublic(t *testing.T) {
	r, _, _ := newRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/users/login", strings.NewReader(`{"email":"ana@mail.com","password":"abc12345"}`))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
