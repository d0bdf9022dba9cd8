package auth_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskhive/taskhive/internal/auth"
)

func newAuthRouter(repo auth.Repository) (chi.Router, *auth.TokenService) {
	tokens := auth.NewTokenService("test-secret", time.Hour)
	handler := auth.NewHandler(nil, auth.NewService(repo, tokens))
	r := chi.NewRouter()
	r.Route("/auth", handler.MountRoutes)
	return r, tokens
}

func postJSON(t *testing.T, router http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)
	return res
}

func TestRegisterEndpoint(t *testing.T) {
	router, tokens := newAuthRouter(newMockUserRepo())

	res := postJSON(t, router, "/auth/register", `{"name":"A","email":"a@x.com","password":"p"}`)
	require.Equal(t, http.StatusCreated, res.Code)

	var body struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &body))
	require.NotEmpty(t, body.Token)

	_, err := tokens.Verify(body.Token)
	assert.NoError(t, err)
}

func TestRegisterEndpointMissingField(t *testing.T) {
	router, _ := newAuthRouter(newMockUserRepo())

	res := postJSON(t, router, "/auth/register", `{"name":"A","password":"p"}`)
	assert.Equal(t, http.StatusBadRequest, res.Code)
	assert.Contains(t, res.Body.String(), "msg")
}

func TestRegisterEndpointMalformedJSON(t *testing.T) {
	router, _ := newAuthRouter(newMockUserRepo())

	res := postJSON(t, router, "/auth/register", `{ invalid json }`)
	assert.Equal(t, http.StatusBadRequest, res.Code)
	assert.Contains(t, res.Body.String(), "Invalid JSON payload")
}

func TestLoginEndpointInvalidCredentials(t *testing.T) {
	repo := newMockUserRepo()
	router, _ := newAuthRouter(repo)

	res := postJSON(t, router, "/auth/register", `{"name":"A","email":"a@x.com","password":"correct"}`)
	require.Equal(t, http.StatusCreated, res.Code)

	unknown := postJSON(t, router, "/auth/login", `{"email":"nobody@x.com","password":"correct"}`)
	wrong := postJSON(t, router, "/auth/login", `{"email":"a@x.com","password":"wrong"}`)

	assert.Equal(t, http.StatusUnauthorized, unknown.Code)
	assert.Equal(t, http.StatusUnauthorized, wrong.Code)
	assert.JSONEq(t, unknown.Body.String(), wrong.Body.String())
}

func TestLoginEndpointSuccess(t *testing.T) {
	router, _ := newAuthRouter(newMockUserRepo())

	res := postJSON(t, router, "/auth/register", `{"name":"A","email":"a@x.com","password":"correct"}`)
	require.Equal(t, http.StatusCreated, res.Code)

	login := postJSON(t, router, "/auth/login", `{"email":"a@x.com","password":"correct"}`)
	assert.Equal(t, http.StatusOK, login.Code)
	assert.Contains(t, login.Body.String(), "token")
}
