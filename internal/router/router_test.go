package router

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"project-registry/internal/cache"
	"project-registry/internal/database"
	"project-registry/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestSetupRegistersRoutes(t *testing.T) {
	e := echo.New()
	codec, err := service.NewTokenCodec("s", "HS256", time.Hour)
	require.NoError(t, err)
	Setup(e, &database.FakeDB{}, &cache.FakeCache{}, codec)

	want := map[string]string{
		"GET /api/ping":                    "",
		"POST /api/auth/register":          "",
		"POST /api/auth/login":             "",
		"GET /api/users/me":                "",
		"DELETE /api/users/me":             "",
		"POST /api/projects":               "",
		"GET /api/projects":                "",
		"GET /api/projects/:project_id":    "",
		"PATCH /api/projects/:project_id":  "",
		"DELETE /api/projects/:project_id": "",
	}
	got := map[string]bool{}
	for _, r := range e.Routes() {
		got[r.Method+" "+r.Path] = true
	}
	for route := range want {
		require.True(t, got[route], "missing route %s", route)
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	e := echo.New()
	codec, err := service.NewTokenCodec("s", "HS256", time.Hour)
	require.NoError(t, err)
	Setup(e, &database.FakeDB{}, &cache.FakeCache{}, codec)

	for _, tc := range []struct {
		method, path string
	}{
		{http.MethodGet, "/api/ping"},
		{http.MethodGet, "/api/users/me"},
		{http.MethodDelete, "/api/users/me"},
		{http.MethodGet, "/api/projects"},
		{http.MethodPost, "/api/projects"},
		{http.MethodGet, "/api/projects/1"},
		{http.MethodPatch, "/api/projects/1"},
		{http.MethodDelete, "/api/projects/1"},
	} {
		req := httptest.NewRequest(tc.method, tc.path, nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		require.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s", tc.method, tc.path)
	}
}
