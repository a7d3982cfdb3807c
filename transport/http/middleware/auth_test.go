package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"cowork/config"
	"cowork/infras/jwt"
	"cowork/infras/otel/mocks"
	"cowork/permissions"
	"cowork/shared/constant"
	"cowork/shared/identity"
	"cowork/transport/http/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAPIKey = "internal-key"

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.Name = "cowork-test"
	cfg.App.APIKey = testAPIKey
	cfg.JWT.AccessSecret = "access-secret"
	cfg.JWT.RefreshSecret = "refresh-secret"
	cfg.JWT.AccessExpireMin = 15
	cfg.JWT.RefreshExpireMin = 60

	return cfg
}

func newRouter(t *testing.T, cfg *config.Config) http.Handler {
	t.Helper()

	perms := &permissions.PermissionData{
		Endpoints: []permissions.Permission{
			{Path: "/v1/workspaces/{id}", Method: http.MethodGet, Skip: true},
			{Path: "/v1/admin/coupons/", Method: http.MethodGet, Permissions: []string{constant.RoleAdmin, constant.RoleSuperAdmin}},
		},
	}

	auth := middleware.NewAuthRoleMiddleware(jwt.New(cfg), mocks.NewOtel(), perms, cfg)

	whoami := func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(identity.Actor(r.Context())))
	}

	router := chi.NewRouter()
	router.Group(func(r chi.Router) {
		r.Use(auth.APIKey, auth.Auth, auth.RBAC)
		r.Get("/v1/workspaces/{id}", whoami)
		r.Get("/v1/admin/coupons/", whoami)
		r.Get("/v1/profile", whoami)
	})

	return router
}

func bearer(t *testing.T, cfg *config.Config, role string, refresh bool) string {
	t.Helper()

	pair, err := jwt.New(cfg).GenerateTokenPair(context.Background(), jwt.Subject{
		UserID: "user-1",
		Email:  "asha@example.com",
		Role:   role,
	})
	require.NoError(t, err)

	if refresh {
		return "Bearer " + pair.RefreshToken
	}

	return "Bearer " + pair.AccessToken
}

func TestAuthAndRBAC(t *testing.T) {
	cfg := testConfig()
	router := newRouter(t, cfg)

	tests := []struct {
		name     string
		path     string
		header   map[string]string
		wantCode int
		wantBody string
	}{
		{
			name:     "public route without token",
			path:     "/v1/workspaces/ws-1",
			wantCode: http.StatusOK,
			wantBody: constant.ContextGuest,
		},
		{
			name:     "public route identifies a signed in caller",
			path:     "/v1/workspaces/ws-1",
			header:   map[string]string{constant.RequestHeaderAuthorization: bearer(t, cfg, constant.RoleUser, false)},
			wantCode: http.StatusOK,
			wantBody: "user-1",
		},
		{
			name:     "public route ignores a bad token",
			path:     "/v1/workspaces/ws-1",
			header:   map[string]string{constant.RequestHeaderAuthorization: "Bearer garbage"},
			wantCode: http.StatusOK,
			wantBody: constant.ContextGuest,
		},
		{
			name:     "private route without header",
			path:     "/v1/profile",
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "private route with wrong scheme",
			path:     "/v1/profile",
			header:   map[string]string{constant.RequestHeaderAuthorization: "Token abc"},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "refresh token is not an access token",
			path:     "/v1/profile",
			header:   map[string]string{constant.RequestHeaderAuthorization: bearer(t, cfg, constant.RoleUser, true)},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "unlisted route admits any signed in role",
			path:     "/v1/profile",
			header:   map[string]string{constant.RequestHeaderAuthorization: bearer(t, cfg, constant.RoleUser, false)},
			wantCode: http.StatusOK,
			wantBody: "user-1",
		},
		{
			name:     "admin route rejects a user",
			path:     "/v1/admin/coupons/",
			header:   map[string]string{constant.RequestHeaderAuthorization: bearer(t, cfg, constant.RoleUser, false)},
			wantCode: http.StatusForbidden,
		},
		{
			name:     "admin route admits an admin",
			path:     "/v1/admin/coupons/",
			header:   map[string]string{constant.RequestHeaderAuthorization: bearer(t, cfg, constant.RoleAdmin, false)},
			wantCode: http.StatusOK,
			wantBody: "user-1",
		},
		{
			name:     "valid api key bypasses user auth",
			path:     "/v1/admin/coupons/",
			header:   map[string]string{constant.RequestHeaderAPIKey: testAPIKey},
			wantCode: http.StatusOK,
			wantBody: constant.ContextGuest,
		},
		{
			name:     "wrong api key is rejected",
			path:     "/v1/profile",
			header:   map[string]string{constant.RequestHeaderAPIKey: "nope"},
			wantCode: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			for key, value := range tt.header {
				req.Header.Set(key, value)
			}

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)

			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}
