package permissions_test

import (
	"net/http"
	"testing"

	"cowork/permissions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)

	assert.False(t, data.Skip)
	assert.NotEmpty(t, data.Endpoints)
}

func TestFindPermissions(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)

	tests := []struct {
		name      string
		path      string
		method    string
		wantSkip  bool
		wantRoles []string
	}{
		{
			name:     "public catalog is skipped",
			path:     "/v1/workspaces/{id}",
			method:   http.MethodGet,
			wantSkip: true,
		},
		{
			name:     "quote is public",
			path:     "/v1/bookings/quote",
			method:   http.MethodPost,
			wantSkip: true,
		},
		{
			name:      "admin coupon list needs an admin role",
			path:      "/v1/admin/coupons/",
			method:    http.MethodGet,
			wantRoles: []string{"admin", "superadmin"},
		},
		{
			name:   "profile needs any signed in user",
			path:   "/v1/profile/",
			method: http.MethodGet,
		},
		{
			name:   "method is part of the match",
			path:   "/v1/workspaces/{id}",
			method: http.MethodDelete,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			permission := data.FindPermissions(tt.path, tt.method)

			assert.Equal(t, tt.wantSkip, permission.Skip)
			assert.ElementsMatch(t, tt.wantRoles, permission.Permissions)
		})
	}
}

func TestPermissionAllows(t *testing.T) {
	tests := []struct {
		name       string
		permission permissions.Permission
		role       string
		want       bool
	}{
		{name: "public endpoint admits anyone", permission: permissions.Permission{Skip: true, Permissions: []string{"admin"}}, role: "", want: true},
		{name: "no role list admits any role", permission: permissions.Permission{}, role: "user", want: true},
		{name: "listed role is admitted", permission: permissions.Permission{Permissions: []string{"admin", "superadmin"}}, role: "superadmin", want: true},
		{name: "unlisted role is refused", permission: permissions.Permission{Permissions: []string{"admin", "superadmin"}}, role: "user", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.permission.Allows(tt.role))
		})
	}
}
