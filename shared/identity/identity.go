// Package identity carries the authenticated caller through a request context.
// The auth middleware is the only writer; services read it with FromContext.
package identity

import (
	"context"

	"cowork/shared/constant"
)

type User struct {
	ID    string
	Email string
	Role  string
}

func (u User) IsAdmin() bool {
	return u.Role == constant.RoleAdmin || u.Role == constant.RoleSuperAdmin
}

// Actor is the name recorded in created_by and modified_by columns.
func (u User) Actor() string {
	if u.ID == "" {
		return constant.ContextGuest
	}

	return u.ID
}

func WithUser(ctx context.Context, user User) context.Context {
	return context.WithValue(ctx, constant.ContextKeyIdentity, user)
}

// FromContext reports the caller and whether one was authenticated.
func FromContext(ctx context.Context) (User, bool) {
	user, ok := ctx.Value(constant.ContextKeyIdentity).(User)
	if !ok || user.ID == "" {
		return User{}, false
	}

	return user, true
}

// Actor returns the audit name of the caller, or guest when anonymous.
func Actor(ctx context.Context) string {
	user, _ := FromContext(ctx)

	return user.Actor()
}
