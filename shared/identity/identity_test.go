package identity_test

import (
	"context"
	"testing"

	"cowork/shared/constant"
	"cowork/shared/identity"

	"github.com/stretchr/testify/assert"
)

func TestFromContext(t *testing.T) {
	_, ok := identity.FromContext(context.Background())
	assert.False(t, ok)
	assert.Equal(t, constant.ContextGuest, identity.Actor(context.Background()))

	ctx := identity.WithUser(context.Background(), identity.User{ID: "u-1", Role: constant.RoleAdmin})
	user, ok := identity.FromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "u-1", user.ID)
	assert.True(t, user.IsAdmin())
	assert.Equal(t, "u-1", identity.Actor(ctx))

	blank := identity.WithUser(context.Background(), identity.User{Role: constant.RoleUser})
	_, ok = identity.FromContext(blank)
	assert.False(t, ok)
}
