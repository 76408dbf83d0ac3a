package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrincipalRoles(t *testing.T) {
	user := Principal{UserID: 1, Role: RoleUser}
	admin := Principal{UserID: 2, Role: RoleAdmin}
	superAdmin := Principal{UserID: 3, Role: RoleSuperAdmin}

	assert.False(t, user.IsAdmin())
	assert.False(t, user.IsSuperAdmin())

	assert.True(t, admin.IsAdmin())
	assert.False(t, admin.IsSuperAdmin())

	assert.True(t, superAdmin.IsAdmin())
	assert.True(t, superAdmin.IsSuperAdmin())
}

func TestWishlistContains(t *testing.T) {
	wishlist := Wishlist{
		UserID: 1,
		Items:  []WishlistItem{{ProductID: 10}, {ProductID: 11}},
	}

	assert.True(t, wishlist.Contains(10))
	assert.False(t, wishlist.Contains(12))
}
