package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"blog-platform/auth"
	"blog-platform/models"
)

var (
	anonymous = auth.Identity{}
	owner     = auth.Identity{UserID: 7, Roles: []string{models.RoleUser}}
	stranger  = auth.Identity{UserID: 8, Roles: []string{models.RoleUser}}
	moderator = auth.Identity{UserID: 9, Roles: []string{models.RoleModerator}}
	admin     = auth.Identity{UserID: 10, Roles: []string{models.RoleAdmin}}
)

const ownerID = uint(7)

func TestReadPrivate(t *testing.T) {
	assert.Equal(t, DenyUnauthenticated, ReadPrivate(anonymous))
	assert.Equal(t, DenyForbidden, ReadPrivate(owner))
	assert.Equal(t, Allow, ReadPrivate(moderator))
	assert.Equal(t, Allow, ReadPrivate(admin))
}

func TestCreate(t *testing.T) {
	assert.Equal(t, DenyUnauthenticated, Create(anonymous))
	assert.Equal(t, Allow, Create(owner))
}

func TestUpdateOwned(t *testing.T) {
	assert.Equal(t, DenyUnauthenticated, UpdateOwned(anonymous, ownerID))
	assert.Equal(t, Allow, UpdateOwned(owner, ownerID))
	assert.Equal(t, DenyForbidden, UpdateOwned(stranger, ownerID))
	assert.Equal(t, Allow, UpdateOwned(moderator, ownerID))
	assert.Equal(t, Allow, UpdateOwned(admin, ownerID))
}

func TestDeleteOwnedExcludesModerator(t *testing.T) {
	assert.Equal(t, DenyUnauthenticated, DeleteOwned(anonymous, ownerID))
	assert.Equal(t, Allow, DeleteOwned(owner, ownerID))
	assert.Equal(t, DenyForbidden, DeleteOwned(stranger, ownerID))
	assert.Equal(t, DenyForbidden, DeleteOwned(moderator, ownerID))
	assert.Equal(t, Allow, DeleteOwned(admin, ownerID))
}

func TestTagRules(t *testing.T) {
	assert.Equal(t, DenyForbidden, ManageTags(owner))
	assert.Equal(t, Allow, ManageTags(moderator))
	assert.Equal(t, Allow, ManageTags(admin))

	assert.Equal(t, DenyForbidden, DeleteTag(moderator))
	assert.Equal(t, Allow, DeleteTag(admin))
}

func TestModerateComments(t *testing.T) {
	assert.Equal(t, DenyUnauthenticated, ModerateComments(anonymous))
	assert.Equal(t, DenyForbidden, ModerateComments(owner))
	assert.Equal(t, Allow, ModerateComments(moderator))
	assert.Equal(t, Allow, ModerateComments(admin))
}

func TestUserRules(t *testing.T) {
	assert.Equal(t, Allow, ReadUser(owner, ownerID))
	assert.Equal(t, DenyForbidden, ReadUser(stranger, ownerID))
	assert.Equal(t, Allow, ReadUser(moderator, ownerID))

	assert.Equal(t, Allow, UpdateUser(owner, ownerID))
	assert.Equal(t, DenyForbidden, UpdateUser(moderator, ownerID))
	assert.Equal(t, Allow, UpdateUser(admin, ownerID))

	assert.Equal(t, DenyForbidden, DeleteUser(moderator, ownerID))
	assert.Equal(t, Allow, DeleteUser(admin, ownerID))
	// Admins may never delete themselves.
	assert.Equal(t, DenyForbidden, DeleteUser(admin, admin.UserID))

	assert.Equal(t, DenyForbidden, AssignRoles(moderator))
	assert.Equal(t, Allow, AssignRoles(admin))
	assert.Equal(t, DenyUnauthenticated, AssignRoles(anonymous))
}
