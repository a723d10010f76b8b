// Package authz decides whether an identity may perform an operation on a
// resource. Every rule is a pure function of the actor's id and roles and
// the resource's owner id; nothing here touches storage.
package authz

import (
	"blog-platform/auth"
	"blog-platform/models"
)

type Decision int

const (
	Allow Decision = iota
	// DenyUnauthenticated: no valid identity behind the request.
	DenyUnauthenticated
	// DenyForbidden: authenticated, but neither owner nor privileged enough.
	DenyForbidden
)

func (d Decision) Allowed() bool {
	return d == Allow
}

func privileged(actor auth.Identity) bool {
	return actor.HasRole(models.RoleAdmin) || actor.HasRole(models.RoleModerator)
}

// ReadPrivate covers draft listings, full user records, and raw comment
// lists. Published content needs no decision at all.
func ReadPrivate(actor auth.Identity) Decision {
	switch {
	case actor.Anonymous():
		return DenyUnauthenticated
	case privileged(actor):
		return Allow
	default:
		return DenyForbidden
	}
}

// Create applies to articles and comments; the created resource is owned by
// the actor.
func Create(actor auth.Identity) Decision {
	if actor.Anonymous() {
		return DenyUnauthenticated
	}
	return Allow
}

// UpdateOwned: owner, Admin, or Moderator.
func UpdateOwned(actor auth.Identity, ownerID uint) Decision {
	switch {
	case actor.Anonymous():
		return DenyUnauthenticated
	case actor.UserID == ownerID || privileged(actor):
		return Allow
	default:
		return DenyForbidden
	}
}

// DeleteOwned is stricter than update: owner or Admin only.
func DeleteOwned(actor auth.Identity, ownerID uint) Decision {
	switch {
	case actor.Anonymous():
		return DenyUnauthenticated
	case actor.UserID == ownerID || actor.HasRole(models.RoleAdmin):
		return Allow
	default:
		return DenyForbidden
	}
}

// ManageTags covers tag create and update. Tags have no owner.
func ManageTags(actor auth.Identity) Decision {
	switch {
	case actor.Anonymous():
		return DenyUnauthenticated
	case privileged(actor):
		return Allow
	default:
		return DenyForbidden
	}
}

// DeleteTag: Admin only.
func DeleteTag(actor auth.Identity) Decision {
	switch {
	case actor.Anonymous():
		return DenyUnauthenticated
	case actor.HasRole(models.RoleAdmin):
		return Allow
	default:
		return DenyForbidden
	}
}

// ModerateComments covers approve and reject; it bypasses the general
// update rule on purpose.
func ModerateComments(actor auth.Identity) Decision {
	return ReadPrivate(actor)
}

// ReadUser: the user themself, Admin, or Moderator.
func ReadUser(actor auth.Identity, targetID uint) Decision {
	switch {
	case actor.Anonymous():
		return DenyUnauthenticated
	case actor.UserID == targetID || privileged(actor):
		return Allow
	default:
		return DenyForbidden
	}
}

// UpdateUser: the user themself or Admin.
func UpdateUser(actor auth.Identity, targetID uint) Decision {
	switch {
	case actor.Anonymous():
		return DenyUnauthenticated
	case actor.UserID == targetID || actor.HasRole(models.RoleAdmin):
		return Allow
	default:
		return DenyForbidden
	}
}

// DeleteUser: Admin only, and never the actor's own account.
func DeleteUser(actor auth.Identity, targetID uint) Decision {
	switch {
	case actor.Anonymous():
		return DenyUnauthenticated
	case actor.UserID == targetID:
		return DenyForbidden
	case actor.HasRole(models.RoleAdmin):
		return Allow
	default:
		return DenyForbidden
	}
}

// AssignRoles: Admin only.
func AssignRoles(actor auth.Identity) Decision {
	switch {
	case actor.Anonymous():
		return DenyUnauthenticated
	case actor.HasRole(models.RoleAdmin):
		return Allow
	default:
		return DenyForbidden
	}
}
