// Package authz centralizes the ownership predicate that every mutating
// handler used to duplicate inline. A single Allows call decides whether a
// caller holds the required relation to a resource.
package authz

import (
	"github.com/google/uuid"

	"github.com/o064/SWE-Back-End/internal/model"
)

// Relation names how a caller must relate to a resource.
type Relation int

const (
	// Owner requires the caller to be the exact owning user of the
	// resource. Admins do NOT bypass this check: a route-level role
	// filter may admit an admin, but mutations still require the
	// creating instructor or author.
	Owner Relation = iota + 1
	// Self requires the resource owner to be the caller themselves
	// (used for per-user records such as quiz results).
	Self
)

// Owned is any resource with a single owning user.
type Owned interface {
	OwnerID() uuid.UUID
}

// Allows reports whether caller holds the required relation to the resource.
func Allows(caller *model.User, res Owned, rel Relation) bool {
	if caller == nil || res == nil {
		return false
	}
	switch rel {
	case Owner, Self:
		return caller.ID == res.OwnerID()
	}
	return false
}

// ownedID adapts a bare user ID to the Owned interface.
type ownedID uuid.UUID

func (o ownedID) OwnerID() uuid.UUID { return uuid.UUID(o) }

// AllowsID is Allows for resources that only expose the owner's ID.
func AllowsID(caller *model.User, ownerID uuid.UUID, rel Relation) bool {
	return Allows(caller, ownedID(ownerID), rel)
}
