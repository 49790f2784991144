package usecases

import (
	"errors"

	"apexrenting/internal/entities"
	"apexrenting/internal/interfaces"
)

var ErrUnknownUser = errors.New("unknown user")

// Identity is what a view needs to know about a session: who it is,
// whether it may see admin surfaces, and which properties it can read.
type Identity struct {
	Profile    entities.Profile    `json:"profile"`
	IsAdmin    bool                `json:"is_admin"`
	Properties []entities.Property `json:"properties"`
}

// Authorization is an explicit result for admin-guarded operations, so
// every guarded route consumes the same decision instead of re-implementing
// a redirect-on-failure check.
type Authorization struct {
	Authorized bool   `json:"authorized"`
	Reason     string `json:"reason,omitempty"`
}

func Authorized() Authorization {
	return Authorization{Authorized: true}
}

func Denied(reason string) Authorization {
	return Authorization{Authorized: false, Reason: reason}
}

type IdentityResolver struct {
	profiles   interfaces.ProfileStore
	roles      interfaces.RoleStore
	properties interfaces.PropertyStore
}

func NewIdentityResolver(profiles interfaces.ProfileStore, roles interfaces.RoleStore, properties interfaces.PropertyStore) *IdentityResolver {
	return &IdentityResolver{
		profiles:   profiles,
		roles:      roles,
		properties: properties,
	}
}

// Resolve re-derives the identity from storage on every call; nothing is
// cached across sessions. Zero assigned properties is a valid state for a
// client, not an error.
func (r *IdentityResolver) Resolve(userID string) (*Identity, error) {
	profile, err := r.profiles.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrUnknownUser
	}

	isAdmin, err := r.roles.IsAdmin(userID)
	if err != nil {
		return nil, err
	}

	var properties []entities.Property
	if isAdmin {
		properties, err = r.properties.GetAll()
	} else {
		properties, err = r.properties.GetAssigned(userID)
	}
	if err != nil {
		return nil, err
	}

	return &Identity{
		Profile:    *profile,
		IsAdmin:    isAdmin,
		Properties: properties,
	}, nil
}

// AuthorizeAdmin yields the typed decision for admin-guarded routes.
func (r *IdentityResolver) AuthorizeAdmin(userID string) (Authorization, error) {
	isAdmin, err := r.roles.IsAdmin(userID)
	if err != nil {
		return Denied("authorization check failed"), err
	}
	if !isAdmin {
		return Denied("admin role required"), nil
	}
	return Authorized(), nil
}
