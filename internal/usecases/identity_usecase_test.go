package usecases

import (
	"errors"
	"testing"

	"apexrenting/internal/entities"

	"github.com/stretchr/testify/assert"
)

func TestResolveClient(t *testing.T) {
	profiles := &fakeProfileStore{profiles: []entities.Profile{
		{ID: "u1", Email: "client@example.com"},
	}}
	roles := &fakeRoleStore{}
	properties := &fakePropertyStore{
		properties: []entities.Property{
			{ID: "p1", Name: "Beta House"},
			{ID: "p2", Name: "Alpha House"},
			{ID: "p3", Name: "Gamma House"},
		},
		assigned: map[string][]string{"u1": {"p1", "p2"}},
	}

	resolver := NewIdentityResolver(profiles, roles, properties)
	identity, err := resolver.Resolve("u1")

	assert.NoError(t, err)
	assert.False(t, identity.IsAdmin)
	// Only assigned properties, name ascending.
	assert.Len(t, identity.Properties, 2)
	assert.Equal(t, "Alpha House", identity.Properties[0].Name)
	assert.Equal(t, "Beta House", identity.Properties[1].Name)
}

func TestResolveClientWithNoAssignments(t *testing.T) {
	profiles := &fakeProfileStore{profiles: []entities.Profile{{ID: "u1", Email: "new@example.com"}}}
	properties := &fakePropertyStore{properties: []entities.Property{{ID: "p1", Name: "House"}}}

	resolver := NewIdentityResolver(profiles, &fakeRoleStore{}, properties)
	identity, err := resolver.Resolve("u1")

	// Zero assigned properties is a valid state, not an error.
	assert.NoError(t, err)
	assert.Empty(t, identity.Properties)
}

func TestResolveAdminSeesAllProperties(t *testing.T) {
	profiles := &fakeProfileStore{profiles: []entities.Profile{{ID: "admin", Email: "admin@example.com"}}}
	roles := &fakeRoleStore{admins: map[string]bool{"admin": true}}
	properties := &fakePropertyStore{properties: []entities.Property{
		{ID: "p1", Name: "One"},
		{ID: "p2", Name: "Two"},
	}}

	resolver := NewIdentityResolver(profiles, roles, properties)
	identity, err := resolver.Resolve("admin")

	assert.NoError(t, err)
	assert.True(t, identity.IsAdmin)
	assert.Len(t, identity.Properties, 2)
}

func TestResolveUnknownUser(t *testing.T) {
	resolver := NewIdentityResolver(&fakeProfileStore{}, &fakeRoleStore{}, &fakePropertyStore{})

	_, err := resolver.Resolve("ghost")
	assert.ErrorIs(t, err, ErrUnknownUser)
}

func TestAuthorizeAdmin(t *testing.T) {
	roles := &fakeRoleStore{admins: map[string]bool{"admin": true}}
	resolver := NewIdentityResolver(&fakeProfileStore{}, roles, &fakePropertyStore{})

	decision, err := resolver.AuthorizeAdmin("admin")
	assert.NoError(t, err)
	assert.True(t, decision.Authorized)

	// Absence of a role row is a denial, not an error.
	decision, err = resolver.AuthorizeAdmin("client")
	assert.NoError(t, err)
	assert.False(t, decision.Authorized)
	assert.Equal(t, "admin role required", decision.Reason)
}

func TestAuthorizeAdminStoreFailure(t *testing.T) {
	roles := &fakeRoleStore{err: errors.New("connection refused")}
	resolver := NewIdentityResolver(&fakeProfileStore{}, roles, &fakePropertyStore{})

	decision, err := resolver.AuthorizeAdmin("admin")
	assert.Error(t, err)
	assert.False(t, decision.Authorized)
}
