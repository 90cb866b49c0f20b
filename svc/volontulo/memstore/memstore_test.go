package memstore_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/volontulo/seedkit/svc/volontulo"
	"github.com/volontulo/seedkit/svc/volontulo/memstore"
)

func newUser(email string) *volontulo.User {
	return &volontulo.User{ID: uuid.New(), FirstName: "Jan", LastName: "Kowalski", Email: email, Username: email}
}

func TestStore_Users(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := memstore.New()

	u := newUser("jan@wp.pl")
	require.NoError(t, s.CreateUser(ctx, u))
	require.NoError(t, s.CreateUserProfile(ctx, &volontulo.UserProfile{ID: uuid.New(), UserID: u.ID}))

	err := s.CreateUser(ctx, newUser("JAN@wp.pl"))
	assert.ErrorIs(t, err, volontulo.ErrDuplicate)

	err = s.CreateUserProfile(ctx, &volontulo.UserProfile{ID: uuid.New(), UserID: u.ID})
	assert.ErrorIs(t, err, volontulo.ErrDuplicate)

	err = s.CreateUserProfile(ctx, &volontulo.UserProfile{ID: uuid.New(), UserID: uuid.New()})
	assert.ErrorIs(t, err, volontulo.ErrNotFound)

	users := s.Users()
	require.Len(t, users, 1)
	require.NotNil(t, users[0].Profile)
	assert.Equal(t, u.ID, users[0].Profile.UserID)

	got, ok := s.UserByFirstName("Jan")
	require.True(t, ok)
	assert.Equal(t, "jan@wp.pl", got.Email)

	_, ok = s.UserByFirstName("Piotr")
	assert.False(t, ok)
}

func TestStore_UniqueUsername(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := memstore.New()

	first := newUser("anna@wp.pl")
	first.Username = "anna"
	require.NoError(t, s.CreateUser(ctx, first))

	second := newUser("anna.nowak@wp.pl")
	second.Username = "anna"
	err := s.CreateUser(ctx, second)
	require.ErrorIs(t, err, volontulo.ErrDuplicate)
	assert.Contains(t, err.Error(), "username")

	third := newUser("anna.kowalska@wp.pl")
	third.Username = "Anna"
	require.NoError(t, s.CreateUser(ctx, third))
	assert.Len(t, s.Users(), 2)
}

func TestStore_StoresCopies(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := memstore.New()

	u := newUser("anna@onet.pl")
	require.NoError(t, s.CreateUser(ctx, u))
	u.FirstName = "changed"

	got := s.Users()
	require.Len(t, got, 1)
	assert.Equal(t, "Jan", got[0].FirstName)
}

func TestStore_Offers(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := memstore.New()

	org := &volontulo.Organization{ID: uuid.New(), Name: `Krajowa Rada Zbiorcza "UKF"`}
	offer := &volontulo.Offer{ID: uuid.New(), OrganizationID: org.ID, Title: "Pomoc w schronisku"}

	err := s.CreateOffer(ctx, offer)
	assert.ErrorIs(t, err, volontulo.ErrNotFound)

	require.NoError(t, s.CreateOrganization(ctx, org))
	assert.ErrorIs(t, s.CreateOrganization(ctx, org), volontulo.ErrDuplicate)
	require.NoError(t, s.CreateOffer(ctx, offer))
	assert.ErrorIs(t, s.CreateOffer(ctx, offer), volontulo.ErrDuplicate)

	a, b := newUser("a@wp.pl"), newUser("b@wp.pl")
	require.NoError(t, s.CreateUser(ctx, a))
	require.NoError(t, s.CreateUser(ctx, b))

	require.NoError(t, s.AddOfferVolunteers(ctx, offer.ID, a.ID, b.ID))
	require.NoError(t, s.AddOfferVolunteers(ctx, offer.ID, a.ID))
	assert.ErrorIs(t, s.AddOfferVolunteers(ctx, offer.ID, uuid.New()), volontulo.ErrNotFound)
	assert.ErrorIs(t, s.AddOfferVolunteers(ctx, uuid.New(), a.ID), volontulo.ErrNotFound)

	assert.Len(t, s.OfferVolunteers(offer.ID), 2)

	got, ok := s.OfferByTitle("Pomoc w schronisku")
	require.True(t, ok)
	require.NotNil(t, got.Organization)
	assert.Equal(t, org.Name, got.Organization.Name)
	assert.Len(t, got.Volunteers, 2)

	found, ok := s.OrganizationByName(org.Name)
	require.True(t, ok)
	assert.Equal(t, org.ID, found.ID)
	assert.Len(t, s.Organizations(), 1)
	assert.Len(t, s.Offers(), 1)
}

func TestStore_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := memstore.New()
	assert.ErrorIs(t, s.CreateUser(ctx, newUser("x@wp.pl")), context.Canceled)
	assert.Empty(t, s.Users())
}
