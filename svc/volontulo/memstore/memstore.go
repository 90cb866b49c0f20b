// Package memstore keeps volontulo records in memory. It backs factory tests
// and popdb dry runs.
package memstore

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/volontulo/seedkit/svc/volontulo"
)

// Store is a volontulo.Storage held in memory. It is safe for concurrent use.
type Store struct {
	mu            sync.RWMutex
	users         []*volontulo.User
	emails        map[string]uuid.UUID
	usernames     map[string]uuid.UUID
	profiles      map[uuid.UUID]volontulo.UserProfile
	organizations []*volontulo.Organization
	offers        []*volontulo.Offer
	volunteers    map[uuid.UUID][]uuid.UUID
}

var _ volontulo.Storage = (*Store)(nil)

// New returns an empty Store.
func New() *Store {
	return &Store{
		emails:     make(map[string]uuid.UUID),
		usernames:  make(map[string]uuid.UUID),
		profiles:   make(map[uuid.UUID]volontulo.UserProfile),
		volunteers: make(map[uuid.UUID][]uuid.UUID),
	}
}

// CreateUser stores a copy of user without its profile. E-mails are unique
// regardless of case, usernames exactly.
func (s *Store) CreateUser(ctx context.Context, user *volontulo.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	key := strings.ToLower(user.Email)
	if _, ok := s.emails[key]; ok {
		return fmt.Errorf("%w: user with email %q", volontulo.ErrDuplicate, user.Email)
	}
	if _, ok := s.usernames[user.Username]; ok {
		return fmt.Errorf("%w: user with username %q", volontulo.ErrDuplicate, user.Username)
	}
	if s.findUser(user.ID) != nil {
		return fmt.Errorf("%w: user %s", volontulo.ErrDuplicate, user.ID)
	}

	u := *user
	u.Profile = nil
	s.users = append(s.users, &u)
	s.emails[key] = u.ID
	s.usernames[u.Username] = u.ID
	return nil
}

// CreateUserProfile stores the single profile of an existing user.
func (s *Store) CreateUserProfile(ctx context.Context, profile *volontulo.UserProfile) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findUser(profile.UserID) == nil {
		return fmt.Errorf("%w: user %s", volontulo.ErrNotFound, profile.UserID)
	}
	if _, ok := s.profiles[profile.UserID]; ok {
		return fmt.Errorf("%w: profile for user %s", volontulo.ErrDuplicate, profile.UserID)
	}
	s.profiles[profile.UserID] = *profile
	return nil
}

// CreateOrganization stores a copy of org.
func (s *Store) CreateOrganization(ctx context.Context, org *volontulo.Organization) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findOrganization(org.ID) != nil {
		return fmt.Errorf("%w: organization %s", volontulo.ErrDuplicate, org.ID)
	}
	o := *org
	s.organizations = append(s.organizations, &o)
	return nil
}

// CreateOffer stores a copy of offer. Its organization must exist.
func (s *Store) CreateOffer(ctx context.Context, offer *volontulo.Offer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findOrganization(offer.OrganizationID) == nil {
		return fmt.Errorf("%w: organization %s", volontulo.ErrNotFound, offer.OrganizationID)
	}
	if s.findOffer(offer.ID) != nil {
		return fmt.Errorf("%w: offer %s", volontulo.ErrDuplicate, offer.ID)
	}

	o := *offer
	o.Organization = nil
	o.Volunteers = nil
	s.offers = append(s.offers, &o)
	return nil
}

// AddOfferVolunteers links existing users to an existing offer. Links
// already present are kept once.
func (s *Store) AddOfferVolunteers(ctx context.Context, offerID uuid.UUID, userIDs ...uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findOffer(offerID) == nil {
		return fmt.Errorf("%w: offer %s", volontulo.ErrNotFound, offerID)
	}
	for _, id := range userIDs {
		if s.findUser(id) == nil {
			return fmt.Errorf("%w: user %s", volontulo.ErrNotFound, id)
		}
	}
	for _, id := range userIDs {
		if !slices.Contains(s.volunteers[offerID], id) {
			s.volunteers[offerID] = append(s.volunteers[offerID], id)
		}
	}
	return nil
}

// Users returns copies of every stored user, with profiles, in insertion order.
func (s *Store) Users() []volontulo.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]volontulo.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, s.userCopy(u))
	}
	return out
}

// UserByFirstName returns the first user with the given first name.
func (s *Store) UserByFirstName(firstName string) (volontulo.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.FirstName == firstName {
			return s.userCopy(u), true
		}
	}
	return volontulo.User{}, false
}

// Organizations returns copies of every stored organization.
func (s *Store) Organizations() []volontulo.Organization {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]volontulo.Organization, 0, len(s.organizations))
	for _, o := range s.organizations {
		out = append(out, *o)
	}
	return out
}

// OrganizationByName returns the first organization with the given name.
func (s *Store) OrganizationByName(name string) (volontulo.Organization, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, o := range s.organizations {
		if o.Name == name {
			return *o, true
		}
	}
	return volontulo.Organization{}, false
}

// Offers returns copies of every stored offer with organization and
// volunteers resolved.
func (s *Store) Offers() []volontulo.Offer {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]volontulo.Offer, 0, len(s.offers))
	for _, o := range s.offers {
		out = append(out, s.offerCopy(o))
	}
	return out
}

// OfferByTitle returns the first offer with the given title.
func (s *Store) OfferByTitle(title string) (volontulo.Offer, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, o := range s.offers {
		if o.Title == title {
			return s.offerCopy(o), true
		}
	}
	return volontulo.Offer{}, false
}

// OfferVolunteers returns the users linked to an offer.
func (s *Store) OfferVolunteers(offerID uuid.UUID) []volontulo.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := s.volunteers[offerID]
	out := make([]volontulo.User, 0, len(ids))
	for _, id := range ids {
		if u := s.findUser(id); u != nil {
			out = append(out, s.userCopy(u))
		}
	}
	return out
}

func (s *Store) userCopy(u *volontulo.User) volontulo.User {
	c := *u
	if p, ok := s.profiles[u.ID]; ok {
		c.Profile = &p
	}
	return c
}

func (s *Store) offerCopy(o *volontulo.Offer) volontulo.Offer {
	c := *o
	if org := s.findOrganization(o.OrganizationID); org != nil {
		orgCopy := *org
		c.Organization = &orgCopy
	}
	for _, id := range s.volunteers[o.ID] {
		if u := s.findUser(id); u != nil {
			uc := s.userCopy(u)
			c.Volunteers = append(c.Volunteers, &uc)
		}
	}
	return c
}

func (s *Store) findUser(id uuid.UUID) *volontulo.User {
	for _, u := range s.users {
		if u.ID == id {
			return u
		}
	}
	return nil
}

func (s *Store) findOrganization(id uuid.UUID) *volontulo.Organization {
	for _, o := range s.organizations {
		if o.ID == id {
			return o
		}
	}
	return nil
}

func (s *Store) findOffer(id uuid.UUID) *volontulo.Offer {
	for _, o := range s.offers {
		if o.ID == id {
			return o
		}
	}
	return nil
}
