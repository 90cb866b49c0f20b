package volontulo

import (
	"context"

	"github.com/google/uuid"
)

// Storage persists generated records.
type Storage interface {
	CreateUser(ctx context.Context, user *User) error
	CreateUserProfile(ctx context.Context, profile *UserProfile) error
	CreateOrganization(ctx context.Context, org *Organization) error
	CreateOffer(ctx context.Context, offer *Offer) error
	AddOfferVolunteers(ctx context.Context, offerID uuid.UUID, userIDs ...uuid.UUID) error
}

// Transactor is implemented by storages that can run a batch of writes
// atomically. fn receives a Storage bound to the transaction.
type Transactor interface {
	InTx(ctx context.Context, fn func(Storage) error) error
}
