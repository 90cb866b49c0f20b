// Package pgstore persists volontulo records in PostgreSQL.
package pgstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/volontulo/seedkit/pkg/pg"
	"github.com/volontulo/seedkit/svc/volontulo"
)

// DBTX is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Store is a volontulo.Storage backed by PostgreSQL.
type Store struct {
	db DBTX
}

var (
	_ volontulo.Storage    = (*Store)(nil)
	_ volontulo.Transactor = (*Store)(nil)
)

// New returns a Store writing through db.
func New(db DBTX) *Store {
	return &Store{db: db}
}

// InTx runs fn in a transaction. fn's Storage writes through the
// transaction, which is committed when fn returns nil.
func (s *Store) InTx(ctx context.Context, fn func(volontulo.Storage) error) error {
	return pgx.BeginFunc(ctx, s.db, func(tx pgx.Tx) error {
		return fn(New(tx))
	})
}

const insertUser = `INSERT INTO users
	(id, first_name, last_name, email, username, password_hash, is_active, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

// CreateUser inserts user. A taken e-mail or username yields
// volontulo.ErrDuplicate.
func (s *Store) CreateUser(ctx context.Context, user *volontulo.User) error {
	createdAt := user.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	_, err := s.db.Exec(ctx, insertUser,
		user.ID, user.FirstName, user.LastName, user.Email, user.Username,
		user.PasswordHash, user.IsActive, createdAt,
	)
	if err != nil {
		return fmt.Errorf("insert user %s: %w", user.Email, mapError(err))
	}
	return nil
}

const insertUserProfile = `INSERT INTO user_profiles (id, user_id) VALUES ($1, $2)`

// CreateUserProfile inserts the profile of an existing user.
func (s *Store) CreateUserProfile(ctx context.Context, profile *volontulo.UserProfile) error {
	if _, err := s.db.Exec(ctx, insertUserProfile, profile.ID, profile.UserID); err != nil {
		return fmt.Errorf("insert profile for user %s: %w", profile.UserID, mapError(err))
	}
	return nil
}

const insertOrganization = `INSERT INTO organizations (id, name, address, description)
	VALUES ($1, $2, $3, $4)`

// CreateOrganization inserts org.
func (s *Store) CreateOrganization(ctx context.Context, org *volontulo.Organization) error {
	if _, err := s.db.Exec(ctx, insertOrganization, org.ID, org.Name, org.Address, org.Description); err != nil {
		return fmt.Errorf("insert organization %q: %w", org.Name, mapError(err))
	}
	return nil
}

const insertOffer = `INSERT INTO offers (
	id, organization_id, title, description, requirements, time_commitment,
	benefits, location, time_period,
	started_at, finished_at, recruitment_start_date, recruitment_end_date,
	reserve_recruitment_start_date, reserve_recruitment_end_date,
	action_start_date, action_end_date,
	status_old, offer_status, recruitment_status, action_status,
	votes, reserve_recruitment, action_ongoing, constant_coop,
	volunteers_limit, reserve_volunteers_limit, weight
) VALUES (
	$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
	$15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28
)`

// CreateOffer inserts o. Zero dates are stored as NULL.
func (s *Store) CreateOffer(ctx context.Context, o *volontulo.Offer) error {
	_, err := s.db.Exec(ctx, insertOffer,
		o.ID, o.OrganizationID, o.Title, o.Description, o.Requirements, o.TimeCommitment,
		o.Benefits, o.Location, o.TimePeriod,
		nullTime(o.StartedAt), nullTime(o.FinishedAt),
		nullTime(o.RecruitmentStartDate), nullTime(o.RecruitmentEndDate),
		nullTime(o.ReserveRecruitmentStartDate), nullTime(o.ReserveRecruitmentEndDate),
		nullTime(o.ActionStartDate), nullTime(o.ActionEndDate),
		string(o.StatusOld), string(o.OfferStatus), string(o.RecruitmentStatus), string(o.ActionStatus),
		o.Votes, o.ReserveRecruitment, o.ActionOngoing, o.ConstantCoop,
		o.VolunteersLimit, o.ReserveVolunteersLimit, o.Weight,
	)
	if err != nil {
		return fmt.Errorf("insert offer %s: %w", o.ID, mapError(err))
	}
	return nil
}

const insertOfferVolunteer = `INSERT INTO offer_volunteers (offer_id, user_id)
	VALUES ($1, $2) ON CONFLICT DO NOTHING`

// AddOfferVolunteers links users to an offer, skipping existing links.
func (s *Store) AddOfferVolunteers(ctx context.Context, offerID uuid.UUID, userIDs ...uuid.UUID) error {
	for _, id := range userIDs {
		if _, err := s.db.Exec(ctx, insertOfferVolunteer, offerID, id); err != nil {
			return fmt.Errorf("link volunteer %s to offer %s: %w", id, offerID, mapError(err))
		}
	}
	return nil
}

// mapError attaches the volontulo sentinel matching a constraint violation.
func mapError(err error) error {
	switch {
	case pg.IsDuplicateKeyError(err):
		return errors.Join(volontulo.ErrDuplicate, err)
	case pg.IsForeignKeyViolationError(err), pg.IsNotFoundError(err):
		return errors.Join(volontulo.ErrNotFound, err)
	default:
		return err
	}
}

func nullTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
