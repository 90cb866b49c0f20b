package pgstore_test

import (
	"context"
	"io/fs"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/volontulo/seedkit/svc/volontulo"
	"github.com/volontulo/seedkit/svc/volontulo/pgstore"
)

type mockDB struct {
	mock.Mock
}

func (m *mockDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	ret := m.Called(sql, args)
	return pgconn.NewCommandTag("INSERT 0 1"), ret.Error(0)
}

func (m *mockDB) Begin(ctx context.Context) (pgx.Tx, error) {
	ret := m.Called()
	if ret.Get(0) == nil {
		return nil, ret.Error(1)
	}
	return ret.Get(0).(pgx.Tx), ret.Error(1)
}

// mockTx implements the pgx.Tx methods used by pgx.BeginFunc and the store.
type mockTx struct {
	pgx.Tx
	mock.Mock
}

func (m *mockTx) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	ret := m.Called(sql, args)
	return pgconn.NewCommandTag("INSERT 0 1"), ret.Error(0)
}

func (m *mockTx) Commit(ctx context.Context) error {
	return m.Called().Error(0)
}

func (m *mockTx) Rollback(ctx context.Context) error {
	return m.Called().Error(0)
}

// statement matches an INSERT into table regardless of line breaks and
// indentation in the query text.
func statement(table string) any {
	return mock.MatchedBy(func(sql string) bool {
		return strings.HasPrefix(strings.Join(strings.Fields(sql), " "), "INSERT INTO "+table+" ")
	})
}

func TestStatementMatchesMultilineSQL(t *testing.T) {
	t.Parallel()

	db := &mockDB{}
	db.On("Exec", statement("users"), mock.Anything).Return(nil).Once()
	db.On("Exec", statement("user_profiles"), mock.Anything).Return(nil).Once()

	_, err := db.Exec(context.Background(), "INSERT INTO users\n\t(id) VALUES ($1)", 1)
	require.NoError(t, err)
	_, err = db.Exec(context.Background(), "INSERT INTO user_profiles (id) VALUES ($1)", 1)
	require.NoError(t, err)
	db.AssertExpectations(t)
}

func TestCreateUser(t *testing.T) {
	t.Parallel()

	db := &mockDB{}
	store := pgstore.New(db)
	user := &volontulo.User{
		ID:           uuid.New(),
		FirstName:    "Jan",
		LastName:     "Kowalski",
		Email:        "jan@example.com",
		Username:     "jan@example.com",
		PasswordHash: []byte("hash"),
		IsActive:     true,
		CreatedAt:    time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	db.On("Exec", statement("users"), mock.MatchedBy(func(args []any) bool {
		return len(args) == 8 && args[0] == user.ID && args[3] == "jan@example.com" && args[6] == true
	})).Return(nil).Once()

	require.NoError(t, store.CreateUser(context.Background(), user))
	db.AssertExpectations(t)
}

func TestCreateUser_Duplicate(t *testing.T) {
	t.Parallel()

	db := &mockDB{}
	db.On("Exec", statement("users"), mock.Anything).
		Return(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

	err := pgstore.New(db).CreateUser(context.Background(), &volontulo.User{ID: uuid.New(), Email: "a@b.pl"})
	require.ErrorIs(t, err, volontulo.ErrDuplicate)
	assert.Contains(t, err.Error(), "a@b.pl")
}

func TestCreateOffer(t *testing.T) {
	t.Parallel()

	db := &mockDB{}
	offer := &volontulo.Offer{
		ID:             uuid.New(),
		OrganizationID: uuid.New(),
		Title:          "Pomoc",
		StatusOld:      volontulo.StatusOldActive,
		OfferStatus:    volontulo.OfferPublished,
		StartedAt:      time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC),
		Weight:         7,
	}

	db.On("Exec", statement("offers"), mock.MatchedBy(func(args []any) bool {
		if len(args) != 28 {
			return false
		}
		started, ok := args[9].(*time.Time)
		finished, _ := args[10].(*time.Time)
		return ok && started.Equal(offer.StartedAt) && finished == nil &&
			args[17] == "ACTIVE" && args[18] == "published" && args[27] == 7
	})).Return(nil).Once()

	require.NoError(t, pgstore.New(db).CreateOffer(context.Background(), offer))
	db.AssertExpectations(t)
}

func TestCreateOffer_MissingOrganization(t *testing.T) {
	t.Parallel()

	db := &mockDB{}
	db.On("Exec", statement("offers"), mock.Anything).Return(&pgconn.PgError{Code: "23503"})

	err := pgstore.New(db).CreateOffer(context.Background(), &volontulo.Offer{ID: uuid.New()})
	require.ErrorIs(t, err, volontulo.ErrNotFound)
}

func TestProfileAndOrganization(t *testing.T) {
	t.Parallel()

	db := &mockDB{}
	store := pgstore.New(db)
	userID := uuid.New()

	db.On("Exec", statement("user_profiles"), mock.MatchedBy(func(args []any) bool {
		return len(args) == 2 && args[1] == userID
	})).Return(nil).Once()
	db.On("Exec", statement("organizations"), mock.MatchedBy(func(args []any) bool {
		return len(args) == 4 && args[1] == "Krajowy Szpital Organizacyjny \"Totuus\""
	})).Return(nil).Once()

	require.NoError(t, store.CreateUserProfile(context.Background(), &volontulo.UserProfile{ID: uuid.New(), UserID: userID}))
	require.NoError(t, store.CreateOrganization(context.Background(), &volontulo.Organization{
		ID:   uuid.New(),
		Name: "Krajowy Szpital Organizacyjny \"Totuus\"",
	}))
	db.AssertExpectations(t)
}

func TestAddOfferVolunteers(t *testing.T) {
	t.Parallel()

	db := &mockDB{}
	offerID := uuid.New()
	users := []uuid.UUID{uuid.New(), uuid.New()}

	for _, id := range users {
		db.On("Exec", statement("offer_volunteers"), []any{offerID, id}).Return(nil).Once()
	}

	require.NoError(t, pgstore.New(db).AddOfferVolunteers(context.Background(), offerID, users...))
	db.AssertExpectations(t)
}

func TestInTx(t *testing.T) {
	t.Parallel()

	t.Run("commits", func(t *testing.T) {
		db := &mockDB{}
		tx := &mockTx{}
		db.On("Begin").Return(tx, nil).Once()
		tx.On("Exec", statement("organizations"), mock.Anything).Return(nil).Once()
		tx.On("Commit").Return(nil).Once()
		tx.On("Rollback").Return(pgx.ErrTxClosed).Maybe()

		err := pgstore.New(db).InTx(context.Background(), func(s volontulo.Storage) error {
			return s.CreateOrganization(context.Background(), &volontulo.Organization{ID: uuid.New()})
		})
		require.NoError(t, err)
		db.AssertExpectations(t)
		tx.AssertExpectations(t)
		db.AssertNotCalled(t, "Exec", mock.Anything, mock.Anything)
	})

	t.Run("rolls back on error", func(t *testing.T) {
		db := &mockDB{}
		tx := &mockTx{}
		db.On("Begin").Return(tx, nil).Once()
		tx.On("Exec", statement("organizations"), mock.Anything).Return(&pgconn.PgError{Code: "23505"}).Once()
		tx.On("Rollback").Return(nil).Once()
		tx.On("Rollback").Return(pgx.ErrTxClosed).Maybe()

		err := pgstore.New(db).InTx(context.Background(), func(s volontulo.Storage) error {
			return s.CreateOrganization(context.Background(), &volontulo.Organization{ID: uuid.New()})
		})
		require.ErrorIs(t, err, volontulo.ErrDuplicate)
		tx.AssertNotCalled(t, "Commit")
	})
}

func TestMigrations(t *testing.T) {
	t.Parallel()

	files, err := fs.Glob(pgstore.Migrations, pgstore.MigrationsDir+"/*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	body, err := fs.ReadFile(pgstore.Migrations, files[0])
	require.NoError(t, err)
	sql := string(body)
	assert.Contains(t, sql, "-- +goose Up")
	assert.Contains(t, sql, "-- +goose Down")
	for _, table := range []string{"users", "user_profiles", "organizations", "offers", "offer_volunteers"} {
		assert.Contains(t, sql, "CREATE TABLE "+table+" (")
	}
}
