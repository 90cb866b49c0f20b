package factory

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/volontulo/seedkit/pkg/logger"
	"github.com/volontulo/seedkit/svc/volontulo"
)

// maxEmailAttempts bounds how often a generated e-mail is redrawn when the
// factory already handed it out.
const maxEmailAttempts = 10

type userSpec struct {
	firstName *string
	lastName  *string
	email     *string
	username  *string
	password  *string
	isActive  *bool
}

// UserOption overrides a generated user field.
type UserOption func(*userSpec)

// WithFirstName sets the first name. The generated e-mail is built from it.
func WithFirstName(name string) UserOption {
	return func(s *userSpec) { s.firstName = &name }
}

// WithLastName sets the surname. The generated e-mail is built from it.
func WithLastName(name string) UserOption {
	return func(s *userSpec) { s.lastName = &name }
}

// WithEmail pins the e-mail. The username follows it unless WithUsername is
// also given.
func WithEmail(email string) UserOption {
	return func(s *userSpec) { s.email = &email }
}

// WithUsername sets the username independently of the e-mail.
func WithUsername(username string) UserOption {
	return func(s *userSpec) { s.username = &username }
}

// WithPassword sets the plain password that gets hashed.
func WithPassword(password string) UserOption {
	return func(s *userSpec) { s.password = &password }
}

// WithActive sets whether the account is active. Users are active by default.
func WithActive(active bool) UserOption {
	return func(s *userSpec) { s.isActive = &active }
}

// BuildUser returns an unsaved user with its profile.
func (f *Factory) BuildUser(opts ...UserOption) (*volontulo.User, error) {
	var spec userSpec
	for _, opt := range opts {
		opt(&spec)
	}

	first, last := f.faker.Person()
	if spec.firstName != nil {
		first = *spec.firstName
	}
	if spec.lastName != nil {
		last = *spec.lastName
	}

	var email string
	if spec.email != nil {
		email = *spec.email
	} else {
		email = f.faker.Email(first, last)
		for attempt := 1; f.emailTaken(email) && attempt < maxEmailAttempts; attempt++ {
			email = f.faker.Email(first, last)
		}
	}
	f.emails[strings.ToLower(email)] = struct{}{}
	username := email
	if spec.username != nil {
		username = *spec.username
	}

	password := f.password
	if spec.password != nil {
		password = *spec.password
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), f.bcryptCost)
	if err != nil {
		return nil, errors.Join(ErrBuildFailed, err)
	}

	active := true
	if spec.isActive != nil {
		active = *spec.isActive
	}

	id := uuid.New()
	return &volontulo.User{
		ID:           id,
		FirstName:    first,
		LastName:     last,
		Email:        email,
		Username:     username,
		PasswordHash: hash,
		IsActive:     active,
		Profile:      &volontulo.UserProfile{ID: uuid.New(), UserID: id},
		CreatedAt:    f.now(),
	}, nil
}

// CreateUser builds a user and stores it together with its profile.
func (f *Factory) CreateUser(ctx context.Context, opts ...UserOption) (*volontulo.User, error) {
	if f.store == nil {
		return nil, ErrNoStorage
	}

	user, err := f.BuildUser(opts...)
	if err != nil {
		return nil, err
	}

	if err := f.store.CreateUser(ctx, user); err != nil {
		return nil, errors.Join(ErrCreateFailed, err)
	}
	if err := f.store.CreateUserProfile(ctx, user.Profile); err != nil {
		return nil, errors.Join(ErrCreateFailed, err)
	}

	f.logger.DebugContext(ctx, "user created",
		logger.UserID(user.ID),
		slog.String("email", user.Email),
	)
	return user, nil
}

// CreateUsers creates n users with the same overrides.
func (f *Factory) CreateUsers(ctx context.Context, n int, opts ...UserOption) ([]*volontulo.User, error) {
	users := make([]*volontulo.User, 0, n)
	for range n {
		u, err := f.CreateUser(ctx, opts...)
		if err != nil {
			return users, err
		}
		users = append(users, u)
	}
	return users, nil
}

func (f *Factory) emailTaken(email string) bool {
	_, ok := f.emails[strings.ToLower(email)]
	return ok
}
