package factory

import (
	"errors"
	"log/slog"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/volontulo/seedkit/pkg/fake"
	"github.com/volontulo/seedkit/pkg/logger"
	"github.com/volontulo/seedkit/pkg/orgname"
	"github.com/volontulo/seedkit/svc/volontulo"
)

// DefaultPassword is the plain password given to generated users.
const DefaultPassword = "password123"

// Factory builds and creates volontulo records.
type Factory struct {
	store      volontulo.Storage
	faker      *fake.Faker
	names      *orgname.Generator
	now        func() time.Time
	bcryptCost int
	password   string
	logger     *slog.Logger

	seed  uint64
	vocab *orgname.Vocabulary

	// emails handed out so far, lower-cased. Shared by WithStorage copies.
	emails map[string]struct{}
}

// Option configures a Factory.
type Option func(*Factory)

// WithSeed seeds the value generator. Seed 0, the default, is random.
// Ignored when WithFaker is also given.
func WithSeed(seed uint64) Option {
	return func(f *Factory) {
		f.seed = seed
	}
}

// WithFaker sets the value generator.
func WithFaker(fk *fake.Faker) Option {
	return func(f *Factory) {
		if fk != nil {
			f.faker = fk
		}
	}
}

// WithNameGenerator sets the organization name generator. By default a
// generator over the built-in vocabulary is driven by the factory's Faker.
func WithNameGenerator(g *orgname.Generator) Option {
	return func(f *Factory) {
		if g != nil {
			f.names = g
		}
	}
}

// WithNameVocabulary generates organization names from vocab using the
// factory's Faker. WithNameGenerator takes precedence.
func WithNameVocabulary(vocab orgname.Vocabulary) Option {
	return func(f *Factory) {
		f.vocab = &vocab
	}
}

// WithClock sets the time source for creation timestamps and date ranges.
func WithClock(now func() time.Time) Option {
	return func(f *Factory) {
		if now != nil {
			f.now = now
		}
	}
}

// WithBcryptCost sets the cost used to hash user passwords.
func WithBcryptCost(cost int) Option {
	return func(f *Factory) {
		f.bcryptCost = cost
	}
}

// WithDefaultPassword changes the password given to users built without
// WithPassword.
func WithDefaultPassword(password string) Option {
	return func(f *Factory) {
		f.password = password
	}
}

// WithLogger sets the logger. Records are logged at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(f *Factory) {
		if l != nil {
			f.logger = l
		}
	}
}

// New creates a Factory persisting through store. A nil store is allowed;
// such a factory can only Build.
func New(store volontulo.Storage, opts ...Option) (*Factory, error) {
	f := &Factory{
		store:      store,
		now:        time.Now,
		bcryptCost: bcrypt.DefaultCost,
		password:   DefaultPassword,
		logger:     logger.Discard(),
		emails:     make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(f)
	}

	if f.bcryptCost < bcrypt.MinCost || f.bcryptCost > bcrypt.MaxCost {
		return nil, errors.Join(ErrBuildFailed, bcrypt.InvalidCostError(f.bcryptCost))
	}
	if f.faker == nil {
		f.faker = fake.New(f.seed, fake.WithClock(f.now))
	}
	if f.names == nil {
		genOpts := []orgname.Option{orgname.WithPicker(f.faker)}
		if f.vocab != nil {
			genOpts = append(genOpts, orgname.WithVocabulary(*f.vocab))
		}
		g, err := orgname.New(genOpts...)
		if err != nil {
			return nil, errors.Join(ErrBuildFailed, err)
		}
		f.names = g
	}

	return f, nil
}

// Faker returns the factory's value generator.
func (f *Factory) Faker() *fake.Faker {
	return f.faker
}

// Storage returns the storage records are created in, or nil.
func (f *Factory) Storage() volontulo.Storage {
	return f.store
}

// WithStorage returns a copy of f creating records in store. The copy shares
// f's generators.
func (f *Factory) WithStorage(store volontulo.Storage) *Factory {
	c := *f
	c.store = store
	return &c
}
