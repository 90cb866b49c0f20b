package seed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/volontulo/seedkit/pkg/fake"
	"github.com/volontulo/seedkit/pkg/logger"
	"github.com/volontulo/seedkit/svc/volontulo"
	"github.com/volontulo/seedkit/svc/volontulo/factory"
)

// SuccessMessage is written by Run after a successful population.
const SuccessMessage = "Database successfully populated"

// Report counts the records created by a run.
type Report struct {
	Users         int
	Organizations int
	Offers        int
	Volunteers    int
	Duration      time.Duration
}

// Populate creates users, then organizations, then offers. Each offer
// belongs to a random created organization, or to a new one when none were
// requested, and gets a random subset of the created users as volunteers.
// It stops at the first error, returning what was created so far.
func Populate(ctx context.Context, f *factory.Factory, cfg Config) (rep Report, err error) {
	if err := cfg.Validate(); err != nil {
		return rep, err
	}
	start := time.Now()
	defer func() { rep.Duration = time.Since(start) }()

	users := make([]*volontulo.User, 0, cfg.Users)
	for i := range cfg.Users {
		if err := ctx.Err(); err != nil {
			return rep, err
		}
		u, err := f.CreateUser(ctx)
		if err != nil {
			return rep, fmt.Errorf("user %d: %w", i+1, err)
		}
		users = append(users, u)
		rep.Users++
	}

	orgs := make([]*volontulo.Organization, 0, cfg.Organizations)
	for i := range cfg.Organizations {
		if err := ctx.Err(); err != nil {
			return rep, err
		}
		o, err := f.CreateOrganization(ctx)
		if err != nil {
			return rep, fmt.Errorf("organization %d: %w", i+1, err)
		}
		orgs = append(orgs, o)
		rep.Organizations++
	}

	fk := f.Faker()
	for i := range cfg.Offers {
		if err := ctx.Err(); err != nil {
			return rep, err
		}

		volunteers := pickVolunteers(fk, users, cfg.MaxVolunteersPerOffer)
		opts := []factory.OfferOption{factory.WithVolunteers(volunteers...)}
		if len(orgs) > 0 {
			opts = append(opts, factory.WithOfferOrganization(fake.Choice(fk, orgs...)))
		} else {
			rep.Organizations++
		}

		if _, err := f.CreateOffer(ctx, opts...); err != nil {
			return rep, fmt.Errorf("offer %d: %w", i+1, err)
		}
		rep.Offers++
		rep.Volunteers += len(volunteers)
	}

	return rep, nil
}

// pickVolunteers returns up to limit distinct users in random order.
func pickVolunteers(fk *fake.Faker, users []*volontulo.User, limit int) []*volontulo.User {
	n := fk.IntRange(0, min(limit, len(users)))
	if n == 0 {
		return nil
	}
	pool := make([]*volontulo.User, len(users))
	copy(pool, users)
	for i := range n {
		j := i + fk.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:n]
}

// Run populates store according to cfg and writes SuccessMessage to out.
// Stores implementing volontulo.Transactor are populated in a single
// transaction. opts are passed to the factory after the seed and logger.
func Run(ctx context.Context, store volontulo.Storage, cfg Config, out io.Writer, log *slog.Logger, opts ...factory.Option) error {
	if log == nil {
		log = logger.Discard()
	}
	ctx = logger.WithRunID(ctx, uuid.NewString())
	log = log.With(logger.Component("seed"))

	f, err := factory.New(store, append([]factory.Option{
		factory.WithSeed(cfg.Seed),
		factory.WithLogger(log),
	}, opts...)...)
	if err != nil {
		return errors.Join(ErrPopulate, err)
	}

	log.InfoContext(ctx, "populating storage",
		logger.Count("users", cfg.Users),
		logger.Count("organizations", cfg.Organizations),
		logger.Count("offers", cfg.Offers),
	)

	var rep Report
	if tx, ok := store.(volontulo.Transactor); ok {
		err = tx.InTx(ctx, func(s volontulo.Storage) error {
			var popErr error
			rep, popErr = Populate(ctx, f.WithStorage(s), cfg)
			return popErr
		})
	} else {
		rep, err = Populate(ctx, f, cfg)
	}
	if err != nil {
		log.ErrorContext(ctx, "population failed", logger.Error(err))
		return errors.Join(ErrPopulate, err)
	}

	log.InfoContext(ctx, "storage populated",
		logger.Count("users", rep.Users),
		logger.Count("organizations", rep.Organizations),
		logger.Count("offers", rep.Offers),
		logger.Count("volunteers", rep.Volunteers),
		logger.Duration(rep.Duration),
	)
	if _, err := fmt.Fprintln(out, SuccessMessage); err != nil {
		return errors.Join(ErrPopulate, err)
	}
	return nil
}
