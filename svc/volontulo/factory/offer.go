package factory

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/volontulo/seedkit/pkg/fake"
	"github.com/volontulo/seedkit/pkg/logger"
	"github.com/volontulo/seedkit/svc/volontulo"
)

// Lower bounds of generated offer dates.
var (
	DefaultDateFrom = time.Date(2017, time.November, 4, 0, 0, 0, 0, time.UTC)
	ActionStartFrom = time.Date(2008, time.January, 1, 0, 0, 0, 0, time.UTC)
)

const (
	maxVolunteersLimit = 1000
	maxWeight          = 1000
	offerTextMaxChars  = 150
)

type offerSpec struct {
	organization *volontulo.Organization
	orgOpts      []OrganizationOption
	volunteers   []*volontulo.User
	mutators     []func(*volontulo.Offer)
}

// OfferOption overrides a generated offer field.
type OfferOption func(*offerSpec)

// WithOfferTitle sets the offer title.
func WithOfferTitle(title string) OfferOption {
	return WithOffer(func(o *volontulo.Offer) { o.Title = title })
}

// WithOfferDescription sets the offer description.
func WithOfferDescription(description string) OfferOption {
	return WithOffer(func(o *volontulo.Offer) { o.Description = description })
}

// WithOffer applies fn to the generated offer before it is stored.
func WithOffer(fn func(*volontulo.Offer)) OfferOption {
	return func(s *offerSpec) {
		if fn != nil {
			s.mutators = append(s.mutators, fn)
		}
	}
}

// WithOfferOrganization attaches an existing organization instead of
// generating one. The organization is not stored again on Create.
func WithOfferOrganization(org *volontulo.Organization) OfferOption {
	return func(s *offerSpec) { s.organization = org }
}

// WithOfferOrganizationName overrides the name of the generated organization.
func WithOfferOrganizationName(name string) OfferOption {
	return WithOfferOrganizationOptions(WithOrganizationName(name))
}

// WithOfferOrganizationOptions passes overrides to the generated organization.
func WithOfferOrganizationOptions(opts ...OrganizationOption) OfferOption {
	return func(s *offerSpec) { s.orgOpts = append(s.orgOpts, opts...) }
}

// WithVolunteers links users to the offer. Links are stored on Create only.
func WithVolunteers(users ...*volontulo.User) OfferOption {
	return func(s *offerSpec) { s.volunteers = append(s.volunteers, users...) }
}

// BuildOffer returns an unsaved offer together with an unsaved organization,
// unless one was supplied.
func (f *Factory) BuildOffer(opts ...OfferOption) (*volontulo.Offer, error) {
	spec := f.offerSpec(opts)

	org := spec.organization
	if org == nil {
		var err error
		if org, err = f.BuildOrganization(spec.orgOpts...); err != nil {
			return nil, err
		}
	}

	offer := f.generateOffer(org)
	offer.Volunteers = spec.volunteers
	for _, fn := range spec.mutators {
		fn(offer)
	}
	return offer, nil
}

// CreateOffer stores an offer, its generated organization and the links to
// the users given with WithVolunteers.
func (f *Factory) CreateOffer(ctx context.Context, opts ...OfferOption) (*volontulo.Offer, error) {
	if f.store == nil {
		return nil, ErrNoStorage
	}
	spec := f.offerSpec(opts)

	org := spec.organization
	if org == nil {
		var err error
		if org, err = f.CreateOrganization(ctx, spec.orgOpts...); err != nil {
			return nil, err
		}
	}

	offer := f.generateOffer(org)
	for _, fn := range spec.mutators {
		fn(offer)
	}

	if err := f.store.CreateOffer(ctx, offer); err != nil {
		return nil, errors.Join(ErrCreateFailed, err)
	}

	if len(spec.volunteers) > 0 {
		offer.Volunteers = spec.volunteers
		if err := f.store.AddOfferVolunteers(ctx, offer.ID, offer.VolunteerIDs()...); err != nil {
			return nil, errors.Join(ErrCreateFailed, err)
		}
	}

	f.logger.DebugContext(ctx, "offer created",
		logger.OfferID(offer.ID),
		logger.OrganizationID(org.ID),
		slog.Int("volunteers", len(offer.Volunteers)),
	)
	return offer, nil
}

func (f *Factory) offerSpec(opts []OfferOption) offerSpec {
	var spec offerSpec
	for _, opt := range opts {
		opt(&spec)
	}
	return spec
}

func (f *Factory) generateOffer(org *volontulo.Organization) *volontulo.Offer {
	fk := f.faker
	date := func() time.Time { return fk.DateFrom(DefaultDateFrom) }

	return &volontulo.Offer{
		ID:             uuid.New(),
		OrganizationID: org.ID,
		Organization:   org,

		Title:          fk.Text(offerTextMaxChars),
		Description:    fk.Paragraph(),
		Requirements:   fk.Paragraph(),
		TimeCommitment: fk.Paragraph(),
		Benefits:       fk.Paragraph(),
		Location:       fk.Address(),
		TimePeriod:     fk.Text(offerTextMaxChars),

		StartedAt:                   date(),
		FinishedAt:                  date(),
		RecruitmentStartDate:        date(),
		RecruitmentEndDate:          date(),
		ReserveRecruitmentStartDate: date(),
		ReserveRecruitmentEndDate:   date(),
		ActionStartDate:             fk.DateFrom(ActionStartFrom),
		ActionEndDate:               date(),

		StatusOld:         fake.Choice(fk, volontulo.StatusOldValues...),
		OfferStatus:       fake.Choice(fk, volontulo.OfferStatusValues...),
		RecruitmentStatus: fake.Choice(fk, volontulo.RecruitmentStatusValues...),
		ActionStatus:      fake.Choice(fk, volontulo.ActionStatusValues...),

		Votes:              fk.Bool(),
		ReserveRecruitment: fk.Bool(),
		ActionOngoing:      fk.Bool(),
		ConstantCoop:       fk.Bool(),

		VolunteersLimit: fk.IntRange(0, maxVolunteersLimit),
		Weight:          fk.IntRange(0, maxWeight),
	}
}
