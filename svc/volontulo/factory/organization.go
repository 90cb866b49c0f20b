package factory

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/volontulo/seedkit/pkg/logger"
	"github.com/volontulo/seedkit/svc/volontulo"
)

type organizationSpec struct {
	name        *string
	address     *string
	description *string
}

// OrganizationOption overrides a generated organization field.
type OrganizationOption func(*organizationSpec)

// WithOrganizationName replaces the generated organization name.
func WithOrganizationName(name string) OrganizationOption {
	return func(s *organizationSpec) { s.name = &name }
}

// WithOrganizationAddress replaces the generated postal address.
func WithOrganizationAddress(address string) OrganizationOption {
	return func(s *organizationSpec) { s.address = &address }
}

// WithOrganizationDescription replaces the generated description.
func WithOrganizationDescription(description string) OrganizationOption {
	return func(s *organizationSpec) { s.description = &description }
}

// BuildOrganization returns an unsaved organization named by the factory's
// orgname generator.
func (f *Factory) BuildOrganization(opts ...OrganizationOption) (*volontulo.Organization, error) {
	var spec organizationSpec
	for _, opt := range opts {
		opt(&spec)
	}

	org := &volontulo.Organization{ID: uuid.New()}

	if spec.name != nil {
		org.Name = *spec.name
	} else {
		name, err := f.names.Generate()
		if err != nil {
			return nil, errors.Join(ErrBuildFailed, err)
		}
		org.Name = name
	}

	if spec.address != nil {
		org.Address = *spec.address
	} else {
		org.Address = f.faker.Address()
	}

	if spec.description != nil {
		org.Description = *spec.description
	} else {
		org.Description = f.faker.Paragraph()
	}

	return org, nil
}

// CreateOrganization builds and stores an organization.
func (f *Factory) CreateOrganization(ctx context.Context, opts ...OrganizationOption) (*volontulo.Organization, error) {
	if f.store == nil {
		return nil, ErrNoStorage
	}

	org, err := f.BuildOrganization(opts...)
	if err != nil {
		return nil, err
	}
	if err := f.store.CreateOrganization(ctx, org); err != nil {
		return nil, errors.Join(ErrCreateFailed, err)
	}

	f.logger.DebugContext(ctx, "organization created",
		logger.OrganizationID(org.ID),
		slog.String("name", org.Name),
	)
	return org, nil
}
