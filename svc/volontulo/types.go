package volontulo

import (
	"time"

	"github.com/google/uuid"
)

// User is a platform account.
type User struct {
	ID           uuid.UUID
	FirstName    string
	LastName     string
	Email        string
	Username     string
	PasswordHash []byte
	IsActive     bool
	Profile      *UserProfile
	CreatedAt    time.Time
}

// UserProfile holds per-user settings. Every user has exactly one.
type UserProfile struct {
	ID     uuid.UUID
	UserID uuid.UUID
}

// Organization is an entity publishing volunteer offers.
type Organization struct {
	ID          uuid.UUID
	Name        string
	Address     string
	Description string
}

// Offer is a volunteering opportunity published by an organization.
type Offer struct {
	ID             uuid.UUID
	OrganizationID uuid.UUID
	Organization   *Organization

	Title          string
	Description    string
	Requirements   string
	TimeCommitment string
	Benefits       string
	Location       string
	TimePeriod     string

	StartedAt                   time.Time
	FinishedAt                  time.Time
	RecruitmentStartDate        time.Time
	RecruitmentEndDate          time.Time
	ReserveRecruitmentStartDate time.Time
	ReserveRecruitmentEndDate   time.Time
	ActionStartDate             time.Time
	ActionEndDate               time.Time

	StatusOld         StatusOld
	OfferStatus       OfferStatus
	RecruitmentStatus RecruitmentStatus
	ActionStatus      ActionStatus

	Votes              bool
	ReserveRecruitment bool
	ActionOngoing      bool
	ConstantCoop       bool

	VolunteersLimit        int
	ReserveVolunteersLimit int
	Weight                 int

	Volunteers []*User
}

// VolunteerIDs returns the IDs of the offer's volunteers in order.
func (o *Offer) VolunteerIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(o.Volunteers))
	for _, u := range o.Volunteers {
		if u != nil {
			ids = append(ids, u.ID)
		}
	}
	return ids
}
