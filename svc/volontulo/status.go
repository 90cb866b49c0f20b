package volontulo

import (
	"slices"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// StatusOld is the legacy offer status.
type StatusOld string

const (
	StatusOldNew       StatusOld = "NEW"
	StatusOldActive    StatusOld = "ACTIVE"
	StatusOldSuspended StatusOld = "SUSPENDED"
)

// StatusOldValues lists every StatusOld.
var StatusOldValues = []StatusOld{StatusOldNew, StatusOldActive, StatusOldSuspended}

// OfferStatus tells whether an offer is visible to volunteers.
type OfferStatus string

const (
	OfferUnpublished OfferStatus = "unpublished"
	OfferPublished   OfferStatus = "published"
	OfferRejected    OfferStatus = "rejected"
)

// OfferStatusValues lists every OfferStatus.
var OfferStatusValues = []OfferStatus{OfferUnpublished, OfferPublished, OfferRejected}

// RecruitmentStatus tells whether an offer accepts volunteers.
type RecruitmentStatus string

const (
	RecruitmentOpen         RecruitmentStatus = "open"
	RecruitmentSupplemental RecruitmentStatus = "supplemental"
	RecruitmentClosed       RecruitmentStatus = "closed"
)

// RecruitmentStatusValues lists every RecruitmentStatus.
var RecruitmentStatusValues = []RecruitmentStatus{RecruitmentOpen, RecruitmentSupplemental, RecruitmentClosed}

// ActionStatus tells where the offer's action is in time.
type ActionStatus string

const (
	ActionFuture   ActionStatus = "future"
	ActionOngoing  ActionStatus = "ongoing"
	ActionFinished ActionStatus = "finished"
)

// ActionStatusValues lists every ActionStatus.
var ActionStatusValues = []ActionStatus{ActionFuture, ActionOngoing, ActionFinished}

func (s StatusOld) Valid() bool         { return slices.Contains(StatusOldValues, s) }
func (s OfferStatus) Valid() bool       { return slices.Contains(OfferStatusValues, s) }
func (s RecruitmentStatus) Valid() bool { return slices.Contains(RecruitmentStatusValues, s) }
func (s ActionStatus) Valid() bool      { return slices.Contains(ActionStatusValues, s) }

// Label returns the display form of the status, e.g. "Active".
func (s StatusOld) Label() string { return label(string(s)) }

// Label returns the display form of the status, e.g. "Unpublished".
func (s OfferStatus) Label() string { return label(string(s)) }

// Label returns the display form of the status, e.g. "Supplemental".
func (s RecruitmentStatus) Label() string { return label(string(s)) }

// Label returns the display form of the status, e.g. "Future".
func (s ActionStatus) Label() string { return label(string(s)) }

func label(s string) string {
	return cases.Title(language.Und).String(s)
}
