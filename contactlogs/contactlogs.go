package contactlogs

import (
	"context"
)

type Outcome string

const (
	OutcomeContacted    Outcome = "contacted"
	OutcomeNoAnswer     Outcome = "no_answer"
	OutcomeBusy         Outcome = "busy"
	OutcomeDisconnected Outcome = "disconnected"
	OutcomeLeftMessage  Outcome = "left_message"
)

func (o Outcome) Valid() bool {
	switch o {
	case OutcomeContacted, OutcomeNoAnswer, OutcomeBusy, OutcomeDisconnected, OutcomeLeftMessage:
		return true
	}
	return false
}

// FailedOutcomes are the outcomes counted as unable-to-contact in the
// monthly summary.
var FailedOutcomes = []Outcome{OutcomeNoAnswer, OutcomeDisconnected}

type Service interface {
	Create(ctx context.Context, log ContactLog) (*ContactLog, error)
	ListForPatient(ctx context.Context, patientId string) ([]*ContactLog, error)
	List(ctx context.Context, filter *Filter) ([]*ContactLog, error)
	Count(ctx context.Context, filter *Filter) (int, error)
}

type ContactLog struct {
	Id             string  `json:"id" bson:"id"`
	PatientId      string  `json:"patient_id" bson:"patient_id"`
	ContactDate    string  `json:"contact_date" bson:"contact_date"`
	Outcome        Outcome `json:"outcome" bson:"outcome"`
	Notes          string  `json:"notes" bson:"notes"`
	FollowUpNeeded bool    `json:"follow_up_needed" bson:"follow_up_needed"`
	FollowUpDate   *string `json:"follow_up_date,omitempty" bson:"follow_up_date,omitempty"`
}

type Filter struct {
	PatientId *string
	// FollowUpDue selects logs flagged for follow-up with a follow-up date
	// at or before today.
	FollowUpDue bool
	OutcomeIn   []Outcome
	// ContactedInMonth scopes by "YYYY-MM" prefix of the contact date.
	ContactedInMonth *string
}
