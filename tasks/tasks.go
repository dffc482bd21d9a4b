package tasks

import (
	"context"
)

// DefaultAssignee is the single task owner in this deployment. Multi-user
// assignment is out of scope.
const DefaultAssignee = "admin"

type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusFailed:
		return true
	}
	return false
}

type Type string

const (
	TypeCallPatient          Type = "call_patient"
	TypeRequestPaperwork     Type = "request_paperwork"
	TypeTanRenewal           Type = "tan_renewal"
	TypeBillingFollowUp      Type = "billing_follow_up"
	TypeMedicaidVerification Type = "medicaid_verification"
)

func (t Type) Valid() bool {
	switch t {
	case TypeCallPatient, TypeRequestPaperwork, TypeTanRenewal, TypeBillingFollowUp, TypeMedicaidVerification:
		return true
	}
	return false
}

type Service interface {
	Create(ctx context.Context, task Task) (*Task, error)
	List(ctx context.Context, filter *Filter) ([]*Task, error)
	Complete(ctx context.Context, id string) error
}

type Task struct {
	Id          string  `json:"id" bson:"id"`
	PatientId   string  `json:"patient_id" bson:"patient_id"`
	TaskType    Type    `json:"task_type" bson:"task_type"`
	Title       string  `json:"title" bson:"title"`
	Description string  `json:"description" bson:"description"`
	AssignedTo  string  `json:"assigned_to" bson:"assigned_to"`
	Status      Status  `json:"status" bson:"status"`
	DueDate     *string `json:"due_date,omitempty" bson:"due_date,omitempty"`
	CreatedAt   string  `json:"created_at" bson:"created_at"`
	CompletedAt *string `json:"completed_at,omitempty" bson:"completed_at,omitempty"`
}

type Filter struct {
	PatientId     *string
	Status        *Status
	ExcludeStatus *Status
	DueToday      bool
}

// CompletionResult distinguishes a task that does not exist from one that
// was already completed.
type CompletionResult struct {
	Matched  int64
	Modified int64
}
