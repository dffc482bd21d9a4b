package reports

import (
	"context"

	"github.com/jgrayhendrix-debug/ms-medicaid-patient-management/contactlogs"
	"github.com/jgrayhendrix-debug/ms-medicaid-patient-management/patients"
	"github.com/jgrayhendrix-debug/ms-medicaid-patient-management/tasks"
)

type Service interface {
	DailyCalls(ctx context.Context) (*DailyCallReport, error)
	MonthlySummary(ctx context.Context) (*MonthlySummary, error)
}

// DailyCallReport is the morning work queue: open tasks due today, contacts
// that asked for a callback, and authorizations about to lapse. TotalItems
// is the plain sum of the three lists; a patient can appear in more than
// one bucket.
type DailyCallReport struct {
	DailyTasks      []*tasks.Task             `json:"daily_tasks"`
	CallbacksNeeded []*contactlogs.ContactLog `json:"callbacks_needed"`
	ExpiringTans    []*patients.Patient       `json:"expiring_tans"`
	TotalItems      int                       `json:"total_items"`
}

type MonthlySummary struct {
	TotalPatients   int    `json:"total_patients"`
	NewPatients     int    `json:"new_patients"`
	BilledPatients  int    `json:"billed_patients"`
	UnableToContact int    `json:"unable_to_contact"`
	MedicaidIssues  int    `json:"medicaid_issues"`
	Month           string `json:"month"`
}
