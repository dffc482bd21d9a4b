package api

import (
	"github.com/jgrayhendrix-debug/ms-medicaid-patient-management/contactlogs"
	"github.com/jgrayhendrix-debug/ms-medicaid-patient-management/patients"
	"github.com/jgrayhendrix-debug/ms-medicaid-patient-management/pointer"
	"github.com/jgrayhendrix-debug/ms-medicaid-patient-management/tasks"
)

type PatientCreate struct {
	FirstName        string          `json:"first_name"`
	LastName         string          `json:"last_name"`
	Phone            string          `json:"phone"`
	Address          string          `json:"address"`
	Height           *string         `json:"height"`
	Weight           *string         `json:"weight"`
	Icd10Codes       []string        `json:"icd10_codes"`
	Doctor           patients.Doctor `json:"doctor"`
	CurrentTan       string          `json:"current_tan"`
	TanExpiryDate    string          `json:"tan_expiry_date"`
	MedicaidId       string          `json:"medicaid_id"`
	MedicaidEligible *bool           `json:"medicaid_eligible"`
	Products         []string        `json:"products"`
	Notes            string          `json:"notes"`
}

func (p PatientCreate) ToPatient() patients.Patient {
	return patients.Patient{
		FirstName:     p.FirstName,
		LastName:      p.LastName,
		Phone:         p.Phone,
		Address:       p.Address,
		Height:        p.Height,
		Weight:        p.Weight,
		Icd10Codes:    p.Icd10Codes,
		Doctor:        p.Doctor,
		CurrentTan:    p.CurrentTan,
		TanExpiryDate: p.TanExpiryDate,
		MedicaidId:    p.MedicaidId,
		// Eligibility defaults to true when the caller omits it.
		MedicaidEligible: pointer.BoolOrDefault(p.MedicaidEligible, true),
		Products:         p.Products,
		Notes:            p.Notes,
	}
}

type TaskCreate struct {
	PatientId   string     `json:"patient_id"`
	TaskType    tasks.Type `json:"task_type"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	DueDate     *string    `json:"due_date"`
}

func (t TaskCreate) ToTask() tasks.Task {
	return tasks.Task{
		PatientId:   t.PatientId,
		TaskType:    t.TaskType,
		Title:       t.Title,
		Description: t.Description,
		DueDate:     t.DueDate,
	}
}

type ContactLogCreate struct {
	PatientId      string              `json:"patient_id"`
	ContactDate    string              `json:"contact_date"`
	Outcome        contactlogs.Outcome `json:"outcome"`
	Notes          string              `json:"notes"`
	FollowUpNeeded bool                `json:"follow_up_needed"`
	FollowUpDate   *string             `json:"follow_up_date"`
}

func (c ContactLogCreate) ToContactLog() contactlogs.ContactLog {
	return contactlogs.ContactLog{
		PatientId:      c.PatientId,
		ContactDate:    c.ContactDate,
		Outcome:        c.Outcome,
		Notes:          c.Notes,
		FollowUpNeeded: c.FollowUpNeeded,
		FollowUpDate:   c.FollowUpDate,
	}
}

type MessageResponse struct {
	Message string `json:"message"`
}
