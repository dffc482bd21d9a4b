package api

import (
	"go.uber.org/fx"

	"github.com/jgrayhendrix-debug/ms-medicaid-patient-management/contactlogs"
	"github.com/jgrayhendrix-debug/ms-medicaid-patient-management/patients"
	"github.com/jgrayhendrix-debug/ms-medicaid-patient-management/reports"
	"github.com/jgrayhendrix-debug/ms-medicaid-patient-management/tasks"
)

type Handler struct {
	patients    patients.Service
	tasks       tasks.Service
	contactLogs contactlogs.Service
	reports     reports.Service
}

type Params struct {
	fx.In

	Patients    patients.Service
	Tasks       tasks.Service
	ContactLogs contactlogs.Service
	Reports     reports.Service
}

func NewHandler(p Params) *Handler {
	return &Handler{
		patients:    p.Patients,
		tasks:       p.Tasks,
		contactLogs: p.ContactLogs,
		reports:     p.Reports,
	}
}
