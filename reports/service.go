package reports

import (
	"context"

	"go.uber.org/zap"

	"github.com/jgrayhendrix-debug/ms-medicaid-patient-management/clock"
	"github.com/jgrayhendrix-debug/ms-medicaid-patient-management/contactlogs"
	"github.com/jgrayhendrix-debug/ms-medicaid-patient-management/patients"
	"github.com/jgrayhendrix-debug/ms-medicaid-patient-management/pointer"
	"github.com/jgrayhendrix-debug/ms-medicaid-patient-management/tasks"
)

type service struct {
	patients    patients.Service
	tasks       tasks.Service
	contactLogs contactlogs.Service
	logger      *zap.SugaredLogger
}

var _ Service = &service{}

func NewService(patientsService patients.Service, tasksService tasks.Service, contactLogsService contactlogs.Service, logger *zap.SugaredLogger) (Service, error) {
	return &service{
		patients:    patientsService,
		tasks:       tasksService,
		contactLogs: contactLogsService,
		logger:      logger,
	}, nil
}

func (s *service) DailyCalls(ctx context.Context) (*DailyCallReport, error) {
	dailyTasks, err := s.tasks.List(ctx, &tasks.Filter{
		DueToday:      true,
		ExcludeStatus: pointer.FromAny(tasks.StatusCompleted),
	})
	if err != nil {
		return nil, err
	}

	callbacks, err := s.contactLogs.List(ctx, &contactlogs.Filter{
		FollowUpDue: true,
	})
	if err != nil {
		return nil, err
	}

	expiring, err := s.patients.List(ctx, &patients.Filter{
		TanExpiring: true,
	})
	if err != nil {
		return nil, err
	}

	return &DailyCallReport{
		DailyTasks:      dailyTasks,
		CallbacksNeeded: callbacks,
		ExpiringTans:    expiring,
		TotalItems:      len(dailyTasks) + len(callbacks) + len(expiring),
	}, nil
}

func (s *service) MonthlySummary(ctx context.Context) (*MonthlySummary, error) {
	month := clock.CurrentMonth()

	totalPatients, err := s.patients.Count(ctx, &patients.CountFilter{})
	if err != nil {
		return nil, err
	}

	newPatients, err := s.patients.Count(ctx, &patients.CountFilter{
		CreatedInMonth: &month,
	})
	if err != nil {
		return nil, err
	}

	billedPatients, err := s.patients.Count(ctx, &patients.CountFilter{
		BilledInMonth: &month,
	})
	if err != nil {
		return nil, err
	}

	unableToContact, err := s.contactLogs.Count(ctx, &contactlogs.Filter{
		OutcomeIn:        contactlogs.FailedOutcomes,
		ContactedInMonth: &month,
	})
	if err != nil {
		return nil, err
	}

	// All-time count, deliberately not scoped to the month.
	medicaidIssues, err := s.patients.Count(ctx, &patients.CountFilter{
		MedicaidEligible: pointer.FromAny(false),
	})
	if err != nil {
		return nil, err
	}

	return &MonthlySummary{
		TotalPatients:   totalPatients,
		NewPatients:     newPatients,
		BilledPatients:  billedPatients,
		UnableToContact: unableToContact,
		MedicaidIssues:  medicaidIssues,
		Month:           month,
	}, nil
}
