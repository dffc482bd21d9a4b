package reports_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/jgrayhendrix-debug/ms-medicaid-patient-management/contactlogs"
	logsTest "github.com/jgrayhendrix-debug/ms-medicaid-patient-management/contactlogs/test"
	"github.com/jgrayhendrix-debug/ms-medicaid-patient-management/patients"
	patientsTest "github.com/jgrayhendrix-debug/ms-medicaid-patient-management/patients/test"
	"github.com/jgrayhendrix-debug/ms-medicaid-patient-management/pointer"
	"github.com/jgrayhendrix-debug/ms-medicaid-patient-management/reports"
	"github.com/jgrayhendrix-debug/ms-medicaid-patient-management/tasks"
	tasksTest "github.com/jgrayhendrix-debug/ms-medicaid-patient-management/tasks/test"
	"github.com/jgrayhendrix-debug/ms-medicaid-patient-management/test"
)

var _ = Describe("Reports Service", func() {
	var service reports.Service
	var patientsService *patientsTest.MockService
	var tasksService *tasksTest.MockService
	var logsService *logsTest.MockService
	var ctrl *gomock.Controller

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		patientsService = patientsTest.NewMockService(ctrl)
		tasksService = tasksTest.NewMockService(ctrl)
		logsService = logsTest.NewMockService(ctrl)

		var err error
		service, err = reports.NewService(patientsService, tasksService, logsService, zap.NewNop().Sugar())
		Expect(err).ToNot(HaveOccurred())
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	Describe("DailyCalls", func() {
		It("sums the three buckets without deduplication", func() {
			dueTasks := []*tasks.Task{pointer.FromAny(tasksTest.RandomTask()), pointer.FromAny(tasksTest.RandomTask())}
			callbacks := []*contactlogs.ContactLog{pointer.FromAny(logsTest.RandomContactLog())}
			expiring := []*patients.Patient{
				pointer.FromAny(patientsTest.RandomPatient()),
				pointer.FromAny(patientsTest.RandomPatient()),
				pointer.FromAny(patientsTest.RandomPatient()),
			}

			tasksService.EXPECT().
				List(gomock.Any(), gomock.Eq(&tasks.Filter{
					DueToday:      true,
					ExcludeStatus: pointer.FromAny(tasks.StatusCompleted),
				})).
				Return(dueTasks, nil)
			logsService.EXPECT().
				List(gomock.Any(), gomock.Eq(&contactlogs.Filter{FollowUpDue: true})).
				Return(callbacks, nil)
			patientsService.EXPECT().
				List(gomock.Any(), gomock.Eq(&patients.Filter{TanExpiring: true})).
				Return(expiring, nil)

			report, err := service.DailyCalls(context.Background())
			Expect(err).ToNot(HaveOccurred())
			Expect(report.DailyTasks).To(Equal(dueTasks))
			Expect(report.CallbacksNeeded).To(Equal(callbacks))
			Expect(report.ExpiringTans).To(Equal(expiring))
			Expect(report.TotalItems).To(Equal(6))
		})

		It("reflects empty buckets as a zero total", func() {
			tasksService.EXPECT().
				List(gomock.Any(), gomock.Any()).
				Return([]*tasks.Task{}, nil)
			logsService.EXPECT().
				List(gomock.Any(), gomock.Any()).
				Return([]*contactlogs.ContactLog{}, nil)
			patientsService.EXPECT().
				List(gomock.Any(), gomock.Any()).
				Return([]*patients.Patient{}, nil)

			report, err := service.DailyCalls(context.Background())
			Expect(err).ToNot(HaveOccurred())
			Expect(report.TotalItems).To(BeZero())
		})
	})

	Describe("MonthlySummary", func() {
		It("scopes the counts to the current month except medicaid issues", func() {
			month := time.Now().UTC().Format("2006-01")

			patientsService.EXPECT().
				Count(gomock.Any(), gomock.Eq(&patients.CountFilter{})).
				Return(25, nil)
			patientsService.EXPECT().
				Count(gomock.Any(), gomock.Eq(&patients.CountFilter{CreatedInMonth: &month})).
				Return(4, nil)
			patientsService.EXPECT().
				Count(gomock.Any(), gomock.Eq(&patients.CountFilter{BilledInMonth: &month})).
				Return(19, nil)
			logsService.EXPECT().
				Count(gomock.Any(), test.Match(func(f *contactlogs.Filter) bool {
					return f.ContactedInMonth != nil && *f.ContactedInMonth == month &&
						len(f.OutcomeIn) == 2
				})).
				Return(3, nil)
			patientsService.EXPECT().
				Count(gomock.Any(), gomock.Eq(&patients.CountFilter{MedicaidEligible: pointer.FromAny(false)})).
				Return(2, nil)

			summary, err := service.MonthlySummary(context.Background())
			Expect(err).ToNot(HaveOccurred())
			Expect(summary.TotalPatients).To(Equal(25))
			Expect(summary.NewPatients).To(Equal(4))
			Expect(summary.BilledPatients).To(Equal(19))
			Expect(summary.UnableToContact).To(Equal(3))
			Expect(summary.MedicaidIssues).To(Equal(2))
			Expect(summary.Month).To(Equal(month))
		})
	})
})
