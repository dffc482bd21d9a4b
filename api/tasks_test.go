package api_test

import (
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/jgrayhendrix-debug/ms-medicaid-patient-management/errors"
	"github.com/jgrayhendrix-debug/ms-medicaid-patient-management/tasks"
	tasksTest "github.com/jgrayhendrix-debug/ms-medicaid-patient-management/tasks/test"
	"github.com/jgrayhendrix-debug/ms-medicaid-patient-management/test"
)

var _ = Describe("Task Handlers", func() {
	var fixture *handlerTestFixture
	var ctrl *gomock.Controller

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		fixture = newHandlerTestFixture(ctrl)
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	Describe("POST /api/tasks", func() {
		It("creates the task", func() {
			created := tasksTest.RandomTask()

			fixture.tasks.EXPECT().
				Create(gomock.Any(), test.Match(func(t tasks.Task) bool {
					return t.PatientId == "p1" && t.TaskType == tasks.TypeCallPatient
				})).
				Return(&created, nil)

			rec := fixture.do(http.MethodPost, "/api/tasks",
				`{"patient_id": "p1", "task_type": "call_patient", "title": "Call about delivery"}`)
			Expect(rec.Code).To(Equal(http.StatusOK))
		})
	})

	Describe("GET /api/tasks", func() {
		It("builds the filter from query parameters", func() {
			fixture.tasks.EXPECT().
				List(gomock.Any(), test.Match(func(f *tasks.Filter) bool {
					return f.PatientId != nil && *f.PatientId == "p1" &&
						f.Status != nil && *f.Status == tasks.StatusPending &&
						f.DueToday
				})).
				Return([]*tasks.Task{}, nil)

			rec := fixture.do(http.MethodGet, "/api/tasks?patient_id=p1&status=pending&due_today=true", "")
			Expect(rec.Code).To(Equal(http.StatusOK))
		})

		It("rejects an unknown status", func() {
			rec := fixture.do(http.MethodGet, "/api/tasks?status=paused", "")
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("PUT /api/tasks/{id}/complete", func() {
		It("confirms the completion", func() {
			fixture.tasks.EXPECT().
				Complete(gomock.Any(), gomock.Eq("t1")).
				Return(nil)

			rec := fixture.do(http.MethodPut, "/api/tasks/t1/complete", "")
			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Body.String()).To(ContainSubstring("Task completed successfully"))
		})

		It("returns 404 for an unknown task", func() {
			fixture.tasks.EXPECT().
				Complete(gomock.Any(), gomock.Eq("missing")).
				Return(errors.NotFound)

			rec := fixture.do(http.MethodPut, "/api/tasks/missing/complete", "")
			Expect(rec.Code).To(Equal(http.StatusNotFound))
		})
	})
})
