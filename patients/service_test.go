package patients_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/jgrayhendrix-debug/ms-medicaid-patient-management/errors"
	"github.com/jgrayhendrix-debug/ms-medicaid-patient-management/patients"
	patientsTest "github.com/jgrayhendrix-debug/ms-medicaid-patient-management/patients/test"
	"github.com/jgrayhendrix-debug/ms-medicaid-patient-management/pointer"
	"github.com/jgrayhendrix-debug/ms-medicaid-patient-management/test"
)

var _ = Describe("Patients Service", func() {
	var service patients.Service
	var repo *patientsTest.MockService
	var repoCtrl *gomock.Controller

	BeforeEach(func() {
		repoCtrl = gomock.NewController(GinkgoT())
		repo = patientsTest.NewMockService(repoCtrl)

		var err error
		service, err = patients.NewService(repo, zap.NewNop().Sugar())
		Expect(err).ToNot(HaveOccurred())
	})

	AfterEach(func() {
		repoCtrl.Finish()
	})

	Describe("Create", func() {
		var create patients.Patient

		BeforeEach(func() {
			create = patientsTest.RandomPatientCreate()
		})

		It("assigns a unique id and timestamps before persisting", func() {
			repo.EXPECT().
				Create(gomock.Any(), test.Match(func(p patients.Patient) bool {
					return p.Id != "" && p.CreatedAt != "" && p.CreatedAt == p.UpdatedAt
				})).
				DoAndReturn(func(ctx context.Context, p patients.Patient) (*patients.Patient, error) {
					return &p, nil
				})

			result, err := service.Create(context.Background(), create)
			Expect(err).ToNot(HaveOccurred())
			Expect(result.Id).ToNot(BeEmpty())
			Expect(result.FirstName).To(Equal(create.FirstName))
			Expect(result.TanExpiryDate).To(Equal(create.TanExpiryDate))
		})

		It("removes repeated diagnosis codes and products, keeping order", func() {
			create.Icd10Codes = []string{"N39.0", "R32", "N39.0"}
			create.Products = []string{"diapers", "diapers", "underpads"}

			repo.EXPECT().
				Create(gomock.Any(), test.Match(func(p patients.Patient) bool {
					return len(p.Icd10Codes) == 2 && p.Icd10Codes[0] == "N39.0" && p.Icd10Codes[1] == "R32" &&
						len(p.Products) == 2 && p.Products[0] == "diapers" && p.Products[1] == "underpads"
				})).
				DoAndReturn(func(ctx context.Context, p patients.Patient) (*patients.Patient, error) {
					return &p, nil
				})

			_, err := service.Create(context.Background(), create)
			Expect(err).ToNot(HaveOccurred())
		})

		It("rejects a patient without a first name", func() {
			create.FirstName = ""

			result, err := service.Create(context.Background(), create)
			Expect(err).To(MatchError(errors.BadRequest))
			Expect(result).To(BeNil())
		})

		It("rejects a patient with a malformed expiry date", func() {
			create.TanExpiryDate = "soon"

			result, err := service.Create(context.Background(), create)
			Expect(err).To(MatchError(errors.BadRequest))
			Expect(result).To(BeNil())
		})
	})

	Describe("Update", func() {
		var id string
		var update patients.PatientUpdate

		BeforeEach(func() {
			id = patientsTest.RandomPatient().Id
			update = patientsTest.RandomPatientUpdate()
		})

		It("delegates to the repository", func() {
			updated := patientsTest.RandomPatient()
			repo.EXPECT().
				Update(gomock.Any(), gomock.Eq(id), gomock.Eq(update)).
				Return(&updated, nil)

			result, err := service.Update(context.Background(), id, update)
			Expect(err).ToNot(HaveOccurred())
			Expect(result).To(Equal(&updated))
		})

		It("removes repeated diagnosis codes from the partial input", func() {
			update.Icd10Codes = &[]string{"R32", "R32", "N39.0"}

			repo.EXPECT().
				Update(gomock.Any(), gomock.Eq(id), test.Match(func(u patients.PatientUpdate) bool {
					return u.Icd10Codes != nil && len(*u.Icd10Codes) == 2
				})).
				Return(&patients.Patient{}, nil)

			_, err := service.Update(context.Background(), id, update)
			Expect(err).ToNot(HaveOccurred())
		})

		It("rejects a malformed billing date", func() {
			update.LastBillingDate = pointer.FromAny("last week")

			result, err := service.Update(context.Background(), id, update)
			Expect(err).To(MatchError(errors.BadRequest))
			Expect(result).To(BeNil())
		})

		It("propagates not found from the repository", func() {
			repo.EXPECT().
				Update(gomock.Any(), gomock.Eq(id), gomock.Eq(update)).
				Return(nil, errors.NotFound)

			result, err := service.Update(context.Background(), id, update)
			Expect(err).To(MatchError(errors.NotFound))
			Expect(result).To(BeNil())
		})
	})

	Describe("Delete", func() {
		It("propagates not found from the repository", func() {
			repo.EXPECT().
				Delete(gomock.Any(), gomock.Eq("missing")).
				Return(errors.NotFound)

			Expect(service.Delete(context.Background(), "missing")).To(MatchError(errors.NotFound))
		})
	})

	Describe("List", func() {
		It("passes the filter through unchanged", func() {
			filter := &patients.Filter{
				Search:      pointer.FromAny("smith"),
				TanExpiring: true,
			}
			expected := []*patients.Patient{}

			repo.EXPECT().
				List(gomock.Any(), gomock.Eq(filter)).
				Return(expected, nil)

			result, err := service.List(context.Background(), filter)
			Expect(err).ToNot(HaveOccurred())
			Expect(result).To(Equal(expected))
		})
	})
})
