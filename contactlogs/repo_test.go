package contactlogs_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/fx/fxtest"

	"github.com/jgrayhendrix-debug/ms-medicaid-patient-management/clock"
	"github.com/jgrayhendrix-debug/ms-medicaid-patient-management/contactlogs"
	logsTest "github.com/jgrayhendrix-debug/ms-medicaid-patient-management/contactlogs/test"
	"github.com/jgrayhendrix-debug/ms-medicaid-patient-management/pointer"
	dbTest "github.com/jgrayhendrix-debug/ms-medicaid-patient-management/store/test"
)

var _ = Describe("Contact Logs Repository", func() {
	var repo contactlogs.Repository
	var collection *mongo.Collection

	BeforeEach(func() {
		database := dbTest.GetTestDatabase()
		collection = database.Collection("contact_logs")
		lifecycle := fxtest.NewLifecycle(GinkgoT())

		var err error
		repo, err = contactlogs.NewRepository(database, lifecycle)
		Expect(err).ToNot(HaveOccurred())
		Expect(repo).ToNot(BeNil())
		lifecycle.RequireStart()
	})

	AfterEach(func() {
		_, err := collection.DeleteMany(context.Background(), bson.M{})
		Expect(err).ToNot(HaveOccurred())
	})

	insert := func(ls ...contactlogs.ContactLog) {
		documents := make([]interface{}, len(ls))
		for i, l := range ls {
			documents[i] = l
		}
		result, err := collection.InsertMany(context.Background(), documents)
		Expect(err).ToNot(HaveOccurred())
		Expect(result.InsertedIDs).To(HaveLen(len(ls)))
	}

	ids := func(ls []*contactlogs.ContactLog) []string {
		result := make([]string, 0, len(ls))
		for _, l := range ls {
			result = append(result, l.Id)
		}
		return result
	}

	Describe("ListForPatient", func() {
		It("returns the patient's logs, most recent contact first", func() {
			patientId := clock.NewID()
			oldest := logsTest.RandomContactLog()
			oldest.PatientId = patientId
			oldest.ContactDate = "2026-08-01T09:00:00.000Z"
			middle := logsTest.RandomContactLog()
			middle.PatientId = patientId
			middle.ContactDate = "2026-08-15T09:00:00.000Z"
			newest := logsTest.RandomContactLog()
			newest.PatientId = patientId
			newest.ContactDate = "2026-08-29T09:00:00.000Z"
			unrelated := logsTest.RandomContactLog()
			insert(middle, newest, oldest, unrelated)

			result, err := repo.ListForPatient(context.Background(), patientId)
			Expect(err).ToNot(HaveOccurred())
			Expect(ids(result)).To(Equal([]string{newest.Id, middle.Id, oldest.Id}))
		})
	})

	Describe("List", func() {
		It("returns logs whose follow-up is due", func() {
			due := logsTest.RandomContactLog()
			due.FollowUpNeeded = true
			due.FollowUpDate = pointer.FromAny(clock.DaysFromNow(-1))
			future := logsTest.RandomContactLog()
			future.FollowUpNeeded = true
			future.FollowUpDate = pointer.FromAny(clock.DaysFromNow(5))
			notNeeded := logsTest.RandomContactLog()
			notNeeded.FollowUpNeeded = false
			notNeeded.FollowUpDate = pointer.FromAny(clock.DaysFromNow(-1))
			insert(due, future, notNeeded)

			result, err := repo.List(context.Background(), &contactlogs.Filter{FollowUpDue: true})
			Expect(err).ToNot(HaveOccurred())
			Expect(ids(result)).To(ConsistOf(due.Id))
		})
	})

	Describe("Count", func() {
		It("counts failed outcomes within the month", func() {
			failed := logsTest.RandomContactLog()
			failed.Outcome = contactlogs.OutcomeNoAnswer
			failed.ContactDate = "1999-01-10T09:00:00.000Z"
			reached := logsTest.RandomContactLog()
			reached.Outcome = contactlogs.OutcomeContacted
			reached.ContactDate = "1999-01-12T09:00:00.000Z"
			otherMonth := logsTest.RandomContactLog()
			otherMonth.Outcome = contactlogs.OutcomeDisconnected
			otherMonth.ContactDate = "1999-02-01T09:00:00.000Z"
			insert(failed, reached, otherMonth)

			count, err := repo.Count(context.Background(), &contactlogs.Filter{
				OutcomeIn:        contactlogs.FailedOutcomes,
				ContactedInMonth: pointer.FromAny("1999-01"),
			})
			Expect(err).ToNot(HaveOccurred())
			Expect(count).To(Equal(1))
		})
	})
})
