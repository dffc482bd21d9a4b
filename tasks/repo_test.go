package tasks_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/fx/fxtest"

	"github.com/jgrayhendrix-debug/ms-medicaid-patient-management/clock"
	dbTest "github.com/jgrayhendrix-debug/ms-medicaid-patient-management/store/test"
	"github.com/jgrayhendrix-debug/ms-medicaid-patient-management/tasks"
	tasksTest "github.com/jgrayhendrix-debug/ms-medicaid-patient-management/tasks/test"
)

var _ = Describe("Tasks Repository", func() {
	var repo tasks.Repository
	var collection *mongo.Collection

	BeforeEach(func() {
		database := dbTest.GetTestDatabase()
		collection = database.Collection("tasks")
		lifecycle := fxtest.NewLifecycle(GinkgoT())

		var err error
		repo, err = tasks.NewRepository(database, lifecycle)
		Expect(err).ToNot(HaveOccurred())
		Expect(repo).ToNot(BeNil())
		lifecycle.RequireStart()
	})

	AfterEach(func() {
		_, err := collection.DeleteMany(context.Background(), bson.M{})
		Expect(err).ToNot(HaveOccurred())
	})

	insert := func(ts ...tasks.Task) {
		documents := make([]interface{}, len(ts))
		for i, t := range ts {
			documents[i] = t
		}
		result, err := collection.InsertMany(context.Background(), documents)
		Expect(err).ToNot(HaveOccurred())
		Expect(result.InsertedIDs).To(HaveLen(len(ts)))
	}

	ids := func(ts []*tasks.Task) []string {
		result := make([]string, 0, len(ts))
		for _, t := range ts {
			result = append(result, t.Id)
		}
		return result
	}

	Describe("Complete", func() {
		var task tasks.Task

		BeforeEach(func() {
			task = tasksTest.RandomTask()
			insert(task)
		})

		It("marks a pending task completed", func() {
			result, err := repo.Complete(context.Background(), task.Id)
			Expect(err).ToNot(HaveOccurred())
			Expect(result.Matched).To(Equal(int64(1)))
			Expect(result.Modified).To(Equal(int64(1)))

			var stored tasks.Task
			Expect(collection.FindOne(context.Background(), bson.M{"id": task.Id}).Decode(&stored)).To(Succeed())
			Expect(stored.Status).To(Equal(tasks.StatusCompleted))
			Expect(stored.CompletedAt).ToNot(BeNil())
		})

		It("matches without modifying an already completed task", func() {
			first, err := repo.Complete(context.Background(), task.Id)
			Expect(err).ToNot(HaveOccurred())
			Expect(first.Modified).To(Equal(int64(1)))

			var afterFirst tasks.Task
			Expect(collection.FindOne(context.Background(), bson.M{"id": task.Id}).Decode(&afterFirst)).To(Succeed())

			second, err := repo.Complete(context.Background(), task.Id)
			Expect(err).ToNot(HaveOccurred())
			Expect(second.Matched).To(Equal(int64(1)))
			Expect(second.Modified).To(Equal(int64(0)))

			var afterSecond tasks.Task
			Expect(collection.FindOne(context.Background(), bson.M{"id": task.Id}).Decode(&afterSecond)).To(Succeed())
			Expect(afterSecond.CompletedAt).To(Equal(afterFirst.CompletedAt))
		})

		It("matches nothing for an unknown id", func() {
			result, err := repo.Complete(context.Background(), clock.NewID())
			Expect(err).ToNot(HaveOccurred())
			Expect(result.Matched).To(Equal(int64(0)))
			Expect(result.Modified).To(Equal(int64(0)))
		})
	})

	Describe("List", func() {
		It("filters by patient and status", func() {
			match := tasksTest.RandomTask()
			otherPatient := tasksTest.RandomTask()
			otherStatus := tasksTest.RandomTask()
			otherStatus.PatientId = match.PatientId
			otherStatus.Status = tasks.StatusFailed
			insert(match, otherPatient, otherStatus)

			result, err := repo.List(context.Background(), &tasks.Filter{
				PatientId: &match.PatientId,
				Status:    &match.Status,
			})
			Expect(err).ToNot(HaveOccurred())
			Expect(ids(result)).To(ConsistOf(match.Id))
		})

		It("excludes a status", func() {
			pending := tasksTest.RandomTask()
			completed := tasksTest.RandomTask()
			completed.Status = tasks.StatusCompleted
			insert(pending, completed)

			result, err := repo.List(context.Background(), &tasks.Filter{
				ExcludeStatus: &completed.Status,
			})
			Expect(err).ToNot(HaveOccurred())
			Expect(ids(result)).To(ConsistOf(pending.Id))
		})

		It("matches due dates by exact day", func() {
			today := tasksTest.RandomTask()
			tomorrow := tasksTest.RandomTask()
			due := clock.DaysFromNow(1)
			tomorrow.DueDate = &due
			undated := tasksTest.RandomTask()
			undated.DueDate = nil
			insert(today, tomorrow, undated)

			result, err := repo.List(context.Background(), &tasks.Filter{DueToday: true})
			Expect(err).ToNot(HaveOccurred())
			Expect(ids(result)).To(ConsistOf(today.Id))
		})
	})
})
