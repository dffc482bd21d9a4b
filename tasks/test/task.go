package test

import (
	"github.com/jgrayhendrix-debug/ms-medicaid-patient-management/clock"
	"github.com/jgrayhendrix-debug/ms-medicaid-patient-management/pointer"
	"github.com/jgrayhendrix-debug/ms-medicaid-patient-management/tasks"
	"github.com/jgrayhendrix-debug/ms-medicaid-patient-management/test"
)

var taskTypes = []string{
	string(tasks.TypeCallPatient),
	string(tasks.TypeRequestPaperwork),
	string(tasks.TypeTanRenewal),
	string(tasks.TypeBillingFollowUp),
	string(tasks.TypeMedicaidVerification),
}

func RandomTask() tasks.Task {
	task := RandomTaskCreate()
	task.Id = clock.NewID()
	task.AssignedTo = tasks.DefaultAssignee
	task.Status = tasks.StatusPending
	task.CreatedAt = clock.Timestamp()
	return task
}

func RandomTaskCreate() tasks.Task {
	return tasks.Task{
		PatientId:   clock.NewID(),
		TaskType:    RandomTaskType(),
		Title:       test.Faker.Lorem().Sentence(3),
		Description: test.Faker.Lorem().Sentence(8),
		DueDate:     pointer.FromAny(clock.Today()),
	}
}

func RandomTaskType() tasks.Type {
	return tasks.Type(test.Faker.RandomStringElement(taskTypes))
}
