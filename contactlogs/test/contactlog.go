package test

import (
	"github.com/jgrayhendrix-debug/ms-medicaid-patient-management/clock"
	"github.com/jgrayhendrix-debug/ms-medicaid-patient-management/contactlogs"
	"github.com/jgrayhendrix-debug/ms-medicaid-patient-management/pointer"
	"github.com/jgrayhendrix-debug/ms-medicaid-patient-management/test"
)

var outcomes = []string{
	string(contactlogs.OutcomeContacted),
	string(contactlogs.OutcomeNoAnswer),
	string(contactlogs.OutcomeBusy),
	string(contactlogs.OutcomeDisconnected),
	string(contactlogs.OutcomeLeftMessage),
}

func RandomContactLog() contactlogs.ContactLog {
	log := RandomContactLogCreate()
	log.Id = clock.NewID()
	log.ContactDate = clock.Timestamp()
	return log
}

func RandomContactLogCreate() contactlogs.ContactLog {
	return contactlogs.ContactLog{
		PatientId:      clock.NewID(),
		Outcome:        RandomOutcome(),
		Notes:          test.Faker.Lorem().Sentence(6),
		FollowUpNeeded: test.Faker.Bool(),
		FollowUpDate:   pointer.FromAny(clock.Today()),
	}
}

func RandomOutcome() contactlogs.Outcome {
	return contactlogs.Outcome(test.Faker.RandomStringElement(outcomes))
}
