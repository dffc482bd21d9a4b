package test

import (
	"time"

	"github.com/jgrayhendrix-debug/ms-medicaid-patient-management/clock"
	"github.com/jgrayhendrix-debug/ms-medicaid-patient-management/patients"
	"github.com/jgrayhendrix-debug/ms-medicaid-patient-management/pointer"
	"github.com/jgrayhendrix-debug/ms-medicaid-patient-management/test"
)

var products = []string{"diapers", "underpads", "gloves", "wipes", "bed pads"}

func RandomDoctor() patients.Doctor {
	return patients.Doctor{
		Name:    test.Faker.Person().Name(),
		Phone:   test.Faker.Phone().Number(),
		Fax:     test.Faker.Phone().Number(),
		Address: pointer.FromAny(test.Faker.Address().Address()),
	}
}

// RandomPatient returns a patient the way the service would persist it,
// with identifier and timestamps already assigned.
func RandomPatient() patients.Patient {
	patient := RandomPatientCreate()
	now := clock.Timestamp()
	patient.Id = clock.NewID()
	patient.CreatedAt = now
	patient.UpdatedAt = now
	return patient
}

// RandomPatientCreate returns a patient as submitted by a caller, before
// the service assigns the identifier and timestamps.
func RandomPatientCreate() patients.Patient {
	return patients.Patient{
		FirstName:        test.Faker.Person().FirstName(),
		LastName:         test.Faker.Person().LastName(),
		Phone:            test.Faker.Phone().Number(),
		Address:          test.Faker.Address().Address(),
		Height:           pointer.FromAny("170cm"),
		Weight:           pointer.FromAny("70kg"),
		Icd10Codes:       []string{"N39.0", "R32"},
		Doctor:           RandomDoctor(),
		CurrentTan:       test.Faker.RandomStringWithLength(10),
		TanExpiryDate:    RandomDate(),
		MedicaidId:       test.Faker.RandomStringWithLength(9),
		MedicaidEligible: true,
		Products:         []string{RandomProduct(), RandomProduct()},
		Notes:            test.Faker.Lorem().Sentence(6),
	}
}

func RandomPatientUpdate() patients.PatientUpdate {
	patient := RandomPatientCreate()
	return patients.PatientUpdate{
		FirstName:       &patient.FirstName,
		LastName:        &patient.LastName,
		Phone:           &patient.Phone,
		Address:         &patient.Address,
		Doctor:          &patient.Doctor,
		CurrentTan:      &patient.CurrentTan,
		TanExpiryDate:   &patient.TanExpiryDate,
		MedicaidId:      &patient.MedicaidId,
		LastBillingDate: pointer.FromAny(RandomDate()),
		Notes:           &patient.Notes,
	}
}

func RandomDate() string {
	return clock.FormatDate(time.Now().AddDate(0, 0, test.Faker.IntBetween(-60, 60)))
}

func RandomProduct() string {
	return test.Faker.RandomStringElement(products)
}
