package patients

import (
	"context"
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"
	"go.uber.org/zap"

	"github.com/jgrayhendrix-debug/ms-medicaid-patient-management/clock"
	"github.com/jgrayhendrix-debug/ms-medicaid-patient-management/errors"
)

type service struct {
	repo   Repository
	logger *zap.SugaredLogger
}

var _ Service = &service{}

func NewService(repo Repository, logger *zap.SugaredLogger) (Service, error) {
	return &service{
		repo:   repo,
		logger: logger,
	}, nil
}

func (s *service) Create(ctx context.Context, patient Patient) (*Patient, error) {
	if err := validateNewPatient(patient); err != nil {
		return nil, err
	}

	patient.Id = clock.NewID()
	now := clock.Timestamp()
	patient.CreatedAt = now
	patient.UpdatedAt = now
	patient.Icd10Codes = dedupe(patient.Icd10Codes)
	patient.Products = dedupe(patient.Products)

	s.logger.Infow("creating patient", "id", patient.Id)
	return s.repo.Create(ctx, patient)
}

func (s *service) List(ctx context.Context, filter *Filter) ([]*Patient, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Get(ctx context.Context, id string) (*Patient, error) {
	return s.repo.Get(ctx, id)
}

func (s *service) Update(ctx context.Context, id string, update PatientUpdate) (*Patient, error) {
	if err := validatePatientUpdate(update); err != nil {
		return nil, err
	}
	if update.Icd10Codes != nil {
		deduped := dedupe(*update.Icd10Codes)
		update.Icd10Codes = &deduped
	}
	if update.Products != nil {
		deduped := dedupe(*update.Products)
		update.Products = &deduped
	}

	s.logger.Infow("updating patient", "id", id)
	return s.repo.Update(ctx, id, update)
}

func (s *service) Delete(ctx context.Context, id string) error {
	s.logger.Infow("deleting patient", "id", id)
	return s.repo.Delete(ctx, id)
}

func (s *service) Count(ctx context.Context, filter *CountFilter) (int, error) {
	return s.repo.Count(ctx, filter)
}

func validateNewPatient(patient Patient) error {
	required := map[string]string{
		"first_name":  patient.FirstName,
		"last_name":   patient.LastName,
		"phone":       patient.Phone,
		"address":     patient.Address,
		"current_tan": patient.CurrentTan,
		"medicaid_id": patient.MedicaidId,
		"doctor name": patient.Doctor.Name,
	}
	for field, value := range required {
		if value == "" {
			return fmt.Errorf("%s is required: %w", field, errors.BadRequest)
		}
	}
	if _, err := clock.ParseDate(patient.TanExpiryDate); err != nil {
		return fmt.Errorf("invalid tan_expiry_date: %w", errors.BadRequest)
	}
	return nil
}

func validatePatientUpdate(update PatientUpdate) error {
	if update.TanExpiryDate != nil {
		if _, err := clock.ParseDate(*update.TanExpiryDate); err != nil {
			return fmt.Errorf("invalid tan_expiry_date: %w", errors.BadRequest)
		}
	}
	if update.LastBillingDate != nil {
		if _, err := clock.ParseDate(*update.LastBillingDate); err != nil {
			return fmt.Errorf("invalid last_billing_date: %w", errors.BadRequest)
		}
	}
	return nil
}

// dedupe removes repeated values, keeping first-seen order.
func dedupe(values []string) []string {
	seen := mapset.NewThreadUnsafeSet[string]()
	result := make([]string, 0, len(values))
	for _, v := range values {
		if seen.Add(v) {
			result = append(result, v)
		}
	}
	return result
}
