package contactlogs

import (
	"context"
	"fmt"

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

func (s *service) Create(ctx context.Context, log ContactLog) (*ContactLog, error) {
	if err := validateNewContactLog(log); err != nil {
		return nil, err
	}

	log.Id = clock.NewID()
	if log.ContactDate == "" {
		log.ContactDate = clock.Timestamp()
	} else {
		contacted, err := clock.ParseTimestamp(log.ContactDate)
		if err != nil {
			return nil, fmt.Errorf("invalid contact_date: %w", errors.BadRequest)
		}
		// Rewrite to the canonical layout so stored timestamps keep a single
		// precision and sort chronologically.
		log.ContactDate = clock.FormatTimestamp(contacted)
	}

	s.logger.Infow("creating contact log", "id", log.Id, "patientId", log.PatientId, "outcome", log.Outcome)
	return s.repo.Create(ctx, log)
}

func (s *service) ListForPatient(ctx context.Context, patientId string) ([]*ContactLog, error) {
	return s.repo.ListForPatient(ctx, patientId)
}

func (s *service) List(ctx context.Context, filter *Filter) ([]*ContactLog, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Count(ctx context.Context, filter *Filter) (int, error) {
	return s.repo.Count(ctx, filter)
}

func validateNewContactLog(log ContactLog) error {
	if log.PatientId == "" {
		return fmt.Errorf("patient_id is required: %w", errors.BadRequest)
	}
	if !log.Outcome.Valid() {
		return fmt.Errorf("invalid outcome %q: %w", log.Outcome, errors.BadRequest)
	}
	if log.FollowUpDate != nil {
		if _, err := clock.ParseDate(*log.FollowUpDate); err != nil {
			return fmt.Errorf("invalid follow_up_date: %w", errors.BadRequest)
		}
	}
	return nil
}
