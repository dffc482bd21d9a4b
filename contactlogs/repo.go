package contactlogs

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"

	"github.com/jgrayhendrix-debug/ms-medicaid-patient-management/clock"
	"github.com/jgrayhendrix-debug/ms-medicaid-patient-management/errors"
	"github.com/jgrayhendrix-debug/ms-medicaid-patient-management/store"
)

const (
	contactLogsCollectionName = "contact_logs"
)

//go:generate mockgen --build_flags=--mod=mod -source=./contactlogs.go -destination=./test/mock_service.go -package test MockService

type Repository interface {
	Service
}

func NewRepository(db *mongo.Database, lifecycle fx.Lifecycle) (Repository, error) {
	repo := &repository{
		collection: db.Collection(contactLogsCollectionName),
	}

	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return repo.Initialize(ctx)
		},
	})

	return repo, nil
}

type repository struct {
	collection *mongo.Collection
}

func (r *repository) Initialize(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "id", Value: 1},
			},
			Options: options.Index().
				SetUnique(true).
				SetName("UniqueContactLogId"),
		},
		{
			Keys: bson.D{
				{Key: "patient_id", Value: 1},
				{Key: "contact_date", Value: -1},
			},
			Options: options.Index().
				SetName("ContactLogsByPatient"),
		},
	})
	return err
}

func (r *repository) Create(ctx context.Context, log ContactLog) (*ContactLog, error) {
	if _, err := r.collection.InsertOne(ctx, log); err != nil {
		if store.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("contact log %s: %w", log.Id, errors.Duplicate)
		}
		return nil, fmt.Errorf("error creating contact log: %w", err)
	}

	return r.get(ctx, log.Id)
}

func (r *repository) get(ctx context.Context, id string) (*ContactLog, error) {
	log := &ContactLog{}
	err := r.collection.FindOne(ctx, bson.M{"id": id}).Decode(log)
	if err == mongo.ErrNoDocuments {
		return nil, fmt.Errorf("contact log %s: %w", id, errors.NotFound)
	} else if err != nil {
		return nil, err
	}

	return log, nil
}

// ListForPatient returns a patient's logs, most recent contact first.
func (r *repository) ListForPatient(ctx context.Context, patientId string) ([]*ContactLog, error) {
	sort := store.Sort{Attribute: "contact_date", Ascending: false}
	opts := options.Find().
		SetLimit(store.ResultLimit).
		SetSort(bson.D{{Key: sort.Attribute, Value: sort.Order()}})

	cursor, err := r.collection.Find(ctx, bson.M{"patient_id": patientId}, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing contact logs: %w", err)
	}

	logs := []*ContactLog{}
	if err = cursor.All(ctx, &logs); err != nil {
		return nil, fmt.Errorf("error decoding contact logs list: %w", err)
	}

	return logs, nil
}

func (r *repository) List(ctx context.Context, filter *Filter) ([]*ContactLog, error) {
	opts := options.Find().SetLimit(store.ResultLimit)

	cursor, err := r.collection.Find(ctx, generateListFilterQuery(filter), opts)
	if err != nil {
		return nil, fmt.Errorf("error listing contact logs: %w", err)
	}

	logs := []*ContactLog{}
	if err = cursor.All(ctx, &logs); err != nil {
		return nil, fmt.Errorf("error decoding contact logs list: %w", err)
	}

	return logs, nil
}

func (r *repository) Count(ctx context.Context, filter *Filter) (int, error) {
	count, err := r.collection.CountDocuments(ctx, generateListFilterQuery(filter))
	if err != nil {
		return 0, fmt.Errorf("error counting contact logs: %w", err)
	}

	return int(count), nil
}

func generateListFilterQuery(filter *Filter) bson.M {
	selector := bson.M{}
	if filter == nil {
		return selector
	}
	if filter.PatientId != nil {
		selector["patient_id"] = *filter.PatientId
	}
	if filter.FollowUpDue {
		selector["follow_up_needed"] = true
		for key, value := range store.DateOnOrBefore("follow_up_date", clock.Today()) {
			selector[key] = value
		}
	}
	if len(filter.OutcomeIn) > 0 {
		selector["outcome"] = bson.M{"$in": filter.OutcomeIn}
	}
	if filter.ContactedInMonth != nil {
		for key, value := range store.MonthPrefix("contact_date", *filter.ContactedInMonth) {
			selector[key] = value
		}
	}
	return selector
}
