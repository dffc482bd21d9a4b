package patients

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
	patientsCollectionName = "patients"
)

//go:generate mockgen --build_flags=--mod=mod -source=./patients.go -destination=./test/mock_service.go -package test MockService

type Repository interface {
	Service
}

func NewRepository(db *mongo.Database, lifecycle fx.Lifecycle) (Repository, error) {
	repo := &repository{
		collection: db.Collection(patientsCollectionName),
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
				SetName("UniquePatientId"),
		},
		{
			Keys: bson.D{
				{Key: "tan_expiry_date", Value: 1},
			},
			Options: options.Index().
				SetName("PatientTanExpiry"),
		},
	})
	return err
}

func (r *repository) Create(ctx context.Context, patient Patient) (*Patient, error) {
	if _, err := r.collection.InsertOne(ctx, patient); err != nil {
		if store.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("patient %s: %w", patient.Id, errors.Duplicate)
		}
		return nil, fmt.Errorf("error creating patient: %w", err)
	}

	return r.Get(ctx, patient.Id)
}

func (r *repository) Get(ctx context.Context, id string) (*Patient, error) {
	selector := bson.M{
		"id": id,
	}

	patient := &Patient{}
	err := r.collection.FindOne(ctx, selector).Decode(patient)
	if err == mongo.ErrNoDocuments {
		return nil, fmt.Errorf("patient %s: %w", id, errors.NotFound)
	} else if err != nil {
		return nil, err
	}

	return patient, nil
}

func (r *repository) List(ctx context.Context, filter *Filter) ([]*Patient, error) {
	opts := options.Find().SetLimit(store.ResultLimit)

	selector := generateListFilterQuery(filter)
	cursor, err := r.collection.Find(ctx, selector, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing patients: %w", err)
	}

	patients := []*Patient{}
	if err = cursor.All(ctx, &patients); err != nil {
		return nil, fmt.Errorf("error decoding patients list: %w", err)
	}

	return patients, nil
}

func (r *repository) Update(ctx context.Context, id string, update PatientUpdate) (*Patient, error) {
	selector := bson.M{
		"id": id,
	}

	res, err := r.collection.UpdateOne(ctx, selector, bson.M{"$set": generateUpdateDocument(update)})
	if err != nil {
		return nil, fmt.Errorf("error updating patient: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, fmt.Errorf("patient %s: %w", id, errors.NotFound)
	}

	return r.Get(ctx, id)
}

func (r *repository) Delete(ctx context.Context, id string) error {
	selector := bson.M{
		"id": id,
	}

	res, err := r.collection.DeleteOne(ctx, selector)
	if err != nil {
		return fmt.Errorf("error deleting patient: %w", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("patient %s: %w", id, errors.NotFound)
	}

	return nil
}

func (r *repository) Count(ctx context.Context, filter *CountFilter) (int, error) {
	selector := generateCountFilterQuery(filter)
	count, err := r.collection.CountDocuments(ctx, selector)
	if err != nil {
		return 0, fmt.Errorf("error counting patients: %w", err)
	}

	return int(count), nil
}

func generateListFilterQuery(filter *Filter) bson.M {
	selector := bson.M{}
	if filter == nil {
		return selector
	}
	if filter.Search != nil {
		search := store.SubstringSearch([]string{"first_name", "last_name", "phone"}, *filter.Search)
		for key, value := range search {
			selector[key] = value
		}
	}
	if filter.TanExpiring {
		bound := clock.DaysFromNow(TanExpiryWindowDays)
		for key, value := range store.DateOnOrBefore("tan_expiry_date", bound) {
			selector[key] = value
		}
	}
	return selector
}

func generateCountFilterQuery(filter *CountFilter) bson.M {
	selector := bson.M{}
	if filter == nil {
		return selector
	}
	if filter.CreatedInMonth != nil {
		for key, value := range store.MonthPrefix("created_at", *filter.CreatedInMonth) {
			selector[key] = value
		}
	}
	if filter.BilledInMonth != nil {
		for key, value := range store.MonthPrefix("last_billing_date", *filter.BilledInMonth) {
			selector[key] = value
		}
	}
	if filter.MedicaidEligible != nil {
		selector["medicaid_eligible"] = *filter.MedicaidEligible
	}
	return selector
}

func generateUpdateDocument(update PatientUpdate) bson.M {
	set := bson.M{
		"updated_at": clock.Timestamp(),
	}
	if update.FirstName != nil {
		set["first_name"] = *update.FirstName
	}
	if update.LastName != nil {
		set["last_name"] = *update.LastName
	}
	if update.Phone != nil {
		set["phone"] = *update.Phone
	}
	if update.Address != nil {
		set["address"] = *update.Address
	}
	if update.Height != nil {
		set["height"] = *update.Height
	}
	if update.Weight != nil {
		set["weight"] = *update.Weight
	}
	if update.Icd10Codes != nil {
		set["icd10_codes"] = *update.Icd10Codes
	}
	if update.Doctor != nil {
		set["doctor"] = *update.Doctor
	}
	if update.CurrentTan != nil {
		set["current_tan"] = *update.CurrentTan
	}
	if update.TanExpiryDate != nil {
		set["tan_expiry_date"] = *update.TanExpiryDate
	}
	if update.MedicaidId != nil {
		set["medicaid_id"] = *update.MedicaidId
	}
	if update.MedicaidEligible != nil {
		set["medicaid_eligible"] = *update.MedicaidEligible
	}
	if update.LastBillingDate != nil {
		set["last_billing_date"] = *update.LastBillingDate
	}
	if update.Products != nil {
		set["products"] = *update.Products
	}
	if update.Notes != nil {
		set["notes"] = *update.Notes
	}
	return set
}
