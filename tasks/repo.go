package tasks

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
	tasksCollectionName = "tasks"
)

//go:generate mockgen --build_flags=--mod=mod -source=./repo.go -destination=./test/mock_repository.go -package test -aux_files=github.com/jgrayhendrix-debug/ms-medicaid-patient-management/tasks=tasks.go MockRepository

type Repository interface {
	Create(ctx context.Context, task Task) (*Task, error)
	List(ctx context.Context, filter *Filter) ([]*Task, error)
	Complete(ctx context.Context, id string) (*CompletionResult, error)
}

func NewRepository(db *mongo.Database, lifecycle fx.Lifecycle) (Repository, error) {
	repo := &repository{
		collection: db.Collection(tasksCollectionName),
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
				SetName("UniqueTaskId"),
		},
		{
			Keys: bson.D{
				{Key: "patient_id", Value: 1},
				{Key: "status", Value: 1},
			},
			Options: options.Index().
				SetName("TasksByPatientAndStatus"),
		},
	})
	return err
}

func (r *repository) Create(ctx context.Context, task Task) (*Task, error) {
	if _, err := r.collection.InsertOne(ctx, task); err != nil {
		if store.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("task %s: %w", task.Id, errors.Duplicate)
		}
		return nil, fmt.Errorf("error creating task: %w", err)
	}

	return r.get(ctx, task.Id)
}

func (r *repository) get(ctx context.Context, id string) (*Task, error) {
	task := &Task{}
	err := r.collection.FindOne(ctx, bson.M{"id": id}).Decode(task)
	if err == mongo.ErrNoDocuments {
		return nil, fmt.Errorf("task %s: %w", id, errors.NotFound)
	} else if err != nil {
		return nil, err
	}

	return task, nil
}

func (r *repository) List(ctx context.Context, filter *Filter) ([]*Task, error) {
	opts := options.Find().SetLimit(store.ResultLimit)

	cursor, err := r.collection.Find(ctx, generateListFilterQuery(filter), opts)
	if err != nil {
		return nil, fmt.Errorf("error listing tasks: %w", err)
	}

	tasks := []*Task{}
	if err = cursor.All(ctx, &tasks); err != nil {
		return nil, fmt.Errorf("error decoding tasks list: %w", err)
	}

	return tasks, nil
}

// Complete reports matched and modified counts separately so callers can
// tell a missing task apart from one that was already completed.
func (r *repository) Complete(ctx context.Context, id string) (*CompletionResult, error) {
	selector := bson.M{
		"id":     id,
		"status": bson.M{"$ne": StatusCompleted},
	}
	update := bson.M{
		"$set": bson.M{
			"status":       StatusCompleted,
			"completed_at": clock.Timestamp(),
		},
	}

	res, err := r.collection.UpdateOne(ctx, selector, update)
	if err != nil {
		return nil, fmt.Errorf("error completing task: %w", err)
	}
	if res.MatchedCount > 0 {
		return &CompletionResult{Matched: res.MatchedCount, Modified: res.ModifiedCount}, nil
	}

	// Nothing matched: either the task is absent or already completed.
	count, err := r.collection.CountDocuments(ctx, bson.M{"id": id})
	if err != nil {
		return nil, fmt.Errorf("error completing task: %w", err)
	}
	return &CompletionResult{Matched: count, Modified: 0}, nil
}

func generateListFilterQuery(filter *Filter) bson.M {
	selector := bson.M{}
	if filter == nil {
		return selector
	}
	if filter.PatientId != nil {
		selector["patient_id"] = *filter.PatientId
	}
	if filter.Status != nil {
		selector["status"] = *filter.Status
	}
	if filter.ExcludeStatus != nil {
		selector["status"] = bson.M{"$ne": *filter.ExcludeStatus}
	}
	if filter.DueToday {
		for key, value := range store.DateEquals("due_date", clock.Today()) {
			selector[key] = value
		}
	}
	return selector
}
