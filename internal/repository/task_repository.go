package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/trimkart/task-tracker/internal/domain"
)

// TaskFilter captures listing filters; empty fields impose no constraint.
// Present fields combine with logical AND.
type TaskFilter struct {
	Status       string
	AssignedTo   string
	DepartmentID string
}

// TaskRepository encapsulates task persistence. AppendUpdate and SetStatus are
// single atomic updates against the document matched by id; both return
// ErrMalformedID for unparseable ids and mongo.ErrNoDocuments when no task
// matches.
type TaskRepository interface {
	Insert(ctx context.Context, task *domain.Task) error
	Find(ctx context.Context, filter TaskFilter) ([]domain.Task, error)
	AppendUpdate(ctx context.Context, id string, entry domain.TaskUpdateEntry, now time.Time) error
	SetStatus(ctx context.Context, id string, status domain.TaskStatus, now time.Time) error
	Count(ctx context.Context, filter TaskFilter) (int64, error)
}

type taskRepository struct {
	db *mongo.Database
}

// NewTaskRepository returns a document-store-backed implementation.
func NewTaskRepository(db *mongo.Database) TaskRepository {
	return &taskRepository{db: db}
}

func (r *taskRepository) col() *mongo.Collection {
	return r.db.Collection(CollectionTask)
}

func (r *taskRepository) Insert(ctx context.Context, task *domain.Task) error {
	res, err := r.col().InsertOne(ctx, task)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		task.ID = oid
	}
	return nil
}

// Find returns matching tasks sorted by created_at descending.
func (r *taskRepository) Find(ctx context.Context, filter TaskFilter) ([]domain.Task, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.col().Find(ctx, filterQuery(filter), opts)
	if err != nil {
		return nil, err
	}
	tasks := make([]domain.Task, 0)
	if err := cursor.All(ctx, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// AppendUpdate pushes the entry onto the updates sequence and refreshes
// updated_at in one atomic operation.
func (r *taskRepository) AppendUpdate(ctx context.Context, id string, entry domain.TaskUpdateEntry, now time.Time) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrMalformedID
	}
	res, err := r.col().UpdateByID(ctx, oid, bson.M{
		"$push": bson.M{"updates": entry},
		"$set":  bson.M{"updated_at": now},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// SetStatus sets the status and refreshes updated_at in one atomic operation.
// Progress and updates are left untouched.
func (r *taskRepository) SetStatus(ctx context.Context, id string, status domain.TaskStatus, now time.Time) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrMalformedID
	}
	res, err := r.col().UpdateByID(ctx, oid, bson.M{
		"$set": bson.M{"status": status, "updated_at": now},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *taskRepository) Count(ctx context.Context, filter TaskFilter) (int64, error) {
	return r.col().CountDocuments(ctx, filterQuery(filter))
}

func filterQuery(filter TaskFilter) bson.M {
	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.AssignedTo != "" {
		query["assigned_to"] = filter.AssignedTo
	}
	if filter.DepartmentID != "" {
		query["department_id"] = filter.DepartmentID
	}
	return query
}
