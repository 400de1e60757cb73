package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/trimkart/task-tracker/internal/domain"
)

// DepartmentRepository encapsulates department persistence.
type DepartmentRepository interface {
	Insert(ctx context.Context, department *domain.Department) error
	List(ctx context.Context) ([]domain.Department, error)
}

type departmentRepository struct {
	db *mongo.Database
}

// NewDepartmentRepository returns a document-store-backed implementation.
func NewDepartmentRepository(db *mongo.Database) DepartmentRepository {
	return &departmentRepository{db: db}
}

func (r *departmentRepository) col() *mongo.Collection {
	return r.db.Collection(CollectionDepartment)
}

func (r *departmentRepository) Insert(ctx context.Context, department *domain.Department) error {
	res, err := r.col().InsertOne(ctx, department)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		department.ID = oid
	}
	return nil
}

// List returns every department sorted by name ascending.
func (r *departmentRepository) List(ctx context.Context) ([]domain.Department, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.col().Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	departments := make([]domain.Department, 0)
	if err := cursor.All(ctx, &departments); err != nil {
		return nil, err
	}
	return departments, nil
}
