package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/trimkart/task-tracker/internal/domain"
)

// UserFilter captures listing filters; empty fields impose no constraint.
type UserFilter struct {
	Role         string
	DepartmentID string
}

// UserRepository defines persistence access for users.
type UserRepository interface {
	Insert(ctx context.Context, user *domain.User) error
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Find(ctx context.Context, filter UserFilter) ([]domain.User, error)
	Count(ctx context.Context) (int64, error)
}

type userRepository struct {
	db *mongo.Database
}

// NewUserRepository returns a document-store-backed implementation.
func NewUserRepository(db *mongo.Database) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) col() *mongo.Collection {
	return r.db.Collection(CollectionUser)
}

func (r *userRepository) Insert(ctx context.Context, user *domain.User) error {
	res, err := r.col().InsertOne(ctx, user)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid
	}
	return nil
}

// FindByEmail performs a case-sensitive exact match. Returns
// mongo.ErrNoDocuments when no user has the email.
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	if err := r.col().FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Find(ctx context.Context, filter UserFilter) ([]domain.User, error) {
	query := bson.M{}
	if filter.Role != "" {
		query["role"] = filter.Role
	}
	if filter.DepartmentID != "" {
		query["department_id"] = filter.DepartmentID
	}

	cursor, err := r.col().Find(ctx, query)
	if err != nil {
		return nil, err
	}
	users := make([]domain.User, 0)
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) Count(ctx context.Context) (int64, error) {
	return r.col().CountDocuments(ctx, bson.M{})
}
