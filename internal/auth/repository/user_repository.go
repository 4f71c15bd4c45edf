package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"authkit-backend/internal/apperror"
	"authkit-backend/internal/auth/domain"
	"authkit-backend/pkg/database"
	"authkit-backend/pkg/paging"
)

// userRepository implements UserRepository over the users collection
type userRepository struct {
	col *mongo.Collection
}

// NewUserRepository creates a new instance of userRepository
func NewUserRepository(db *mongo.Database) UserRepository {
	return &userRepository{
		col: db.Collection(database.ColUsers),
	}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	return insertOne(ctx, r.col, user)
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return findOne[domain.User](ctx, r.col, bson.D{{Key: "_id", Value: id}})
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return findOne[domain.User](ctx, r.col, bson.D{{Key: "email", Value: email}})
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return findOne[domain.User](ctx, r.col, bson.D{{Key: "username", Value: username}})
}

func (r *userRepository) GetAllAndCount(ctx context.Context, args paging.Args) ([]*domain.User, int64, error) {
	opts := options.Find().
		SetSkip(args.Skip).
		SetLimit(args.Limit).
		SetSort(bson.D{{Key: args.Sort, Value: -1}})

	users, err := findMany[domain.User](ctx, r.col, bson.D{}, opts)
	if err != nil {
		return nil, 0, err
	}

	total, err := r.col.CountDocuments(ctx, bson.D{})
	if err != nil {
		return nil, 0, wrapError(err)
	}

	return users, total, nil
}

func (r *userRepository) Update(ctx context.Context, id string, update UserUpdate) (*domain.User, error) {
	fields := bson.D{{Key: "updated_at", Value: time.Now()}}
	if update.FirstName != nil {
		fields = append(fields, bson.E{Key: "first_name", Value: *update.FirstName})
	}
	if update.LastName != nil {
		fields = append(fields, bson.E{Key: "last_name", Value: *update.LastName})
	}
	if update.IsEmailVerified != nil {
		fields = append(fields, bson.E{Key: "is_email_verified", Value: *update.IsEmailVerified})
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated domain.User
	err := r.col.FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: id}},
		bson.D{{Key: "$set", Value: fields}},
		opts,
	).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, wrapError(err)
	}
	return &updated, nil
}

func (r *userRepository) UpdatePassword(ctx context.Context, id, hashedPassword string) error {
	res, err := r.col.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: id}},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "password", Value: hashedPassword},
			{Key: "updated_at", Value: time.Now()},
		}}},
	)
	if err != nil {
		return wrapError(err)
	}
	if res.MatchedCount == 0 {
		return apperror.NotFound("User not found", map[string]any{"id": id})
	}
	return nil
}

func (r *userRepository) Delete(ctx context.Context, id string) (*domain.User, error) {
	var deleted domain.User
	err := r.col.FindOneAndDelete(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&deleted)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, wrapError(err)
	}
	return &deleted, nil
}
