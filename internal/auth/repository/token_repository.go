package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"authkit-backend/internal/auth/domain"
	"authkit-backend/pkg/database"
	"authkit-backend/pkg/token"
)

// refreshTokenRepository implements RefreshTokenRepository over the
// user_tokens collection.
type refreshTokenRepository struct {
	col   *mongo.Collection
	codec *token.Codec
}

// NewRefreshTokenRepository creates a new instance of refreshTokenRepository
func NewRefreshTokenRepository(db *mongo.Database, codec *token.Codec) RefreshTokenRepository {
	return &refreshTokenRepository{
		col:   db.Collection(database.ColUserTokens),
		codec: codec,
	}
}

func (r *refreshTokenRepository) Create(ctx context.Context, args CreateTokenArgs) (*domain.RefreshToken, error) {
	signed, err := r.codec.Generate(args.Payload, args.SecretKey, args.ExpiresIn)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	record := &domain.RefreshToken{
		Token:     signed,
		TokenType: args.TokenType,
		UserID:    args.UserID,
		ExpiresAt: now.Add(args.ExpiresIn),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := insertOne(ctx, r.col, record); err != nil {
		return nil, err
	}
	return record, nil
}

func (r *refreshTokenRepository) GetByToken(ctx context.Context, tokenString string) (*domain.RefreshToken, error) {
	return findOne[domain.RefreshToken](ctx, r.col, bson.D{{Key: "token", Value: tokenString}})
}

func (r *refreshTokenRepository) DeleteByToken(ctx context.Context, tokenString string) (bool, error) {
	return deleteOne(ctx, r.col, bson.D{{Key: "token", Value: tokenString}})
}

func (r *refreshTokenRepository) DeleteByUserID(ctx context.Context, userID string) (bool, error) {
	res, err := r.col.DeleteMany(ctx, bson.D{{Key: "user", Value: userID}})
	if err != nil {
		return false, wrapError(err)
	}
	return res.DeletedCount > 0, nil
}
