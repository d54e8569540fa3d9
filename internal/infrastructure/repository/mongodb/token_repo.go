package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/medcharfeddine/nutricoach/internal/domain/apperror"
	"github.com/medcharfeddine/nutricoach/internal/domain/contract"
	"github.com/medcharfeddine/nutricoach/internal/domain/entity"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// tokenDTO is the stored shape of entity.Token.
type tokenDTO struct {
	ID        string    `bson:"_id"`
	UserID    string    `bson:"user_id"`
	TokenType string    `bson:"token_type"`
	TokenHash string    `bson:"token_hash"`
	CreatedAt time.Time `bson:"created_at"`
	ExpiresAt time.Time `bson:"expires_at"`
	Revoke    bool      `bson:"revoke"`
}

func (t *tokenDTO) ToEntity() *entity.Token {
	return &entity.Token{
		ID:        t.ID,
		UserID:    t.UserID,
		TokenType: entity.TokenType(t.TokenType),
		TokenHash: t.TokenHash,
		CreatedAt: t.CreatedAt,
		ExpiresAt: t.ExpiresAt,
		Revoke:    t.Revoke,
	}
}

func fromTokenEntity(t *entity.Token) *tokenDTO {
	return &tokenDTO{
		ID:        t.ID,
		UserID:    t.UserID,
		TokenType: string(t.TokenType),
		TokenHash: t.TokenHash,
		CreatedAt: t.CreatedAt,
		ExpiresAt: t.ExpiresAt,
		Revoke:    t.Revoke,
	}
}

type TokenRepository struct {
	collection *mongo.Collection
}

// check in compile time if TokenRepository implements ITokenRepository
var _ contract.ITokenRepository = (*TokenRepository)(nil)

func NewTokenRepository(collection *mongo.Collection) *TokenRepository {
	return &TokenRepository{collection: collection}
}

func (r *TokenRepository) CreateToken(ctx context.Context, token *entity.Token) error {
	if _, err := r.collection.InsertOne(ctx, fromTokenEntity(token)); err != nil {
		return fmt.Errorf("failed to store token: %w", err)
	}
	return nil
}

func (r *TokenRepository) GetTokenByID(ctx context.Context, id string) (*entity.Token, error) {
	var dto tokenDTO
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&dto)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperror.NotFound("token not found")
		}
		return nil, fmt.Errorf("failed to fetch token: %w", err)
	}
	return dto.ToEntity(), nil
}

// UpdateToken rotates the token hash and expiry.
func (r *TokenRepository) UpdateToken(ctx context.Context, tokenID string, tokenHash string, expiry time.Time) error {
	update := bson.M{"$set": bson.M{"token_hash": tokenHash, "expires_at": expiry}}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": tokenID}, update)
	if err != nil {
		return fmt.Errorf("failed to update token %s: %w", tokenID, err)
	}
	if result.MatchedCount == 0 {
		return apperror.NotFound("token not found")
	}
	return nil
}

// RevokeToken marks a token as revoked by its ID
func (r *TokenRepository) RevokeToken(ctx context.Context, id string) error {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"revoke": true}})
	if err != nil {
		return fmt.Errorf("failed to revoke token %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return apperror.NotFound("token not found")
	}
	return nil
}

// RevokeAllTokensForUser revokes every live token of one type, e.g. when an
// admin deactivates the account.
func (r *TokenRepository) RevokeAllTokensForUser(ctx context.Context, userID string, tokenType entity.TokenType) error {
	filter := bson.D{
		{Key: "user_id", Value: userID},
		{Key: "token_type", Value: string(tokenType)},
		{Key: "revoke", Value: false},
	}
	update := bson.D{{Key: "$set", Value: bson.M{"revoke": true}}}

	if _, err := r.collection.UpdateMany(ctx, filter, update); err != nil {
		return fmt.Errorf("failed to revoke tokens for user %s: %w", userID, err)
	}
	return nil
}
