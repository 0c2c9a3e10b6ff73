package mongo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pulsepoint/wellness-api/internal/core/domain"
)

// UserRepository implements ports.UserRepository and ports.RoleRepository.
// Role memberships are embedded in the user document.
type UserRepository struct {
	db    *mongo.Database
	users *mongo.Collection
	roles *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{
		db:    db,
		users: db.Collection(collUsers),
		roles: db.Collection(collRoles),
	}
}

type mongoUser struct {
	ID            int64    `bson:"_id"`
	Username      string   `bson:"username"`
	UsernameLower string   `bson:"username_lower"`
	PasswordHash  string   `bson:"password_hash"`
	FirstName     string   `bson:"first_name,omitempty"`
	LastName      string   `bson:"last_name,omitempty"`
	WorkplaceID   int64    `bson:"workplace_id"`
	Roles         []string `bson:"roles"`
	CreatedAt     int64    `bson:"created_at"`
}

func (mu *mongoUser) toDomain() *domain.User {
	return &domain.User{
		ID:           mu.ID,
		Username:     mu.Username,
		PasswordHash: mu.PasswordHash,
		FirstName:    mu.FirstName,
		LastName:     mu.LastName,
		WorkplaceID:  mu.WorkplaceID,
		CreatedAt:    unixToTime(mu.CreatedAt),
	}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := nextID(ctx, r.db, collUsers)
	if err != nil {
		return err
	}

	doc := mongoUser{
		ID:            id,
		Username:      user.Username,
		UsernameLower: strings.ToLower(user.Username),
		PasswordHash:  user.PasswordHash,
		FirstName:     user.FirstName,
		LastName:      user.LastName,
		WorkplaceID:   user.WorkplaceID,
		Roles:         []string{},
		CreatedAt:     user.CreatedAt.Unix(),
	}
	if _, err := r.users.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicateUsername
		}
		return fmt.Errorf("insert user: %w", err)
	}
	user.ID = id
	return nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	mu, err := r.findOne(ctx, bson.M{"username_lower": strings.ToLower(username)})
	if err != nil {
		return nil, err
	}
	return mu.toDomain(), nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	mu, err := r.findOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, err
	}
	return mu.toDomain(), nil
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.M) (*mongoUser, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mu mongoUser
	if err := r.users.FindOne(ctx, filter).Decode(&mu); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &mu, nil
}

func (r *UserRepository) Roles(ctx context.Context, userID int64) ([]string, error) {
	mu, err := r.findOne(ctx, bson.M{"_id": userID})
	if err != nil {
		return nil, err
	}
	if mu.Roles == nil {
		return []string{}, nil
	}
	return mu.Roles, nil
}

// AssignRole adds a seeded role with $addToSet, so repeats are no-ops.
func (r *UserRepository) AssignRole(ctx context.Context, userID int64, role string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if err := r.roles.FindOne(ctx, bson.M{"name": role}).Err(); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.ErrUnknownRole
		}
		return fmt.Errorf("find role %q: %w", role, err)
	}

	res, err := r.users.UpdateOne(ctx, bson.M{"_id": userID}, bson.M{"$addToSet": bson.M{"roles": role}})
	if err != nil {
		return fmt.Errorf("assign role %q to user %d: %w", role, userID, err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// Ensure upserts the role by name.
func (r *UserRepository) Ensure(ctx context.Context, name string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.roles.UpdateOne(ctx,
		bson.M{"name": name},
		bson.M{"$setOnInsert": bson.M{"name": name}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return false, fmt.Errorf("ensure role %q: %w", name, err)
	}
	return res.UpsertedCount > 0, nil
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
