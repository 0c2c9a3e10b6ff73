package mongo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pulsepoint/wellness-api/internal/core/domain"
)

type WorkplaceRepository struct {
	db    *mongo.Database
	col   *mongo.Collection
	users *mongo.Collection
}

func NewWorkplaceRepository(db *mongo.Database) *WorkplaceRepository {
	return &WorkplaceRepository{
		db:    db,
		col:   db.Collection(collWorkplaces),
		users: db.Collection(collUsers),
	}
}

type mongoWorkplace struct {
	ID        int64  `bson:"_id"`
	Name      string `bson:"name"`
	NameLower string `bson:"name_lower"`
}

func (r *WorkplaceRepository) List(ctx context.Context) ([]*domain.Workplace, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list workplaces: %w", err)
	}
	var docs []mongoWorkplace
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode workplaces: %w", err)
	}

	out := make([]*domain.Workplace, 0, len(docs))
	for _, d := range docs {
		out = append(out, &domain.Workplace{ID: d.ID, Name: d.Name})
	}
	return out, nil
}

func (r *WorkplaceRepository) FindByID(ctx context.Context, id int64) (*domain.Workplace, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *WorkplaceRepository) FindByName(ctx context.Context, name string) (*domain.Workplace, error) {
	return r.findOne(ctx, bson.M{"name_lower": strings.ToLower(name)})
}

func (r *WorkplaceRepository) findOne(ctx context.Context, filter bson.M) (*domain.Workplace, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var d mongoWorkplace
	if err := r.col.FindOne(ctx, filter).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrWorkplaceNotFound
		}
		return nil, fmt.Errorf("find workplace: %w", err)
	}
	return &domain.Workplace{ID: d.ID, Name: d.Name}, nil
}

func (r *WorkplaceRepository) Exists(ctx context.Context, id int64) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.col.CountDocuments(ctx, bson.M{"_id": id}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("count workplace %d: %w", id, err)
	}
	return n > 0, nil
}

func (r *WorkplaceRepository) Create(ctx context.Context, w *domain.Workplace) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := nextID(ctx, r.db, collWorkplaces)
	if err != nil {
		return err
	}
	doc := mongoWorkplace{ID: id, Name: w.Name, NameLower: strings.ToLower(w.Name)}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrWorkplaceNameTaken
		}
		return fmt.Errorf("insert workplace: %w", err)
	}
	w.ID = id
	return nil
}

func (r *WorkplaceRepository) Update(ctx context.Context, w *domain.Workplace) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": w.ID},
		bson.M{"$set": bson.M{"name": w.Name, "name_lower": strings.ToLower(w.Name)}},
	)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrWorkplaceNameTaken
		}
		return fmt.Errorf("update workplace %d: %w", w.ID, err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrWorkplaceNotFound
	}
	return nil
}

func (r *WorkplaceRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete workplace %d: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrWorkplaceNotFound
	}
	return nil
}

func (r *WorkplaceRepository) MemberIDs(ctx context.Context, workplaceID int64) ([]int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.users.Find(ctx,
		bson.M{"workplace_id": workplaceID},
		options.Find().SetProjection(bson.M{"_id": 1}),
	)
	if err != nil {
		return nil, fmt.Errorf("list members of workplace %d: %w", workplaceID, err)
	}
	var docs []struct {
		ID int64 `bson:"_id"`
	}
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode members: %w", err)
	}

	ids := make([]int64, 0, len(docs))
	for _, d := range docs {
		ids = append(ids, d.ID)
	}
	return ids, nil
}
