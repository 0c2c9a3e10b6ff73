package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pulsepoint/wellness-api/internal/core/domain"
)

// EntryRepository implements ports.EntryRepository using MongoDB.
type EntryRepository struct {
	db  *mongo.Database
	col *mongo.Collection
}

func NewEntryRepository(db *mongo.Database) *EntryRepository {
	return &EntryRepository{db: db, col: db.Collection(collEntries)}
}

type mongoEntry struct {
	ID        int64     `bson:"_id"`
	UserID    int64     `bson:"user_id"`
	Date      time.Time `bson:"date"`
	Mood      int       `bson:"mood"`
	Sleep     int       `bson:"sleep"`
	Stress    int       `bson:"stress"`
	Activity  int       `bson:"activity"`
	Nutrition int       `bson:"nutrition"`
}

func (d *mongoEntry) toDomain() *domain.HealthEntry {
	return &domain.HealthEntry{
		ID:     d.ID,
		UserID: d.UserID,
		Date:   domain.Day(d.Date),
		Metrics: domain.Metrics{
			Mood:      d.Mood,
			Sleep:     d.Sleep,
			Stress:    d.Stress,
			Activity:  d.Activity,
			Nutrition: d.Nutrition,
		},
	}
}

func (r *EntryRepository) Create(ctx context.Context, e *domain.HealthEntry) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := nextID(ctx, r.db, collEntries)
	if err != nil {
		return err
	}
	doc := mongoEntry{
		ID:        id,
		UserID:    e.UserID,
		Date:      domain.Day(e.Date),
		Mood:      e.Mood,
		Sleep:     e.Sleep,
		Stress:    e.Stress,
		Activity:  e.Activity,
		Nutrition: e.Nutrition,
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert entry: %w", err)
	}
	e.ID = id
	return nil
}

func (r *EntryRepository) FindForOwner(ctx context.Context, id, userID int64) (*domain.HealthEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var d mongoEntry
	if err := r.col.FindOne(ctx, bson.M{"_id": id, "user_id": userID}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrEntryNotFound
		}
		return nil, fmt.Errorf("find entry %d: %w", id, err)
	}
	return d.toDomain(), nil
}

func (r *EntryRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.HealthEntry, error) {
	return r.list(ctx, bson.M{"user_id": userID})
}

func (r *EntryRepository) ListByUsers(ctx context.Context, userIDs []int64) ([]*domain.HealthEntry, error) {
	if len(userIDs) == 0 {
		return []*domain.HealthEntry{}, nil
	}
	return r.list(ctx, bson.M{"user_id": bson.M{"$in": userIDs}})
}

func (r *EntryRepository) list(ctx context.Context, filter bson.M) ([]*domain.HealthEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "_id", Value: 1}})
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	var docs []mongoEntry
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode entries: %w", err)
	}

	out := make([]*domain.HealthEntry, 0, len(docs))
	for i := range docs {
		out = append(out, docs[i].toDomain())
	}
	return out, nil
}

func (r *EntryRepository) UpdateMetrics(ctx context.Context, id, userID int64, m domain.Metrics) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id, "user_id": userID},
		bson.M{"$set": bson.M{
			"mood":      m.Mood,
			"sleep":     m.Sleep,
			"stress":    m.Stress,
			"activity":  m.Activity,
			"nutrition": m.Nutrition,
		}},
	)
	if err != nil {
		return fmt.Errorf("update entry %d: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrEntryNotFound
	}
	return nil
}

func (r *EntryRepository) DeleteForOwner(ctx context.Context, id, userID int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id, "user_id": userID})
	if err != nil {
		return fmt.Errorf("delete entry %d: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrEntryNotFound
	}
	return nil
}
