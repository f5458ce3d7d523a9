package coach

import (
	"context"
	"time"

	"github.com/nicolassnider/TKD-Hub-API-sub000/internal/common/apperr"
	"github.com/nicolassnider/TKD-Hub-API-sub000/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CoachRepository interface {
	Create(ctx context.Context, c *Coach) error
	Get(ctx context.Context, id string) (*Coach, error)
	List(ctx context.Context) ([]Coach, error)
	Update(ctx context.Context, id string, c *Coach) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type CoachRepositoryImpl struct {
	collection *mongo.Collection
}

func NewCoachRepository(db *database.MongodbDB) CoachRepository {
	return &CoachRepositoryImpl{
		collection: db.DB.Collection("coaches"),
	}
}

func (r *CoachRepositoryImpl) Create(ctx context.Context, c *Coach) error {
	if c.ID.IsZero() {
		c.ID = primitive.NewObjectID()
	}
	c.CreatedAt = time.Now()
	c.UpdatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, c)
	return err
}

func (r *CoachRepositoryImpl) Get(ctx context.Context, id string) (*Coach, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperr.NotFoundf("coach %s", id)
	}

	var c Coach
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&c)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperr.NotFoundf("coach %s", id)
		}
		return nil, err
	}
	return &c, nil
}

func (r *CoachRepositoryImpl) List(ctx context.Context) ([]Coach, error) {
	cursor, err := r.collection.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "last_name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var coaches []Coach
	if err = cursor.All(ctx, &coaches); err != nil {
		return nil, err
	}
	return coaches, nil
}

func (r *CoachRepositoryImpl) Update(ctx context.Context, id string, c *Coach) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperr.NotFoundf("coach %s", id)
	}

	c.UpdatedAt = time.Now()

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{
		"$set": bson.M{
			"first_name":          c.FirstName,
			"last_name":           c.LastName,
			"email":               c.Email,
			"phone":               c.Phone,
			"rank":                c.Rank,
			"managed_dojaang_ids": c.ManagedDojaangIDs,
			"is_active":           c.IsActive,
			"updated_at":          c.UpdatedAt,
		},
	})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperr.NotFoundf("coach %s", id)
	}
	return nil
}

func (r *CoachRepositoryImpl) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperr.NotFoundf("coach %s", id)
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return apperr.NotFoundf("coach %s", id)
	}
	return nil
}

func (r *CoachRepositoryImpl) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"is_active": true})
}
