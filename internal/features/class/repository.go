package class

import (
	"context"
	"time"

	"github.com/nicolassnider/TKD-Hub-API-sub000/internal/common/apperr"
	"github.com/nicolassnider/TKD-Hub-API-sub000/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ClassRepository interface {
	Create(ctx context.Context, c *TrainingClass) error
	Get(ctx context.Context, id string) (*TrainingClass, error)
	List(ctx context.Context, dojaangID string) ([]TrainingClass, error)
	Update(ctx context.Context, id string, c *TrainingClass) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type ClassRepositoryImpl struct {
	collection *mongo.Collection
}

func NewClassRepository(db *database.MongodbDB) ClassRepository {
	return &ClassRepositoryImpl{
		collection: db.DB.Collection("classes"),
	}
}

func (r *ClassRepositoryImpl) Create(ctx context.Context, c *TrainingClass) error {
	if c.ID.IsZero() {
		c.ID = primitive.NewObjectID()
	}
	c.CreatedAt = time.Now()
	c.UpdatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, c)
	return err
}

func (r *ClassRepositoryImpl) Get(ctx context.Context, id string) (*TrainingClass, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperr.NotFoundf("class %s", id)
	}

	var c TrainingClass
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&c)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperr.NotFoundf("class %s", id)
		}
		return nil, err
	}
	return &c, nil
}

func (r *ClassRepositoryImpl) List(ctx context.Context, dojaangID string) ([]TrainingClass, error) {
	filter := bson.M{}
	if dojaangID != "" {
		oid, err := primitive.ObjectIDFromHex(dojaangID)
		if err != nil {
			return nil, apperr.NotFoundf("dojaang %s", dojaangID)
		}
		filter["dojaang_id"] = oid
	}

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var classes []TrainingClass
	if err = cursor.All(ctx, &classes); err != nil {
		return nil, err
	}
	return classes, nil
}

func (r *ClassRepositoryImpl) Update(ctx context.Context, id string, c *TrainingClass) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperr.NotFoundf("class %s", id)
	}

	c.UpdatedAt = time.Now()

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{
		"$set": bson.M{
			"name":        c.Name,
			"dojaang_id":  c.DojaangID,
			"coach_id":    c.CoachID,
			"schedule":    c.Schedule,
			"student_ids": c.StudentIDs,
			"updated_at":  c.UpdatedAt,
		},
	})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperr.NotFoundf("class %s", id)
	}
	return nil
}

func (r *ClassRepositoryImpl) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperr.NotFoundf("class %s", id)
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return apperr.NotFoundf("class %s", id)
	}
	return nil
}

func (r *ClassRepositoryImpl) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}
