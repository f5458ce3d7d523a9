package dojaang

import (
	"context"
	"time"

	"github.com/nicolassnider/TKD-Hub-API-sub000/internal/common/apperr"
	"github.com/nicolassnider/TKD-Hub-API-sub000/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type DojaangRepository interface {
	Create(ctx context.Context, d *Dojaang) error
	Get(ctx context.Context, id string) (*Dojaang, error)
	List(ctx context.Context) ([]Dojaang, error)
	Update(ctx context.Context, id string, d *Dojaang) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type DojaangRepositoryImpl struct {
	collection *mongo.Collection
}

func NewDojaangRepository(db *database.MongodbDB) DojaangRepository {
	return &DojaangRepositoryImpl{
		collection: db.DB.Collection("dojaangs"),
	}
}

func (r *DojaangRepositoryImpl) Create(ctx context.Context, d *Dojaang) error {
	if d.ID.IsZero() {
		d.ID = primitive.NewObjectID()
	}
	d.CreatedAt = time.Now()
	d.UpdatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, d)
	return err
}

func (r *DojaangRepositoryImpl) Get(ctx context.Context, id string) (*Dojaang, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperr.NotFoundf("dojaang %s", id)
	}

	var d Dojaang
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&d)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperr.NotFoundf("dojaang %s", id)
		}
		return nil, err
	}
	return &d, nil
}

func (r *DojaangRepositoryImpl) List(ctx context.Context) ([]Dojaang, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var dojaangs []Dojaang
	if err = cursor.All(ctx, &dojaangs); err != nil {
		return nil, err
	}
	return dojaangs, nil
}

func (r *DojaangRepositoryImpl) Update(ctx context.Context, id string, d *Dojaang) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperr.NotFoundf("dojaang %s", id)
	}

	d.UpdatedAt = time.Now()

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{
		"$set": bson.M{
			"name":        d.Name,
			"korean_name": d.KoreanName,
			"address":     d.Address,
			"phone":       d.Phone,
			"email":       d.Email,
			"coach_id":    d.CoachID,
			"is_active":   d.IsActive,
			"updated_at":  d.UpdatedAt,
		},
	})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperr.NotFoundf("dojaang %s", id)
	}
	return nil
}

func (r *DojaangRepositoryImpl) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperr.NotFoundf("dojaang %s", id)
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return apperr.NotFoundf("dojaang %s", id)
	}
	return nil
}

func (r *DojaangRepositoryImpl) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"is_active": true})
}
