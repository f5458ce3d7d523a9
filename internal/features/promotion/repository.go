package promotion

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

type PromotionRepository interface {
	Create(ctx context.Context, p *Promotion) error
	Get(ctx context.Context, id string) (*Promotion, error)
	List(ctx context.Context, studentID string) ([]Promotion, error)
	Update(ctx context.Context, id string, p *Promotion) error
	Delete(ctx context.Context, id string) error
	Recent(ctx context.Context, limit int64) ([]Promotion, error)
	CountByMonth(ctx context.Context, from, to time.Time) ([]MonthCount, error)
}

type PromotionRepositoryImpl struct {
	collection *mongo.Collection
}

func NewPromotionRepository(db *database.MongodbDB) PromotionRepository {
	return &PromotionRepositoryImpl{
		collection: db.DB.Collection("promotions"),
	}
}

func (r *PromotionRepositoryImpl) Create(ctx context.Context, p *Promotion) error {
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	p.CreatedAt = time.Now()
	p.UpdatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, p)
	return err
}

func (r *PromotionRepositoryImpl) Get(ctx context.Context, id string) (*Promotion, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperr.NotFoundf("promotion %s", id)
	}

	var p Promotion
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&p)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperr.NotFoundf("promotion %s", id)
		}
		return nil, err
	}
	return &p, nil
}

func (r *PromotionRepositoryImpl) List(ctx context.Context, studentID string) ([]Promotion, error) {
	filter := bson.M{}
	if studentID != "" {
		oid, err := primitive.ObjectIDFromHex(studentID)
		if err != nil {
			return nil, apperr.NotFoundf("student %s", studentID)
		}
		filter["student_id"] = oid
	}

	cursor, err := r.collection.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "promotion_date", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var promotions []Promotion
	if err = cursor.All(ctx, &promotions); err != nil {
		return nil, err
	}
	return promotions, nil
}

func (r *PromotionRepositoryImpl) Update(ctx context.Context, id string, p *Promotion) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperr.NotFoundf("promotion %s", id)
	}

	p.UpdatedAt = time.Now()

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{
		"$set": bson.M{
			"student_id":     p.StudentID,
			"coach_id":       p.CoachID,
			"dojaang_id":     p.DojaangID,
			"from_rank":      p.FromRank,
			"to_rank":        p.ToRank,
			"promotion_date": p.PromotionDate,
			"notes":          p.Notes,
			"updated_at":     p.UpdatedAt,
		},
	})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperr.NotFoundf("promotion %s", id)
	}
	return nil
}

func (r *PromotionRepositoryImpl) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperr.NotFoundf("promotion %s", id)
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return apperr.NotFoundf("promotion %s", id)
	}
	return nil
}

func (r *PromotionRepositoryImpl) Recent(ctx context.Context, limit int64) ([]Promotion, error) {
	cursor, err := r.collection.Find(ctx, bson.M{},
		options.Find().
			SetSort(bson.D{{Key: "promotion_date", Value: -1}}).
			SetLimit(limit))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var promotions []Promotion
	if err = cursor.All(ctx, &promotions); err != nil {
		return nil, err
	}
	return promotions, nil
}

// CountByMonth buckets promotions by calendar month for chart widgets.
func (r *PromotionRepositoryImpl) CountByMonth(ctx context.Context, from, to time.Time) ([]MonthCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"promotion_date": bson.M{"$gte": from, "$lt": to},
		}}},
		{{Key: "$group", Value: bson.M{
			"_id": bson.M{"$dateToString": bson.M{
				"format": "%Y-%m",
				"date":   "$promotion_date",
			}},
			"count": bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.M{"_id": 1}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var counts []MonthCount
	if err = cursor.All(ctx, &counts); err != nil {
		return nil, err
	}
	return counts, nil
}
