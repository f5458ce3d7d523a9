package payment

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

type PaymentRepository interface {
	Create(ctx context.Context, p *Payment) error
	Get(ctx context.Context, id string) (*Payment, error)
	FindByProviderID(ctx context.Context, providerID string) (*Payment, error)
	List(ctx context.Context, status string) ([]Payment, error)
	UpdateStatus(ctx context.Context, id string, status string) error
	ListPending(ctx context.Context, olderThan time.Time) ([]Payment, error)
	Recent(ctx context.Context, limit int64) ([]Payment, error)
	SumInRange(ctx context.Context, from, to time.Time) (float64, error)
	SumByMonth(ctx context.Context, from, to time.Time) ([]MonthSum, error)
	CountByStatus(ctx context.Context) ([]StatusCount, error)
	EnsureIndexes(ctx context.Context) error
}

type PaymentRepositoryImpl struct {
	collection *mongo.Collection
}

func NewPaymentRepository(db *database.MongodbDB) PaymentRepository {
	return &PaymentRepositoryImpl{
		collection: db.DB.Collection("payments"),
	}
}

// EnsureIndexes creates the unique provider id index the webhook
// idempotency check relies on.
func (r *PaymentRepositoryImpl) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "provider_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "status", Value: 1}, {Key: "created_at", Value: -1}},
		},
	})
	return err
}

func (r *PaymentRepositoryImpl) Create(ctx context.Context, p *Payment) error {
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	p.CreatedAt = time.Now()
	p.UpdatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, p)
	return err
}

func (r *PaymentRepositoryImpl) Get(ctx context.Context, id string) (*Payment, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperr.NotFoundf("payment %s", id)
	}

	var p Payment
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&p)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperr.NotFoundf("payment %s", id)
		}
		return nil, err
	}
	return &p, nil
}

// FindByProviderID returns (nil, nil) when no payment matches.
func (r *PaymentRepositoryImpl) FindByProviderID(ctx context.Context, providerID string) (*Payment, error) {
	var p Payment
	err := r.collection.FindOne(ctx, bson.M{"provider_id": providerID}).Decode(&p)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *PaymentRepositoryImpl) List(ctx context.Context, status string) ([]Payment, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}

	cursor, err := r.collection.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var payments []Payment
	if err = cursor.All(ctx, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *PaymentRepositoryImpl) UpdateStatus(ctx context.Context, id string, status string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperr.NotFoundf("payment %s", id)
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{
		"$set": bson.M{"status": status, "updated_at": time.Now()},
	})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperr.NotFoundf("payment %s", id)
	}
	return nil
}

func (r *PaymentRepositoryImpl) ListPending(ctx context.Context, olderThan time.Time) ([]Payment, error) {
	cursor, err := r.collection.Find(ctx, bson.M{
		"status":     StatusPending,
		"created_at": bson.M{"$lt": olderThan},
	})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var payments []Payment
	if err = cursor.All(ctx, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *PaymentRepositoryImpl) Recent(ctx context.Context, limit int64) ([]Payment, error) {
	cursor, err := r.collection.Find(ctx, bson.M{},
		options.Find().
			SetSort(bson.D{{Key: "created_at", Value: -1}}).
			SetLimit(limit))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var payments []Payment
	if err = cursor.All(ctx, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

// SumInRange totals approved payments inside [from, to).
func (r *PaymentRepositoryImpl) SumInRange(ctx context.Context, from, to time.Time) (float64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"status":  StatusApproved,
			"paid_at": bson.M{"$gte": from, "$lt": to},
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$amount"},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Total float64 `bson:"total"`
	}
	if err = cursor.All(ctx, &rows); err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].Total, nil
}

func (r *PaymentRepositoryImpl) SumByMonth(ctx context.Context, from, to time.Time) ([]MonthSum, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"status":  StatusApproved,
			"paid_at": bson.M{"$gte": from, "$lt": to},
		}}},
		{{Key: "$group", Value: bson.M{
			"_id": bson.M{"$dateToString": bson.M{
				"format": "%Y-%m",
				"date":   "$paid_at",
			}},
			"total": bson.M{"$sum": "$amount"},
		}}},
		{{Key: "$sort", Value: bson.M{"_id": 1}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var sums []MonthSum
	if err = cursor.All(ctx, &sums); err != nil {
		return nil, err
	}
	return sums, nil
}

func (r *PaymentRepositoryImpl) CountByStatus(ctx context.Context) ([]StatusCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":   "$status",
			"count": bson.M{"$sum": 1},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var counts []StatusCount
	if err = cursor.All(ctx, &counts); err != nil {
		return nil, err
	}
	return counts, nil
}
