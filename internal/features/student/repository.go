package student

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

type StudentRepository interface {
	Create(ctx context.Context, s *Student) error
	Get(ctx context.Context, id string) (*Student, error)
	List(ctx context.Context, dojaangID string) ([]Student, error)
	Update(ctx context.Context, id string, s *Student) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context, filter bson.M) (int64, error)
	CountByRank(ctx context.Context, filter bson.M) ([]RankCount, error)
	Recent(ctx context.Context, limit int64) ([]Student, error)
}

type StudentRepositoryImpl struct {
	collection *mongo.Collection
}

func NewStudentRepository(db *database.MongodbDB) StudentRepository {
	return &StudentRepositoryImpl{
		collection: db.DB.Collection("students"),
	}
}

func (r *StudentRepositoryImpl) Create(ctx context.Context, s *Student) error {
	if s.ID.IsZero() {
		s.ID = primitive.NewObjectID()
	}
	s.CreatedAt = time.Now()
	s.UpdatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, s)
	return err
}

func (r *StudentRepositoryImpl) Get(ctx context.Context, id string) (*Student, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperr.NotFoundf("student %s", id)
	}

	var s Student
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&s)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperr.NotFoundf("student %s", id)
		}
		return nil, err
	}
	return &s, nil
}

func (r *StudentRepositoryImpl) List(ctx context.Context, dojaangID string) ([]Student, error) {
	filter := bson.M{}
	if dojaangID != "" {
		oid, err := primitive.ObjectIDFromHex(dojaangID)
		if err != nil {
			return nil, apperr.NotFoundf("dojaang %s", dojaangID)
		}
		filter["dojaang_id"] = oid
	}

	cursor, err := r.collection.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "last_name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var students []Student
	if err = cursor.All(ctx, &students); err != nil {
		return nil, err
	}
	return students, nil
}

func (r *StudentRepositoryImpl) Update(ctx context.Context, id string, s *Student) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperr.NotFoundf("student %s", id)
	}

	s.UpdatedAt = time.Now()

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{
		"$set": bson.M{
			"first_name":    s.FirstName,
			"last_name":     s.LastName,
			"email":         s.Email,
			"phone":         s.Phone,
			"date_of_birth": s.DateOfBirth,
			"rank":          s.Rank,
			"dojaang_id":    s.DojaangID,
			"is_active":     s.IsActive,
			"updated_at":    s.UpdatedAt,
		},
	})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperr.NotFoundf("student %s", id)
	}
	return nil
}

func (r *StudentRepositoryImpl) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperr.NotFoundf("student %s", id)
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return apperr.NotFoundf("student %s", id)
	}
	return nil
}

func (r *StudentRepositoryImpl) Count(ctx context.Context, filter bson.M) (int64, error) {
	if filter == nil {
		filter = bson.M{}
	}
	return r.collection.CountDocuments(ctx, filter)
}

// CountByRank groups students by rank for chart and progress widgets.
func (r *StudentRepositoryImpl) CountByRank(ctx context.Context, filter bson.M) ([]RankCount, error) {
	if filter == nil {
		filter = bson.M{}
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: filter}},
		{{Key: "$group", Value: bson.M{
			"_id":   "$rank",
			"count": bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.M{"count": -1}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var counts []RankCount
	if err = cursor.All(ctx, &counts); err != nil {
		return nil, err
	}
	return counts, nil
}

func (r *StudentRepositoryImpl) Recent(ctx context.Context, limit int64) ([]Student, error) {
	cursor, err := r.collection.Find(ctx, bson.M{},
		options.Find().
			SetSort(bson.D{{Key: "created_at", Value: -1}}).
			SetLimit(limit))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var students []Student
	if err = cursor.All(ctx, &students); err != nil {
		return nil, err
	}
	return students, nil
}
