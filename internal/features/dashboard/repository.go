package dashboard

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

// LayoutRepository persists dashboard layouts. Widgets are embedded in the
// layout document, so widget ownership and cascade delete come for free.
type LayoutRepository interface {
	Create(ctx context.Context, layout *DashboardLayout) error
	Get(ctx context.Context, id string) (*DashboardLayout, error)
	FindByUser(ctx context.Context, userID string) ([]DashboardLayout, error)
	// FindPersonal returns the user's preferred personal layout, or nil if
	// the user never customized a dashboard.
	FindPersonal(ctx context.Context, userID string) (*DashboardLayout, error)
	// GetDefaultByRole returns the role-level default layout, or nil if none
	// is published for the role.
	GetDefaultByRole(ctx context.Context, role string) (*DashboardLayout, error)
	Update(ctx context.Context, id string, layout *DashboardLayout) error
	Delete(ctx context.Context, id string) error
	SetDefault(ctx context.Context, role string, layoutID string) error
	EnsureIndexes(ctx context.Context) error
}

type LayoutRepositoryImpl struct {
	collection *mongo.Collection
}

func NewLayoutRepository(db *database.MongodbDB) LayoutRepository {
	return &LayoutRepositoryImpl{
		collection: db.DB.Collection("dashboard_layouts"),
	}
}

func (r *LayoutRepositoryImpl) Create(ctx context.Context, layout *DashboardLayout) error {
	if layout.ID.IsZero() {
		layout.ID = primitive.NewObjectID()
	}
	layout.CreatedAt = time.Now()
	layout.UpdatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, layout)
	return err
}

func (r *LayoutRepositoryImpl) Get(ctx context.Context, id string) (*DashboardLayout, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperr.NotFoundf("layout %s", id)
	}

	var layout DashboardLayout
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&layout)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperr.NotFoundf("layout %s", id)
		}
		return nil, err
	}
	return &layout, nil
}

func (r *LayoutRepositoryImpl) FindByUser(ctx context.Context, userID string) ([]DashboardLayout, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, apperr.NotFoundf("user %s", userID)
	}

	cursor, err := r.collection.Find(ctx, bson.M{"user_id": oid},
		options.Find().SetSort(bson.D{{Key: "updated_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var layouts []DashboardLayout
	if err = cursor.All(ctx, &layouts); err != nil {
		return nil, err
	}

	return layouts, nil
}

func (r *LayoutRepositoryImpl) FindPersonal(ctx context.Context, userID string) (*DashboardLayout, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, nil // dev ids and unknown users simply have no personal layout
	}

	// The user's own default wins; otherwise the most recently updated.
	opts := options.FindOne().SetSort(bson.D{
		{Key: "is_default", Value: -1},
		{Key: "updated_at", Value: -1},
	})

	var layout DashboardLayout
	err = r.collection.FindOne(ctx, bson.M{"user_id": oid}, opts).Decode(&layout)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &layout, nil
}

func (r *LayoutRepositoryImpl) GetDefaultByRole(ctx context.Context, role string) (*DashboardLayout, error) {
	var layout DashboardLayout
	err := r.collection.FindOne(ctx, bson.M{
		"user_role":  role,
		"is_default": true,
	}).Decode(&layout)

	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	return &layout, nil
}

func (r *LayoutRepositoryImpl) Update(ctx context.Context, id string, layout *DashboardLayout) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperr.NotFoundf("layout %s", id)
	}

	layout.UpdatedAt = time.Now()

	update := bson.M{
		"$set": bson.M{
			"name":        layout.Name,
			"description": layout.Description,
			"is_default":  layout.IsDefault,
			"user_role":   layout.UserRole,
			"widgets":     layout.Widgets,
			"updated_at":  layout.UpdatedAt,
		},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return apperr.NotFoundf("layout %s", id)
	}

	return nil
}

func (r *LayoutRepositoryImpl) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperr.NotFoundf("layout %s", id)
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return apperr.NotFoundf("layout %s", id)
	}

	return nil
}

// SetDefault makes the given layout the role default. All other defaults for
// the role are unset first, so at most one default survives per role; racing
// writers degrade to last-write-wins.
func (r *LayoutRepositoryImpl) SetDefault(ctx context.Context, role string, layoutID string) error {
	oid, err := primitive.ObjectIDFromHex(layoutID)
	if err != nil {
		return apperr.NotFoundf("layout %s", layoutID)
	}

	_, err = r.collection.UpdateMany(ctx,
		bson.M{"user_role": role, "is_default": true},
		bson.M{"$set": bson.M{"is_default": false}},
	)
	if err != nil {
		return err
	}

	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"is_default": true, "user_role": role}},
	)
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return apperr.NotFoundf("layout %s", layoutID)
	}

	return nil
}

func (r *LayoutRepositoryImpl) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "updated_at", Value: -1}},
		},
		{
			Keys:    bson.D{{Key: "user_role", Value: 1}},
			Options: options.Index().SetPartialFilterExpression(bson.M{"is_default": true}),
		},
		{
			Keys:    bson.D{{Key: "widgets.id", Value: 1}},
			Options: options.Index().SetSparse(true),
		},
	})
	return err
}
