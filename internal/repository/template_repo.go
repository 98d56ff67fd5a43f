package repository

import (
	"context"
	"time"

	"lexdraft/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// TemplateRepo handles MongoDB operations for the template library
type TemplateRepo interface {
	Create(ctx context.Context, tpl *model.Template) (string, error)
	GetByID(ctx context.Context, id string) (*model.Template, error)
	ListByCategory(ctx context.Context, category string) ([]*model.Template, error)
	List(ctx context.Context) ([]*model.Template, error)
	IncrementDownloads(ctx context.Context, id string) error
}

type templateRepo struct {
	collection *mongo.Collection
}

// NewTemplateRepo creates a new template repository
func NewTemplateRepo(db *mongo.Database) TemplateRepo {
	return &templateRepo{
		collection: db.Collection("templates"),
	}
}

func (r *templateRepo) Create(ctx context.Context, tpl *model.Template) (string, error) {
	if tpl.CreatedAt.IsZero() {
		tpl.CreatedAt = time.Now()
	}
	if tpl.UpdatedAt.IsZero() {
		tpl.UpdatedAt = time.Now()
	}

	result, err := r.collection.InsertOne(ctx, tpl)
	if err != nil {
		return "", err
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", nil
	}
	return oid.Hex(), nil
}

func (r *templateRepo) GetByID(ctx context.Context, id string) (*model.Template, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var tpl model.Template
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&tpl)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tpl, nil
}

func (r *templateRepo) ListByCategory(ctx context.Context, category string) ([]*model.Template, error) {
	return r.find(ctx, bson.M{"category": category})
}

func (r *templateRepo) List(ctx context.Context) ([]*model.Template, error) {
	return r.find(ctx, bson.M{})
}

func (r *templateRepo) find(ctx context.Context, filter bson.M) ([]*model.Template, error) {
	opts := options.Find().SetSort(bson.D{{Key: "downloadCount", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var templates []*model.Template
	if err := cursor.All(ctx, &templates); err != nil {
		return nil, err
	}
	return templates, nil
}

func (r *templateRepo) IncrementDownloads(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	_, err = r.collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$inc": bson.M{"downloadCount": 1}})
	return err
}
