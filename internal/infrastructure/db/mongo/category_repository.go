package mongo

import (
	"context"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/weblibrary/library-system/internal/core/domain"
	"github.com/weblibrary/library-system/internal/core/ports"
)

const categoryCollection = "categories"

type CategoryRepository struct {
	coll  *mongo.Collection
	users *mongo.Collection
}

func NewCategoryRepository(db *mongo.Database) *CategoryRepository {
	return &CategoryRepository{
		coll:  db.Collection(categoryCollection),
		users: db.Collection(userCollection),
	}
}

type mongoCategory struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"`
	Title            string             `bson:"title"`
	ShortDescription string             `bson:"short_description,omitempty"`
	Description      string             `bson:"description,omitempty"`
	ParentID         string             `bson:"parent_id,omitempty"`
	CreatedBy        string             `bson:"created_by"`
}

func (mc mongoCategory) toDomain() domain.Category {
	return domain.Category{
		ID:               mc.ID.Hex(),
		Title:            mc.Title,
		ShortDescription: mc.ShortDescription,
		Description:      mc.Description,
		ParentID:         mc.ParentID,
		CreatedBy:        mc.CreatedBy,
	}
}

func (r *CategoryRepository) Create(ctx context.Context, c *domain.Category) (*domain.Category, error) {
	doc := mongoCategory{
		Title:            c.Title,
		ShortDescription: c.ShortDescription,
		Description:      c.Description,
		ParentID:         c.ParentID,
		CreatedBy:        c.CreatedBy,
	}
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateTitle
		}
		return nil, fmt.Errorf("insert category: %w", err)
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return r.FindByID(ctx, id.Hex())
}

func (r *CategoryRepository) FindByID(ctx context.Context, id string) (*domain.Category, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrCategoryNotFound
	}
	var mc mongoCategory
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("find category: %w", err)
	}
	c := mc.toDomain()
	return &c, nil
}

func (r *CategoryRepository) Update(ctx context.Context, c *domain.Category) (*domain.Category, error) {
	oid, err := primitive.ObjectIDFromHex(c.ID)
	if err != nil {
		return nil, domain.ErrCategoryNotFound
	}
	update := bson.M{"$set": bson.M{
		"title":             c.Title,
		"short_description": c.ShortDescription,
		"description":       c.Description,
		"parent_id":         c.ParentID,
	}}
	res, err := r.coll.UpdateByID(ctx, oid, update)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateTitle
		}
		return nil, fmt.Errorf("update category: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrCategoryNotFound
	}
	return r.FindByID(ctx, c.ID)
}

func (r *CategoryRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrCategoryNotFound
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrCategoryNotFound
	}
	return nil
}

func (r *CategoryRepository) List(ctx context.Context, filter ports.ListFilter) ([]domain.Category, int64, error) {
	query := bson.M{}
	if filter.Query != "" {
		query["title"] = primitive.Regex{Pattern: regexp.QuoteMeta(filter.Query), Options: "i"}
	}

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count categories: %w", err)
	}

	opts := options.Find().
		SetSkip(int64(filter.Page) * int64(filter.Limit)).
		SetLimit(int64(filter.Limit)).
		SetSort(bson.D{{Key: "_id", Value: 1}})

	cur, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list categories: %w", err)
	}
	defer cur.Close(ctx)

	var categories []domain.Category
	for cur.Next(ctx) {
		var mc mongoCategory
		if err := cur.Decode(&mc); err != nil {
			return nil, 0, fmt.Errorf("decode category: %w", err)
		}
		c := mc.toDomain()
		r.attachCreator(ctx, &c)
		categories = append(categories, c)
	}
	if err := cur.Err(); err != nil {
		return nil, 0, fmt.Errorf("list categories: %w", err)
	}
	return categories, total, nil
}

// attachCreator resolves the creator's name pair for list views. Missing
// creators (deleted accounts) are left nil.
func (r *CategoryRepository) attachCreator(ctx context.Context, c *domain.Category) {
	oid, err := primitive.ObjectIDFromHex(c.CreatedBy)
	if err != nil {
		return
	}
	var creator struct {
		FirstName string `bson:"firstname"`
		LastName  string `bson:"lastname"`
	}
	if err := r.users.FindOne(ctx, bson.M{"_id": oid}).Decode(&creator); err != nil {
		return
	}
	c.Creator = &domain.Creator{FirstName: creator.FirstName, LastName: creator.LastName}
}
