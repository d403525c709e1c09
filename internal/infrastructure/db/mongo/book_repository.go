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

const bookCollection = "books"

type BookRepository struct {
	coll       *mongo.Collection
	categories *mongo.Collection
	authors    *mongo.Collection
	files      *mongo.Collection
}

func NewBookRepository(db *mongo.Database) *BookRepository {
	return &BookRepository{
		coll:       db.Collection(bookCollection),
		categories: db.Collection(categoryCollection),
		authors:    db.Collection(authorCollection),
		files:      db.Collection(fileCollection),
	}
}

type mongoBook struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"`
	Title            string             `bson:"title"`
	ShortDescription string             `bson:"short_description,omitempty"`
	City             string             `bson:"city,omitempty"`
	Year             int                `bson:"year,omitempty"`
	PublishingHouse  string             `bson:"publishing_house,omitempty"`
	Edition          string             `bson:"edition,omitempty"`
	Series           string             `bson:"series,omitempty"`
	CategoryID       string             `bson:"category_id,omitempty"`
	AuthorIDs        []string           `bson:"author_ids,omitempty"`
	FileID           string             `bson:"file_id,omitempty"`
	CreatedBy        string             `bson:"created_by"`
}

func (mb mongoBook) toDomain() domain.Book {
	return domain.Book{
		ID:               mb.ID.Hex(),
		Title:            mb.Title,
		ShortDescription: mb.ShortDescription,
		City:             mb.City,
		Year:             mb.Year,
		PublishingHouse:  mb.PublishingHouse,
		Edition:          mb.Edition,
		Series:           mb.Series,
		CategoryID:       mb.CategoryID,
		AuthorIDs:        mb.AuthorIDs,
		FileID:           mb.FileID,
		CreatedBy:        mb.CreatedBy,
	}
}

func (r *BookRepository) Create(ctx context.Context, b *domain.Book) (*domain.Book, error) {
	doc := mongoBook{
		Title:            b.Title,
		ShortDescription: b.ShortDescription,
		City:             b.City,
		Year:             b.Year,
		PublishingHouse:  b.PublishingHouse,
		Edition:          b.Edition,
		Series:           b.Series,
		CategoryID:       b.CategoryID,
		AuthorIDs:        b.AuthorIDs,
		FileID:           b.FileID,
		CreatedBy:        b.CreatedBy,
	}
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert book: %w", err)
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return r.FindByID(ctx, id.Hex())
}

func (r *BookRepository) FindByID(ctx context.Context, id string) (*domain.Book, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrBookNotFound
	}
	var mb mongoBook
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mb); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrBookNotFound
		}
		return nil, fmt.Errorf("find book: %w", err)
	}
	b := mb.toDomain()
	return &b, nil
}

func (r *BookRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrBookNotFound
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete book: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrBookNotFound
	}
	return nil
}

func (r *BookRepository) List(ctx context.Context, filter ports.ListFilter) ([]domain.Book, int64, error) {
	query := bson.M{}
	if filter.Query != "" {
		query["title"] = primitive.Regex{Pattern: regexp.QuoteMeta(filter.Query), Options: "i"}
	}

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count books: %w", err)
	}

	opts := options.Find().
		SetSkip(int64(filter.Page) * int64(filter.Limit)).
		SetLimit(int64(filter.Limit)).
		SetSort(bson.D{{Key: "_id", Value: 1}})

	cur, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list books: %w", err)
	}
	defer cur.Close(ctx)

	var books []domain.Book
	for cur.Next(ctx) {
		var mb mongoBook
		if err := cur.Decode(&mb); err != nil {
			return nil, 0, fmt.Errorf("decode book: %w", err)
		}
		b := mb.toDomain()
		r.attachRelations(ctx, &b)
		books = append(books, b)
	}
	if err := cur.Err(); err != nil {
		return nil, 0, fmt.Errorf("list books: %w", err)
	}
	return books, total, nil
}

// attachRelations fills the joined fields used by list views: category
// title, stored filename, and author records. Broken references are simply
// left empty.
func (r *BookRepository) attachRelations(ctx context.Context, b *domain.Book) {
	if oid, err := primitive.ObjectIDFromHex(b.CategoryID); err == nil {
		var cat struct {
			Title string `bson:"title"`
		}
		if err := r.categories.FindOne(ctx, bson.M{"_id": oid}).Decode(&cat); err == nil {
			b.CategoryTitle = cat.Title
		}
	}

	if oid, err := primitive.ObjectIDFromHex(b.FileID); err == nil {
		var f struct {
			Filename string `bson:"filename"`
		}
		if err := r.files.FindOne(ctx, bson.M{"_id": oid}).Decode(&f); err == nil {
			b.Filename = f.Filename
		}
	}

	for _, authorID := range b.AuthorIDs {
		oid, err := primitive.ObjectIDFromHex(authorID)
		if err != nil {
			continue
		}
		var ma mongoAuthor
		if err := r.authors.FindOne(ctx, bson.M{"_id": oid}).Decode(&ma); err != nil {
			continue
		}
		b.Authors = append(b.Authors, ma.toDomain())
	}
}
