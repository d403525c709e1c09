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

const authorCollection = "authors"

type AuthorRepository struct {
	coll  *mongo.Collection
	books *mongo.Collection
}

func NewAuthorRepository(db *mongo.Database) *AuthorRepository {
	return &AuthorRepository{
		coll:  db.Collection(authorCollection),
		books: db.Collection(bookCollection),
	}
}

type mongoAuthor struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	FirstName string             `bson:"firstname"`
	LastName  string             `bson:"lastname"`
}

func (ma mongoAuthor) toDomain() domain.Author {
	return domain.Author{
		ID:        ma.ID.Hex(),
		FirstName: ma.FirstName,
		LastName:  ma.LastName,
	}
}

func (r *AuthorRepository) Create(ctx context.Context, a *domain.Author) (*domain.Author, error) {
	res, err := r.coll.InsertOne(ctx, mongoAuthor{FirstName: a.FirstName, LastName: a.LastName})
	if err != nil {
		return nil, fmt.Errorf("insert author: %w", err)
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return r.FindByID(ctx, id.Hex())
}

func (r *AuthorRepository) FindByID(ctx context.Context, id string) (*domain.Author, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrAuthorNotFound
	}
	var ma mongoAuthor
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&ma); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("find author: %w", err)
	}
	a := ma.toDomain()
	r.attachBooks(ctx, &a)
	return &a, nil
}

func (r *AuthorRepository) Update(ctx context.Context, a *domain.Author) (*domain.Author, error) {
	oid, err := primitive.ObjectIDFromHex(a.ID)
	if err != nil {
		return nil, domain.ErrAuthorNotFound
	}
	update := bson.M{"$set": bson.M{"firstname": a.FirstName, "lastname": a.LastName}}
	res, err := r.coll.UpdateByID(ctx, oid, update)
	if err != nil {
		return nil, fmt.Errorf("update author: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrAuthorNotFound
	}
	return r.FindByID(ctx, a.ID)
}

func (r *AuthorRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrAuthorNotFound
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete author: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrAuthorNotFound
	}
	return nil
}

func (r *AuthorRepository) List(ctx context.Context, filter ports.ListFilter) ([]domain.Author, int64, error) {
	query := bson.M{}
	if filter.Query != "" {
		re := primitive.Regex{Pattern: regexp.QuoteMeta(filter.Query), Options: "i"}
		query["$or"] = bson.A{bson.M{"firstname": re}, bson.M{"lastname": re}}
	}

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count authors: %w", err)
	}

	opts := options.Find().
		SetSkip(int64(filter.Page) * int64(filter.Limit)).
		SetLimit(int64(filter.Limit)).
		SetSort(bson.D{{Key: "_id", Value: 1}})

	cur, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list authors: %w", err)
	}
	defer cur.Close(ctx)

	var authors []domain.Author
	for cur.Next(ctx) {
		var ma mongoAuthor
		if err := cur.Decode(&ma); err != nil {
			return nil, 0, fmt.Errorf("decode author: %w", err)
		}
		a := ma.toDomain()
		r.attachBooks(ctx, &a)
		authors = append(authors, a)
	}
	if err := cur.Err(); err != nil {
		return nil, 0, fmt.Errorf("list authors: %w", err)
	}
	return authors, total, nil
}

// attachBooks lists the id/title pairs of books referencing this author.
func (r *AuthorRepository) attachBooks(ctx context.Context, a *domain.Author) {
	cur, err := r.books.Find(ctx, bson.M{"author_ids": a.ID},
		options.Find().SetProjection(bson.M{"title": 1}))
	if err != nil {
		return
	}
	defer cur.Close(ctx)

	for cur.Next(ctx) {
		var ref struct {
			ID    primitive.ObjectID `bson:"_id"`
			Title string             `bson:"title"`
		}
		if err := cur.Decode(&ref); err != nil {
			return
		}
		a.Books = append(a.Books, domain.BookRef{ID: ref.ID.Hex(), Title: ref.Title})
	}
}
