package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/weblibrary/library-system/internal/core/domain"
)

const fileCollection = "files"

type FileRepository struct {
	coll *mongo.Collection
}

func NewFileRepository(db *mongo.Database) *FileRepository {
	return &FileRepository{coll: db.Collection(fileCollection)}
}

type mongoFile struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Filename  string             `bson:"filename"`
	Original  string             `bson:"original"`
	Size      int64              `bson:"size"`
	Mimetype  string             `bson:"mimetype"`
	CreatedBy string             `bson:"created_by"`
}

func (mf mongoFile) toDomain() *domain.StoredFile {
	return &domain.StoredFile{
		ID:        mf.ID.Hex(),
		Filename:  mf.Filename,
		Original:  mf.Original,
		Size:      mf.Size,
		Mimetype:  mf.Mimetype,
		CreatedBy: mf.CreatedBy,
	}
}

func (r *FileRepository) Create(ctx context.Context, f *domain.StoredFile) (*domain.StoredFile, error) {
	doc := mongoFile{
		Filename:  f.Filename,
		Original:  f.Original,
		Size:      f.Size,
		Mimetype:  f.Mimetype,
		CreatedBy: f.CreatedBy,
	}
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert file: %w", err)
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return r.FindByID(ctx, id.Hex())
}

func (r *FileRepository) FindByID(ctx context.Context, id string) (*domain.StoredFile, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrFileNotFound
	}
	var mf mongoFile
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mf); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrFileNotFound
		}
		return nil, fmt.Errorf("find file: %w", err)
	}
	return mf.toDomain(), nil
}

func (r *FileRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrFileNotFound
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete file: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrFileNotFound
	}
	return nil
}
