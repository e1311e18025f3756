package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/baharkarakas/bookshelf/internal/criteria"
	"github.com/baharkarakas/bookshelf/internal/models"
	"github.com/baharkarakas/bookshelf/internal/repository"
)

type bookDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Title     string             `bson:"title"`
	Author    string             `bson:"author"`
	Year      *int               `bson:"year,omitempty"`
	Tags      []string           `bson:"tags"`
	Owner     primitive.ObjectID `bson:"owner"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

func (d bookDoc) model() models.Book {
	tags := d.Tags
	if tags == nil {
		tags = []string{}
	}
	return models.Book{
		ID:        d.ID.Hex(),
		Title:     d.Title,
		Author:    d.Author,
		Year:      d.Year,
		Tags:      tags,
		Owner:     d.Owner.Hex(),
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

type booksRepo struct{ coll *mongo.Collection }

func NewBooks(db *mongo.Database) repository.Books {
	return &booksRepo{coll: db.Collection("books")}
}

func (r *booksRepo) Create(ctx context.Context, b models.Book) (models.Book, error) {
	owner, err := primitive.ObjectIDFromHex(b.Owner)
	if err != nil {
		return models.Book{}, repository.ErrInvalidID
	}
	now := time.Now().UTC().Truncate(time.Millisecond)
	doc := bookDoc{
		ID:        primitive.NewObjectID(),
		Title:     b.Title,
		Author:    b.Author,
		Year:      b.Year,
		Tags:      b.Tags,
		Owner:     owner,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if doc.Tags == nil {
		doc.Tags = []string{}
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return models.Book{}, err
	}
	return doc.model(), nil
}

func (r *booksRepo) Find(ctx context.Context, c criteria.Criteria) ([]models.Book, error) {
	filter, err := bookFilter(c)
	if errors.Is(err, repository.ErrInvalidID) {
		// nothing can be owned by a malformed id
		return []models.Book{}, nil
	}
	if err != nil {
		return nil, err
	}
	cur, err := r.coll.Find(ctx, filter, findOptions(c))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.Book{}
	for cur.Next(ctx) {
		var d bookDoc
		if err := cur.Decode(&d); err != nil {
			return nil, err
		}
		out = append(out, d.model())
	}
	return out, cur.Err()
}

func (r *booksRepo) FindOne(ctx context.Context, t criteria.Target) (models.Book, error) {
	filter, err := targetFilter(t)
	if err != nil {
		return models.Book{}, err
	}
	var d bookDoc
	err = r.coll.FindOne(ctx, filter).Decode(&d)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Book{}, repository.ErrNotFound
	}
	if err != nil {
		return models.Book{}, err
	}
	return d.model(), nil
}

func (r *booksRepo) Update(ctx context.Context, t criteria.Target, p models.BookPatch) (models.UpdateResult, error) {
	filter, err := targetFilter(t)
	if err != nil {
		return models.UpdateResult{}, err
	}
	set := patchSet(p)
	if len(set) == 0 {
		n, err := r.coll.CountDocuments(ctx, filter)
		return models.UpdateResult{Acknowledged: err == nil, MatchedCount: n}, err
	}
	set = append(set, bson.E{Key: "updatedAt", Value: time.Now().UTC().Truncate(time.Millisecond)})
	res, err := r.coll.UpdateOne(ctx, filter, bson.D{{Key: "$set", Value: set}})
	if err != nil {
		return models.UpdateResult{}, err
	}
	return models.UpdateResult{Acknowledged: true, MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}, nil
}

func (r *booksRepo) Delete(ctx context.Context, t criteria.Target) (models.DeleteResult, error) {
	filter, err := targetFilter(t)
	if err != nil {
		return models.DeleteResult{}, err
	}
	res, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return models.DeleteResult{}, err
	}
	return models.DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}, nil
}
