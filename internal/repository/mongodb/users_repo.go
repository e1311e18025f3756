package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/baharkarakas/bookshelf/internal/models"
	"github.com/baharkarakas/bookshelf/internal/repository"
)

type userDoc struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Username string             `bson:"username"`
	Password string             `bson:"password"`
	Role     string             `bson:"role"`
}

func (d userDoc) model() models.User {
	return models.User{ID: d.ID.Hex(), Username: d.Username, PasswordHash: d.Password, Role: d.Role}
}

type usersRepo struct{ coll *mongo.Collection }

func NewUsers(db *mongo.Database) repository.Users {
	return &usersRepo{coll: db.Collection("users")}
}

func (r *usersRepo) Create(ctx context.Context, u models.User) (models.User, error) {
	doc := userDoc{ID: primitive.NewObjectID(), Username: u.Username, Password: u.PasswordHash, Role: u.Role}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.User{}, repository.ErrDuplicate
		}
		return models.User{}, err
	}
	return doc.model(), nil
}

func (r *usersRepo) GetByID(ctx context.Context, id string) (models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.User{}, repository.ErrNotFound
	}
	return r.findOne(ctx, bson.D{{Key: "_id", Value: oid}})
}

func (r *usersRepo) GetByUsername(ctx context.Context, username string) (models.User, error) {
	return r.findOne(ctx, bson.D{{Key: "username", Value: username}})
}

func (r *usersRepo) findOne(ctx context.Context, filter bson.D) (models.User, error) {
	var d userDoc
	err := r.coll.FindOne(ctx, filter).Decode(&d)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, repository.ErrNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	return d.model(), nil
}

func (r *usersRepo) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.D{})
}
