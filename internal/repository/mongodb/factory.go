package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	repo "github.com/baharkarakas/bookshelf/internal/repository"
)

func NewRepositories(client *mongo.Client, dbName string) repo.Repositories {
	db := client.Database(dbName)
	return repo.Repositories{
		Books: NewBooks(db),
		Users: NewUsers(db),
		Close: client.Disconnect,
	}
}

// EnsureIndexes creates the lookup indexes and the unique username index
// that keeps concurrent first-boot seeding from duplicating users.
func EnsureIndexes(ctx context.Context, client *mongo.Client, dbName string) error {
	db := client.Database(dbName)
	_, err := db.Collection("books").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "title", Value: 1}, {Key: "author", Value: 1}}},
		{Keys: bson.D{{Key: "tags", Value: 1}}},
		{Keys: bson.D{{Key: "owner", Value: 1}, {Key: "createdAt", Value: -1}}},
	})
	if err != nil {
		return err
	}
	_, err = db.Collection("users").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
