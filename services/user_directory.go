package services

import (
	"context"
	"fmt"
	"time"

	"staffhub/db"
	"staffhub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoUserDirectory resolves accounts against the users collection.
type MongoUserDirectory struct{}

func NewMongoUserDirectory() *MongoUserDirectory {
	return &MongoUserDirectory{}
}

func (d *MongoUserDirectory) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	dbCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var user models.User
	err := db.GetCollection(db.UsersCollection).FindOne(dbCtx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, fmt.Errorf("no user with email %s", email)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	return &user, nil
}

func (d *MongoUserDirectory) UpdatePassword(ctx context.Context, email, passwordHash string) error {
	dbCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := db.GetCollection(db.UsersCollection).UpdateOne(dbCtx,
		bson.M{"email": email},
		bson.M{"$set": bson.M{"password": passwordHash, "updatedAt": time.Now()}},
	)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("no user with email %s", email)
	}
	return nil
}
