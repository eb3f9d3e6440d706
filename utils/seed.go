package utils

import (
	"context"
	"log"
	"time"

	"staffhub/config"
	"staffhub/db"
	"staffhub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// SeedSuperadmin makes sure a superadmin login exists so a fresh database is
// usable. Does nothing when the account is already there or seeding is not
// configured.
func SeedSuperadmin(cfg *config.Config) {
	email := cfg.Seed.SuperadminEmail
	password := cfg.Seed.SuperadminPassword
	if email == "" || password == "" {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	collection := db.GetCollection(db.UsersCollection)
	err := collection.FindOne(ctx, bson.M{"email": email}).Err()
	if err == nil {
		return
	}
	if err != mongo.ErrNoDocuments {
		log.Printf("Superadmin seed check failed: %v", err)
		return
	}

	hashed, err := HashPassword(password)
	if err != nil {
		log.Printf("Superadmin seed failed: %v", err)
		return
	}

	now := time.Now()
	user := models.User{
		ID:        primitive.NewObjectID(),
		Email:     email,
		Password:  hashed,
		Name:      ExtractNameFromEmail(email),
		Roles:     []string{models.RoleSuperadmin},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := collection.InsertOne(ctx, user); err != nil {
		log.Printf("Superadmin seed insert failed: %v", err)
		return
	}
	log.Printf("Seeded superadmin account %s", email)
}
