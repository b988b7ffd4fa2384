// Command seedadmin provisions the Admin credential out-of-band. The API
// never creates admins; run this once against the target database:
//
//	seedadmin -username admin -password <secret> [-role admin]
package main

import (
	"context"
	"flag"
	"time"

	"github.com/devfolio/core/internal/config"
	"github.com/devfolio/core/internal/database"
	"github.com/devfolio/core/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	configPath := flag.String("config", config.DefaultConfigPath, "Path to YAML config file")
	username := flag.String("username", "admin", "Admin username")
	password := flag.String("password", "", "Admin password (required)")
	role := flag.String("role", "admin", "Admin role")
	flag.Parse()

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	if *password == "" {
		logger.Fatal("password is required")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := database.New(cfg.MongoURI, cfg.MongoDB, logger).Get(ctx)
	if err != nil {
		logger.Fatal("failed to connect", zap.Error(err))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		logger.Fatal("failed to hash password", zap.Error(err))
	}

	_, err = db.Collection(models.CollectionAdmins).UpdateOne(ctx,
		bson.M{"username": *username},
		bson.M{
			"$set":         bson.M{"passwordHash": string(hash), "role": *role},
			"$setOnInsert": bson.M{"username": *username, "createdAt": time.Now().UTC()},
		},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		logger.Fatal("failed to upsert admin", zap.Error(err))
	}

	logger.Info("admin provisioned", zap.String("username", *username), zap.String("role", *role))
}
