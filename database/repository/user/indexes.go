package userRepo

import (
	"fmt"
	"time"

	"calmfix/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// ensureIndexes backs the unique id/email constraints and the signup-order listing.
func (r *MongoUserRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("users_id_unique"),
		},
		{
			// Emails are stored lowercased, so a plain unique index is case-insensitive in practice.
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("users_email_unique"),
		},
		{
			Keys:    bson.D{{Key: "created_at", Value: 1}},
			Options: options.Index().SetName("users_created_at"),
		},
	}

	names, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("users: ensure indexes: %w", err)
	}
	utils.GetLogger().Debug("user indexes ready", zap.Strings("indexes", names))
	return nil
}
