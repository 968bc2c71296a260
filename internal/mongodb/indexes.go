package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DeleteAllIndexes deletes all indexes from all collections in the database
// (except the default _id_ index which cannot be deleted)
func DeleteAllIndexes(ctx context.Context, db *mongo.Database) error {
	collections, err := db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("failed to list collections: %w", err)
	}

	for _, collName := range collections {
		coll := db.Collection(collName)

		cursor, err := coll.Indexes().List(ctx)
		if err != nil {
			return fmt.Errorf("failed to list indexes for collection '%s': %w", collName, err)
		}

		for cursor.Next(ctx) {
			var index bson.M
			if err := cursor.Decode(&index); err != nil {
				cursor.Close(ctx)
				return fmt.Errorf("failed to decode index for collection '%s': %w", collName, err)
			}

			indexName, ok := index["name"].(string)
			if !ok {
				continue
			}

			// Skip the default _id_ index as it cannot be deleted
			if indexName == "_id_" {
				continue
			}

			_, err := coll.Indexes().DropOne(ctx, indexName)
			if err != nil {
				cursor.Close(ctx)
				return fmt.Errorf("failed to delete index '%s' from collection '%s': %w", indexName, collName, err)
			}
			fmt.Printf("🗑️  Deleted index '%s' from collection '%s'\n", indexName, collName)
		}

		if err := cursor.Err(); err != nil {
			cursor.Close(ctx)
			return fmt.Errorf("cursor error for collection '%s': %w", collName, err)
		}
		cursor.Close(ctx)
	}

	return nil
}

// CreateAllIndexes creates all indexes for the movies, users and watchlist collections
func CreateAllIndexes(ctx context.Context, db *mongo.Database, reset bool) error {
	if err := CreateUserIndexes(ctx, db, reset); err != nil {
		return fmt.Errorf("failed to create user indexes: %w", err)
	}

	if err := CreateMovieIndexes(ctx, db, reset); err != nil {
		return fmt.Errorf("failed to create movie indexes: %w", err)
	}

	if err := CreateWatchlistIndexes(ctx, db, reset); err != nil {
		return fmt.Errorf("failed to create watchlist indexes: %w", err)
	}

	return nil
}

// CreateUserIndexes creates indexes for the users collection
func CreateUserIndexes(ctx context.Context, db *mongo.Database, reset bool) error {
	coll := db.Collection(UsersCollection)
	usersEmailIndexName := "email_unique"

	// Create unique index on email (case-insensitive)
	// Exclude empty strings and null values from uniqueness constraint
	emailIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "email", Value: 1}},
		Options: options.Index().
			SetUnique(true).
			SetName(usersEmailIndexName).
			SetCollation(&options.Collation{
				Locale:   "en",
				Strength: 2,
			}).
			SetPartialFilterExpression(bson.M{
				"$and": []bson.M{
					{"email": bson.M{"$type": "string"}},
					{"email": bson.M{"$gt": ""}},
				},
			}),
	}
	if err := createIndexIfNotExists(ctx, coll, emailIndex, usersEmailIndexName, reset); err != nil {
		return err
	}

	return nil
}

// CreateMovieIndexes creates indexes for the movies collection
func CreateMovieIndexes(ctx context.Context, db *mongo.Database, reset bool) error {
	coll := db.Collection(MoviesCollection)

	// Text index over title, description and director backing free-text search
	moviesTextIndexName := "title_description_director_text"
	textIndex := mongo.IndexModel{
		Keys: bson.D{
			{Key: "title", Value: "text"},
			{Key: "description", Value: "text"},
			{Key: "director", Value: "text"},
		},
		Options: options.Index().SetName(moviesTextIndexName),
	}
	if err := createIndexIfNotExists(ctx, coll, textIndex, moviesTextIndexName, reset); err != nil {
		return err
	}

	// Unique sparse index on the optional external identifier
	moviesExternalIdIndexName := "externalId_unique"
	externalIdIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "externalId", Value: 1}},
		Options: options.Index().
			SetUnique(true).
			SetSparse(true).
			SetName(moviesExternalIdIndexName),
	}
	if err := createIndexIfNotExists(ctx, coll, externalIdIndex, moviesExternalIdIndexName, reset); err != nil {
		return err
	}

	return nil
}

// CreateWatchlistIndexes creates indexes for the watchlist collection
func CreateWatchlistIndexes(ctx context.Context, db *mongo.Database, reset bool) error {
	coll := db.Collection(WatchlistCollection)
	watchlistIndexName := "userId_and_movieId_unique"

	// Create unique index on userId and movieId so a user can only add a movie once.
	// This index is the correctness backstop for concurrent adds; the
	// application-level pre-check only exists for a friendlier error.
	watchlistIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "userId", Value: 1}, {Key: "movieId", Value: 1}},
		Options: options.Index().
			SetUnique(true).
			SetName(watchlistIndexName),
	}
	if err := createIndexIfNotExists(ctx, coll, watchlistIndex, watchlistIndexName, reset); err != nil {
		return err
	}

	return nil
}

// createIndexIfNotExists checks if an index exists and creates it if it doesn't
// If reset is true, it will delete the existing index and recreate it
func createIndexIfNotExists(ctx context.Context, coll *mongo.Collection, indexModel mongo.IndexModel, indexName string, reset bool) error {
	cursor, err := coll.Indexes().List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list indexes: %w", err)
	}
	defer cursor.Close(ctx)

	indexExists := false
	for cursor.Next(ctx) {
		var index bson.M
		if err := cursor.Decode(&index); err != nil {
			return fmt.Errorf("failed to decode index: %w", err)
		}

		if name, ok := index["name"].(string); ok && name == indexName {
			indexExists = true
			break
		}
	}

	if err := cursor.Err(); err != nil {
		return fmt.Errorf("cursor error: %w", err)
	}

	if indexExists {
		if !reset {
			fmt.Printf("ℹ️  Index '%s' already exists on collection '%s', skipping...\n", indexName, coll.Name())
			return nil
		}
		_, err := coll.Indexes().DropOne(ctx, indexName)
		if err != nil {
			return fmt.Errorf("failed to delete index '%s': %w", indexName, err)
		}
		fmt.Printf("🗑️  Deleted index '%s' on collection '%s'\n", indexName, coll.Name())
	}

	_, err = coll.Indexes().CreateOne(ctx, indexModel)
	if err != nil {
		return fmt.Errorf("failed to create index '%s': %w", indexName, err)
	}

	fmt.Printf("✅ Created index '%s' on collection '%s'\n", indexName, coll.Name())
	return nil
}
