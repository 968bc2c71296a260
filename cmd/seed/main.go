package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"time"

	"cinevault/internal/mongodb"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Drops the movies collection and reseeds it from a JSON fixture.
func main() {
	_ = godotenv.Load()

	fixturePath := flag.String("file", "tests/fixtures/movies.json", "path to the movies fixture")
	flag.Parse()

	ctx := context.Background()
	dbClient, err := mongodb.Connect(ctx)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer dbClient.Disconnect(ctx)

	db := mongodb.NewDB(dbClient)
	coll := db.Collection(mongodb.MoviesCollection)

	data, err := os.ReadFile(*fixturePath)
	if err != nil {
		log.Fatalf("Failed to read fixture file %s: %v", *fixturePath, err)
	}

	var docs []bson.M
	if err := json.Unmarshal(data, &docs); err != nil {
		log.Fatalf("Failed to unmarshal fixture JSON: %v", err)
	}

	now := time.Now()
	toInsert := make([]interface{}, len(docs))
	for i, doc := range docs {
		if _, ok := doc["_id"]; !ok {
			doc["_id"] = primitive.NewObjectID().Hex()
		}
		doc["createdAt"] = now
		doc["updatedAt"] = now
		toInsert[i] = doc
	}

	if err := coll.Drop(ctx); err != nil {
		log.Fatalf("Failed to drop movies collection: %v", err)
	}

	if _, err := coll.InsertMany(ctx, toInsert); err != nil {
		log.Fatalf("Failed to insert seed movies: %v", err)
	}

	log.Printf("✅ Seeded %d movies from %s", len(toInsert), *fixturePath)
}
