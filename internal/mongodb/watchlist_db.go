package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	StatusWantToWatch = "want_to_watch"
	StatusWatching    = "watching"
	StatusWatched     = "watched"
)

type WatchlistEntryDb struct {
	Id         string    `json:"id" bson:"_id"`
	UserId     string    `json:"userId" bson:"userId"`
	MovieId    string    `json:"movieId" bson:"movieId"`
	Status     string    `json:"status" bson:"status"`
	UserRating *float64  `json:"userRating,omitempty" bson:"userRating,omitempty"`
	Notes      string    `json:"notes" bson:"notes"`
	CreatedAt  time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt" bson:"updatedAt"`
}

// WatchlistEntryWithMovie is a watchlist entry joined with its referenced movie.
type WatchlistEntryWithMovie struct {
	WatchlistEntryDb `bson:",inline"`
	Movie            MovieDb `json:"movie" bson:"movie"`
}

// ----- Methods for the database -----

func (db *DB) AddWatchlistEntry(ctx context.Context, entry WatchlistEntryDb) (WatchlistEntryDb, error) {
	coll := db.Collection(WatchlistCollection)

	entry.Id = primitive.NewObjectID().Hex()
	now := time.Now()
	entry.CreatedAt = now
	entry.UpdatedAt = now

	if _, err := coll.InsertOne(ctx, entry); err != nil {
		return WatchlistEntryDb{}, err
	}

	return entry, nil
}

func (db *DB) GetWatchlistEntryByUserAndMovie(ctx context.Context, userId, movieId string) (WatchlistEntryDb, error) {
	coll := db.Collection(WatchlistCollection)

	filter := bson.M{"userId": userId, "movieId": movieId}

	var entry WatchlistEntryDb
	if err := coll.FindOne(ctx, filter).Decode(&entry); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return WatchlistEntryDb{}, ErrRecordNotFound
		}
		return WatchlistEntryDb{}, err
	}

	return entry, nil
}

// GetWatchlistWithMovies returns the entries owned by userId, each joined with
// its full movie document through a $lookup stage.
func (db *DB) GetWatchlistWithMovies(ctx context.Context, userId string, status string) ([]WatchlistEntryWithMovie, error) {
	coll := db.Collection(WatchlistCollection)

	match := bson.M{"userId": userId}
	if status != "" {
		match["status"] = status
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: match}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         MoviesCollection,
			"localField":   "movieId",
			"foreignField": "_id",
			"as":           "movie",
		}}},
		bson.D{{Key: "$unwind", Value: "$movie"}},
		bson.D{{Key: "$sort", Value: bson.M{"createdAt": -1}}},
	}

	cursor, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		return []WatchlistEntryWithMovie{}, err
	}
	defer cursor.Close(ctx)

	var entries []WatchlistEntryWithMovie
	if err := cursor.All(ctx, &entries); err != nil {
		return []WatchlistEntryWithMovie{}, err
	}

	return entries, nil
}

// UpdateWatchlistEntry applies the patch through a single {_id, userId}
// filter, so ownership verification and mutation happen in one operation.
func (db *DB) UpdateWatchlistEntry(ctx context.Context, entryId, userId string, fields bson.M) (WatchlistEntryDb, error) {
	coll := db.Collection(WatchlistCollection)

	filter := bson.M{"_id": entryId, "userId": userId}

	fields["updatedAt"] = time.Now()

	result, err := coll.UpdateOne(ctx, filter, bson.M{"$set": fields})
	if err != nil {
		return WatchlistEntryDb{}, err
	}
	if result.MatchedCount == 0 {
		return WatchlistEntryDb{}, ErrRecordNotFound
	}

	var entry WatchlistEntryDb
	if err := coll.FindOne(ctx, filter).Decode(&entry); err != nil {
		return WatchlistEntryDb{}, err
	}

	return entry, nil
}

// DeleteWatchlistEntry deletes under the same ownership conjunction as updates.
func (db *DB) DeleteWatchlistEntry(ctx context.Context, entryId, userId string) error {
	coll := db.Collection(WatchlistCollection)

	result, err := coll.DeleteOne(ctx, bson.M{"_id": entryId, "userId": userId})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrRecordNotFound
	}

	return nil
}

func (db *DB) DeleteWatchlistEntriesByMovieId(ctx context.Context, movieId string) (int64, error) {
	coll := db.Collection(WatchlistCollection)

	result, err := coll.DeleteMany(ctx, bson.M{"movieId": movieId})
	if err != nil {
		return 0, err
	}

	return result.DeletedCount, nil
}
