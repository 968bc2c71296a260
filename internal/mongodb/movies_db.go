package mongodb

import (
	"context"
	"errors"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ----- Types for the database -----

type MovieDb struct {
	Id           string    `json:"id" bson:"_id"`
	Title        string    `json:"title" bson:"title"`
	Description  string    `json:"description" bson:"description"`
	Genre        []string  `json:"genre" bson:"genre"`
	ReleaseYear  int       `json:"releaseYear" bson:"releaseYear"`
	Duration     int       `json:"duration" bson:"duration"`
	Director     string    `json:"director" bson:"director"`
	Cast         []string  `json:"cast" bson:"cast"`
	Language     string    `json:"language" bson:"language"`
	Country      string    `json:"country" bson:"country"`
	Rating       float64   `json:"rating" bson:"rating"`
	TotalRatings float64   `json:"totalRatings" bson:"totalRatings"`
	RatingCount  int       `json:"ratingCount" bson:"ratingCount"`
	PosterURL    string    `json:"posterUrl" bson:"posterUrl"`
	TrailerURL   string    `json:"trailerUrl" bson:"trailerUrl"`
	ExternalId   string    `json:"externalId,omitempty" bson:"externalId,omitempty"`
	CreatedAt    time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt" bson:"updatedAt"`
}

// ----- Methods for the database -----

func (db *DB) GetMovieById(ctx context.Context, id string) (MovieDb, error) {
	coll := db.Collection(MoviesCollection)
	var movieDb MovieDb
	if err := coll.FindOne(ctx, bson.M{"_id": id}).Decode(&movieDb); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return MovieDb{}, ErrRecordNotFound
		}
		return MovieDb{}, err
	}
	return movieDb, nil
}

func (db *DB) AddMovie(ctx context.Context, movie MovieDb) (MovieDb, error) {
	coll := db.Collection(MoviesCollection)

	movie.Id = primitive.NewObjectID().Hex()
	now := time.Now()
	movie.CreatedAt = now
	movie.UpdatedAt = now

	if _, err := coll.InsertOne(ctx, movie); err != nil {
		return MovieDb{}, err
	}

	return movie, nil
}

// UpdateMovie replaces the mutable catalog fields and returns the updated document.
// The rating counters are not touched here; they only move through ApplyRating.
func (db *DB) UpdateMovie(ctx context.Context, id string, fields bson.M) (MovieDb, error) {
	coll := db.Collection(MoviesCollection)

	fields["updatedAt"] = time.Now()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated MovieDb
	err := coll.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": fields},
		opts,
	).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return MovieDb{}, ErrRecordNotFound
		}
		return MovieDb{}, err
	}

	return updated, nil
}

func (db *DB) DeleteMovie(ctx context.Context, id string) (bool, error) {
	coll := db.Collection(MoviesCollection)
	res, err := coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

func (db *DB) GetMovies(ctx context.Context, args ...any) ([]MovieDb, error) {
	coll := db.Collection(MoviesCollection)

	filter, opts := ResolveFilterAndOptionsSearch(args...)
	cursor, err := coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var allMovies []MovieDb
	if err := cursor.All(ctx, &allMovies); err != nil {
		return []MovieDb{}, err
	}

	return allMovies, nil
}

func (db *DB) CountTotalMovies(ctx context.Context, args ...any) (int, error) {
	coll := db.Collection(MoviesCollection)

	filter, _ := ResolveFilterAndOptionsSearch(args...)
	totalMovies, err := coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, err
	}

	return int(totalMovies), nil
}

func (db *DB) MovieExists(ctx context.Context, id string) (bool, error) {
	coll := db.Collection(MoviesCollection)

	// Only ask MongoDB for the _id field
	opts := options.FindOne().SetProjection(bson.M{"_id": 1})

	err := coll.FindOne(ctx, bson.M{"_id": id}, opts).Err()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

/*
ApplyRating folds a new rating into the movie document with a single
aggregation-pipeline update: the counters are incremented and the one-decimal
average recomputed from them inside the same atomic operation, so two
concurrent raters can neither lose an increment nor persist a stale average.
*/
func (db *DB) ApplyRating(ctx context.Context, id string, rating float64) (MovieDb, error) {
	coll := db.Collection(MoviesCollection)

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	pipeline := bson.A{
		bson.M{"$set": bson.M{
			"totalRatings": bson.M{"$add": bson.A{"$totalRatings", rating}},
			"ratingCount":  bson.M{"$add": bson.A{"$ratingCount", 1}},
			"updatedAt":    "$$NOW",
		}},
		bson.M{"$set": bson.M{
			"rating": bson.M{"$round": bson.A{
				bson.M{"$divide": bson.A{"$totalRatings", "$ratingCount"}}, 1,
			}},
		}},
	}

	var movie MovieDb
	err := coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, pipeline, opts).Decode(&movie)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return MovieDb{}, ErrRecordNotFound
		}
		return MovieDb{}, err
	}

	return movie, nil
}

func (db *DB) GetDistinctGenres(ctx context.Context) ([]string, error) {
	coll := db.Collection(MoviesCollection)

	values, err := coll.Distinct(ctx, "genre", bson.M{})
	if err != nil {
		return nil, err
	}

	genres := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			genres = append(genres, s)
		}
	}
	sort.Strings(genres)

	return genres, nil
}
