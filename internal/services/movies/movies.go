package movies

import (
	"context"
	"strings"

	"cinevault/internal/mongodb"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	defaultPageSize = 12
	maxPageSize     = 100
	defaultSortBy   = "createdAt"
)

// BuildSearchFilter builds the Mongo filter as a conjunction of only the
// fields actually supplied; absent fields impose no constraint.
func BuildSearchFilter(opts SearchOptions) bson.M {
	filter := bson.M{}

	if opts.Search != "" {
		filter["$text"] = bson.M{"$search": opts.Search}
	}
	if opts.Genre != "" {
		genres := strings.Split(opts.Genre, ",")
		for i, g := range genres {
			genres[i] = strings.TrimSpace(g)
		}
		filter["genre"] = bson.M{"$in": genres}
	}
	if opts.Year != 0 {
		filter["releaseYear"] = opts.Year
	}
	if opts.MinRating != 0 {
		filter["rating"] = bson.M{"$gte": opts.MinRating}
	}

	return filter
}

// NormalizeSearchOptions applies the documented defaults and bounds.
func NormalizeSearchOptions(opts SearchOptions) SearchOptions {
	if opts.Page <= 0 {
		opts.Page = 1
	}
	if opts.Limit <= 0 {
		opts.Limit = defaultPageSize
	}
	if opts.Limit > maxPageSize {
		opts.Limit = maxPageSize
	}
	if opts.SortBy == "" {
		opts.SortBy = defaultSortBy
	}
	if opts.Order != "asc" {
		opts.Order = "desc"
	}
	return opts
}

func BuildFindOptions(opts SearchOptions) *options.FindOptions {
	sortOrder := -1
	if opts.Order == "asc" {
		sortOrder = 1
	}

	skip := (int64(opts.Page) - 1) * int64(opts.Limit)

	// An unknown sortBy field is passed through untouched: Mongo sorts
	// documents missing the field as null, which degrades to insertion
	// order among them.
	return options.Find().
		SetLimit(int64(opts.Limit)).
		SetSkip(skip).
		SetSort(bson.D{{Key: opts.SortBy, Value: sortOrder}})
}

/*
GetPageOfMovies translates the search options into a filtered, sorted and
paginated catalog query and returns the page envelope.

The count runs as a separate operation under the same filter, so the total
may be marginally stale relative to the returned page under concurrent
writes. That inconsistency is accepted; there is no snapshot isolation
between the two reads.
*/
func GetPageOfMovies(db *mongodb.DB, ctx context.Context, opts SearchOptions) (MoviesPageResponse, error) {
	opts = NormalizeSearchOptions(opts)

	filter := BuildSearchFilter(opts)
	findOpts := BuildFindOptions(opts)

	totalMovies, err := db.CountTotalMovies(ctx, filter)
	if err != nil {
		return MoviesPageResponse{}, err
	}

	pageOfMovies, err := db.GetMovies(ctx, filter, findOpts)
	if err != nil {
		return MoviesPageResponse{}, err
	}

	if pageOfMovies == nil {
		pageOfMovies = []mongodb.MovieDb{}
	}

	totalPages := (totalMovies + opts.Limit - 1) / opts.Limit

	return MoviesPageResponse{
		Movies:      pageOfMovies,
		CurrentPage: opts.Page,
		TotalPages:  totalPages,
		TotalMovies: totalMovies,
	}, nil
}

func CreateMovie(db *mongodb.DB, ctx context.Context, req MovieRequest) (mongodb.MovieDb, error) {
	if err := ValidateMovieRequest(req); err != nil {
		return mongodb.MovieDb{}, err
	}

	movie := mapRequestToDbMovie(req)

	created, err := db.AddMovie(ctx, movie)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return mongodb.MovieDb{}, ErrDuplicateExternalId
		}
		return mongodb.MovieDb{}, err
	}

	return created, nil
}

func UpdateMovie(db *mongodb.DB, ctx context.Context, movieId string, req MovieRequest) (mongodb.MovieDb, error) {
	if err := ValidateMovieRequest(req); err != nil {
		return mongodb.MovieDb{}, err
	}

	updated, err := db.UpdateMovie(ctx, movieId, mapRequestToUpdateFields(req))
	if err != nil {
		if err == mongodb.ErrRecordNotFound {
			return mongodb.MovieDb{}, ErrMovieNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return mongodb.MovieDb{}, ErrDuplicateExternalId
		}
		return mongodb.MovieDb{}, err
	}

	return updated, nil
}

// CascadeDeleteMovie deletes the movie and the watchlist entries that reference it.
func CascadeDeleteMovie(db *mongodb.DB, ctx context.Context, movieId string) (int64, error) {
	deleted, err := db.DeleteMovie(ctx, movieId)
	if err != nil {
		return 0, err
	}
	if !deleted {
		return 0, ErrMovieNotFound
	}

	deletedEntriesCount, err := db.DeleteWatchlistEntriesByMovieId(ctx, movieId)
	if err != nil {
		return 0, err
	}

	return deletedEntriesCount, nil
}

// RateMovie folds a single rating into the movie's running statistics.
// The bounds check happens here, before any storage write; an out-of-range
// rating has no side effect. There is no operation to retract a rating.
func RateMovie(db *mongodb.DB, ctx context.Context, movieId string, rating float64) (mongodb.MovieDb, error) {
	if rating < 1 || rating > 10 {
		return mongodb.MovieDb{}, ErrRatingOutOfRange
	}

	movie, err := db.ApplyRating(ctx, movieId, rating)
	if err != nil {
		if err == mongodb.ErrRecordNotFound {
			return mongodb.MovieDb{}, ErrMovieNotFound
		}
		return mongodb.MovieDb{}, err
	}

	return movie, nil
}

func ListGenres(db *mongodb.DB, ctx context.Context) ([]string, error) {
	genres, err := db.GetDistinctGenres(ctx)
	if err != nil {
		return nil, err
	}
	if genres == nil {
		genres = []string{}
	}
	return genres, nil
}
