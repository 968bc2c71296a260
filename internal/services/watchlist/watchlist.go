package watchlist

import (
	"context"
	"errors"

	"cinevault/internal/mongodb"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// GetWatchlist returns the entries owned by userId, optionally restricted to
// one status, each expanded with its referenced movie.
func GetWatchlist(db *mongodb.DB, ctx context.Context, userId, status string) ([]mongodb.WatchlistEntryWithMovie, error) {
	if status != "" && !IsValidStatus(status) {
		return nil, ErrInvalidStatus
	}

	entries, err := db.GetWatchlistWithMovies(ctx, userId, status)
	if err != nil {
		return nil, err
	}

	if entries == nil {
		entries = []mongodb.WatchlistEntryWithMovie{}
	}

	return entries, nil
}

func AddToWatchlist(db *mongodb.DB, ctx context.Context, userId string, req AddEntryRequest) (mongodb.WatchlistEntryWithMovie, error) {
	if req.MovieId == "" {
		return mongodb.WatchlistEntryWithMovie{}, ErrMovieIdRequired
	}

	status := req.Status
	if status == "" {
		status = mongodb.StatusWantToWatch
	}
	if !IsValidStatus(status) {
		return mongodb.WatchlistEntryWithMovie{}, ErrInvalidStatus
	}

	// The full movie document is only needed for the response, so the
	// existence check is a projected lookup.
	exists, err := db.MovieExists(ctx, req.MovieId)
	if err != nil {
		return mongodb.WatchlistEntryWithMovie{}, err
	}
	if !exists {
		return mongodb.WatchlistEntryWithMovie{}, ErrMovieNotFound
	}

	// Friendlier error for the common case; the unique (userId, movieId)
	// index is the backstop, so a race between two adds still surfaces as a
	// duplicate key on the loser.
	if _, err := db.GetWatchlistEntryByUserAndMovie(ctx, userId, req.MovieId); err == nil {
		return mongodb.WatchlistEntryWithMovie{}, ErrMovieAlreadyInList
	} else if !errors.Is(err, mongodb.ErrRecordNotFound) {
		return mongodb.WatchlistEntryWithMovie{}, err
	}

	entry, err := db.AddWatchlistEntry(ctx, mongodb.WatchlistEntryDb{
		UserId:  userId,
		MovieId: req.MovieId,
		Status:  status,
		Notes:   req.Notes,
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return mongodb.WatchlistEntryWithMovie{}, ErrMovieAlreadyInList
		}
		return mongodb.WatchlistEntryWithMovie{}, err
	}

	movie, err := db.GetMovieById(ctx, req.MovieId)
	if err != nil && !errors.Is(err, mongodb.ErrRecordNotFound) {
		return mongodb.WatchlistEntryWithMovie{}, err
	}

	return mongodb.WatchlistEntryWithMovie{
		WatchlistEntryDb: entry,
		Movie:            movie,
	}, nil
}

// UpdateEntry patches an entry the caller owns. The {entryId, userId}
// conjunction goes to storage as a single filter, so there is no window
// between verifying ownership and mutating.
func UpdateEntry(db *mongodb.DB, ctx context.Context, userId, entryId string, req UpdateEntryRequest) (mongodb.WatchlistEntryWithMovie, error) {
	fields := bson.M{}

	if req.Status != nil {
		if !IsValidStatus(*req.Status) {
			return mongodb.WatchlistEntryWithMovie{}, ErrInvalidStatus
		}
		fields["status"] = *req.Status
	}
	if req.UserRating != nil {
		if *req.UserRating < 1 || *req.UserRating > 10 {
			return mongodb.WatchlistEntryWithMovie{}, ErrUserRatingOutOfRange
		}
		fields["userRating"] = *req.UserRating
	}
	if req.Notes != nil {
		fields["notes"] = *req.Notes
	}

	if len(fields) == 0 {
		return mongodb.WatchlistEntryWithMovie{}, ErrNoFieldsToUpdate
	}

	entry, err := db.UpdateWatchlistEntry(ctx, entryId, userId, fields)
	if err != nil {
		if errors.Is(err, mongodb.ErrRecordNotFound) {
			return mongodb.WatchlistEntryWithMovie{}, ErrEntryNotFound
		}
		return mongodb.WatchlistEntryWithMovie{}, err
	}

	movie, err := db.GetMovieById(ctx, entry.MovieId)
	if err != nil && !errors.Is(err, mongodb.ErrRecordNotFound) {
		return mongodb.WatchlistEntryWithMovie{}, err
	}

	return mongodb.WatchlistEntryWithMovie{
		WatchlistEntryDb: entry,
		Movie:            movie,
	}, nil
}

// RemoveEntry deletes under the same ownership conjunction as UpdateEntry.
func RemoveEntry(db *mongodb.DB, ctx context.Context, userId, entryId string) error {
	err := db.DeleteWatchlistEntry(ctx, entryId, userId)
	if err != nil {
		if errors.Is(err, mongodb.ErrRecordNotFound) {
			return ErrEntryNotFound
		}
		return err
	}
	return nil
}
