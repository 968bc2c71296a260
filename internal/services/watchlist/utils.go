package watchlist

import (
	"errors"
	"net/http"

	"cinevault/internal/mongodb"
)

var (
	ErrMovieIdRequired       = errors.New("movieId is required")
	ErrMovieNotFound         = errors.New("movie not found")
	ErrEntryNotFound         = errors.New("watchlist entry not found")
	ErrMovieAlreadyInList    = errors.New("movie already in watchlist")
	ErrInvalidStatus         = errors.New("status must be one of want_to_watch, watching, watched")
	ErrUserRatingOutOfRange  = errors.New("userRating must be between 1 and 10")
	ErrNoFieldsToUpdate      = errors.New("no fields to update")
)

var ErrorMap = map[error]int{
	ErrMovieIdRequired:      http.StatusBadRequest,
	ErrMovieNotFound:        http.StatusNotFound,
	ErrEntryNotFound:        http.StatusNotFound,
	ErrMovieAlreadyInList:   http.StatusConflict,
	ErrInvalidStatus:        http.StatusBadRequest,
	ErrUserRatingOutOfRange: http.StatusBadRequest,
	ErrNoFieldsToUpdate:     http.StatusBadRequest,
}

func IsValidStatus(status string) bool {
	switch status {
	case mongodb.StatusWantToWatch, mongodb.StatusWatching, mongodb.StatusWatched:
		return true
	}
	return false
}
