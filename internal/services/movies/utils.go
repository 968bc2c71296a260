package movies

import (
	"errors"
	"net/http"
	"time"
)

const minReleaseYear = 1888

// Genres is the fixed set of catalog genres.
var Genres = []string{
	"Action", "Adventure", "Animation", "Comedy", "Crime",
	"Documentary", "Drama", "Fantasy", "Horror", "Mystery",
	"Romance", "Sci-Fi", "Thriller", "Western", "Biography",
}

var genreSet = func() map[string]bool {
	set := make(map[string]bool, len(Genres))
	for _, g := range Genres {
		set[g] = true
	}
	return set
}()

var (
	ErrTitleRequired       = errors.New("movie title is required")
	ErrDescriptionRequired = errors.New("description is required")
	ErrDirectorRequired    = errors.New("director is required")
	ErrGenreRequired       = errors.New("at least one genre is required")
	ErrUnknownGenre        = errors.New("genre is not one of the supported genres")
	ErrInvalidReleaseYear  = errors.New("release year is out of range")
	ErrInvalidDuration     = errors.New("duration must be a positive number of minutes")
	ErrRatingOutOfRange    = errors.New("rating must be between 1 and 10")
	ErrMovieNotFound       = errors.New("movie not found")
	ErrDuplicateExternalId = errors.New("a movie with this external id already exists")
)

var ErrorMap = map[error]int{
	ErrTitleRequired:       http.StatusBadRequest,
	ErrDescriptionRequired: http.StatusBadRequest,
	ErrDirectorRequired:    http.StatusBadRequest,
	ErrGenreRequired:       http.StatusBadRequest,
	ErrUnknownGenre:        http.StatusBadRequest,
	ErrInvalidReleaseYear:  http.StatusBadRequest,
	ErrInvalidDuration:     http.StatusBadRequest,
	ErrRatingOutOfRange:    http.StatusBadRequest,
	ErrMovieNotFound:       http.StatusNotFound,
	ErrDuplicateExternalId: http.StatusConflict,
}

func ValidateMovieRequest(req MovieRequest) error {
	if req.Title == "" {
		return ErrTitleRequired
	}
	if req.Description == "" {
		return ErrDescriptionRequired
	}
	if req.Director == "" {
		return ErrDirectorRequired
	}
	if len(req.Genre) == 0 {
		return ErrGenreRequired
	}
	for _, g := range req.Genre {
		if !genreSet[g] {
			return ErrUnknownGenre
		}
	}
	if req.ReleaseYear < minReleaseYear || req.ReleaseYear > time.Now().Year()+5 {
		return ErrInvalidReleaseYear
	}
	if req.Duration <= 0 {
		return ErrInvalidDuration
	}
	return nil
}
