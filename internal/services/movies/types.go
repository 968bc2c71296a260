package movies

import "cinevault/internal/mongodb"

// SearchOptions carries the recognized catalog query parameters.
// Zero values mean "not supplied" and impose no constraint.
type SearchOptions struct {
	Search    string
	Genre     string
	Year      int
	MinRating float64
	SortBy    string
	Order     string
	Page      int
	Limit     int
}

type MoviesPageResponse struct {
	Movies      []mongodb.MovieDb `json:"movies"`
	CurrentPage int               `json:"currentPage"`
	TotalPages  int               `json:"totalPages"`
	TotalMovies int               `json:"totalMovies"`
}

type MovieRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Genre       []string `json:"genre"`
	ReleaseYear int      `json:"releaseYear"`
	Duration    int      `json:"duration"`
	Director    string   `json:"director"`
	Cast        []string `json:"cast"`
	Language    string   `json:"language"`
	Country     string   `json:"country"`
	PosterURL   string   `json:"posterUrl"`
	TrailerURL  string   `json:"trailerUrl"`
	ExternalId  string   `json:"externalId,omitempty"`
}

type RateMovieRequest struct {
	Rating float64 `json:"rating"`
}

type RateMovieResponse struct {
	Message   string  `json:"message"`
	NewRating float64 `json:"newRating"`
}
