package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"cinevault/internal/generics"
	"cinevault/internal/logx"
	"cinevault/internal/mongodb"
	"cinevault/internal/services/movies"
)

func RootHandler(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]string{
		"message": "Welcome to CineVault API 🎬",
		"version": "1.0.0",
	})
}

func (api *API) GetMovies(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())

	query := r.URL.Query()
	opts := movies.SearchOptions{
		Search:    query.Get("search"),
		Genre:     query.Get("genre"),
		Year:      generics.StringToInt(query.Get("year")),
		MinRating: generics.StringToFloat(query.Get("minRating")),
		SortBy:    query.Get("sortBy"),
		Order:     query.Get("order"),
		Page:      generics.StringToInt(query.Get("page")),
		Limit:     generics.StringToInt(query.Get("limit")),
	}

	pageOfMovies, err := movies.GetPageOfMovies(api.Db, r.Context(), opts)
	if err != nil {
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to fetch movies from database")
		return
	}

	respondWithJSON(w, http.StatusOK, pageOfMovies)
}

func (api *API) GetMovieById(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())

	movieId := r.PathValue("id")
	if movieId == "" {
		respondWithError(w, http.StatusBadRequest, "Movie id is required")
		return
	}

	movie, err := api.Db.GetMovieById(r.Context(), movieId)
	if err != nil {
		if err == mongodb.ErrRecordNotFound {
			respondWithError(w, http.StatusNotFound, fmt.Sprintf("Movie with id %s not found", movieId))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Database error while getting movie")
		return
	}

	respondWithJSON(w, http.StatusOK, movie)
}

func (api *API) GetGenres(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())

	genres, err := movies.ListGenres(api.Db, r.Context())
	if err != nil {
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Database error while listing genres")
		return
	}

	respondWithJSON(w, http.StatusOK, genres)
}

func (api *API) RateMovie(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())

	movieId := r.PathValue("id")
	if movieId == "" {
		respondWithError(w, http.StatusBadRequest, "Movie id is required")
		return
	}

	var req movies.RateMovieRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}

	ratedMovie, err := movies.RateMovie(api.Db, r.Context(), movieId, req.Rating)
	if err != nil {
		if statusCode, ok := getErrorStatusCode(movies.ErrorMap, err); ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Unexpected error while rating movie")
		return
	}

	respondWithJSON(w, http.StatusOK, movies.RateMovieResponse{
		Message:   "Rating submitted",
		NewRating: ratedMovie.Rating,
	})
}

func (api *API) CreateMovie(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())

	var req movies.MovieRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	movie, err := movies.CreateMovie(api.Db, r.Context(), req)
	if err != nil {
		if statusCode, ok := getErrorStatusCode(movies.ErrorMap, err); ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to add movie")
		return
	}

	respondWithJSON(w, http.StatusCreated, movie)
}

func (api *API) UpdateMovie(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())

	movieId := r.PathValue("id")
	if movieId == "" {
		respondWithError(w, http.StatusBadRequest, "Movie id is required")
		return
	}

	var req movies.MovieRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	movie, err := movies.UpdateMovie(api.Db, r.Context(), movieId, req)
	if err != nil {
		if statusCode, ok := getErrorStatusCode(movies.ErrorMap, err); ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to update movie")
		return
	}

	respondWithJSON(w, http.StatusOK, movie)
}

func (api *API) DeleteMovie(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())

	movieId := r.PathValue("id")
	if movieId == "" {
		respondWithError(w, http.StatusBadRequest, "Movie id is required")
		return
	}

	deletedEntriesCount, err := movies.CascadeDeleteMovie(api.Db, r.Context(), movieId)
	if err != nil {
		if statusCode, ok := getErrorStatusCode(movies.ErrorMap, err); ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Database error during cascade delete")
		return
	}

	if deletedEntriesCount > 0 {
		respondWithJSON(w, http.StatusOK, DefaultResponse{Message: fmt.Sprintf("Movie and %d watchlist entries deleted", deletedEntriesCount)})
	} else {
		respondWithJSON(w, http.StatusOK, DefaultResponse{Message: "Movie deleted successfully"})
	}
}
