package tests

import (
	"encoding/json"
	"net/http"
	"testing"

	"cinevault/internal/mongodb"
	"cinevault/internal/services/movies"
	"cinevault/internal/services/users"

	"github.com/stretchr/testify/require"
)

func TestRateMovie(t *testing.T) {
	const movieId = "665f1b2c8f1a4e0001000001"

	t.Run("Rating requires authentication", func(t *testing.T) {
		resetDB(t)
		seedMovies(t, loadFixture(t, "fixtures/movies.json"))

		resp := doAuthenticatedRequest(t, http.MethodPost,
			testServer.URL+"/api/movies/"+movieId+"/rate",
			movies.RateMovieRequest{Rating: 8}, "")
		defer resp.Body.Close()
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("Running average accumulates with one decimal rounding", func(t *testing.T) {
		resetDB(t)
		seedMovies(t, loadFixture(t, "fixtures/movies.json"))

		session := registerUser(t, users.RegisterRequest{
			Name:     "rater",
			Email:    "rater@test.com",
			Password: "raterpass",
		})

		// Fresh movie with no ratings yet
		_, adminToken := addUserAdminInDb(t, "Admin", "admin@test.com", "adminpass")
		resp := doAuthenticatedRequest(t, http.MethodPost,
			testServer.URL+"/api/movies", validMovieRequest(), adminToken)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		var created mongodb.MovieDb
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
		resp.Body.Close()
		require.Equal(t, float64(0), created.Rating)
		require.Equal(t, 0, created.RatingCount)

		// 7, then 9 (avg 8.0), then 9 (25/3 -> 8.3)
		submitted := []struct {
			rating      float64
			expectedAvg float64
		}{
			{7, 7.0},
			{9, 8.0},
			{9, 8.3},
		}
		var sum float64
		for _, s := range submitted {
			sum += s.rating
			resp := doAuthenticatedRequest(t, http.MethodPost,
				testServer.URL+"/api/movies/"+created.Id+"/rate",
				movies.RateMovieRequest{Rating: s.rating}, session.Token)
			require.Equal(t, http.StatusOK, resp.StatusCode)
			var rateResponse movies.RateMovieResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&rateResponse))
			resp.Body.Close()
			require.InDelta(t, s.expectedAvg, rateResponse.NewRating, 0.0001)
		}

		stored := getMovieFromDb(t, created.Id)
		require.InDelta(t, 8.3, stored.Rating, 0.0001)
		require.Equal(t, sum, stored.TotalRatings)
		require.Equal(t, len(submitted), stored.RatingCount)
	})

	t.Run("Out-of-range ratings are rejected with no side effect", func(t *testing.T) {
		resetDB(t)
		seedMovies(t, loadFixture(t, "fixtures/movies.json"))

		session := registerUser(t, users.RegisterRequest{
			Name:     "rater",
			Email:    "rater@test.com",
			Password: "raterpass",
		})

		before := getMovieFromDb(t, movieId)

		for _, bad := range []float64{0, 0.5, 10.5, 11, -3} {
			resp := doAuthenticatedRequest(t, http.MethodPost,
				testServer.URL+"/api/movies/"+movieId+"/rate",
				movies.RateMovieRequest{Rating: bad}, session.Token)
			require.Equal(t, http.StatusBadRequest, resp.StatusCode, "rating %v must be rejected", bad)
			resp.Body.Close()
		}

		after := getMovieFromDb(t, movieId)
		require.Equal(t, before.TotalRatings, after.TotalRatings)
		require.Equal(t, before.RatingCount, after.RatingCount)
		require.Equal(t, before.Rating, after.Rating)
	})

	t.Run("Rating an unknown movie returns 404", func(t *testing.T) {
		resetDB(t)

		session := registerUser(t, users.RegisterRequest{
			Name:     "rater",
			Email:    "rater@test.com",
			Password: "raterpass",
		})

		resp := doAuthenticatedRequest(t, http.MethodPost,
			testServer.URL+"/api/movies/ffffffffffffffffffffffff/rate",
			movies.RateMovieRequest{Rating: 8}, session.Token)
		defer resp.Body.Close()
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}
