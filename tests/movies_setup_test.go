package tests

import (
	"context"
	"testing"

	"cinevault/internal/mongodb"
	"cinevault/internal/services/movies"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func getMovieFromDb(t *testing.T, movieId string) mongodb.MovieDb {
	t.Helper()

	ctx := context.Background()
	coll := testClient.Database(TEST_DB_NAME).Collection(mongodb.MoviesCollection)

	var movie mongodb.MovieDb
	err := coll.FindOne(ctx, bson.M{"_id": movieId}).Decode(&movie)
	require.NoError(t, err, "error querying a movie from db")

	return movie
}

func validMovieRequest() movies.MovieRequest {
	return movies.MovieRequest{
		Title:       "Arrival",
		Description: "A linguist works with the military to communicate with alien lifeforms.",
		Genre:       []string{"Drama", "Sci-Fi"},
		ReleaseYear: 2016,
		Duration:    116,
		Director:    "Denis Villeneuve",
		Cast:        []string{"Amy Adams", "Jeremy Renner"},
	}
}
