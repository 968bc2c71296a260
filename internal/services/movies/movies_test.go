package movies

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestBuildSearchFilter(t *testing.T) {
	t.Run("No options means an empty filter", func(t *testing.T) {
		require.Equal(t, bson.M{}, BuildSearchFilter(SearchOptions{}))
	})

	t.Run("Text search uses the text index", func(t *testing.T) {
		filter := BuildSearchFilter(SearchOptions{Search: "nolan"})
		require.Equal(t, bson.M{"$search": "nolan"}, filter["$text"])
	})

	t.Run("Genre list is split and trimmed", func(t *testing.T) {
		filter := BuildSearchFilter(SearchOptions{Genre: "Drama, Sci-Fi ,Crime"})
		require.Equal(t, bson.M{"$in": []string{"Drama", "Sci-Fi", "Crime"}}, filter["genre"])
	})

	t.Run("All options combine as a conjunction", func(t *testing.T) {
		filter := BuildSearchFilter(SearchOptions{
			Search:    "space",
			Genre:     "Sci-Fi",
			Year:      2014,
			MinRating: 8,
		})

		require.Len(t, filter, 4)
		require.Equal(t, 2014, filter["releaseYear"])
		require.Equal(t, bson.M{"$gte": float64(8)}, filter["rating"])
	})
}

func TestNormalizeSearchOptions(t *testing.T) {
	t.Run("Defaults are applied to zero values", func(t *testing.T) {
		opts := NormalizeSearchOptions(SearchOptions{})

		require.Equal(t, 1, opts.Page)
		require.Equal(t, defaultPageSize, opts.Limit)
		require.Equal(t, defaultSortBy, opts.SortBy)
		require.Equal(t, "desc", opts.Order)
	})

	t.Run("Negative page and limit fall back to defaults", func(t *testing.T) {
		opts := NormalizeSearchOptions(SearchOptions{Page: -2, Limit: -5})

		require.Equal(t, 1, opts.Page)
		require.Equal(t, defaultPageSize, opts.Limit)
	})

	t.Run("Limit is capped", func(t *testing.T) {
		opts := NormalizeSearchOptions(SearchOptions{Limit: 5000})
		require.Equal(t, maxPageSize, opts.Limit)
	})

	t.Run("Unknown order collapses to desc", func(t *testing.T) {
		opts := NormalizeSearchOptions(SearchOptions{Order: "sideways"})
		require.Equal(t, "desc", opts.Order)
	})

	t.Run("Explicit values survive untouched", func(t *testing.T) {
		opts := NormalizeSearchOptions(SearchOptions{
			Page: 3, Limit: 20, SortBy: "rating", Order: "asc",
		})

		require.Equal(t, 3, opts.Page)
		require.Equal(t, 20, opts.Limit)
		require.Equal(t, "rating", opts.SortBy)
		require.Equal(t, "asc", opts.Order)
	})
}

func TestBuildFindOptions(t *testing.T) {
	t.Run("Skip follows from page and limit", func(t *testing.T) {
		findOpts := BuildFindOptions(SearchOptions{Page: 3, Limit: 12, SortBy: "createdAt", Order: "desc"})

		require.Equal(t, int64(24), *findOpts.Skip)
		require.Equal(t, int64(12), *findOpts.Limit)
		require.Equal(t, bson.D{{Key: "createdAt", Value: -1}}, findOpts.Sort)
	})

	t.Run("Ascending order flips the sort direction", func(t *testing.T) {
		findOpts := BuildFindOptions(SearchOptions{Page: 1, Limit: 10, SortBy: "title", Order: "asc"})
		require.Equal(t, bson.D{{Key: "title", Value: 1}}, findOpts.Sort)
	})
}

func TestValidateMovieRequest(t *testing.T) {
	valid := MovieRequest{
		Title:       "Whiplash",
		Description: "A drummer meets a ruthless instructor.",
		Genre:       []string{"Drama"},
		ReleaseYear: 2014,
		Duration:    106,
		Director:    "Damien Chazelle",
	}

	require.NoError(t, ValidateMovieRequest(valid))

	cases := []struct {
		mutate      func(*MovieRequest)
		expectedErr error
	}{
		{func(m *MovieRequest) { m.Title = "" }, ErrTitleRequired},
		{func(m *MovieRequest) { m.Description = "" }, ErrDescriptionRequired},
		{func(m *MovieRequest) { m.Director = "" }, ErrDirectorRequired},
		{func(m *MovieRequest) { m.Genre = nil }, ErrGenreRequired},
		{func(m *MovieRequest) { m.Genre = []string{"Drama", "Noir"} }, ErrUnknownGenre},
		{func(m *MovieRequest) { m.ReleaseYear = minReleaseYear - 1 }, ErrInvalidReleaseYear},
		{func(m *MovieRequest) { m.ReleaseYear = time.Now().Year() + 6 }, ErrInvalidReleaseYear},
		{func(m *MovieRequest) { m.Duration = 0 }, ErrInvalidDuration},
		{func(m *MovieRequest) { m.Duration = -90 }, ErrInvalidDuration},
	}

	for _, testCase := range cases {
		req := valid
		testCase.mutate(&req)
		require.ErrorIs(t, ValidateMovieRequest(req), testCase.expectedErr)
	}

	t.Run("Boundary years are accepted", func(t *testing.T) {
		req := valid
		req.ReleaseYear = minReleaseYear
		require.NoError(t, ValidateMovieRequest(req))

		req.ReleaseYear = time.Now().Year() + 5
		require.NoError(t, ValidateMovieRequest(req))
	})
}
