package server

import (
	"context"
	"log"
	"net/http"
	"os"

	"cinevault/internal/api"
	"cinevault/internal/mongodb"

	"go.mongodb.org/mongo-driver/mongo"
)

// NewServer wires the route table around the given Mongo client.
// The JWT secret is read from JWT_SECRET.
func NewServer(client *mongo.Client) http.Handler {
	db := mongodb.NewDB(client)
	secret := os.Getenv("JWT_SECRET")
	a := api.NewAPI(db, &secret)

	requireAuth := RequireAuth(secret, db)
	requireAdmin := RequireAdmin(secret, db)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", api.RootHandler)

	mux.HandleFunc("GET /api/movies", a.GetMovies)
	mux.HandleFunc("GET /api/movies/genres/list", a.GetGenres)
	mux.HandleFunc("GET /api/movies/{id}", a.GetMovieById)
	mux.HandleFunc("POST /api/movies/{id}/rate", requireAuth(a.RateMovie))
	mux.HandleFunc("POST /api/movies", requireAdmin(a.CreateMovie))
	mux.HandleFunc("PUT /api/movies/{id}", requireAdmin(a.UpdateMovie))
	mux.HandleFunc("DELETE /api/movies/{id}", requireAdmin(a.DeleteMovie))

	mux.HandleFunc("POST /api/users/register", a.RegisterUser)
	mux.HandleFunc("POST /api/users/login", a.LoginUser)
	mux.HandleFunc("GET /api/users/profile", requireAuth(a.GetProfile))
	mux.HandleFunc("PUT /api/users/profile", requireAuth(a.UpdateProfile))

	mux.HandleFunc("GET /api/watchlist", requireAuth(a.GetWatchlist))
	mux.HandleFunc("POST /api/watchlist", requireAuth(a.AddToWatchlist))
	mux.HandleFunc("PUT /api/watchlist/{id}", requireAuth(a.UpdateWatchlistEntry))
	mux.HandleFunc("DELETE /api/watchlist/{id}", requireAuth(a.RemoveFromWatchlist))

	return RequestIdMiddleware(mux)
}

func ListenAndServe() error {
	ctx := context.Background()

	client, err := mongodb.Connect(ctx)
	if err != nil {
		return err
	}
	defer client.Disconnect(ctx)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	server := &http.Server{
		Addr:    ":" + port,
		Handler: NewServer(client),
	}

	log.Printf("Server is running on port %s", port)
	return server.ListenAndServe()
}
