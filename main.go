package main

import (
	"log"

	"cinevault/internal/server"

	"github.com/joho/godotenv"
)

func main() {
	godotenv.Load()

	if err := server.ListenAndServe(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
