package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"cinevault/internal/auth"
	"cinevault/internal/mongodb"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	ctx := context.Background()
	dbClient, err := mongodb.Connect(ctx)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer dbClient.Disconnect(ctx)

	db := mongodb.NewDB(dbClient)
	database := db.Database()

	indexes := flag.Bool("indexes", false, "create indexes in the database if they do not exist")
	resetIndexes := flag.Bool("reset", false, "Delete the indexes and recreate it")
	deleteIndexes := flag.Bool("delete", false, "Delete the indexes")
	superuser := flag.Bool("superuser", false, "create an admin user if it does not exist")

	flag.Parse()

	switch {
	case *indexes:
		if *deleteIndexes {
			if err := mongodb.DeleteAllIndexes(ctx, database); err != nil {
				log.Fatalf("Failed to delete indexes: %v", err)
			}
			fmt.Println("✅ All indexes deleted successfully!")
			return
		}

		if err := mongodb.CreateAllIndexes(ctx, database, *resetIndexes); err != nil {
			log.Fatalf("Failed to create indexes: %v", err)
		}
		fmt.Println("✅ Indexes command ran successfully!")

	case *superuser:
		if err := createSuperuser(ctx, db); err != nil {
			log.Fatalf("Failed to create superuser: %v", err)
		}
		fmt.Println("✅ Superuser command ran successfully!")

	default:
		fmt.Println("No valid command specified.")
		flag.Usage()
	}
}

// createSuperuser creates the admin account from ADMIN_EMAIL / ADMIN_PASSWORD,
// skipping creation when the email is already registered.
func createSuperuser(ctx context.Context, db *mongodb.DB) error {
	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@cinevault.com"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		return fmt.Errorf("ADMIN_PASSWORD is required")
	}

	exists, err := db.UserEmailExists(ctx, email)
	if err != nil {
		return err
	}
	if exists {
		fmt.Printf("ℹ️  Admin user '%s' already exists, skipping...\n", email)
		return nil
	}

	passwordHash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	user, err := db.AddUser(ctx, mongodb.UserDb{
		Name:         "Admin",
		Email:        email,
		PasswordHash: passwordHash,
		Role:         mongodb.RoleAdmin,
	})
	if err != nil {
		return err
	}

	fmt.Printf("✅ Created admin user '%s' (id %s)\n", user.Email, user.Id)
	return nil
}
