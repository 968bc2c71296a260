package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type UserDb struct {
	Id           string    `json:"id" bson:"_id"`
	Name         string    `json:"name" bson:"name"`
	Email        string    `json:"email" bson:"email"`
	PasswordHash string    `json:"-" bson:"passwordHash"`
	AvatarURL    string    `json:"avatarUrl,omitempty" bson:"avatarUrl,omitempty"`
	Role         string    `json:"role" bson:"role"`
	CreatedAt    time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt" bson:"updatedAt"`
}

func (db *DB) GetUserById(ctx context.Context, id string) (UserDb, error) {
	coll := db.Collection(UsersCollection)
	var userDb UserDb
	if err := coll.FindOne(ctx, bson.M{"_id": id}).Decode(&userDb); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return UserDb{}, ErrRecordNotFound
		}
		return UserDb{}, err
	}

	return userDb, nil
}

func (db *DB) GetUserByEmail(ctx context.Context, email string) (UserDb, error) {
	coll := db.Collection(UsersCollection)
	var userDb UserDb
	if err := coll.FindOne(ctx, bson.M{"email": email}).Decode(&userDb); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return UserDb{}, ErrRecordNotFound
		}
		return UserDb{}, err
	}

	return userDb, nil
}

func (db *DB) AddUser(ctx context.Context, user UserDb) (UserDb, error) {
	coll := db.Collection(UsersCollection)

	user.Id = primitive.NewObjectID().Hex()
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	if user.Role == "" {
		user.Role = RoleUser
	}

	if _, err := coll.InsertOne(ctx, user); err != nil {
		return UserDb{}, err
	}

	return user, nil
}

// UpdateUserProfile updates only name and avatar; email and role are
// immutable through the public contract.
func (db *DB) UpdateUserProfile(ctx context.Context, id string, name, avatarURL string) (UserDb, error) {
	coll := db.Collection(UsersCollection)

	update := bson.M{"updatedAt": time.Now()}
	if name != "" {
		update["name"] = name
	}
	if avatarURL != "" {
		update["avatarUrl"] = avatarURL
	}

	result, err := coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": update})
	if err != nil {
		return UserDb{}, err
	}
	if result.MatchedCount == 0 {
		return UserDb{}, ErrRecordNotFound
	}

	return db.GetUserById(ctx, id)
}

// UserEmailExists reports whether an account is registered under the given
// email, without fetching the document.
func (db *DB) UserEmailExists(ctx context.Context, email string) (bool, error) {
	coll := db.Collection(UsersCollection)

	// Only ask MongoDB for the _id field
	opts := options.FindOne().SetProjection(bson.M{"_id": 1})

	err := coll.FindOne(ctx, bson.M{"email": email}, opts).Err()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
