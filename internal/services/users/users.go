package users

import (
	"context"
	"errors"
	"time"

	"cinevault/internal/auth"
	"cinevault/internal/mongodb"

	"go.mongodb.org/mongo-driver/mongo"
)

// Tokens are valid for a fixed 7 days; expiry is the only termination
// mechanism, there is no revocation list.
const sessionDuration = 7 * 24 * time.Hour

func Register(db *mongodb.DB, ctx context.Context, tokenSecret string, req RegisterRequest) (SessionResponse, error) {
	if req.Name == "" {
		return SessionResponse{}, ErrNameRequired
	}
	if !IsValidEmail(req.Email) {
		return SessionResponse{}, ErrInvalidEmail
	}
	if len(req.Password) < 6 {
		return SessionResponse{}, ErrInvalidPassword
	}

	// Friendlier error for the common case; the unique index on email is
	// the backstop for concurrent registrations.
	exists, err := db.UserEmailExists(ctx, req.Email)
	if err != nil {
		return SessionResponse{}, err
	}
	if exists {
		return SessionResponse{}, ErrEmailAlreadyRegistered
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return SessionResponse{}, err
	}

	userDb, err := db.AddUser(ctx, mongodb.UserDb{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: passwordHash,
		Role:         mongodb.RoleUser,
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return SessionResponse{}, ErrEmailAlreadyRegistered
		}
		return SessionResponse{}, err
	}

	return buildSessionResponse(userDb, tokenSecret)
}

// Login verifies credentials and issues a token. Unknown email and wrong
// password produce the same error, so the endpoint cannot be used to probe
// which addresses are registered.
func Login(db *mongodb.DB, ctx context.Context, tokenSecret string, req LoginRequest) (SessionResponse, error) {
	userDb, err := db.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, mongodb.ErrRecordNotFound) {
			return SessionResponse{}, auth.ErrInvalidCredentials
		}
		return SessionResponse{}, err
	}

	if err := auth.CheckPasswordHash(userDb.PasswordHash, req.Password); err != nil {
		return SessionResponse{}, auth.ErrInvalidCredentials
	}

	return buildSessionResponse(userDb, tokenSecret)
}

func UpdateProfile(db *mongodb.DB, ctx context.Context, userId string, req UpdateProfileRequest) (UserResponse, error) {
	userDb, err := db.UpdateUserProfile(ctx, userId, req.Name, req.Avatar)
	if err != nil {
		if errors.Is(err, mongodb.ErrRecordNotFound) {
			return UserResponse{}, ErrUserNotFound
		}
		return UserResponse{}, err
	}

	return MapDbUserToApiUserResponse(userDb), nil
}

func buildSessionResponse(userDb mongodb.UserDb, tokenSecret string) (SessionResponse, error) {
	token, err := auth.MakeJWT(userDb.Id, tokenSecret, sessionDuration)
	if err != nil {
		return SessionResponse{}, err
	}

	return SessionResponse{
		Token: token,
		User:  MapDbUserToApiUserResponse(userDb),
	}, nil
}
