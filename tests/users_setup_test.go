package tests

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"cinevault/internal/auth"
	"cinevault/internal/mongodb"
	"cinevault/internal/services/users"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func registerUser(t *testing.T, user users.RegisterRequest) users.SessionResponse {
	t.Helper()

	postBody, err := json.Marshal(user)
	require.NoError(t, err)

	resp, err := http.Post(
		testServer.URL+"/api/users/register",
		"application/json",
		bytes.NewBuffer(postBody),
	)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var session users.SessionResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&session))

	return session
}

func getUserToken(t *testing.T, authUser users.LoginRequest) string {
	t.Helper()

	postBody, err := json.Marshal(authUser)
	require.NoError(t, err)

	resp, err := http.Post(
		testServer.URL+"/api/users/login",
		"application/json",
		bytes.NewBuffer(postBody),
	)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var session users.SessionResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&session))

	return session.Token
}

// addUserAdminInDb inserts an admin directly in the database and returns it
// with a fresh token; there is no public endpoint to create admins.
func addUserAdminInDb(t *testing.T, name, email, password string) (mongodb.UserDb, string) {
	t.Helper()

	ctx := context.Background()
	db := testClient.Database(TEST_DB_NAME)
	coll := db.Collection(mongodb.UsersCollection)

	passwordHash, err := auth.HashPassword(password)
	require.NoError(t, err)

	now := time.Now()
	userDb := mongodb.UserDb{
		Id:           primitive.NewObjectID().Hex(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         mongodb.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err = coll.InsertOne(ctx, userDb)
	require.NoError(t, err)

	token := getUserToken(t, users.LoginRequest{Email: email, Password: password})

	return userDb, token
}

func getUserFromDb(t *testing.T, userId string) mongodb.UserDb {
	t.Helper()

	ctx := context.Background()
	db := testClient.Database(TEST_DB_NAME)
	coll := db.Collection(mongodb.UsersCollection)

	var userDb mongodb.UserDb
	err := coll.FindOne(ctx, bson.M{"_id": userId}).Decode(&userDb)
	require.NoError(t, err, "error querying a user from db")

	return userDb
}

// doAuthenticatedRequest performs a JSON request with a bearer token.
func doAuthenticatedRequest(t *testing.T, method, url string, body any, token string) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{}
	resp, err := client.Do(req)
	require.NoError(t, err)

	return resp
}
