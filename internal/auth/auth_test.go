package auth

import (
	"context"
	"net/http"
	"testing"
	"time"

	"cinevault/internal/mongodb"

	"github.com/stretchr/testify/require"
)

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	require.NotEqual(t, "correct horse battery staple", hash)

	require.NoError(t, CheckPasswordHash(hash, "correct horse battery staple"))
	require.Error(t, CheckPasswordHash(hash, "wrong password"))
}

func TestJWT(t *testing.T) {
	const secret = "unit-test-secret"

	t.Run("Roundtrip returns the subject", func(t *testing.T) {
		token, err := MakeJWT("user-123", secret, time.Hour)
		require.NoError(t, err)

		subject, err := ValidateJWT(token, secret)
		require.NoError(t, err)
		require.Equal(t, "user-123", subject)
	})

	t.Run("Wrong secret is rejected", func(t *testing.T) {
		token, err := MakeJWT("user-123", secret, time.Hour)
		require.NoError(t, err)

		_, err = ValidateJWT(token, "another-secret")
		require.Error(t, err)
	})

	t.Run("Expired token is rejected", func(t *testing.T) {
		token, err := MakeJWT("user-123", secret, -time.Minute)
		require.NoError(t, err)

		_, err = ValidateJWT(token, secret)
		require.Error(t, err)
	})

	t.Run("Garbage token is rejected", func(t *testing.T) {
		_, err := ValidateJWT("not.a.token", secret)
		require.Error(t, err)
	})
}

func TestGetBearerToken(t *testing.T) {
	cases := []struct {
		name          string
		headerValue   string
		expectedToken string
		expectedErr   error
	}{
		{"Valid bearer token", "Bearer abc123", "abc123", nil},
		{"Missing header", "", "", ErrNoAuthorizationHeader},
		{"Wrong scheme", "Basic abc123", "", ErrMalformedAuthHeader},
		{"Empty token", "Bearer ", "", ErrNoTokenInAuthHeader},
		{"Token with extra space", "Bearer  abc123", "abc123", nil},
	}

	for _, testCase := range cases {
		t.Run(testCase.name, func(t *testing.T) {
			headers := http.Header{}
			if testCase.headerValue != "" {
				headers.Set("Authorization", testCase.headerValue)
			}

			token, err := GetBearerToken(headers)
			if testCase.expectedErr != nil {
				require.ErrorIs(t, err, testCase.expectedErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, testCase.expectedToken, token)
		})
	}
}

func TestUserContext(t *testing.T) {
	t.Run("Stored user is returned", func(t *testing.T) {
		user := mongodb.UserDb{Id: "abc", Email: "ctx@test.com"}
		ctx := WithUser(context.Background(), user)

		got := GetUserFromContext(ctx)
		require.NotNil(t, got)
		require.Equal(t, "abc", got.Id)
	})

	t.Run("Missing user returns nil", func(t *testing.T) {
		require.Nil(t, GetUserFromContext(context.Background()))
	})
}
