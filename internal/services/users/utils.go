package users

import (
	"errors"
	"net/http"
	"regexp"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

var (
	ErrNameRequired           = errors.New("name is required")
	ErrInvalidEmail           = errors.New("invalid email address")
	ErrInvalidPassword        = errors.New("password must be at least 6 characters")
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrUserNotFound           = errors.New("user not found")
)

var ErrorMap = map[error]int{
	ErrNameRequired:           http.StatusBadRequest,
	ErrInvalidEmail:           http.StatusBadRequest,
	ErrInvalidPassword:        http.StatusBadRequest,
	ErrEmailAlreadyRegistered: http.StatusConflict,
	ErrUserNotFound:           http.StatusNotFound,
}

func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}
