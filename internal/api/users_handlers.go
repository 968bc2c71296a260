package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"cinevault/internal/auth"
	"cinevault/internal/logx"
	"cinevault/internal/services/users"
)

func (api *API) RegisterUser(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())

	var req users.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	session, err := users.Register(api.Db, r.Context(), *api.Secret, req)
	if err != nil {
		if statusCode, ok := getErrorStatusCode(users.ErrorMap, err); ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to register user")
		return
	}

	respondWithJSON(w, http.StatusCreated, session)
}

func (api *API) LoginUser(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())

	var req users.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}

	if strings.TrimSpace(req.Email) == "" || strings.TrimSpace(req.Password) == "" {
		respondWithError(w, http.StatusBadRequest, "Fields email and password are required")
		return
	}

	session, err := users.Login(api.Db, r.Context(), *api.Secret, req)
	if err != nil {
		if statusCode, ok := getErrorStatusCode(auth.ErrorsMap, err); ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Unexpected error occurred")
		return
	}

	respondWithJSON(w, http.StatusOK, session)
}

func (api *API) GetProfile(w http.ResponseWriter, r *http.Request) {
	currentUser := auth.GetUserFromContext(r.Context())
	if currentUser == nil {
		RespondWithUnauthorized(w, auth.ErrInvalidToken)
		return
	}

	respondWithJSON(w, http.StatusOK, users.MapDbUserToApiUserResponse(*currentUser))
}

func (api *API) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())

	currentUser := auth.GetUserFromContext(r.Context())
	if currentUser == nil {
		RespondWithUnauthorized(w, auth.ErrInvalidToken)
		return
	}

	var req users.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	updated, err := users.UpdateProfile(api.Db, r.Context(), currentUser.Id, req)
	if err != nil {
		if statusCode, ok := getErrorStatusCode(users.ErrorMap, err); ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to update profile")
		return
	}

	respondWithJSON(w, http.StatusOK, updated)
}
