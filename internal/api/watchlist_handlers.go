package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"cinevault/internal/auth"
	"cinevault/internal/logx"
	"cinevault/internal/services/watchlist"
)

func (api *API) GetWatchlist(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())
	currentUser := auth.GetUserFromContext(r.Context())

	status := r.URL.Query().Get("status")

	entries, err := watchlist.GetWatchlist(api.Db, r.Context(), currentUser.Id, status)
	if err != nil {
		if statusCode, ok := getErrorStatusCode(watchlist.ErrorMap, err); ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to fetch watchlist from database")
		return
	}

	respondWithJSON(w, http.StatusOK, entries)
}

func (api *API) AddToWatchlist(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())
	currentUser := auth.GetUserFromContext(r.Context())

	var req watchlist.AddEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	entry, err := watchlist.AddToWatchlist(api.Db, r.Context(), currentUser.Id, req)
	if err != nil {
		if statusCode, ok := getErrorStatusCode(watchlist.ErrorMap, err); ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Unexpected error while adding to watchlist")
		return
	}

	respondWithJSON(w, http.StatusCreated, entry)
}

func (api *API) UpdateWatchlistEntry(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())
	currentUser := auth.GetUserFromContext(r.Context())

	entryId := r.PathValue("id")
	if entryId == "" {
		respondWithError(w, http.StatusBadRequest, "Watchlist entry id is required")
		return
	}

	var req watchlist.UpdateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}

	entry, err := watchlist.UpdateEntry(api.Db, r.Context(), currentUser.Id, entryId, req)
	if err != nil {
		if statusCode, ok := getErrorStatusCode(watchlist.ErrorMap, err); ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to update watchlist entry")
		return
	}

	respondWithJSON(w, http.StatusOK, entry)
}

func (api *API) RemoveFromWatchlist(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())
	currentUser := auth.GetUserFromContext(r.Context())

	entryId := r.PathValue("id")
	if entryId == "" {
		respondWithError(w, http.StatusBadRequest, "Watchlist entry id is required")
		return
	}

	if err := watchlist.RemoveEntry(api.Db, r.Context(), currentUser.Id, entryId); err != nil {
		if statusCode, ok := getErrorStatusCode(watchlist.ErrorMap, err); ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Unexpected error while removing from watchlist")
		return
	}

	respondWithJSON(w, http.StatusOK, DefaultResponse{Message: fmt.Sprintf("Watchlist entry %s removed", entryId)})
}
