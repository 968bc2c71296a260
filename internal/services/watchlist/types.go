package watchlist

type AddEntryRequest struct {
	MovieId string `json:"movieId"`
	Status  string `json:"status,omitempty"`
	Notes   string `json:"notes,omitempty"`
}

// UpdateEntryRequest is a partial patch; nil fields are left untouched.
type UpdateEntryRequest struct {
	Status     *string  `json:"status,omitempty"`
	UserRating *float64 `json:"userRating,omitempty"`
	Notes      *string  `json:"notes,omitempty"`
}
