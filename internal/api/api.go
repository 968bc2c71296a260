package api

import (
	"cinevault/internal/mongodb"
)

type API struct {
	Db     *mongodb.DB
	Secret *string
}

func NewAPI(db *mongodb.DB, secret *string) *API {
	return &API{Db: db, Secret: secret}
}
