package movies

import (
	"cinevault/internal/mongodb"

	"go.mongodb.org/mongo-driver/bson"
)

func mapRequestToDbMovie(req MovieRequest) mongodb.MovieDb {
	language := req.Language
	if language == "" {
		language = "English"
	}
	country := req.Country
	if country == "" {
		country = "USA"
	}
	cast := req.Cast
	if cast == nil {
		cast = []string{}
	}

	return mongodb.MovieDb{
		Title:       req.Title,
		Description: req.Description,
		Genre:       req.Genre,
		ReleaseYear: req.ReleaseYear,
		Duration:    req.Duration,
		Director:    req.Director,
		Cast:        cast,
		Language:    language,
		Country:     country,
		PosterURL:   req.PosterURL,
		TrailerURL:  req.TrailerURL,
		ExternalId:  req.ExternalId,
	}
}

func mapRequestToUpdateFields(req MovieRequest) bson.M {
	fields := bson.M{
		"title":       req.Title,
		"description": req.Description,
		"genre":       req.Genre,
		"releaseYear": req.ReleaseYear,
		"duration":    req.Duration,
		"director":    req.Director,
		"posterUrl":   req.PosterURL,
		"trailerUrl":  req.TrailerURL,
	}
	if req.Cast != nil {
		fields["cast"] = req.Cast
	}
	if req.Language != "" {
		fields["language"] = req.Language
	}
	if req.Country != "" {
		fields["country"] = req.Country
	}
	if req.ExternalId != "" {
		fields["externalId"] = req.ExternalId
	}
	return fields
}
