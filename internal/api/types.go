package api

type ErrorResponse struct {
	StatusCode   int    `json:"statusCode"`
	ErrorMessage string `json:"error"`
}

type DefaultResponse struct {
	Message string `json:"message"`
}
