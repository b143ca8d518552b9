package handlers

const (
	msgInvalidCity      = "invalid or missing city name"
	msgHistoricError    = "error fetching history"
	msgNotFound         = "not found"
	msgMethodNotAllowed = "method not allowed"
)

type ErrorResponse struct {
	Error string `json:"error"`
}
