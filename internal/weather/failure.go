package weather

import "errors"

const (
	MsgCityNotFound        = "city not found, try again"
	MsgForecastUnavailable = "error loading cities, try again"
	MsgHistoricUnavailable = "error loading city, try again"
)

// Failure is the tagged failure body returned to callers with a 200 status
// instead of an HTTP error code.
type Failure struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func (f *Failure) Error() string {
	return f.Message
}

func NewFailure(message string) *Failure {
	return &Failure{Status: StatusFailure, Message: message}
}

// AsFailure reports whether err carries a tagged failure.
func AsFailure(err error) (*Failure, bool) {
	var failure *Failure
	if errors.As(err, &failure) {
		return failure, true
	}
	return nil, false
}
