package domain

import "github.com/juju/errors"

const (
	AirportNotFoundMessage = "El aeropuerto con el id proporcionado no existe"
	AirlineNotFoundMessage = "La aerolínea con el id proporcionado no existe"
)

const (
	// PreconditionFailed marks an error where both entities exist but the
	// relation between them does not.
	PreconditionFailed = errors.ConstError("precondition failed")
)

// Kind names used in API responses and logs.
const (
	KindNotFound           = "NOT_FOUND"
	KindPreconditionFailed = "PRECONDITION_FAILED"
	KindBadRequest         = "BAD_REQUEST"
	KindInternal           = "INTERNAL"
)

func ErrAirportNotFound() error {
	return errors.WithType(errors.New(AirportNotFoundMessage), errors.NotFound)
}

func ErrAirlineNotFound() error {
	return errors.WithType(errors.New(AirlineNotFoundMessage), errors.NotFound)
}

// ErrAirportNotAssociated carries the airport message with the
// PRECONDITION_FAILED kind.
func ErrAirportNotAssociated() error {
	return errors.WithType(errors.New(AirportNotFoundMessage), PreconditionFailed)
}

func ErrInvalid(format string, args ...interface{}) error {
	return errors.WithType(errors.Errorf(format, args...), errors.NotValid)
}

// Kind classifies err into one of the Kind* names.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, errors.NotFound):
		return KindNotFound
	case errors.Is(err, PreconditionFailed):
		return KindPreconditionFailed
	case errors.Is(err, errors.NotValid):
		return KindBadRequest
	default:
		return KindInternal
	}
}
