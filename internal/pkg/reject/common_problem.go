package reject

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"
)

const (
	genericUnexpectedError string = "error.generic.unexpected"
	invalidRequest         string = "error.generic.invalid-request-params"
	misconfigured          string = "error.generic.misconfigured"
	genericNotFound        string = "error.generic.not-found"
)

func RequestParamsProblem(details []ProblemDetail) Problem {
	return NewProblem().
		WithTitle("Missing required parameters").
		WithStatus(http.StatusBadRequest).
		WithCode(invalidRequest).
		WithErrors(details).
		Build()
}

func ConfigurationProblem(err error) Problem {
	log.Error().Err(err).Msg("Service configuration is incomplete")
	return NewProblem().
		WithTitle("Service misconfigured").
		WithDetail("The service is missing required settings").
		WithStatus(http.StatusInternalServerError).
		WithCode(misconfigured).
		Build()
}

func NotFoundProblem() Problem {
	return NewProblem().
		WithTitle("Route not found").
		WithStatus(http.StatusNotFound).
		WithCode(genericNotFound).
		Build()
}

func UnexpectedProblem(err error) Problem {
	log.Warn().Err(err).Msg("Unexpected error while handling request")
	return NewProblem().
		WithTitle("Unexpected error").
		WithStatus(http.StatusInternalServerError).
		WithCode(genericUnexpectedError).
		Build()
}

// FromError picks the problem a handler answers with for err.
func FromError(err error) *ProblemWithTrace {
	var invalid *InvalidRequestError
	var config *ConfigurationError

	switch {
	case errors.As(err, &invalid):
		return &ProblemWithTrace{Problem: RequestParamsProblem(invalid.Details), Cause: err}
	case errors.As(err, &config):
		return &ProblemWithTrace{Problem: ConfigurationProblem(err), Cause: err}
	default:
		return &ProblemWithTrace{Problem: UnexpectedProblem(err), Cause: err}
	}
}
