package reject

import (
	"fmt"
	"strings"
)

// InvalidRequestError reports a request that lacks the parameters a view needs.
type InvalidRequestError struct {
	Details []ProblemDetail
	Cause   error
}

func (e *InvalidRequestError) Error() string {
	if len(e.Details) == 0 {
		return "invalid request"
	}
	parts := make([]string, 0, len(e.Details))
	for _, d := range e.Details {
		parts = append(parts, fmt.Sprintf("%s: %s", d.Property, d.Info))
	}
	return "invalid request: " + strings.Join(parts, "; ")
}

func (e *InvalidRequestError) Unwrap() error {
	return e.Cause
}

// UpstreamError is a failed call to the coordination service or the chain RPC.
type UpstreamError struct {
	Service string
	Status  int
	Cause   error
}

func (e *UpstreamError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s request failed with status %d: %v", e.Service, e.Status, e.Cause)
	}
	return fmt.Sprintf("%s request failed: %v", e.Service, e.Cause)
}

func (e *UpstreamError) Unwrap() error {
	return e.Cause
}

// ConfigurationError lists required deployment settings that are absent.
type ConfigurationError struct {
	Missing []string
}

func (e *ConfigurationError) Error() string {
	return "Missing environment variables: " + strings.Join(e.Missing, ", ")
}

// SimulationFailedError carries the message returned by the simulation service.
type SimulationFailedError struct {
	Status  int
	Message string
}

func (e *SimulationFailedError) Error() string {
	return e.Message
}
