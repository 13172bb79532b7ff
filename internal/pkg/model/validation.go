package model

import (
	"errors"
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/kollektive-hackathon/safe-frames/internal/pkg/reject"
)

var txHashPattern = regexp.MustCompile(`^0x[0-9a-fA-F]{64}$`)

func validateTxHash(fl validator.FieldLevel) bool {
	return txHashPattern.MatchString(fl.Field().String())
}

// SetupValidators registers the custom tags used by the request params on
// gin's validator engine.
func SetupValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("unexpected validator engine")
	}
	return v.RegisterValidation("tx_hash", validateTxHash)
}

// InvalidRequest turns a binding error into the InvalidRequest failure.
func InvalidRequest(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return &reject.InvalidRequestError{Cause: err}
	}

	details := make([]reject.ProblemDetail, 0, len(validationErrors))
	for _, e := range validationErrors {
		details = append(details, reject.ProblemDetail{
			Property: lowerFirst(e.Field()),
			Info:     describe(e),
			Code:     e.Tag(),
		})
	}

	return &reject.InvalidRequestError{Details: details, Cause: err}
}

func describe(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "required_without":
		return "is required when " + lowerFirst(e.Param()) + " is missing"
	case "eth_addr":
		return "must be a hex address"
	case "tx_hash":
		return "must be a 32 byte hex hash"
	default:
		return "failed " + e.Tag() + " validation"
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	b := []byte(s)
	if b[0] >= 'A' && b[0] <= 'Z' {
		b[0] += 'a' - 'A'
	}
	return string(b)
}
