package reporting

import (
	"errors"
	"fmt"
	"strings"
)

// MissingParameterError reports the full required parameter set of an
// endpoint whenever any of them is absent.
type MissingParameterError struct {
	Required []string
}

func (e *MissingParameterError) Error() string {
	if len(e.Required) == 1 {
		return fmt.Sprintf("Missing required parameter: %s", e.Required[0])
	}
	return fmt.Sprintf("Missing required parameters: %s", strings.Join(e.Required, " and "))
}

// NewMissingParameterError builds the error for the given required set
func NewMissingParameterError(required ...string) error {
	return &MissingParameterError{Required: required}
}

// IsMissingParameter reports whether err is a MissingParameterError
func IsMissingParameter(err error) bool {
	var target *MissingParameterError
	return errors.As(err, &target)
}
