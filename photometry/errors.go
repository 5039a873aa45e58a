package photometry

import "fmt"

// InvalidParameterError reports an input that fails validation. Validation
// runs before any computation, so a returned error means no partial result
// was produced.
type InvalidParameterError struct {
	Name   string
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s: %s", e.Name, e.Reason)
}

func errPositive(name string) error {
	return &InvalidParameterError{Name: name, Reason: "must be positive"}
}

func errRange(name string, min, max float64) error {
	return &InvalidParameterError{Name: name, Reason: fmt.Sprintf("must be between %g and %g", min, max)}
}
