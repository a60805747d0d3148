package normalize

import (
	"errors"
	"fmt"

	"github.com/MONISHCR/Mindful-AI-Backend/pkg/inference"
)

// Kind classifies why a request could not produce a usable result.
type Kind string

const (
	ValidationError  Kind = "ValidationError"
	ModelUnavailable Kind = "ModelUnavailable"
	ResponseBlocked  Kind = "ResponseBlocked"
	MalformedJSON    Kind = "MalformedJSON"
	SchemaViolation  Kind = "SchemaViolation"
	ExternalAPIError Kind = "ExternalAPIError"
	TransportError   Kind = "TransportError"
)

// ErrorResult is the failure half of a normalized result. Raw holds the
// fence-stripped model text when parsing got that far.
type ErrorResult struct {
	Kind    Kind
	Details string
	Raw     string
}

func (e *ErrorResult) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Details)
}

// Fail builds an ErrorResult of the given kind.
func Fail(kind Kind, details string) *ErrorResult {
	return &ErrorResult{Kind: kind, Details: details}
}

// AsResult unwraps the ErrorResult carried by err. Any other error is
// reported as a TransportError.
func AsResult(err error) *ErrorResult {
	var res *ErrorResult
	if errors.As(err, &res) {
		return res
	}
	return Fail(TransportError, err.Error())
}

// FromResponse classifies a non-successful model response. It returns nil
// when resp carries text.
func FromResponse(resp inference.Response) *ErrorResult {
	switch {
	case resp.Err != nil:
		return Fail(TransportError, resp.Err.Error())
	case resp.Blocked != "":
		return Fail(ResponseBlocked, "Response blocked: "+resp.Blocked)
	case resp.Text == "":
		return Fail(ModelUnavailable, "Model returned no content: "+inference.UnknownReason)
	}
	return nil
}
