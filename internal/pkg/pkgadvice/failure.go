package pkgadvice

import (
	"errors"

	"github.com/shandysiswandi/goadvice/internal/pkg/pkgerror"
)

// Kind classifies failures into the buckets the Translator handles.
type Kind int

const (
	KindGeneric    Kind = iota // Unanticipated errors and panics.
	KindValidation             // Field validation failures.
	KindBusiness               // Domain rule violations.
	KindDispatch               // Router-level failures.
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindBusiness:
		return "business"
	case KindDispatch:
		return "dispatch"
	case KindGeneric:
		return "generic"
	default:
		return "generic"
	}
}

// Failure is the closed set of inputs the Translator accepts.
type Failure interface {
	Kind() Kind
	failure()
}

// ValidationFailure carries the field errors of a rejected request.
type ValidationFailure struct {
	Fields []pkgerror.FieldError
}

// BusinessFailure carries a business error raised by handler code.
type BusinessFailure struct {
	Err *pkgerror.Error
}

// GenericFailure carries any other error. Stack is set when the failure
// came from a recovered panic.
type GenericFailure struct {
	Err   error
	Stack []byte
}

// DispatchFailure carries the HTTP status the router would have answered with.
type DispatchFailure struct {
	Status int
	Err    error
}

func (ValidationFailure) Kind() Kind { return KindValidation }
func (BusinessFailure) Kind() Kind   { return KindBusiness }
func (GenericFailure) Kind() Kind    { return KindGeneric }
func (DispatchFailure) Kind() Kind   { return KindDispatch }

func (ValidationFailure) failure() {}
func (BusinessFailure) failure()   {}
func (GenericFailure) failure()    {}
func (DispatchFailure) failure()   {}

// Classify picks the Failure variant for err by unwrapping it.
//
// Validation wins over dispatch, and dispatch over business, so a business
// error that wraps a validation error is still reported field by field.
func Classify(err error) Failure {
	var verr *pkgerror.ValidationError
	if errors.As(err, &verr) {
		return ValidationFailure{Fields: verr.Fields()}
	}

	var serr *pkgerror.StatusError
	if errors.As(err, &serr) {
		return DispatchFailure{Status: serr.Status(), Err: err}
	}

	var gerr *pkgerror.Error
	if errors.As(err, &gerr) {
		return BusinessFailure{Err: gerr}
	}

	return GenericFailure{Err: err}
}
