package pkgerror

import "strings"

// FieldError is a single field-level validation failure.
//
// An empty Message means the validator produced no default message.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError collects the field failures of one request.
type ValidationError struct {
	fields []FieldError
}

// NewValidation creates a validation error from the given field failures.
func NewValidation(fields ...FieldError) error {
	cp := make([]FieldError, len(fields))
	copy(cp, fields)
	return &ValidationError{fields: cp}
}

// NewInvalidField is a shortcut for a single failing field.
func NewInvalidField(field, msg string) error {
	return NewValidation(FieldError{Field: field, Message: msg})
}

// Fields returns a copy of the field failures in their original order.
func (e *ValidationError) Fields() []FieldError {
	if e == nil {
		return nil
	}
	cp := make([]FieldError, len(e.fields))
	copy(cp, e.fields)
	return cp
}

// Error implements the error interface. Without any field message it
// falls back to the BAD_REQUEST default, the same text clients receive.
func (e *ValidationError) Error() string {
	if e != nil {
		if msg := JoinMessages(e.fields); msg != "" {
			return msg
		}
	}
	return CodeBadRequest.Message()
}

// JoinMessages joins the non-empty field messages with "," in order.
func JoinMessages(fields []FieldError) string {
	msgs := make([]string, 0, len(fields))
	for _, f := range fields {
		if f.Message == "" {
			continue
		}
		msgs = append(msgs, f.Message)
	}

	return strings.Join(msgs, ",")
}
