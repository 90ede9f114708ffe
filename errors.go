package tagspec

import "errors"

// Error taxonomy. Every Parse/ParseFlavor failure unwraps to one of these,
// so callers can classify with errors.Is while the message stays specific
// to the offending line.
var (
	// ErrUnknownType reports a type attribute outside the Kind enumeration.
	ErrUnknownType = errors.New("unknown tag type")

	// ErrMissingAttribute reports an absent kind-mandatory attribute.
	ErrMissingAttribute = errors.New("missing required attribute")

	// ErrInvalidValue reports a supplied value failing validation.
	ErrInvalidValue = errors.New("invalid attribute value")
)

// specError pairs a taxonomy sentinel with the exact user-facing message.
type specError struct {
	kind error
	msg  string
}

func (e *specError) Error() string { return e.msg }

func (e *specError) Unwrap() error { return e.kind }

func errUnknownType(v string) error {
	return &specError{kind: ErrUnknownType, msg: "Unknown tag type attribute: " + v}
}

func errMissing(attr, line string) error {
	return &specError{kind: ErrMissingAttribute, msg: "Missing " + attr + " attribute for " + line}
}

func errInvalid(what, line string) error {
	return &specError{kind: ErrInvalidValue, msg: "Invalid " + what + " for " + line}
}

func errInvalidEnable(v string) error {
	return &specError{kind: ErrInvalidValue, msg: "Invalid value for enable attribute: " + v}
}

func errFlavor(prefix, field string) error {
	return &specError{kind: ErrInvalidValue, msg: prefix + ": " + field}
}
