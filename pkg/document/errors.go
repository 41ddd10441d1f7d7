package document

import "errors"

var (
	// ErrDecode is returned when the input is not valid YAML or JSON.
	ErrDecode = errors.New("failed to decode document")

	// ErrNotMapping is returned when a document is not a key/value mapping.
	ErrNotMapping = errors.New("document is not a mapping")

	// ErrUnknownKind is returned for a Kind other than KindCustomer or KindAddress.
	ErrUnknownKind = errors.New("unknown document kind")
)
