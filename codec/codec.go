// Package codec converts record values to and from Amazon Ion text.
//
// Ion text is a superset of JSON; the produced text is an opaque
// exchange form and the order of struct fields within it is not part of
// the contract. Values round-trip by structural equality: decoding the
// encoding of a value reproduces its fields, not its identity.
package codec

import (
	"fmt"

	"github.com/amazon-ion/ion-go/ion"
)

// ParseError reports that text handed to Decode is not well-formed Ion.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("codec: malformed input: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Encode serializes v into Ion text. Values that structural
// serialization cannot represent (cycles, channels, functions) surface
// the underlying marshal error.
func Encode(v any) (string, error) {
	data, err := ion.MarshalText(v)
	if err != nil {
		return "", fmt.Errorf("unable to encode value: %w", err)
	}
	return string(data), nil
}

// Decode parses text produced by a compatible encoder into v, which
// must be a pointer. The concrete type of v determines the method set
// the decoded value exposes, so callers pick capabilities by picking
// the target type. Malformed text yields a *ParseError.
func Decode(text string, v any) error {
	if err := ion.Unmarshal([]byte(text), v); err != nil {
		return &ParseError{Err: err}
	}
	return nil
}

// DecodeAs is Decode for callers that want the typed value back
// directly instead of filling a pointer.
func DecodeAs[T any](text string) (T, error) {
	var v T
	if err := Decode(text, &v); err != nil {
		return v, err
	}
	return v, nil
}
