package httputil

import (
	"bytes"
	"encoding/json"
)

// OptionalString distinguishes an absent PATCH field from an explicit
// JSON null, which a plain *string cannot. Present=false means the
// field was not in the request body; Present=true with a nil Value
// means the client sent null to clear it.
type OptionalString struct {
	Present bool
	Value   *string
}

var jsonNull = []byte("null")

// UnmarshalJSON is only invoked when the field appears in the body, so
// Present is set unconditionally.
func (o *OptionalString) UnmarshalJSON(data []byte) error {
	o.Present = true

	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		o.Value = nil
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	o.Value = &s
	return nil
}
