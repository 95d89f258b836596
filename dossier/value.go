package dossier

import (
	"fmt"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cast"
)

// Value is an optional scalar reported by a provider. It keeps a raw
// decoded JSON value so Value can be used directly as a field type of
// provider response structs.
//
// A value is present if provider has returned it and it is not null,
// an empty string or an empty collection. Please pay attention that
// false and 0 are present values.
type Value struct {
	raw interface{}
}

// NewValue wraps a decoded JSON value.
func NewValue(raw interface{}) Value {
	return Value{raw: raw}
}

// UnmarshalJSON is to conform json.Unmarshaler interface.
func (v *Value) UnmarshalJSON(data []byte) error {
	var raw interface{}

	if err := jsoniter.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("cannot unmarshal value: %w", err)
	}

	v.raw = raw

	return nil
}

func (v Value) Present() bool {
	switch value := v.raw.(type) {
	case nil:
		return false
	case string:
		return value != ""
	case []interface{}:
		return len(value) > 0
	case map[string]interface{}:
		return len(value) > 0
	}

	return true
}

// String returns a value as it should be shown in a report. Booleans
// are Yes/No, arrays are joined with commas. Absent value is an empty
// string.
func (v Value) String() string {
	if !v.Present() {
		return ""
	}

	switch value := v.raw.(type) {
	case bool:
		return yesNo(value)
	case []interface{}:
		chunks := make([]string, 0, len(value))

		for _, item := range value {
			if str := NewValue(item).String(); str != "" {
				chunks = append(chunks, str)
			}
		}

		return strings.Join(chunks, ", ")
	case map[string]interface{}:
		encoded, _ := jsoniter.MarshalToString(value)

		return encoded
	}

	if str, err := cast.ToStringE(v.raw); err == nil {
		return str
	}

	return fmt.Sprint(v.raw)
}

// Bool interprets a value as a flag. Absent value is false.
func (v Value) Bool() bool {
	switch value := v.raw.(type) {
	case nil:
		return false
	case bool:
		return value
	case float64:
		return value != 0
	case string:
		return cast.ToBool(value)
	}

	return v.Present()
}

func yesNo(value bool) string {
	if value {
		return "Yes"
	}

	return "No"
}
