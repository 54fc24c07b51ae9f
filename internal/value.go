package internal

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrEmptyPayload is returned by DecodePayload when the stored value is
// empty or whitespace-only.
var ErrEmptyPayload = errors.New("empty chat payload")

// DecodeError wraps a JSON syntax failure for a stored chat payload.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("invalid chat payload: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// IsDecodeError reports whether err came from decoding a chat payload,
// either because the value was empty or because it was not valid JSON.
func IsDecodeError(err error) bool {
	var de *DecodeError
	return errors.Is(err, ErrEmptyPayload) || errors.As(err, &de)
}

// Kind identifies the variant held by a Value.
type Kind int

const (
	KindAbsent Kind = iota
	KindNull
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// Value is a decoded chat payload node. The stored chat data is loosely
// typed and has drifted across schema versions, so every accessor is
// non-failing: looking up a missing field or the wrong kind yields an
// absent Value rather than an error.
type Value struct {
	v       interface{}
	present bool
}

// DecodePayload decodes the raw bytes of a chat-data row into a Value tree.
func DecodePayload(raw []byte) (Value, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return Value{}, ErrEmptyPayload
	}

	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		return Value{}, &DecodeError{Err: err}
	}

	return Value{v: v, present: true}, nil
}

// Kind returns the variant of the value.
func (v Value) Kind() Kind {
	if !v.present {
		return KindAbsent
	}
	switch v.v.(type) {
	case nil:
		return KindNull
	case bool:
		return KindBool
	case float64:
		return KindNumber
	case string:
		return KindString
	case []interface{}:
		return KindArray
	case map[string]interface{}:
		return KindObject
	default:
		return KindAbsent
	}
}

// IsAbsent reports whether the value is missing entirely.
func (v Value) IsAbsent() bool {
	return v.Kind() == KindAbsent
}

// Field returns the first present field among the given candidate names.
// Schema versions have renamed fields over time, so callers pass the known
// names in priority order. Returns an absent Value when the receiver is not
// an object or no candidate is present.
func (v Value) Field(names ...string) Value {
	obj, ok := v.v.(map[string]interface{})
	if !v.present || !ok {
		return Value{}
	}
	for _, name := range names {
		if fv, ok := obj[name]; ok {
			return Value{v: fv, present: true}
		}
	}
	return Value{}
}

// Items returns the elements of an array value, or nil for any other kind.
func (v Value) Items() []Value {
	arr, ok := v.v.([]interface{})
	if !v.present || !ok {
		return nil
	}
	items := make([]Value, len(arr))
	for i, e := range arr {
		items[i] = Value{v: e, present: true}
	}
	return items
}

// Index returns the i-th element of an array value, or absent.
func (v Value) Index(i int) Value {
	arr, ok := v.v.([]interface{})
	if !v.present || !ok || i < 0 || i >= len(arr) {
		return Value{}
	}
	return Value{v: arr[i], present: true}
}

// Str returns the string form of the value and whether it was a string.
func (v Value) Str() (string, bool) {
	s, ok := v.v.(string)
	if !v.present {
		return "", false
	}
	return s, ok
}

// StrOr returns the string form of the value, or def when the value is not
// a string.
func (v Value) StrOr(def string) string {
	if s, ok := v.Str(); ok {
		return s
	}
	return def
}

// Int64 returns the integer form of a numeric value.
func (v Value) Int64() (int64, bool) {
	f, ok := v.v.(float64)
	if !v.present || !ok {
		return 0, false
	}
	return int64(f), true
}
