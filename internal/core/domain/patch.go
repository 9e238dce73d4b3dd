package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"slices"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// JSON kinds reported by TypeMismatchError.
const (
	KindString  = "string"
	KindNumber  = "number"
	KindInteger = "integer"
	KindBoolean = "boolean"
	KindObject  = "object"
	KindArray   = "array"
	KindNull    = "null"
	KindDate    = "date"
)

// Optional carries a field of a partial update. Set is false when the field was absent.
type Optional[T any] struct {
	Value T
	Set   bool
}

// Some returns an Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Set: true}
}

// Or returns the held value, or fallback when the field was not set.
func (o Optional[T]) Or(fallback T) T {
	if o.Set {
		return o.Value
	}
	return fallback
}

type fieldDecoder func(field string, raw json.RawMessage) error

// patchSchema describes which keys of an entity a raw partial update may carry.
// Keys are checked in three passes: protected, unknown, then per-field types, so
// the reported error does not depend on map iteration order.
type patchSchema struct {
	entity    string
	protected []string
	fields    map[string]fieldDecoder
}

func (s patchSchema) decode(data []byte) error {
	body := bytes.TrimSpace(data)
	if kind := rawKind(body); kind != KindObject {
		return NewTypeMismatch("update", KindObject, kind)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return NewTypeMismatch("update", KindObject, "malformed json")
	}

	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if slices.Contains(s.protected, k) {
			return &ProtectedFieldError{Entity: s.entity, Field: k}
		}
	}
	for _, k := range keys {
		if _, ok := s.fields[k]; !ok {
			return &UnknownFieldError{Entity: s.entity, Field: k}
		}
	}
	for _, k := range keys {
		if err := s.fields[k](k, raw[k]); err != nil {
			return err
		}
	}
	return nil
}

// rawKind classifies a raw JSON value by its first significant byte.
func rawKind(raw []byte) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return "empty"
	}
	switch c := raw[0]; {
	case c == '{':
		return KindObject
	case c == '[':
		return KindArray
	case c == '"':
		return KindString
	case c == 't' || c == 'f':
		return KindBoolean
	case c == 'n':
		return KindNull
	case c == '-' || (c >= '0' && c <= '9'):
		return KindNumber
	default:
		return "invalid"
	}
}

// ValueKind reports the JSON kind of a decoded Go value.
func ValueKind(v any) string {
	if v == nil {
		return KindNull
	}
	if _, ok := v.(json.Number); ok {
		return KindNumber
	}
	if _, ok := v.(decimal.Decimal); ok {
		return KindNumber
	}
	if _, ok := v.(time.Time); ok {
		return KindDate
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return KindString
	case reflect.Bool:
		return KindBoolean
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return KindNumber
	case reflect.Map, reflect.Struct:
		return KindObject
	case reflect.Slice, reflect.Array:
		return KindArray
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return KindNull
		}
		return ValueKind(rv.Elem().Interface())
	}
	return rv.Kind().String()
}

func decodeAs(field string, raw json.RawMessage, want string, dst any) error {
	if got := rawKind(raw); got != want {
		return NewTypeMismatch(field, want, got)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return NewTypeMismatch(field, want, "malformed "+want)
	}
	return nil
}

func stringField(dst *Optional[string]) fieldDecoder {
	return func(field string, raw json.RawMessage) error {
		var v string
		if err := decodeAs(field, raw, KindString, &v); err != nil {
			return err
		}
		*dst = Some(v)
		return nil
	}
}

func int64Field(dst *Optional[int64]) fieldDecoder {
	return func(field string, raw json.RawMessage) error {
		var v int64
		if got := rawKind(raw); got != KindNumber {
			return NewTypeMismatch(field, KindInteger, got)
		}
		if err := json.Unmarshal(raw, &v); err != nil {
			return NewTypeMismatch(field, KindInteger, KindNumber)
		}
		*dst = Some(v)
		return nil
	}
}

func float64Field(dst *Optional[float64]) fieldDecoder {
	return func(field string, raw json.RawMessage) error {
		var v float64
		if err := decodeAs(field, raw, KindNumber, &v); err != nil {
			return err
		}
		*dst = Some(v)
		return nil
	}
}

func decimalField(dst *Optional[decimal.Decimal]) fieldDecoder {
	return func(field string, raw json.RawMessage) error {
		var v decimal.Decimal
		if err := decodeAs(field, raw, KindNumber, &v); err != nil {
			return err
		}
		*dst = Some(v)
		return nil
	}
}

func timeField(dst *Optional[time.Time]) fieldDecoder {
	return func(field string, raw json.RawMessage) error {
		if got := rawKind(raw); got != KindString {
			return NewTypeMismatch(field, KindDate, got)
		}
		var v time.Time
		if err := json.Unmarshal(raw, &v); err != nil {
			return NewTypeMismatch(field, KindDate, KindString)
		}
		*dst = Some(v)
		return nil
	}
}

// nullableTimeField accepts an RFC 3339 string or an explicit null.
func nullableTimeField(dst *Optional[*time.Time]) fieldDecoder {
	return func(field string, raw json.RawMessage) error {
		if rawKind(raw) == KindNull {
			*dst = Some[*time.Time](nil)
			return nil
		}
		var t Optional[time.Time]
		if err := timeField(&t)(field, raw); err != nil {
			return err
		}
		*dst = Some(&t.Value)
		return nil
	}
}

func objectField(dst *Optional[map[string]any]) fieldDecoder {
	return func(field string, raw json.RawMessage) error {
		var v map[string]any
		if err := decodeAs(field, raw, KindObject, &v); err != nil {
			return err
		}
		*dst = Some(v)
		return nil
	}
}

// anyField accepts any well-formed JSON value; kind checks happen against the stored entity.
func anyField(dst *Optional[any]) fieldDecoder {
	return func(field string, raw json.RawMessage) error {
		var v any
		if err := json.Unmarshal(raw, &v); err != nil {
			return NewTypeMismatch(field, "json value", rawKind(raw))
		}
		*dst = Some(v)
		return nil
	}
}

func itemRefsField(dst *Optional[[]ItemRef]) fieldDecoder {
	return func(field string, raw json.RawMessage) error {
		var elems []json.RawMessage
		if err := decodeAs(field, raw, KindArray, &elems); err != nil {
			return err
		}
		refs := make([]ItemRef, 0, len(elems))
		for i, el := range elems {
			name := fmt.Sprintf("%s[%d]", field, i)
			var ref ItemRef
			if err := decodeAs(name, el, KindObject, &ref); err != nil {
				return err
			}
			refs = append(refs, ref)
		}
		*dst = Some(refs)
		return nil
	}
}

func requireNonEmpty(field string, v Optional[string]) error {
	if v.Set && v.Value == "" {
		return NewValidationError(field, "cannot be empty")
	}
	return nil
}
