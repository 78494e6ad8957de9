package urlenc

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// Marshaler is the interface implemented by types that can marshal themselves
// into a parameter value.
type Marshaler interface {
	MarshalForm() (string, error)
}

// MarshalString is a convenience function that returns the form encoding of v
// as a string.
func MarshalString(v interface{}) (string, error) {
	params, err := Marshal(v)
	if err != nil {
		return "", err
	}
	return params.Encode(), nil
}

// Marshal renders v into an ordered [Params] list suitable for
// [Params.Encode] or [AppendQuery]. v must be a struct, a map with string
// keys, or a pointer to either; nil values marshal to an empty list.
//
// Struct fields are named by their `form:"name"` tag, with "omitempty" and
// "-"/"ignore" honoured. Nested structs, maps and slices render bracketed key
// paths such as "address[city]" and "tags[]". The result is sorted by key so
// the encoding is deterministic regardless of map iteration order.
func Marshal(v interface{}) (Params, error) {
	if v == nil {
		return nil, nil
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, nil
		}
		rv = rv.Elem()
	}

	if rv.Kind() != reflect.Struct && rv.Kind() != reflect.Map {
		return nil, fmt.Errorf("urlenc: top-level value must be struct or map")
	}
	if rv.Kind() == reflect.Map && rv.Type().Key().Kind() != reflect.String {
		return nil, fmt.Errorf("urlenc: map keys must be strings")
	}

	var params Params
	if err := marshalValue(&params, nil, rv); err != nil {
		return nil, err
	}

	sort.SliceStable(params, func(i, j int) bool {
		return params[i].Key < params[j].Key
	})
	return params, nil
}

func marshalValue(out *Params, path []string, v reflect.Value) error {
	// Handle nil pointers early to avoid dereferencing them.
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}

	// Custom Marshaler takes precedence over the kind-based dispatch. A
	// Marshaler renders a single parameter value, so it only applies once
	// there is a key to attach it to; the top-level value is always
	// traversed by kind.
	if len(path) > 0 {
		if m, ok := asMarshaler(v); ok {
			s, err := m.MarshalForm()
			if err != nil {
				return err
			}
			out.Add(renderPath(path), s)
			return nil
		}
	}

	switch v.Kind() {
	case reflect.Struct:
		return marshalStruct(out, path, v)
	case reflect.Map:
		return marshalMap(out, path, v)
	case reflect.Slice, reflect.Array:
		return marshalSlice(out, path, v)
	case reflect.Interface:
		if !v.IsNil() {
			return marshalValue(out, path, v.Elem())
		}
		return nil
	default:
		scalar, err := marshalScalar(v)
		if err != nil {
			return err
		}
		out.Add(renderPath(path), scalar)
		return nil
	}
}

func marshalStruct(out *Params, path []string, v reflect.Value) error {
	tags := tags(v)
	for i := 0; i < v.NumField(); i++ {
		tag := tags[i]
		if tag.Ignore || tag.Name == "" {
			continue
		}
		fv := v.Field(i)
		if tag.Omit && isEmptyValue(fv) {
			continue
		}
		if err := marshalValue(out, append(path, tag.Name), fv); err != nil {
			return err
		}
	}
	return nil
}

func marshalMap(out *Params, path []string, v reflect.Value) error {
	if v.Type().Key().Kind() != reflect.String {
		return fmt.Errorf("urlenc: map keys must be strings")
	}
	for _, k := range v.MapKeys() {
		mv := v.MapIndex(k)
		if !mv.IsValid() || (mv.Kind() == reflect.Interface && mv.IsNil()) {
			continue
		}
		if err := marshalValue(out, append(path, k.String()), mv); err != nil {
			return err
		}
	}
	return nil
}

func marshalSlice(out *Params, path []string, v reflect.Value) error {
	for i := 0; i < v.Len(); i++ {
		elem := v.Index(i)
		if !elem.IsValid() || (elem.Kind() == reflect.Interface && elem.IsNil()) {
			continue
		}
		if err := marshalValue(out, append(path, ""), elem); err != nil {
			return err
		}
	}
	return nil
}

func marshalScalar(v reflect.Value) (string, error) {
	switch v.Kind() {
	case reflect.String:
		return v.String(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10), nil
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'f', -1, v.Type().Bits()), nil
	case reflect.Bool:
		return strconv.FormatBool(v.Bool()), nil
	default:
		return "", fmt.Errorf("urlenc: unsupported type: %s", v.Type())
	}
}

func asMarshaler(v reflect.Value) (Marshaler, bool) {
	if v.CanAddr() {
		if m, ok := v.Addr().Interface().(Marshaler); ok {
			return m, true
		}
	}
	if !v.CanInterface() {
		return nil, false
	}
	if m, ok := v.Interface().(Marshaler); ok {
		return m, true
	}
	return nil, false
}

// renderPath joins a key path into bracket syntax: ["a" "b" ""] becomes
// "a[b][]".
func renderPath(path []string) string {
	var b strings.Builder
	b.WriteString(path[0])
	for _, p := range path[1:] {
		if p == "" {
			b.WriteString("[]")
		} else {
			b.WriteString("[")
			b.WriteString(p)
			b.WriteString("]")
		}
	}
	return b.String()
}

func isEmptyValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		return v.Len() == 0
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64,
		reflect.Interface, reflect.Pointer:
		return v.IsZero()
	}
	return false
}
