package general

import (
	"fmt"
	"reflect"
)

// DeepClone copies plain data: nil, bools, strings, numbers, map[string]any
// and []any, nested arbitrarily. Anything else (funcs, channels, pointers,
// structs, typed maps and slices) yields ErrUnsupportedType, and a container
// that contains itself yields ErrCircularReference. Nothing is dropped
// silently.
func DeepClone(value any) (any, error) {
	return cloneValue(value, "$", make(map[containerKey]struct{}))
}

// containerKey identifies a container on the current path. Slices also carry
// their length so a shorter view of the same array is a different container.
type containerKey struct {
	ptr uintptr
	len int
}

// CloneRecord is DeepClone for the common record case.
func CloneRecord(record map[string]any) (map[string]any, error) {
	if record == nil {
		return nil, nil
	}
	out, err := DeepClone(record)
	if err != nil {
		return nil, err
	}
	return out.(map[string]any), nil
}

// IsEmpty reports whether the record has no keys.
func IsEmpty[K comparable, V any](record map[K]V) bool {
	return len(record) == 0
}

func cloneValue(value any, path string, ancestors map[containerKey]struct{}) (any, error) {
	switch v := value.(type) {
	case nil, bool, string,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return v, nil

	case map[string]any:
		if v == nil {
			return v, nil
		}
		id := containerKey{ptr: reflect.ValueOf(v).Pointer(), len: -1}
		if _, ok := ancestors[id]; ok {
			return nil, fmt.Errorf("%w at %s", ErrCircularReference, path)
		}
		ancestors[id] = struct{}{}
		defer delete(ancestors, id)

		out := make(map[string]any, len(v))
		for key, item := range v {
			cloned, err := cloneValue(item, path+"."+key, ancestors)
			if err != nil {
				return nil, err
			}
			out[key] = cloned
		}
		return out, nil

	case []any:
		if v == nil {
			return v, nil
		}
		if len(v) > 0 {
			id := containerKey{ptr: reflect.ValueOf(v).Pointer(), len: len(v)}
			if _, ok := ancestors[id]; ok {
				return nil, fmt.Errorf("%w at %s", ErrCircularReference, path)
			}
			ancestors[id] = struct{}{}
			defer delete(ancestors, id)
		}

		out := make([]any, len(v))
		for i, item := range v {
			cloned, err := cloneValue(item, fmt.Sprintf("%s[%d]", path, i), ancestors)
			if err != nil {
				return nil, err
			}
			out[i] = cloned
		}
		return out, nil

	default:
		return nil, fmt.Errorf("%w: %T at %s", ErrUnsupportedType, value, path)
	}
}
