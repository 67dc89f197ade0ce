package pointdist

import (
	"fmt"
	"reflect"
)

// ParsePoint validates v as a 3D point and returns it.
//
// v may be a Point3d, a *Point3d, or any slice or array whose elements are
// integers or floats ([]float64, [3]int, []any{1, 2.5, 3}, ...).
func ParsePoint(v any) (Point3d, error) {
	pts, err := parsePoints(v)
	if err != nil {
		return Point3d{}, err
	}
	return pts[0], nil
}

func parsePair(p1, p2 any) (Point3d, Point3d, error) {
	pts, err := parsePoints(p1, p2)
	if err != nil {
		return Point3d{}, Point3d{}, err
	}
	return pts[0], pts[1], nil
}

// parsePoints runs each check over every argument before moving on to the
// next one: sequence kind, emptiness, length, then coordinate types.
func parsePoints(args ...any) ([]Point3d, error) {
	seqs := make([]reflect.Value, len(args))
	for i, v := range args {
		seq, ok := sequenceOf(v)
		if !ok {
			return nil, &TypeError{Arg: i + 1, Index: -1, Got: typeName(v)}
		}
		seqs[i] = seq
	}

	for i, seq := range seqs {
		if seq.Len() == 0 {
			return nil, &ValueError{Arg: i + 1, Length: 0}
		}
	}

	for i, seq := range seqs {
		if seq.Len() != 3 {
			return nil, &ValueError{Arg: i + 1, Length: seq.Len()}
		}
	}

	pts := make([]Point3d, len(seqs))
	for i, seq := range seqs {
		var c [3]float64
		for j := 0; j < 3; j++ {
			f, ok := numeric(seq.Index(j))
			if !ok {
				return nil, &TypeError{Arg: i + 1, Index: j, Got: typeName(seq.Index(j).Interface())}
			}
			c[j] = f
		}
		pts[i] = Point3d{X: c[0], Y: c[1], Z: c[2]}
	}
	return pts, nil
}

func sequenceOf(v any) (reflect.Value, bool) {
	switch p := v.(type) {
	case nil:
		return reflect.Value{}, false
	case Point3d:
		return reflect.ValueOf(p.Slice()), true
	case *Point3d:
		if p == nil {
			return reflect.Value{}, false
		}
		return reflect.ValueOf(p.Slice()), true
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer && !rv.IsNil() && rv.Elem().Kind() == reflect.Array {
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return rv, true
	default:
		return reflect.Value{}, false
	}
}

func numeric(rv reflect.Value) (float64, bool) {
	if rv.Kind() == reflect.Interface {
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return 0, false
	}
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	default:
		return 0, false
	}
}

func typeName(v any) string {
	if v == nil {
		return "nil"
	}
	return fmt.Sprintf("%T", v)
}
