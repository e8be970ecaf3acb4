package blend

import (
	"reflect"
)

// Kind classifies a value as one of the three shapes the merger understands.
type Kind int

const (
	// KindScalar is any value that is replaced wholesale and never recursed into.
	KindScalar Kind = iota

	// KindMapping is a plain mapping, map[string]interface{}.
	KindMapping

	// KindSequence is a sequence, []interface{}.
	KindSequence
)

func (k Kind) String() string {
	switch k {
	case KindMapping:
		return "mapping"
	case KindSequence:
		return "sequence"
	default:
		return "scalar"
	}
}

// KindOf returns the Kind of v. Only map[string]interface{} and []interface{}
// are containers; typed maps, structs, pointers and values such as time.Time
// are scalars.
func KindOf(v interface{}) Kind {
	switch v.(type) {
	case map[string]interface{}:
		return KindMapping
	case []interface{}:
		return KindSequence
	default:
		return KindScalar
	}
}

type absentValue struct{}

func (absentValue) String() string {
	return "<absent>"
}

// Absent marks a value that is not there. A source entry holding Absent never
// overwrites the target, while nil (JSON null) does.
var Absent interface{} = absentValue{}

func isAbsent(v interface{}) bool {
	_, ok := v.(absentValue)
	return ok
}

func isPlainMapping(v interface{}) bool {
	_, ok := v.(map[string]interface{})
	return ok
}

// identical reports strict identity: value equality for comparable scalars and
// reference equality for maps, slices, pointers and channels. Funcs and values
// that are not comparable are never identical, not even to themselves.
func identical(a, b interface{}) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	av, bv := reflect.ValueOf(a), reflect.ValueOf(b)
	if av.Type() != bv.Type() {
		return false
	}
	switch av.Kind() {
	case reflect.Map, reflect.Ptr, reflect.Chan, reflect.UnsafePointer:
		return av.Pointer() == bv.Pointer()
	case reflect.Slice:
		// zero capacity slices share a data pointer without sharing storage
		if av.Cap() == 0 || bv.Cap() == 0 {
			return false
		}
		return av.Pointer() == bv.Pointer() && av.Len() == bv.Len()
	case reflect.Func:
		return false
	}
	if !av.Comparable() {
		return false
	}
	return a == b
}

// unique returns a new sequence holding the first occurrence of every value in
// values, compared with identical.
func unique(values []interface{}) []interface{} {
	out := make([]interface{}, 0, len(values))
	for _, v := range values {
		seen := false
		for _, u := range out {
			if identical(u, v) {
				seen = true
				break
			}
		}
		if !seen {
			out = append(out, v)
		}
	}
	return out
}
