package blend

import (
	"reflect"

	"github.com/pkg/errors"
)

// validate defaults a missing target and checks every source once, before
// anything is merged. Nested values are only inspected for reference cycles;
// recursion never meets a container it did not build or validate.
func validate(opts *MergeOptions, target interface{}, sources []interface{}) (interface{}, error) {
	if target == nil || isAbsent(target) {
		target = map[string]interface{}{}
	}
	if m, ok := target.(map[string]interface{}); ok && m == nil {
		target = map[string]interface{}{}
	}

	kind := KindOf(target)
	if kind == KindScalar {
		return nil, errors.WithStack(&InvalidTargetError{Value: target})
	}

	for i, source := range sources {
		if source == nil || isAbsent(source) {
			continue
		}
		// a sequence target is replaced while merging, so only a mapping
		// target is certain to still be identical when the source comes up
		if kind == KindMapping && identical(source, target) {
			continue
		}

		switch KindOf(source) {
		case KindScalar:
			return nil, errors.WithStack(&InvalidSourceError{Index: i, Value: source, Reason: "not a mapping or sequence"})
		case KindMapping:
			if kind == KindSequence {
				return nil, errors.WithStack(&InvalidSourceError{Index: i, Value: source, Reason: "a mapping cannot be merged into a sequence"})
			}
		case KindSequence:
			if kind == KindMapping && opts.Deep {
				return nil, errors.WithStack(&InvalidSourceError{Index: i, Value: source, Reason: "a sequence cannot be concatenated onto a mapping"})
			}
		}

		if cyclic(opts, source, map[uintptr]bool{}) {
			return nil, errors.WithStack(&InvalidSourceError{Index: i, Value: source, Reason: "contains a reference cycle"})
		}
	}
	return target, nil
}

// cyclic reports whether v reaches itself along a path the merge would
// follow. A deep merge only walks nested mappings, since sequences are
// concatenated without looking at their elements. A shallow merge only walks
// nested sequences, since mappings are assigned whole.
func cyclic(opts *MergeOptions, v interface{}, path map[uintptr]bool) bool {
	var children []interface{}
	switch c := v.(type) {
	case map[string]interface{}:
		for _, child := range c {
			children = append(children, child)
		}
	case []interface{}:
		if opts.Deep || cap(c) == 0 {
			return false
		}
		children = c
	default:
		return false
	}

	ptr := reflect.ValueOf(v).Pointer()
	if path[ptr] {
		return true
	}
	path[ptr] = true
	defer delete(path, ptr)

	for _, child := range children {
		switch child.(type) {
		case []interface{}:
			if opts.Deep {
				continue
			}
		case map[string]interface{}:
			if !opts.Deep {
				continue
			}
		default:
			continue
		}
		if cyclic(opts, child, path) {
			return true
		}
	}
	return false
}
