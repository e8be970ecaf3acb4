package blend

import (
	"sort"
	"strconv"

	"github.com/hashicorp/go-hclog"
)

// Merge copies the entries of every source into target, left to right, and
// returns the result.
//
// A mapping target is mutated in place and returned, so the result is the
// same map the caller passed. Sequences are never modified in place: a deep
// merge of a sequence source concatenates it onto the target and returns a
// new sequence, and nested sequences are rebuilt the same way.
//
// A nil or Absent target defaults to an empty mapping. nil and Absent sources
// are skipped, as is a source identical to the target. Arguments are validated
// before anything is written, so an error leaves the target untouched.
//
// Without Deep, nested mappings are replaced wholesale while nested sequences
// are overwritten index by index; indices skipped while growing a sequence
// hold nil. With Deep, nested plain mappings are merged
// recursively and nested sequences are concatenated, and deduplicated when
// DedupArrays is set.
func Merge(opts *MergeOptions, target interface{}, sources ...interface{}) (interface{}, error) {
	if opts == nil {
		opts = NewMergeOptions()
	}
	if opts.Logger == nil {
		o := *opts
		o.Logger = hclog.NewNullLogger()
		opts = &o
	}

	target, err := validate(opts, target, sources)
	if err != nil {
		return nil, err
	}

	for i, source := range sources {
		if source == nil || isAbsent(source) {
			continue
		}
		if identical(source, target) {
			opts.Logger.Trace("skipping source identical to target", "index", i)
			continue
		}
		target = mergeSource(opts, target, source)
	}
	return target, nil
}

func mergeSource(opts *MergeOptions, target, source interface{}) interface{} {
	if seq, ok := source.([]interface{}); ok && opts.Deep {
		return concat(opts, target.([]interface{}), seq)
	}

	switch t := target.(type) {
	case map[string]interface{}:
		mergeIntoMapping(opts, t, source)
		return t
	case []interface{}:
		return mergeIntoSequence(opts, t, source.([]interface{}))
	}
	return target
}

func concat(opts *MergeOptions, target, source []interface{}) []interface{} {
	out := make([]interface{}, 0, len(target)+len(source))
	out = append(out, target...)
	out = append(out, source...)
	if opts.DedupArrays {
		out = unique(out)
	}
	opts.Logger.Trace("concatenated sequences", "target", len(target), "source", len(source), "result", len(out))
	return out
}

func mergeIntoMapping(opts *MergeOptions, target map[string]interface{}, source interface{}) {
	switch s := source.(type) {
	case map[string]interface{}:
		keys := make([]string, 0, len(s))
		for k := range s {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, k := range keys {
			src, ok := target[k]
			if !ok {
				src = Absent
			}
			if v, set := mergeValue(opts, target, k, src, s[k]); set {
				target[k] = v
			}
		}
	case []interface{}:
		for i, val := range s {
			k := strconv.Itoa(i)
			src, ok := target[k]
			if !ok {
				src = Absent
			}
			if v, set := mergeValue(opts, target, k, src, val); set {
				target[k] = v
			}
		}
	}
}

func mergeIntoSequence(opts *MergeOptions, target, source []interface{}) []interface{} {
	size := len(target)
	if len(source) > size {
		size = len(source)
	}
	out := make([]interface{}, len(target), size)
	copy(out, target)

	for i, c := range source {
		var src interface{} = Absent
		if i < len(out) {
			src = out[i]
		}
		v, set := mergeValue(opts, target, strconv.Itoa(i), src, c)
		if !set {
			continue
		}
		for len(out) <= i {
			out = append(out, nil)
		}
		out[i] = v
	}
	return out
}

// mergeValue decides what key k of container becomes when src, its current
// value, meets val from a source. The second result is false when the key
// must be left untouched.
func mergeValue(opts *MergeOptions, container interface{}, k string, src, val interface{}) (interface{}, bool) {
	if identical(val, container) || identical(src, val) {
		return nil, false
	}

	switch c := val.(type) {
	case []interface{}:
		clone, ok := src.([]interface{})
		if !ok {
			clone = []interface{}{}
		}
		if opts.Logger.IsTrace() {
			opts.Logger.Trace("descending into sequence", "key", k, "seeded", ok)
		}
		return mergeSource(opts, clone, c), true
	case map[string]interface{}:
		if !opts.Deep {
			break
		}
		clone, ok := src.(map[string]interface{})
		if !ok || clone == nil {
			clone = map[string]interface{}{}
		}
		if opts.Logger.IsTrace() {
			opts.Logger.Trace("descending into mapping", "key", k, "seeded", ok)
		}
		mergeIntoMapping(opts, clone, c)
		return clone, true
	}

	if isAbsent(val) {
		return nil, false
	}
	return val, true
}
