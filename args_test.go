package blend

import (
	"testing"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func TestParseArgs(t *testing.T) {
	target := mapping{"t": 1}
	s1 := mapping{"a": 1}
	s2 := mapping{"b": 2}

	cases := []struct {
		name    string
		args    []interface{}
		deep    bool
		dedup   bool
		target  interface{}
		sources []interface{}
	}{
		{name: "empty", args: nil},
		{name: "target only", args: sequence{target}, target: target, sources: sequence{}},
		{name: "shallow", args: sequence{target, s1, s2}, target: target, sources: sequence{s1, s2}},
		{name: "deep", args: sequence{true, target, s1}, deep: true, target: target, sources: sequence{s1}},
		{name: "deep dedup", args: sequence{true, true, target, s1, s2}, deep: true, dedup: true, target: target, sources: sequence{s1, s2}},
		{name: "explicit false", args: sequence{false, false, target}, target: target, sources: sequence{}},
		{name: "deep without target", args: sequence{true}, deep: true, sources: sequence{}},
		{name: "deep dedup without target", args: sequence{true, true}, deep: true, dedup: true, sources: sequence{}},
		{name: "bool after target is a source", args: sequence{target, true}, target: target, sources: sequence{true}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			opts, target, sources := parseArgs(c.args)
			assert.Check(t, is.Equal(opts.Deep, c.deep))
			assert.Check(t, is.Equal(opts.DedupArrays, c.dedup))
			assert.Check(t, is.DeepEqual(target, c.target))
			assert.Check(t, is.DeepEqual(sources, c.sources))
		})
	}
}

func TestMergeArgs(t *testing.T) {
	out, err := MergeArgs(true)
	assert.NilError(t, err)
	assert.DeepEqual(t, out, mapping{})

	out, err = MergeArgs(mapping{"a": mapping{"x": 1}}, mapping{"a": mapping{"y": 2}})
	assert.NilError(t, err)
	assert.DeepEqual(t, out, mapping{"a": mapping{"y": 2}})

	out, err = MergeArgs(true, mapping{"a": mapping{"x": 1}}, mapping{"a": mapping{"y": 2}})
	assert.NilError(t, err)
	assert.DeepEqual(t, out, mapping{"a": mapping{"x": 1, "y": 2}})

	out, err = MergeArgs(true, true, mapping{"a": sequence{1, 2}}, mapping{"a": sequence{2, 3}})
	assert.NilError(t, err)
	assert.DeepEqual(t, out, mapping{"a": sequence{1, 2, 3}})

	_, err = MergeArgs(mapping{}, true)
	assert.ErrorIs(t, err, ErrInvalidSource)
}
