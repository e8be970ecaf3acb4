package blend

import (
	"fmt"
	"sort"

	"github.com/pkg/errors"
)

type MergePolicy int

const (
	// default policy, overwrite entries of the target with those of the
	// sources, replacing nested mappings wholesale
	PolicyShallow MergePolicy = iota

	// merge nested mappings recursively and concatenate sequences
	PolicyDeep

	// like PolicyDeep, and drop duplicate values from concatenated sequences
	PolicyDeepUnique
)

var policyNames = map[MergePolicy]string{
	PolicyShallow:    "shallow",
	PolicyDeep:       "deep",
	PolicyDeepUnique: "unique",
}

func (p MergePolicy) String() string {
	if name, ok := policyNames[p]; ok {
		return name
	}
	return fmt.Sprintf("MergePolicy(%d)", int(p))
}

// ParsePolicy returns the policy with the given name.
func ParsePolicy(name string) (MergePolicy, error) {
	for p, n := range policyNames {
		if n == name {
			return p, nil
		}
	}
	return PolicyShallow, errors.Errorf("unknown merge policy %q", name)
}

func (p MergePolicy) options() []MergeOptionsFunc {
	switch p {
	case PolicyDeep:
		return []MergeOptionsFunc{WithDeep}
	case PolicyDeepUnique:
		return []MergeOptionsFunc{WithDedupArrays}
	default:
		return nil
	}
}

type Merger interface {
	Merge(target interface{}, sources ...interface{}) (interface{}, error)
}

type MergersRegistry interface {
	Get(name string) (Merger, bool)
	Register(name string, merger Merger) bool
	Names() []string
}

// NewMerger returns a Merger that merges with the options built from fns.
func NewMerger(fns ...MergeOptionsFunc) Merger {
	return &merger{
		opts: newMergeOptions(fns),
	}
}

type merger struct {
	opts *MergeOptions
}

func (m *merger) Merge(target interface{}, sources ...interface{}) (interface{}, error) {
	return Merge(m.opts, target, sources...)
}

var (
	shallowMerger    = NewMerger()
	deepMerger       = NewMerger(WithDeep)
	deepUniqueMerger = NewMerger(WithDedupArrays)
)

func DefaultMerger(policy MergePolicy) Merger {
	switch policy {
	case PolicyShallow:
		return shallowMerger
	case PolicyDeep:
		return deepMerger
	case PolicyDeepUnique:
		return deepUniqueMerger
	default:
		return nil
	}
}

// NewMergersRegistry returns a registry holding a merger for every policy,
// registered under the policy name. fns are applied on top of each policy's
// own options.
func NewMergersRegistry(fns ...MergeOptionsFunc) MergersRegistry {
	r := &mergersRegistry{
		registry: make(map[string]Merger),
	}
	for p, name := range policyNames {
		r.Register(name, NewMerger(append(p.options(), fns...)...))
	}
	return r
}

type mergersRegistry struct {
	registry map[string]Merger
}

func (r *mergersRegistry) Get(name string) (Merger, bool) {
	merger, ok := r.registry[name]
	return merger, ok
}

func (r *mergersRegistry) Register(name string, merger Merger) bool {
	if r.registry == nil {
		r.registry = make(map[string]Merger)
	}
	_, replaced := r.registry[name]
	r.registry[name] = merger
	return !replaced
}

func (r *mergersRegistry) Names() []string {
	names := make([]string, 0, len(r.registry))
	for name := range r.registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
