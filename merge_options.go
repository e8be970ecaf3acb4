package blend

import (
	"github.com/hashicorp/go-hclog"
)

// MergeOptions configures a merge. DedupArrays only has an effect together
// with Deep, since sequences are only concatenated by a deep merge.
type MergeOptions struct {
	Deep        bool
	DedupArrays bool
	Logger      hclog.Logger
}

func NewMergeOptions() *MergeOptions {
	return &MergeOptions{
		Deep:        false,
		DedupArrays: false,
		Logger:      hclog.NewNullLogger(),
	}
}

func WithDeep(opts *MergeOptions) *MergeOptions {
	opts.Deep = true
	return opts
}

// WithDedupArrays enables deduplication of concatenated sequences. It implies
// WithDeep.
func WithDedupArrays(opts *MergeOptions) *MergeOptions {
	opts.Deep = true
	opts.DedupArrays = true
	return opts
}

func WithLogger(logger hclog.Logger) MergeOptionsFunc {
	return func(opts *MergeOptions) *MergeOptions {
		if logger != nil {
			opts.Logger = logger
		}
		return opts
	}
}

type MergeOptionsFunc func(opts *MergeOptions) *MergeOptions

func newMergeOptions(fns []MergeOptionsFunc) *MergeOptions {
	opts := NewMergeOptions()
	for _, fn := range fns {
		fn(opts)
	}
	return opts
}
