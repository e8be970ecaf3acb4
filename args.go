package blend

// MergeArgs merges with the options given positionally in front of the
// target:
//
//	MergeArgs(target, sources...)
//	MergeArgs(deep, target, sources...)
//	MergeArgs(deep, dedupArrays, target, sources...)
//
// A leading bool is taken as deep. A bool right after it is taken as
// dedupArrays; there is no way to ask for deduplication without first
// saying whether the merge is deep. A missing target defaults to an empty
// mapping.
func MergeArgs(args ...interface{}) (interface{}, error) {
	opts, target, sources := parseArgs(args)
	return Merge(opts, target, sources...)
}

func parseArgs(args []interface{}) (*MergeOptions, interface{}, []interface{}) {
	opts := NewMergeOptions()
	i := 0

	if len(args) > i {
		if deep, ok := args[i].(bool); ok {
			opts.Deep = deep
			i++

			if len(args) > i {
				if dedup, ok := args[i].(bool); ok {
					opts.DedupArrays = dedup
					i++
				}
			}
		}
	}

	var target interface{}
	if len(args) > i {
		target = args[i]
		i++
	}
	return opts, target, args[i:]
}
