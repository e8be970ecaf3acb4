// Package blend merges the contents of one or more source containers into a
// target container.
//
// Containers are the shapes produced by decoding JSON or YAML into an
// interface{}: mappings are map[string]interface{} and sequences are
// []interface{}. Every other value is a scalar and is copied as is.
//
//	Blend(target, sources...)           // shallow
//	BlendDeep(target, sources...)       // recursive
//	BlendDeepUnique(target, sources...) // recursive, merged sequences deduplicated
//
// The Extend functions are the same operations under a second name.
package blend

// Blend merges sources into target without recursing into nested mappings.
func Blend(target interface{}, sources ...interface{}) (interface{}, error) {
	return shallowMerger.Merge(target, sources...)
}

// BlendDeep merges sources into target, recursing into nested plain mappings
// and concatenating sequences.
func BlendDeep(target interface{}, sources ...interface{}) (interface{}, error) {
	return deepMerger.Merge(target, sources...)
}

// BlendDeepUnique is BlendDeep with duplicate values removed from every
// concatenated sequence, keeping the first occurrence.
func BlendDeepUnique(target interface{}, sources ...interface{}) (interface{}, error) {
	return deepUniqueMerger.Merge(target, sources...)
}

// Extend is Blend.
func Extend(target interface{}, sources ...interface{}) (interface{}, error) {
	return Blend(target, sources...)
}

// ExtendDeep is BlendDeep.
func ExtendDeep(target interface{}, sources ...interface{}) (interface{}, error) {
	return BlendDeep(target, sources...)
}

// ExtendDeepUnique is BlendDeepUnique.
func ExtendDeepUnique(target interface{}, sources ...interface{}) (interface{}, error) {
	return BlendDeepUnique(target, sources...)
}
