package utils

// SliceContains reports whether v is present in arr.
func SliceContains[T comparable](arr []T, v T) bool {
	for _, vv := range arr {
		if vv == v {
			return true
		}
	}
	return false
}

// MustSliceConvert converts a slice with the given transform.
func MustSliceConvert[S, D any](srcS []S, convert func(src S) D) []D {
	resS := make([]D, 0, len(srcS))
	for _, src := range srcS {
		resS = append(resS, convert(src))
	}
	return resS
}
