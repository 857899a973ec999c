package common

// Coalesce returns the first non-zero value in values, or the zero value when
// every entry is zero. The renderer uses this to fold omitted sampler staging
// fields onto their defaults.
//
// Parameters:
//   - values: candidate values, highest priority first
//
// Returns:
//   - T: the first non-zero candidate, or the zero value
func Coalesce[T comparable](values ...T) T {
	var zero T
	for _, v := range values {
		if v != zero {
			return v
		}
	}
	return zero
}
