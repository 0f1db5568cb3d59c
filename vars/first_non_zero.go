package vars

// FirstNonZero picks the setting with the highest precedence: flags first,
// then config files, then defaults.
func FirstNonZero[T comparable](values ...T) T {
	var zero T
	for _, value := range values {
		if value != zero {
			return value
		}
	}
	return zero
}
