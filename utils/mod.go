package utils

// FindIndex returns the position of item in slice, or -1 if absent.
func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

// InRange reports whether lower <= value <= upper.
func InRange(value, lower, upper int) bool {
	return value >= lower && value <= upper
}
