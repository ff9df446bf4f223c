// Package mapper converts slices of domain objects into response DTOs.
package mapper

// MapSlice applies fn to every item. The result is never nil, so an empty
// listing encodes as [] rather than null.
func MapSlice[T any, R any](items []T, fn func(T) R) []R {
	result := make([]R, 0, len(items))
	for _, item := range items {
		result = append(result, fn(item))
	}
	return result
}
