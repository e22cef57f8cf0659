// Package store holds the persistence layer: one store per entity over an
// injected *gorm.DB. All reads and writes act on live rows only unless a
// method takes includeDeleted; store-native errors are mapped into the
// package's error set at this boundary.
package store

// Optional marks a column for update. Set false leaves the column untouched;
// Set true with a nil Value clears it.
type Optional[T any] struct {
	Set   bool
	Value *T
}

// Some returns an Optional carrying a value.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: &v}
}

// Null returns an Optional that clears the column.
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true}
}
