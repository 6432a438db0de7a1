// Package repository contains the Mongo-backed data access layer. Every
// repository is an interface with a single Mongo implementation; unique
// indexes are created when the implementation is constructed.
package repository

// InsertResult reports the outcome of an insert in the wire shape clients of
// this API have always consumed. InsertedID is nil when a duplicate guard
// short-circuited the insert.
type InsertResult struct {
	InsertedID any `json:"insertedId"`
}

// UpdateResult reports the outcome of an update.
type UpdateResult struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

// DeleteResult reports the outcome of a delete.
type DeleteResult struct {
	DeletedCount int64 `json:"deletedCount"`
}
