// Package entity holds the customer domain model. The types are plain
// attribute holders; validation lives in packages address and customer.
//
// Nullable attributes are pointers (or nil slices): nil means the value was
// not provided.
package entity
