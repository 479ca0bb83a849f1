// Package repositories declares the store-adapter contracts consumed by the
// service layer. Two implementations exist: mongo (production) and memory
// (tests, and running without a MongoDB instance).
package repositories

import (
	"context"
	"time"
)

// Document is anything addressable by its server-generated id.
type Document interface {
	DocumentID() string
}

// Stampable constrains pointer types whose identity block the CRUD engine
// can write.
type Stampable[T any] interface {
	*T
	Stamp(id string, now time.Time)
	Touch(now time.Time)
}

// Collection is a flat document collection holding one resource kind.
type Collection[T Document] interface {
	Insert(ctx context.Context, doc T) error
	// FindByID returns utils.ErrNotFound when no document matches.
	FindByID(ctx context.Context, id string) (T, error)
	// List returns up to limit documents in the collection's configured order.
	List(ctx context.Context, limit int64) ([]T, error)
	// Replace overwrites every schema field of the document with the given
	// id, preserving id and created_at. It returns utils.ErrNotFound only
	// when no document matches; rewriting identical values is a success.
	Replace(ctx context.Context, id string, doc T) error
	// Delete returns utils.ErrNotFound when no document matched.
	Delete(ctx context.Context, id string) error
}

// Singleton is a collection that holds at most one document.
type Singleton[T any] interface {
	// Get returns utils.ErrNotFound until the first Upsert.
	Get(ctx context.Context) (T, error)
	// Upsert creates the document from candidate when none exists, or
	// overwrites its schema fields (keeping id and created_at) when one
	// does. The stored document is returned either way.
	Upsert(ctx context.Context, candidate T) (T, error)
}
