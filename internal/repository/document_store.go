package repository

import (
	"context"
	"errors"
	"fmt"
)

// Collections used by the application.
const (
	CollectionContacts = "contactos"
	CollectionLogos    = "logos"
)

// ErrUnavailable marks any failure of the backing store. Callers must not
// expose the wrapped detail to clients.
var ErrUnavailable = errors.New("document store unavailable")

// Direction orders query results.
type Direction int

const (
	Ascending  Direction = 1
	Descending Direction = -1
)

// Sort names the field results are ordered by.
type Sort struct {
	Field     string
	Direction Direction
}

// Filter matches documents whose top-level fields equal the given values.
// An empty filter matches everything.
type Filter map[string]any

// DocumentStore persists free-form documents grouped in collections. Every
// document read back carries its storage key in the "_id" field as a string.
// Implementations are safe for concurrent use.
type DocumentStore interface {
	// Insert stores doc and returns its storage key.
	Insert(ctx context.Context, collection string, doc any) (string, error)
	// FindSorted decodes up to limit documents into out, a pointer to a slice.
	// A non-positive limit returns every document.
	FindSorted(ctx context.Context, collection string, sort Sort, limit int64, out any) error
	// FindProjected behaves like FindSorted but only returns the named fields
	// of documents matching filter.
	FindProjected(ctx context.Context, collection string, filter Filter, fields []string, sort Sort, limit int64, out any) error
	// DeleteByKey removes at most one document whose key field equals value.
	DeleteByKey(ctx context.Context, collection, key string, value any) (int64, error)
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

func unavailable(op, collection string, err error) error {
	return fmt.Errorf("%w: %s %s: %w", ErrUnavailable, op, collection, err)
}
