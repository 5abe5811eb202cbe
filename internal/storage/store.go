package storage

import (
	"context"
	"errors"
)

// Collection names shared by all backends. The file backend persists
// them as <name>.json, matching the layout of the original data files.
const (
	MenuCollection   = "menu"
	OrdersCollection = "orders"
)

// ErrNotFound is returned by Get when no document has the given id.
var ErrNotFound = errors.New("document not found")

// Store is the document persistence contract. Each call touching a
// single document is atomic with respect to other calls on the same
// document; no cross-document transactions are offered.
//
// Get and List decode into dest (a *T and *[]T respectively) via the
// document's JSON representation.
type Store interface {
	Get(ctx context.Context, collection, id string, dest interface{}) error
	Put(ctx context.Context, collection, id string, doc interface{}) error
	Delete(ctx context.Context, collection, id string) error
	List(ctx context.Context, collection string, dest interface{}) error
}
