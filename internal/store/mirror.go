package store

import "context"

// Mirror is an optional remote copy of the document tree. Pull returns the
// remote payload per collection; Push writes one collection (a nil payload
// deletes it); Subscribe registers a callback invoked whenever a collection
// changes remotely. Implementations resolve concurrent writers
// last-write-wins; the store does no reconciliation on top.
type Mirror interface {
	Pull(ctx context.Context) (map[string][]byte, error)
	Push(ctx context.Context, name string, payload []byte) error
	Subscribe(ctx context.Context, fn func(name string, payload []byte)) error
	Close(ctx context.Context) error
}
