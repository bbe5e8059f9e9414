package preference

import "context"

// Store persists one Document per identity token.
//
// Get returns the stored document or, when none exists, the default
// document without persisting it. Put replaces any existing document
// unconditionally; concurrent writers for one token resolve as
// last-write-wins.
type Store interface {
	Get(ctx context.Context, token string) (Document, error)
	Put(ctx context.Context, token string, doc Document) error
}
