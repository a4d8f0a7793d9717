// Package remote implements the document-store protocol: a three-operation
// HTTP API (setup, load, save) over a single-row table keyed by a fixed
// constant id. The server side offers Postgres and sqlite backends; the
// client side is what the syncer talks to.
package remote

import "context"

// DocumentKey is the fixed single-user row id.
const DocumentKey = "default"

// DocStore persists the one founder document.
type DocStore interface {
	// EnsureSchema idempotently creates the backing table and seed row.
	EnsureSchema(ctx context.Context) error
	// Load returns the stored document, or nil when none has been saved.
	Load(ctx context.Context) ([]byte, error)
	// Save replaces the stored document wholesale.
	Save(ctx context.Context, data []byte) error
	Close()
}
