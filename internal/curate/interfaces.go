package curate

import "context"

// Store persists and retrieves named record sets.
// The canonical implementation is the JSONL FileStore.
type Store interface {
	List(ctx context.Context) ([]string, error)
	Load(ctx context.Context, name string) (*Dataset, error)
	Save(ctx context.Context, d *Dataset) error
}
