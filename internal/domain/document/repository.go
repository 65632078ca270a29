package document

import "context"

// DocumentRepository persists documents per collection in insertion order.
type DocumentRepository interface {
	List(ctx context.Context, collection string) ([]Document, error)
	Get(ctx context.Context, collection, id string) (Document, error)
	Create(ctx context.Context, collection, id string, doc Document) (Document, error)
	Replace(ctx context.Context, collection, id string, doc Document) (Document, error)
	// Merge applies a shallow patch: top level keys of patch overwrite the stored ones.
	Merge(ctx context.Context, collection, id string, patch Document) (Document, error)
	Delete(ctx context.Context, collection, id string) error
	// Import inserts documents whose ids are not taken yet and returns how many were inserted.
	Import(ctx context.Context, collection string, docs []Document) (int, error)
}
