package document

import "context"

type DocumentService interface {
	List(ctx context.Context, collection string) ([]Document, error)
	Get(ctx context.Context, collection, id string) (Document, error)
	Create(ctx context.Context, collection string, doc Document) (Document, error)
	Replace(ctx context.Context, collection, id string, doc Document) (Document, error)
	Merge(ctx context.Context, collection, id string, patch Document) (Document, error)
	Delete(ctx context.Context, collection, id string) error
	// Seed imports a json-server style database: {"employees": [...], "departments": [...]}
	Seed(ctx context.Context, data map[string][]Document) error
}
