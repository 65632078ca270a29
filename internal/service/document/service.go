package document

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/hris-console/internal/domain/document"
	"github.com/cmlabs-hris/hris-console/internal/pkg/validator"
	"github.com/google/uuid"
)

type documentServiceImpl struct {
	repo  document.DocumentRepository
	newID func() string
}

func NewDocumentService(repo document.DocumentRepository) document.DocumentService {
	return &documentServiceImpl{
		repo:  repo,
		newID: newUUIDv7,
	}
}

func newUUIDv7() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

func checkCollection(collection string) error {
	if !validator.IsInSlice(collection, document.Collections) {
		return fmt.Errorf("%w: %s", document.ErrUnknownCollection, collection)
	}
	return nil
}

func (s *documentServiceImpl) List(ctx context.Context, collection string) ([]document.Document, error) {
	if err := checkCollection(collection); err != nil {
		return nil, err
	}
	return s.repo.List(ctx, collection)
}

func (s *documentServiceImpl) Get(ctx context.Context, collection, id string) (document.Document, error) {
	if err := checkCollection(collection); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, collection, id)
}

// Create stores doc under its own id, or under a fresh UUIDv7 when it has none.
func (s *documentServiceImpl) Create(ctx context.Context, collection string, doc document.Document) (document.Document, error) {
	if err := checkCollection(collection); err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, document.ErrInvalidDocument
	}

	doc = doc.Clone()
	id := doc.ID()
	if id == "" {
		id = s.newID()
		doc["id"] = id
	}

	return s.repo.Create(ctx, collection, id, doc)
}

// Replace overwrites the whole document; the id always comes from the path.
func (s *documentServiceImpl) Replace(ctx context.Context, collection, id string, doc document.Document) (document.Document, error) {
	if err := checkCollection(collection); err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, document.ErrInvalidDocument
	}

	doc = doc.Clone()
	doc["id"] = id

	return s.repo.Replace(ctx, collection, id, doc)
}

// Merge applies a shallow patch; the id cannot be patched.
func (s *documentServiceImpl) Merge(ctx context.Context, collection, id string, patch document.Document) (document.Document, error) {
	if err := checkCollection(collection); err != nil {
		return nil, err
	}
	if patch == nil {
		return nil, document.ErrInvalidDocument
	}

	patch = patch.Clone()
	delete(patch, "id")

	return s.repo.Merge(ctx, collection, id, patch)
}

func (s *documentServiceImpl) Delete(ctx context.Context, collection, id string) error {
	if err := checkCollection(collection); err != nil {
		return err
	}
	return s.repo.Delete(ctx, collection, id)
}

// Seed imports known collections and ignores the rest of the file.
func (s *documentServiceImpl) Seed(ctx context.Context, data map[string][]document.Document) error {
	for _, collection := range document.Collections {
		docs := data[collection]
		if len(docs) == 0 {
			continue
		}

		prepared := make([]document.Document, 0, len(docs))
		for _, doc := range docs {
			doc = doc.Clone()
			if doc.ID() == "" {
				doc["id"] = s.newID()
			}
			prepared = append(prepared, doc)
		}

		inserted, err := s.repo.Import(ctx, collection, prepared)
		if err != nil {
			return fmt.Errorf("failed to seed %s: %w", collection, err)
		}
		slog.Info("Collection seeded", "collection", collection, "documents", len(prepared), "inserted", inserted)
	}

	for collection := range data {
		if !validator.IsInSlice(collection, document.Collections) {
			slog.Warn("Ignoring unknown collection in seed", "collection", collection)
		}
	}

	return nil
}
