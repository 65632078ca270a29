package memory

import (
	"context"
	"sync"

	"github.com/cmlabs-hris/hris-console/internal/domain/document"
)

type collection struct {
	order []string
	docs  map[string]document.Document
}

type documentRepositoryImpl struct {
	mu          sync.RWMutex
	collections map[string]*collection
}

// NewDocumentRepository returns an in-process document store. Contents are
// lost on restart.
func NewDocumentRepository() document.DocumentRepository {
	return &documentRepositoryImpl{
		collections: make(map[string]*collection),
	}
}

func (r *documentRepositoryImpl) collection(name string) *collection {
	c, ok := r.collections[name]
	if !ok {
		c = &collection{docs: make(map[string]document.Document)}
		r.collections[name] = c
	}
	return c
}

// List implements document.DocumentRepository.
func (r *documentRepositoryImpl) List(ctx context.Context, name string) ([]document.Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.collections[name]
	if !ok {
		return []document.Document{}, nil
	}

	result := make([]document.Document, 0, len(c.order))
	for _, id := range c.order {
		result = append(result, c.docs[id].Clone())
	}
	return result, nil
}

// Get implements document.DocumentRepository.
func (r *documentRepositoryImpl) Get(ctx context.Context, name, id string) (document.Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.collections[name]
	if !ok {
		return nil, document.ErrDocumentNotFound
	}
	doc, ok := c.docs[id]
	if !ok {
		return nil, document.ErrDocumentNotFound
	}
	return doc.Clone(), nil
}

// Create implements document.DocumentRepository.
func (r *documentRepositoryImpl) Create(ctx context.Context, name, id string, doc document.Document) (document.Document, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c := r.collection(name)
	if _, exists := c.docs[id]; exists {
		return nil, document.ErrDuplicateID
	}
	c.docs[id] = doc.Clone()
	c.order = append(c.order, id)
	return doc.Clone(), nil
}

// Replace implements document.DocumentRepository.
func (r *documentRepositoryImpl) Replace(ctx context.Context, name, id string, doc document.Document) (document.Document, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.collections[name]
	if !ok {
		return nil, document.ErrDocumentNotFound
	}
	if _, exists := c.docs[id]; !exists {
		return nil, document.ErrDocumentNotFound
	}
	c.docs[id] = doc.Clone()
	return doc.Clone(), nil
}

// Merge implements document.DocumentRepository.
func (r *documentRepositoryImpl) Merge(ctx context.Context, name, id string, patch document.Document) (document.Document, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.collections[name]
	if !ok {
		return nil, document.ErrDocumentNotFound
	}
	current, exists := c.docs[id]
	if !exists {
		return nil, document.ErrDocumentNotFound
	}

	merged := current.Clone()
	for k, v := range patch.Clone() {
		merged[k] = v
	}
	c.docs[id] = merged
	return merged.Clone(), nil
}

// Delete implements document.DocumentRepository.
func (r *documentRepositoryImpl) Delete(ctx context.Context, name, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.collections[name]
	if !ok {
		return document.ErrDocumentNotFound
	}
	if _, exists := c.docs[id]; !exists {
		return document.ErrDocumentNotFound
	}

	delete(c.docs, id)
	for i, existing := range c.order {
		if existing == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return nil
}

// Import implements document.DocumentRepository.
func (r *documentRepositoryImpl) Import(ctx context.Context, name string, docs []document.Document) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c := r.collection(name)
	inserted := 0
	for _, doc := range docs {
		id := doc.ID()
		if _, exists := c.docs[id]; exists {
			continue
		}
		c.docs[id] = doc.Clone()
		c.order = append(c.order, id)
		inserted++
	}
	return inserted, nil
}
