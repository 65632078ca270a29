package datastore

import (
	"context"
	"net/http"
	"net/url"
)

// Collection exposes the CRUD verbs of one REST resource, decoding bodies into T.
type Collection[T any] struct {
	client *Client
	name   string
}

func NewCollection[T any](client *Client, name string) *Collection[T] {
	return &Collection[T]{client: client, name: name}
}

func (c *Collection[T]) Name() string {
	return c.name
}

func (c *Collection[T]) path(id string) string {
	if id == "" {
		return "/" + c.name
	}
	return "/" + c.name + "/" + url.PathEscape(id)
}

// List returns the full collection.
func (c *Collection[T]) List(ctx context.Context) ([]T, error) {
	var out []T
	if err := c.client.do(ctx, http.MethodGet, c.path(""), nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

func (c *Collection[T]) Get(ctx context.Context, id string) (T, error) {
	var out T
	err := c.client.do(ctx, http.MethodGet, c.path(id), nil, &out)
	return out, err
}

func (c *Collection[T]) Create(ctx context.Context, record T) (T, error) {
	var out T
	err := c.client.do(ctx, http.MethodPost, c.path(""), record, &out)
	return out, err
}

// Update replaces the record wholesale.
func (c *Collection[T]) Update(ctx context.Context, id string, record T) (T, error) {
	var out T
	err := c.client.do(ctx, http.MethodPut, c.path(id), record, &out)
	return out, err
}

// Patch sends only the given fields.
func (c *Collection[T]) Patch(ctx context.Context, id string, fields map[string]any) (T, error) {
	var out T
	err := c.client.do(ctx, http.MethodPatch, c.path(id), fields, &out)
	return out, err
}

func (c *Collection[T]) Delete(ctx context.Context, id string) error {
	return c.client.do(ctx, http.MethodDelete, c.path(id), nil, nil)
}
