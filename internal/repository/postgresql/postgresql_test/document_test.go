package postgresql_test

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/hris-console/internal/domain/document"
	"github.com/cmlabs-hris/hris-console/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentRepository_CreateGetList(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	repo := postgresql.NewDocumentRepository(setup.DB)

	_, err := repo.Create(ctx, document.Departments, "2", document.Document{"id": "2", "name": "Sales", "budget": float64(50000)})
	require.NoError(t, err)
	_, err = repo.Create(ctx, document.Departments, "1", document.Document{"id": "1", "name": "Eng", "budget": float64(100000)})
	require.NoError(t, err)

	got, err := repo.Get(ctx, document.Departments, "1")
	require.NoError(t, err)
	assert.Equal(t, "Eng", got["name"])
	assert.Equal(t, float64(100000), got["budget"])

	docs, err := repo.List(ctx, document.Departments)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "2", docs[0].ID())
	assert.Equal(t, "1", docs[1].ID())

	other, err := repo.List(ctx, document.Employees)
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestDocumentRepository_CreateDuplicate(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	repo := postgresql.NewDocumentRepository(setup.DB)

	_, err := repo.Create(ctx, document.Employees, "1", document.Document{"id": "1"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, document.Employees, "1", document.Document{"id": "1"})
	assert.ErrorIs(t, err, document.ErrDuplicateID)
}

func TestDocumentRepository_MergeReplaceDelete(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	repo := postgresql.NewDocumentRepository(setup.DB)

	_, err := repo.Create(ctx, document.Employees, "1", document.Document{
		"id":         "1",
		"status":     "Active",
		"attendance": map[string]any{"daysWorked": float64(3)},
	})
	require.NoError(t, err)

	merged, err := repo.Merge(ctx, document.Employees, "1", document.Document{"status": "On Leave"})
	require.NoError(t, err)
	assert.Equal(t, "On Leave", merged["status"])
	assert.Equal(t, map[string]any{"daysWorked": float64(3)}, merged["attendance"])

	replaced, err := repo.Replace(ctx, document.Employees, "1", document.Document{"id": "1", "status": "Active"})
	require.NoError(t, err)
	assert.NotContains(t, replaced, "attendance")

	require.NoError(t, repo.Delete(ctx, document.Employees, "1"))
	assert.ErrorIs(t, repo.Delete(ctx, document.Employees, "1"), document.ErrDocumentNotFound)

	_, err = repo.Get(ctx, document.Employees, "1")
	assert.ErrorIs(t, err, document.ErrDocumentNotFound)
	_, err = repo.Merge(ctx, document.Employees, "1", document.Document{"status": "Active"})
	assert.ErrorIs(t, err, document.ErrDocumentNotFound)
}

func TestDocumentRepository_ImportIsIdempotent(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	repo := postgresql.NewDocumentRepository(setup.DB)

	docs := []document.Document{
		{"id": "1", "name": "Eng"},
		{"id": "2", "name": "Sales"},
	}

	inserted, err := repo.Import(ctx, document.Departments, docs)
	require.NoError(t, err)
	assert.Equal(t, 2, inserted)

	inserted, err = repo.Import(ctx, document.Departments, docs)
	require.NoError(t, err)
	assert.Equal(t, 0, inserted)
}
