package document

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/hris-console/internal/domain/document"
	"github.com/cmlabs-hris/hris-console/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() document.DocumentService {
	return NewDocumentService(memory.NewDocumentRepository())
}

func TestDocumentService_CreateAssignsID(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	created, err := svc.Create(ctx, document.Employees, document.Document{"name": "Alice"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID())

	got, err := svc.Get(ctx, document.Employees, created.ID())
	require.NoError(t, err)
	assert.Equal(t, "Alice", got["name"])
}

func TestDocumentService_CreateKeepsNumericID(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	created, err := svc.Create(ctx, document.Departments, document.Document{"id": float64(7), "name": "Eng"})
	require.NoError(t, err)
	assert.Equal(t, "7", created.ID())

	_, err = svc.Get(ctx, document.Departments, "7")
	assert.NoError(t, err)
}

func TestDocumentService_UnknownCollection(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	_, err := svc.List(ctx, "users")
	assert.ErrorIs(t, err, document.ErrUnknownCollection)

	_, err = svc.Create(ctx, "users", document.Document{})
	assert.ErrorIs(t, err, document.ErrUnknownCollection)
}

func TestDocumentService_ReplaceUsesPathID(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	created, err := svc.Create(ctx, document.Employees, document.Document{"name": "Alice"})
	require.NoError(t, err)

	replaced, err := svc.Replace(ctx, document.Employees, created.ID(), document.Document{"id": "other", "name": "Alice B"})
	require.NoError(t, err)
	assert.Equal(t, created.ID(), replaced.ID())
	assert.Equal(t, "Alice B", replaced["name"])
}

func TestDocumentService_MergeCannotChangeID(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	created, err := svc.Create(ctx, document.Employees, document.Document{"name": "Alice", "status": "Active"})
	require.NoError(t, err)

	merged, err := svc.Merge(ctx, document.Employees, created.ID(), document.Document{"id": "x", "status": "On Leave"})
	require.NoError(t, err)
	assert.Equal(t, created.ID(), merged.ID())
	assert.Equal(t, "On Leave", merged["status"])
	assert.Equal(t, "Alice", merged["name"])
}

func TestDocumentService_Seed(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	err := svc.Seed(ctx, map[string][]document.Document{
		document.Departments: {{"id": "1", "name": "Eng"}},
		document.Employees:   {{"name": "Alice", "department": "Eng"}},
		"users":              {{"id": "1"}},
	})
	require.NoError(t, err)

	departments, err := svc.List(ctx, document.Departments)
	require.NoError(t, err)
	assert.Len(t, departments, 1)

	employees, err := svc.List(ctx, document.Employees)
	require.NoError(t, err)
	require.Len(t, employees, 1)
	assert.NotEmpty(t, employees[0].ID())
}
