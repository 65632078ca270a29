package datastore_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-console/internal/domain/document"
	"github.com/cmlabs-hris/hris-console/internal/domain/employee"
	"github.com/cmlabs-hris/hris-console/internal/pkg/datastore"
	"github.com/cmlabs-hris/hris-console/internal/pkg/datastore/datastoretest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed() map[string][]document.Document {
	return map[string][]document.Document{
		document.Employees: {
			{"id": float64(1), "name": "Alice", "department": "Eng", "status": "Active", "salary": float64(50000)},
			{"id": "b2", "name": "Bob", "department": "Eng", "status": "On Leave", "salary": float64(70000)},
		},
	}
}

func TestCollection_CRUD(t *testing.T) {
	srv := datastoretest.NewServer(t, seed())
	employees := datastore.NewCollection[employee.Employee](datastore.NewClient(srv.URL), document.Employees)
	ctx := context.Background()

	list, err := employees.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "1", list[0].ID.String())
	assert.Equal(t, "b2", list[1].ID.String())

	created, err := employees.Create(ctx, employee.Employee{Name: "Carol", Department: "Ops", Status: employee.StatusActive})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	created.Salary = 40000
	updated, err := employees.Update(ctx, created.ID.String(), created)
	require.NoError(t, err)
	assert.Equal(t, int64(40000), updated.Salary)

	patched, err := employees.Patch(ctx, "1", map[string]any{"status": employee.StatusOnLeave})
	require.NoError(t, err)
	assert.Equal(t, employee.StatusOnLeave, patched.Status)
	assert.Equal(t, "Alice", patched.Name)

	require.NoError(t, employees.Delete(ctx, "b2"))

	_, err = employees.Get(ctx, "b2")
	require.Error(t, err)
	assert.True(t, datastore.IsNotFound(err))
	assert.Equal(t, "Request failed with status code 404", datastore.Message(err))
}

func TestCollection_EmptyList(t *testing.T) {
	srv := datastoretest.NewServer(t, nil)
	departments := datastore.NewCollection[map[string]any](datastore.NewClient(srv.URL), document.Departments)

	list, err := departments.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestClient_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	employees := datastore.NewCollection[employee.Employee](datastore.NewClient(url), document.Employees)
	_, err := employees.List(context.Background())
	require.Error(t, err)

	var netErr *datastore.NetworkError
	require.True(t, errors.As(err, &netErr))
	assert.Equal(t, 0, netErr.StatusCode)
	assert.Equal(t, http.MethodGet, netErr.Method)
	assert.NotEmpty(t, netErr.Message)
	assert.False(t, datastore.IsNotFound(err))
}

func TestClient_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	employees := datastore.NewCollection[employee.Employee](datastore.NewClient(srv.URL), document.Employees)
	_, err := employees.List(context.Background())

	var netErr *datastore.NetworkError
	require.ErrorAs(t, err, &netErr)
	assert.Equal(t, http.StatusInternalServerError, netErr.StatusCode)
	assert.Equal(t, "Request failed with status code 500", netErr.Message)
}

func TestClient_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(time.Second):
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()

	client := datastore.NewClient(srv.URL, datastore.WithTimeout(50*time.Millisecond))
	employees := datastore.NewCollection[employee.Employee](client, document.Employees)

	_, err := employees.List(context.Background())
	var netErr *datastore.NetworkError
	require.ErrorAs(t, err, &netErr)
	assert.Equal(t, 0, netErr.StatusCode)
}
