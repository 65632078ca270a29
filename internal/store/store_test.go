package store_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-console/internal/domain/department"
	"github.com/cmlabs-hris/hris-console/internal/domain/employee"
	"github.com/cmlabs-hris/hris-console/internal/pkg/sse"
	"github.com/cmlabs-hris/hris-console/internal/store"
	"github.com/cmlabs-hris/hris-console/internal/store/storetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingNotifier struct {
	mu     sync.Mutex
	events []sse.Event
}

func (n *recordingNotifier) Publish(event sse.Event) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, event)
}

func (n *recordingNotifier) names() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	var names []string
	for _, e := range n.events {
		names = append(names, e.Event)
	}
	return names
}

func seedBackend() *storetest.Backend {
	return storetest.NewBackend(
		[]employee.Employee{
			{Name: "Alice", Email: "alice@example.com", Department: "Eng", Position: "Dev", Status: employee.StatusActive, Salary: 50000},
			{Name: "Bob", Email: "bob@example.com", Department: "Eng", Position: "Dev", Status: employee.StatusOnLeave, Salary: 70000},
		},
		[]department.Department{
			{Name: "Eng", Budget: 100000},
		},
	)
}

func newStore(b *storetest.Backend, opts ...store.Option) *store.Store {
	return store.New(b.Employees(), b.Departments(), opts...)
}

func TestStore_InitialState(t *testing.T) {
	s := newStore(seedBackend())

	snap := s.Snapshot()
	assert.Equal(t, store.Idle, snap.EmployeesState)
	assert.Equal(t, store.Idle, snap.DepartmentsState)
	assert.False(t, snap.Loaded())
	assert.Empty(t, snap.Employees)
}

func TestStore_Load(t *testing.T) {
	notifier := &recordingNotifier{}
	loadedAt := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	s := newStore(seedBackend(), store.WithNotifier(notifier), store.WithClock(func() time.Time { return loadedAt }))

	require.NoError(t, s.Load(context.Background()))

	snap := s.Snapshot()
	assert.True(t, snap.Loaded())
	assert.Len(t, snap.Employees, 2)
	assert.Len(t, snap.Departments, 1)
	assert.Equal(t, uint64(1), snap.Version)
	assert.Equal(t, loadedAt, snap.LoadedAt)
	assert.Empty(t, snap.Error)
	assert.Equal(t, []string{store.EventChanged}, notifier.names())
}

func TestStore_LoadFailureMarksBothFailed(t *testing.T) {
	b := seedBackend()
	b.SetErr(storetest.Unreachable())
	notifier := &recordingNotifier{}
	s := newStore(b, store.WithNotifier(notifier))

	err := s.Load(context.Background())
	require.Error(t, err)

	snap := s.Snapshot()
	assert.Equal(t, store.Failed, snap.EmployeesState)
	assert.Equal(t, store.Failed, snap.DepartmentsState)
	assert.Equal(t, "Error fetching data: Network Error", snap.Error)
	assert.Equal(t, []string{store.EventFailed}, notifier.names())
}

func TestStore_CurrentLoadsOnce(t *testing.T) {
	b := seedBackend()
	s := newStore(b)

	_, err := s.Current(context.Background())
	require.NoError(t, err)
	calls := b.CallCount()

	_, err = s.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, calls, b.CallCount())
}

func TestStore_CurrentNotLoaded(t *testing.T) {
	b := seedBackend()
	b.SetErr(storetest.Unreachable())
	s := newStore(b)

	_, err := s.Current(context.Background())
	assert.ErrorIs(t, err, store.ErrNotLoaded)
}

func TestStore_DispatchSuccessReloads(t *testing.T) {
	s := newStore(seedBackend())
	require.NoError(t, s.Load(context.Background()))

	cmd := &store.CreateEmployee{Employee: employee.Employee{Name: "Carol", Department: "Ops", Status: employee.StatusActive, Salary: 40000}}
	require.NoError(t, s.Dispatch(context.Background(), cmd))

	snap := s.Snapshot()
	assert.Equal(t, "Employee added successfully!", snap.Message)
	assert.Len(t, snap.Employees, 3)
	assert.Equal(t, uint64(2), snap.Version)
	assert.NotEmpty(t, cmd.Result.ID)
}

func TestStore_DispatchFailureSetsBanner(t *testing.T) {
	b := seedBackend()
	s := newStore(b)
	require.NoError(t, s.Load(context.Background()))

	b.SetErr(storetest.Unreachable())
	err := s.Dispatch(context.Background(), &store.CreateEmployee{Employee: employee.Employee{Name: "Carol"}})
	require.Error(t, err)

	snap := s.Snapshot()
	assert.Equal(t, "Error adding employee: Network Error", snap.Error)
	assert.Empty(t, snap.Message)
	assert.Len(t, snap.Employees, 2)
	assert.True(t, snap.Loaded())
}

func TestStore_DeleteRequiresConfirmation(t *testing.T) {
	b := seedBackend()
	s := newStore(b)
	require.NoError(t, s.Load(context.Background()))
	calls := b.CallCount()

	err := s.Dispatch(context.Background(), &store.DeleteEmployee{ID: "1"})
	assert.ErrorIs(t, err, store.ErrConfirmationRequired)
	assert.Equal(t, calls, b.CallCount())

	err = s.Dispatch(context.Background(), &store.DeleteDepartment{ID: "3"})
	assert.ErrorIs(t, err, store.ErrConfirmationRequired)
	assert.Equal(t, calls, b.CallCount())
}

func TestStore_ToggleStatusTwice(t *testing.T) {
	s := newStore(seedBackend())
	require.NoError(t, s.Load(context.Background()))

	first := &store.ToggleStatus{ID: "1", Current: employee.StatusActive}
	require.NoError(t, s.Dispatch(context.Background(), first))
	assert.Equal(t, employee.StatusOnLeave, first.Result)

	second := &store.ToggleStatus{ID: "1", Current: first.Result}
	require.NoError(t, s.Dispatch(context.Background(), second))
	assert.Equal(t, employee.StatusActive, second.Result)

	got, ok := s.Snapshot().FindEmployee("1")
	require.True(t, ok)
	assert.Equal(t, employee.StatusActive, got.Status)
}

func TestStore_DeleteDepartmentKeepsEmployees(t *testing.T) {
	s := newStore(seedBackend())
	require.NoError(t, s.Load(context.Background()))

	require.NoError(t, s.Dispatch(context.Background(), &store.DeleteDepartment{ID: "3", Confirm: true}))

	snap := s.Snapshot()
	assert.Empty(t, snap.Departments)
	assert.Len(t, snap.Employees, 2)
	assert.Equal(t, "Department deleted successfully!", snap.Message)
}

func TestStore_Dismiss(t *testing.T) {
	b := seedBackend()
	b.SetErr(storetest.Unreachable())
	s := newStore(b)
	_ = s.Load(context.Background())

	require.NotEmpty(t, s.Snapshot().Error)
	s.DismissError()
	assert.Empty(t, s.Snapshot().Error)

	b.SetErr(nil)
	require.NoError(t, s.Dispatch(context.Background(), &store.CreateDepartment{Department: department.Department{Name: "Ops"}}))
	require.NotEmpty(t, s.Snapshot().Message)
	s.DismissMessage()
	assert.Empty(t, s.Snapshot().Message)
}

func TestSnapshot_View(t *testing.T) {
	s := newStore(seedBackend())
	require.NoError(t, s.Load(context.Background()))

	view := s.Snapshot().View()
	assert.Equal(t, store.Loaded, view.Employees.State)
	assert.Equal(t, 2, view.Employees.Count)
	assert.Equal(t, 1, view.Departments.Count)
	assert.NotNil(t, view.LoadedAt)
}

func TestSnapshot_CopiesAttendance(t *testing.T) {
	b := storetest.NewBackend(
		[]employee.Employee{{Name: "Alice", Department: "Eng", Status: employee.StatusActive,
			Attendance: &employee.Attendance{DaysWorked: 20, LastAttendance: "2024-02-29"}}},
		nil,
	)
	s := newStore(b)
	require.NoError(t, s.Load(context.Background()))

	first := s.Snapshot()
	first.Employees[0].Attendance.DaysWorked = 99
	first.Employees[0].Name = "Mallory"

	second := s.Snapshot()
	assert.Equal(t, "Alice", second.Employees[0].Name)
	assert.Equal(t, 20, second.Employees[0].Attendance.DaysWorked)
}

// pausingEmployees blocks the first List after it has read the collection,
// holding a load in flight with pre-command data.
type pausingEmployees struct {
	employee.EmployeeRepository
	once    sync.Once
	listed  chan struct{}
	release chan struct{}
}

func (p *pausingEmployees) List(ctx context.Context) ([]employee.Employee, error) {
	result, err := p.EmployeeRepository.List(ctx)
	p.once.Do(func() {
		close(p.listed)
		<-p.release
	})
	return result, err
}

func TestStore_DispatchDoesNotJoinEarlierLoad(t *testing.T) {
	b := seedBackend()
	employees := &pausingEmployees{
		EmployeeRepository: b.Employees(),
		listed:             make(chan struct{}),
		release:            make(chan struct{}),
	}
	s := store.New(employees, b.Departments())

	refreshed := make(chan error, 1)
	go func() {
		refreshed <- s.Load(context.Background())
	}()
	<-employees.listed

	cmd := &store.CreateEmployee{Employee: employee.Employee{Name: "Carol", Department: "Eng", Status: employee.StatusActive, Salary: 40000}}
	require.NoError(t, s.Dispatch(context.Background(), cmd))

	snap := s.Snapshot()
	assert.True(t, snap.Loaded())
	assert.Len(t, snap.Employees, 3)
	assert.Equal(t, "Employee added successfully!", snap.Message)

	close(employees.release)
	require.NoError(t, <-refreshed)

	snap = s.Snapshot()
	assert.Len(t, snap.Employees, 3, "earlier load must not overwrite the re-fetch")
	assert.True(t, snap.Loaded())
}
