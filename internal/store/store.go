package store

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/cmlabs-hris/hris-console/internal/domain/department"
	"github.com/cmlabs-hris/hris-console/internal/domain/employee"
	"github.com/cmlabs-hris/hris-console/internal/pkg/datastore"
	"github.com/cmlabs-hris/hris-console/internal/pkg/sse"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// Topic is the event topic the store publishes on.
const Topic = "console"

const (
	EventChanged = "store.changed"
	EventFailed  = "store.failed"
)

// Notifier receives store change events.
type Notifier interface {
	Publish(event sse.Event)
}

// Repositories are the remote collections commands act on.
type Repositories struct {
	Employees   employee.EmployeeRepository
	Departments department.DepartmentRepository
}

// Store owns the console's copy of both collections. Views read snapshots;
// mutations go through Dispatch and are followed by a full re-fetch.
type Store struct {
	repos    Repositories
	notifier Notifier
	logger   *slog.Logger
	now      func() time.Time

	loads singleflight.Group

	mu    sync.RWMutex
	state Snapshot
	// gen advances after every successful command; a load only joins or
	// overwrites loads of the same or a newer generation.
	gen     uint64
	applied uint64
}

type Option func(*Store)

func WithNotifier(n Notifier) Option {
	return func(s *Store) {
		s.notifier = n
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

func New(employees employee.EmployeeRepository, departments department.DepartmentRepository, opts ...Option) *Store {
	s := &Store{
		repos: Repositories{
			Employees:   employees,
			Departments: departments,
		},
		logger: slog.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Snapshot returns a copy of the current state without loading anything.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.clone()
}

// Current returns a loaded snapshot, loading both collections first when needed.
func (s *Store) Current(ctx context.Context) (Snapshot, error) {
	if snap := s.Snapshot(); snap.Loaded() {
		return snap, nil
	}

	if err := s.Load(ctx); err != nil {
		return s.Snapshot(), fmt.Errorf("%w: %w", ErrNotLoaded, err)
	}

	snap := s.Snapshot()
	if !snap.Loaded() {
		return snap, ErrNotLoaded
	}
	return snap, nil
}

// Load fetches both collections concurrently and replaces the local copies.
// If either fetch fails both resources are marked failed. Concurrent callers
// share one in-flight load, which is not cancelled when a caller goes away.
func (s *Store) Load(ctx context.Context) error {
	s.mu.RLock()
	gen := s.gen
	s.mu.RUnlock()
	return s.loadGeneration(ctx, gen)
}

func (s *Store) loadGeneration(ctx context.Context, gen uint64) error {
	_, err, _ := s.loads.Do(strconv.FormatUint(gen, 10), func() (interface{}, error) {
		return nil, s.load(context.WithoutCancel(ctx), gen)
	})
	return err
}

func (s *Store) load(ctx context.Context, gen uint64) error {
	s.mu.Lock()
	if gen >= s.applied {
		s.state.EmployeesState = Loading
		s.state.DepartmentsState = Loading
	}
	s.mu.Unlock()

	var (
		employees   []employee.Employee
		departments []department.Department
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		result, err := s.repos.Employees.List(gCtx)
		if err != nil {
			return err
		}
		employees = result
		return nil
	})

	g.Go(func() error {
		result, err := s.repos.Departments.List(gCtx)
		if err != nil {
			return err
		}
		departments = result
		return nil
	})

	if err := g.Wait(); err != nil {
		msg := "Error fetching data: " + datastore.Message(err)

		s.mu.Lock()
		if gen < s.applied {
			s.mu.Unlock()
			s.logger.Debug("Discarding stale load", "generation", gen, "error", err)
			return err
		}
		s.applied = gen
		s.state.EmployeesState = Failed
		s.state.DepartmentsState = Failed
		s.state.Error = msg
		s.mu.Unlock()

		s.logger.Error("Failed to load collections", "error", err)
		s.publish(EventFailed, map[string]string{"error": msg})
		return err
	}

	s.mu.Lock()
	if gen < s.applied {
		s.mu.Unlock()
		s.logger.Debug("Discarding stale load", "generation", gen)
		return nil
	}
	s.applied = gen
	s.state.Employees = employees
	s.state.Departments = departments
	s.state.EmployeesState = Loaded
	s.state.DepartmentsState = Loaded
	s.state.Error = ""
	s.state.Version++
	s.state.LoadedAt = s.now()
	version := s.state.Version
	s.mu.Unlock()

	s.logger.Debug("Collections loaded",
		"employees", len(employees),
		"departments", len(departments),
		"version", version,
	)
	s.publish(EventChanged, map[string]uint64{"version": version})
	return nil
}

// Dispatch executes a command against the Data Store. On failure the error
// banner is set and the local copy is left untouched; on success the success
// banner is set and both collections are re-fetched.
func (s *Store) Dispatch(ctx context.Context, cmd Command) error {
	if c, ok := cmd.(Confirmable); ok && !c.Confirmed() {
		return ErrConfirmationRequired
	}

	if err := cmd.Execute(ctx, s.repos); err != nil {
		s.mu.Lock()
		s.state.Error = fmt.Sprintf("Error %s: %s", cmd.Failure(), datastore.Message(err))
		s.state.Message = ""
		s.mu.Unlock()

		s.logger.Error("Command failed", "command", cmd.Failure(), "error", err)
		return err
	}

	s.mu.Lock()
	s.state.Message = cmd.Success()
	s.gen++
	gen := s.gen
	s.mu.Unlock()

	// Loads already in flight may have read the collections before the
	// command ran, so the re-fetch starts a new generation instead of joining them.
	if err := s.loadGeneration(ctx, gen); err != nil {
		s.logger.Warn("Reload after command failed", "command", cmd.Failure(), "error", err)
	}
	return nil
}

// DismissError clears the error banner.
func (s *Store) DismissError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Error = ""
}

// DismissMessage clears the success banner.
func (s *Store) DismissMessage() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Message = ""
}

func (s *Store) publish(name string, data interface{}) {
	if s.notifier == nil {
		return
	}
	s.notifier.Publish(sse.Event{Topic: Topic, Event: name, Data: data})
}
