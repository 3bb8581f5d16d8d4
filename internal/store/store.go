package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/officetrack/attendance-tracker-go/internal/domain/attendance"
	"github.com/officetrack/attendance-tracker-go/internal/domain/employee"
)

// Collection names in the document tree. These match the paths the remote
// mirror keys its documents by.
const (
	CollectionEmployees   = "employees"
	CollectionAttendance  = "attendance"
	CollectionCurrentUser = "currentUser"
)

// Cache is the local durable side of the store. Get returns (nil, nil) for a
// collection that has never been written.
type Cache interface {
	Get(name string) ([]byte, error)
	Set(name string, payload []byte) error
	Delete(name string) error
	Close() error
}

// Snapshot is a full copy of the document tree, used for export/import and
// for seeding the cache from a mirror pull.
type Snapshot struct {
	Employees  []employee.Employee `json:"employees"`
	Attendance []attendance.Record `json:"attendance"`
	ExportedAt string              `json:"exportedAt,omitempty"`
}

// Store is the key-value persistence layer for the three collections. Every
// mutation is written to the local cache synchronously; when a mirror is
// configured the same mutation is pushed asynchronously, and mirror failures
// are logged and absorbed. The store is local-first: correctness never
// depends on the mirror being present or reachable.
type Store struct {
	mu          sync.Mutex
	cache       Cache
	mirror      Mirror
	logger      *slog.Logger
	pushTimeout time.Duration

	pushMu     sync.Mutex
	pending    map[string][]byte
	pushWake   chan struct{}
	pushDone   chan struct{}
	pushClosed bool
}

// New builds a store over cache. mirror may be nil.
func New(cache Cache, mirror Mirror, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	st := &Store{
		cache:       cache,
		mirror:      mirror,
		logger:      logger,
		pushTimeout: 10 * time.Second,
	}
	if mirror != nil {
		st.pending = make(map[string][]byte)
		st.pushWake = make(chan struct{}, 1)
		st.pushDone = make(chan struct{})
		go st.pushWorker()
	}
	return st
}

// Start seeds the cache from the mirror and registers the change
// subscription. A missing or unreachable mirror is non-fatal: the local cache
// is used as-is.
func (s *Store) Start(ctx context.Context) {
	if s.mirror == nil {
		return
	}

	remote, err := s.mirror.Pull(ctx)
	if err != nil {
		s.logger.Warn("mirror pull failed, using local cache", "error", err)
	} else {
		s.mu.Lock()
		for name, payload := range remote {
			if err := s.applyRemote(name, payload); err != nil {
				s.logger.Warn("discarding remote payload", "collection", name, "error", err)
			}
		}
		s.mu.Unlock()
	}

	if err := s.mirror.Subscribe(ctx, s.onRemoteChange); err != nil {
		s.logger.Warn("mirror subscription unavailable", "error", err)
	}
}

// Close drains pending mirror pushes, then releases the mirror and the cache.
func (s *Store) Close(ctx context.Context) error {
	if s.mirror != nil {
		s.pushMu.Lock()
		if !s.pushClosed {
			s.pushClosed = true
			close(s.pushWake)
		}
		s.pushMu.Unlock()
		<-s.pushDone

		if err := s.mirror.Close(ctx); err != nil {
			s.logger.Warn("mirror close failed", "error", err)
		}
	}
	return s.cache.Close()
}

func (s *Store) onRemoteChange(name string, payload []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.applyRemote(name, payload); err != nil {
		s.logger.Warn("discarding remote change", "collection", name, "error", err)
	}
}

// applyRemote overwrites the local cache with a remote payload after schema
// validation. Caller holds s.mu.
func (s *Store) applyRemote(name string, payload []byte) error {
	if payload == nil {
		return s.cache.Delete(name)
	}
	switch name {
	case CollectionEmployees:
		var recs []employee.Employee
		if err := json.Unmarshal(payload, &recs); err != nil {
			return fmt.Errorf("invalid employees payload: %w", err)
		}
		if err := validateEmployees(recs); err != nil {
			return err
		}
	case CollectionAttendance:
		var recs []attendance.Record
		if err := json.Unmarshal(payload, &recs); err != nil {
			return fmt.Errorf("invalid attendance payload: %w", err)
		}
		if err := validateAttendance(recs); err != nil {
			return err
		}
	case CollectionCurrentUser:
		var id string
		if err := json.Unmarshal(payload, &id); err != nil {
			return fmt.Errorf("invalid current user payload: %w", err)
		}
	default:
		return fmt.Errorf("unknown collection %q", name)
	}
	return s.cache.Set(name, payload)
}

// push queues a mutation for the mirror without blocking the caller. A single
// worker sends queued payloads in mutation order, so an older payload can
// never land on the remote after a newer one and come back through the change
// subscription to undo a local write. Failures are logged, never surfaced,
// and never roll back the local write.
func (s *Store) push(name string, payload []byte) {
	if s.mirror == nil {
		return
	}
	s.pushMu.Lock()
	defer s.pushMu.Unlock()
	if s.pushClosed {
		return
	}
	s.pending[name] = payload
	select {
	case s.pushWake <- struct{}{}:
	default:
	}
}

func (s *Store) pushWorker() {
	defer close(s.pushDone)
	for range s.pushWake {
		s.drainPending()
	}
	s.drainPending()
}

// drainPending sends queued payloads one at a time. Each payload replaces the
// whole collection on the remote, so a payload superseded while another push
// was in flight is dropped instead of sent stale.
func (s *Store) drainPending() {
	for {
		s.pushMu.Lock()
		var name string
		var payload []byte
		found := false
		for n, p := range s.pending {
			name, payload, found = n, p, true
			break
		}
		if found {
			delete(s.pending, name)
		}
		s.pushMu.Unlock()
		if !found {
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), s.pushTimeout)
		err := s.mirror.Push(ctx, name, payload)
		cancel()
		if err != nil {
			s.logger.Warn("mirror push failed", "collection", name, "error", err)
		}
	}
}

func validateEmployees(recs []employee.Employee) error {
	for i, e := range recs {
		if e.ID == "" {
			return fmt.Errorf("employee record %d has no id", i)
		}
	}
	return nil
}

func validateAttendance(recs []attendance.Record) error {
	for i, r := range recs {
		if r.ID == "" || r.EmployeeID == "" || r.Date == "" {
			return fmt.Errorf("attendance record %d is missing id, employeeId or date", i)
		}
	}
	return nil
}

// Employees returns the employee collection in stored order.
func (s *Store) Employees() ([]employee.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	payload, err := s.cache.Get(CollectionEmployees)
	if err != nil {
		return nil, fmt.Errorf("read employees: %w", err)
	}
	if payload == nil {
		return []employee.Employee{}, nil
	}
	var recs []employee.Employee
	if err := json.Unmarshal(payload, &recs); err != nil {
		return nil, fmt.Errorf("decode employees: %w", err)
	}
	return recs, nil
}

// SetEmployees replaces the employee collection.
func (s *Store) SetEmployees(recs []employee.Employee) error {
	if err := validateEmployees(recs); err != nil {
		return err
	}
	payload, err := json.Marshal(recs)
	if err != nil {
		return fmt.Errorf("encode employees: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.cache.Set(CollectionEmployees, payload); err != nil {
		return fmt.Errorf("write employees: %w", err)
	}
	s.push(CollectionEmployees, payload)
	return nil
}

// Attendance returns the attendance collection in stored order.
func (s *Store) Attendance() ([]attendance.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	payload, err := s.cache.Get(CollectionAttendance)
	if err != nil {
		return nil, fmt.Errorf("read attendance: %w", err)
	}
	if payload == nil {
		return []attendance.Record{}, nil
	}
	var recs []attendance.Record
	if err := json.Unmarshal(payload, &recs); err != nil {
		return nil, fmt.Errorf("decode attendance: %w", err)
	}
	return recs, nil
}

// SetAttendance replaces the attendance collection.
func (s *Store) SetAttendance(recs []attendance.Record) error {
	if err := validateAttendance(recs); err != nil {
		return err
	}
	payload, err := json.Marshal(recs)
	if err != nil {
		return fmt.Errorf("encode attendance: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.cache.Set(CollectionAttendance, payload); err != nil {
		return fmt.Errorf("write attendance: %w", err)
	}
	s.push(CollectionAttendance, payload)
	return nil
}

// CurrentUser returns the current-user pointer, or "" when nobody is logged
// in.
func (s *Store) CurrentUser() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	payload, err := s.cache.Get(CollectionCurrentUser)
	if err != nil {
		return "", fmt.Errorf("read current user: %w", err)
	}
	if payload == nil {
		return "", nil
	}
	var id string
	if err := json.Unmarshal(payload, &id); err != nil {
		return "", fmt.Errorf("decode current user: %w", err)
	}
	return id, nil
}

// SetCurrentUser replaces the current-user pointer.
func (s *Store) SetCurrentUser(id string) error {
	payload, err := json.Marshal(id)
	if err != nil {
		return fmt.Errorf("encode current user: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.cache.Set(CollectionCurrentUser, payload); err != nil {
		return fmt.Errorf("write current user: %w", err)
	}
	s.push(CollectionCurrentUser, payload)
	return nil
}

// ClearCurrentUser removes the current-user pointer.
func (s *Store) ClearCurrentUser() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.cache.Delete(CollectionCurrentUser); err != nil {
		return fmt.Errorf("clear current user: %w", err)
	}
	s.push(CollectionCurrentUser, nil)
	return nil
}

// RemoveAll deletes every collection, locally and on the mirror.
func (s *Store) RemoveAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, name := range []string{CollectionEmployees, CollectionAttendance, CollectionCurrentUser} {
		if err := s.cache.Delete(name); err != nil {
			return fmt.Errorf("clear %s: %w", name, err)
		}
		s.push(name, nil)
	}
	return nil
}

// Export captures the employee and attendance collections as a snapshot.
func (s *Store) Export() (Snapshot, error) {
	employees, err := s.Employees()
	if err != nil {
		return Snapshot{}, err
	}
	records, err := s.Attendance()
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{
		Employees:  employees,
		Attendance: records,
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// Import replaces the employee and attendance collections from a snapshot.
// Nil slices leave the corresponding collection untouched.
func (s *Store) Import(snap Snapshot) error {
	if snap.Employees != nil {
		if err := s.SetEmployees(snap.Employees); err != nil {
			return err
		}
	}
	if snap.Attendance != nil {
		if err := s.SetAttendance(snap.Attendance); err != nil {
			return err
		}
	}
	return nil
}
