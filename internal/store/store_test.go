package store

import (
	"context"
	"encoding/json"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/officetrack/attendance-tracker-go/internal/domain/attendance"
	"github.com/officetrack/attendance-tracker-go/internal/domain/employee"
)

// fakeMirror records pushes and serves a canned pull payload.
type fakeMirror struct {
	mu     sync.Mutex
	remote map[string][]byte
	pushes chan string
}

func newFakeMirror(remote map[string][]byte) *fakeMirror {
	return &fakeMirror{remote: remote, pushes: make(chan string, 16)}
}

func (m *fakeMirror) Pull(ctx context.Context) (map[string][]byte, error) {
	return m.remote, nil
}

func (m *fakeMirror) Push(ctx context.Context, name string, payload []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if payload == nil {
		delete(m.remote, name)
	} else {
		if m.remote == nil {
			m.remote = map[string][]byte{}
		}
		m.remote[name] = payload
	}
	m.pushes <- name
	return nil
}

func (m *fakeMirror) Subscribe(ctx context.Context, fn func(name string, payload []byte)) error {
	return nil
}

func (m *fakeMirror) Close(ctx context.Context) error { return nil }

func testEmployees() []employee.Employee {
	return []employee.Employee{
		{ID: "EMP001", Name: "John Smith", Location: "LDN", Department: "Sales", Position: "gm", Role: "manager", Email: "john.smith@company.com", CreatedAt: time.Now().UTC()},
		{ID: "EMP002", Name: "Sarah Johnson", Location: "LDN", Department: "Finance", Position: "office_manager", Role: "manager", Email: "sarah.johnson@company.com", CreatedAt: time.Now().UTC()},
	}
}

func testRecords() []attendance.Record {
	return []attendance.Record{
		{ID: "ATT1", EmployeeID: "EMP001", Date: "2026-02-20", Status: "office", CreatedAt: time.Now().UTC()},
		{ID: "ATT2", EmployeeID: "EMP002", Date: "2026-02-21", Status: "wfh", CreatedAt: time.Now().UTC()},
	}
}

func TestStoreEmployeesRoundTrip(t *testing.T) {
	st := New(NewMemoryCache(), nil, nil)

	got, err := st.Employees()
	require.NoError(t, err)
	assert.Empty(t, got)

	want := testEmployees()
	require.NoError(t, st.SetEmployees(want))

	got, err = st.Employees()
	require.NoError(t, err)
	assert.Equal(t, want[0].ID, got[0].ID)
	assert.Equal(t, want[1].Email, got[1].Email)
	assert.Len(t, got, 2)
}

func TestStoreRejectsEmployeeWithoutID(t *testing.T) {
	st := New(NewMemoryCache(), nil, nil)

	err := st.SetEmployees([]employee.Employee{{Name: "No ID"}})
	assert.Error(t, err)
}

func TestStoreRejectsAttendanceMissingFields(t *testing.T) {
	st := New(NewMemoryCache(), nil, nil)

	err := st.SetAttendance([]attendance.Record{{ID: "ATT1", EmployeeID: "EMP001"}})
	assert.Error(t, err)
}

func TestStoreCurrentUser(t *testing.T) {
	st := New(NewMemoryCache(), nil, nil)

	id, err := st.CurrentUser()
	require.NoError(t, err)
	assert.Equal(t, "", id)

	require.NoError(t, st.SetCurrentUser("EMP001"))
	id, err = st.CurrentUser()
	require.NoError(t, err)
	assert.Equal(t, "EMP001", id)

	require.NoError(t, st.ClearCurrentUser())
	id, err = st.CurrentUser()
	require.NoError(t, err)
	assert.Equal(t, "", id)
}

func TestStoreRemoveAll(t *testing.T) {
	st := New(NewMemoryCache(), nil, nil)
	require.NoError(t, st.SetEmployees(testEmployees()))
	require.NoError(t, st.SetAttendance(testRecords()))
	require.NoError(t, st.SetCurrentUser("EMP001"))

	require.NoError(t, st.RemoveAll())

	employees, err := st.Employees()
	require.NoError(t, err)
	assert.Empty(t, employees)

	records, err := st.Attendance()
	require.NoError(t, err)
	assert.Empty(t, records)

	id, err := st.CurrentUser()
	require.NoError(t, err)
	assert.Equal(t, "", id)
}

func TestStoreExportImportRoundTrip(t *testing.T) {
	src := New(NewMemoryCache(), nil, nil)
	require.NoError(t, src.SetEmployees(testEmployees()))
	require.NoError(t, src.SetAttendance(testRecords()))

	snap, err := src.Export()
	require.NoError(t, err)
	assert.NotEmpty(t, snap.ExportedAt)

	dst := New(NewMemoryCache(), nil, nil)
	require.NoError(t, dst.Import(snap))

	employees, err := dst.Employees()
	require.NoError(t, err)
	assert.Equal(t, snap.Employees, employees)

	records, err := dst.Attendance()
	require.NoError(t, err)
	assert.Equal(t, snap.Attendance, records)
}

func TestStorePushesMutationsToMirror(t *testing.T) {
	mirror := newFakeMirror(nil)
	st := New(NewMemoryCache(), mirror, nil)

	require.NoError(t, st.SetEmployees(testEmployees()))

	select {
	case name := <-mirror.pushes:
		assert.Equal(t, CollectionEmployees, name)
	case <-time.After(time.Second):
		t.Fatal("expected a mirror push")
	}
}

// laggyMirror stalls its first push so a later payload would overtake it if
// pushes were not serialized, and echoes remote state back through the change
// subscription the way a real mirror does.
type laggyMirror struct {
	mu     sync.Mutex
	remote map[string][]byte
	calls  int
	notify func(name string, payload []byte)
}

func (m *laggyMirror) Pull(ctx context.Context) (map[string][]byte, error) {
	return nil, nil
}

func (m *laggyMirror) Push(ctx context.Context, name string, payload []byte) error {
	m.mu.Lock()
	m.calls++
	first := m.calls == 1
	m.mu.Unlock()
	if first {
		time.Sleep(50 * time.Millisecond)
	}

	m.mu.Lock()
	m.remote[name] = payload
	m.mu.Unlock()
	return nil
}

func (m *laggyMirror) Subscribe(ctx context.Context, fn func(name string, payload []byte)) error {
	m.notify = fn
	return nil
}

func (m *laggyMirror) Close(ctx context.Context) error { return nil }

func TestStoreMirrorEchoKeepsLatestWrite(t *testing.T) {
	mirror := &laggyMirror{remote: map[string][]byte{}}
	st := New(NewMemoryCache(), mirror, nil)
	st.Start(context.Background())

	want := testRecords()
	require.NoError(t, st.SetAttendance(want[:1]))
	require.NoError(t, st.SetAttendance(want))

	require.Eventually(t, func() bool {
		mirror.mu.Lock()
		defer mirror.mu.Unlock()
		var got []attendance.Record
		if err := json.Unmarshal(mirror.remote[CollectionAttendance], &got); err != nil {
			return false
		}
		return len(got) == len(want)
	}, 2*time.Second, 10*time.Millisecond, "remote never converged on the second write")

	mirror.mu.Lock()
	payload := mirror.remote[CollectionAttendance]
	mirror.mu.Unlock()
	mirror.notify(CollectionAttendance, payload)

	records, err := st.Attendance()
	require.NoError(t, err)
	assert.Len(t, records, len(want))
}

func TestStoreCloseDrainsPendingPushes(t *testing.T) {
	mirror := &laggyMirror{remote: map[string][]byte{}}
	st := New(NewMemoryCache(), mirror, nil)

	require.NoError(t, st.SetEmployees(testEmployees()))
	require.NoError(t, st.Close(context.Background()))

	var got []employee.Employee
	require.NoError(t, json.Unmarshal(mirror.remote[CollectionEmployees], &got))
	assert.Len(t, got, 2)
}

func TestStoreStartSeedsFromMirror(t *testing.T) {
	seed := New(NewMemoryCache(), nil, nil)
	require.NoError(t, seed.SetEmployees(testEmployees()))
	snap, err := seed.Export()
	require.NoError(t, err)

	payload, err := json.Marshal(snap.Employees)
	require.NoError(t, err)

	mirror := newFakeMirror(map[string][]byte{
		CollectionEmployees: payload,
		"bogus":             []byte(`{}`),
	})
	st := New(NewMemoryCache(), mirror, nil)
	st.Start(context.Background())

	employees, err := st.Employees()
	require.NoError(t, err)
	assert.Len(t, employees, 2)
}

func TestStoreStartRejectsMalformedRemotePayload(t *testing.T) {
	mirror := newFakeMirror(map[string][]byte{
		CollectionEmployees: []byte(`[{"name":"no id"}]`),
	})
	st := New(NewMemoryCache(), mirror, nil)
	st.Start(context.Background())

	employees, err := st.Employees()
	require.NoError(t, err)
	assert.Empty(t, employees)
}

func TestSQLiteCacheRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.db")
	cache, err := OpenSQLite(path)
	require.NoError(t, err)
	defer cache.Close()

	got, err := cache.Get("employees")
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, cache.Set("employees", []byte(`[]`)))
	got, err = cache.Get("employees")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), got)

	require.NoError(t, cache.Set("employees", []byte(`[{"id":"EMP001"}]`)))
	got, err = cache.Get("employees")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[{"id":"EMP001"}]`), got)

	require.NoError(t, cache.Delete("employees"))
	got, err = cache.Get("employees")
	require.NoError(t, err)
	assert.Nil(t, got)
}
