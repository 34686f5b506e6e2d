package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/utp-asistencia/asistencia-backend-go/internal/domain/attendance"
	"github.com/utp-asistencia/asistencia-backend-go/internal/domain/authorization"
	"github.com/utp-asistencia/asistencia-backend-go/internal/domain/movement"
	"github.com/utp-asistencia/asistencia-backend-go/internal/domain/personnel"
)

type fakeEventRepo struct {
	events    []attendance.Event
	nextID    int64
	movements map[int64]movement.Movement
	people    map[int64]personnel.Personnel
}

// Create denormalizes the personnel and movement fields the way the real
// repository's joined reads do, so GetByID and GetLastOnDay return the
// same shape the service sees in production.
func (f *fakeEventRepo) Create(ctx context.Context, e attendance.Event) (attendance.Event, error) {
	f.nextID++
	e.ID = f.nextID
	e.CreatedAt = time.Now()
	if m, ok := f.movements[e.MovementID]; ok {
		e.MovementDescription = m.Description
		e.MovementCode = m.Code
	}
	if p, ok := f.people[e.PersonnelID]; ok {
		e.FirstName = p.FirstName
		e.PaternalSurname = p.PaternalSurname
		e.MaternalSurname = p.MaternalSurname
		e.DocumentNumber = p.DocumentNumber
	}
	f.events = append(f.events, e)
	return e, nil
}

func (f *fakeEventRepo) GetByID(ctx context.Context, id int64) (attendance.Event, error) {
	for _, e := range f.events {
		if e.ID == id {
			return e, nil
		}
	}
	return attendance.Event{}, attendance.ErrAttendanceNotFound
}

func (f *fakeEventRepo) List(ctx context.Context, filter attendance.EventFilter) ([]attendance.Event, error) {
	var result []attendance.Event
	for _, e := range f.events {
		if filter.PersonnelID != nil && e.PersonnelID != *filter.PersonnelID {
			continue
		}
		result = append(result, e)
	}
	return result, nil
}

func (f *fakeEventRepo) GetLastOnDay(ctx context.Context, personnelID int64, dayPrefix string) (*attendance.Event, error) {
	var last *attendance.Event
	for i := range f.events {
		e := f.events[i]
		if e.PersonnelID != personnelID || len(e.Timestamp) < 10 || e.Timestamp[:10] != dayPrefix {
			continue
		}
		if last == nil || e.Timestamp >= last.Timestamp {
			last = &f.events[i]
		}
	}
	return last, nil
}

func (f *fakeEventRepo) Delete(ctx context.Context, id int64) error {
	for i, e := range f.events {
		if e.ID == id {
			f.events = append(f.events[:i], f.events[i+1:]...)
			return nil
		}
	}
	return attendance.ErrAttendanceNotFound
}

type fakePersonnelRepo struct {
	records map[int64]personnel.Personnel
}

func (f *fakePersonnelRepo) Create(ctx context.Context, p personnel.Personnel) (personnel.Personnel, error) {
	return p, nil
}

func (f *fakePersonnelRepo) GetByID(ctx context.Context, id int64) (personnel.Personnel, error) {
	p, ok := f.records[id]
	if !ok {
		return personnel.Personnel{}, personnel.ErrPersonnelNotFound
	}
	return p, nil
}

func (f *fakePersonnelRepo) GetByWorkerCode(ctx context.Context, code string) (*personnel.Personnel, error) {
	return nil, nil
}

func (f *fakePersonnelRepo) GetByDocumentNumber(ctx context.Context, doc string) (*personnel.Personnel, error) {
	return nil, nil
}

func (f *fakePersonnelRepo) List(ctx context.Context) ([]personnel.Personnel, error) { return nil, nil }
func (f *fakePersonnelRepo) Update(ctx context.Context, p personnel.Personnel) error { return nil }
func (f *fakePersonnelRepo) Delete(ctx context.Context, id int64) error              { return nil }

type fakeMovementRepo struct {
	records map[int64]movement.Movement
}

func (f *fakeMovementRepo) Create(ctx context.Context, m movement.Movement) (movement.Movement, error) {
	return m, nil
}

func (f *fakeMovementRepo) GetByID(ctx context.Context, id int64) (movement.Movement, error) {
	m, ok := f.records[id]
	if !ok {
		return movement.Movement{}, movement.ErrMovementNotFound
	}
	return m, nil
}

func (f *fakeMovementRepo) GetByCode(ctx context.Context, code string) (*movement.Movement, error) {
	return nil, nil
}

func (f *fakeMovementRepo) List(ctx context.Context, onlyActive bool) ([]movement.Movement, error) {
	return nil, nil
}

func (f *fakeMovementRepo) Update(ctx context.Context, m movement.Movement) error { return nil }

type fakeAuthRepo struct {
	records map[int64]authorization.Authorization
}

func (f *fakeAuthRepo) Create(ctx context.Context, a authorization.Authorization) (authorization.Authorization, error) {
	return a, nil
}

func (f *fakeAuthRepo) GetByID(ctx context.Context, id int64) (authorization.Authorization, error) {
	a, ok := f.records[id]
	if !ok {
		return authorization.Authorization{}, authorization.ErrAuthorizationNotFound
	}
	return a, nil
}

func (f *fakeAuthRepo) List(ctx context.Context, state string) ([]authorization.Authorization, error) {
	return nil, nil
}

func (f *fakeAuthRepo) Update(ctx context.Context, a authorization.Authorization) error { return nil }
func (f *fakeAuthRepo) Delete(ctx context.Context, id int64) error                      { return nil }

const (
	movEntry      = int64(1)
	movExit       = int64(2)
	movBreakStart = int64(3)
	movBreakEnd   = int64(4)
	movInactive   = int64(5)
	movOther      = int64(6)
)

func newTestService(authRecords map[int64]authorization.Authorization) (attendance.AttendanceService, *fakeEventRepo) {
	people := map[int64]personnel.Personnel{
		1: {ID: 1, FirstName: "Ana"},
	}
	movements := map[int64]movement.Movement{
		movEntry:      {ID: movEntry, Description: "Entrada", Code: "ENT", State: movement.StateActive},
		movExit:       {ID: movExit, Description: "Salida", Code: "SAL", State: movement.StateActive},
		movBreakStart: {ID: movBreakStart, Description: "Entrada Break", Code: "EBR", State: movement.StateActive},
		movBreakEnd:   {ID: movBreakEnd, Description: "Fin Break", Code: "FBR", State: movement.StateActive},
		movInactive:   {ID: movInactive, Description: "Entrada", Code: "ENT", State: movement.StateInactive},
		movOther:      {ID: movOther, Description: "Comisión", Code: "COM", State: movement.StateActive},
	}
	eventRepo := &fakeEventRepo{movements: movements, people: people}
	personnelRepo := &fakePersonnelRepo{records: people}
	movementRepo := &fakeMovementRepo{records: movements}
	authRepo := &fakeAuthRepo{records: authRecords}

	svc := NewAttendanceService(eventRepo, personnelRepo, movementRepo, authRepo, GeoFence{}, time.UTC)
	return svc, eventRepo
}

func markAt(svc attendance.AttendanceService, t *testing.T, movementID int64, ts string) (attendance.EventResponse, error) {
	t.Helper()
	return svc.Mark(context.Background(), attendance.MarkRequest{
		PersonnelID: 1,
		MovementID:  movementID,
		Timestamp:   &ts,
	})
}

func TestMarkFullDaySequence(t *testing.T) {
	svc, _ := newTestService(nil)

	_, err := markAt(svc, t, movEntry, "2025-11-03 08:00:00")
	require.NoError(t, err)
	_, err = markAt(svc, t, movBreakStart, "2025-11-03 12:00:00")
	require.NoError(t, err)
	_, err = markAt(svc, t, movBreakEnd, "2025-11-03 12:45:00")
	require.NoError(t, err)
	resp, err := markAt(svc, t, movExit, "2025-11-03 17:00:00")
	require.NoError(t, err)

	assert.Equal(t, "Ana", resp.PersonnelName)
	assert.Equal(t, "SAL", resp.MovementCode)
}

func TestMarkSequenceViolations(t *testing.T) {
	cases := []struct {
		name    string
		prior   []int64
		mark    int64
		wantErr error
	}{
		{"entry twice", []int64{movEntry}, movEntry, attendance.ErrEntryAlreadyOpen},
		{"exit without entry", nil, movExit, attendance.ErrNoOpenEntry},
		{"exit during break", []int64{movEntry, movBreakStart}, movExit, attendance.ErrNoOpenEntry},
		{"break without entry", nil, movBreakStart, attendance.ErrNoOpenEntry},
		{"break twice", []int64{movEntry, movBreakStart}, movBreakStart, attendance.ErrBreakAlreadyOpen},
		{"break end without break", []int64{movEntry}, movBreakEnd, attendance.ErrNoOpenBreak},
		{"entry after exit ok", []int64{movEntry, movExit}, movEntry, nil},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			svc, _ := newTestService(nil)
			hour := 8
			for _, id := range c.prior {
				ts := time.Date(2025, 11, 3, hour, 0, 0, 0, time.UTC).Format("2006-01-02 15:04:05")
				_, err := markAt(svc, t, id, ts)
				require.NoError(t, err)
				hour++
			}
			ts := time.Date(2025, 11, 3, hour, 0, 0, 0, time.UTC).Format("2006-01-02 15:04:05")
			_, err := markAt(svc, t, c.mark, ts)
			if c.wantErr != nil {
				assert.ErrorIs(t, err, c.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMarkReadsBackJoinedFields(t *testing.T) {
	// The stored event carries the joined personnel and movement fields;
	// the sequence check classifies prior marks from exactly these.
	svc, eventRepo := newTestService(nil)

	resp, err := markAt(svc, t, movEntry, "2025-11-03 08:00:00")
	require.NoError(t, err)
	assert.Equal(t, "Ana", resp.PersonnelName)
	assert.Equal(t, "ENT", resp.MovementCode)

	last, err := eventRepo.GetLastOnDay(context.Background(), 1, "2025-11-03")
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.Equal(t, "Entrada", last.MovementDescription)
	assert.Equal(t, "ENT", last.MovementCode)
}

func TestMarkSequenceResetsAcrossDays(t *testing.T) {
	svc, _ := newTestService(nil)

	_, err := markAt(svc, t, movEntry, "2025-11-03 08:00:00")
	require.NoError(t, err)

	// The open entry from Monday does not block Tuesday's entry.
	_, err = markAt(svc, t, movEntry, "2025-11-04 08:00:00")
	assert.NoError(t, err)
}

func TestMarkUnclassifiedMovementSkipsSequence(t *testing.T) {
	svc, _ := newTestService(nil)

	_, err := markAt(svc, t, movOther, "2025-11-03 10:00:00")
	assert.NoError(t, err)
}

func TestMarkRejectsInactiveMovement(t *testing.T) {
	svc, _ := newTestService(nil)

	_, err := markAt(svc, t, movInactive, "2025-11-03 08:00:00")
	assert.ErrorIs(t, err, movement.ErrMovementInactive)
}

func TestMarkRejectsUnknownPersonnel(t *testing.T) {
	svc, _ := newTestService(nil)

	ts := "2025-11-03 08:00:00"
	_, err := svc.Mark(context.Background(), attendance.MarkRequest{
		PersonnelID: 99,
		MovementID:  movEntry,
		Timestamp:   &ts,
	})
	assert.ErrorIs(t, err, personnel.ErrPersonnelNotFound)
}

func TestMarkApprovedAuthorizationBypassesSequence(t *testing.T) {
	authID := int64(7)
	svc, _ := newTestService(map[int64]authorization.Authorization{
		authID: {ID: authID, State: authorization.StateApproved},
	})

	// Exit without a prior entry, but backed by an approved authorization.
	ts := "2025-11-03 10:00:00"
	_, err := svc.Mark(context.Background(), attendance.MarkRequest{
		PersonnelID:     1,
		MovementID:      movExit,
		Timestamp:       &ts,
		AuthorizationID: &authID,
	})
	assert.NoError(t, err)
}

func TestMarkPendingAuthorizationRejected(t *testing.T) {
	authID := int64(8)
	svc, _ := newTestService(map[int64]authorization.Authorization{
		authID: {ID: authID, State: authorization.StatePending},
	})

	ts := "2025-11-03 10:00:00"
	_, err := svc.Mark(context.Background(), attendance.MarkRequest{
		PersonnelID:     1,
		MovementID:      movExit,
		Timestamp:       &ts,
		AuthorizationID: &authID,
	})
	assert.ErrorIs(t, err, authorization.ErrNotApproved)
}

func TestMarkGeoFence(t *testing.T) {
	people := map[int64]personnel.Personnel{1: {ID: 1, FirstName: "Ana"}}
	movements := map[int64]movement.Movement{
		movEntry: {ID: movEntry, Description: "Entrada", Code: "ENT", State: movement.StateActive},
	}
	eventRepo := &fakeEventRepo{movements: movements, people: people}
	personnelRepo := &fakePersonnelRepo{records: people}
	movementRepo := &fakeMovementRepo{records: movements}
	svc := NewAttendanceService(eventRepo, personnelRepo, movementRepo, &fakeAuthRepo{}, GeoFence{
		Enabled:      true,
		Latitude:     -12.0464,
		Longitude:    -77.0428,
		RadiusMeters: 100,
	}, time.UTC)

	ts := "2025-11-03 08:00:00"
	inside := attendance.MarkRequest{PersonnelID: 1, MovementID: movEntry, Timestamp: &ts}
	lat, lon := -12.0464, -77.0428
	inside.Latitude, inside.Longitude = &lat, &lon
	_, err := svc.Mark(context.Background(), inside)
	assert.NoError(t, err)

	farLat, farLon := -12.5, -77.5
	ts2 := "2025-11-04 08:00:00"
	outside := attendance.MarkRequest{PersonnelID: 1, MovementID: movEntry, Timestamp: &ts2}
	outside.Latitude, outside.Longitude = &farLat, &farLon
	_, err = svc.Mark(context.Background(), outside)
	assert.ErrorIs(t, err, attendance.ErrOutsideAllowedRadius)
}
