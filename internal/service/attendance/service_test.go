package attendance

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/punchdesk/attendance-backend-go/internal/domain/attendance"
	"github.com/punchdesk/attendance-backend-go/internal/domain/employee"
	"github.com/punchdesk/attendance-backend-go/internal/pkg/clock"
	"github.com/punchdesk/attendance-backend-go/internal/pkg/geo"
	"github.com/punchdesk/attendance-backend-go/internal/pkg/jwt"
)

const (
	testUID    = "emp-1"
	testSecret = "test-secret-key-for-jwt"

	officeLat = 12.9716
	officeLng = 77.5946
)

// memAttendanceRepo is an in-memory AttendanceRepository with the same
// create-if-absent contract as the real store.
type memAttendanceRepo struct {
	records map[string]attendance.Attendance
}

func newMemAttendanceRepo() *memAttendanceRepo {
	return &memAttendanceRepo{records: make(map[string]attendance.Attendance)}
}

func key(uid, date string) string { return uid + "|" + date }

func (m *memAttendanceRepo) Create(_ context.Context, att attendance.Attendance) error {
	if _, ok := m.records[key(att.UID, att.Date)]; ok {
		return attendance.ErrAlreadyPunchedIn
	}
	m.records[key(att.UID, att.Date)] = att
	return nil
}

func (m *memAttendanceRepo) GetByKey(_ context.Context, uid, date string) (attendance.Attendance, error) {
	att, ok := m.records[key(uid, date)]
	if !ok {
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}
	return att, nil
}

func (m *memAttendanceRepo) GetByKeys(_ context.Context, uid string, dates []string) (map[string]attendance.Attendance, error) {
	result := make(map[string]attendance.Attendance)
	for _, date := range dates {
		if att, ok := m.records[key(uid, date)]; ok {
			result[date] = att
		}
	}
	return result, nil
}

func (m *memAttendanceRepo) Update(_ context.Context, att attendance.Attendance) error {
	if _, ok := m.records[key(att.UID, att.Date)]; !ok {
		return attendance.ErrAttendanceNotFound
	}
	m.records[key(att.UID, att.Date)] = att
	return nil
}

func (m *memAttendanceRepo) Delete(_ context.Context, uid, date string) error {
	if _, ok := m.records[key(uid, date)]; !ok {
		return attendance.ErrAttendanceNotFound
	}
	delete(m.records, key(uid, date))
	return nil
}

func (m *memAttendanceRepo) ListByDate(_ context.Context, date string) ([]attendance.Attendance, error) {
	var result []attendance.Attendance
	for _, att := range m.records {
		if att.Date == date {
			result = append(result, att)
		}
	}
	return result, nil
}

func (m *memAttendanceRepo) ListRecentByUID(_ context.Context, uid string, limit int) ([]attendance.Attendance, error) {
	var result []attendance.Attendance
	for _, att := range m.records {
		if att.UID == uid {
			result = append(result, att)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date > result[j].Date })
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

type memEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (m *memEmployeeRepo) GetByUID(_ context.Context, uid string) (employee.Employee, error) {
	emp, ok := m.employees[uid]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (m *memEmployeeRepo) List(_ context.Context) ([]employee.Employee, error) {
	var result []employee.Employee
	for _, emp := range m.employees {
		result = append(result, emp)
	}
	return result, nil
}

type fixture struct {
	svc     attendance.AttendanceService
	repo    *memAttendanceRepo
	ctx     context.Context
	loc     *time.Location
	instant time.Time
}

// newFixture builds the service against a clock frozen at the given IST
// wall-clock time on 2024-03-05.
func newFixture(t *testing.T, shiftLabel string, hour, minute int) *fixture {
	t.Helper()

	loc, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	instant := time.Date(2024, time.March, 5, hour, minute, 0, 0, loc)

	repo := newMemAttendanceRepo()
	empRepo := &memEmployeeRepo{employees: map[string]employee.Employee{
		testUID: {UID: testUID, Name: "Jane Public", Email: "jane@example.com", Shift: shiftLabel},
	}}
	geofence := geo.NewGeofence(officeLat, officeLng, 100)

	svc := NewAttendanceService(repo, empRepo, geofence, clock.Fixed(instant), loc)

	jwtService := jwt.NewService(testSecret)
	token, _, err := jwtService.JWTAuth().Encode(map[string]interface{}{"uid": testUID})
	require.NoError(t, err)
	ctx := jwtauth.NewContext(context.Background(), token, nil)

	return &fixture{svc: svc, repo: repo, ctx: ctx, loc: loc, instant: instant}
}

// advance refreezes the service clock at a later wall-clock time on the
// same day.
func (f *fixture) advance(t *testing.T, hour, minute int) {
	t.Helper()
	impl := f.svc.(*AttendanceServiceImpl)
	impl.clock = clock.Fixed(time.Date(2024, time.March, 5, hour, minute, 0, 0, f.loc))
}

func TestPunchIn_WithinGrace(t *testing.T) {
	f := newFixture(t, "10:00", 10, 5)

	resp, err := f.svc.PunchIn(f.ctx, attendance.PunchInRequest{Latitude: officeLat, Longitude: officeLng})
	require.NoError(t, err)

	assert.Equal(t, testUID, resp.UID)
	assert.Equal(t, "2024-03-05", resp.Date)
	assert.Equal(t, "10:00", resp.ShiftStart)
	assert.Equal(t, 0, resp.LateMinutes)
	assert.Equal(t, "Working", resp.Status)
	assert.Equal(t, "2024-03-05 19:00:00", resp.RequiredPunchOut)
}

func TestPunchIn_Late(t *testing.T) {
	f := newFixture(t, "10:00", 10, 25)

	resp, err := f.svc.PunchIn(f.ctx, attendance.PunchInRequest{Latitude: officeLat, Longitude: officeLng})
	require.NoError(t, err)

	assert.Equal(t, 25, resp.LateMinutes)
	assert.Equal(t, "2024-03-05 19:25:00", resp.RequiredPunchOut)
}

func TestPunchIn_OutOfRange(t *testing.T) {
	f := newFixture(t, "10:00", 10, 5)

	// ~1.1km north of the office
	_, err := f.svc.PunchIn(f.ctx, attendance.PunchInRequest{Latitude: officeLat + 0.01, Longitude: officeLng})
	assert.ErrorIs(t, err, geo.ErrOutOfRange)
	assert.Empty(t, f.repo.records, "a rejected punch must not create a record")
}

func TestPunchIn_Twice(t *testing.T) {
	f := newFixture(t, "10:00", 10, 5)

	req := attendance.PunchInRequest{Latitude: officeLat, Longitude: officeLng}
	_, err := f.svc.PunchIn(f.ctx, req)
	require.NoError(t, err)

	_, err = f.svc.PunchIn(f.ctx, req)
	assert.ErrorIs(t, err, attendance.ErrAlreadyPunchedIn)
}

func TestPunchIn_EmptyShiftUsesDefault(t *testing.T) {
	f := newFixture(t, "", 10, 5)

	resp, err := f.svc.PunchIn(f.ctx, attendance.PunchInRequest{Latitude: officeLat, Longitude: officeLng})
	require.NoError(t, err)

	assert.Equal(t, "10:00", resp.ShiftStart)
	assert.Equal(t, 0, resp.LateMinutes, "10:05 is inside the default shift's grace")
}

func TestPunchOut_WithoutPunchIn(t *testing.T) {
	f := newFixture(t, "10:00", 19, 0)

	_, err := f.svc.PunchOut(f.ctx, attendance.PunchOutRequest{Latitude: officeLat, Longitude: officeLng})
	assert.ErrorIs(t, err, attendance.ErrNoPunchInRecord)
}

func TestPunchOut_Present(t *testing.T) {
	f := newFixture(t, "13:00", 13, 0)
	_, err := f.svc.PunchIn(f.ctx, attendance.PunchInRequest{Latitude: officeLat, Longitude: officeLng})
	require.NoError(t, err)

	// 13:00 shift runs 6.5h, deadline 19:30
	f.advance(t, 19, 30)
	resp, err := f.svc.PunchOut(f.ctx, attendance.PunchOutRequest{Latitude: officeLat, Longitude: officeLng})
	require.NoError(t, err)

	assert.Equal(t, "Present", resp.Status)
	assert.Equal(t, 0, resp.OvertimeMinutes)
	assert.Equal(t, "none", resp.OvertimeStatus)
}

func TestPunchOut_EarlyUnforcedIsAbsent(t *testing.T) {
	f := newFixture(t, "10:00", 10, 0)
	_, err := f.svc.PunchIn(f.ctx, attendance.PunchInRequest{Latitude: officeLat, Longitude: officeLng})
	require.NoError(t, err)

	f.advance(t, 15, 0)
	resp, err := f.svc.PunchOut(f.ctx, attendance.PunchOutRequest{Latitude: officeLat, Longitude: officeLng})
	require.NoError(t, err)

	assert.Equal(t, "Absent", resp.Status)
}

func TestPunchOut_EarlyForcedIsHalfDay(t *testing.T) {
	f := newFixture(t, "10:00", 10, 0)
	_, err := f.svc.PunchIn(f.ctx, attendance.PunchInRequest{Latitude: officeLat, Longitude: officeLng})
	require.NoError(t, err)

	f.advance(t, 15, 0)
	resp, err := f.svc.PunchOut(f.ctx, attendance.PunchOutRequest{Latitude: officeLat, Longitude: officeLng, ForceHalfDay: true})
	require.NoError(t, err)

	assert.Equal(t, "Half Day", resp.Status)
}

func TestPunchOut_OvertimeGoesPending(t *testing.T) {
	f := newFixture(t, "10:00", 10, 0)
	_, err := f.svc.PunchIn(f.ctx, attendance.PunchInRequest{Latitude: officeLat, Longitude: officeLng})
	require.NoError(t, err)

	f.advance(t, 20, 15)
	resp, err := f.svc.PunchOut(f.ctx, attendance.PunchOutRequest{Latitude: officeLat, Longitude: officeLng})
	require.NoError(t, err)

	assert.Equal(t, "Present", resp.Status)
	assert.Equal(t, 75, resp.OvertimeMinutes)
	assert.Equal(t, "pending", resp.OvertimeStatus)
}

func TestPunchOut_Twice(t *testing.T) {
	f := newFixture(t, "10:00", 10, 0)
	_, err := f.svc.PunchIn(f.ctx, attendance.PunchInRequest{Latitude: officeLat, Longitude: officeLng})
	require.NoError(t, err)

	f.advance(t, 19, 0)
	req := attendance.PunchOutRequest{Latitude: officeLat, Longitude: officeLng}
	_, err = f.svc.PunchOut(f.ctx, req)
	require.NoError(t, err)

	_, err = f.svc.PunchOut(f.ctx, req)
	assert.ErrorIs(t, err, attendance.ErrAlreadyPunchedOut)
}

func TestDecideOvertime(t *testing.T) {
	f := newFixture(t, "10:00", 10, 0)
	_, err := f.svc.PunchIn(f.ctx, attendance.PunchInRequest{Latitude: officeLat, Longitude: officeLng})
	require.NoError(t, err)
	f.advance(t, 20, 0)
	_, err = f.svc.PunchOut(f.ctx, attendance.PunchOutRequest{Latitude: officeLat, Longitude: officeLng})
	require.NoError(t, err)

	resp, err := f.svc.DecideOvertime(f.ctx, attendance.OvertimeDecisionRequest{
		UID: testUID, Date: "2024-03-05", Decision: "approved",
	})
	require.NoError(t, err)
	assert.Equal(t, "approved", resp.OvertimeStatus)

	// Already decided: no pending request remains
	_, err = f.svc.DecideOvertime(f.ctx, attendance.OvertimeDecisionRequest{
		UID: testUID, Date: "2024-03-05", Decision: "rejected",
	})
	assert.ErrorIs(t, err, attendance.ErrNoPendingOvertime)
}

func TestDecideOvertime_NoOvertime(t *testing.T) {
	f := newFixture(t, "10:00", 10, 0)
	_, err := f.svc.PunchIn(f.ctx, attendance.PunchInRequest{Latitude: officeLat, Longitude: officeLng})
	require.NoError(t, err)

	_, err = f.svc.DecideOvertime(f.ctx, attendance.OvertimeDecisionRequest{
		UID: testUID, Date: "2024-03-05", Decision: "approved",
	})
	assert.ErrorIs(t, err, attendance.ErrNoPendingOvertime)
}

func TestUpdateAttendance_RecomputesDerivedFields(t *testing.T) {
	f := newFixture(t, "10:00", 10, 5)
	_, err := f.svc.PunchIn(f.ctx, attendance.PunchInRequest{Latitude: officeLat, Longitude: officeLng})
	require.NoError(t, err)

	in, out := "10:25", "19:25"
	resp, err := f.svc.UpdateAttendance(f.ctx, attendance.UpdateAttendanceRequest{
		UID: testUID, Date: "2024-03-05", PunchInTime: &in, PunchOutTime: &out,
	})
	require.NoError(t, err)

	assert.Equal(t, 25, resp.LateMinutes)
	assert.Equal(t, "2024-03-05 19:25:00", resp.RequiredPunchOut)
	// Worked exactly 9h, judged against raw duration: Present
	assert.Equal(t, "Present", resp.Status)
	assert.Equal(t, 0, resp.OvertimeMinutes)
}

func TestUpdateAttendance_ShortDayBecomesHalfDay(t *testing.T) {
	f := newFixture(t, "10:00", 10, 0)
	_, err := f.svc.PunchIn(f.ctx, attendance.PunchInRequest{Latitude: officeLat, Longitude: officeLng})
	require.NoError(t, err)

	out := "18:30"
	resp, err := f.svc.UpdateAttendance(f.ctx, attendance.UpdateAttendanceRequest{
		UID: testUID, Date: "2024-03-05", PunchOutTime: &out,
	})
	require.NoError(t, err)

	assert.Equal(t, "Half Day", resp.Status)
}

func TestUpdateAttendance_OvertimeImplicitlyApproved(t *testing.T) {
	f := newFixture(t, "10:00", 10, 0)
	_, err := f.svc.PunchIn(f.ctx, attendance.PunchInRequest{Latitude: officeLat, Longitude: officeLng})
	require.NoError(t, err)

	out := "20:00"
	resp, err := f.svc.UpdateAttendance(f.ctx, attendance.UpdateAttendanceRequest{
		UID: testUID, Date: "2024-03-05", PunchOutTime: &out,
	})
	require.NoError(t, err)

	assert.Equal(t, 60, resp.OvertimeMinutes)
	assert.Equal(t, "approved", resp.OvertimeStatus)
}

func TestUpdateAttendance_NoPunchOutStaysWorking(t *testing.T) {
	f := newFixture(t, "10:00", 10, 0)
	_, err := f.svc.PunchIn(f.ctx, attendance.PunchInRequest{Latitude: officeLat, Longitude: officeLng})
	require.NoError(t, err)

	in := "10:30"
	resp, err := f.svc.UpdateAttendance(f.ctx, attendance.UpdateAttendanceRequest{
		UID: testUID, Date: "2024-03-05", PunchInTime: &in,
	})
	require.NoError(t, err)

	assert.Equal(t, "Working", resp.Status)
	assert.Nil(t, resp.PunchOutTime)
	assert.Equal(t, 30, resp.LateMinutes)
}

func TestUpdateAttendance_MalformedTime(t *testing.T) {
	f := newFixture(t, "10:00", 10, 0)
	_, err := f.svc.PunchIn(f.ctx, attendance.PunchInRequest{Latitude: officeLat, Longitude: officeLng})
	require.NoError(t, err)

	bad := "25:99"
	_, err = f.svc.UpdateAttendance(f.ctx, attendance.UpdateAttendanceRequest{
		UID: testUID, Date: "2024-03-05", PunchInTime: &bad,
	})
	assert.Error(t, err)
}

func TestGetMyAttendance_NewestFirst(t *testing.T) {
	f := newFixture(t, "10:00", 10, 0)
	for _, date := range []string{"2024-03-01", "2024-03-04", "2024-03-02"} {
		require.NoError(t, f.repo.Create(context.Background(), attendance.Attendance{
			UID: testUID, Date: date, PunchInTime: f.instant.UTC(), Status: attendance.StatusPresent,
		}))
	}

	resp, err := f.svc.GetMyAttendance(f.ctx, attendance.MyAttendanceFilter{Limit: 2})
	require.NoError(t, err)

	require.Len(t, resp, 2)
	assert.Equal(t, "2024-03-04", resp[0].Date)
	assert.Equal(t, "2024-03-02", resp[1].Date)
}
