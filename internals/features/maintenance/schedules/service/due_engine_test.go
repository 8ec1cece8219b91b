package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	notifModel "kostku_backend/internals/features/maintenance/notifications/model"
	"kostku_backend/internals/features/maintenance/schedules/model"
)

// =========================================================
// FAKE STORES
// =========================================================

type fakeScheduleStore struct {
	schedules []model.MaintenanceScheduleModel
	saveErr   error
}

func (f *fakeScheduleStore) ListScheduled(ctx context.Context) ([]model.MaintenanceScheduleModel, error) {
	var out []model.MaintenanceScheduleModel
	for _, s := range f.schedules {
		if s.MaintenanceScheduleNextDueAt != nil {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeScheduleStore) FindByID(ctx context.Context, id uuid.UUID) (*model.MaintenanceScheduleModel, error) {
	for i := range f.schedules {
		if f.schedules[i].MaintenanceScheduleID == id {
			s := f.schedules[i]
			return &s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeScheduleStore) Save(ctx context.Context, s *model.MaintenanceScheduleModel) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	if s.MaintenanceScheduleID == uuid.Nil {
		s.MaintenanceScheduleID = uuid.New()
	}
	for i := range f.schedules {
		if f.schedules[i].MaintenanceScheduleID == s.MaintenanceScheduleID {
			f.schedules[i] = *s
			return nil
		}
	}
	f.schedules = append(f.schedules, *s)
	return nil
}

type fakeNotificationStore struct {
	created   []notifModel.NotificationModel
	createErr map[uuid.UUID]error // per schedule id
	now       func() time.Time
}

func (f *fakeNotificationStore) Create(ctx context.Context, n *notifModel.NotificationModel) error {
	if n.NotificationScheduleID != nil && f.createErr != nil {
		if err, ok := f.createErr[*n.NotificationScheduleID]; ok {
			return err
		}
	}
	n.NotificationID = uuid.New()
	if n.NotificationCreatedAt.IsZero() {
		n.NotificationCreatedAt = f.now()
	}
	f.created = append(f.created, *n)
	return nil
}

func (f *fakeNotificationStore) LastDueNotifiedAt(ctx context.Context, scheduleID uuid.UUID) (*time.Time, error) {
	var latest *time.Time
	for _, n := range f.created {
		if n.NotificationType != notifModel.NotificationTypeScheduleDue {
			continue
		}
		if n.NotificationScheduleID == nil || *n.NotificationScheduleID != scheduleID {
			continue
		}
		t := n.NotificationCreatedAt
		if latest == nil || t.After(*latest) {
			latest = &t
		}
	}
	return latest, nil
}

// =========================================================
// HELPERS
// =========================================================

var testNow = time.Date(2025, time.May, 10, 10, 0, 0, 0, time.UTC)

func newTestEngine(schedules ...model.MaintenanceScheduleModel) (*DueEngine, *fakeScheduleStore, *fakeNotificationStore) {
	ss := &fakeScheduleStore{schedules: schedules}
	ns := &fakeNotificationStore{now: func() time.Time { return testNow }}
	engine := &DueEngine{
		Schedules:     ss,
		Notifications: ns,
		Now:           func() time.Time { return testNow },
	}
	return engine, ss, ns
}

func scheduleDueAt(title string, due *time.Time) model.MaintenanceScheduleModel {
	return model.MaintenanceScheduleModel{
		MaintenanceScheduleID:         uuid.New(),
		MaintenanceScheduleTitle:      title,
		MaintenanceScheduleCycleMonth: 6,
		MaintenanceScheduleNextDueAt:  due,
	}
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

// =========================================================
// DUE CHECK
// =========================================================

func TestCheckDueNotificationIsIdempotentWithinWindow(t *testing.T) {
	tomorrow := testNow.AddDate(0, 0, 1)
	engine, _, ns := newTestEngine(scheduleDueAt("Servis AC", &tomorrow))

	assert.Equal(t, 1, engine.CheckAndCreateDueNotifications(context.Background()))
	assert.Equal(t, 0, engine.CheckAndCreateDueNotifications(context.Background()))
	assert.Len(t, ns.created, 1)
}

func TestCheckDueNotifiesAgainAfterWindow(t *testing.T) {
	yesterday := testNow.AddDate(0, 0, -1)
	engine, _, ns := newTestEngine(scheduleDueAt("Kuras Toren", &yesterday))

	require.Equal(t, 1, engine.CheckAndCreateDueNotifications(context.Background()))

	// geser jam: 25 jam kemudian jendela dedup sudah lewat
	later := testNow.Add(25 * time.Hour)
	engine.Now = func() time.Time { return later }
	assert.Equal(t, 1, engine.CheckAndCreateDueNotifications(context.Background()))
	assert.Len(t, ns.created, 2)
}

func TestOverdueWording(t *testing.T) {
	overdue := testNow.AddDate(0, 0, -3)
	engine, _, ns := newTestEngine(scheduleDueAt("Semprot Hama", &overdue))

	require.Equal(t, 1, engine.CheckAndCreateDueNotifications(context.Background()))

	n := ns.created[0]
	assert.Contains(t, n.NotificationTitle, "URGENT")
	assert.Contains(t, n.NotificationMessage, "terlambat 3 hari")
	assert.Equal(t, notifModel.NotificationTypeScheduleDue, n.NotificationType)
}

func TestDueTodayWordingIgnoresTimeOfDay(t *testing.T) {
	// jatuh tempo hari ini jam 23:50, pengecekan jam 10:00
	dueLateToday := time.Date(2025, time.May, 10, 23, 50, 0, 0, time.UTC)
	engine, _, ns := newTestEngine(scheduleDueAt("Cek Pompa Air", &dueLateToday))

	require.Equal(t, 1, engine.CheckAndCreateDueNotifications(context.Background()))
	assert.Contains(t, ns.created[0].NotificationMessage, "hari ini")
}

func TestDueTomorrowWordingReferencesDueDate(t *testing.T) {
	tomorrow := testNow.AddDate(0, 0, 1)
	engine, _, ns := newTestEngine(scheduleDueAt("Ganti Filter", &tomorrow))

	require.Equal(t, 1, engine.CheckAndCreateDueNotifications(context.Background()))
	assert.Contains(t, ns.created[0].NotificationMessage, "besok")
	assert.Contains(t, ns.created[0].NotificationMessage, tomorrow.Format("02 Jan 2006"))
}

func TestNoNotificationWhenDueFarOut(t *testing.T) {
	farOut := testNow.AddDate(0, 0, 5)
	engine, _, ns := newTestEngine(scheduleDueAt("Cat Ulang Pagar", &farOut))

	assert.Equal(t, 0, engine.CheckAndCreateDueNotifications(context.Background()))
	assert.Empty(t, ns.created)
}

func TestUnscheduledScheduleIsSkipped(t *testing.T) {
	engine, _, ns := newTestEngine(scheduleDueAt("Belum Terjadwal", nil))

	assert.Equal(t, 0, engine.CheckAndCreateDueNotifications(context.Background()))
	assert.Empty(t, ns.created)
}

func TestOneFailingScheduleDoesNotAbortTheRest(t *testing.T) {
	yesterday := testNow.AddDate(0, 0, -1)
	broken := scheduleDueAt("Gagal Simpan", &yesterday)
	healthy := scheduleDueAt("Tetap Jalan", &yesterday)

	engine, _, ns := newTestEngine(broken, healthy)
	ns.createErr = map[uuid.UUID]error{
		broken.MaintenanceScheduleID: errors.New("db down"),
	}

	assert.Equal(t, 1, engine.CheckAndCreateDueNotifications(context.Background()))
	require.Len(t, ns.created, 1)
	assert.Equal(t, healthy.MaintenanceScheduleID, *ns.created[0].NotificationScheduleID)
}

// =========================================================
// MARK AS DONE & CREATE
// =========================================================

func TestMarkAsDoneAdvancesCycleCalendarCorrect(t *testing.T) {
	s := scheduleDueAt("Servis Genset", datePtr(2025, time.January, 15))
	s.MaintenanceScheduleCycleMonth = 6

	engine, _, _ := newTestEngine(s)
	engine.Now = func() time.Time { return time.Date(2025, time.January, 31, 9, 0, 0, 0, time.UTC) }

	updated, err := engine.MarkAsDone(context.Background(), s.MaintenanceScheduleID)
	require.NoError(t, err)
	require.NotNil(t, updated.MaintenanceScheduleLastDoneAt)
	require.NotNil(t, updated.MaintenanceScheduleNextDueAt)

	assert.Equal(t, time.Date(2025, time.January, 31, 9, 0, 0, 0, time.UTC), *updated.MaintenanceScheduleLastDoneAt)
	assert.Equal(t, time.Date(2025, time.July, 31, 9, 0, 0, 0, time.UTC), *updated.MaintenanceScheduleNextDueAt)
}

func TestMarkAsDoneNotFound(t *testing.T) {
	engine, _, _ := newTestEngine()

	_, err := engine.MarkAsDone(context.Background(), uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCreateScheduleDerivesNextDueFromLastDone(t *testing.T) {
	engine, ss, ns := newTestEngine()

	lastDone := time.Date(2025, time.February, 10, 0, 0, 0, 0, time.UTC)
	s := model.MaintenanceScheduleModel{
		MaintenanceScheduleTitle:      "Kuras Tandon",
		MaintenanceScheduleCycleMonth: 3,
		MaintenanceScheduleLastDoneAt: &lastDone,
	}

	require.NoError(t, engine.CreateSchedule(context.Background(), &s))
	require.NotNil(t, s.MaintenanceScheduleNextDueAt)
	assert.Equal(t, time.Date(2025, time.May, 10, 0, 0, 0, 0, time.UTC), *s.MaintenanceScheduleNextDueAt)

	// tersimpan + notifikasi "jadwal dibuat" satu kali
	assert.Len(t, ss.schedules, 1)
	require.Len(t, ns.created, 1)
	assert.Equal(t, notifModel.NotificationTypeScheduleCreated, ns.created[0].NotificationType)
}

func TestCreateScheduleWithoutDatesStaysUnscheduled(t *testing.T) {
	engine, _, ns := newTestEngine()

	s := model.MaintenanceScheduleModel{
		MaintenanceScheduleTitle:      "Tanpa Jadwal",
		MaintenanceScheduleCycleMonth: 1,
	}
	require.NoError(t, engine.CreateSchedule(context.Background(), &s))
	assert.Nil(t, s.MaintenanceScheduleNextDueAt)

	// due engine melewati jadwal tanpa next_due_at
	assert.Equal(t, 0, engine.CheckAndCreateDueNotifications(context.Background()))
	require.Len(t, ns.created, 1) // hanya notifikasi schedule-created
}
