// file: internals/features/maintenance/schedules/service/due_engine.go
package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	notifModel "kostku_backend/internals/features/maintenance/notifications/model"
	"kostku_backend/internals/features/maintenance/schedules/model"
	"kostku_backend/internals/helpers/timeutil"
)

// Jendela dedup: satu jadwal maksimal satu notifikasi due per 24 jam,
// walau pengecekan dipicu berkali-kali (cron + manual).
const dueNotifyWindow = 24 * time.Hour

type DueEngine struct {
	Schedules     ScheduleStore
	Notifications NotificationStore

	// Now bisa di-override di test; nil = time.Now
	Now func() time.Time
}

func NewDueEngine(db *gorm.DB) *DueEngine {
	return &DueEngine{
		Schedules:     NewScheduleStore(db),
		Notifications: NewNotificationStore(db),
	}
}

func (e *DueEngine) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}

// CheckAndCreateDueNotifications memeriksa semua jadwal yang punya tanggal
// jatuh tempo dan membuat notifikasi untuk yang due besok / hari ini /
// sudah terlambat. Satu jadwal gagal tidak menghentikan jadwal lain, dan
// fungsi ini tidak pernah mengembalikan error (aman dipanggil dari cron).
// Mengembalikan jumlah notifikasi yang dibuat.
func (e *DueEngine) CheckAndCreateDueNotifications(ctx context.Context) int {
	schedules, err := e.Schedules.ListScheduled(ctx)
	if err != nil {
		log.Printf("[ERROR] Due check: gagal ambil jadwal perawatan: %v", err)
		return 0
	}

	now := e.now()
	created := 0

	for _, s := range schedules {
		if s.MaintenanceScheduleNextDueAt == nil {
			continue
		}

		daysUntilDue := timeutil.DaysBetween(now, *s.MaintenanceScheduleNextDueAt)
		if daysUntilDue > 1 {
			continue
		}

		lastNotified, err := e.Notifications.LastDueNotifiedAt(ctx, s.MaintenanceScheduleID)
		if err != nil {
			log.Printf("[ERROR] Due check: gagal cek notifikasi terakhir jadwal %s: %v", s.MaintenanceScheduleID, err)
			continue
		}
		if lastNotified != nil && now.Sub(*lastNotified) < dueNotifyWindow {
			continue
		}

		title, message := composeDueNotification(s, daysUntilDue)
		scheduleID := s.MaintenanceScheduleID
		notif := notifModel.NotificationModel{
			NotificationTitle:      title,
			NotificationMessage:    message,
			NotificationType:       notifModel.NotificationTypeScheduleDue,
			NotificationScheduleID: &scheduleID,
			NotificationTags:       pq.StringArray{"maintenance", "due"},
		}
		if err := e.Notifications.Create(ctx, &notif); err != nil {
			log.Printf("[ERROR] Due check: gagal simpan notifikasi jadwal %s: %v", s.MaintenanceScheduleID, err)
			continue
		}
		created++
	}

	return created
}

// CreateScheduleNotification dipanggil sekali tepat setelah jadwal dibuat.
func (e *DueEngine) CreateScheduleNotification(ctx context.Context, s model.MaintenanceScheduleModel) error {
	dueInfo := "belum dijadwalkan"
	if s.MaintenanceScheduleNextDueAt != nil {
		dueInfo = s.MaintenanceScheduleNextDueAt.Format("02 Jan 2006")
	}

	scheduleID := s.MaintenanceScheduleID
	notif := notifModel.NotificationModel{
		NotificationTitle:      "Jadwal Perawatan Baru: " + s.MaintenanceScheduleTitle,
		NotificationMessage:    fmt.Sprintf("Jadwal perawatan %q dibuat dengan siklus %d bulan. Jatuh tempo berikutnya: %s.", s.MaintenanceScheduleTitle, s.MaintenanceScheduleCycleMonth, dueInfo),
		NotificationType:       notifModel.NotificationTypeScheduleCreated,
		NotificationScheduleID: &scheduleID,
		NotificationTags:       pq.StringArray{"maintenance"},
	}
	return e.Notifications.Create(ctx, &notif)
}

// CreateSchedule menyimpan jadwal baru. Kalau caller mengisi last_done_at
// tanpa next_due_at, next_due_at diturunkan dari siklus.
func (e *DueEngine) CreateSchedule(ctx context.Context, s *model.MaintenanceScheduleModel) error {
	if s.MaintenanceScheduleNextDueAt == nil && s.MaintenanceScheduleLastDoneAt != nil {
		next := timeutil.AddMonths(*s.MaintenanceScheduleLastDoneAt, s.MaintenanceScheduleCycleMonth)
		s.MaintenanceScheduleNextDueAt = &next
	}
	if err := e.Schedules.Save(ctx, s); err != nil {
		return err
	}
	if err := e.CreateScheduleNotification(ctx, *s); err != nil {
		// notifikasi gagal bukan alasan membatalkan pembuatan jadwal
		log.Printf("[ERROR] Gagal membuat notifikasi jadwal baru %s: %v", s.MaintenanceScheduleID, err)
	}
	return nil
}

// MarkAsDone menandai jadwal selesai: last_done_at = sekarang dan
// next_due_at maju satu siklus (aritmetika bulan kalender).
func (e *DueEngine) MarkAsDone(ctx context.Context, id uuid.UUID) (*model.MaintenanceScheduleModel, error) {
	s, err := e.Schedules.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := e.now()
	next := timeutil.AddMonths(now, s.MaintenanceScheduleCycleMonth)
	s.MaintenanceScheduleLastDoneAt = &now
	s.MaintenanceScheduleNextDueAt = &next

	if err := e.Schedules.Save(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func composeDueNotification(s model.MaintenanceScheduleModel, daysUntilDue int) (title, message string) {
	dueDate := s.MaintenanceScheduleNextDueAt.Format("02 Jan 2006")

	switch {
	case daysUntilDue < 0:
		title = "⚠️ URGENT — Perawatan Terlambat: " + s.MaintenanceScheduleTitle
		message = fmt.Sprintf("Perawatan %q sudah terlambat %d hari (jatuh tempo %s). Segera tindak lanjuti.", s.MaintenanceScheduleTitle, -daysUntilDue, dueDate)
	case daysUntilDue == 0:
		title = "Perawatan Jatuh Tempo Hari Ini: " + s.MaintenanceScheduleTitle
		message = fmt.Sprintf("Perawatan %q jatuh tempo hari ini (%s).", s.MaintenanceScheduleTitle, dueDate)
	default:
		title = "Perawatan Jatuh Tempo Besok: " + s.MaintenanceScheduleTitle
		message = fmt.Sprintf("Perawatan %q jatuh tempo besok (%s).", s.MaintenanceScheduleTitle, dueDate)
	}
	return title, message
}
