package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	notifModel "kostku_backend/internals/features/maintenance/notifications/model"
	"kostku_backend/internals/features/maintenance/schedules/model"
)

// Store kecil supaya engine bisa dites tanpa DB hidup.

type ScheduleStore interface {
	ListScheduled(ctx context.Context) ([]model.MaintenanceScheduleModel, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.MaintenanceScheduleModel, error)
	Save(ctx context.Context, s *model.MaintenanceScheduleModel) error
}

type NotificationStore interface {
	Create(ctx context.Context, n *notifModel.NotificationModel) error
	// LastDueNotifiedAt mengembalikan waktu notifikasi due/overdue terakhir
	// untuk jadwal tsb, nil kalau belum pernah ada.
	LastDueNotifiedAt(ctx context.Context, scheduleID uuid.UUID) (*time.Time, error)
}

// =========================================================
// GORM IMPLEMENTATION
// =========================================================

type gormScheduleStore struct {
	db *gorm.DB
}

func NewScheduleStore(db *gorm.DB) ScheduleStore {
	return &gormScheduleStore{db: db}
}

func (s *gormScheduleStore) ListScheduled(ctx context.Context) ([]model.MaintenanceScheduleModel, error) {
	var out []model.MaintenanceScheduleModel
	err := s.db.WithContext(ctx).
		Where("maintenance_schedule_next_due_at IS NOT NULL").
		Find(&out).Error
	return out, err
}

func (s *gormScheduleStore) FindByID(ctx context.Context, id uuid.UUID) (*model.MaintenanceScheduleModel, error) {
	var out model.MaintenanceScheduleModel
	if err := s.db.WithContext(ctx).
		Where("maintenance_schedule_id = ?", id).
		First(&out).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *gormScheduleStore) Save(ctx context.Context, sch *model.MaintenanceScheduleModel) error {
	return s.db.WithContext(ctx).Save(sch).Error
}

type gormNotificationStore struct {
	db *gorm.DB
}

func NewNotificationStore(db *gorm.DB) NotificationStore {
	return &gormNotificationStore{db: db}
}

func (s *gormNotificationStore) Create(ctx context.Context, n *notifModel.NotificationModel) error {
	return s.db.WithContext(ctx).Create(n).Error
}

func (s *gormNotificationStore) LastDueNotifiedAt(ctx context.Context, scheduleID uuid.UUID) (*time.Time, error) {
	var n notifModel.NotificationModel
	err := s.db.WithContext(ctx).
		Where("notification_schedule_id = ? AND notification_type = ?", scheduleID, notifModel.NotificationTypeScheduleDue).
		Order("notification_created_at DESC").
		First(&n).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	t := n.NotificationCreatedAt
	return &t, nil
}
