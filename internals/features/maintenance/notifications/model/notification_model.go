package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Tipe notifikasi di-handle enum di sisi kode
const (
	NotificationTypeScheduleCreated = 1
	NotificationTypeScheduleDue     = 2
)

type NotificationModel struct {
	NotificationID         uuid.UUID      `gorm:"column:notification_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"notification_id"`
	NotificationTitle      string         `gorm:"column:notification_title;type:varchar(255);not null" json:"notification_title"`
	NotificationMessage    string         `gorm:"column:notification_message;type:text" json:"notification_message"`
	NotificationType       int            `gorm:"column:notification_type;not null;index" json:"notification_type"`
	NotificationScheduleID *uuid.UUID     `gorm:"column:notification_schedule_id;type:uuid;index" json:"notification_schedule_id"` // nullable, FK maintenance_schedules (ON DELETE CASCADE)
	NotificationTags       pq.StringArray `gorm:"column:notification_tags;type:text[]" json:"notification_tags"`
	NotificationIsRead     bool           `gorm:"column:notification_is_read;not null;default:false;index" json:"notification_is_read"`
	NotificationReadAt     *time.Time     `gorm:"column:notification_read_at" json:"notification_read_at,omitempty"`
	NotificationCreatedAt  time.Time      `gorm:"column:notification_created_at;autoCreateTime;index" json:"notification_created_at"`
	NotificationUpdatedAt  time.Time      `gorm:"column:notification_updated_at;autoUpdateTime" json:"notification_updated_at"`
}

func (NotificationModel) TableName() string {
	return "notifications"
}
