package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// =========================================================
// MODEL
// =========================================================

type MaintenanceScheduleModel struct {
	// PK
	MaintenanceScheduleID uuid.UUID `gorm:"column:maintenance_schedule_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"maintenance_schedule_id"`

	// Scope: true = berlaku seluruh kost, false = terikat satu grup aset
	MaintenanceScheduleIsGlobal     bool       `gorm:"column:maintenance_schedule_is_global;not null;default:false" json:"maintenance_schedule_is_global"`
	MaintenanceScheduleAssetGroupID *uuid.UUID `gorm:"column:maintenance_schedule_asset_group_id;type:uuid;index" json:"maintenance_schedule_asset_group_id,omitempty"`

	MaintenanceScheduleTitle       string `gorm:"column:maintenance_schedule_title;type:varchar(255);not null" json:"maintenance_schedule_title"`
	MaintenanceScheduleDescription string `gorm:"column:maintenance_schedule_description;type:text" json:"maintenance_schedule_description"`

	// Siklus dalam bulan penuh, minimal 1
	MaintenanceScheduleCycleMonth       int `gorm:"column:maintenance_schedule_cycle_month;not null;check:maintenance_schedule_cycle_month>=1" json:"maintenance_schedule_cycle_month"`
	MaintenanceScheduleNotifyBeforeDays int `gorm:"column:maintenance_schedule_notify_before_days;not null;default:7" json:"maintenance_schedule_notify_before_days"`

	// Kedua-duanya boleh kosong ("jadwal belum terpasang" — dilewati due engine)
	MaintenanceScheduleLastDoneAt *time.Time `gorm:"column:maintenance_schedule_last_done_at" json:"maintenance_schedule_last_done_at,omitempty"`
	MaintenanceScheduleNextDueAt  *time.Time `gorm:"column:maintenance_schedule_next_due_at;index" json:"maintenance_schedule_next_due_at,omitempty"`

	// Timestamps (eksplisit)
	MaintenanceScheduleCreatedAt time.Time      `gorm:"column:maintenance_schedule_created_at;not null;default:now()" json:"maintenance_schedule_created_at"`
	MaintenanceScheduleUpdatedAt time.Time      `gorm:"column:maintenance_schedule_updated_at;not null;default:now()" json:"maintenance_schedule_updated_at"`
	MaintenanceScheduleDeletedAt gorm.DeletedAt `gorm:"column:maintenance_schedule_deleted_at;index" json:"-"`
}

func (MaintenanceScheduleModel) TableName() string {
	return "maintenance_schedules"
}

// =========================================================
// HOOKS — set timestamps eksplisit
// =========================================================

func (m *MaintenanceScheduleModel) BeforeCreate(tx *gorm.DB) (err error) {
	now := time.Now()
	if m.MaintenanceScheduleCreatedAt.IsZero() {
		m.MaintenanceScheduleCreatedAt = now
	}
	m.MaintenanceScheduleUpdatedAt = now
	return nil
}

func (m *MaintenanceScheduleModel) BeforeUpdate(tx *gorm.DB) (err error) {
	m.MaintenanceScheduleUpdatedAt = time.Now()
	return nil
}
