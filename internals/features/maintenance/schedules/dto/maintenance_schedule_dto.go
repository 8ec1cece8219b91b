package dto

import (
	"time"

	"github.com/google/uuid"

	"kostku_backend/internals/features/maintenance/schedules/model"
)

////////////////////////////////////////////////////////////////////////////////
// MAINTENANCE SCHEDULES — DTO
////////////////////////////////////////////////////////////////////////////////

type MaintenanceScheduleCreateDTO struct {
	MaintenanceScheduleIsGlobal         bool       `json:"maintenance_schedule_is_global"`
	MaintenanceScheduleAssetGroupID     *uuid.UUID `json:"maintenance_schedule_asset_group_id,omitempty"`
	MaintenanceScheduleTitle            string     `json:"maintenance_schedule_title" validate:"required,max=255"`
	MaintenanceScheduleDescription      string     `json:"maintenance_schedule_description,omitempty"`
	MaintenanceScheduleCycleMonth       int        `json:"maintenance_schedule_cycle_month" validate:"required,min=1"`
	MaintenanceScheduleNotifyBeforeDays *int       `json:"maintenance_schedule_notify_before_days,omitempty" validate:"omitempty,min=0"`
	MaintenanceScheduleLastDoneAt       *time.Time `json:"maintenance_schedule_last_done_at,omitempty"`
	MaintenanceScheduleNextDueAt        *time.Time `json:"maintenance_schedule_next_due_at,omitempty"`
}

type MaintenanceScheduleUpdateDTO struct {
	MaintenanceScheduleIsGlobal         *bool      `json:"maintenance_schedule_is_global,omitempty"`
	MaintenanceScheduleAssetGroupID     *uuid.UUID `json:"maintenance_schedule_asset_group_id,omitempty"`
	MaintenanceScheduleTitle            *string    `json:"maintenance_schedule_title,omitempty" validate:"omitempty,max=255"`
	MaintenanceScheduleDescription      *string    `json:"maintenance_schedule_description,omitempty"`
	MaintenanceScheduleCycleMonth       *int       `json:"maintenance_schedule_cycle_month,omitempty" validate:"omitempty,min=1"`
	MaintenanceScheduleNotifyBeforeDays *int       `json:"maintenance_schedule_notify_before_days,omitempty" validate:"omitempty,min=0"`
	MaintenanceScheduleLastDoneAt       *time.Time `json:"maintenance_schedule_last_done_at,omitempty"`
	MaintenanceScheduleNextDueAt        *time.Time `json:"maintenance_schedule_next_due_at,omitempty"`
}

type MaintenanceScheduleResponse struct {
	MaintenanceScheduleID               uuid.UUID  `json:"maintenance_schedule_id"`
	MaintenanceScheduleIsGlobal         bool       `json:"maintenance_schedule_is_global"`
	MaintenanceScheduleAssetGroupID     *uuid.UUID `json:"maintenance_schedule_asset_group_id,omitempty"`
	MaintenanceScheduleTitle            string     `json:"maintenance_schedule_title"`
	MaintenanceScheduleDescription      string     `json:"maintenance_schedule_description,omitempty"`
	MaintenanceScheduleCycleMonth       int        `json:"maintenance_schedule_cycle_month"`
	MaintenanceScheduleNotifyBeforeDays int        `json:"maintenance_schedule_notify_before_days"`
	MaintenanceScheduleLastDoneAt       *time.Time `json:"maintenance_schedule_last_done_at,omitempty"`
	MaintenanceScheduleNextDueAt        *time.Time `json:"maintenance_schedule_next_due_at,omitempty"`
	MaintenanceScheduleCreatedAt        time.Time  `json:"maintenance_schedule_created_at"`
	MaintenanceScheduleUpdatedAt        time.Time  `json:"maintenance_schedule_updated_at"`
}

////////////////////////////////////////////////////////////////////////////////
// MAPPERS — Model <-> DTO
////////////////////////////////////////////////////////////////////////////////

func (d MaintenanceScheduleCreateDTO) ToModel() model.MaintenanceScheduleModel {
	notifyBefore := 7
	if d.MaintenanceScheduleNotifyBeforeDays != nil {
		notifyBefore = *d.MaintenanceScheduleNotifyBeforeDays
	}
	return model.MaintenanceScheduleModel{
		MaintenanceScheduleIsGlobal:         d.MaintenanceScheduleIsGlobal,
		MaintenanceScheduleAssetGroupID:     d.MaintenanceScheduleAssetGroupID,
		MaintenanceScheduleTitle:            d.MaintenanceScheduleTitle,
		MaintenanceScheduleDescription:      d.MaintenanceScheduleDescription,
		MaintenanceScheduleCycleMonth:       d.MaintenanceScheduleCycleMonth,
		MaintenanceScheduleNotifyBeforeDays: notifyBefore,
		MaintenanceScheduleLastDoneAt:       d.MaintenanceScheduleLastDoneAt,
		MaintenanceScheduleNextDueAt:        d.MaintenanceScheduleNextDueAt,
	}
}

// ApplyToModel menerapkan update parsial. Catatan: perubahan siklus TIDAK
// menghitung ulang next_due_at (hanya mark-done yang melakukannya).
func (d MaintenanceScheduleUpdateDTO) ApplyToModel(m *model.MaintenanceScheduleModel) {
	if d.MaintenanceScheduleIsGlobal != nil {
		m.MaintenanceScheduleIsGlobal = *d.MaintenanceScheduleIsGlobal
	}
	if d.MaintenanceScheduleAssetGroupID != nil {
		m.MaintenanceScheduleAssetGroupID = d.MaintenanceScheduleAssetGroupID
	}
	if d.MaintenanceScheduleTitle != nil {
		m.MaintenanceScheduleTitle = *d.MaintenanceScheduleTitle
	}
	if d.MaintenanceScheduleDescription != nil {
		m.MaintenanceScheduleDescription = *d.MaintenanceScheduleDescription
	}
	if d.MaintenanceScheduleCycleMonth != nil {
		m.MaintenanceScheduleCycleMonth = *d.MaintenanceScheduleCycleMonth
	}
	if d.MaintenanceScheduleNotifyBeforeDays != nil {
		m.MaintenanceScheduleNotifyBeforeDays = *d.MaintenanceScheduleNotifyBeforeDays
	}
	if d.MaintenanceScheduleLastDoneAt != nil {
		m.MaintenanceScheduleLastDoneAt = d.MaintenanceScheduleLastDoneAt
	}
	if d.MaintenanceScheduleNextDueAt != nil {
		m.MaintenanceScheduleNextDueAt = d.MaintenanceScheduleNextDueAt
	}
}

func ToMaintenanceScheduleResponse(m model.MaintenanceScheduleModel) MaintenanceScheduleResponse {
	return MaintenanceScheduleResponse{
		MaintenanceScheduleID:               m.MaintenanceScheduleID,
		MaintenanceScheduleIsGlobal:         m.MaintenanceScheduleIsGlobal,
		MaintenanceScheduleAssetGroupID:     m.MaintenanceScheduleAssetGroupID,
		MaintenanceScheduleTitle:            m.MaintenanceScheduleTitle,
		MaintenanceScheduleDescription:      m.MaintenanceScheduleDescription,
		MaintenanceScheduleCycleMonth:       m.MaintenanceScheduleCycleMonth,
		MaintenanceScheduleNotifyBeforeDays: m.MaintenanceScheduleNotifyBeforeDays,
		MaintenanceScheduleLastDoneAt:       m.MaintenanceScheduleLastDoneAt,
		MaintenanceScheduleNextDueAt:        m.MaintenanceScheduleNextDueAt,
		MaintenanceScheduleCreatedAt:        m.MaintenanceScheduleCreatedAt,
		MaintenanceScheduleUpdatedAt:        m.MaintenanceScheduleUpdatedAt,
	}
}

func ToMaintenanceScheduleResponseList(list []model.MaintenanceScheduleModel) []MaintenanceScheduleResponse {
	out := make([]MaintenanceScheduleResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToMaintenanceScheduleResponse(m))
	}
	return out
}
