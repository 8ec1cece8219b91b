package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// =========================================================
// ENUM — status kontrak
// =========================================================

type ContractStatus string

const (
	ContractStatusActive   ContractStatus = "active"
	ContractStatusEnded    ContractStatus = "ended"
	ContractStatusCanceled ContractStatus = "canceled"
)

// =========================================================
// MODEL
// =========================================================

type ContractModel struct {
	// PK
	ContractID uuid.UUID `gorm:"column:contract_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"contract_id"`

	// FK → rooms / tenants
	ContractRoomID   uuid.UUID `gorm:"column:contract_room_id;type:uuid;not null;index" json:"contract_room_id"`
	ContractTenantID uuid.UUID `gorm:"column:contract_tenant_id;type:uuid;not null;index" json:"contract_tenant_id"`

	// Nominal bulanan (IDR) — jadi sumber snapshot invoice
	ContractRentIDR     int `gorm:"column:contract_rent_idr;not null;check:contract_rent_idr>=0" json:"contract_rent_idr"`
	ContractWaterIDR    int `gorm:"column:contract_water_idr;not null;default:0" json:"contract_water_idr"`
	ContractElectricIDR int `gorm:"column:contract_electric_idr;not null;default:0" json:"contract_electric_idr"`

	ContractStartDate time.Time  `gorm:"column:contract_start_date;not null" json:"contract_start_date"`
	ContractEndDate   *time.Time `gorm:"column:contract_end_date" json:"contract_end_date,omitempty"`

	ContractStatus ContractStatus `gorm:"column:contract_status;type:varchar(20);not null;default:'active';index" json:"contract_status"`
	ContractNote   *string        `gorm:"column:contract_note;type:text" json:"contract_note,omitempty"`

	// Timestamps (eksplisit)
	ContractCreatedAt time.Time      `gorm:"column:contract_created_at;not null;default:now()" json:"contract_created_at"`
	ContractUpdatedAt time.Time      `gorm:"column:contract_updated_at;not null;default:now()" json:"contract_updated_at"`
	ContractDeletedAt gorm.DeletedAt `gorm:"column:contract_deleted_at;index" json:"-"`
}

func (ContractModel) TableName() string {
	return "contracts"
}

func (m *ContractModel) BeforeCreate(tx *gorm.DB) (err error) {
	now := time.Now()
	if m.ContractCreatedAt.IsZero() {
		m.ContractCreatedAt = now
	}
	m.ContractUpdatedAt = now
	return nil
}

func (m *ContractModel) BeforeUpdate(tx *gorm.DB) (err error) {
	m.ContractUpdatedAt = time.Now()
	return nil
}
