package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TenantModel struct {
	TenantID uuid.UUID `gorm:"column:tenant_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"tenant_id"`

	TenantName  string  `gorm:"column:tenant_name;type:varchar(100);not null" json:"tenant_name"`
	TenantPhone string  `gorm:"column:tenant_phone;type:varchar(30);not null" json:"tenant_phone"`
	TenantEmail *string `gorm:"column:tenant_email;type:varchar(100);unique" json:"tenant_email,omitempty"`

	// Nomor KTP — dipakai buat verifikasi, tidak pernah tampil di list
	TenantIdentityNumber *string `gorm:"column:tenant_identity_number;type:varchar(32)" json:"tenant_identity_number,omitempty"`
	TenantNote           *string `gorm:"column:tenant_note;type:text" json:"tenant_note,omitempty"`

	TenantCreatedAt time.Time      `gorm:"column:tenant_created_at;autoCreateTime" json:"tenant_created_at"`
	TenantUpdatedAt time.Time      `gorm:"column:tenant_updated_at;autoUpdateTime" json:"tenant_updated_at"`
	TenantDeletedAt gorm.DeletedAt `gorm:"column:tenant_deleted_at;index" json:"-"`
}

func (TenantModel) TableName() string {
	return "tenants"
}

func (m *TenantModel) BeforeCreate(tx *gorm.DB) error {
	if m.TenantID == uuid.Nil {
		m.TenantID = uuid.New()
	}
	return nil
}
