package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Grup aset — target jadwal perawatan non-global
// (contoh: "AC lantai 2", "Pompa air", "Tandon")
type AssetGroupModel struct {
	AssetGroupID uuid.UUID `gorm:"column:asset_group_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"asset_group_id"`

	AssetGroupName        string  `gorm:"column:asset_group_name;type:varchar(100);not null" json:"asset_group_name"`
	AssetGroupDescription *string `gorm:"column:asset_group_description;type:text" json:"asset_group_description,omitempty"`

	AssetGroupCreatedAt time.Time      `gorm:"column:asset_group_created_at;autoCreateTime" json:"asset_group_created_at"`
	AssetGroupUpdatedAt time.Time      `gorm:"column:asset_group_updated_at;autoUpdateTime" json:"asset_group_updated_at"`
	AssetGroupDeletedAt gorm.DeletedAt `gorm:"column:asset_group_deleted_at;index" json:"-"`
}

func (AssetGroupModel) TableName() string {
	return "asset_groups"
}

func (m *AssetGroupModel) BeforeCreate(tx *gorm.DB) error {
	if m.AssetGroupID == uuid.Nil {
		m.AssetGroupID = uuid.New()
	}
	return nil
}
