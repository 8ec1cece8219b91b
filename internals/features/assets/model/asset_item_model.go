package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type AssetItemCondition string

const (
	AssetItemConditionGood         AssetItemCondition = "good"
	AssetItemConditionNeedsService AssetItemCondition = "needs_service"
	AssetItemConditionBroken       AssetItemCondition = "broken"
)

type AssetItemModel struct {
	AssetItemID uuid.UUID `gorm:"column:asset_item_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"asset_item_id"`

	// FK → asset_groups (ON DELETE CASCADE di migration)
	AssetItemGroupID uuid.UUID `gorm:"column:asset_item_group_id;type:uuid;not null;index" json:"asset_item_group_id"`

	AssetItemName      string             `gorm:"column:asset_item_name;type:varchar(100);not null" json:"asset_item_name"`
	AssetItemCondition AssetItemCondition `gorm:"column:asset_item_condition;type:varchar(20);not null;default:'good'" json:"asset_item_condition"`

	// Lokasi fisik; boleh merujuk kamar, boleh teks bebas ("dapur bersama")
	AssetItemRoomID   *uuid.UUID `gorm:"column:asset_item_room_id;type:uuid;index" json:"asset_item_room_id,omitempty"`
	AssetItemLocation *string    `gorm:"column:asset_item_location;type:varchar(150)" json:"asset_item_location,omitempty"`

	// Spesifikasi bebas per jenis aset (merk, PK, kapasitas, tahun beli, ...)
	AssetItemSpec datatypes.JSON `gorm:"column:asset_item_spec;type:jsonb" json:"asset_item_spec,omitempty"`

	AssetItemPurchasedAt *time.Time `gorm:"column:asset_item_purchased_at" json:"asset_item_purchased_at,omitempty"`
	AssetItemPriceIDR    *int       `gorm:"column:asset_item_price_idr" json:"asset_item_price_idr,omitempty"`

	AssetItemCreatedAt time.Time      `gorm:"column:asset_item_created_at;autoCreateTime" json:"asset_item_created_at"`
	AssetItemUpdatedAt time.Time      `gorm:"column:asset_item_updated_at;autoUpdateTime" json:"asset_item_updated_at"`
	AssetItemDeletedAt gorm.DeletedAt `gorm:"column:asset_item_deleted_at;index" json:"-"`
}

func (AssetItemModel) TableName() string {
	return "asset_items"
}

func (m *AssetItemModel) BeforeCreate(tx *gorm.DB) error {
	if m.AssetItemID == uuid.Nil {
		m.AssetItemID = uuid.New()
	}
	return nil
}
