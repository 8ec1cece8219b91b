package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"kostku_backend/internals/features/assets/model"
)

// =========================================================
// ASSET GROUP
// =========================================================

type AssetGroupCreateDTO struct {
	AssetGroupName        string  `json:"asset_group_name" validate:"required,max=100"`
	AssetGroupDescription *string `json:"asset_group_description,omitempty"`
}

type AssetGroupUpdateDTO struct {
	AssetGroupName        *string `json:"asset_group_name,omitempty" validate:"omitempty,max=100"`
	AssetGroupDescription *string `json:"asset_group_description,omitempty"`
}

type AssetGroupResponse struct {
	AssetGroupID          uuid.UUID `json:"asset_group_id"`
	AssetGroupName        string    `json:"asset_group_name"`
	AssetGroupDescription *string   `json:"asset_group_description,omitempty"`
	AssetGroupItemCount   int64     `json:"asset_group_item_count"`
	AssetGroupCreatedAt   time.Time `json:"asset_group_created_at"`
	AssetGroupUpdatedAt   time.Time `json:"asset_group_updated_at"`
}

func ToAssetGroupResponse(m model.AssetGroupModel, itemCount int64) AssetGroupResponse {
	return AssetGroupResponse{
		AssetGroupID:          m.AssetGroupID,
		AssetGroupName:        m.AssetGroupName,
		AssetGroupDescription: m.AssetGroupDescription,
		AssetGroupItemCount:   itemCount,
		AssetGroupCreatedAt:   m.AssetGroupCreatedAt,
		AssetGroupUpdatedAt:   m.AssetGroupUpdatedAt,
	}
}

// =========================================================
// ASSET ITEM
// =========================================================

type AssetItemCreateDTO struct {
	AssetItemGroupID     uuid.UUID      `json:"asset_item_group_id" validate:"required"`
	AssetItemName        string         `json:"asset_item_name" validate:"required,max=100"`
	AssetItemCondition   *string        `json:"asset_item_condition,omitempty" validate:"omitempty,oneof=good needs_service broken"`
	AssetItemRoomID      *uuid.UUID     `json:"asset_item_room_id,omitempty"`
	AssetItemLocation    *string        `json:"asset_item_location,omitempty" validate:"omitempty,max=150"`
	AssetItemSpec        datatypes.JSON `json:"asset_item_spec,omitempty"`
	AssetItemPurchasedAt *time.Time     `json:"asset_item_purchased_at,omitempty"`
	AssetItemPriceIDR    *int           `json:"asset_item_price_idr,omitempty" validate:"omitempty,min=0"`
}

type AssetItemUpdateDTO struct {
	AssetItemName        *string        `json:"asset_item_name,omitempty" validate:"omitempty,max=100"`
	AssetItemCondition   *string        `json:"asset_item_condition,omitempty" validate:"omitempty,oneof=good needs_service broken"`
	AssetItemRoomID      *uuid.UUID     `json:"asset_item_room_id,omitempty"`
	AssetItemLocation    *string        `json:"asset_item_location,omitempty" validate:"omitempty,max=150"`
	AssetItemSpec        datatypes.JSON `json:"asset_item_spec,omitempty"`
	AssetItemPurchasedAt *time.Time     `json:"asset_item_purchased_at,omitempty"`
	AssetItemPriceIDR    *int           `json:"asset_item_price_idr,omitempty" validate:"omitempty,min=0"`
}

func (d *AssetItemUpdateDTO) ApplyToModel(m *model.AssetItemModel) {
	if d.AssetItemName != nil {
		m.AssetItemName = *d.AssetItemName
	}
	if d.AssetItemCondition != nil {
		m.AssetItemCondition = model.AssetItemCondition(*d.AssetItemCondition)
	}
	if d.AssetItemRoomID != nil {
		m.AssetItemRoomID = d.AssetItemRoomID
	}
	if d.AssetItemLocation != nil {
		m.AssetItemLocation = d.AssetItemLocation
	}
	if len(d.AssetItemSpec) > 0 {
		m.AssetItemSpec = d.AssetItemSpec
	}
	if d.AssetItemPurchasedAt != nil {
		m.AssetItemPurchasedAt = d.AssetItemPurchasedAt
	}
	if d.AssetItemPriceIDR != nil {
		m.AssetItemPriceIDR = d.AssetItemPriceIDR
	}
}

type AssetItemResponse struct {
	AssetItemID          uuid.UUID      `json:"asset_item_id"`
	AssetItemGroupID     uuid.UUID      `json:"asset_item_group_id"`
	AssetItemName        string         `json:"asset_item_name"`
	AssetItemCondition   string         `json:"asset_item_condition"`
	AssetItemRoomID      *uuid.UUID     `json:"asset_item_room_id,omitempty"`
	AssetItemLocation    *string        `json:"asset_item_location,omitempty"`
	AssetItemSpec        datatypes.JSON `json:"asset_item_spec,omitempty"`
	AssetItemPurchasedAt *time.Time     `json:"asset_item_purchased_at,omitempty"`
	AssetItemPriceIDR    *int           `json:"asset_item_price_idr,omitempty"`
	AssetItemCreatedAt   time.Time      `json:"asset_item_created_at"`
	AssetItemUpdatedAt   time.Time      `json:"asset_item_updated_at"`
}

func ToAssetItemResponse(m model.AssetItemModel) AssetItemResponse {
	return AssetItemResponse{
		AssetItemID:          m.AssetItemID,
		AssetItemGroupID:     m.AssetItemGroupID,
		AssetItemName:        m.AssetItemName,
		AssetItemCondition:   string(m.AssetItemCondition),
		AssetItemRoomID:      m.AssetItemRoomID,
		AssetItemLocation:    m.AssetItemLocation,
		AssetItemSpec:        m.AssetItemSpec,
		AssetItemPurchasedAt: m.AssetItemPurchasedAt,
		AssetItemPriceIDR:    m.AssetItemPriceIDR,
		AssetItemCreatedAt:   m.AssetItemCreatedAt,
		AssetItemUpdatedAt:   m.AssetItemUpdatedAt,
	}
}

func ToAssetItemResponseList(list []model.AssetItemModel) []AssetItemResponse {
	out := make([]AssetItemResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToAssetItemResponse(m))
	}
	return out
}
