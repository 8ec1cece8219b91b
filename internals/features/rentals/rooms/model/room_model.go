package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Status kamar diturunkan, bukan disimpan: available | occupied | maintenance.
// occupied = ada kontrak aktif, maintenance = flag manual dari pemilik.
type RoomModel struct {
	RoomID uuid.UUID `gorm:"column:room_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"room_id"`

	RoomName  string `gorm:"column:room_name;type:varchar(100);not null" json:"room_name"`
	RoomFloor int    `gorm:"column:room_floor;not null;default:1" json:"room_floor"`

	// Tarif default kamar (IDR); kontrak boleh menimpa
	RoomRentIDR int `gorm:"column:room_rent_idr;not null;check:room_rent_idr>=0" json:"room_rent_idr"`

	RoomIsUnderMaintenance bool    `gorm:"column:room_is_under_maintenance;not null;default:false" json:"room_is_under_maintenance"`
	RoomImageURL           *string `gorm:"column:room_image_url;type:text" json:"room_image_url,omitempty"`
	RoomNote               *string `gorm:"column:room_note;type:text" json:"room_note,omitempty"`

	RoomCreatedAt time.Time      `gorm:"column:room_created_at;autoCreateTime" json:"room_created_at"`
	RoomUpdatedAt time.Time      `gorm:"column:room_updated_at;autoUpdateTime" json:"room_updated_at"`
	RoomDeletedAt gorm.DeletedAt `gorm:"column:room_deleted_at;index" json:"-"`
}

func (RoomModel) TableName() string {
	return "rooms"
}

func (m *RoomModel) BeforeCreate(tx *gorm.DB) error {
	if m.RoomID == uuid.Nil {
		m.RoomID = uuid.New()
	}
	return nil
}
