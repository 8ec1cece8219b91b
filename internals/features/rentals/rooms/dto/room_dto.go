package dto

import (
	"time"

	"github.com/google/uuid"

	"kostku_backend/internals/features/rentals/rooms/model"
)

type RoomCreateDTO struct {
	RoomName    string  `json:"room_name" validate:"required,max=100"`
	RoomFloor   int     `json:"room_floor" validate:"min=1"`
	RoomRentIDR int     `json:"room_rent_idr" validate:"min=0"`
	RoomNote    *string `json:"room_note,omitempty"`
}

type RoomUpdateDTO struct {
	RoomName               *string `json:"room_name,omitempty" validate:"omitempty,max=100"`
	RoomFloor              *int    `json:"room_floor,omitempty" validate:"omitempty,min=1"`
	RoomRentIDR            *int    `json:"room_rent_idr,omitempty" validate:"omitempty,min=0"`
	RoomIsUnderMaintenance *bool   `json:"room_is_under_maintenance,omitempty"`
	RoomNote               *string `json:"room_note,omitempty"`
}

func (d *RoomUpdateDTO) ApplyToModel(m *model.RoomModel) {
	if d.RoomName != nil {
		m.RoomName = *d.RoomName
	}
	if d.RoomFloor != nil {
		m.RoomFloor = *d.RoomFloor
	}
	if d.RoomRentIDR != nil {
		m.RoomRentIDR = *d.RoomRentIDR
	}
	if d.RoomIsUnderMaintenance != nil {
		m.RoomIsUnderMaintenance = *d.RoomIsUnderMaintenance
	}
	if d.RoomNote != nil {
		m.RoomNote = d.RoomNote
	}
}

type RoomResponse struct {
	RoomID      uuid.UUID `json:"room_id"`
	RoomName    string    `json:"room_name"`
	RoomFloor   int       `json:"room_floor"`
	RoomRentIDR int       `json:"room_rent_idr"`

	// available | occupied | maintenance — diturunkan saat query
	RoomStatus string `json:"room_status"`

	RoomImageURL *string `json:"room_image_url,omitempty"`
	RoomNote     *string `json:"room_note,omitempty"`

	RoomCreatedAt time.Time `json:"room_created_at"`
	RoomUpdatedAt time.Time `json:"room_updated_at"`
}

func ToRoomResponse(m model.RoomModel, status string) RoomResponse {
	return RoomResponse{
		RoomID:        m.RoomID,
		RoomName:      m.RoomName,
		RoomFloor:     m.RoomFloor,
		RoomRentIDR:   m.RoomRentIDR,
		RoomStatus:    status,
		RoomImageURL:  m.RoomImageURL,
		RoomNote:      m.RoomNote,
		RoomCreatedAt: m.RoomCreatedAt,
		RoomUpdatedAt: m.RoomUpdatedAt,
	}
}
