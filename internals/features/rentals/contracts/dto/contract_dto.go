package dto

import (
	"time"

	"github.com/google/uuid"

	"kostku_backend/internals/features/rentals/contracts/model"
)

type ContractCreateDTO struct {
	ContractRoomID   uuid.UUID `json:"contract_room_id" validate:"required"`
	ContractTenantID uuid.UUID `json:"contract_tenant_id" validate:"required"`

	// kosong = pakai tarif default kamar
	ContractRentIDR     *int `json:"contract_rent_idr,omitempty" validate:"omitempty,min=0"`
	ContractWaterIDR    int  `json:"contract_water_idr" validate:"min=0"`
	ContractElectricIDR int  `json:"contract_electric_idr" validate:"min=0"`

	ContractStartDate time.Time  `json:"contract_start_date" validate:"required"`
	ContractEndDate   *time.Time `json:"contract_end_date,omitempty"`
	ContractNote      *string    `json:"contract_note,omitempty"`
}

type ContractUpdateDTO struct {
	ContractRentIDR     *int       `json:"contract_rent_idr,omitempty" validate:"omitempty,min=0"`
	ContractWaterIDR    *int       `json:"contract_water_idr,omitempty" validate:"omitempty,min=0"`
	ContractElectricIDR *int       `json:"contract_electric_idr,omitempty" validate:"omitempty,min=0"`
	ContractEndDate     *time.Time `json:"contract_end_date,omitempty"`
	ContractNote        *string    `json:"contract_note,omitempty"`
}

func (d *ContractUpdateDTO) ApplyToModel(m *model.ContractModel) {
	if d.ContractRentIDR != nil {
		m.ContractRentIDR = *d.ContractRentIDR
	}
	if d.ContractWaterIDR != nil {
		m.ContractWaterIDR = *d.ContractWaterIDR
	}
	if d.ContractElectricIDR != nil {
		m.ContractElectricIDR = *d.ContractElectricIDR
	}
	if d.ContractEndDate != nil {
		m.ContractEndDate = d.ContractEndDate
	}
	if d.ContractNote != nil {
		m.ContractNote = d.ContractNote
	}
}

type ContractResponse struct {
	ContractID       uuid.UUID `json:"contract_id"`
	ContractRoomID   uuid.UUID `json:"contract_room_id"`
	ContractTenantID uuid.UUID `json:"contract_tenant_id"`

	ContractRentIDR     int `json:"contract_rent_idr"`
	ContractWaterIDR    int `json:"contract_water_idr"`
	ContractElectricIDR int `json:"contract_electric_idr"`

	ContractStartDate time.Time  `json:"contract_start_date"`
	ContractEndDate   *time.Time `json:"contract_end_date,omitempty"`

	ContractStatus string  `json:"contract_status"`
	ContractNote   *string `json:"contract_note,omitempty"`

	ContractCreatedAt time.Time `json:"contract_created_at"`
	ContractUpdatedAt time.Time `json:"contract_updated_at"`
}

func ToContractResponse(m model.ContractModel) ContractResponse {
	return ContractResponse{
		ContractID:          m.ContractID,
		ContractRoomID:      m.ContractRoomID,
		ContractTenantID:    m.ContractTenantID,
		ContractRentIDR:     m.ContractRentIDR,
		ContractWaterIDR:    m.ContractWaterIDR,
		ContractElectricIDR: m.ContractElectricIDR,
		ContractStartDate:   m.ContractStartDate,
		ContractEndDate:     m.ContractEndDate,
		ContractStatus:      string(m.ContractStatus),
		ContractNote:        m.ContractNote,
		ContractCreatedAt:   m.ContractCreatedAt,
		ContractUpdatedAt:   m.ContractUpdatedAt,
	}
}

func ToContractResponseList(list []model.ContractModel) []ContractResponse {
	out := make([]ContractResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToContractResponse(m))
	}
	return out
}
