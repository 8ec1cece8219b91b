package dto

import (
	"time"

	"github.com/google/uuid"

	"kostku_backend/internals/features/rentals/tenants/model"
)

type TenantCreateDTO struct {
	TenantName           string  `json:"tenant_name" validate:"required,max=100"`
	TenantPhone          string  `json:"tenant_phone" validate:"required,max=30"`
	TenantEmail          *string `json:"tenant_email,omitempty" validate:"omitempty,email"`
	TenantIdentityNumber *string `json:"tenant_identity_number,omitempty" validate:"omitempty,max=32"`
	TenantNote           *string `json:"tenant_note,omitempty"`
}

type TenantUpdateDTO struct {
	TenantName           *string `json:"tenant_name,omitempty" validate:"omitempty,max=100"`
	TenantPhone          *string `json:"tenant_phone,omitempty" validate:"omitempty,max=30"`
	TenantEmail          *string `json:"tenant_email,omitempty" validate:"omitempty,email"`
	TenantIdentityNumber *string `json:"tenant_identity_number,omitempty" validate:"omitempty,max=32"`
	TenantNote           *string `json:"tenant_note,omitempty"`
}

func (d *TenantUpdateDTO) ApplyToModel(m *model.TenantModel) {
	if d.TenantName != nil {
		m.TenantName = *d.TenantName
	}
	if d.TenantPhone != nil {
		m.TenantPhone = *d.TenantPhone
	}
	if d.TenantEmail != nil {
		m.TenantEmail = d.TenantEmail
	}
	if d.TenantIdentityNumber != nil {
		m.TenantIdentityNumber = d.TenantIdentityNumber
	}
	if d.TenantNote != nil {
		m.TenantNote = d.TenantNote
	}
}

// Response list — tanpa nomor identitas
type TenantResponse struct {
	TenantID        uuid.UUID `json:"tenant_id"`
	TenantName      string    `json:"tenant_name"`
	TenantPhone     string    `json:"tenant_phone"`
	TenantEmail     *string   `json:"tenant_email,omitempty"`
	TenantNote      *string   `json:"tenant_note,omitempty"`
	TenantCreatedAt time.Time `json:"tenant_created_at"`
	TenantUpdatedAt time.Time `json:"tenant_updated_at"`
}

// Detail — termasuk nomor identitas
type TenantDetailResponse struct {
	TenantResponse
	TenantIdentityNumber *string `json:"tenant_identity_number,omitempty"`
}

func ToTenantResponse(m model.TenantModel) TenantResponse {
	return TenantResponse{
		TenantID:        m.TenantID,
		TenantName:      m.TenantName,
		TenantPhone:     m.TenantPhone,
		TenantEmail:     m.TenantEmail,
		TenantNote:      m.TenantNote,
		TenantCreatedAt: m.TenantCreatedAt,
		TenantUpdatedAt: m.TenantUpdatedAt,
	}
}

func ToTenantDetailResponse(m model.TenantModel) TenantDetailResponse {
	return TenantDetailResponse{
		TenantResponse:       ToTenantResponse(m),
		TenantIdentityNumber: m.TenantIdentityNumber,
	}
}

func ToTenantResponseList(list []model.TenantModel) []TenantResponse {
	out := make([]TenantResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToTenantResponse(m))
	}
	return out
}
