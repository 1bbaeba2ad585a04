// internals/features/bookkeeping/pricing/dto/price_setting_dto.go
package dto

import (
	"time"

	"github.com/lib/pq"

	pModel "benihku_backend/internals/features/bookkeeping/pricing/model"
)

/* ===================== REQUESTS ===================== */

type CreatePriceSettingRequest struct {
	Scope    string   `json:"scope" validate:"required,oneof=external internal"`
	ItemKind string   `json:"item_kind" validate:"required,oneof=seed leaf"`
	Roles    []string `json:"roles" validate:"required,min=1,dive,oneof=Abu Ijo Ultra Raden"`
	Price    int      `json:"price" validate:"min=0"`
}

func (r *CreatePriceSettingRequest) ToModel() *pModel.PriceSettingModel {
	return &pModel.PriceSettingModel{
		PriceSettingScope:    r.Scope,
		PriceSettingItemKind: r.ItemKind,
		PriceSettingRoles:    pq.StringArray(r.Roles),
		PriceSettingPrice:    r.Price,
		PriceSettingIsActive: true,
	}
}

type UpdatePriceSettingRequest struct {
	Roles    []string `json:"roles" validate:"omitempty,min=1,dive,oneof=Abu Ijo Ultra Raden"`
	Price    *int     `json:"price" validate:"omitempty,min=0"`
	IsActive *bool    `json:"is_active" validate:"omitempty"`
}

func (r *UpdatePriceSettingRequest) ApplyToModel(m *pModel.PriceSettingModel) {
	if len(r.Roles) > 0 {
		m.PriceSettingRoles = pq.StringArray(r.Roles)
	}
	if r.Price != nil {
		m.PriceSettingPrice = *r.Price
	}
	if r.IsActive != nil {
		m.PriceSettingIsActive = *r.IsActive
	}
}

/* ===================== RESPONSES ===================== */

type PriceSettingResponse struct {
	ID        int        `json:"id"`
	Scope     string     `json:"scope"`
	ItemKind  string     `json:"item_kind"`
	Roles     []string   `json:"roles"`
	Price     int        `json:"price"`
	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

func NewPriceSettingResponse(m *pModel.PriceSettingModel) PriceSettingResponse {
	return PriceSettingResponse{
		ID:        m.PriceSettingID,
		Scope:     m.PriceSettingScope,
		ItemKind:  m.PriceSettingItemKind,
		Roles:     []string(m.PriceSettingRoles),
		Price:     m.PriceSettingPrice,
		IsActive:  m.PriceSettingIsActive,
		CreatedAt: m.PriceSettingCreatedAt,
		UpdatedAt: m.PriceSettingUpdatedAt,
	}
}
