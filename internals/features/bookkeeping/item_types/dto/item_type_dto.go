// internals/features/bookkeeping/item_types/dto/item_type_dto.go
package dto

import (
	"time"

	itModel "benihku_backend/internals/features/bookkeeping/item_types/model"
)

/* ===================== SEED TYPE ===================== */

type CreateSeedTypeRequest struct {
	Name         string  `json:"name" validate:"required,min=1,max=100"`
	Description  *string `json:"description" validate:"omitempty,max=500"`
	DefaultPrice *int    `json:"default_price" validate:"omitempty,min=0"`
}

func (r *CreateSeedTypeRequest) ToModel() *itModel.SeedTypeModel {
	return &itModel.SeedTypeModel{
		SeedTypeName:         r.Name,
		SeedTypeDescription:  r.Description,
		SeedTypeDefaultPrice: r.DefaultPrice,
	}
}

type UpdateSeedTypeRequest struct {
	Name         *string `json:"name" validate:"omitempty,min=1,max=100"`
	Description  *string `json:"description" validate:"omitempty,max=500"`
	DefaultPrice *int    `json:"default_price" validate:"omitempty,min=0"`
}

func (r *UpdateSeedTypeRequest) ApplyToModel(m *itModel.SeedTypeModel) {
	if r.Name != nil {
		m.SeedTypeName = *r.Name
	}
	if r.Description != nil {
		m.SeedTypeDescription = r.Description
	}
	if r.DefaultPrice != nil {
		m.SeedTypeDefaultPrice = r.DefaultPrice
	}
}

type SeedTypeResponse struct {
	ID           int        `json:"id"`
	Name         string     `json:"name"`
	Description  *string    `json:"description,omitempty"`
	DefaultPrice *int       `json:"default_price,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}

func NewSeedTypeResponse(m *itModel.SeedTypeModel) SeedTypeResponse {
	return SeedTypeResponse{
		ID:           m.SeedTypeID,
		Name:         m.SeedTypeName,
		Description:  m.SeedTypeDescription,
		DefaultPrice: m.SeedTypeDefaultPrice,
		CreatedAt:    m.SeedTypeCreatedAt,
		UpdatedAt:    m.SeedTypeUpdatedAt,
	}
}

/* ===================== LEAF TYPE ===================== */

type CreateLeafTypeRequest struct {
	Name         string  `json:"name" validate:"required,min=1,max=100"`
	Description  *string `json:"description" validate:"omitempty,max=500"`
	SeedTypeID   int     `json:"seed_type_id" validate:"required,min=1"`
	DefaultPrice *int    `json:"default_price" validate:"omitempty,min=0"`
}

func (r *CreateLeafTypeRequest) ToModel() *itModel.LeafTypeModel {
	return &itModel.LeafTypeModel{
		LeafTypeName:         r.Name,
		LeafTypeDescription:  r.Description,
		LeafTypeSeedTypeID:   r.SeedTypeID,
		LeafTypeDefaultPrice: r.DefaultPrice,
	}
}

type UpdateLeafTypeRequest struct {
	Name         *string `json:"name" validate:"omitempty,min=1,max=100"`
	Description  *string `json:"description" validate:"omitempty,max=500"`
	SeedTypeID   *int    `json:"seed_type_id" validate:"omitempty,min=1"`
	DefaultPrice *int    `json:"default_price" validate:"omitempty,min=0"`
}

func (r *UpdateLeafTypeRequest) ApplyToModel(m *itModel.LeafTypeModel) {
	if r.Name != nil {
		m.LeafTypeName = *r.Name
	}
	if r.Description != nil {
		m.LeafTypeDescription = r.Description
	}
	if r.SeedTypeID != nil {
		m.LeafTypeSeedTypeID = *r.SeedTypeID
	}
	if r.DefaultPrice != nil {
		m.LeafTypeDefaultPrice = r.DefaultPrice
	}
}

type LeafTypeResponse struct {
	ID           int        `json:"id"`
	Name         string     `json:"name"`
	Description  *string    `json:"description,omitempty"`
	SeedTypeID   int        `json:"seed_type_id"`
	DefaultPrice *int       `json:"default_price,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}

func NewLeafTypeResponse(m *itModel.LeafTypeModel) LeafTypeResponse {
	return LeafTypeResponse{
		ID:           m.LeafTypeID,
		Name:         m.LeafTypeName,
		Description:  m.LeafTypeDescription,
		SeedTypeID:   m.LeafTypeSeedTypeID,
		DefaultPrice: m.LeafTypeDefaultPrice,
		CreatedAt:    m.LeafTypeCreatedAt,
		UpdatedAt:    m.LeafTypeUpdatedAt,
	}
}
