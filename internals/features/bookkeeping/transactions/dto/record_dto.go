// internals/features/bookkeeping/transactions/dto/record_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	txModel "benihku_backend/internals/features/bookkeeping/transactions/model"
	txService "benihku_backend/internals/features/bookkeeping/transactions/service"
)

type CreateRecordRequest struct {
	OwnerID    int    `json:"owner_id" validate:"required,gt=0"`
	ItemTypeID int    `json:"item_type_id" validate:"required,gt=0"`
	Quantity   int    `json:"quantity" validate:"required,gt=0"`
	Note       string `json:"note" validate:"omitempty,max=512"`
}

func (r *CreateRecordRequest) ToInput() txService.CreateRecordInput {
	return txService.CreateRecordInput{
		OwnerID:    r.OwnerID,
		ItemTypeID: r.ItemTypeID,
		Quantity:   r.Quantity,
		Note:       r.Note,
	}
}

type UpdateRecordRequest struct {
	OwnerID    *int    `json:"owner_id" validate:"omitempty,gt=0"`
	ItemTypeID *int    `json:"item_type_id" validate:"omitempty,gt=0"`
	Quantity   *int    `json:"quantity" validate:"omitempty,gt=0"`
	Note       *string `json:"note" validate:"omitempty,max=512"`
}

func (r *UpdateRecordRequest) ToInput() txService.UpdateRecordInput {
	return txService.UpdateRecordInput{
		OwnerID:    r.OwnerID,
		ItemTypeID: r.ItemTypeID,
		Quantity:   r.Quantity,
		Note:       r.Note,
	}
}

type RecordResponse struct {
	TransactionID              int        `json:"transaction_id"`
	TransactionOwnerID         int        `json:"transaction_owner_id"`
	TransactionItemTypeID      int        `json:"transaction_item_type_id"`
	TransactionQuantity        int        `json:"transaction_quantity"`
	TransactionUnitPrice       int        `json:"transaction_unit_price"`
	TransactionTotalPrice      int        `json:"transaction_total_price"`
	TransactionCreatedByUserID uuid.UUID  `json:"transaction_created_by_user_id"`
	TransactionNote            string     `json:"transaction_note,omitempty"`
	TransactionCreatedAt       time.Time  `json:"transaction_created_at"`
	TransactionUpdatedAt       *time.Time `json:"transaction_updated_at,omitempty"`
}

func NewRecordResponse(m *txModel.TransactionModel) RecordResponse {
	return RecordResponse{
		TransactionID:              m.TransactionID,
		TransactionOwnerID:         m.TransactionOwnerID,
		TransactionItemTypeID:      m.TransactionItemTypeID,
		TransactionQuantity:        m.TransactionQuantity,
		TransactionUnitPrice:       m.TransactionUnitPrice,
		TransactionTotalPrice:      m.TransactionTotalPrice,
		TransactionCreatedByUserID: m.TransactionCreatedByUserID,
		TransactionNote:            m.TransactionNote,
		TransactionCreatedAt:       m.TransactionCreatedAt,
		TransactionUpdatedAt:       m.TransactionUpdatedAt,
	}
}
