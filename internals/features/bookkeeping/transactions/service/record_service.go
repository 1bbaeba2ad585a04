// internals/features/bookkeeping/transactions/service/record_service.go
package service

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	gModel "benihku_backend/internals/features/bookkeeping/groups/model"
	itModel "benihku_backend/internals/features/bookkeeping/item_types/model"
	mModel "benihku_backend/internals/features/bookkeeping/members/model"
	"benihku_backend/internals/features/bookkeeping/pricing/policy"
	pService "benihku_backend/internals/features/bookkeeping/pricing/service"
	txModel "benihku_backend/internals/features/bookkeeping/transactions/model"
	wlService "benihku_backend/internals/features/bookkeeping/weekly_limits/service"
)

/* ===================== ERRORS ===================== */

var (
	ErrForbidden        = errors.New("role tidak diizinkan melakukan aksi ini")
	ErrNotFound         = errors.New("record tidak ditemukan")
	ErrOwnerNotFound    = errors.New("pemilik record tidak ditemukan")
	ErrItemTypeNotFound = errors.New("tipe item tidak ditemukan")
	ErrInvalidQuantity  = errors.New("kuantitas harus lebih dari nol")
	ErrUnknownKind      = errors.New("jenis record tidak dikenal")
)

/* ===================== SERVICE ===================== */

type RecordService struct {
	DB      *gorm.DB
	Pricing *pService.Resolver
	Limits  *wlService.LimitService
}

func NewRecordService(db *gorm.DB) *RecordService {
	return &RecordService{
		DB:      db,
		Pricing: pService.NewResolver(db),
		Limits:  wlService.NewLimitService(db),
	}
}

type CreateRecordInput struct {
	OwnerID    int
	ItemTypeID int
	Quantity   int
	Note       string
}

type UpdateRecordInput struct {
	OwnerID    *int
	ItemTypeID *int
	Quantity   *int
	Note       *string
}

type RecordTotals struct {
	Count         int64 `json:"count"`
	TotalQuantity int64 `json:"total_quantity"`
	TotalRevenue  int64 `json:"total_revenue"`
}

// List: halaman record, terbaru dulu. Ijo hanya melihat record buatannya
// sendiri; Abu (read-only) dan Ultra/Raden melihat semua.
func (s *RecordService) List(ctx context.Context, kind txModel.RecordKind, actor policy.Actor, ownerID *int, limit, offset int) ([]txModel.TransactionModel, int64, error) {
	if !kind.Valid() {
		return nil, 0, ErrUnknownKind
	}

	q := s.DB.WithContext(ctx).Table(kind.TableName())
	if actor.Role == policy.RoleIjo {
		q = q.Where("transaction_created_by_user_id = ?", actor.UserID)
	}
	if ownerID != nil {
		q = q.Where("transaction_owner_id = ?", *ownerID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []txModel.TransactionModel
	if err := q.Order("transaction_created_at DESC, transaction_id DESC").
		Limit(limit).Offset(offset).
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (s *RecordService) Get(ctx context.Context, kind txModel.RecordKind, actor policy.Actor, id int) (*txModel.TransactionModel, error) {
	if !kind.Valid() {
		return nil, ErrUnknownKind
	}

	var m txModel.TransactionModel
	err := s.DB.WithContext(ctx).Table(kind.TableName()).
		Where("transaction_id = ?", id).
		Take(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	// Ijo tidak boleh mengintip record milik user lain
	if actor.Role == policy.RoleIjo && m.TransactionCreatedByUserID != actor.UserID {
		return nil, ErrNotFound
	}
	return &m, nil
}

// Create: harga dihitung dari role pelaku SAAT INI, lalu insert + potong kuota
// (khusus penjualan benih external) dalam SATU transaksi DB.
func (s *RecordService) Create(ctx context.Context, kind txModel.RecordKind, actor policy.Actor, in CreateRecordInput) (*txModel.TransactionModel, error) {
	if !kind.Valid() {
		return nil, ErrUnknownKind
	}
	if !policy.CanCreate(actor.Role) {
		return nil, ErrForbidden
	}
	if in.Quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	if err := s.checkOwner(ctx, kind, in.OwnerID); err != nil {
		return nil, err
	}
	if err := s.checkItemType(ctx, kind, in.ItemTypeID); err != nil {
		return nil, err
	}

	quote, err := s.Pricing.Resolve(ctx, kind.ItemKind(), kind.Scope(), actor.Role, in.Quantity)
	if err != nil {
		return nil, err
	}

	m := txModel.TransactionModel{
		TransactionOwnerID:         in.OwnerID,
		TransactionItemTypeID:      in.ItemTypeID,
		TransactionQuantity:        in.Quantity,
		TransactionUnitPrice:       quote.UnitPrice,
		TransactionTotalPrice:      quote.TotalPrice,
		TransactionCreatedByUserID: actor.UserID,
		TransactionNote:            in.Note,
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if kind.UsesQuota() {
			// reservasi dan insert satu nasib: kuota gagal = record batal
			if _, err := s.Limits.Reserve(tx, in.OwnerID, in.Quantity, time.Now()); err != nil {
				return err
			}
		}
		return tx.Table(kind.TableName()).Create(&m).Error
	})
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Update: Abu tidak pernah; Ijo hanya record miliknya; Ultra/Raden bebas.
// Harga dihitung ulang dari role PENGUBAH, bukan role pembuat asli.
// Kuota yang sudah terpotong tidak disesuaikan.
func (s *RecordService) Update(ctx context.Context, kind txModel.RecordKind, actor policy.Actor, id int, in UpdateRecordInput) (*txModel.TransactionModel, error) {
	if !kind.Valid() {
		return nil, ErrUnknownKind
	}

	var m txModel.TransactionModel
	err := s.DB.WithContext(ctx).Table(kind.TableName()).
		Where("transaction_id = ?", id).
		Take(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if !policy.CanEdit(actor.Role, actor.UserID, m.TransactionCreatedByUserID) {
		return nil, ErrForbidden
	}

	if in.OwnerID != nil {
		if err := s.checkOwner(ctx, kind, *in.OwnerID); err != nil {
			return nil, err
		}
		m.TransactionOwnerID = *in.OwnerID
	}
	if in.ItemTypeID != nil {
		if err := s.checkItemType(ctx, kind, *in.ItemTypeID); err != nil {
			return nil, err
		}
		m.TransactionItemTypeID = *in.ItemTypeID
	}
	if in.Quantity != nil {
		if *in.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}
		m.TransactionQuantity = *in.Quantity
	}
	if in.Note != nil {
		m.TransactionNote = *in.Note
	}

	quote, err := s.Pricing.Resolve(ctx, kind.ItemKind(), kind.Scope(), actor.Role, m.TransactionQuantity)
	if err != nil {
		return nil, err
	}
	m.TransactionUnitPrice = quote.UnitPrice
	m.TransactionTotalPrice = quote.TotalPrice

	now := time.Now()
	m.TransactionUpdatedAt = &now

	if err := s.DB.WithContext(ctx).Table(kind.TableName()).
		Where("transaction_id = ?", id).
		Updates(map[string]interface{}{
			"transaction_owner_id":     m.TransactionOwnerID,
			"transaction_item_type_id": m.TransactionItemTypeID,
			"transaction_quantity":     m.TransactionQuantity,
			"transaction_unit_price":   m.TransactionUnitPrice,
			"transaction_total_price":  m.TransactionTotalPrice,
			"transaction_note":         m.TransactionNote,
			"transaction_updated_at":   now,
		}).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// Delete: khusus Ultra/Raden. Ijo pemilik pun tidak boleh menghapus.
// Kuota yang sudah terpotong tidak dikembalikan.
func (s *RecordService) Delete(ctx context.Context, kind txModel.RecordKind, actor policy.Actor, id int) error {
	if !kind.Valid() {
		return ErrUnknownKind
	}
	if !policy.CanDelete(actor.Role) {
		return ErrForbidden
	}

	res := s.DB.WithContext(ctx).Table(kind.TableName()).
		Where("transaction_id = ?", id).
		Delete(&txModel.TransactionModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Totals: agregat satu jenis record (dashboard). Mengikuti visibilitas List:
// Ijo hanya menghitung record miliknya.
func (s *RecordService) Totals(ctx context.Context, kind txModel.RecordKind, actor policy.Actor, ownerID *int) (*RecordTotals, error) {
	if !kind.Valid() {
		return nil, ErrUnknownKind
	}

	q := s.DB.WithContext(ctx).Table(kind.TableName())
	if actor.Role == policy.RoleIjo {
		q = q.Where("transaction_created_by_user_id = ?", actor.UserID)
	}
	if ownerID != nil {
		q = q.Where("transaction_owner_id = ?", *ownerID)
	}

	var out RecordTotals
	err := q.Select("COUNT(*) AS count, COALESCE(SUM(transaction_quantity), 0) AS total_quantity, COALESCE(SUM(transaction_total_price), 0) AS total_revenue").
		Take(&out).Error
	if err != nil {
		return nil, err
	}
	return &out, nil
}

/* ===================== REFERENCE CHECKS ===================== */

func (s *RecordService) checkOwner(ctx context.Context, kind txModel.RecordKind, ownerID int) error {
	db := s.DB.WithContext(ctx)
	var err error
	if kind.Internal() {
		err = db.Select("member_id").First(&mModel.MemberModel{}, "member_id = ?", ownerID).Error
	} else {
		err = db.Select("group_id").First(&gModel.GroupModel{}, "group_id = ?", ownerID).Error
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrOwnerNotFound
	}
	return err
}

func (s *RecordService) checkItemType(ctx context.Context, kind txModel.RecordKind, itemTypeID int) error {
	db := s.DB.WithContext(ctx)
	var err error
	if kind.ItemKind() == policy.ItemLeaf {
		err = db.Select("leaf_type_id").First(&itModel.LeafTypeModel{}, "leaf_type_id = ?", itemTypeID).Error
	} else {
		err = db.Select("seed_type_id").First(&itModel.SeedTypeModel{}, "seed_type_id = ?", itemTypeID).Error
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrItemTypeNotFound
	}
	return err
}
