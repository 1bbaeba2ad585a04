package service

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	gModel "benihku_backend/internals/features/bookkeeping/groups/model"
	itModel "benihku_backend/internals/features/bookkeeping/item_types/model"
	mModel "benihku_backend/internals/features/bookkeeping/members/model"
	"benihku_backend/internals/features/bookkeeping/pricing/policy"
	txModel "benihku_backend/internals/features/bookkeeping/transactions/model"
	wlModel "benihku_backend/internals/features/bookkeeping/weekly_limits/model"
	wlService "benihku_backend/internals/features/bookkeeping/weekly_limits/service"
)

type fixture struct {
	db       *gorm.DB
	svc      *RecordService
	group    *gModel.GroupModel
	member   *mModel.MemberModel
	seedType *itModel.SeedTypeModel
	leafType *itModel.LeafTypeModel
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// satu koneksi: in-memory DB privat hidup selama koneksi itu
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&gModel.GroupModel{},
		&mModel.MemberModel{},
		&itModel.SeedTypeModel{},
		&itModel.LeafTypeModel{},
		&wlModel.WeeklyLimitModel{},
		&wlModel.RolloverRunModel{},
	))
	// price_settings punya kolom array postgres; di sqlite cukup TEXT polos
	// (resolver hanya membaca, test ini tidak menanam override)
	require.NoError(t, db.Exec(`CREATE TABLE price_settings (
		price_setting_id INTEGER PRIMARY KEY AUTOINCREMENT,
		price_setting_scope TEXT NOT NULL,
		price_setting_item_kind TEXT NOT NULL,
		price_setting_roles TEXT NOT NULL DEFAULT '{}',
		price_setting_price INTEGER NOT NULL,
		price_setting_is_active BOOLEAN NOT NULL DEFAULT 1,
		price_setting_created_at DATETIME,
		price_setting_updated_at DATETIME
	)`).Error)
	for _, kind := range []txModel.RecordKind{
		txModel.KindSale, txModel.KindLeafPurchase,
		txModel.KindInternalSale, txModel.KindInternalLeafPurchase,
	} {
		require.NoError(t, db.Table(kind.TableName()).AutoMigrate(&txModel.TransactionModel{}))
	}

	f := &fixture{db: db, svc: NewRecordService(db)}

	f.group = &gModel.GroupModel{GroupName: "Melati", GroupWeeklySeedLimit: 400}
	require.NoError(t, db.Create(f.group).Error)
	f.member = &mModel.MemberModel{MemberName: "Pak Budi"}
	require.NoError(t, db.Create(f.member).Error)
	f.seedType = &itModel.SeedTypeModel{SeedTypeName: "Benih Tomat"}
	require.NoError(t, db.Create(f.seedType).Error)
	f.leafType = &itModel.LeafTypeModel{LeafTypeName: "Daun Tomat", LeafTypeSeedTypeID: f.seedType.SeedTypeID}
	require.NoError(t, db.Create(f.leafType).Error)
	return f
}

func actor(role policy.Role) policy.Actor {
	return policy.Actor{UserID: uuid.New(), Role: role}
}

func (f *fixture) saleInput(qty int) CreateRecordInput {
	return CreateRecordInput{OwnerID: f.group.GroupID, ItemTypeID: f.seedType.SeedTypeID, Quantity: qty}
}

func (f *fixture) remaining(t *testing.T) int {
	t.Helper()
	var wl wlModel.WeeklyLimitModel
	require.NoError(t, f.db.First(&wl, "weekly_limit_group_id = ?", f.group.GroupID).Error)
	return wl.WeeklyLimitRemaining
}

/* ===================== CREATE ===================== */

func TestCreate_PricesByActorRole(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	cases := []struct {
		name     string
		kind     txModel.RecordKind
		role     policy.Role
		wantUnit int
	}{
		{"ijo external seed", txModel.KindSale, policy.RoleIjo, 200},
		{"ultra external seed", txModel.KindSale, policy.RoleUltra, 700},
		{"raden internal seed", txModel.KindInternalSale, policy.RoleRaden, 300},
		{"ijo external leaf", txModel.KindLeafPurchase, policy.RoleIjo, 200},
		{"ultra internal leaf", txModel.KindInternalLeafPurchase, policy.RoleUltra, 200},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := CreateRecordInput{OwnerID: f.group.GroupID, ItemTypeID: f.seedType.SeedTypeID, Quantity: 10}
			if tc.kind.Internal() {
				in.OwnerID = f.member.MemberID
			}
			if tc.kind.ItemKind() == policy.ItemLeaf {
				in.ItemTypeID = f.leafType.LeafTypeID
			}
			m, err := f.svc.Create(ctx, tc.kind, actor(tc.role), in)
			require.NoError(t, err)
			assert.Equal(t, tc.wantUnit, m.TransactionUnitPrice)
			assert.Equal(t, tc.wantUnit*10, m.TransactionTotalPrice)
		})
	}
}

func TestCreate_AbuForbidden(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Create(context.Background(), txModel.KindSale, actor(policy.RoleAbu), f.saleInput(1))
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestCreate_OwnerMissing(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.Create(ctx, txModel.KindSale, actor(policy.RoleIjo),
		CreateRecordInput{OwnerID: 9999, ItemTypeID: f.seedType.SeedTypeID, Quantity: 1})
	assert.ErrorIs(t, err, ErrOwnerNotFound)

	// internal: group valid bukan berarti member valid
	_, err = f.svc.Create(ctx, txModel.KindInternalSale, actor(policy.RoleIjo),
		CreateRecordInput{OwnerID: 9999, ItemTypeID: f.seedType.SeedTypeID, Quantity: 1})
	assert.ErrorIs(t, err, ErrOwnerNotFound)
}

func TestCreate_ItemTypeMissing(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Create(context.Background(), txModel.KindSale, actor(policy.RoleIjo),
		CreateRecordInput{OwnerID: f.group.GroupID, ItemTypeID: 9999, Quantity: 1})
	assert.ErrorIs(t, err, ErrItemTypeNotFound)
}

func TestCreate_InvalidQuantity(t *testing.T) {
	f := newFixture(t)

	for _, qty := range []int{0, -5} {
		_, err := f.svc.Create(context.Background(), txModel.KindSale, actor(policy.RoleIjo), f.saleInput(qty))
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	}
}

// Skenario kuota penuh: limit kelompok 400 per minggu.
func TestCreate_QuotaScenario(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// Ijo menjual 350 → harga Ijo 200, sisa kuota 50
	first, err := f.svc.Create(ctx, txModel.KindSale, actor(policy.RoleIjo), f.saleInput(350))
	require.NoError(t, err)
	assert.Equal(t, 200, first.TransactionUnitPrice)
	assert.Equal(t, 70000, first.TransactionTotalPrice)
	assert.Equal(t, 50, f.remaining(t))

	// Ijo lain minta 100 → ditolak utuh, sisa tetap 50, record tidak dibuat
	_, err = f.svc.Create(ctx, txModel.KindSale, actor(policy.RoleIjo), f.saleInput(100))
	var insuf *wlService.InsufficientQuotaError
	require.ErrorAs(t, err, &insuf)
	assert.Equal(t, 50, insuf.Remaining)
	assert.Equal(t, 100, insuf.Requested)
	assert.Equal(t, 50, f.remaining(t))

	var count int64
	require.NoError(t, f.db.Table(txModel.KindSale.TableName()).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	// Ultra menjual sisa 50 → harga Ultra 700, kuota habis pas
	third, err := f.svc.Create(ctx, txModel.KindSale, actor(policy.RoleUltra), f.saleInput(50))
	require.NoError(t, err)
	assert.Equal(t, 700, third.TransactionUnitPrice)
	assert.Equal(t, 35000, third.TransactionTotalPrice)
	assert.Equal(t, 0, f.remaining(t))
}

func TestCreate_OnlyExternalSaleConsumesQuota(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.Create(ctx, txModel.KindLeafPurchase, actor(policy.RoleIjo),
		CreateRecordInput{OwnerID: f.group.GroupID, ItemTypeID: f.leafType.LeafTypeID, Quantity: 500})
	require.NoError(t, err)

	_, err = f.svc.Create(ctx, txModel.KindInternalSale, actor(policy.RoleIjo),
		CreateRecordInput{OwnerID: f.member.MemberID, ItemTypeID: f.seedType.SeedTypeID, Quantity: 500})
	require.NoError(t, err)

	// tidak ada baris kuota yang tersentuh sama sekali
	var count int64
	require.NoError(t, f.db.Model(&wlModel.WeeklyLimitModel{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

/* ===================== UPDATE ===================== */

func TestUpdate_RepricesAtEditorRole(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ijo := actor(policy.RoleIjo)
	m, err := f.svc.Create(ctx, txModel.KindSale, ijo, f.saleInput(10))
	require.NoError(t, err)
	require.Equal(t, 200, m.TransactionUnitPrice)

	// Ultra menyentuh record → dihargai ulang pakai tarif Ultra
	note := "koreksi stok"
	updated, err := f.svc.Update(ctx, txModel.KindSale, actor(policy.RoleUltra), m.TransactionID,
		UpdateRecordInput{Note: &note})
	require.NoError(t, err)
	assert.Equal(t, 700, updated.TransactionUnitPrice)
	assert.Equal(t, 7000, updated.TransactionTotalPrice)
	assert.Equal(t, "koreksi stok", updated.TransactionNote)

	// pemilik asli (Ijo) edit balik → tarif Ijo lagi
	qty := 20
	back, err := f.svc.Update(ctx, txModel.KindSale, ijo, m.TransactionID,
		UpdateRecordInput{Quantity: &qty})
	require.NoError(t, err)
	assert.Equal(t, 200, back.TransactionUnitPrice)
	assert.Equal(t, 4000, back.TransactionTotalPrice)
}

func TestUpdate_Permissions(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	owner := actor(policy.RoleIjo)
	m, err := f.svc.Create(ctx, txModel.KindSale, owner, f.saleInput(10))
	require.NoError(t, err)

	qty := 5

	// Abu tidak pernah boleh
	_, err = f.svc.Update(ctx, txModel.KindSale, actor(policy.RoleAbu), m.TransactionID,
		UpdateRecordInput{Quantity: &qty})
	assert.ErrorIs(t, err, ErrForbidden)

	// Ijo lain bukan pemilik
	_, err = f.svc.Update(ctx, txModel.KindSale, actor(policy.RoleIjo), m.TransactionID,
		UpdateRecordInput{Quantity: &qty})
	assert.ErrorIs(t, err, ErrForbidden)

	// pemilik boleh
	_, err = f.svc.Update(ctx, txModel.KindSale, owner, m.TransactionID,
		UpdateRecordInput{Quantity: &qty})
	assert.NoError(t, err)

	// record hilang
	_, err = f.svc.Update(ctx, txModel.KindSale, owner, 9999,
		UpdateRecordInput{Quantity: &qty})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdate_DoesNotAdjustQuota(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ultra := actor(policy.RoleUltra)
	m, err := f.svc.Create(ctx, txModel.KindSale, ultra, f.saleInput(100))
	require.NoError(t, err)
	require.Equal(t, 300, f.remaining(t))

	// kuantitas turun, kuota yang sudah terpotong dibiarkan
	qty := 10
	_, err = f.svc.Update(ctx, txModel.KindSale, ultra, m.TransactionID, UpdateRecordInput{Quantity: &qty})
	require.NoError(t, err)
	assert.Equal(t, 300, f.remaining(t))
}

/* ===================== DELETE ===================== */

func TestDelete_Permissions(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	owner := actor(policy.RoleIjo)
	m, err := f.svc.Create(ctx, txModel.KindSale, owner, f.saleInput(10))
	require.NoError(t, err)

	// kepemilikan tidak memberi hak hapus
	err = f.svc.Delete(ctx, txModel.KindSale, owner, m.TransactionID)
	assert.ErrorIs(t, err, ErrForbidden)

	err = f.svc.Delete(ctx, txModel.KindSale, actor(policy.RoleUltra), m.TransactionID)
	assert.NoError(t, err)

	// sudah terhapus
	err = f.svc.Delete(ctx, txModel.KindSale, actor(policy.RoleRaden), m.TransactionID)
	assert.ErrorIs(t, err, ErrNotFound)
}

/* ===================== LIST & TOTALS ===================== */

func TestList_IjoSeesOnlyOwnRecords(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ijoA := actor(policy.RoleIjo)
	ijoB := actor(policy.RoleIjo)
	_, err := f.svc.Create(ctx, txModel.KindSale, ijoA, f.saleInput(10))
	require.NoError(t, err)
	_, err = f.svc.Create(ctx, txModel.KindSale, ijoB, f.saleInput(20))
	require.NoError(t, err)

	rows, total, err := f.svc.List(ctx, txModel.KindSale, ijoA, nil, 25, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, rows, 1)
	assert.Equal(t, ijoA.UserID, rows[0].TransactionCreatedByUserID)

	// Ultra melihat semua
	_, total, err = f.svc.List(ctx, txModel.KindSale, actor(policy.RoleUltra), nil, 25, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)

	// Ijo juga tidak bisa mengambil detail record orang lain
	other, _, err := f.svc.List(ctx, txModel.KindSale, ijoB, nil, 25, 0)
	require.NoError(t, err)
	require.Len(t, other, 1)
	_, err = f.svc.Get(ctx, txModel.KindSale, ijoA, other[0].TransactionID)
	assert.ErrorIs(t, err, ErrNotFound)
}

// Abu read-only tapi tidak difilter: hanya Ijo yang dibatasi ke record sendiri.
func TestList_AbuSeesAllRecords(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ijo := actor(policy.RoleIjo)
	ultra := actor(policy.RoleUltra)
	_, err := f.svc.Create(ctx, txModel.KindSale, ijo, f.saleInput(10))
	require.NoError(t, err)
	_, err = f.svc.Create(ctx, txModel.KindSale, ultra, f.saleInput(20))
	require.NoError(t, err)

	abu := actor(policy.RoleAbu)
	rows, total, err := f.svc.List(ctx, txModel.KindSale, abu, nil, 25, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, rows, 2)

	// detail record milik user lain pun terbuka untuk Abu
	m, err := f.svc.Get(ctx, txModel.KindSale, abu, rows[0].TransactionID)
	require.NoError(t, err)
	assert.Equal(t, rows[0].TransactionID, m.TransactionID)

	// agregat juga tanpa filter
	totals, err := f.svc.Totals(ctx, txModel.KindSale, abu, nil)
	require.NoError(t, err)
	assert.EqualValues(t, 2, totals.Count)
	assert.EqualValues(t, 30, totals.TotalQuantity)
}

func TestTotals(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ultra := actor(policy.RoleUltra)
	_, err := f.svc.Create(ctx, txModel.KindSale, ultra, f.saleInput(10)) // 10 x 700
	require.NoError(t, err)
	_, err = f.svc.Create(ctx, txModel.KindSale, ultra, f.saleInput(20)) // 20 x 700
	require.NoError(t, err)

	totals, err := f.svc.Totals(ctx, txModel.KindSale, ultra, nil)
	require.NoError(t, err)
	assert.EqualValues(t, 2, totals.Count)
	assert.EqualValues(t, 30, totals.TotalQuantity)
	assert.EqualValues(t, 21000, totals.TotalRevenue)

	// filter owner yang tidak punya record
	missing := 9999
	empty, err := f.svc.Totals(ctx, txModel.KindSale, ultra, &missing)
	require.NoError(t, err)
	assert.EqualValues(t, 0, empty.Count)
	assert.EqualValues(t, 0, empty.TotalQuantity)
}
