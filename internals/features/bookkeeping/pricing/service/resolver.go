// internals/features/bookkeeping/pricing/service/resolver.go
package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	pModel "benihku_backend/internals/features/bookkeeping/pricing/model"
	"benihku_backend/internals/features/bookkeeping/pricing/policy"
)

// ErrNegativeQuantity: kuantitas < 0 ditolak sebelum menyentuh storage.
var ErrNegativeQuantity = errors.New("kuantitas tidak boleh negatif")

// Quote: harga yang DIPERSIST di record. Record jadi self-describing,
// tidak terpengaruh perubahan role di kemudian hari.
type Quote struct {
	UnitPrice  int `json:"unit_price"`
	TotalPrice int `json:"total_price"`
}

type Resolver struct {
	DB *gorm.DB
}

func NewResolver(db *gorm.DB) *Resolver {
	return &Resolver{DB: db}
}

// Resolve menentukan harga satuan dari role pelaku SAAT INI (bukan role pemilik
// record), lalu total = unit * qty. Bilangan bulat, mata uang tanpa pecahan.
func (r *Resolver) Resolve(ctx context.Context, kind policy.ItemKind, scope policy.PriceScope, role policy.Role, quantity int) (Quote, error) {
	if quantity < 0 {
		return Quote{}, ErrNegativeQuantity
	}

	unit := policy.UnitPrice(kind, scope, role)

	// Override dari tabel price_settings (dikelola Raden) menang atas tabel bawaan.
	if r.DB != nil {
		var settings []pModel.PriceSettingModel
		err := r.DB.WithContext(ctx).
			Where("price_setting_scope = ? AND price_setting_item_kind = ? AND price_setting_is_active = ?",
				string(scope), string(kind), true).
			Order("price_setting_updated_at DESC NULLS LAST, price_setting_id DESC").
			Find(&settings).Error
		if err != nil {
			return Quote{}, err
		}
		for i := range settings {
			if settings[i].AppliesTo(string(role)) {
				unit = settings[i].PriceSettingPrice
				break
			}
		}
	}

	return Quote{
		UnitPrice:  unit,
		TotalPrice: unit * quantity,
	}, nil
}
