// internals/features/bookkeeping/weekly_limits/service/limit_service.go
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	gModel "benihku_backend/internals/features/bookkeeping/groups/model"
	wlModel "benihku_backend/internals/features/bookkeeping/weekly_limits/model"
)

/* ===================== ERRORS ===================== */

var (
	// ErrGroupNotFound: group referensi tidak ada
	ErrGroupNotFound = errors.New("kelompok tidak ditemukan")
	// ErrInvalidQuantity: kuantitas reservasi harus > 0
	ErrInvalidQuantity = errors.New("kuantitas reservasi harus lebih dari nol")
	// ErrLimitConflict: bentrok unik berulang saat pembuatan baris mingguan.
	// Sudah di-retry sekali; kalau masih gagal berarti ada masalah di store.
	ErrLimitConflict = errors.New("bentrok pembuatan weekly limit setelah retry")
)

// InsufficientQuotaError: kuota minggu berjalan tidak cukup.
// Membawa sisa kuota supaya caller bisa menampilkan "X dari Y".
type InsufficientQuotaError struct {
	GroupID   int
	Requested int
	Remaining int
}

func (e *InsufficientQuotaError) Error() string {
	return fmt.Sprintf("kuota mingguan tidak cukup: diminta %d, sisa %d", e.Requested, e.Remaining)
}

/* ===================== WEEK WINDOW ===================== */

// WeekStartOf: awal minggu (Senin, 00:00 UTC) yang memuat t.
func WeekStartOf(t time.Time) time.Time {
	t = t.UTC()
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	// time.Weekday: Minggu = 0
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

// WeekEndOf: hari terakhir minggu (Minggu) untuk weekStart tertentu.
func WeekEndOf(weekStart time.Time) time.Time {
	return weekStart.AddDate(0, 0, 6)
}

/* ===================== SERVICE ===================== */

type LimitService struct {
	DB *gorm.DB
}

func NewLimitService(db *gorm.DB) *LimitService {
	return &LimitService{DB: db}
}

// GetOrCreateCurrentLimit: ambil (atau buat lazily) baris limit minggu yang
// memuat asOf. Idempotent: panggilan kedua mengembalikan baris yang sama.
func (s *LimitService) GetOrCreateCurrentLimit(ctx context.Context, groupID int, asOf time.Time) (*wlModel.WeeklyLimitModel, error) {
	return s.getOrCreate(s.DB.WithContext(ctx), groupID, asOf)
}

func (s *LimitService) getOrCreate(db *gorm.DB, groupID int, asOf time.Time) (*wlModel.WeeklyLimitModel, error) {
	weekStart := WeekStartOf(asOf)

	var existing wlModel.WeeklyLimitModel
	err := db.First(&existing,
		"weekly_limit_group_id = ? AND weekly_limit_week_start = ?", groupID, weekStart).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var group gModel.GroupModel
	if err := db.First(&group, "group_id = ?", groupID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGroupNotFound
		}
		return nil, err
	}

	// carry dari baris minggu persis sebelumnya (kalau ada), floor 0
	carry := 0
	var prev wlModel.WeeklyLimitModel
	prevStart := weekStart.AddDate(0, 0, -7)
	if err := db.First(&prev,
		"weekly_limit_group_id = ? AND weekly_limit_week_start = ?", groupID, prevStart).Error; err == nil {
		if prev.WeeklyLimitRemaining > 0 {
			carry = prev.WeeklyLimitRemaining
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	total := group.GroupWeeklySeedLimit + carry
	m := wlModel.WeeklyLimitModel{
		WeeklyLimitGroupID:     groupID,
		WeeklyLimitWeekStart:   weekStart,
		WeeklyLimitWeekEnd:     WeekEndOf(weekStart),
		WeeklyLimitTotal:       total,
		WeeklyLimitUsed:        0,
		WeeklyLimitRemaining:   total,
		WeeklyLimitCarriedOver: carry,
	}

	// Insert lewat db.Transaction: kalau db sudah transaksi (jalur Reserve),
	// GORM membungkusnya dengan SAVEPOINT. Tanpa itu, 23505 membuat sesi
	// postgres masuk state aborted (25P02) dan baca-ulang di bawah ikut gagal.
	createErr := db.Transaction(func(ins *gorm.DB) error {
		return ins.Create(&m).Error
	})
	if createErr != nil {
		// dua first-sale bersamaan di minggu yang sama: constraint unik yang
		// menang menentukan barisnya, yang kalah baca ulang
		if isUniqueViolation(createErr) {
			var winner wlModel.WeeklyLimitModel
			if err2 := db.First(&winner,
				"weekly_limit_group_id = ? AND weekly_limit_week_start = ?", groupID, weekStart).Error; err2 == nil {
				return &winner, nil
			}
			return nil, ErrLimitConflict
		}
		return nil, createErr
	}
	return &m, nil
}

// Reserve: cek-dan-potong kuota secara atomik DI DALAM transaksi pemanggil
// (tx yang sama dengan insert penjualan). Ditolak utuh kalau sisa kurang —
// tidak pernah memotong sebagian.
func (s *LimitService) Reserve(tx *gorm.DB, groupID, quantity int, asOf time.Time) (*wlModel.WeeklyLimitModel, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	wl, err := s.getOrCreate(tx, groupID, asOf)
	if err != nil {
		return nil, err
	}

	// conditional update: increment hanya kalau sisa masih cukup.
	// Ini satu-satunya proteksi race yang dibutuhkan baris limit.
	res := tx.Model(&wlModel.WeeklyLimitModel{}).
		Where("weekly_limit_id = ? AND weekly_limit_remaining >= ?", wl.WeeklyLimitID, quantity).
		Updates(map[string]interface{}{
			"weekly_limit_used":      gorm.Expr("weekly_limit_used + ?", quantity),
			"weekly_limit_remaining": gorm.Expr("weekly_limit_remaining - ?", quantity),
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		var cur wlModel.WeeklyLimitModel
		if err := tx.First(&cur, "weekly_limit_id = ?", wl.WeeklyLimitID).Error; err != nil {
			return nil, err
		}
		return nil, &InsufficientQuotaError{
			GroupID:   groupID,
			Requested: quantity,
			Remaining: cur.WeeklyLimitRemaining,
		}
	}

	var updated wlModel.WeeklyLimitModel
	if err := tx.First(&updated, "weekly_limit_id = ?", wl.WeeklyLimitID).Error; err != nil {
		return nil, err
	}
	return &updated, nil
}

// Rollover: untuk tiap group yang minggu terbarunya sudah lewat, buat baris
// minggu berikutnya (berantai sampai minggu berjalan) dengan carry sisa kuota.
// Idempotent: dipanggil dua kali di minggu yang sama tidak menggandakan baris.
func (s *LimitService) Rollover(ctx context.Context, now time.Time) ([]wlModel.WeeklyLimitModel, error) {
	db := s.DB.WithContext(ctx)
	currentStart := WeekStartOf(now)

	var groups []gModel.GroupModel
	if err := db.Find(&groups).Error; err != nil {
		return nil, err
	}

	created := make([]wlModel.WeeklyLimitModel, 0)
	for i := range groups {
		g := groups[i]

		var latest wlModel.WeeklyLimitModel
		err := db.Order("weekly_limit_week_start DESC").
			First(&latest, "weekly_limit_group_id = ?", g.GroupID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// belum pernah ada penjualan; baris dibuat lazily saat sale pertama
			continue
		}
		if err != nil {
			return nil, err
		}

		for latest.WeeklyLimitWeekStart.Before(currentStart) {
			nextStart := latest.WeeklyLimitWeekStart.AddDate(0, 0, 7)
			carry := latest.WeeklyLimitRemaining
			if carry < 0 {
				carry = 0
			}
			total := g.GroupWeeklySeedLimit + carry

			next := wlModel.WeeklyLimitModel{
				WeeklyLimitGroupID:     g.GroupID,
				WeeklyLimitWeekStart:   nextStart,
				WeeklyLimitWeekEnd:     WeekEndOf(nextStart),
				WeeklyLimitTotal:       total,
				WeeklyLimitUsed:        0,
				WeeklyLimitRemaining:   total,
				WeeklyLimitCarriedOver: carry,
			}
			if err := db.Create(&next).Error; err != nil {
				if isUniqueViolation(err) {
					// rollover paralel sudah membuat baris ini; lanjut dari situ
					var winner wlModel.WeeklyLimitModel
					if err2 := db.First(&winner,
						"weekly_limit_group_id = ? AND weekly_limit_week_start = ?", g.GroupID, nextStart).Error; err2 != nil {
						return nil, ErrLimitConflict
					}
					latest = winner
					continue
				}
				return nil, err
			}
			created = append(created, next)
			latest = next
		}
	}

	s.recordRolloverRun(db, now, created)
	return created, nil
}

// History: baris limit terakhir untuk satu group (terbaru dulu).
func (s *LimitService) History(ctx context.Context, groupID, limit int) ([]wlModel.WeeklyLimitModel, error) {
	if limit <= 0 {
		limit = 10
	}
	var rows []wlModel.WeeklyLimitModel
	err := s.DB.WithContext(ctx).
		Where("weekly_limit_group_id = ?", groupID).
		Order("weekly_limit_week_start DESC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

func (s *LimitService) recordRolloverRun(db *gorm.DB, now time.Time, created []wlModel.WeeklyLimitModel) {
	snapshot, err := json.Marshal(created)
	if err != nil {
		log.Printf("[WARN] gagal marshal snapshot rollover: %v", err)
		snapshot = []byte("[]")
	}
	run := wlModel.RolloverRunModel{
		RolloverRunRanAt:        now.UTC(),
		RolloverRunCreatedCount: len(created),
		RolloverRunCreatedRows:  datatypes.JSON(snapshot),
	}
	if err := db.Create(&run).Error; err != nil {
		// audit trail gagal bukan alasan membatalkan rollover
		log.Printf("[WARN] gagal mencatat rollover run: %v", err)
	}
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique")
}
