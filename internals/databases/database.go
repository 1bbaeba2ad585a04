package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"benihku_backend/internals/configs"
	gModel "benihku_backend/internals/features/bookkeeping/groups/model"
	itModel "benihku_backend/internals/features/bookkeeping/item_types/model"
	mModel "benihku_backend/internals/features/bookkeeping/members/model"
	pModel "benihku_backend/internals/features/bookkeeping/pricing/model"
	txModel "benihku_backend/internals/features/bookkeeping/transactions/model"
	wlModel "benihku_backend/internals/features/bookkeeping/weekly_limits/model"
	uModel "benihku_backend/internals/features/users/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Koneksi ke PostgreSQL...")

	// ✅ DSN lengkap + statement_timeout
	// Catatan: kalau pakai PgBouncer, arahkan host/port ke PgBouncer dan biarkan PreferSimpleProtocol=true
	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=benihku&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // 👍 cocok untuk PgBouncer (transaction pooling)
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		log.Fatalf("❌ Gagal konek DB: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")
}

// Migrate: sinkronkan skema. Keempat tabel pembukuan memakai satu model
// dengan nama tabel dinamis, jadi dimigrasi per tabel.
func Migrate() {
	if err := DB.AutoMigrate(
		&uModel.UserModel{},
		&gModel.GroupModel{},
		&mModel.MemberModel{},
		&itModel.SeedTypeModel{},
		&itModel.LeafTypeModel{},
		&pModel.PriceSettingModel{},
		&wlModel.WeeklyLimitModel{},
		&wlModel.RolloverRunModel{},
	); err != nil {
		log.Fatalf("❌ Gagal migrasi skema: %v", err)
	}

	for _, kind := range []txModel.RecordKind{
		txModel.KindSale,
		txModel.KindLeafPurchase,
		txModel.KindInternalSale,
		txModel.KindInternalLeafPurchase,
	} {
		if err := DB.Table(kind.TableName()).AutoMigrate(&txModel.TransactionModel{}); err != nil {
			log.Fatalf("❌ Gagal migrasi tabel %s: %v", kind.TableName(), err)
		}
	}
	log.Println("✅ Skema tersinkron.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

func WarmUpQueries() {
	// jalankan ringan supaya koneksi/pool “keisi” & siap
	go func() {
		time.Sleep(500 * time.Millisecond) // beri waktu server naik
		if err := ping(); err != nil {
			log.Printf("warm-up ping err: %v", err)
		}
	}()
}

func ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
