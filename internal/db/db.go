package db

import (
	"log"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"

	"github.com/agendabarber/booking-api/internal/config"
	"github.com/agendabarber/booking-api/internal/models"
)

// Connect abre a conexão a partir do DSN: postgres em produção,
// sqlite puro-Go para desenvolvimento local e testes.
// TranslateError é obrigatório: a violação do índice único de slot
// precisa virar gorm.ErrDuplicatedKey nos dois drivers.
func Connect(dsn string) (*gorm.DB, error) {
	cfg := &gorm.Config{
		PrepareStmt:    true,
		TranslateError: true,
	}

	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return gorm.Open(postgres.Open(dsn), cfg)
	}

	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		&gorm.Config{
			TranslateError: true,
			Logger:         logger.Default.LogMode(logger.Warn),
		},
	)
}

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := Connect(cfg.DBUrl)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := Migrate(db); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	return db
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Barber{},
		&models.Customer{},
		&models.Service{},
		&models.WeeklySchedule{},
		&models.Appointment{},
		&models.Payment{},
		&models.AuditLog{},
	)
}
