package database

import (
	"fmt"
	"strings"
	"time"

	"financebook/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// allModels is the list of GORM models migrated on startup. The link table
// is listed explicitly so its composite primary key is created even though
// it is declared as a many2many join on PaymentItem.
var allModels = []interface{}{
	&models.CategoryType{},
	&models.Category{},
	&models.Recipient{},
	&models.PaymentItem{},
	&models.PaymentItemCategoryLink{},
}

// Manager handles database operations
type Manager struct {
	db *gorm.DB
}

// NewManager opens the backing store selected by the connection string.
// A postgres:// URL or key=value DSN selects PostgreSQL; anything else is
// treated as an embedded SQLite database file.
func NewManager(databaseURL string) (*Manager, error) {
	var dialector gorm.Dialector
	if isPostgresDSN(databaseURL) {
		dialector = postgres.New(postgres.Config{
			DSN:                  databaseURL,
			PreferSimpleProtocol: true, // Required for pooled proxies; harmless for direct connections
		})
	} else {
		dialector = sqlite.Open(databaseURL)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying DB: %w", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return &Manager{db: db}, nil
}

func isPostgresDSN(url string) bool {
	return strings.HasPrefix(url, "postgres://") ||
		strings.HasPrefix(url, "postgresql://") ||
		strings.Contains(url, "host=")
}

// Migrate creates or updates the schema for all models.
func (m *Manager) Migrate() error {
	if err := m.db.AutoMigrate(allModels...); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// DB returns the underlying GORM database instance
func (m *Manager) DB() *gorm.DB {
	return m.db
}
