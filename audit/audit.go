package audit

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/rabbitoyo/catalog-admin-ui/config"
)

var DB *gorm.DB

// Entry is one recorded admin action. ProductID is empty for session events.
type Entry struct {
	ID        uint   `gorm:"primaryKey"`
	Action    string `gorm:"not null"`
	ProductID string
	Detail    string
	CreatedAt time.Time
}

func (Entry) TableName() string { return "audit_entry" }

// Init connects the audit database and migrates the table. The trail is
// optional: callers skip Init entirely when no audit host is configured.
func Init(cfg *config.Config) error {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.AuditDBHost, cfg.AuditDBPort, cfg.AuditDBUser, cfg.AuditDBPass, cfg.AuditDBName, cfg.AuditSSLMode)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return err
	}
	if err := db.AutoMigrate(&Entry{}); err != nil {
		return err
	}
	DB = db
	return nil
}

// Record appends an entry best-effort. A write failure is logged and never
// blocks or fails the admin action itself.
func Record(action, productID, detail string) {
	if DB == nil {
		return
	}
	e := Entry{Action: action, ProductID: productID, Detail: detail}
	if err := DB.Create(&e).Error; err != nil {
		log.Printf("[audit] record %s failed: %v", action, err)
	}
}
