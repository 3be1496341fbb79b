package models

import (
	"database/sql/driver"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// Session is a server-side session record, keyed by the cookie value
type Session struct {
	ID        string     `gorm:"primaryKey;size:64"`
	Data      Blob       `gorm:"not null"`
	ExpiresAt *time.Time `gorm:"index"`
}

// TableName overrides the table name for Session
func (Session) TableName() string {
	return "sessions"
}

// Blob is opaque binary data with a column type chosen per database driver
type Blob []byte

// Value implements driver.Valuer
func (b Blob) Value() (driver.Value, error) {
	return []byte(b), nil
}

// Scan implements sql.Scanner
func (b *Blob) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*b = nil
	case []byte:
		*b = append(Blob(nil), v...)
	case string:
		*b = Blob(v)
	}
	return nil
}

// GormDBDataType ensures the correct data type is used for each database driver.
func (Blob) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	switch db.Dialector.Name() {
	case "mysql":
		return "LONGBLOB"
	case "postgres":
		return "BYTEA"
	case "sqlserver", "mssql":
		return "VARBINARY(MAX)"
	case "sqlite":
		return "BLOB"
	}
	return "BLOB"
}
