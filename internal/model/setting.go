package model

import "time"

// Setting is a key/value blob row. The archive database descriptor lives
// under SettingKeyArchiveDB as a JSON value.
type Setting struct {
	Key       string    `gorm:"type:varchar(100);primaryKey" json:"key"`
	Value     string    `gorm:"type:text;not null" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
	UpdatedBy string    `gorm:"type:varchar(255)" json:"updated_by"`
}

const SettingKeyArchiveDB = "archive_database"

// ArchiveDBConfig describes the optional secondary (archive) database
// connection. Stored JSON-encoded in the settings table.
type ArchiveDBConfig struct {
	URI      string `json:"uri" validate:"required"`
	Database string `json:"database" validate:"required"`
	Username string `json:"username,omitempty"`
	Password string `json:"password,omitempty"`
}
