package repository

import (
	"database/sql"

	"gorm.io/gorm"
)

// Transactor is the slice of *gorm.DB the sale workflow needs to run an
// all-or-nothing commit. *gorm.DB satisfies it directly; tests substitute
// an in-memory implementation with snapshot/restore semantics.
type Transactor interface {
	Transaction(fc func(tx *gorm.DB) error, opts ...*sql.TxOptions) error
}
