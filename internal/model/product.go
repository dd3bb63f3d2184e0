package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductTier is the coarse price-band classification of a perfume
type ProductTier string

const (
	TierPremium ProductTier = "premium"
	TierMedium  ProductTier = "medium"
	TierBasic   ProductTier = "basic"
)

type Product struct {
	BaseModel
	Name          string          `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Description   string          `gorm:"type:text" json:"description"`
	Brand         string          `gorm:"type:varchar(255);not null" json:"brand" validate:"required"`
	Price         decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	Tier          ProductTier     `gorm:"type:varchar(10);not null" json:"tier" validate:"required,oneof=premium medium basic"`
	ExpiryDate    *time.Time      `gorm:"type:date" json:"expiry_date,omitempty"`
	StockQuantity int             `gorm:"not null;default:0" json:"stock_quantity" validate:"gte=0"` // never negative
	SupplierID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"supplier_id" validate:"uuid_required"`
	Supplier      *Supplier       `gorm:"foreignKey:SupplierID" json:"supplier,omitempty" validate:"-"`
}
