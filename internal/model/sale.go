package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type SaleStatus string

const (
	SaleStatusPending   SaleStatus = "pending"
	SaleStatusCompleted SaleStatus = "completed"
	SaleStatusCancelled SaleStatus = "cancelled"
)

// Sale is the header of a sale aggregate. TotalAmount always equals the sum
// of its items' subtotals; it is recomputed server-side, never taken from
// the caller.
type Sale struct {
	BaseModel
	CustomerID  uuid.UUID       `gorm:"type:uuid;not null;index" json:"customer_id" validate:"uuid_required"`
	Customer    *Customer       `gorm:"foreignKey:CustomerID" json:"customer,omitempty" validate:"-"`
	EmployeeID  uuid.UUID       `gorm:"type:uuid;not null;index" json:"employee_id" validate:"uuid_required"`
	Employee    *Employee       `gorm:"foreignKey:EmployeeID" json:"employee,omitempty" validate:"-"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"total_amount"`
	Status      SaleStatus      `gorm:"type:varchar(10);not null" json:"status"`

	Items []SaleItem `gorm:"foreignKey:SaleID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

// SaleItem is one line of a sale. UnitPrice is a snapshot taken at sale
// time and does not follow later product price changes.
type SaleItem struct {
	BaseModel
	SaleID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"sale_id"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null;index" json:"product_id"`
	Product   *Product        `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Quantity  int             `gorm:"not null" json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"unit_price"`
	Subtotal  decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"subtotal"`
}
