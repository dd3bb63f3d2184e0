package model

type Supplier struct {
	BaseModel
	CompanyName   string `gorm:"type:varchar(255);not null" json:"company_name" validate:"required"`
	Description   string `gorm:"type:text" json:"description"`
	Address       string `gorm:"type:text" json:"address"`
	ContactPerson string `gorm:"type:varchar(255)" json:"contact_person"`
	Email         string `gorm:"type:varchar(255)" json:"email" validate:"omitempty,email"`
	Phone         string `gorm:"type:varchar(30)" json:"phone"`

	// Deleting a supplier takes its products with it
	Products []Product `gorm:"constraint:OnDelete:CASCADE" json:"products,omitempty"`
}
