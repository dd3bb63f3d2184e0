package model

import "time"

type Customer struct {
	BaseModel
	FirstName   string     `gorm:"type:varchar(255);not null" json:"first_name" validate:"required"`
	LastName    string     `gorm:"type:varchar(255);not null" json:"last_name" validate:"required"`
	Description string     `gorm:"type:text" json:"description"`
	Address     string     `gorm:"type:text" json:"address"`
	Email       string     `gorm:"type:varchar(255)" json:"email" validate:"omitempty,email"`
	Phone       string     `gorm:"type:varchar(30)" json:"phone"`
	BirthDate   *time.Time `gorm:"type:date" json:"birth_date,omitempty"`

	Sales []Sale `json:"sales,omitempty"`
}
