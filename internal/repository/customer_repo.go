package repository

import (
	"go-perfume-crm/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CustomerRepository interface {
	Create(customer *model.Customer) error
	FindAll(owner string) ([]model.Customer, error)
	FindByID(id uuid.UUID, owner string) (*model.Customer, error)
	UpdateFields(id uuid.UUID, owner string, fields map[string]interface{}) error
	Delete(id uuid.UUID, owner string) error
}

type customerRepo struct {
	db *gorm.DB
}

func NewCustomerRepo(db *gorm.DB) CustomerRepository {
	return &customerRepo{db}
}

func (r *customerRepo) Create(customer *model.Customer) error {
	return r.db.Create(customer).Error
}

func (r *customerRepo) FindAll(owner string) ([]model.Customer, error) {
	var customers []model.Customer
	err := r.db.Where("created_by = ?", owner).
		Order("created_at DESC").
		Find(&customers).Error
	return customers, err
}

func (r *customerRepo) FindByID(id uuid.UUID, owner string) (*model.Customer, error) {
	var customer model.Customer
	err := r.db.First(&customer, "id = ? AND created_by = ?", id, owner).Error
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepo) UpdateFields(id uuid.UUID, owner string, fields map[string]interface{}) error {
	res := r.db.Model(&model.Customer{}).
		Where("id = ? AND created_by = ?", id, owner).
		Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *customerRepo) Delete(id uuid.UUID, owner string) error {
	res := r.db.Where("created_by = ?", owner).Delete(&model.Customer{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
