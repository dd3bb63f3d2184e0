package repository

import (
	"go-perfume-crm/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EmployeeRepository interface {
	Create(employee *model.Employee) error
	FindAll(owner string) ([]model.Employee, error)
	FindByID(id uuid.UUID, owner string) (*model.Employee, error)
	UpdateFields(id uuid.UUID, owner string, fields map[string]interface{}) error
	Delete(id uuid.UUID, owner string) error
}

type employeeRepo struct {
	db *gorm.DB
}

func NewEmployeeRepo(db *gorm.DB) EmployeeRepository {
	return &employeeRepo{db}
}

func (r *employeeRepo) Create(employee *model.Employee) error {
	return r.db.Create(employee).Error
}

func (r *employeeRepo) FindAll(owner string) ([]model.Employee, error) {
	var employees []model.Employee
	err := r.db.Where("created_by = ?", owner).
		Order("created_at DESC").
		Find(&employees).Error
	return employees, err
}

func (r *employeeRepo) FindByID(id uuid.UUID, owner string) (*model.Employee, error) {
	var employee model.Employee
	err := r.db.First(&employee, "id = ? AND created_by = ?", id, owner).Error
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *employeeRepo) UpdateFields(id uuid.UUID, owner string, fields map[string]interface{}) error {
	res := r.db.Model(&model.Employee{}).
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

func (r *employeeRepo) Delete(id uuid.UUID, owner string) error {
	res := r.db.Where("created_by = ?", owner).Delete(&model.Employee{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
