package repository

import (
	"go-perfume-crm/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SupplierRepository interface {
	Create(supplier *model.Supplier) error
	FindAll(owner string) ([]model.Supplier, error)
	FindByID(id uuid.UUID, owner string) (*model.Supplier, error)
	UpdateFields(id uuid.UUID, owner string, fields map[string]interface{}) error
	Delete(id uuid.UUID, owner string) error
}

type supplierRepo struct {
	db *gorm.DB
}

func NewSupplierRepo(db *gorm.DB) SupplierRepository {
	return &supplierRepo{db}
}

func (r *supplierRepo) Create(supplier *model.Supplier) error {
	return r.db.Create(supplier).Error
}

func (r *supplierRepo) FindAll(owner string) ([]model.Supplier, error) {
	var suppliers []model.Supplier
	err := r.db.Where("created_by = ?", owner).
		Order("created_at DESC").
		Find(&suppliers).Error
	return suppliers, err
}

func (r *supplierRepo) FindByID(id uuid.UUID, owner string) (*model.Supplier, error) {
	var supplier model.Supplier
	err := r.db.First(&supplier, "id = ? AND created_by = ?", id, owner).Error
	if err != nil {
		return nil, err
	}
	return &supplier, nil
}

func (r *supplierRepo) UpdateFields(id uuid.UUID, owner string, fields map[string]interface{}) error {
	res := r.db.Model(&model.Supplier{}).
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

// Delete removes the supplier and its products in one transaction, matching
// the cascade policy of the backing schema.
func (r *supplierRepo) Delete(id uuid.UUID, owner string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("created_by = ?", owner).Delete(&model.Supplier{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Where("supplier_id = ?", id).Delete(&model.Product{}).Error
	})
}
