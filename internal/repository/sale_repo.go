package repository

import (
	"go-perfume-crm/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SaleRepository interface {
	// Create inserts the header and all items through the caller's tx so the
	// aggregate commits or rolls back as one unit.
	Create(tx *gorm.DB, sale *model.Sale) error
	FindAll(owner string) ([]model.Sale, error)
	FindByID(id uuid.UUID, owner string) (*model.Sale, error)
	FindByCustomer(customerID uuid.UUID, owner string) ([]model.Sale, error)
	Delete(tx *gorm.DB, sale *model.Sale, deletedBy string) error
}

type saleRepo struct {
	db *gorm.DB
}

func NewSaleRepo(db *gorm.DB) SaleRepository {
	return &saleRepo{db}
}

func (r *saleRepo) Create(tx *gorm.DB, sale *model.Sale) error {
	return tx.Create(sale).Error
}

func (r *saleRepo) FindAll(owner string) ([]model.Sale, error) {
	var sales []model.Sale
	err := r.db.Preload("Customer").Preload("Employee").
		Where("created_by = ?", owner).
		Order("created_at DESC").
		Find(&sales).Error
	return sales, err
}

func (r *saleRepo) FindByID(id uuid.UUID, owner string) (*model.Sale, error) {
	var sale model.Sale
	err := r.db.Preload("Customer").Preload("Employee").
		Preload("Items").Preload("Items.Product").
		First(&sale, "id = ? AND created_by = ?", id, owner).Error
	if err != nil {
		return nil, err
	}
	return &sale, nil
}

func (r *saleRepo) FindByCustomer(customerID uuid.UUID, owner string) ([]model.Sale, error) {
	var sales []model.Sale
	err := r.db.Preload("Employee").Preload("Items").
		Where("customer_id = ? AND created_by = ?", customerID, owner).
		Order("created_at DESC").
		Find(&sales).Error
	return sales, err
}

func (r *saleRepo) Delete(tx *gorm.DB, sale *model.Sale, deletedBy string) error {
	if err := tx.Model(&model.SaleItem{}).
		Where("sale_id = ?", sale.ID).
		Update("deleted_by", deletedBy).Error; err != nil {
		return err
	}
	if err := tx.Where("sale_id = ?", sale.ID).Delete(&model.SaleItem{}).Error; err != nil {
		return err
	}
	if err := tx.Model(sale).Update("deleted_by", deletedBy).Error; err != nil {
		return err
	}
	return tx.Delete(sale).Error
}
