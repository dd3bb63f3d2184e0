package repository

import (
	"go-perfume-crm/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProductRepository interface {
	Create(product *model.Product) error
	FindAll(owner string) ([]model.Product, error)
	FindByID(id uuid.UUID, owner string) (*model.Product, error)
	UpdateFields(id uuid.UUID, owner string, fields map[string]interface{}) error
	Delete(id uuid.UUID, owner string) error

	// LockForUpdate loads a product under a FOR UPDATE row lock; it must run
	// inside a transaction so the lock holds until commit or rollback.
	LockForUpdate(tx *gorm.DB, id uuid.UUID, owner string) (*model.Product, error)
	UpdateStock(tx *gorm.DB, id uuid.UUID, newStock int, updatedBy string) error
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

func (r *productRepo) Create(product *model.Product) error {
	return r.db.Create(product).Error
}

func (r *productRepo) FindAll(owner string) ([]model.Product, error) {
	var products []model.Product
	err := r.db.Preload("Supplier").
		Where("created_by = ?", owner).
		Order("created_at DESC").
		Find(&products).Error
	return products, err
}

func (r *productRepo) FindByID(id uuid.UUID, owner string) (*model.Product, error) {
	var product model.Product
	err := r.db.Preload("Supplier").
		First(&product, "id = ? AND created_by = ?", id, owner).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// UpdateFields applies only the supplied columns so concurrent edits of
// disjoint fields do not overwrite each other.
func (r *productRepo) UpdateFields(id uuid.UUID, owner string, fields map[string]interface{}) error {
	res := r.db.Model(&model.Product{}).
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

func (r *productRepo) Delete(id uuid.UUID, owner string) error {
	res := r.db.Where("created_by = ?", owner).Delete(&model.Product{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *productRepo) LockForUpdate(tx *gorm.DB, id uuid.UUID, owner string) (*model.Product, error) {
	var product model.Product
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&product, "id = ? AND created_by = ?", id, owner).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// UpdateStock takes the tx so the write stays inside the caller's transaction
func (r *productRepo) UpdateStock(tx *gorm.DB, id uuid.UUID, newStock int, updatedBy string) error {
	return tx.Model(&model.Product{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"stock_quantity": newStock,
			"updated_by":     updatedBy,
		}).Error
}
