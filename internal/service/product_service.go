package service

import (
	"errors"
	"fmt"
	"time"

	"go-perfume-crm/internal/model"
	"go-perfume-crm/internal/repository"
	"go-perfume-crm/pkg/validator"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ProductService interface {
	Create(req *CreateProductRequest, ownerID string) (*model.Product, error)
	Update(id uuid.UUID, req *UpdateProductRequest, ownerID string) (*model.Product, error)
	Delete(id uuid.UUID, ownerID string) error
	GetByID(id uuid.UUID, ownerID string) (*model.Product, error)
	GetAll(ownerID string) ([]model.Product, error)
}

type CreateProductRequest struct {
	Name          string            `json:"name" validate:"required"`
	Description   string            `json:"description"`
	Brand         string            `json:"brand" validate:"required"`
	Price         decimal.Decimal   `json:"price"`
	Tier          model.ProductTier `json:"tier" validate:"required,oneof=premium medium basic"`
	ExpiryDate    *string           `json:"expiry_date"` // Format: YYYY-MM-DD
	StockQuantity int               `json:"stock_quantity" validate:"gte=0"`
	SupplierID    uuid.UUID         `json:"supplier_id" validate:"uuid_required"`
}

// UpdateProductRequest is an explicit patch: only non-nil fields are merged,
// column by column, so concurrent edits of different fields don't clobber
// each other.
type UpdateProductRequest struct {
	Name          *string            `json:"name,omitempty" validate:"omitempty,min=1"`
	Description   *string            `json:"description,omitempty"`
	Brand         *string            `json:"brand,omitempty" validate:"omitempty,min=1"`
	Price         *decimal.Decimal   `json:"price,omitempty"`
	Tier          *model.ProductTier `json:"tier,omitempty" validate:"omitempty,oneof=premium medium basic"`
	ExpiryDate    *string            `json:"expiry_date,omitempty"` // Format: YYYY-MM-DD, empty clears
	StockQuantity *int               `json:"stock_quantity,omitempty" validate:"omitempty,gte=0"`
	SupplierID    *uuid.UUID         `json:"supplier_id,omitempty"`
}

type productService struct {
	productRepo  repository.ProductRepository
	supplierRepo repository.SupplierRepository
}

func NewProductService(productRepo repository.ProductRepository, supplierRepo repository.SupplierRepository) ProductService {
	return &productService{productRepo: productRepo, supplierRepo: supplierRepo}
}

func (s *productService) Create(req *CreateProductRequest, ownerID string) (*model.Product, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, firstValidationError(errs)
	}
	if req.Price.IsNegative() {
		return nil, ErrInvalidPrice
	}

	// Supplier must exist within the owner scope
	if _, err := s.supplierRepo.FindByID(req.SupplierID, ownerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSupplierNotFound
		}
		return nil, err
	}

	expiry, err := parseOptionalDate(req.ExpiryDate)
	if err != nil {
		return nil, err
	}

	product := &model.Product{
		Name:          req.Name,
		Description:   req.Description,
		Brand:         req.Brand,
		Price:         req.Price,
		Tier:          req.Tier,
		ExpiryDate:    expiry,
		StockQuantity: req.StockQuantity,
		SupplierID:    req.SupplierID,
	}
	product.CreatedBy = ownerID
	product.UpdatedBy = ownerID

	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *productService) Update(id uuid.UUID, req *UpdateProductRequest, ownerID string) (*model.Product, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, firstValidationError(errs)
	}

	fields := map[string]interface{}{"updated_by": ownerID}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Brand != nil {
		fields["brand"] = *req.Brand
	}
	if req.Price != nil {
		if req.Price.IsNegative() {
			return nil, ErrInvalidPrice
		}
		fields["price"] = *req.Price
	}
	if req.Tier != nil {
		fields["tier"] = *req.Tier
	}
	if req.ExpiryDate != nil {
		if *req.ExpiryDate == "" {
			fields["expiry_date"] = nil
		} else {
			expiry, err := parseOptionalDate(req.ExpiryDate)
			if err != nil {
				return nil, err
			}
			fields["expiry_date"] = *expiry
		}
	}
	if req.StockQuantity != nil {
		fields["stock_quantity"] = *req.StockQuantity
	}
	if req.SupplierID != nil {
		if _, err := s.supplierRepo.FindByID(*req.SupplierID, ownerID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrSupplierNotFound
			}
			return nil, err
		}
		fields["supplier_id"] = *req.SupplierID
	}

	if err := s.productRepo.UpdateFields(id, ownerID, fields); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return s.productRepo.FindByID(id, ownerID)
}

func (s *productService) Delete(id uuid.UUID, ownerID string) error {
	if err := s.productRepo.Delete(id, ownerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductNotFound
		}
		return err
	}
	return nil
}

func (s *productService) GetByID(id uuid.UUID, ownerID string) (*model.Product, error) {
	product, err := s.productRepo.FindByID(id, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

func (s *productService) GetAll(ownerID string) ([]model.Product, error) {
	return s.productRepo.FindAll(ownerID)
}

func parseOptionalDate(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	parsed, err := time.Parse("2006-01-02", *value)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date format, use YYYY-MM-DD", ErrValidation)
	}
	return &parsed, nil
}
