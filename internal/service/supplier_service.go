package service

import (
	"errors"

	"go-perfume-crm/internal/model"
	"go-perfume-crm/internal/repository"
	"go-perfume-crm/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SupplierService interface {
	Create(req *CreateSupplierRequest, ownerID string) (*model.Supplier, error)
	Update(id uuid.UUID, req *UpdateSupplierRequest, ownerID string) (*model.Supplier, error)
	Delete(id uuid.UUID, ownerID string) error
	GetByID(id uuid.UUID, ownerID string) (*model.Supplier, error)
	GetAll(ownerID string) ([]model.Supplier, error)
}

type CreateSupplierRequest struct {
	CompanyName   string `json:"company_name" validate:"required"`
	Description   string `json:"description"`
	Address       string `json:"address"`
	ContactPerson string `json:"contact_person"`
	Email         string `json:"email" validate:"omitempty,email"`
	Phone         string `json:"phone"`
}

type UpdateSupplierRequest struct {
	CompanyName   *string `json:"company_name,omitempty" validate:"omitempty,min=1"`
	Description   *string `json:"description,omitempty"`
	Address       *string `json:"address,omitempty"`
	ContactPerson *string `json:"contact_person,omitempty"`
	Email         *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone         *string `json:"phone,omitempty"`
}

type supplierService struct {
	supplierRepo repository.SupplierRepository
}

func NewSupplierService(supplierRepo repository.SupplierRepository) SupplierService {
	return &supplierService{supplierRepo: supplierRepo}
}

func (s *supplierService) Create(req *CreateSupplierRequest, ownerID string) (*model.Supplier, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, firstValidationError(errs)
	}

	supplier := &model.Supplier{
		CompanyName:   req.CompanyName,
		Description:   req.Description,
		Address:       req.Address,
		ContactPerson: req.ContactPerson,
		Email:         req.Email,
		Phone:         req.Phone,
	}
	supplier.CreatedBy = ownerID
	supplier.UpdatedBy = ownerID

	if err := s.supplierRepo.Create(supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

func (s *supplierService) Update(id uuid.UUID, req *UpdateSupplierRequest, ownerID string) (*model.Supplier, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, firstValidationError(errs)
	}

	fields := map[string]interface{}{"updated_by": ownerID}
	if req.CompanyName != nil {
		fields["company_name"] = *req.CompanyName
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Address != nil {
		fields["address"] = *req.Address
	}
	if req.ContactPerson != nil {
		fields["contact_person"] = *req.ContactPerson
	}
	if req.Email != nil {
		fields["email"] = *req.Email
	}
	if req.Phone != nil {
		fields["phone"] = *req.Phone
	}

	if err := s.supplierRepo.UpdateFields(id, ownerID, fields); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSupplierNotFound
		}
		return nil, err
	}
	return s.supplierRepo.FindByID(id, ownerID)
}

func (s *supplierService) Delete(id uuid.UUID, ownerID string) error {
	if err := s.supplierRepo.Delete(id, ownerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSupplierNotFound
		}
		return err
	}
	return nil
}

func (s *supplierService) GetByID(id uuid.UUID, ownerID string) (*model.Supplier, error) {
	supplier, err := s.supplierRepo.FindByID(id, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSupplierNotFound
		}
		return nil, err
	}
	return supplier, nil
}

func (s *supplierService) GetAll(ownerID string) ([]model.Supplier, error) {
	return s.supplierRepo.FindAll(ownerID)
}
