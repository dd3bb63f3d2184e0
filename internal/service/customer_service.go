package service

import (
	"errors"

	"go-perfume-crm/internal/model"
	"go-perfume-crm/internal/repository"
	"go-perfume-crm/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CustomerService interface {
	Create(req *CreateCustomerRequest, ownerID string) (*model.Customer, error)
	Update(id uuid.UUID, req *UpdateCustomerRequest, ownerID string) (*model.Customer, error)
	Delete(id uuid.UUID, ownerID string) error
	GetByID(id uuid.UUID, ownerID string) (*model.Customer, error)
	GetAll(ownerID string) ([]model.Customer, error)
}

type CreateCustomerRequest struct {
	FirstName   string  `json:"first_name" validate:"required"`
	LastName    string  `json:"last_name" validate:"required"`
	Description string  `json:"description"`
	Address     string  `json:"address"`
	Email       string  `json:"email" validate:"omitempty,email"`
	Phone       string  `json:"phone"`
	BirthDate   *string `json:"birth_date"` // Format: YYYY-MM-DD
}

type UpdateCustomerRequest struct {
	FirstName   *string `json:"first_name,omitempty" validate:"omitempty,min=1"`
	LastName    *string `json:"last_name,omitempty" validate:"omitempty,min=1"`
	Description *string `json:"description,omitempty"`
	Address     *string `json:"address,omitempty"`
	Email       *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone       *string `json:"phone,omitempty"`
	BirthDate   *string `json:"birth_date,omitempty"` // Format: YYYY-MM-DD, empty clears
}

type customerService struct {
	customerRepo repository.CustomerRepository
}

func NewCustomerService(customerRepo repository.CustomerRepository) CustomerService {
	return &customerService{customerRepo: customerRepo}
}

func (s *customerService) Create(req *CreateCustomerRequest, ownerID string) (*model.Customer, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, firstValidationError(errs)
	}

	birthDate, err := parseOptionalDate(req.BirthDate)
	if err != nil {
		return nil, err
	}

	customer := &model.Customer{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Description: req.Description,
		Address:     req.Address,
		Email:       req.Email,
		Phone:       req.Phone,
		BirthDate:   birthDate,
	}
	customer.CreatedBy = ownerID
	customer.UpdatedBy = ownerID

	if err := s.customerRepo.Create(customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *customerService) Update(id uuid.UUID, req *UpdateCustomerRequest, ownerID string) (*model.Customer, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, firstValidationError(errs)
	}

	fields := map[string]interface{}{"updated_by": ownerID}
	if req.FirstName != nil {
		fields["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		fields["last_name"] = *req.LastName
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Address != nil {
		fields["address"] = *req.Address
	}
	if req.Email != nil {
		fields["email"] = *req.Email
	}
	if req.Phone != nil {
		fields["phone"] = *req.Phone
	}
	if req.BirthDate != nil {
		if *req.BirthDate == "" {
			fields["birth_date"] = nil
		} else {
			birthDate, err := parseOptionalDate(req.BirthDate)
			if err != nil {
				return nil, err
			}
			fields["birth_date"] = *birthDate
		}
	}

	if err := s.customerRepo.UpdateFields(id, ownerID, fields); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}
	return s.customerRepo.FindByID(id, ownerID)
}

func (s *customerService) Delete(id uuid.UUID, ownerID string) error {
	if err := s.customerRepo.Delete(id, ownerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCustomerNotFound
		}
		return err
	}
	return nil
}

func (s *customerService) GetByID(id uuid.UUID, ownerID string) (*model.Customer, error) {
	customer, err := s.customerRepo.FindByID(id, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}
	return customer, nil
}

func (s *customerService) GetAll(ownerID string) ([]model.Customer, error) {
	return s.customerRepo.FindAll(ownerID)
}
