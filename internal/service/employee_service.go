package service

import (
	"errors"

	"go-perfume-crm/internal/model"
	"go-perfume-crm/internal/repository"
	"go-perfume-crm/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EmployeeService interface {
	Create(req *CreateEmployeeRequest, ownerID string) (*model.Employee, error)
	Update(id uuid.UUID, req *UpdateEmployeeRequest, ownerID string) (*model.Employee, error)
	Delete(id uuid.UUID, ownerID string) error
	GetByID(id uuid.UUID, ownerID string) (*model.Employee, error)
	GetAll(ownerID string) ([]model.Employee, error)
}

type CreateEmployeeRequest struct {
	FirstName   string  `json:"first_name" validate:"required"`
	LastName    string  `json:"last_name" validate:"required"`
	Description string  `json:"description"`
	Address     string  `json:"address"`
	Email       string  `json:"email" validate:"omitempty,email"`
	Phone       string  `json:"phone"`
	BirthDate   *string `json:"birth_date"` // Format: YYYY-MM-DD
}

type UpdateEmployeeRequest struct {
	FirstName   *string `json:"first_name,omitempty" validate:"omitempty,min=1"`
	LastName    *string `json:"last_name,omitempty" validate:"omitempty,min=1"`
	Description *string `json:"description,omitempty"`
	Address     *string `json:"address,omitempty"`
	Email       *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone       *string `json:"phone,omitempty"`
	BirthDate   *string `json:"birth_date,omitempty"` // Format: YYYY-MM-DD, empty clears
}

type employeeService struct {
	employeeRepo repository.EmployeeRepository
}

func NewEmployeeService(employeeRepo repository.EmployeeRepository) EmployeeService {
	return &employeeService{employeeRepo: employeeRepo}
}

func (s *employeeService) Create(req *CreateEmployeeRequest, ownerID string) (*model.Employee, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, firstValidationError(errs)
	}

	birthDate, err := parseOptionalDate(req.BirthDate)
	if err != nil {
		return nil, err
	}

	employee := &model.Employee{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Description: req.Description,
		Address:     req.Address,
		Email:       req.Email,
		Phone:       req.Phone,
		BirthDate:   birthDate,
	}
	employee.CreatedBy = ownerID
	employee.UpdatedBy = ownerID

	if err := s.employeeRepo.Create(employee); err != nil {
		return nil, err
	}
	return employee, nil
}

func (s *employeeService) Update(id uuid.UUID, req *UpdateEmployeeRequest, ownerID string) (*model.Employee, error) {
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

	if err := s.employeeRepo.UpdateFields(id, ownerID, fields); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, err
	}
	return s.employeeRepo.FindByID(id, ownerID)
}

func (s *employeeService) Delete(id uuid.UUID, ownerID string) error {
	if err := s.employeeRepo.Delete(id, ownerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEmployeeNotFound
		}
		return err
	}
	return nil
}

func (s *employeeService) GetByID(id uuid.UUID, ownerID string) (*model.Employee, error) {
	employee, err := s.employeeRepo.FindByID(id, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, err
	}
	return employee, nil
}

func (s *employeeService) GetAll(ownerID string) ([]model.Employee, error) {
	return s.employeeRepo.FindAll(ownerID)
}
