package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"go-perfume-crm/internal/model"
	"go-perfume-crm/internal/repository"
	"go-perfume-crm/internal/ws"
	"go-perfume-crm/pkg/validator"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type SaleService interface {
	Create(req *CreateSaleRequest, ownerID string) (*model.Sale, error)
	GetByID(id uuid.UUID, ownerID string) (*model.Sale, error)
	GetAll(ownerID string) ([]model.Sale, error)
	GetByCustomer(customerID uuid.UUID, ownerID string) ([]model.Sale, error)
	Delete(id uuid.UUID, ownerID string) error
}

// CreateSaleRequest is the input of the sale workflow. Any caller-supplied
// total is ignored: the total is recomputed from the items server-side.
type CreateSaleRequest struct {
	CustomerID uuid.UUID       `json:"customer_id" validate:"uuid_required"`
	EmployeeID uuid.UUID       `json:"employee_id" validate:"uuid_required"`
	Items      []SaleItemInput `json:"items" validate:"dive"`
}

type SaleItemInput struct {
	ProductID uuid.UUID       `json:"product_id" validate:"uuid_required"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

type saleService struct {
	saleRepo     repository.SaleRepository
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
	employeeRepo repository.EmployeeRepository
	db           repository.Transactor
	wsHub        *ws.Hub
}

func NewSaleService(
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
	employeeRepo repository.EmployeeRepository,
	db repository.Transactor,
	hub *ws.Hub,
) SaleService {
	return &saleService{
		saleRepo:     saleRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
		employeeRepo: employeeRepo,
		db:           db,
		wsHub:        hub,
	}
}

// Create commits a fully consistent sale aggregate or nothing at all.
// Every product row involved is locked FOR UPDATE for the duration of the
// transaction, so two concurrent sales drawing on the same product
// serialize and the later one sees the decremented stock.
func (s *saleService) Create(req *CreateSaleRequest, ownerID string) (*model.Sale, error) {
	if len(req.Items) == 0 {
		return nil, ErrEmptyOrder
	}
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, firstValidationError(errs)
	}
	for _, item := range req.Items {
		if item.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}
		if item.UnitPrice.IsNegative() {
			return nil, ErrInvalidPrice
		}
	}

	// Resolve references within the owner scope before touching stock
	if _, err := s.customerRepo.FindByID(req.CustomerID, ownerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}
	if _, err := s.employeeRepo.FindByID(req.EmployeeID, ownerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, err
	}

	// Authoritative total, decimal arithmetic throughout
	total := decimal.Zero
	for _, item := range req.Items {
		total = total.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	// Combined quantity per product handles the same product appearing on
	// multiple lines.
	needed := make(map[uuid.UUID]int)
	for _, item := range req.Items {
		needed[item.ProductID] += item.Quantity
	}
	productIDs := make([]uuid.UUID, 0, len(needed))
	for id := range needed {
		productIDs = append(productIDs, id)
	}
	// Stable lock order across concurrent requests avoids deadlock
	sort.Slice(productIDs, func(i, j int) bool {
		return productIDs[i].String() < productIDs[j].String()
	})

	var created *model.Sale
	err := s.db.Transaction(func(tx *gorm.DB) error {
		locked := make(map[uuid.UUID]*model.Product, len(productIDs))
		for _, id := range productIDs {
			product, err := s.productRepo.LockForUpdate(tx, id, ownerID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrProductNotFound
				}
				return err
			}
			if product.StockQuantity < needed[id] {
				return fmt.Errorf("%w: product '%s' has %d in stock, %d requested",
					ErrInsufficientStock, product.Name, product.StockQuantity, needed[id])
			}
			locked[id] = product
		}

		sale := &model.Sale{
			CustomerID:  req.CustomerID,
			EmployeeID:  req.EmployeeID,
			TotalAmount: total,
			Status:      model.SaleStatusCompleted,
		}
		sale.CreatedBy = ownerID
		sale.UpdatedBy = ownerID
		for _, item := range req.Items {
			line := model.SaleItem{
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				UnitPrice: item.UnitPrice,
				Subtotal:  item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))),
			}
			line.CreatedBy = ownerID
			line.UpdatedBy = ownerID
			sale.Items = append(sale.Items, line)
		}

		if err := s.saleRepo.Create(tx, sale); err != nil {
			return err
		}
		for _, id := range productIDs {
			newStock := locked[id].StockQuantity - needed[id]
			if err := s.productRepo.UpdateStock(tx, id, newStock, ownerID); err != nil {
				return err
			}
			locked[id].StockQuantity = newStock
		}

		created = sale
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.broadcastStockChange("sale_created", created, needed, ownerID)
	return created, nil
}

func (s *saleService) GetByID(id uuid.UUID, ownerID string) (*model.Sale, error) {
	sale, err := s.saleRepo.FindByID(id, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSaleNotFound
		}
		return nil, err
	}
	return sale, nil
}

func (s *saleService) GetAll(ownerID string) ([]model.Sale, error) {
	return s.saleRepo.FindAll(ownerID)
}

func (s *saleService) GetByCustomer(customerID uuid.UUID, ownerID string) ([]model.Sale, error) {
	if _, err := s.customerRepo.FindByID(customerID, ownerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}
	return s.saleRepo.FindByCustomer(customerID, ownerID)
}

// Delete removes the aggregate and gives the sold quantities back to stock
// in the same transaction, so the stock invariant stays truthful.
func (s *saleService) Delete(id uuid.UUID, ownerID string) error {
	sale, err := s.saleRepo.FindByID(id, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSaleNotFound
		}
		return err
	}

	restock := make(map[uuid.UUID]int)
	for _, item := range sale.Items {
		restock[item.ProductID] += item.Quantity
	}
	productIDs := make([]uuid.UUID, 0, len(restock))
	for pid := range restock {
		productIDs = append(productIDs, pid)
	}
	sort.Slice(productIDs, func(i, j int) bool {
		return productIDs[i].String() < productIDs[j].String()
	})

	err = s.db.Transaction(func(tx *gorm.DB) error {
		for _, pid := range productIDs {
			product, err := s.productRepo.LockForUpdate(tx, pid, ownerID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					// Product removed since the sale; nothing to restock
					continue
				}
				return err
			}
			if err := s.productRepo.UpdateStock(tx, pid, product.StockQuantity+restock[pid], ownerID); err != nil {
				return err
			}
		}
		return s.saleRepo.Delete(tx, sale, ownerID)
	})
	if err != nil {
		return err
	}

	s.broadcastStockChange("sale_deleted", sale, restock, ownerID)
	return nil
}

func (s *saleService) broadcastStockChange(action string, sale *model.Sale, quantities map[uuid.UUID]int, ownerID string) {
	if s.wsHub == nil {
		return
	}
	go func() {
		products := make([]map[string]interface{}, 0, len(quantities))
		for pid, qty := range quantities {
			products = append(products, map[string]interface{}{
				"product_id": pid,
				"quantity":   qty,
			})
		}
		payload := map[string]interface{}{
			"type":     "stock_update",
			"action":   action,
			"sale_id":  sale.ID,
			"total":    sale.TotalAmount,
			"products": products,
			"owner":    ownerID,
		}
		msg, _ := json.Marshal(payload)
		s.wsHub.Broadcast <- msg
	}()
}
