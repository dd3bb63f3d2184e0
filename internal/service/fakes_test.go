package service

import (
	"database/sql"
	"errors"
	"sync"
	"time"

	"go-perfume-crm/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// fakeStore is an in-memory stand-in for the Postgres-backed repositories.
// Transaction serializes callers on txMu (modeling the FOR UPDATE row locks)
// and restores a snapshot when the callback fails, so the rollback semantics
// the sale workflow depends on hold for real.
type fakeStore struct {
	txMu  sync.Mutex
	mapMu sync.Mutex

	suppliers map[uuid.UUID]model.Supplier
	products  map[uuid.UUID]model.Product
	customers map[uuid.UUID]model.Customer
	employees map[uuid.UUID]model.Employee
	sales     map[uuid.UUID]model.Sale

	// Failure injection
	failSaleCreate   bool
	failStockWriteAt int // fail the Nth UpdateStock call, 0 = never
	stockWrites      int
}

var errStoreDown = errors.New("store write failed")

func newFakeStore() *fakeStore {
	return &fakeStore{
		suppliers: make(map[uuid.UUID]model.Supplier),
		products:  make(map[uuid.UUID]model.Product),
		customers: make(map[uuid.UUID]model.Customer),
		employees: make(map[uuid.UUID]model.Employee),
		sales:     make(map[uuid.UUID]model.Sale),
	}
}

func (s *fakeStore) Transaction(fc func(tx *gorm.DB) error, opts ...*sql.TxOptions) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	snapProducts, snapSales := s.snapshot()
	if err := fc(nil); err != nil {
		s.restore(snapProducts, snapSales)
		return err
	}
	return nil
}

func (s *fakeStore) snapshot() (map[uuid.UUID]model.Product, map[uuid.UUID]model.Sale) {
	s.mapMu.Lock()
	defer s.mapMu.Unlock()

	products := make(map[uuid.UUID]model.Product, len(s.products))
	for id, p := range s.products {
		products[id] = p
	}
	sales := make(map[uuid.UUID]model.Sale, len(s.sales))
	for id, sale := range s.sales {
		sale.Items = append([]model.SaleItem(nil), sale.Items...)
		sales[id] = sale
	}
	return products, sales
}

func (s *fakeStore) restore(products map[uuid.UUID]model.Product, sales map[uuid.UUID]model.Sale) {
	s.mapMu.Lock()
	defer s.mapMu.Unlock()
	s.products = products
	s.sales = sales
}

// Seed helpers

func (s *fakeStore) addSupplier(owner string) uuid.UUID {
	supplier := model.Supplier{CompanyName: "Maison Test"}
	supplier.ID = uuid.New()
	supplier.CreatedBy = owner
	s.suppliers[supplier.ID] = supplier
	return supplier.ID
}

func (s *fakeStore) addProduct(owner string, price decimal.Decimal, stock int) uuid.UUID {
	product := model.Product{
		Name:          "Eau de Test",
		Brand:         "Testienne",
		Price:         price,
		Tier:          model.TierMedium,
		StockQuantity: stock,
	}
	product.ID = uuid.New()
	product.CreatedBy = owner
	s.products[product.ID] = product
	return product.ID
}

func (s *fakeStore) addCustomer(owner string) uuid.UUID {
	customer := model.Customer{FirstName: "Ada", LastName: "Customer"}
	customer.ID = uuid.New()
	customer.CreatedBy = owner
	s.customers[customer.ID] = customer
	return customer.ID
}

func (s *fakeStore) addEmployee(owner string) uuid.UUID {
	employee := model.Employee{FirstName: "Evan", LastName: "Employee"}
	employee.ID = uuid.New()
	employee.CreatedBy = owner
	s.employees[employee.ID] = employee
	return employee.ID
}

func (s *fakeStore) stockOf(id uuid.UUID) int {
	s.mapMu.Lock()
	defer s.mapMu.Unlock()
	return s.products[id].StockQuantity
}

func (s *fakeStore) saleCount() int {
	s.mapMu.Lock()
	defer s.mapMu.Unlock()
	return len(s.sales)
}

func (s *fakeStore) itemCount() int {
	s.mapMu.Lock()
	defer s.mapMu.Unlock()
	n := 0
	for _, sale := range s.sales {
		n += len(sale.Items)
	}
	return n
}

// fakeProductRepo

type fakeProductRepo struct{ store *fakeStore }

func (r *fakeProductRepo) Create(product *model.Product) error {
	r.store.mapMu.Lock()
	defer r.store.mapMu.Unlock()
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	r.store.products[product.ID] = *product
	return nil
}

func (r *fakeProductRepo) FindAll(owner string) ([]model.Product, error) {
	r.store.mapMu.Lock()
	defer r.store.mapMu.Unlock()
	var out []model.Product
	for _, p := range r.store.products {
		if p.CreatedBy == owner {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) FindByID(id uuid.UUID, owner string) (*model.Product, error) {
	r.store.mapMu.Lock()
	defer r.store.mapMu.Unlock()
	p, ok := r.store.products[id]
	if !ok || p.CreatedBy != owner {
		return nil, gorm.ErrRecordNotFound
	}
	return &p, nil
}

func (r *fakeProductRepo) UpdateFields(id uuid.UUID, owner string, fields map[string]interface{}) error {
	r.store.mapMu.Lock()
	defer r.store.mapMu.Unlock()
	p, ok := r.store.products[id]
	if !ok || p.CreatedBy != owner {
		return gorm.ErrRecordNotFound
	}
	for key, value := range fields {
		switch key {
		case "name":
			p.Name = value.(string)
		case "description":
			p.Description = value.(string)
		case "brand":
			p.Brand = value.(string)
		case "price":
			p.Price = value.(decimal.Decimal)
		case "tier":
			p.Tier = value.(model.ProductTier)
		case "stock_quantity":
			p.StockQuantity = value.(int)
		case "expiry_date":
			if value == nil {
				p.ExpiryDate = nil
			} else {
				t := value.(time.Time)
				p.ExpiryDate = &t
			}
		case "supplier_id":
			p.SupplierID = value.(uuid.UUID)
		case "updated_by":
			p.UpdatedBy = value.(string)
		}
	}
	r.store.products[id] = p
	return nil
}

func (r *fakeProductRepo) Delete(id uuid.UUID, owner string) error {
	r.store.mapMu.Lock()
	defer r.store.mapMu.Unlock()
	p, ok := r.store.products[id]
	if !ok || p.CreatedBy != owner {
		return gorm.ErrRecordNotFound
	}
	delete(r.store.products, id)
	return nil
}

func (r *fakeProductRepo) LockForUpdate(tx *gorm.DB, id uuid.UUID, owner string) (*model.Product, error) {
	return r.FindByID(id, owner)
}

func (r *fakeProductRepo) UpdateStock(tx *gorm.DB, id uuid.UUID, newStock int, updatedBy string) error {
	r.store.mapMu.Lock()
	defer r.store.mapMu.Unlock()
	r.store.stockWrites++
	if r.store.failStockWriteAt > 0 && r.store.stockWrites == r.store.failStockWriteAt {
		return errStoreDown
	}
	p, ok := r.store.products[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.StockQuantity = newStock
	p.UpdatedBy = updatedBy
	r.store.products[id] = p
	return nil
}

// fakeSaleRepo

type fakeSaleRepo struct{ store *fakeStore }

func (r *fakeSaleRepo) Create(tx *gorm.DB, sale *model.Sale) error {
	r.store.mapMu.Lock()
	defer r.store.mapMu.Unlock()
	if r.store.failSaleCreate {
		return errStoreDown
	}
	sale.ID = uuid.New()
	for i := range sale.Items {
		sale.Items[i].ID = uuid.New()
		sale.Items[i].SaleID = sale.ID
	}
	stored := *sale
	stored.Items = append([]model.SaleItem(nil), sale.Items...)
	r.store.sales[sale.ID] = stored
	return nil
}

func (r *fakeSaleRepo) FindAll(owner string) ([]model.Sale, error) {
	r.store.mapMu.Lock()
	defer r.store.mapMu.Unlock()
	var out []model.Sale
	for _, sale := range r.store.sales {
		if sale.CreatedBy == owner {
			out = append(out, sale)
		}
	}
	return out, nil
}

func (r *fakeSaleRepo) FindByID(id uuid.UUID, owner string) (*model.Sale, error) {
	r.store.mapMu.Lock()
	defer r.store.mapMu.Unlock()
	sale, ok := r.store.sales[id]
	if !ok || sale.CreatedBy != owner {
		return nil, gorm.ErrRecordNotFound
	}
	sale.Items = append([]model.SaleItem(nil), sale.Items...)
	return &sale, nil
}

func (r *fakeSaleRepo) FindByCustomer(customerID uuid.UUID, owner string) ([]model.Sale, error) {
	r.store.mapMu.Lock()
	defer r.store.mapMu.Unlock()
	var out []model.Sale
	for _, sale := range r.store.sales {
		if sale.CreatedBy == owner && sale.CustomerID == customerID {
			out = append(out, sale)
		}
	}
	return out, nil
}

func (r *fakeSaleRepo) Delete(tx *gorm.DB, sale *model.Sale, deletedBy string) error {
	r.store.mapMu.Lock()
	defer r.store.mapMu.Unlock()
	if _, ok := r.store.sales[sale.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.store.sales, sale.ID)
	return nil
}

// fakeCustomerRepo

type fakeCustomerRepo struct{ store *fakeStore }

func (r *fakeCustomerRepo) Create(customer *model.Customer) error {
	r.store.mapMu.Lock()
	defer r.store.mapMu.Unlock()
	if customer.ID == uuid.Nil {
		customer.ID = uuid.New()
	}
	r.store.customers[customer.ID] = *customer
	return nil
}

func (r *fakeCustomerRepo) FindAll(owner string) ([]model.Customer, error) {
	r.store.mapMu.Lock()
	defer r.store.mapMu.Unlock()
	var out []model.Customer
	for _, c := range r.store.customers {
		if c.CreatedBy == owner {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeCustomerRepo) FindByID(id uuid.UUID, owner string) (*model.Customer, error) {
	r.store.mapMu.Lock()
	defer r.store.mapMu.Unlock()
	c, ok := r.store.customers[id]
	if !ok || c.CreatedBy != owner {
		return nil, gorm.ErrRecordNotFound
	}
	return &c, nil
}

func (r *fakeCustomerRepo) UpdateFields(id uuid.UUID, owner string, fields map[string]interface{}) error {
	r.store.mapMu.Lock()
	defer r.store.mapMu.Unlock()
	c, ok := r.store.customers[id]
	if !ok || c.CreatedBy != owner {
		return gorm.ErrRecordNotFound
	}
	for key, value := range fields {
		switch key {
		case "first_name":
			c.FirstName = value.(string)
		case "last_name":
			c.LastName = value.(string)
		case "description":
			c.Description = value.(string)
		case "address":
			c.Address = value.(string)
		case "email":
			c.Email = value.(string)
		case "phone":
			c.Phone = value.(string)
		case "birth_date":
			if value == nil {
				c.BirthDate = nil
			} else {
				t := value.(time.Time)
				c.BirthDate = &t
			}
		case "updated_by":
			c.UpdatedBy = value.(string)
		}
	}
	r.store.customers[id] = c
	return nil
}

func (r *fakeCustomerRepo) Delete(id uuid.UUID, owner string) error {
	r.store.mapMu.Lock()
	defer r.store.mapMu.Unlock()
	c, ok := r.store.customers[id]
	if !ok || c.CreatedBy != owner {
		return gorm.ErrRecordNotFound
	}
	delete(r.store.customers, id)
	return nil
}

// fakeEmployeeRepo

type fakeEmployeeRepo struct{ store *fakeStore }

func (r *fakeEmployeeRepo) Create(employee *model.Employee) error {
	r.store.mapMu.Lock()
	defer r.store.mapMu.Unlock()
	if employee.ID == uuid.Nil {
		employee.ID = uuid.New()
	}
	r.store.employees[employee.ID] = *employee
	return nil
}

func (r *fakeEmployeeRepo) FindAll(owner string) ([]model.Employee, error) {
	r.store.mapMu.Lock()
	defer r.store.mapMu.Unlock()
	var out []model.Employee
	for _, e := range r.store.employees {
		if e.CreatedBy == owner {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeEmployeeRepo) FindByID(id uuid.UUID, owner string) (*model.Employee, error) {
	r.store.mapMu.Lock()
	defer r.store.mapMu.Unlock()
	e, ok := r.store.employees[id]
	if !ok || e.CreatedBy != owner {
		return nil, gorm.ErrRecordNotFound
	}
	return &e, nil
}

func (r *fakeEmployeeRepo) UpdateFields(id uuid.UUID, owner string, fields map[string]interface{}) error {
	r.store.mapMu.Lock()
	defer r.store.mapMu.Unlock()
	e, ok := r.store.employees[id]
	if !ok || e.CreatedBy != owner {
		return gorm.ErrRecordNotFound
	}
	if v, ok := fields["first_name"]; ok {
		e.FirstName = v.(string)
	}
	if v, ok := fields["last_name"]; ok {
		e.LastName = v.(string)
	}
	r.store.employees[id] = e
	return nil
}

func (r *fakeEmployeeRepo) Delete(id uuid.UUID, owner string) error {
	r.store.mapMu.Lock()
	defer r.store.mapMu.Unlock()
	e, ok := r.store.employees[id]
	if !ok || e.CreatedBy != owner {
		return gorm.ErrRecordNotFound
	}
	delete(r.store.employees, id)
	return nil
}

// fakeSupplierRepo

type fakeSupplierRepo struct{ store *fakeStore }

func (r *fakeSupplierRepo) Create(supplier *model.Supplier) error {
	r.store.mapMu.Lock()
	defer r.store.mapMu.Unlock()
	if supplier.ID == uuid.Nil {
		supplier.ID = uuid.New()
	}
	r.store.suppliers[supplier.ID] = *supplier
	return nil
}

func (r *fakeSupplierRepo) FindAll(owner string) ([]model.Supplier, error) {
	r.store.mapMu.Lock()
	defer r.store.mapMu.Unlock()
	var out []model.Supplier
	for _, s := range r.store.suppliers {
		if s.CreatedBy == owner {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeSupplierRepo) FindByID(id uuid.UUID, owner string) (*model.Supplier, error) {
	r.store.mapMu.Lock()
	defer r.store.mapMu.Unlock()
	s, ok := r.store.suppliers[id]
	if !ok || s.CreatedBy != owner {
		return nil, gorm.ErrRecordNotFound
	}
	return &s, nil
}

func (r *fakeSupplierRepo) UpdateFields(id uuid.UUID, owner string, fields map[string]interface{}) error {
	r.store.mapMu.Lock()
	defer r.store.mapMu.Unlock()
	s, ok := r.store.suppliers[id]
	if !ok || s.CreatedBy != owner {
		return gorm.ErrRecordNotFound
	}
	if v, ok := fields["company_name"]; ok {
		s.CompanyName = v.(string)
	}
	if v, ok := fields["contact_person"]; ok {
		s.ContactPerson = v.(string)
	}
	if v, ok := fields["email"]; ok {
		s.Email = v.(string)
	}
	if v, ok := fields["updated_by"]; ok {
		s.UpdatedBy = v.(string)
	}
	r.store.suppliers[id] = s
	return nil
}

func (r *fakeSupplierRepo) Delete(id uuid.UUID, owner string) error {
	r.store.mapMu.Lock()
	defer r.store.mapMu.Unlock()
	s, ok := r.store.suppliers[id]
	if !ok || s.CreatedBy != owner {
		return gorm.ErrRecordNotFound
	}
	delete(r.store.suppliers, id)
	for pid, p := range r.store.products {
		if p.SupplierID == id {
			delete(r.store.products, pid)
		}
	}
	return nil
}

// fakeSettingRepo

type fakeSettingRepo struct {
	mu       sync.Mutex
	settings map[string]model.Setting
}

func newFakeSettingRepo() *fakeSettingRepo {
	return &fakeSettingRepo{settings: make(map[string]model.Setting)}
}

func (r *fakeSettingRepo) Get(key string) (*model.Setting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	setting, ok := r.settings[key]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &setting, nil
}

func (r *fakeSettingRepo) Save(setting *model.Setting) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.settings[setting.Key] = *setting
	return nil
}

// fakeUserRepo

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]model.User)}
}

func (r *fakeUserRepo) FindByEmail(email string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) FindByID(id uuid.UUID) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &u, nil
}

func (r *fakeUserRepo) Create(user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	r.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) UpdatePassword(userID uuid.UUID, hashedPassword string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.Password = hashedPassword
	r.users[userID] = u
	return nil
}
