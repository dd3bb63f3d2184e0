package repository

import (
	"time"

	"go-perfume-crm/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ReportRepository interface {
	GetOverviewStats(owner string) (*OverviewStats, error)
	GetSalesByDay(owner string, startDate, endDate time.Time) ([]SalesByDayData, error)
	GetTopCustomers(owner string, limit int) ([]TopCustomerData, error)
	GetTopProducts(owner string, limit int) ([]TopProductData, error)
}

// OverviewStats for the dashboard overview cards
type OverviewStats struct {
	TotalSuppliers     int64           `json:"total_suppliers"`
	TotalProducts      int64           `json:"total_products"`
	TotalCustomers     int64           `json:"total_customers"`
	TotalEmployees     int64           `json:"total_employees"`
	TotalSales         int64           `json:"total_sales"`
	TotalRevenue       decimal.Decimal `json:"total_revenue"`
	InventoryValuation decimal.Decimal `json:"inventory_valuation"`
	LowStockCount      int64           `json:"low_stock_count"`
}

// SalesByDayData for the sales chart
type SalesByDayData struct {
	Date    string          `json:"date"`
	Orders  int64           `json:"orders"`
	Revenue decimal.Decimal `json:"revenue"`
}

type TopCustomerData struct {
	CustomerID string          `json:"customer_id"`
	FirstName  string          `json:"first_name"`
	LastName   string          `json:"last_name"`
	OrderCount int64           `json:"order_count"`
	TotalSales decimal.Decimal `json:"total_sales"`
}

type TopProductData struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Brand     string          `json:"brand"`
	UnitsSold int64           `json:"units_sold"`
	Revenue   decimal.Decimal `json:"revenue"`
}

type reportRepo struct {
	db *gorm.DB
}

func NewReportRepo(db *gorm.DB) ReportRepository {
	return &reportRepo{db}
}

func (r *reportRepo) GetOverviewStats(owner string) (*OverviewStats, error) {
	var stats OverviewStats

	r.db.Model(&model.Supplier{}).Where("created_by = ?", owner).Count(&stats.TotalSuppliers)
	r.db.Model(&model.Product{}).Where("created_by = ?", owner).Count(&stats.TotalProducts)
	r.db.Model(&model.Customer{}).Where("created_by = ?", owner).Count(&stats.TotalCustomers)
	r.db.Model(&model.Employee{}).Where("created_by = ?", owner).Count(&stats.TotalEmployees)
	r.db.Model(&model.Sale{}).Where("created_by = ?", owner).Count(&stats.TotalSales)

	if err := r.db.Model(&model.Sale{}).
		Where("created_by = ?", owner).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&stats.TotalRevenue).Error; err != nil {
		return nil, err
	}

	// Valuation = SUM of stock_quantity * price
	if err := r.db.Model(&model.Product{}).
		Where("created_by = ?", owner).
		Select("COALESCE(SUM(stock_quantity * price), 0)").
		Scan(&stats.InventoryValuation).Error; err != nil {
		return nil, err
	}

	r.db.Model(&model.Product{}).
		Where("created_by = ? AND stock_quantity < ?", owner, 10).
		Count(&stats.LowStockCount)

	return &stats, nil
}

func (r *reportRepo) GetSalesByDay(owner string, startDate, endDate time.Time) ([]SalesByDayData, error) {
	var results []SalesByDayData

	rows, err := r.db.Model(&model.Sale{}).
		Select(`
			DATE(created_at) as date,
			COUNT(*) as orders,
			COALESCE(SUM(total_amount), 0) as revenue
		`).
		Where("created_by = ? AND created_at BETWEEN ? AND ?", owner, startDate, endDate).
		Group("DATE(created_at)").
		Order("date ASC").
		Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var data SalesByDayData
		if err := rows.Scan(&data.Date, &data.Orders, &data.Revenue); err != nil {
			return nil, err
		}
		results = append(results, data)
	}

	return results, rows.Err()
}

func (r *reportRepo) GetTopCustomers(owner string, limit int) ([]TopCustomerData, error) {
	var results []TopCustomerData

	err := r.db.Model(&model.Sale{}).
		Select(`
			customers.id as customer_id,
			customers.first_name,
			customers.last_name,
			COUNT(sales.id) as order_count,
			COALESCE(SUM(sales.total_amount), 0) as total_sales
		`).
		Joins("JOIN customers ON customers.id = sales.customer_id").
		Where("sales.created_by = ?", owner).
		Group("customers.id, customers.first_name, customers.last_name").
		Order("total_sales DESC").
		Limit(limit).
		Scan(&results).Error

	return results, err
}

func (r *reportRepo) GetTopProducts(owner string, limit int) ([]TopProductData, error) {
	var results []TopProductData

	err := r.db.Model(&model.SaleItem{}).
		Select(`
			products.id as product_id,
			products.name,
			products.brand,
			COALESCE(SUM(sale_items.quantity), 0) as units_sold,
			COALESCE(SUM(sale_items.subtotal), 0) as revenue
		`).
		Joins("JOIN products ON products.id = sale_items.product_id").
		Where("sale_items.created_by = ?", owner).
		Group("products.id, products.name, products.brand").
		Order("units_sold DESC").
		Limit(limit).
		Scan(&results).Error

	return results, err
}
