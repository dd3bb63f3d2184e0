package service

import (
	"time"

	"go-perfume-crm/internal/repository"
)

type ReportService interface {
	GetOverview(ownerID string) (*repository.OverviewStats, error)
	GetSalesByDay(ownerID string, days int) ([]repository.SalesByDayData, error)
	GetTopCustomers(ownerID string, limit int) ([]repository.TopCustomerData, error)
	GetTopProducts(ownerID string, limit int) ([]repository.TopProductData, error)
}

type reportService struct {
	reportRepo repository.ReportRepository
}

func NewReportService(reportRepo repository.ReportRepository) ReportService {
	return &reportService{reportRepo: reportRepo}
}

func (s *reportService) GetOverview(ownerID string) (*repository.OverviewStats, error) {
	return s.reportRepo.GetOverviewStats(ownerID)
}

func (s *reportService) GetSalesByDay(ownerID string, days int) ([]repository.SalesByDayData, error) {
	endDate := time.Now()
	startDate := endDate.AddDate(0, 0, -days)
	return s.reportRepo.GetSalesByDay(ownerID, startDate, endDate)
}

func (s *reportService) GetTopCustomers(ownerID string, limit int) ([]repository.TopCustomerData, error) {
	return s.reportRepo.GetTopCustomers(ownerID, limit)
}

func (s *reportService) GetTopProducts(ownerID string, limit int) ([]repository.TopProductData, error) {
	return s.reportRepo.GetTopProducts(ownerID, limit)
}
