package handler

import (
	"strconv"

	"go-perfume-crm/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ReportHandler struct {
	service service.ReportService
}

func NewReportHandler(s service.ReportService) *ReportHandler {
	return &ReportHandler{service: s}
}

// GetOverview returns entity counts, revenue and inventory valuation
// GET /api/v1/reports/overview
func (h *ReportHandler) GetOverview(c *fiber.Ctx) error {
	stats, err := h.service.GetOverview(getOwnerID(c))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch overview stats"})
	}
	return c.JSON(stats)
}

// GetSalesByDay returns per-day order counts and revenue for charts
// Query params: days (default 30)
func (h *ReportHandler) GetSalesByDay(c *fiber.Ctx) error {
	days, err := strconv.Atoi(c.Query("days", "30"))
	if err != nil || days <= 0 {
		days = 30
	}

	data, err := h.service.GetSalesByDay(getOwnerID(c), days)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch sales report"})
	}
	return c.JSON(fiber.Map{
		"period": days,
		"data":   data,
	})
}

// GetTopCustomers returns customers ranked by total spend
// Query params: limit (default 5)
func (h *ReportHandler) GetTopCustomers(c *fiber.Ctx) error {
	limit, err := strconv.Atoi(c.Query("limit", "5"))
	if err != nil || limit <= 0 {
		limit = 5
	}

	data, err := h.service.GetTopCustomers(getOwnerID(c), limit)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch top customers"})
	}
	return c.JSON(data)
}

// GetTopProducts returns products ranked by units sold
// Query params: limit (default 5)
func (h *ReportHandler) GetTopProducts(c *fiber.Ctx) error {
	limit, err := strconv.Atoi(c.Query("limit", "5"))
	if err != nil || limit <= 0 {
		limit = 5
	}

	data, err := h.service.GetTopProducts(getOwnerID(c), limit)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch top products"})
	}
	return c.JSON(data)
}
