package handler

import (
	"go-perfume-crm/internal/service"

	"github.com/gofiber/fiber/v2"
)

type SaleHandler struct {
	service service.SaleService
}

func NewSaleHandler(s service.SaleService) *SaleHandler {
	return &SaleHandler{service: s}
}

// CreateSale commits a sale aggregate (header + items + stock decrements)
// POST /api/v1/sales
func (h *SaleHandler) CreateSale(c *fiber.Ctx) error {
	var req service.CreateSaleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	sale, err := h.service.Create(&req, getOwnerID(c))
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(201).JSON(fiber.Map{"message": "Sale created", "data": sale})
}

// GetSales lists the owner's sales, newest first
// GET /api/v1/sales
func (h *SaleHandler) GetSales(c *fiber.Ctx) error {
	// Optional customer filter
	if customerParam := c.Query("customer_id"); customerParam != "" {
		customerID, err := parseUUID(customerParam)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid customer ID"})
		}
		sales, err := h.service.GetByCustomer(customerID, getOwnerID(c))
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(sales)
	}

	sales, err := h.service.GetAll(getOwnerID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(sales)
}

// GetSale returns a sale with its items and joined references
// GET /api/v1/sales/:id
func (h *SaleHandler) GetSale(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid sale ID"})
	}

	sale, err := h.service.GetByID(id, getOwnerID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(sale)
}

// DeleteSale removes the aggregate and restores the sold stock
// DELETE /api/v1/sales/:id
func (h *SaleHandler) DeleteSale(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid sale ID"})
	}

	if err := h.service.Delete(id, getOwnerID(c)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Sale deleted"})
}
