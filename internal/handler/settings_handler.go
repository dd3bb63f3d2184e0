package handler

import (
	"go-perfume-crm/internal/model"
	"go-perfume-crm/internal/service"

	"github.com/gofiber/fiber/v2"
)

type SettingsHandler struct {
	service service.SettingsService
}

func NewSettingsHandler(s service.SettingsService) *SettingsHandler {
	return &SettingsHandler{service: s}
}

// GetArchiveDB returns the stored archive-database descriptor
// GET /api/v1/settings/archive-database
func (h *SettingsHandler) GetArchiveDB(c *fiber.Ctx) error {
	cfg, err := h.service.GetArchiveDB()
	if err != nil {
		return respondError(c, err)
	}
	// Never echo the stored password back
	cfg.Password = ""
	return c.JSON(cfg)
}

// SaveArchiveDB validates and stores the descriptor
// PUT /api/v1/settings/archive-database
func (h *SettingsHandler) SaveArchiveDB(c *fiber.Ctx) error {
	var cfg model.ArchiveDBConfig
	if err := c.BodyParser(&cfg); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.SaveArchiveDB(&cfg, getOwnerID(c)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Archive database settings saved"})
}

// TestArchiveDB validates a descriptor without storing it
// POST /api/v1/settings/archive-database/test
func (h *SettingsHandler) TestArchiveDB(c *fiber.Ctx) error {
	var cfg model.ArchiveDBConfig
	if err := c.BodyParser(&cfg); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.TestArchiveDB(&cfg); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}
