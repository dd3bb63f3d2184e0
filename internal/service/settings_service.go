package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"go-perfume-crm/internal/model"
	"go-perfume-crm/internal/repository"
	"go-perfume-crm/pkg/validator"

	"gorm.io/gorm"
)

type SettingsService interface {
	GetArchiveDB() (*model.ArchiveDBConfig, error)
	SaveArchiveDB(cfg *model.ArchiveDBConfig, ownerID string) error
	TestArchiveDB(cfg *model.ArchiveDBConfig) error
}

type settingsService struct {
	settingRepo repository.SettingRepository
}

func NewSettingsService(settingRepo repository.SettingRepository) SettingsService {
	return &settingsService{settingRepo: settingRepo}
}

func (s *settingsService) GetArchiveDB() (*model.ArchiveDBConfig, error) {
	setting, err := s.settingRepo.Get(model.SettingKeyArchiveDB)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSettingNotFound
		}
		return nil, err
	}

	var cfg model.ArchiveDBConfig
	if err := json.Unmarshal([]byte(setting.Value), &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (s *settingsService) SaveArchiveDB(cfg *model.ArchiveDBConfig, ownerID string) error {
	if err := s.TestArchiveDB(cfg); err != nil {
		return err
	}

	value, err := json.Marshal(cfg)
	if err != nil {
		return err
	}
	return s.settingRepo.Save(&model.Setting{
		Key:       model.SettingKeyArchiveDB,
		Value:     string(value),
		UpdatedBy: ownerID,
	})
}

// TestArchiveDB validates the descriptor shape: uri and database are
// required and the uri must be a mongodb scheme.
func (s *settingsService) TestArchiveDB(cfg *model.ArchiveDBConfig) error {
	if errs := validator.ValidateStruct(cfg); len(errs) > 0 {
		return firstValidationError(errs)
	}
	if !strings.HasPrefix(cfg.URI, "mongodb://") && !strings.HasPrefix(cfg.URI, "mongodb+srv://") {
		return fmt.Errorf("%w: invalid MongoDB URI format", ErrValidation)
	}
	return nil
}
