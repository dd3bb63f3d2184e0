package service

import (
	"testing"

	"go-perfume-crm/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsService_ArchiveDB(t *testing.T) {
	repo := newFakeSettingRepo()
	svc := NewSettingsService(repo)

	t.Run("not configured yet", func(t *testing.T) {
		_, err := svc.GetArchiveDB()
		assert.ErrorIs(t, err, ErrSettingNotFound)
	})

	t.Run("uri scheme validated", func(t *testing.T) {
		err := svc.TestArchiveDB(&model.ArchiveDBConfig{
			URI:      "postgres://archive:5432",
			Database: "archive",
		})
		assert.ErrorIs(t, err, ErrValidation)

		assert.NoError(t, svc.TestArchiveDB(&model.ArchiveDBConfig{
			URI:      "mongodb://archive:27017",
			Database: "archive",
		}))
		assert.NoError(t, svc.TestArchiveDB(&model.ArchiveDBConfig{
			URI:      "mongodb+srv://cluster0.example.net",
			Database: "archive",
		}))
	})

	t.Run("required fields", func(t *testing.T) {
		err := svc.TestArchiveDB(&model.ArchiveDBConfig{URI: "mongodb://archive:27017"})
		assert.ErrorIs(t, err, ErrValidation)

		err = svc.TestArchiveDB(&model.ArchiveDBConfig{Database: "archive"})
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("save round-trip", func(t *testing.T) {
		in := &model.ArchiveDBConfig{
			URI:      "mongodb://archive:27017",
			Database: "archive",
			Username: "svc",
			Password: "hunter2",
		}
		require.NoError(t, svc.SaveArchiveDB(in, testOwner))

		out, err := svc.GetArchiveDB()
		require.NoError(t, err)
		assert.Equal(t, in.URI, out.URI)
		assert.Equal(t, in.Database, out.Database)
		assert.Equal(t, in.Username, out.Username)
		assert.Equal(t, in.Password, out.Password)
	})

	t.Run("save rejects invalid descriptor", func(t *testing.T) {
		err := svc.SaveArchiveDB(&model.ArchiveDBConfig{URI: "ftp://nope", Database: "x"}, testOwner)
		assert.ErrorIs(t, err, ErrValidation)
	})
}
