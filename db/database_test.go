package db

import (
	"path/filepath"
	"testing"

	"justice_lab_go/models"

	"github.com/stretchr/testify/assert"
)

func TestInitializeCreatesBlobSchema(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "justicelab.db")
	assert.NoError(t, Initialize(dbPath, "production"))
	defer func() {
		assert.NoError(t, Close())
		DB = nil
	}()

	assert.True(t, DB.Migrator().HasTable(&models.StorageBlob{}))

	blob := models.StorageBlob{Key: "justicelab.ping", Value: `{"ok":true}`}
	assert.NoError(t, DB.Create(&blob).Error)

	var got models.StorageBlob
	assert.NoError(t, DB.First(&got, "key = ?", "justicelab.ping").Error)
	assert.Equal(t, `{"ok":true}`, got.Value)
}

func TestCloseWithoutInitialize(t *testing.T) {
	DB = nil
	assert.NoError(t, Close())
}
