package main

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"katalog/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	assert.NoError(t, err)
	assert.NoError(t, db.AutoMigrate(
		&models.Category{},
		&models.Subcategory{},
		&models.Product{},
		&models.Variation{},
		&models.User{},
		&models.Order{},
	))
	return db
}

func TestHealthEndpoint(t *testing.T) {
	app, _ := newApp(openTestDB(t), nil, "test_secret")

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestPublicRoutesWithoutBroker(t *testing.T) {
	// A nil broker client must not break request handling
	app, authService := newApp(openTestDB(t), nil, "test_secret")
	assert.NotNil(t, authService)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products", nil)
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestSeedTaxonomyIsIdempotent(t *testing.T) {
	db := openTestDB(t)

	seedTaxonomy(db)
	var first int64
	assert.NoError(t, db.Model(&models.Subcategory{}).Count(&first).Error)
	assert.Equal(t, int64(3), first)

	seedTaxonomy(db)
	var second int64
	assert.NoError(t, db.Model(&models.Subcategory{}).Count(&second).Error)
	assert.Equal(t, first, second)
}
