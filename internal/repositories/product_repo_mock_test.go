package repositories_test

import (
	"fmt"
	"testing"
	"time"

	"katalog/internal/models"
	"katalog/internal/repositories"

	"github.com/stretchr/testify/assert"
)

func seedCatalog(t *testing.T, repo *repositories.MockProductRepository, n int) []models.Product {
	t.Helper()
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	products := make([]models.Product, 0, n)
	for i := 0; i < n; i++ {
		p := models.Product{
			Name:          fmt.Sprintf("Tee %02d", i),
			SubcategoryID: "sub-1",
			Variations: []models.Variation{
				{Size: models.SizeM, Price: float64(10 + i), Stock: 5},
			},
			IsActive:  true,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		assert.NoError(t, repo.Create(&p))
		products = append(products, p)
	}
	return products
}

func TestMockProductRepository_ListPagination(t *testing.T) {
	repo := repositories.NewMockProductRepository()
	seeded := seedCatalog(t, repo, 12)

	// Page 2 of 5 on 12 products: items 6-10 in newest-first order
	page2, total, err := repo.List(repositories.ProductFilter{}, 2, 5)
	assert.NoError(t, err)
	assert.Equal(t, int64(12), total)
	assert.Len(t, page2, 5)
	assert.Equal(t, seeded[6].Name, page2[0].Name) // 12-1-5 = index 6 newest-first
	assert.Equal(t, seeded[2].Name, page2[4].Name)

	// Ordering within a page is strictly newest first
	for i := 1; i < len(page2); i++ {
		assert.True(t, !page2[i].CreatedAt.After(page2[i-1].CreatedAt))
	}

	// A page past the end is empty, not an error, and total is still right
	empty, total, err := repo.List(repositories.ProductFilter{}, 4, 5)
	assert.NoError(t, err)
	assert.Equal(t, int64(12), total)
	assert.Empty(t, empty)
}

func TestMockProductRepository_ListFilters(t *testing.T) {
	repo := repositories.NewMockProductRepository()

	cheap := models.Product{
		Name:          "Cheap Tee",
		SubcategoryID: "sub-1",
		Variations:    []models.Variation{{Size: models.SizeS, Price: 5}},
		IsActive:      true,
	}
	mid := models.Product{
		Name:          "Mid Tee",
		SubcategoryID: "sub-2",
		Variations: []models.Variation{
			{Size: models.SizeM, Price: 15},
			{Size: models.SizeL, Price: 45},
		},
		IsActive: true,
	}
	inactive := models.Product{
		Name:          "Retired Tee",
		SubcategoryID: "sub-1",
		Variations:    []models.Variation{{Size: models.SizeM, Price: 15}},
		IsActive:      false,
	}
	for _, p := range []*models.Product{&cheap, &mid, &inactive} {
		assert.NoError(t, repo.Create(p))
	}

	// Inactive products never show up in listings
	all, total, err := repo.List(repositories.ProductFilter{}, 1, 10)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), total)
	for _, p := range all {
		assert.True(t, p.IsActive)
	}

	// Price range matches when any variation's price is in range
	min, max := 10.0, 20.0
	matched, total, err := repo.List(repositories.ProductFilter{MinPrice: &min, MaxPrice: &max}, 1, 10)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "Mid Tee", matched[0].Name)

	// Size matches when any variation carries it
	matched, total, err = repo.List(repositories.ProductFilter{Size: models.SizeL}, 1, 10)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "Mid Tee", matched[0].Name)

	// Subcategory filter composes with the rest
	matched, total, err = repo.List(repositories.ProductFilter{SubcategoryID: "sub-1", Size: models.SizeS}, 1, 10)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "Cheap Tee", matched[0].Name)
}

func TestMockProductRepository_DeleteLeavesStoreUnchangedOnMiss(t *testing.T) {
	repo := repositories.NewMockProductRepository()
	seedCatalog(t, repo, 3)

	before, err := repo.Count()
	assert.NoError(t, err)

	err = repo.Delete("no-such-id")
	assert.ErrorIs(t, err, repositories.ErrProductNotFound)

	after, err := repo.Count()
	assert.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestMockProductRepository_GetBySubcategory(t *testing.T) {
	repo := repositories.NewMockProductRepository()

	active := models.Product{Name: "A", SubcategoryID: "sub-1", IsActive: true, Variations: []models.Variation{{Size: models.SizeM, Price: 1}}}
	other := models.Product{Name: "B", SubcategoryID: "sub-2", IsActive: true, Variations: []models.Variation{{Size: models.SizeM, Price: 1}}}
	hidden := models.Product{Name: "C", SubcategoryID: "sub-1", IsActive: false, Variations: []models.Variation{{Size: models.SizeM, Price: 1}}}
	for _, p := range []*models.Product{&active, &other, &hidden} {
		assert.NoError(t, repo.Create(p))
	}

	products, err := repo.GetBySubcategory("sub-1")
	assert.NoError(t, err)
	assert.Len(t, products, 1)
	assert.Equal(t, "A", products[0].Name)
}
