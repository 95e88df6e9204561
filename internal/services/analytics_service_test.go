package services_test

import (
	"testing"

	"katalog/internal/models"
	"katalog/internal/repositories"
	"katalog/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockCategoryRepository is a mock implementation of repositories.CategoryRepository
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) Create(category *models.Category) error {
	args := m.Called(category)
	return args.Error(0)
}

func (m *MockCategoryRepository) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

// MockOrderRepository is a mock implementation of repositories.OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) GetAll() ([]models.Order, error) {
	args := m.Called()
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByID(id string) (*models.Order, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderRepository) Create(order *models.Order) error {
	args := m.Called(order)
	return args.Error(0)
}

func (m *MockOrderRepository) UpdateStatus(id string, status string) error {
	args := m.Called(id, status)
	return args.Error(0)
}

func (m *MockOrderRepository) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) Stats() (repositories.OrderStats, error) {
	args := m.Called()
	return args.Get(0).(repositories.OrderStats), args.Error(1)
}

func newAnalyticsMocks() (*MockUserRepository, *MockProductRepository, *MockCategoryRepository, *MockOrderRepository, *services.AnalyticsService) {
	userRepo := new(MockUserRepository)
	productRepo := new(MockProductRepository)
	categoryRepo := new(MockCategoryRepository)
	orderRepo := new(MockOrderRepository)
	service := services.NewAnalyticsService(userRepo, productRepo, categoryRepo, orderRepo)
	return userRepo, productRepo, categoryRepo, orderRepo, service
}

func TestAnalyticsService_PlatformAnalytics(t *testing.T) {
	userRepo, productRepo, categoryRepo, orderRepo, service := newAnalyticsMocks()

	userRepo.On("Count").Return(int64(40), nil).Once()
	orderRepo.On("Count").Return(int64(120), nil).Once()
	productRepo.On("Count").Return(int64(25), nil).Once()
	categoryRepo.On("Count").Return(int64(4), nil).Once()
	userRepo.On("CountActive").Return(int64(33), nil).Once()
	userRepo.On("CountWithRole", models.RoleAdmin).Return(int64(2), nil).Once()

	data, err := service.PlatformAnalytics()
	assert.NoError(t, err)
	assert.Equal(t, int64(40), data.TotalOverview.TotalUsers)
	assert.Equal(t, int64(120), data.TotalOverview.TotalOrders)
	assert.Equal(t, int64(25), data.TotalOverview.TotalProducts)
	assert.Equal(t, int64(4), data.TotalOverview.TotalCategories)
	assert.Equal(t, int64(33), data.PlatformOverview.ActiveUsers)
	assert.Equal(t, int64(2), data.PlatformOverview.ApprovedVendors)
	assert.Equal(t, int64(0), data.PlatformOverview.PendingVendorRequests)
	assert.Equal(t, int64(40), data.PlatformDistribution.Users)
	assert.Equal(t, int64(120), data.PlatformDistribution.Orders)

	userRepo.AssertExpectations(t)
	productRepo.AssertExpectations(t)
	categoryRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
}

func TestAnalyticsService_DetailedAnalytics(t *testing.T) {
	userRepo, productRepo, categoryRepo, orderRepo, service := newAnalyticsMocks()

	tshirts := "T-Shirts"
	userRepo.On("Count").Return(int64(10), nil).Once()
	orderRepo.On("Count").Return(int64(3), nil).Once()
	productRepo.On("Count").Return(int64(7), nil).Once()
	categoryRepo.On("Count").Return(int64(2), nil).Once()
	userRepo.On("CountActive").Return(int64(8), nil).Once()
	orderRepo.On("Stats").Return(repositories.OrderStats{
		TotalOrders:   3,
		TotalRevenue:  300,
		AvgOrderValue: 100,
	}, nil).Once()
	productRepo.On("CountBySubcategory").Return([]repositories.SubcategoryProductCount{
		{Subcategory: &tshirts, ProductCount: 5},
		{Subcategory: nil, ProductCount: 2}, // subcategory deleted, row survives
	}, nil).Once()

	data, err := service.DetailedAnalytics()
	assert.NoError(t, err)
	assert.Equal(t, int64(10), data.Summary.TotalUsers)
	assert.Equal(t, int64(8), data.Summary.ActiveUsers)
	assert.Equal(t, int64(2), data.Summary.InactiveUsers)
	assert.Equal(t, float64(300), data.OrderMetrics.TotalRevenue)
	assert.Len(t, data.ProductsByCategory, 2)
	assert.Nil(t, data.ProductsByCategory[1].Subcategory)
	assert.Equal(t, int64(2), data.ProductsByCategory[1].ProductCount)
}

func TestAnalyticsService_DetailedAnalytics_EmptyCollections(t *testing.T) {
	userRepo, productRepo, categoryRepo, orderRepo, service := newAnalyticsMocks()

	userRepo.On("Count").Return(int64(0), nil).Once()
	orderRepo.On("Count").Return(int64(0), nil).Once()
	productRepo.On("Count").Return(int64(0), nil).Once()
	categoryRepo.On("Count").Return(int64(0), nil).Once()
	userRepo.On("CountActive").Return(int64(0), nil).Once()
	orderRepo.On("Stats").Return(repositories.OrderStats{}, nil).Once()
	productRepo.On("CountBySubcategory").Return([]repositories.SubcategoryProductCount(nil), nil).Once()

	data, err := service.DetailedAnalytics()
	assert.NoError(t, err)
	assert.Equal(t, int64(0), data.OrderMetrics.TotalOrders)
	assert.Equal(t, float64(0), data.OrderMetrics.TotalRevenue)
	assert.Equal(t, float64(0), data.OrderMetrics.AvgOrderValue)
	assert.NotNil(t, data.ProductsByCategory)
	assert.Empty(t, data.ProductsByCategory)
}

func TestAnalyticsService_UserStats(t *testing.T) {
	userRepo, _, _, _, service := newAnalyticsMocks()

	userRepo.On("Count").Return(int64(12), nil).Once()
	userRepo.On("CountActive").Return(int64(9), nil).Once()
	userRepo.On("CountByRole").Return([]repositories.RoleCount{
		{Role: models.RoleAdmin, Count: 2},
		{Role: models.RoleCustomer, Count: 10},
	}, nil).Once()

	data, err := service.UserStats()
	assert.NoError(t, err)
	assert.Equal(t, int64(12), data.TotalUsers)
	assert.Equal(t, int64(9), data.ActiveUsers)
	assert.Equal(t, int64(3), data.InactiveUsers)
	assert.Len(t, data.UsersByRole, 2)
	userRepo.AssertExpectations(t)
}
