package services

import (
	"fmt"

	"katalog/internal/models"
	"katalog/internal/repositories"
)

// TotalOverview holds the platform-wide entity counts.
type TotalOverview struct {
	TotalUsers      int64 `json:"totalUsers"`
	TotalOrders     int64 `json:"totalOrders"`
	TotalProducts   int64 `json:"totalProducts"`
	TotalCategories int64 `json:"totalCategories"`
}

// PlatformOverview holds the user-facing platform health counts.
// ApprovedVendors counts admin-role users: a stand-in until a dedicated
// vendor-approval model exists, at which point PendingVendorRequests stops
// being a constant zero as well.
type PlatformOverview struct {
	ActiveUsers           int64 `json:"activeUsers"`
	ApprovedVendors       int64 `json:"approvedVendors"`
	PendingVendorRequests int64 `json:"pendingVendorRequests"`
}

// PlatformDistribution mirrors the totals keyed for chart rendering.
type PlatformDistribution struct {
	Users      int64 `json:"users"`
	Products   int64 `json:"products"`
	Categories int64 `json:"categories"`
	Orders     int64 `json:"orders"`
}

// PlatformAnalytics is the platform overview response payload.
type PlatformAnalytics struct {
	TotalOverview        TotalOverview        `json:"totalOverview"`
	PlatformOverview     PlatformOverview     `json:"platformOverview"`
	PlatformDistribution PlatformDistribution `json:"platformDistribution"`
}

// AnalyticsSummary holds the headline counts of the detailed report.
type AnalyticsSummary struct {
	TotalUsers      int64 `json:"totalUsers"`
	ActiveUsers     int64 `json:"activeUsers"`
	InactiveUsers   int64 `json:"inactiveUsers"`
	TotalOrders     int64 `json:"totalOrders"`
	TotalProducts   int64 `json:"totalProducts"`
	TotalCategories int64 `json:"totalCategories"`
}

// DetailedAnalytics is the detailed analytics response payload.
type DetailedAnalytics struct {
	Summary            AnalyticsSummary                       `json:"summary"`
	OrderMetrics       repositories.OrderStats                `json:"orderMetrics"`
	ProductsByCategory []repositories.SubcategoryProductCount `json:"productsByCategory"`
}

// UserStats is the user statistics response payload.
type UserStats struct {
	TotalUsers    int64                    `json:"totalUsers"`
	ActiveUsers   int64                    `json:"activeUsers"`
	InactiveUsers int64                    `json:"inactiveUsers"`
	UsersByRole   []repositories.RoleCount `json:"usersByRole"`
}

// AnalyticsService computes read-only platform statistics on demand by
// scanning the backing collections. Nothing is cached or persisted; all
// operations are idempotent and tolerate empty collections.
type AnalyticsService struct {
	userRepo     repositories.UserRepository
	productRepo  repositories.ProductRepository
	categoryRepo repositories.CategoryRepository
	orderRepo    repositories.OrderRepository
}

// NewAnalyticsService creates a new AnalyticsService.
func NewAnalyticsService(userRepo repositories.UserRepository, productRepo repositories.ProductRepository, categoryRepo repositories.CategoryRepository, orderRepo repositories.OrderRepository) *AnalyticsService {
	return &AnalyticsService{
		userRepo:     userRepo,
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		orderRepo:    orderRepo,
	}
}

func (s *AnalyticsService) totals() (TotalOverview, error) {
	totalUsers, err := s.userRepo.Count()
	if err != nil {
		return TotalOverview{}, fmt.Errorf("failed to count users: %w", err)
	}
	totalOrders, err := s.orderRepo.Count()
	if err != nil {
		return TotalOverview{}, fmt.Errorf("failed to count orders: %w", err)
	}
	totalProducts, err := s.productRepo.Count()
	if err != nil {
		return TotalOverview{}, fmt.Errorf("failed to count products: %w", err)
	}
	totalCategories, err := s.categoryRepo.Count()
	if err != nil {
		return TotalOverview{}, fmt.Errorf("failed to count categories: %w", err)
	}
	return TotalOverview{
		TotalUsers:      totalUsers,
		TotalOrders:     totalOrders,
		TotalProducts:   totalProducts,
		TotalCategories: totalCategories,
	}, nil
}

// PlatformAnalytics computes the platform overview counts.
func (s *AnalyticsService) PlatformAnalytics() (*PlatformAnalytics, error) {
	totals, err := s.totals()
	if err != nil {
		return nil, err
	}
	activeUsers, err := s.userRepo.CountActive()
	if err != nil {
		return nil, fmt.Errorf("failed to count active users: %w", err)
	}
	// Stand-in until vendor approval exists: admins count as approved
	// vendors and no requests can be pending.
	approvedVendors, err := s.userRepo.CountWithRole(models.RoleAdmin)
	if err != nil {
		return nil, fmt.Errorf("failed to count vendors: %w", err)
	}

	return &PlatformAnalytics{
		TotalOverview: totals,
		PlatformOverview: PlatformOverview{
			ActiveUsers:           activeUsers,
			ApprovedVendors:       approvedVendors,
			PendingVendorRequests: 0,
		},
		PlatformDistribution: PlatformDistribution{
			Users:      totals.TotalUsers,
			Products:   totals.TotalProducts,
			Categories: totals.TotalCategories,
			Orders:     totals.TotalOrders,
		},
	}, nil
}

// DetailedAnalytics computes the summary counts, the order aggregate and
// the per-subcategory product breakdown.
func (s *AnalyticsService) DetailedAnalytics() (*DetailedAnalytics, error) {
	totals, err := s.totals()
	if err != nil {
		return nil, err
	}
	activeUsers, err := s.userRepo.CountActive()
	if err != nil {
		return nil, fmt.Errorf("failed to count active users: %w", err)
	}
	orderStats, err := s.orderRepo.Stats()
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate orders: %w", err)
	}
	productsByCategory, err := s.productRepo.CountBySubcategory()
	if err != nil {
		return nil, fmt.Errorf("failed to break down products by subcategory: %w", err)
	}
	if productsByCategory == nil {
		productsByCategory = []repositories.SubcategoryProductCount{}
	}

	return &DetailedAnalytics{
		Summary: AnalyticsSummary{
			TotalUsers:      totals.TotalUsers,
			ActiveUsers:     activeUsers,
			InactiveUsers:   totals.TotalUsers - activeUsers,
			TotalOrders:     totals.TotalOrders,
			TotalProducts:   totals.TotalProducts,
			TotalCategories: totals.TotalCategories,
		},
		OrderMetrics:       orderStats,
		ProductsByCategory: productsByCategory,
	}, nil
}

// UserStats computes the user counts and the users-by-role histogram.
func (s *AnalyticsService) UserStats() (*UserStats, error) {
	totalUsers, err := s.userRepo.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	activeUsers, err := s.userRepo.CountActive()
	if err != nil {
		return nil, fmt.Errorf("failed to count active users: %w", err)
	}
	usersByRole, err := s.userRepo.CountByRole()
	if err != nil {
		return nil, fmt.Errorf("failed to count users by role: %w", err)
	}
	if usersByRole == nil {
		usersByRole = []repositories.RoleCount{}
	}

	return &UserStats{
		TotalUsers:    totalUsers,
		ActiveUsers:   activeUsers,
		InactiveUsers: totalUsers - activeUsers,
		UsersByRole:   usersByRole,
	}, nil
}
