package repositories

import "katalog/internal/models"

// RoleCount is one row of the users-by-role histogram.
type RoleCount struct {
	Role  string `json:"role"`
	Count int64  `json:"count"`
}

// UserRepository defines the interface for user data access. The counting
// methods feed the analytics aggregator.
type UserRepository interface {
	Create(user *models.User) error
	GetByUsername(username string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByID(id string) (*models.User, error)
	Count() (int64, error)
	CountActive() (int64, error)
	CountWithRole(role string) (int64, error)
	CountByRole() ([]RoleCount, error)
}
