package repository

import (
	"clinic-appointment-api/internal/domain/entity"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(db *gorm.DB, user *entity.User) error
	FindByID(db *gorm.DB, id int64) (*entity.User, error)
	FindByUsername(db *gorm.DB, username string) (*entity.User, error)
	FindByRoleAndID(db *gorm.DB, role entity.Role, id int64) (*entity.User, error)
	FindByRole(db *gorm.DB, role entity.Role) ([]entity.User, error)
	ExistsByUsername(db *gorm.DB, username string) (bool, error)
	ExistsByEmail(db *gorm.DB, email string) (bool, error)
	Update(db *gorm.DB, user *entity.User) error
	Delete(db *gorm.DB, id int64) (int64, error)
}
