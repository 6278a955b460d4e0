package repository

import (
	"clinic-appointment-api/internal/domain/entity"

	"gorm.io/gorm"
)

type ProfileRepository interface {
	Create(db *gorm.DB, profile *entity.Profile) error
	FindByID(db *gorm.DB, id int64) (*entity.Profile, error)
	FindByUserID(db *gorm.DB, userID int64) (*entity.Profile, error)
	Update(db *gorm.DB, profile *entity.Profile) error
}
