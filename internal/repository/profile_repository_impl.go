package repository

import (
	"errors"

	"clinic-appointment-api/internal/domain/entity"
	domainRepo "clinic-appointment-api/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type profileRepository struct{}

func NewProfileRepository() domainRepo.ProfileRepository {
	return &profileRepository{}
}

func (r *profileRepository) Create(db *gorm.DB, profile *entity.Profile) error {
	return db.Create(profile).Error
}

func (r *profileRepository) FindByID(db *gorm.DB, id int64) (*entity.Profile, error) {
	var profile entity.Profile
	err := db.Preload("User").Where("id = ?", id).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) FindByUserID(db *gorm.DB, userID int64) (*entity.Profile, error) {
	var profile entity.Profile
	err := db.Preload("User").Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) Update(db *gorm.DB, profile *entity.Profile) error {
	return db.Omit(clause.Associations).Save(profile).Error
}
