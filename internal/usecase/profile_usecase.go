package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"clinic-appointment-api/internal/converter"
	"clinic-appointment-api/internal/delivery/dto"
	"clinic-appointment-api/internal/domain/entity"
	"clinic-appointment-api/internal/domain/policy"
	"clinic-appointment-api/internal/domain/repository"
	"clinic-appointment-api/internal/service"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrProfileNotFound   = errors.New("profile not found")
	ErrForbidden         = errors.New("permission denied")
	ErrInvalidDateFormat = errors.New("invalid date format, use YYYY-MM-DD")
	ErrInvalidFees       = errors.New("invalid consultation fees")
)

type ProfileUsecase interface {
	GetMyProfile(ctx context.Context, actor entity.Actor) (*dto.ProfileResponse, error)
	UpdateMyProfile(ctx context.Context, actor entity.Actor, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error)
	GetProfile(ctx context.Context, actor entity.Actor, profileID int64) (*dto.ProfileResponse, error)
	UpdateProfile(ctx context.Context, actor entity.Actor, profileID int64, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error)
	DeleteProfile(ctx context.Context, actor entity.Actor, profileID int64) error
}

type profileUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	userRepo     repository.UserRepository
	profileRepo  repository.ProfileRepository
	auditService service.AuditService
}

func NewProfileUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	profileRepo repository.ProfileRepository,
	auditService service.AuditService,
) ProfileUsecase {
	return &profileUsecase{
		db:           db,
		log:          log,
		userRepo:     userRepo,
		profileRepo:  profileRepo,
		auditService: auditService,
	}
}

func (u *profileUsecase) GetMyProfile(ctx context.Context, actor entity.Actor) (*dto.ProfileResponse, error) {
	profile, err := u.profileRepo.FindByUserID(u.db.WithContext(ctx), actor.ID)
	if err != nil {
		u.log.Warnf("Failed to find profile for user %d: %+v", actor.ID, err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}

	return converter.ShapeProfile(profile, profile.User.Role), nil
}

func (u *profileUsecase) UpdateMyProfile(ctx context.Context, actor entity.Actor, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	profile, err := u.profileRepo.FindByUserID(u.db.WithContext(ctx), actor.ID)
	if err != nil {
		u.log.Warnf("Failed to find profile for user %d: %+v", actor.ID, err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}

	return u.saveProfile(ctx, actor, profile, req)
}

func (u *profileUsecase) GetProfile(ctx context.Context, actor entity.Actor, profileID int64) (*dto.ProfileResponse, error) {
	profile, err := u.profileRepo.FindByID(u.db.WithContext(ctx), profileID)
	if err != nil {
		u.log.Warnf("Failed to find profile %d: %+v", profileID, err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}

	if !policy.CanReadProfile(actor, profile.UserID, profile.User.Role) {
		return nil, ErrForbidden
	}

	return converter.ShapeProfile(profile, profile.User.Role), nil
}

func (u *profileUsecase) UpdateProfile(ctx context.Context, actor entity.Actor, profileID int64, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	profile, err := u.profileRepo.FindByID(u.db.WithContext(ctx), profileID)
	if err != nil {
		u.log.Warnf("Failed to find profile %d: %+v", profileID, err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}

	if !policy.CanMutateProfile(actor, profile.UserID, profile.User.Role) {
		return nil, ErrForbidden
	}

	return u.saveProfile(ctx, actor, profile, req)
}

func (u *profileUsecase) saveProfile(ctx context.Context, actor entity.Actor, profile *entity.Profile, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	oldValue := converter.ShapeProfile(profile, profile.User.Role)

	if err := applyProfilePatch(profile, req); err != nil {
		return nil, err
	}
	profile.RecalculateAge(time.Now().UTC())

	if err := u.profileRepo.Update(tx, profile); err != nil {
		u.log.Warnf("Failed to update profile %d: %+v", profile.ID, err)
		return nil, err
	}

	newValue := converter.ShapeProfile(profile, profile.User.Role)
	if err := u.auditService.LogUpdate(ctx, tx, &actor.ID, entity.AuditActionProfileUpdate, "profile", fmt.Sprint(profile.ID), oldValue, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return newValue, nil
}

// DeleteProfile removes the profile and its owning user as one atomic
// operation. Self-delete and admin-delete run through this same path; the
// foreign key cascade removes the profile and the user's appointments.
func (u *profileUsecase) DeleteProfile(ctx context.Context, actor entity.Actor, profileID int64) error {
	profile, err := u.profileRepo.FindByID(u.db.WithContext(ctx), profileID)
	if err != nil {
		u.log.Warnf("Failed to find profile %d: %+v", profileID, err)
		return err
	}
	if profile == nil {
		return ErrProfileNotFound
	}

	if !policy.CanDeleteProfile(actor, profile.UserID, profile.User.Role) {
		return ErrForbidden
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	oldValue := converter.ShapeProfile(profile, profile.User.Role)

	affected, err := u.userRepo.Delete(tx, profile.UserID)
	if err != nil {
		u.log.Warnf("Failed to delete user %d: %+v", profile.UserID, err)
		return err
	}
	if affected == 0 {
		return ErrProfileNotFound
	}

	if err := u.auditService.LogDelete(ctx, tx, &actor.ID, entity.AuditActionProfileDelete, "profile", fmt.Sprint(profile.ID), oldValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

// applyProfilePatch copies non-empty request fields onto the profile.
// A supplied age only sticks when no date of birth is stored; otherwise the
// age is recomputed from the date of birth before the save.
func applyProfilePatch(profile *entity.Profile, req *dto.UpdateProfileRequest) error {
	if req.FirstName != "" {
		profile.FirstName = req.FirstName
	}
	if req.MiddleName != "" {
		profile.MiddleName = req.MiddleName
	}
	if req.LastName != "" {
		profile.LastName = req.LastName
	}
	if req.Gender != "" {
		profile.Gender = req.Gender
	}
	if req.PhoneNumber != "" {
		profile.PhoneNumber = req.PhoneNumber
	}
	if req.Address != "" {
		profile.Address = req.Address
	}
	if req.DateOfBirth != "" {
		dob, err := time.Parse("2006-01-02", req.DateOfBirth)
		if err != nil {
			return ErrInvalidDateFormat
		}
		profile.DateOfBirth = &dob
	}
	if req.Age != nil && profile.DateOfBirth == nil {
		profile.Age = req.Age
	}
	if req.MedicalHistory != "" {
		profile.MedicalHistory = req.MedicalHistory
	}
	if req.Specialization != "" {
		profile.Specialization = req.Specialization
	}
	if req.ConsultationFees != "" {
		fees, err := decimal.NewFromString(req.ConsultationFees)
		if err != nil {
			return ErrInvalidFees
		}
		profile.ConsultationFees = &fees
	}
	if req.LicenseNumber != "" {
		profile.LicenseNumber = req.LicenseNumber
	}
	return nil
}
