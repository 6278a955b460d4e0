package usecase

import (
	"context"
	"fmt"
	"time"

	"clinic-appointment-api/internal/converter"
	"clinic-appointment-api/internal/delivery/dto"
	"clinic-appointment-api/internal/domain/entity"
	"clinic-appointment-api/internal/domain/policy"
	"clinic-appointment-api/internal/domain/repository"
	"clinic-appointment-api/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// DirectoryUsecase serves the patient and doctor directories. The patient
// list is restricted to doctors and admins; the doctor list is open to all
// three roles so patients can browse doctors when booking.
type DirectoryUsecase interface {
	ListPatients(ctx context.Context, actor entity.Actor) (*dto.UserListResponse, error)
	GetPatient(ctx context.Context, actor entity.Actor, id int64) (*dto.UserResponse, error)
	UpdatePatient(ctx context.Context, actor entity.Actor, id int64, req *dto.UpdateUserRequest) (*dto.UserResponse, error)
	DeletePatient(ctx context.Context, actor entity.Actor, id int64) error

	ListDoctors(ctx context.Context, actor entity.Actor) (*dto.UserListResponse, error)
	GetDoctor(ctx context.Context, actor entity.Actor, id int64) (*dto.UserResponse, error)
	UpdateDoctor(ctx context.Context, actor entity.Actor, id int64, req *dto.UpdateUserRequest) (*dto.UserResponse, error)
	DeleteDoctor(ctx context.Context, actor entity.Actor, id int64) error

	GetUserAuditTrail(ctx context.Context, actor entity.Actor, userID int64, limit int) (*dto.AuditLogListResponse, error)
}

type directoryUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	userRepo     repository.UserRepository
	profileRepo  repository.ProfileRepository
	auditService service.AuditService
}

func NewDirectoryUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	profileRepo repository.ProfileRepository,
	auditService service.AuditService,
) DirectoryUsecase {
	return &directoryUsecase{
		db:           db,
		log:          log,
		userRepo:     userRepo,
		profileRepo:  profileRepo,
		auditService: auditService,
	}
}

func (u *directoryUsecase) ListPatients(ctx context.Context, actor entity.Actor) (*dto.UserListResponse, error) {
	if !policy.CanListPatients(actor.Role) {
		return nil, ErrForbidden
	}
	return u.listByRole(ctx, entity.RolePatient)
}

func (u *directoryUsecase) GetPatient(ctx context.Context, actor entity.Actor, id int64) (*dto.UserResponse, error) {
	if !policy.CanManagePatient(actor.Role) {
		return nil, ErrForbidden
	}
	return u.getByRole(ctx, entity.RolePatient, id, ErrPatientNotFound)
}

func (u *directoryUsecase) UpdatePatient(ctx context.Context, actor entity.Actor, id int64, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if !policy.CanManagePatient(actor.Role) {
		return nil, ErrForbidden
	}
	return u.updateByRole(ctx, actor, entity.RolePatient, id, req, ErrPatientNotFound)
}

func (u *directoryUsecase) DeletePatient(ctx context.Context, actor entity.Actor, id int64) error {
	if !policy.CanManagePatient(actor.Role) {
		return ErrForbidden
	}
	return u.deleteByRole(ctx, actor, entity.RolePatient, id, ErrPatientNotFound)
}

func (u *directoryUsecase) ListDoctors(ctx context.Context, actor entity.Actor) (*dto.UserListResponse, error) {
	if !policy.CanListDoctors(actor.Role) {
		return nil, ErrForbidden
	}
	return u.listByRole(ctx, entity.RoleDoctor)
}

func (u *directoryUsecase) GetDoctor(ctx context.Context, actor entity.Actor, id int64) (*dto.UserResponse, error) {
	if !policy.CanManageDoctor(actor.Role) {
		return nil, ErrForbidden
	}
	return u.getByRole(ctx, entity.RoleDoctor, id, ErrDoctorNotFound)
}

func (u *directoryUsecase) UpdateDoctor(ctx context.Context, actor entity.Actor, id int64, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if !policy.CanManageDoctor(actor.Role) {
		return nil, ErrForbidden
	}
	return u.updateByRole(ctx, actor, entity.RoleDoctor, id, req, ErrDoctorNotFound)
}

func (u *directoryUsecase) DeleteDoctor(ctx context.Context, actor entity.Actor, id int64) error {
	if !policy.CanManageDoctor(actor.Role) {
		return ErrForbidden
	}
	return u.deleteByRole(ctx, actor, entity.RoleDoctor, id, ErrDoctorNotFound)
}

// GetUserAuditTrail returns the newest audit entries recorded for a user.
func (u *directoryUsecase) GetUserAuditTrail(ctx context.Context, actor entity.Actor, userID int64, limit int) (*dto.AuditLogListResponse, error) {
	if !policy.CanViewAuditTrail(actor.Role) {
		return nil, ErrForbidden
	}

	user, err := u.userRepo.FindByID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find user %d: %+v", userID, err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	logs, err := u.auditService.Trail(ctx, u.db, userID, limit)
	if err != nil {
		u.log.Warnf("Failed to load audit trail for user %d: %+v", userID, err)
		return nil, err
	}

	return &dto.AuditLogListResponse{
		Logs:  converter.AuditLogsToResponses(logs),
		Total: len(logs),
	}, nil
}

func (u *directoryUsecase) listByRole(ctx context.Context, role entity.Role) (*dto.UserListResponse, error) {
	users, err := u.userRepo.FindByRole(u.db.WithContext(ctx), role)
	if err != nil {
		u.log.Warnf("Failed to list %s users: %+v", role, err)
		return nil, err
	}

	return &dto.UserListResponse{
		Users: converter.UsersToResponses(users),
		Total: len(users),
	}, nil
}

func (u *directoryUsecase) getByRole(ctx context.Context, role entity.Role, id int64, notFound error) (*dto.UserResponse, error) {
	user, err := u.userRepo.FindByRoleAndID(u.db.WithContext(ctx), role, id)
	if err != nil {
		u.log.Warnf("Failed to find %s %d: %+v", role, id, err)
		return nil, err
	}
	if user == nil {
		return nil, notFound
	}

	return converter.UserToResponse(user), nil
}

func (u *directoryUsecase) updateByRole(ctx context.Context, actor entity.Actor, role entity.Role, id int64, req *dto.UpdateUserRequest, notFound error) (*dto.UserResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user, err := u.userRepo.FindByRoleAndID(tx, role, id)
	if err != nil {
		u.log.Warnf("Failed to find %s %d: %+v", role, id, err)
		return nil, err
	}
	if user == nil {
		return nil, notFound
	}

	oldValue := converter.UserToResponse(user)

	if req.Username != "" {
		user.Username = req.Username
	}
	if req.Email != "" {
		user.Email = req.Email
	}

	if err := u.userRepo.Update(tx, user); err != nil {
		if isDuplicateKeyError(err, "username") {
			return nil, ErrUsernameTaken
		}
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailTaken
		}
		u.log.Warnf("Failed to update %s %d: %+v", role, id, err)
		return nil, err
	}

	if req.Profile != nil && user.Profile != nil {
		if err := applyProfilePatch(user.Profile, req.Profile); err != nil {
			return nil, err
		}
		user.Profile.RecalculateAge(time.Now().UTC())

		if err := u.profileRepo.Update(tx, user.Profile); err != nil {
			u.log.Warnf("Failed to update profile for %s %d: %+v", role, id, err)
			return nil, err
		}
	}

	newValue := converter.UserToResponse(user)
	if err := u.auditService.LogUpdate(ctx, tx, &actor.ID, entity.AuditActionProfileUpdate, "user", fmt.Sprint(id), oldValue, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return newValue, nil
}

func (u *directoryUsecase) deleteByRole(ctx context.Context, actor entity.Actor, role entity.Role, id int64, notFound error) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user, err := u.userRepo.FindByRoleAndID(tx, role, id)
	if err != nil {
		u.log.Warnf("Failed to find %s %d: %+v", role, id, err)
		return err
	}
	if user == nil {
		return notFound
	}

	oldValue := converter.UserToResponse(user)

	affected, err := u.userRepo.Delete(tx, id)
	if err != nil {
		u.log.Warnf("Failed to delete %s %d: %+v", role, id, err)
		return err
	}
	if affected == 0 {
		return notFound
	}

	if err := u.auditService.LogDelete(ctx, tx, &actor.ID, entity.AuditActionUserDelete, "user", fmt.Sprint(id), oldValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}
