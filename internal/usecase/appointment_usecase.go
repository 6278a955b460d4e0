package usecase

import (
	"context"
	"errors"
	"fmt"

	"clinic-appointment-api/internal/converter"
	"clinic-appointment-api/internal/delivery/dto"
	"clinic-appointment-api/internal/domain/entity"
	"clinic-appointment-api/internal/domain/policy"
	"clinic-appointment-api/internal/domain/repository"
	"clinic-appointment-api/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrPatientIDRequired   = errors.New("patient id must be provided")
	ErrDoctorIDRequired    = errors.New("doctor id must be provided")
	ErrPatientNotFound     = errors.New("patient not found")
	ErrDoctorNotFound      = errors.New("doctor not found")
	ErrSlotTaken           = errors.New("this doctor is already booked for this date")
	ErrSameParticipant     = errors.New("doctor and patient cannot be the same person")
	ErrInvalidStatus       = errors.New("invalid appointment status")
)

type AppointmentUsecase interface {
	Create(ctx context.Context, actor entity.Actor, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	List(ctx context.Context, actor entity.Actor) (*dto.AppointmentListResponse, error)
	Get(ctx context.Context, actor entity.Actor, id int64) (*dto.AppointmentResponse, error)
	Update(ctx context.Context, actor entity.Actor, id int64, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error)
	Delete(ctx context.Context, actor entity.Actor, id int64) error
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	userRepo        repository.UserRepository
	appointmentRepo repository.AppointmentRepository
	auditService    service.AuditService
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	appointmentRepo repository.AppointmentRepository,
	auditService service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		userRepo:        userRepo,
		appointmentRepo: appointmentRepo,
		auditService:    auditService,
	}
}

// resolveParticipants decides who the appointment is between. The actor
// always fills their own side: a doctor books for a patient from the
// payload, a patient books with a doctor from the payload, an admin
// supplies both. Payload ids for the actor's own side are ignored.
func resolveParticipants(actor entity.Actor, patientID, doctorID *int64) (patient int64, doctor int64, err error) {
	switch actor.Role {
	case entity.RoleDoctor:
		if patientID == nil {
			return 0, 0, ErrPatientIDRequired
		}
		return *patientID, actor.ID, nil
	case entity.RolePatient:
		if doctorID == nil {
			return 0, 0, ErrDoctorIDRequired
		}
		return actor.ID, *doctorID, nil
	case entity.RoleAdmin:
		if patientID == nil {
			return 0, 0, ErrPatientIDRequired
		}
		if doctorID == nil {
			return 0, 0, ErrDoctorIDRequired
		}
		return *patientID, *doctorID, nil
	}
	return 0, 0, ErrForbidden
}

func (u *appointmentUsecase) Create(ctx context.Context, actor entity.Actor, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	patientID, doctorID, err := resolveParticipants(actor, req.PatientID, req.DoctorID)
	if err != nil {
		return nil, err
	}
	if patientID == doctorID {
		return nil, ErrSameParticipant
	}
	if req.Status != nil && !entity.ValidAppointmentStatus(entity.AppointmentStatus(*req.Status)) {
		return nil, ErrInvalidStatus
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	// Role-constrained lookups: an id under a different role reads as
	// absent, never as a role mismatch.
	patient, err := u.userRepo.FindByRoleAndID(tx, entity.RolePatient, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %d: %+v", patientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	doctor, err := u.userRepo.FindByRoleAndID(tx, entity.RoleDoctor, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %d: %+v", doctorID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	// Slot conflict: exact timestamp match on (doctor, appointment_date).
	// The unique constraint catches the race where two requests pass this
	// check before either inserts.
	booked, err := u.appointmentRepo.ExistsByDoctorAndDate(tx, doctor.ID, req.AppointmentDate)
	if err != nil {
		u.log.Warnf("Failed slot conflict check for doctor %d: %+v", doctor.ID, err)
		return nil, err
	}
	if booked {
		return nil, ErrSlotTaken
	}

	appointment := &entity.Appointment{
		PatientID:       patient.ID,
		DoctorID:        doctor.ID,
		AppointmentDate: req.AppointmentDate,
		Reason:          req.Reason,
	}
	if req.Status != nil {
		status := entity.AppointmentStatus(*req.Status)
		appointment.Status = &status
	}

	if err := u.appointmentRepo.Create(tx, appointment); err != nil {
		if isDuplicateKeyError(err, "doctor_slot") {
			return nil, ErrSlotTaken
		}
		// Participant deleted between the lookup and the insert
		if isForeignKeyError(err, "patient") {
			return nil, ErrPatientNotFound
		}
		if isForeignKeyError(err, "doctor") {
			return nil, ErrDoctorNotFound
		}
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, &actor.ID, entity.AuditActionAppointmentCreate, "appointment", fmt.Sprint(appointment.ID), map[string]interface{}{
		"doctor_id":        appointment.DoctorID,
		"patient_id":       appointment.PatientID,
		"appointment_date": appointment.AppointmentDate,
	}); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	full, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), appointment.ID)
	if err != nil || full == nil {
		u.log.Warnf("Failed to reload appointment %d: %+v", appointment.ID, err)
		return converter.AppointmentToResponse(appointment), nil
	}

	u.log.Infof("Appointment created: id=%d, doctor=%d, patient=%d", full.ID, full.DoctorID, full.PatientID)
	return converter.AppointmentToResponse(full), nil
}

// List returns the appointments visible to the actor: admins see all,
// doctors and patients only their own side. Stable insertion order.
func (u *appointmentUsecase) List(ctx context.Context, actor entity.Actor) (*dto.AppointmentListResponse, error) {
	db := u.db.WithContext(ctx)

	var (
		appointments []entity.Appointment
		err          error
	)
	switch actor.Role {
	case entity.RoleAdmin:
		appointments, err = u.appointmentRepo.FindAll(db)
	case entity.RoleDoctor:
		appointments, err = u.appointmentRepo.FindByDoctorID(db, actor.ID)
	case entity.RolePatient:
		appointments, err = u.appointmentRepo.FindByPatientID(db, actor.ID)
	default:
		appointments = nil
	}
	if err != nil {
		u.log.Warnf("Failed to list appointments for user %d: %+v", actor.ID, err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *appointmentUsecase) Get(ctx context.Context, actor entity.Actor, id int64) (*dto.AppointmentResponse, error) {
	appointment, err := u.fetchForActor(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) Update(ctx context.Context, actor entity.Actor, id int64, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	appointment, err := u.fetchForActor(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if req.Status != nil && !entity.ValidAppointmentStatus(entity.AppointmentStatus(*req.Status)) {
		return nil, ErrInvalidStatus
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	oldValue := converter.AppointmentToResponse(appointment)
	applyAppointmentPatch(appointment, actor, req)

	if err := u.appointmentRepo.Update(tx, appointment); err != nil {
		if isDuplicateKeyError(err, "doctor_slot") {
			return nil, ErrSlotTaken
		}
		u.log.Warnf("Failed to update appointment %d: %+v", id, err)
		return nil, err
	}

	newValue := converter.AppointmentToResponse(appointment)
	if err := u.auditService.LogUpdate(ctx, tx, &actor.ID, entity.AuditActionAppointmentUpdate, "appointment", fmt.Sprint(id), oldValue, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	full, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil || full == nil {
		u.log.Warnf("Failed to reload appointment %d: %+v", id, err)
		return newValue, nil
	}
	return converter.AppointmentToResponse(full), nil
}

func (u *appointmentUsecase) Delete(ctx context.Context, actor entity.Actor, id int64) error {
	appointment, err := u.fetchForActor(ctx, actor, id)
	if err != nil {
		return err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	oldValue := converter.AppointmentToResponse(appointment)

	affected, err := u.appointmentRepo.Delete(tx, id)
	if err != nil {
		u.log.Warnf("Failed to delete appointment %d: %+v", id, err)
		return err
	}
	if affected == 0 {
		return ErrAppointmentNotFound
	}

	if err := u.auditService.LogDelete(ctx, tx, &actor.ID, entity.AuditActionAppointmentDelete, "appointment", fmt.Sprint(id), oldValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

// fetchForActor loads an appointment and applies the shared ownership
// check used by get, update and delete.
func (u *appointmentUsecase) fetchForActor(ctx context.Context, actor entity.Actor, id int64) (*entity.Appointment, error) {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %d: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	if !policy.CanTouchAppointment(actor, appointment) {
		return nil, ErrForbidden
	}

	return appointment, nil
}

// applyAppointmentPatch copies patch fields onto the appointment and
// re-pins the actor to their own side: a doctor saving an appointment stays
// its doctor, a patient stays its patient, so a patch cannot reassign the
// appointment to someone else. Status, when present, is always applied:
// any authorized actor may set any status value.
func applyAppointmentPatch(appointment *entity.Appointment, actor entity.Actor, req *dto.UpdateAppointmentRequest) {
	if req.AppointmentDate != nil {
		appointment.AppointmentDate = *req.AppointmentDate
	}
	if req.Reason != nil {
		appointment.Reason = *req.Reason
	}

	switch actor.Role {
	case entity.RoleDoctor:
		appointment.DoctorID = actor.ID
	case entity.RolePatient:
		appointment.PatientID = actor.ID
	}

	if req.Status != nil {
		status := entity.AppointmentStatus(*req.Status)
		appointment.Status = &status
	}
}
