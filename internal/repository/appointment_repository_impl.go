package repository

import (
	"errors"
	"time"

	"clinic-appointment-api/internal/domain/entity"
	domainRepo "clinic-appointment-api/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Create(appointment).Error
}

func (r *appointmentRepository) FindByID(db *gorm.DB, id int64) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Preload("Doctor.Profile").Preload("Patient.Profile").
		Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindAll(db *gorm.DB) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Preload("Doctor.Profile").Preload("Patient.Profile").
		Order("id ASC").Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByDoctorID(db *gorm.DB, doctorID int64) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Preload("Doctor.Profile").Preload("Patient.Profile").
		Where("doctor_id = ?", doctorID).
		Order("id ASC").Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByPatientID(db *gorm.DB, patientID int64) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Preload("Doctor.Profile").Preload("Patient.Profile").
		Where("patient_id = ?", patientID).
		Order("id ASC").Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

// ExistsByDoctorAndDate is the exact-timestamp slot-conflict check. The
// unique index on (doctor_id, appointment_date) remains authoritative; this
// pre-check only produces a friendlier error before the insert races.
func (r *appointmentRepository) ExistsByDoctorAndDate(db *gorm.DB, doctorID int64, date time.Time) (bool, error) {
	var count int64
	err := db.Model(&entity.Appointment{}).
		Where("doctor_id = ? AND appointment_date = ?", doctorID, date).
		Count(&count).Error
	return count > 0, err
}

func (r *appointmentRepository) Update(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Omit(clause.Associations).Save(appointment).Error
}

func (r *appointmentRepository) Delete(db *gorm.DB, id int64) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Appointment{})
	return result.RowsAffected, result.Error
}
