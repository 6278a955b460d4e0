package repository

import (
	"time"

	"clinic-appointment-api/internal/domain/entity"

	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id int64) (*entity.Appointment, error)
	FindAll(db *gorm.DB) ([]entity.Appointment, error)
	FindByDoctorID(db *gorm.DB, doctorID int64) ([]entity.Appointment, error)
	FindByPatientID(db *gorm.DB, patientID int64) ([]entity.Appointment, error)
	ExistsByDoctorAndDate(db *gorm.DB, doctorID int64, date time.Time) (bool, error)
	Update(db *gorm.DB, appointment *entity.Appointment) error
	Delete(db *gorm.DB, id int64) (int64, error)
}
