package entity

import (
	"time"
)

// AppointmentStatus represents the status of an appointment.
type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCanceled  AppointmentStatus = "canceled"
)

// ValidAppointmentStatus reports whether s is a known status value.
func ValidAppointmentStatus(s AppointmentStatus) bool {
	switch s {
	case AppointmentStatusPending, AppointmentStatusConfirmed, AppointmentStatusCanceled:
		return true
	}
	return false
}

// Appointment links a patient and a doctor at an exact timestamp. The
// (doctor_id, appointment_date) pair is the uniqueness unit for booking
// conflicts; the database carries the authoritative unique constraint.
// Status is nullable: a caller that does not set it gets NULL, not pending.
type Appointment struct {
	ID              int64              `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID       int64              `gorm:"not null;index" json:"patient_id"`
	DoctorID        int64              `gorm:"not null;uniqueIndex:uq_appointments_doctor_slot" json:"doctor_id"`
	AppointmentDate time.Time          `gorm:"not null;uniqueIndex:uq_appointments_doctor_slot" json:"appointment_date"`
	Reason          string             `gorm:"type:text" json:"reason,omitempty"`
	Status          *AppointmentStatus `gorm:"type:varchar(20)" json:"status"`
	CreatedAt       time.Time          `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time          `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient *User `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor  *User `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// InvolvesDoctor reports whether userID is the appointment's doctor.
func (a *Appointment) InvolvesDoctor(userID int64) bool {
	return a.DoctorID == userID
}

// InvolvesPatient reports whether userID is the appointment's patient.
func (a *Appointment) InvolvesPatient(userID int64) bool {
	return a.PatientID == userID
}
