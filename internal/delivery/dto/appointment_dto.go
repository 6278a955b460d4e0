package dto

import (
	"time"
)

// Request DTOs

// CreateAppointmentRequest carries a new booking. Which of PatientID /
// DoctorID is required depends on the actor's role: a doctor supplies the
// patient, a patient supplies the doctor, an admin supplies both.
type CreateAppointmentRequest struct {
	PatientID       *int64    `json:"patient_id"`
	DoctorID        *int64    `json:"doctor_id"`
	AppointmentDate time.Time `json:"appointment_date" validate:"required"`
	Reason          string    `json:"reason" validate:"omitempty"`
	Status          *string   `json:"status" validate:"omitempty,oneof=pending confirmed canceled"`
}

// UpdateAppointmentRequest is a partial patch. Nil fields are left alone.
// Status, when present, is always applied regardless of the actor's role.
type UpdateAppointmentRequest struct {
	AppointmentDate *time.Time `json:"appointment_date"`
	Reason          *string    `json:"reason"`
	Status          *string    `json:"status" validate:"omitempty,oneof=pending confirmed canceled"`
}

// Response DTOs

type AppointmentResponse struct {
	ID              int64         `json:"id"`
	PatientID       int64         `json:"patient_id"`
	DoctorID        int64         `json:"doctor_id"`
	AppointmentDate time.Time     `json:"appointment_date"`
	Reason          string        `json:"reason,omitempty"`
	Status          *string       `json:"status"`
	PatientDetail   *UserResponse `json:"patient_detail,omitempty"`
	DoctorDetail    *UserResponse `json:"doctor_detail,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
