package converter

import (
	"clinic-appointment-api/internal/delivery/dto"
	"clinic-appointment-api/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to its DTO.
// Doctor and patient details are included when preloaded.
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	response := &dto.AppointmentResponse{
		ID:              appointment.ID,
		PatientID:       appointment.PatientID,
		DoctorID:        appointment.DoctorID,
		AppointmentDate: appointment.AppointmentDate,
		Reason:          appointment.Reason,
		CreatedAt:       appointment.CreatedAt,
		UpdatedAt:       appointment.UpdatedAt,
	}

	if appointment.Status != nil {
		status := string(*appointment.Status)
		response.Status = &status
	}
	if appointment.Patient != nil {
		response.PatientDetail = UserToResponse(appointment.Patient)
	}
	if appointment.Doctor != nil {
		response.DoctorDetail = UserToResponse(appointment.Doctor)
	}

	return response
}

// AppointmentsToResponses converts a slice of Appointment entities.
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i])
	}
	return responses
}
