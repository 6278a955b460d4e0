package converter

import (
	"clinic-appointment-api/internal/delivery/dto"
	"clinic-appointment-api/internal/domain/entity"
)

// ShapeProfile renders a profile for output. Role-conditional fields are
// included based on the OWNING user's role, never the requester's: doctor
// profiles surface specialization, license number and consultation fees
// (fees as a string); patient profiles surface medical history. Admin
// profiles surface neither group.
func ShapeProfile(profile *entity.Profile, ownerRole entity.Role) *dto.ProfileResponse {
	if profile == nil {
		return nil
	}

	response := &dto.ProfileResponse{
		ID:          profile.ID,
		UserID:      profile.UserID,
		FirstName:   profile.FirstName,
		MiddleName:  profile.MiddleName,
		LastName:    profile.LastName,
		Gender:      profile.Gender,
		PhoneNumber: profile.PhoneNumber,
		Address:     profile.Address,
		Age:         profile.Age,
	}

	if profile.DateOfBirth != nil {
		response.DateOfBirth = profile.DateOfBirth.Format("2006-01-02")
	}

	switch ownerRole {
	case entity.RoleDoctor:
		specialization := profile.Specialization
		licenseNumber := profile.LicenseNumber
		fees := ""
		if profile.ConsultationFees != nil {
			fees = profile.ConsultationFees.String()
		}
		response.Specialization = &specialization
		response.LicenseNumber = &licenseNumber
		response.ConsultationFees = &fees
	case entity.RolePatient:
		medicalHistory := profile.MedicalHistory
		response.MedicalHistory = &medicalHistory
	}

	return response
}
