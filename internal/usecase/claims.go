package usecase

import (
	"clinic-appointment-api/internal/domain/entity"
	"clinic-appointment-api/pkg/jwt"
)

// BuildProfileClaims snapshots a user's profile into token claims. Name,
// age and date of birth are always included when a profile exists; the
// doctor-only and patient-only fields follow the user's role. Consultation
// fees are rendered as a string for interoperability with existing clients.
func BuildProfileClaims(user *entity.User) *jwt.ProfileClaims {
	if user == nil || user.Profile == nil {
		return nil
	}
	profile := user.Profile

	claims := &jwt.ProfileClaims{
		FirstName:  strPtr(profile.FirstName),
		MiddleName: strPtr(profile.MiddleName),
		LastName:   strPtr(profile.LastName),
		Age:        profile.Age,
	}
	if profile.DateOfBirth != nil {
		dob := profile.DateOfBirth.Format("2006-01-02")
		claims.DateOfBirth = &dob
	}

	switch user.Role {
	case entity.RoleDoctor:
		claims.Specialization = strPtr(profile.Specialization)
		claims.LicenseNumber = strPtr(profile.LicenseNumber)
		fees := ""
		if profile.ConsultationFees != nil {
			fees = profile.ConsultationFees.String()
		}
		claims.ConsultationFees = &fees
	case entity.RolePatient:
		claims.MedicalHistory = strPtr(profile.MedicalHistory)
	}

	return claims
}

func strPtr(s string) *string {
	return &s
}
