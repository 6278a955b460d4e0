package dto

// UpdateProfileRequest carries a partial profile update. Empty strings mean
// "no change" for text fields. Age is only honored when no date of birth is
// stored; otherwise it is recomputed from the date of birth on save.
type UpdateProfileRequest struct {
	FirstName   string `json:"first_name" validate:"omitempty,max=100"`
	MiddleName  string `json:"middle_name" validate:"omitempty,max=100"`
	LastName    string `json:"last_name" validate:"omitempty,max=100"`
	Gender      string `json:"gender" validate:"omitempty,max=10"`
	PhoneNumber string `json:"phone_number" validate:"omitempty,max=15"`
	Address     string `json:"address" validate:"omitempty"`
	Age         *int   `json:"age" validate:"omitempty,gte=0"`
	DateOfBirth string `json:"date_of_birth" validate:"omitempty"` // Format: YYYY-MM-DD

	// Patient-specific
	MedicalHistory string `json:"medical_history" validate:"omitempty"`

	// Doctor-specific
	Specialization   string `json:"specialization" validate:"omitempty,max=100"`
	ConsultationFees string `json:"consultation_fees" validate:"omitempty"`
	LicenseNumber    string `json:"license_number" validate:"omitempty,max=100"`
}

// ProfileResponse is the role-shaped output view of a profile. The
// role-conditional fields are pointers: they are present exactly when the
// owning user's role surfaces them, independent of who is asking.
type ProfileResponse struct {
	ID          int64  `json:"id"`
	UserID      int64  `json:"user_id"`
	FirstName   string `json:"first_name,omitempty"`
	MiddleName  string `json:"middle_name,omitempty"`
	LastName    string `json:"last_name,omitempty"`
	Gender      string `json:"gender,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`
	Address     string `json:"address,omitempty"`
	Age         *int   `json:"age,omitempty"`
	DateOfBirth string `json:"date_of_birth,omitempty"`

	// Present when the owner is a patient
	MedicalHistory *string `json:"medical_history,omitempty"`

	// Present when the owner is a doctor
	Specialization   *string `json:"specialization,omitempty"`
	LicenseNumber    *string `json:"license_number,omitempty"`
	ConsultationFees *string `json:"consultation_fees,omitempty"`
}
