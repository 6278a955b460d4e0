package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Profile holds per-user profile data. One profile per user, created when
// the user is created. Patient-specific and doctor-specific fields live in
// the same row; which ones surface in output depends on the owning user's
// role (see converter.ShapeProfile).
type Profile struct {
	ID          int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      int64      `gorm:"uniqueIndex:uq_profiles_user;not null" json:"user_id"`
	FirstName   string     `gorm:"type:varchar(100)" json:"first_name,omitempty"`
	MiddleName  string     `gorm:"type:varchar(100)" json:"middle_name,omitempty"`
	LastName    string     `gorm:"type:varchar(100)" json:"last_name,omitempty"`
	Gender      string     `gorm:"type:varchar(10)" json:"gender,omitempty"`
	PhoneNumber string     `gorm:"type:varchar(15)" json:"phone_number,omitempty"`
	Address     string     `gorm:"type:text" json:"address,omitempty"`
	Age         *int       `json:"age,omitempty"`
	DateOfBirth *time.Time `gorm:"type:date" json:"date_of_birth,omitempty"`

	// Patient-specific
	MedicalHistory string `gorm:"type:text" json:"medical_history,omitempty"`

	// Doctor-specific
	Specialization   string           `gorm:"type:varchar(100)" json:"specialization,omitempty"`
	ConsultationFees *decimal.Decimal `gorm:"type:decimal(10,2)" json:"consultation_fees,omitempty"`
	LicenseNumber    string           `gorm:"type:varchar(100)" json:"license_number,omitempty"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Profile) TableName() string {
	return "profiles"
}

// ComputeAge returns whole elapsed years between dob and today. A birthday
// not yet reached this year does not count as a full year.
func ComputeAge(dob, today time.Time) int {
	age := today.Year() - dob.Year()
	if today.Month() < dob.Month() || (today.Month() == dob.Month() && today.Day() < dob.Day()) {
		age--
	}
	return age
}

// RecalculateAge refreshes the derived Age field from DateOfBirth. Callers
// must invoke this before every save; a stored age is never trusted as
// input when a date of birth is present.
func (p *Profile) RecalculateAge(today time.Time) {
	if p.DateOfBirth == nil {
		return
	}
	age := ComputeAge(*p.DateOfBirth, today)
	p.Age = &age
}
