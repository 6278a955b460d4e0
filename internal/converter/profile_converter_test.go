package converter

import (
	"testing"
	"time"

	"clinic-appointment-api/internal/domain/entity"

	"github.com/shopspring/decimal"
)

func sampleProfile() *entity.Profile {
	age := 34
	dob := time.Date(1990, time.March, 20, 0, 0, 0, 0, time.UTC)
	fees := decimal.NewFromFloat(150.50)
	return &entity.Profile{
		ID:               7,
		UserID:           5,
		FirstName:        "Jordan",
		LastName:         "Reyes",
		Gender:           "female",
		Age:              &age,
		DateOfBirth:      &dob,
		MedicalHistory:   "asthma",
		Specialization:   "cardiology",
		ConsultationFees: &fees,
		LicenseNumber:    "LIC-2210",
	}
}

func TestShapeProfileDoctor(t *testing.T) {
	resp := ShapeProfile(sampleProfile(), entity.RoleDoctor)

	if resp.Specialization == nil || *resp.Specialization != "cardiology" {
		t.Errorf("expected specialization, got %v", resp.Specialization)
	}
	if resp.LicenseNumber == nil || *resp.LicenseNumber != "LIC-2210" {
		t.Errorf("expected license number, got %v", resp.LicenseNumber)
	}
	if resp.ConsultationFees == nil || *resp.ConsultationFees != "150.5" {
		t.Errorf("expected fees as string, got %v", resp.ConsultationFees)
	}
	if resp.MedicalHistory != nil {
		t.Error("doctor profile must not surface medical history")
	}
	if resp.DateOfBirth != "1990-03-20" {
		t.Errorf("unexpected date of birth %q", resp.DateOfBirth)
	}
}

func TestShapeProfilePatient(t *testing.T) {
	resp := ShapeProfile(sampleProfile(), entity.RolePatient)

	if resp.MedicalHistory == nil || *resp.MedicalHistory != "asthma" {
		t.Errorf("expected medical history, got %v", resp.MedicalHistory)
	}
	if resp.Specialization != nil || resp.LicenseNumber != nil || resp.ConsultationFees != nil {
		t.Error("patient profile must not surface doctor fields")
	}
}

func TestShapeProfileAdmin(t *testing.T) {
	resp := ShapeProfile(sampleProfile(), entity.RoleAdmin)

	if resp.MedicalHistory != nil {
		t.Error("admin profile must not surface medical history")
	}
	if resp.Specialization != nil || resp.LicenseNumber != nil || resp.ConsultationFees != nil {
		t.Error("admin profile must not surface doctor fields")
	}
	if resp.FirstName != "Jordan" || resp.Age == nil || *resp.Age != 34 {
		t.Error("common fields must survive shaping")
	}
}

func TestShapeProfileNilFees(t *testing.T) {
	p := sampleProfile()
	p.ConsultationFees = nil
	resp := ShapeProfile(p, entity.RoleDoctor)
	if resp.ConsultationFees == nil || *resp.ConsultationFees != "" {
		t.Errorf("nil fees should render as empty string, got %v", resp.ConsultationFees)
	}
}

func TestShapeProfileNil(t *testing.T) {
	if resp := ShapeProfile(nil, entity.RoleAdmin); resp != nil {
		t.Errorf("expected nil, got %+v", resp)
	}
}
