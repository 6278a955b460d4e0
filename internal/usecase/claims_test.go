package usecase

import (
	"testing"
	"time"

	"clinic-appointment-api/internal/domain/entity"

	"github.com/shopspring/decimal"
)

func TestBuildProfileClaimsDoctor(t *testing.T) {
	age := 45
	dob := time.Date(1981, time.January, 5, 0, 0, 0, 0, time.UTC)
	fees := decimal.NewFromInt(200)
	user := &entity.User{
		ID:   9,
		Role: entity.RoleDoctor,
		Profile: &entity.Profile{
			FirstName:        "Amara",
			LastName:         "Okafor",
			Age:              &age,
			DateOfBirth:      &dob,
			Specialization:   "dermatology",
			LicenseNumber:    "LIC-88",
			ConsultationFees: &fees,
			MedicalHistory:   "should never leak",
		},
	}

	claims := BuildProfileClaims(user)
	if claims == nil {
		t.Fatal("expected claims")
	}
	if claims.Specialization == nil || *claims.Specialization != "dermatology" {
		t.Errorf("specialization missing: %v", claims.Specialization)
	}
	if claims.ConsultationFees == nil || *claims.ConsultationFees != "200" {
		t.Errorf("fees missing: %v", claims.ConsultationFees)
	}
	if claims.MedicalHistory != nil {
		t.Error("doctor claims must not carry medical history")
	}
	if claims.DateOfBirth == nil || *claims.DateOfBirth != "1981-01-05" {
		t.Errorf("date of birth missing: %v", claims.DateOfBirth)
	}
}

func TestBuildProfileClaimsPatient(t *testing.T) {
	user := &entity.User{
		ID:   5,
		Role: entity.RolePatient,
		Profile: &entity.Profile{
			FirstName:      "Jordan",
			MedicalHistory: "asthma",
			Specialization: "should never leak",
		},
	}

	claims := BuildProfileClaims(user)
	if claims == nil {
		t.Fatal("expected claims")
	}
	if claims.MedicalHistory == nil || *claims.MedicalHistory != "asthma" {
		t.Errorf("medical history missing: %v", claims.MedicalHistory)
	}
	if claims.Specialization != nil || claims.LicenseNumber != nil || claims.ConsultationFees != nil {
		t.Error("patient claims must not carry doctor fields")
	}
}

func TestBuildProfileClaimsWithoutProfile(t *testing.T) {
	if claims := BuildProfileClaims(&entity.User{ID: 1, Role: entity.RoleAdmin}); claims != nil {
		t.Errorf("expected nil claims, got %+v", claims)
	}
	if claims := BuildProfileClaims(nil); claims != nil {
		t.Errorf("expected nil claims for nil user, got %+v", claims)
	}
}
