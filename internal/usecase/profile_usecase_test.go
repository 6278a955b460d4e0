package usecase

import (
	"errors"
	"testing"
	"time"

	"clinic-appointment-api/internal/delivery/dto"
	"clinic-appointment-api/internal/domain/entity"
)

func TestApplyProfilePatchBasicFields(t *testing.T) {
	profile := &entity.Profile{FirstName: "Old", PhoneNumber: "0800000000"}

	err := applyProfilePatch(profile, &dto.UpdateProfileRequest{
		FirstName: "New",
		LastName:  "Name",
		Address:   "12 Clinic Road",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if profile.FirstName != "New" || profile.LastName != "Name" || profile.Address != "12 Clinic Road" {
		t.Errorf("fields not applied: %+v", profile)
	}
	// Empty string means no change
	if profile.PhoneNumber != "0800000000" {
		t.Errorf("untouched field changed: %q", profile.PhoneNumber)
	}
}

func TestApplyProfilePatchDateOfBirth(t *testing.T) {
	profile := &entity.Profile{}

	if err := applyProfilePatch(profile, &dto.UpdateProfileRequest{DateOfBirth: "1990-03-20"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(1990, time.March, 20, 0, 0, 0, 0, time.UTC)
	if profile.DateOfBirth == nil || !profile.DateOfBirth.Equal(want) {
		t.Errorf("date of birth not parsed, got %v", profile.DateOfBirth)
	}

	err := applyProfilePatch(profile, &dto.UpdateProfileRequest{DateOfBirth: "20-03-1990"})
	if !errors.Is(err, ErrInvalidDateFormat) {
		t.Errorf("expected ErrInvalidDateFormat, got %v", err)
	}
}

func TestApplyProfilePatchAgePrecedence(t *testing.T) {
	age := 40

	// Without a date of birth the supplied age sticks
	profile := &entity.Profile{}
	if err := applyProfilePatch(profile, &dto.UpdateProfileRequest{Age: &age}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profile.Age == nil || *profile.Age != 40 {
		t.Errorf("age not applied, got %v", profile.Age)
	}

	// With a date of birth the supplied age is ignored
	dob := time.Date(1990, time.March, 20, 0, 0, 0, 0, time.UTC)
	profile = &entity.Profile{DateOfBirth: &dob}
	if err := applyProfilePatch(profile, &dto.UpdateProfileRequest{Age: &age}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profile.Age != nil {
		t.Errorf("age must be ignored when a date of birth is stored, got %v", profile.Age)
	}
}

func TestApplyProfilePatchFees(t *testing.T) {
	profile := &entity.Profile{}

	if err := applyProfilePatch(profile, &dto.UpdateProfileRequest{ConsultationFees: "150.50"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profile.ConsultationFees == nil || profile.ConsultationFees.String() != "150.5" {
		t.Errorf("fees not applied, got %v", profile.ConsultationFees)
	}

	err := applyProfilePatch(profile, &dto.UpdateProfileRequest{ConsultationFees: "lots"})
	if !errors.Is(err, ErrInvalidFees) {
		t.Errorf("expected ErrInvalidFees, got %v", err)
	}
}
