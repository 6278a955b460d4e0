package usecase

import (
	"errors"
	"testing"
	"time"

	"clinic-appointment-api/internal/delivery/dto"
	"clinic-appointment-api/internal/domain/entity"
)

func int64Ptr(v int64) *int64 {
	return &v
}

func TestResolveParticipants(t *testing.T) {
	cases := []struct {
		name        string
		actor       entity.Actor
		patientID   *int64
		doctorID    *int64
		wantPatient int64
		wantDoctor  int64
		wantErr     error
	}{
		{
			name:        "doctor supplies patient",
			actor:       entity.Actor{ID: 9, Role: entity.RoleDoctor},
			patientID:   int64Ptr(5),
			wantPatient: 5,
			wantDoctor:  9,
		},
		{
			name:      "doctor without patient id",
			actor:     entity.Actor{ID: 9, Role: entity.RoleDoctor},
			wantErr:   ErrPatientIDRequired,
		},
		{
			name:        "doctor's own side in payload is ignored",
			actor:       entity.Actor{ID: 9, Role: entity.RoleDoctor},
			patientID:   int64Ptr(5),
			doctorID:    int64Ptr(42),
			wantPatient: 5,
			wantDoctor:  9,
		},
		{
			name:        "patient supplies doctor",
			actor:       entity.Actor{ID: 5, Role: entity.RolePatient},
			doctorID:    int64Ptr(9),
			wantPatient: 5,
			wantDoctor:  9,
		},
		{
			name:    "patient without doctor id",
			actor:   entity.Actor{ID: 5, Role: entity.RolePatient},
			wantErr: ErrDoctorIDRequired,
		},
		{
			name:        "admin supplies both",
			actor:       entity.Actor{ID: 1, Role: entity.RoleAdmin},
			patientID:   int64Ptr(5),
			doctorID:    int64Ptr(9),
			wantPatient: 5,
			wantDoctor:  9,
		},
		{
			name:      "admin missing doctor",
			actor:     entity.Actor{ID: 1, Role: entity.RoleAdmin},
			patientID: int64Ptr(5),
			wantErr:   ErrDoctorIDRequired,
		},
		{
			name:     "admin missing patient",
			actor:    entity.Actor{ID: 1, Role: entity.RoleAdmin},
			doctorID: int64Ptr(9),
			wantErr:  ErrPatientIDRequired,
		},
		{
			name:      "unknown role",
			actor:     entity.Actor{ID: 2, Role: entity.Role("nurse")},
			patientID: int64Ptr(5),
			doctorID:  int64Ptr(9),
			wantErr:   ErrForbidden,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			patient, doctor, err := resolveParticipants(tc.actor, tc.patientID, tc.doctorID)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected %v, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if patient != tc.wantPatient || doctor != tc.wantDoctor {
				t.Errorf("got (%d, %d), want (%d, %d)", patient, doctor, tc.wantPatient, tc.wantDoctor)
			}
		})
	}
}

func TestApplyAppointmentPatchRePinsActor(t *testing.T) {
	appt := &entity.Appointment{ID: 1, PatientID: 5, DoctorID: 9}

	// A doctor saving the appointment stays its doctor even if the stored
	// row somehow drifted.
	appt.DoctorID = 99
	applyAppointmentPatch(appt, entity.Actor{ID: 9, Role: entity.RoleDoctor}, &dto.UpdateAppointmentRequest{})
	if appt.DoctorID != 9 {
		t.Errorf("doctor side not re-pinned, got %d", appt.DoctorID)
	}
	if appt.PatientID != 5 {
		t.Errorf("patient side must stay, got %d", appt.PatientID)
	}

	appt.PatientID = 77
	applyAppointmentPatch(appt, entity.Actor{ID: 5, Role: entity.RolePatient}, &dto.UpdateAppointmentRequest{})
	if appt.PatientID != 5 {
		t.Errorf("patient side not re-pinned, got %d", appt.PatientID)
	}
}

func TestApplyAppointmentPatchFields(t *testing.T) {
	appt := &entity.Appointment{ID: 1, PatientID: 5, DoctorID: 9, Reason: "checkup"}

	newDate := time.Date(2026, time.September, 3, 10, 0, 0, 0, time.UTC)
	reason := "followup"
	status := "confirmed"
	applyAppointmentPatch(appt, entity.Actor{ID: 1, Role: entity.RoleAdmin}, &dto.UpdateAppointmentRequest{
		AppointmentDate: &newDate,
		Reason:          &reason,
		Status:          &status,
	})

	if !appt.AppointmentDate.Equal(newDate) {
		t.Errorf("date not applied: %v", appt.AppointmentDate)
	}
	if appt.Reason != "followup" {
		t.Errorf("reason not applied: %q", appt.Reason)
	}
	if appt.Status == nil || *appt.Status != entity.AppointmentStatusConfirmed {
		t.Errorf("status not applied: %v", appt.Status)
	}

	// Admins are not pinned to either side
	if appt.PatientID != 5 || appt.DoctorID != 9 {
		t.Errorf("admin patch must leave participants alone, got (%d, %d)", appt.PatientID, appt.DoctorID)
	}
}

func TestApplyAppointmentPatchNoFields(t *testing.T) {
	date := time.Date(2026, time.September, 3, 10, 0, 0, 0, time.UTC)
	status := entity.AppointmentStatusPending
	appt := &entity.Appointment{ID: 1, PatientID: 5, DoctorID: 9, AppointmentDate: date, Reason: "checkup", Status: &status}

	applyAppointmentPatch(appt, entity.Actor{ID: 5, Role: entity.RolePatient}, &dto.UpdateAppointmentRequest{})

	if !appt.AppointmentDate.Equal(date) || appt.Reason != "checkup" || appt.Status == nil || *appt.Status != entity.AppointmentStatusPending {
		t.Error("empty patch must not change anything")
	}
}
