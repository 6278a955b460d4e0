package policy

import (
	"testing"

	"clinic-appointment-api/internal/domain/entity"
)

func TestCanReadProfile(t *testing.T) {
	cases := []struct {
		name      string
		actor     entity.Actor
		ownerID   int64
		ownerRole entity.Role
		want      bool
	}{
		{"admin reads admin", entity.Actor{ID: 1, Role: entity.RoleAdmin}, 2, entity.RoleAdmin, true},
		{"admin reads doctor", entity.Actor{ID: 1, Role: entity.RoleAdmin}, 2, entity.RoleDoctor, true},
		{"admin reads patient", entity.Actor{ID: 1, Role: entity.RoleAdmin}, 2, entity.RolePatient, true},
		{"doctor reads patient", entity.Actor{ID: 3, Role: entity.RoleDoctor}, 4, entity.RolePatient, true},
		{"doctor reads other doctor", entity.Actor{ID: 3, Role: entity.RoleDoctor}, 5, entity.RoleDoctor, true},
		{"doctor reads admin", entity.Actor{ID: 3, Role: entity.RoleDoctor}, 1, entity.RoleAdmin, false},
		{"patient reads doctor", entity.Actor{ID: 4, Role: entity.RolePatient}, 3, entity.RoleDoctor, true},
		{"patient reads other patient", entity.Actor{ID: 4, Role: entity.RolePatient}, 6, entity.RolePatient, true},
		{"patient reads admin", entity.Actor{ID: 4, Role: entity.RolePatient}, 1, entity.RoleAdmin, false},
		{"unknown role", entity.Actor{ID: 9, Role: entity.Role("nurse")}, 4, entity.RolePatient, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CanReadProfile(tc.actor, tc.ownerID, tc.ownerRole); got != tc.want {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestCanMutateProfile(t *testing.T) {
	cases := []struct {
		name      string
		actor     entity.Actor
		ownerID   int64
		ownerRole entity.Role
		want      bool
	}{
		{"admin mutates anyone", entity.Actor{ID: 1, Role: entity.RoleAdmin}, 4, entity.RolePatient, true},
		{"doctor mutates own", entity.Actor{ID: 3, Role: entity.RoleDoctor}, 3, entity.RoleDoctor, true},
		{"doctor mutates other", entity.Actor{ID: 3, Role: entity.RoleDoctor}, 4, entity.RolePatient, false},
		{"patient mutates own", entity.Actor{ID: 4, Role: entity.RolePatient}, 4, entity.RolePatient, true},
		{"patient mutates other", entity.Actor{ID: 4, Role: entity.RolePatient}, 3, entity.RoleDoctor, false},
		{"unknown role", entity.Actor{ID: 9, Role: entity.Role("")}, 9, entity.RolePatient, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CanMutateProfile(tc.actor, tc.ownerID, tc.ownerRole); got != tc.want {
				t.Errorf("got %v, want %v", got, tc.want)
			}
			// Delete tracks mutate exactly
			if got := CanDeleteProfile(tc.actor, tc.ownerID, tc.ownerRole); got != tc.want {
				t.Errorf("CanDeleteProfile: got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestCanTouchAppointment(t *testing.T) {
	appt := &entity.Appointment{PatientID: 4, DoctorID: 3}

	cases := []struct {
		name  string
		actor entity.Actor
		want  bool
	}{
		{"admin", entity.Actor{ID: 1, Role: entity.RoleAdmin}, true},
		{"owning doctor", entity.Actor{ID: 3, Role: entity.RoleDoctor}, true},
		{"other doctor", entity.Actor{ID: 7, Role: entity.RoleDoctor}, false},
		{"owning patient", entity.Actor{ID: 4, Role: entity.RolePatient}, true},
		{"other patient", entity.Actor{ID: 8, Role: entity.RolePatient}, false},
		{"doctor on patient side only", entity.Actor{ID: 4, Role: entity.RoleDoctor}, false},
		{"unknown role", entity.Actor{ID: 3, Role: entity.Role("x")}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CanTouchAppointment(tc.actor, appt); got != tc.want {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestDirectoryGates(t *testing.T) {
	if !CanListPatients(entity.RoleDoctor) || !CanListPatients(entity.RoleAdmin) {
		t.Error("doctors and admins must see the patient directory")
	}
	if CanListPatients(entity.RolePatient) {
		t.Error("patients must not see the patient directory")
	}

	for _, role := range []entity.Role{entity.RoleAdmin, entity.RoleDoctor, entity.RolePatient} {
		if !CanListDoctors(role) {
			t.Errorf("%s must be able to list doctors", role)
		}
	}
	if CanListDoctors(entity.Role("guest")) {
		t.Error("unknown role must not list doctors")
	}

	if !CanManagePatient(entity.RoleDoctor) || !CanManagePatient(entity.RoleAdmin) || CanManagePatient(entity.RolePatient) {
		t.Error("patient management is doctor and admin only")
	}
	if !CanManageDoctor(entity.RoleAdmin) || CanManageDoctor(entity.RoleDoctor) || CanManageDoctor(entity.RolePatient) {
		t.Error("doctor management is admin only")
	}
	if !CanViewAuditTrail(entity.RoleAdmin) || CanViewAuditTrail(entity.RoleDoctor) || CanViewAuditTrail(entity.RolePatient) {
		t.Error("audit trail is admin only")
	}
}
