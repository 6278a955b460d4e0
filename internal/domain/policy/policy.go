// Package policy holds the pure access decisions for profiles, appointments
// and the patient/doctor directories. Functions here take the acting
// identity and the target's owner and return allow/deny; they never touch
// storage.
package policy

import (
	"clinic-appointment-api/internal/domain/entity"
)

// CanReadProfile decides whether actor may read a profile owned by
// (ownerID, ownerRole). Admins read everything. Doctors and patients read
// any profile except one owned by an admin.
func CanReadProfile(actor entity.Actor, ownerID int64, ownerRole entity.Role) bool {
	switch actor.Role {
	case entity.RoleAdmin:
		return true
	case entity.RoleDoctor, entity.RolePatient:
		return ownerRole != entity.RoleAdmin
	}
	return false
}

// CanMutateProfile decides whether actor may write a profile owned by
// (ownerID, ownerRole). Admins write everything; doctors and patients only
// their own profile.
func CanMutateProfile(actor entity.Actor, ownerID int64, ownerRole entity.Role) bool {
	if actor.Role == entity.RoleAdmin {
		return true
	}
	if actor.Role != entity.RoleDoctor && actor.Role != entity.RolePatient {
		return false
	}
	return actor.ID == ownerID
}

// CanDeleteProfile decides whether actor may delete a profile owned by
// (ownerID, ownerRole). Deleting a profile always deletes the owning user
// as one atomic operation; self-delete and admin-delete both funnel through
// the same path, everything else is denied.
func CanDeleteProfile(actor entity.Actor, ownerID int64, ownerRole entity.Role) bool {
	return CanMutateProfile(actor, ownerID, ownerRole)
}

// CanTouchAppointment decides whether actor may read, update or delete an
// appointment. Admins touch any; a doctor only appointments where they are
// the doctor; a patient only where they are the patient.
func CanTouchAppointment(actor entity.Actor, appt *entity.Appointment) bool {
	switch actor.Role {
	case entity.RoleAdmin:
		return true
	case entity.RoleDoctor:
		return appt.InvolvesDoctor(actor.ID)
	case entity.RolePatient:
		return appt.InvolvesPatient(actor.ID)
	}
	return false
}

// CanListPatients restricts the patient directory to doctors and admins.
func CanListPatients(role entity.Role) bool {
	return role == entity.RoleDoctor || role == entity.RoleAdmin
}

// CanListDoctors allows every authenticated role to browse doctors.
// Patients need the list to book an appointment, so this is deliberately
// wider than CanListPatients.
func CanListDoctors(role entity.Role) bool {
	return role == entity.RoleAdmin || role == entity.RoleDoctor || role == entity.RolePatient
}

// CanManagePatient gates per-patient get/update/delete in the directory.
func CanManagePatient(role entity.Role) bool {
	return role == entity.RoleDoctor || role == entity.RoleAdmin
}

// CanManageDoctor gates per-doctor get/update/delete in the directory.
func CanManageDoctor(role entity.Role) bool {
	return role == entity.RoleAdmin
}

// CanViewAuditTrail restricts audit log access to admins.
func CanViewAuditTrail(role entity.Role) bool {
	return role == entity.RoleAdmin
}
