package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"clinic-appointment-api/internal/delivery/dto"
	"clinic-appointment-api/internal/delivery/http/middleware"
	"clinic-appointment-api/internal/usecase"
	"clinic-appointment-api/pkg/response"
	"clinic-appointment-api/pkg/validator"
)

type PatientHandler struct {
	directoryUsecase usecase.DirectoryUsecase
	validator        *validator.CustomValidator
}

func NewPatientHandler(directoryUsecase usecase.DirectoryUsecase, validator *validator.CustomValidator) *PatientHandler {
	return &PatientHandler{
		directoryUsecase: directoryUsecase,
		validator:        validator,
	}
}

func (h *PatientHandler) List(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActorFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	patients, err := h.directoryUsecase.ListPatients(r.Context(), actor)
	if err != nil {
		h.writeDirectoryError(w, err, "Failed to list patients")
		return
	}

	response.Success(w, http.StatusOK, "Patients retrieved successfully", patients)
}

func (h *PatientHandler) Get(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActorFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, err := parseIDParam(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}

	patient, err := h.directoryUsecase.GetPatient(r.Context(), actor, id)
	if err != nil {
		h.writeDirectoryError(w, err, "Failed to get patient")
		return
	}

	response.Success(w, http.StatusOK, "Patient retrieved successfully", patient)
}

func (h *PatientHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActorFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, err := parseIDParam(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}

	var req dto.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	patient, err := h.directoryUsecase.UpdatePatient(r.Context(), actor, id, &req)
	if err != nil {
		h.writeDirectoryError(w, err, "Failed to update patient")
		return
	}

	response.Success(w, http.StatusOK, "Patient updated successfully", patient)
}

func (h *PatientHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActorFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, err := parseIDParam(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}

	if err := h.directoryUsecase.DeletePatient(r.Context(), actor, id); err != nil {
		h.writeDirectoryError(w, err, "Failed to delete patient")
		return
	}

	response.NoContent(w)
}

func (h *PatientHandler) writeDirectoryError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, usecase.ErrPatientNotFound):
		response.NotFound(w, "Patient not found")
	case errors.Is(err, usecase.ErrForbidden):
		response.Forbidden(w, "You do not have permission to perform this action")
	case errors.Is(err, usecase.ErrUsernameTaken):
		response.ValidationError(w, map[string]string{"username": "Username is already taken."})
	case errors.Is(err, usecase.ErrEmailTaken):
		response.ValidationError(w, map[string]string{"email": "Email is already in use."})
	case errors.Is(err, usecase.ErrInvalidDateFormat):
		response.ValidationError(w, map[string]string{"date_of_birth": "Date must be in YYYY-MM-DD format"})
	case errors.Is(err, usecase.ErrInvalidFees):
		response.ValidationError(w, map[string]string{"consultation_fees": "Consultation fees must be a valid decimal amount"})
	default:
		response.InternalServerError(w, fallback)
	}
}
