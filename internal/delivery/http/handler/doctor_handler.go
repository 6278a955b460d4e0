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

type DoctorHandler struct {
	directoryUsecase usecase.DirectoryUsecase
	validator        *validator.CustomValidator
}

func NewDoctorHandler(directoryUsecase usecase.DirectoryUsecase, validator *validator.CustomValidator) *DoctorHandler {
	return &DoctorHandler{
		directoryUsecase: directoryUsecase,
		validator:        validator,
	}
}

// List is open to every authenticated role so patients can browse doctors
// before booking.
func (h *DoctorHandler) List(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActorFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	doctors, err := h.directoryUsecase.ListDoctors(r.Context(), actor)
	if err != nil {
		h.writeDirectoryError(w, err, "Failed to list doctors")
		return
	}

	response.Success(w, http.StatusOK, "Doctors retrieved successfully", doctors)
}

func (h *DoctorHandler) Get(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActorFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, err := parseIDParam(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	doctor, err := h.directoryUsecase.GetDoctor(r.Context(), actor, id)
	if err != nil {
		h.writeDirectoryError(w, err, "Failed to get doctor")
		return
	}

	response.Success(w, http.StatusOK, "Doctor retrieved successfully", doctor)
}

func (h *DoctorHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActorFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, err := parseIDParam(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
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

	doctor, err := h.directoryUsecase.UpdateDoctor(r.Context(), actor, id, &req)
	if err != nil {
		h.writeDirectoryError(w, err, "Failed to update doctor")
		return
	}

	response.Success(w, http.StatusOK, "Doctor updated successfully", doctor)
}

func (h *DoctorHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActorFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, err := parseIDParam(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	if err := h.directoryUsecase.DeleteDoctor(r.Context(), actor, id); err != nil {
		h.writeDirectoryError(w, err, "Failed to delete doctor")
		return
	}

	response.NoContent(w)
}

func (h *DoctorHandler) writeDirectoryError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, usecase.ErrDoctorNotFound):
		response.NotFound(w, "Doctor not found")
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
