package handler

import (
	"errors"
	"net/http"
	"strconv"

	"clinic-appointment-api/internal/delivery/http/middleware"
	"clinic-appointment-api/internal/usecase"
	"clinic-appointment-api/pkg/response"
)

type AuditHandler struct {
	directoryUsecase usecase.DirectoryUsecase
}

func NewAuditHandler(directoryUsecase usecase.DirectoryUsecase) *AuditHandler {
	return &AuditHandler{directoryUsecase: directoryUsecase}
}

// GetUserTrail returns the newest audit entries for a user. Admin only;
// optional ?limit= caps the page, default 50.
func (h *AuditHandler) GetUserTrail(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActorFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	userID, err := parseIDParam(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid user ID", nil)
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 0 {
			response.Error(w, http.StatusBadRequest, "Invalid limit", nil)
			return
		}
	}

	trail, err := h.directoryUsecase.GetUserAuditTrail(r.Context(), actor, userID, limit)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			response.NotFound(w, "User not found")
		case errors.Is(err, usecase.ErrForbidden):
			response.Forbidden(w, "You do not have permission to perform this action")
		default:
			response.InternalServerError(w, "Failed to get audit trail")
		}
		return
	}

	response.Success(w, http.StatusOK, "Audit trail retrieved successfully", trail)
}
