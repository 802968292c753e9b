package validators

import (
	dto "digiwork-hub.com/digiwork-hub/internal/data_models"
	apperrors "digiwork-hub.com/digiwork-hub/internal/errors"
)

// ValidateTaskRequest checks the shape of a task or subtask body before the
// business rules see it.
func ValidateTaskRequest(r *dto.TaskRequestData) error {
	if r.Title == "" || r.Description == "" {
		return apperrors.Validation("Name and description should not be empty")
	}
	if r.Due == "" {
		return apperrors.ErrInvalidDate
	}
	return nil
}

func ValidateChecklistRequest(r *dto.CreateChecklistRequest) error {
	if r.Description == "" {
		return apperrors.Validation("Description should not be empty")
	}
	return nil
}
