package dto

// CreateDepartmentRequest payload.
type CreateDepartmentRequest struct {
	Name          string `json:"name" validate:"required"`
	Description   string `json:"description"`
	ManagerUserID string `json:"manager_user_id"`
}
