package handler

type updateProfileRequest struct {
	Email *string `json:"email" validate:"omitempty,email"`
}

type updateUserRequest struct {
	Email *string `json:"email" validate:"omitempty,email"`
	Role  *string `json:"role"  validate:"omitempty,oneof=user admin super_admin"`
}
