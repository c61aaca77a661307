package request

import "room-reservation/internal/usecase/commands"

type CreateUserRequest struct {
	RegisterRequest
	IsStaff bool `json:"is_staff"`
}

func (r CreateUserRequest) ToInput() commands.CreateUserInput {
	return commands.CreateUserInput{RegisterInput: r.RegisterRequest.ToInput(), IsStaff: r.IsStaff}
}

// UpdateUserRequest leaves absent fields unchanged; an empty email clears it.
type UpdateUserRequest struct {
	Username *string `json:"username" binding:"omitempty,username"`
	Email    *string `json:"email" binding:"omitempty,email"`
	IsStaff  *bool   `json:"is_staff"`
	IsActive *bool   `json:"is_active"`
}

func (r UpdateUserRequest) ToInput() commands.UpdateUserInput {
	return commands.UpdateUserInput{
		Username: r.Username,
		Email:    r.Email,
		IsStaff:  r.IsStaff,
		IsActive: r.IsActive,
	}
}
