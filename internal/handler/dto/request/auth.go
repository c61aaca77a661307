package request

import "room-reservation/internal/usecase/commands"

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r LoginRequest) ToInput() commands.LoginInput {
	return commands.LoginInput{Username: r.Username, Password: r.Password}
}

type RegisterRequest struct {
	Username  string `json:"username" binding:"required,username"`
	Email     string `json:"email" binding:"omitempty,email"`
	Password1 string `json:"password1" binding:"required"`
	Password2 string `json:"password2" binding:"required"`
}

func (r RegisterRequest) ToInput() commands.RegisterInput {
	return commands.RegisterInput{
		Username:  r.Username,
		Email:     r.Email,
		Password1: r.Password1,
		Password2: r.Password2,
	}
}
