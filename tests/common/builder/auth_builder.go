//go:build unit || e2e

package builder

import (
	reqdto "room-reservation/internal/handler/dto/request"
)

type AuthBuilder struct {
	Username  string
	Email     string
	Password  string
	Password2 string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Username:  "aroha",
		Email:     "aroha@example.com",
		Password:  "kowhai-tree-42",
		Password2: "kowhai-tree-42",
	}
}

func (a *AuthBuilder) With(mutate func(*AuthBuilder)) *AuthBuilder {
	mutate(a)
	return a
}

func (a *AuthBuilder) BuildDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Username: a.Username,
		Password: a.Password,
	}
}

func (a *AuthBuilder) BuildRegisterDTO() reqdto.RegisterRequest {
	return reqdto.RegisterRequest{
		Username:  a.Username,
		Email:     a.Email,
		Password1: a.Password,
		Password2: a.Password2,
	}
}
