package response

import (
	"time"

	"room-reservation/internal/usecase/commands"

	"github.com/google/uuid"
)

type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
	UserID      uuid.UUID `json:"user_id"`
	IsStaff     bool      `json:"is_staff"`
}

func FromLoginResult(r *commands.LoginResult) LoginResponse {
	return LoginResponse{
		AccessToken: r.AccessToken,
		ExpiresAt:   r.ExpiresAt,
		UserID:      r.UserID,
		IsStaff:     r.IsStaff,
	}
}
