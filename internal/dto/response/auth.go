package response

import (
	"time"

	"venue-booking/internal/data/entity"
)

type UserResponse struct {
	ID       string          `json:"id"`
	Username string          `json:"username"`
	Email    string          `json:"email"`
	Phone    *string         `json:"phone,omitempty"`
	Role     entity.UserRole `json:"role"`
}

type AuthResponse struct {
	User      UserResponse `json:"user"`
	Token     string       `json:"token,omitempty"`
	ExpiresAt *time.Time   `json:"expires_at,omitempty"`
}

func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:       user.ID.String(),
		Username: user.Username,
		Email:    user.Email,
		Phone:    user.Phone,
		Role:     user.Role,
	}
}
