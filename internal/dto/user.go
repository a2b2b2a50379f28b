package dto

import "github.com/nunsahui/cafeledger/internal/core/domain"

// RegisterRequest is the payload for creating a new staff account.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	FullName string `json:"fullName" binding:"required,max=100"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest is the payload for authenticating.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued access token.
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresIn int          `json:"expiresIn"` // seconds
	User      UserResponse `json:"user"`
}

// AssignRoleRequest reassigns a user's role.
type AssignRoleRequest struct {
	Role domain.Role `json:"role" binding:"required,approle"`
}

// UserResponse is the API representation of a user.
type UserResponse struct {
	UserID   string `json:"userID"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`
}

// ToUserResponse converts a domain user to its API shape.
func ToUserResponse(u domain.User) UserResponse {
	return UserResponse{
		UserID:   u.UserID,
		Email:    u.Email,
		FullName: u.FullName,
		Role:     string(u.Role),
	}
}

// ToUserResponses converts a slice of domain users.
func ToUserResponses(users []domain.User) []UserResponse {
	out := make([]UserResponse, len(users))
	for i, u := range users {
		out[i] = ToUserResponse(u)
	}
	return out
}
