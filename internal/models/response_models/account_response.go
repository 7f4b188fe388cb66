package response_models

import "wayfarer/internal/models/db_models"

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

type UserProfileResponse struct {
	ID        string  `json:"id"`
	Email     string  `json:"email"`
	FullName  *string `json:"full_name"`
	CreatedAt int64   `json:"created_at"`
}

func NewUserProfileResponse(u db_models.User) UserProfileResponse {
	return UserProfileResponse{
		ID:        u.ID.String(),
		Email:     u.Email,
		FullName:  u.FullName,
		CreatedAt: u.CreatedAt,
	}
}
