// FILE: internal/dto/user_dto.go
package dto

import "time"

type UserProfileResponse struct {
	Id        uint      `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Pronoun   string    `json:"pronoun,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type UpdateProfileRequest struct {
	Name    string `json:"name" form:"name" validate:"required,max=100"`
	Pronoun string `json:"pronoun" form:"pronoun" validate:"max=50"`
}
