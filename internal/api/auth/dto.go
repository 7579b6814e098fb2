package auth

import "time"

type CreateUserRequest struct {
	Name     string `json:"name" validate:"required,min=3,max=255"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=32"`
}

type LoginUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginUserResponse struct {
	AccessToken      string  `json:"access_token"`
	ExpiresInMinutes float64 `json:"expires_in_minutes"`
}

type LoginUserGoogle struct {
	Email string `json:"email"`
}

type UserGoogle struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Picture       string `json:"picture"`
}

type UpdateUserRequest struct {
	Name string `json:"name" validate:"omitempty,min=3,max=255"`
	Bio  string `json:"bio" validate:"omitempty,max=2048"`
}

type UpdateRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=user admin instructor"`
}

type UserResponse struct {
	ID              string    `json:"id"`
	Email           string    `json:"email"`
	Name            string    `json:"name"`
	Role            string    `json:"role"`
	Bio             string    `json:"bio,omitempty"`
	ProfilePhotoURL string    `json:"profile_photo_url,omitempty"`
	IsVerified      bool      `json:"is_verified"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type ProfilePhotoResponse struct {
	ID              string `json:"id"`
	ProfilePhotoURL string `json:"profile_photo_url"`
}

type SendEmailOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type VerifyEmailOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required,min=5,max=5"`
}

type PreferenceRequest struct {
	Theme              string `json:"theme" validate:"omitempty,oneof=light dark system"`
	EmailNotifications *bool  `json:"email_notifications" validate:"omitempty"`
	NewsletterOptIn    *bool  `json:"newsletter_opt_in" validate:"omitempty"`
}

type PreferenceResponse struct {
	Theme              string    `json:"theme"`
	EmailNotifications bool      `json:"email_notifications"`
	NewsletterOptIn    bool      `json:"newsletter_opt_in"`
	UpdatedAt          time.Time `json:"updated_at"`
}
