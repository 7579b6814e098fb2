package auth

import "Robostaan/pkg/response"

var (
	ErrUserNotFound           = response.NewError(404, "user not found")
	ErrEmailAlreadyInUse      = response.NewError(409, "email already in use")
	ErrInvalidEmailOrPassword = response.NewError(400, "invalid email or password")
	ErrInvalidOTP             = response.NewError(401, "invalid OTP provided")
	ErrOTPExpired             = response.NewError(401, "OTP has expired")
	ErrInvalidRole            = response.NewError(400, "invalid role")
	ErrInvalidFileType        = response.NewError(400, "invalid file type")
	ErrFileTooLarge           = response.NewError(400, "file too large")
	ErrFailedToUploadFile     = response.NewError(500, "failed to upload file")
	ErrPreferencesNotFound    = response.NewError(404, "preferences not found")
)
