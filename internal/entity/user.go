package entity

import "time"

type Role string

const (
	RoleUser       Role = "user"
	RoleAdmin      Role = "admin"
	RoleInstructor Role = "instructor"
)

func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleAdmin, RoleInstructor:
		return true
	}
	return false
}

func (r Role) String() string {
	return string(r)
}

type User struct {
	ID              string    `db:"id"`
	Email           string    `db:"email"`
	Name            string    `db:"name"`
	Password        string    `db:"password"`
	Role            Role      `db:"role"`
	Bio             string    `db:"bio"`
	ProfilePhotoURL string    `db:"profile_photo_url"`
	IsVerified      bool      `db:"is_verified"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}

type UserLoginData struct {
	ID       string
	Username string
	Email    string
	Role     Role
}

type UserPreference struct {
	UserID             string    `db:"user_id"`
	Theme              string    `db:"theme"`
	EmailNotifications bool      `db:"email_notifications"`
	NewsletterOptIn    bool      `db:"newsletter_opt_in"`
	UpdatedAt          time.Time `db:"updated_at"`
}
