package models

import (
	"time"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

type User struct {
	ID                  uint      `json:"id" gorm:"primaryKey"`
	Name                string    `json:"name"`
	Email               string    `json:"email" gorm:"unique"`
	Password            string    `json:"password,omitempty"`
	Role                string    `json:"role" gorm:"default:user"`
	Phone               string    `json:"phone"`
	AvatarURL           string    `json:"avatarUrl"`
	Bio                 string    `json:"bio"`
	OTP                 string    `json:"otp,omitempty"`
	OTPExpiresAt        time.Time `json:"otpExpiresAt,omitempty"`
	ResetToken          string    `json:"resetToken,omitempty"`
	ResetTokenExpiresAt time.Time `json:"resetTokenExpiresAt,omitempty"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

// OTPExpired reports whether the reset code is no longer usable. The code
// is valid strictly before the expiry instant; at the instant itself it has
// already expired.
func (u *User) OTPExpired(now time.Time) bool {
	return !now.Before(u.OTPExpiresAt)
}

// ResetTokenExpired mirrors OTPExpired for the link-based flow.
func (u *User) ResetTokenExpired(now time.Time) bool {
	return !now.Before(u.ResetTokenExpiresAt)
}
