package graph

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/graphql-go/graphql"
	"github.com/lumicoach/coaching-api/db"
	"github.com/lumicoach/coaching-api/models"
	"github.com/lumicoach/coaching-api/utils"
	"golang.org/x/crypto/bcrypt"
)

const (
	otpValidity        = 10 * time.Minute
	resetTokenValidity = time.Hour
)

// AuthPayload is returned by signup and login.
type AuthPayload struct {
	Token        string
	RefreshToken string
	User         models.User
}

func signToken(claims jwt.MapClaims) (string, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "solid_secret_key" // Replace with secure key in production
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func issueTokens(user *models.User) (string, string, error) {
	token, err := signToken(jwt.MapClaims{
		"id":    user.ID,
		"email": user.Email,
		"role":  user.Role,
		"exp":   time.Now().Add(time.Hour * 24).Unix(),
	})
	if err != nil {
		return "", "", errors.New("Failed to generate token")
	}

	refreshToken, err := signToken(jwt.MapClaims{
		"id":    user.ID,
		"email": user.Email,
		"role":  user.Role,
		"exp":   time.Now().Add(time.Hour * 24 * 7).Unix(),
	})
	if err != nil {
		return "", "", errors.New("Failed to generate refresh token")
	}
	return token, refreshToken, nil
}

func resolveSignup(p graphql.ResolveParams) (interface{}, error) {
	name, _ := p.Args["name"].(string)
	email, _ := p.Args["email"].(string)
	password, _ := p.Args["password"].(string)
	phone, _ := p.Args["phone"].(string)

	if name == "" || email == "" || password == "" {
		return nil, errors.New("Missing required fields")
	}

	var existing models.User
	if db.DB.Where("email = ?", email).First(&existing).RowsAffected > 0 {
		return nil, errors.New("User with this email already exists")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.New("Failed to hash password")
	}

	user := models.User{
		Name:     name,
		Email:    email,
		Password: string(hashedPassword),
		Phone:    phone,
		Role:     models.RoleUser,
	}
	if err := db.DB.Create(&user).Error; err != nil {
		log.Printf("Error creating user: %v", err)
		return nil, errors.New("Failed to create user")
	}

	token, refreshToken, err := issueTokens(&user)
	if err != nil {
		return nil, err
	}

	user.Password = ""
	return AuthPayload{Token: token, RefreshToken: refreshToken, User: user}, nil
}

func resolveLogin(p graphql.ResolveParams) (interface{}, error) {
	email, _ := p.Args["email"].(string)
	password, _ := p.Args["password"].(string)

	var user models.User
	if db.DB.Where("email = ?", email).First(&user).RowsAffected == 0 {
		return nil, errors.New("Invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, errors.New("Invalid credentials")
	}

	token, refreshToken, err := issueTokens(&user)
	if err != nil {
		return nil, err
	}

	user.Password = ""
	return AuthPayload{Token: token, RefreshToken: refreshToken, User: user}, nil
}

// resolveRequestPasswordReset issues a 6-digit OTP valid for 10 minutes and
// dispatches it via email, plus SMS when a phone number is on file. The
// request only fails when every channel fails.
func resolveRequestPasswordReset(p graphql.ResolveParams) (interface{}, error) {
	email, _ := p.Args["email"].(string)

	var user models.User
	if db.DB.Where("email = ?", email).First(&user).RowsAffected == 0 {
		return nil, errors.New("User not found")
	}

	otp := utils.GenerateOTP()
	user.OTP = otp
	user.OTPExpiresAt = time.Now().Add(otpValidity)
	if err := db.DB.Save(&user).Error; err != nil {
		return nil, errors.New("Failed to store reset code")
	}

	message := fmt.Sprintf("Your password reset code is %s. It expires in 10 minutes.", otp)
	emailErr := utils.SendEmail(user.Email, "Password reset code", fmt.Sprintf("<p>%s</p>", message))
	var smsErr error
	if user.Phone != "" {
		smsErr = utils.SendSMS(user.Phone, message)
	}

	if emailErr != nil && (user.Phone == "" || smsErr != nil) {
		log.Printf("OTP delivery failed for %s: email=%v sms=%v", user.Email, emailErr, smsErr)
		return nil, errors.New("Failed to deliver the reset code")
	}

	return "Reset code sent", nil
}

func resolveResetPasswordWithOTP(p graphql.ResolveParams) (interface{}, error) {
	email, _ := p.Args["email"].(string)
	otpCode, _ := p.Args["otpCode"].(string)
	newPassword, _ := p.Args["newPassword"].(string)

	var user models.User
	if db.DB.Where("email = ?", email).First(&user).RowsAffected == 0 {
		return nil, errors.New("User not found")
	}
	if user.OTP == "" || user.OTP != otpCode {
		return nil, errors.New("Invalid OTP code")
	}
	if user.OTPExpired(time.Now()) {
		return nil, errors.New("OTP code expired")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.New("Failed to hash password")
	}

	user.Password = string(hashedPassword)
	user.OTP = ""
	user.OTPExpiresAt = time.Time{}
	user.ResetToken = ""
	user.ResetTokenExpiresAt = time.Time{}
	if err := db.DB.Save(&user).Error; err != nil {
		return nil, errors.New("Failed to reset password")
	}

	return "Password has been reset", nil
}

// resolveRequestResetLink is the link-based counterpart of the OTP flow,
// used by the web dashboard.
func resolveRequestResetLink(p graphql.ResolveParams) (interface{}, error) {
	email, _ := p.Args["email"].(string)

	var user models.User
	if db.DB.Where("email = ?", email).First(&user).RowsAffected == 0 {
		return nil, errors.New("User not found")
	}

	token := utils.GenerateResetToken()
	user.ResetToken = token
	user.ResetTokenExpiresAt = time.Now().Add(resetTokenValidity)
	if err := db.DB.Save(&user).Error; err != nil {
		return nil, errors.New("Failed to store reset token")
	}

	baseURL := os.Getenv("FRONTEND_URL")
	link := fmt.Sprintf("%s/reset-password?token=%s", baseURL, token)
	body := fmt.Sprintf(`<p>Click the link below to reset your password. It expires in one hour.</p><p><a href="%s">%s</a></p>`, link, link)
	if err := utils.SendEmail(user.Email, "Reset your password", body); err != nil {
		log.Printf("Reset link delivery failed for %s: %v", user.Email, err)
		return nil, errors.New("Failed to deliver the reset link")
	}

	return "Reset link sent", nil
}

func resolveResetPasswordWithToken(p graphql.ResolveParams) (interface{}, error) {
	token, _ := p.Args["token"].(string)
	newPassword, _ := p.Args["newPassword"].(string)

	if token == "" {
		return nil, errors.New("Invalid or expired reset token")
	}

	var user models.User
	if db.DB.Where("reset_token = ?", token).First(&user).RowsAffected == 0 {
		return nil, errors.New("Invalid or expired reset token")
	}
	if user.ResetTokenExpired(time.Now()) {
		return nil, errors.New("Invalid or expired reset token")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.New("Failed to hash password")
	}

	user.Password = string(hashedPassword)
	user.ResetToken = ""
	user.ResetTokenExpiresAt = time.Time{}
	user.OTP = ""
	user.OTPExpiresAt = time.Time{}
	if err := db.DB.Save(&user).Error; err != nil {
		return nil, errors.New("Failed to reset password")
	}

	return "Password has been reset", nil
}

func resolveChangePassword(p graphql.ResolveParams) (interface{}, error) {
	viewer, err := requireAuth(p.Context)
	if err != nil {
		return nil, err
	}

	currentPassword, _ := p.Args["currentPassword"].(string)
	newPassword, _ := p.Args["newPassword"].(string)

	var user models.User
	if db.DB.First(&user, viewer.ID).RowsAffected == 0 {
		return nil, errors.New("User not found")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(currentPassword)); err != nil {
		return nil, errors.New("Invalid credentials")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.New("Failed to hash password")
	}
	user.Password = string(hashedPassword)
	if err := db.DB.Save(&user).Error; err != nil {
		return nil, errors.New("Failed to change password")
	}

	return "Password has been changed", nil
}

func resolveMe(p graphql.ResolveParams) (interface{}, error) {
	viewer, err := requireAuth(p.Context)
	if err != nil {
		return nil, err
	}

	var user models.User
	if db.DB.First(&user, viewer.ID).RowsAffected == 0 {
		return nil, errors.New("User not found")
	}
	user.Password = ""
	return user, nil
}

func resolveUsers(p graphql.ResolveParams) (interface{}, error) {
	if _, err := requireAdmin(p.Context); err != nil {
		return nil, err
	}

	var users []models.User
	if err := db.DB.Find(&users).Error; err != nil {
		return nil, errors.New("Failed to fetch users")
	}
	for i := range users {
		users[i].Password = ""
	}
	return users, nil
}

func resolveUpdateUser(p graphql.ResolveParams) (interface{}, error) {
	if _, err := requireAdmin(p.Context); err != nil {
		return nil, err
	}

	id, err := parseID(p.Args["id"])
	if err != nil {
		return nil, err
	}

	var user models.User
	if db.DB.First(&user, id).RowsAffected == 0 {
		return nil, errors.New("User not found")
	}

	var in userUpdateInput
	if err := decodeInput(p.Args["input"], &in); err != nil {
		return nil, err
	}
	if in.Role != "" && in.Role != models.RoleAdmin && in.Role != models.RoleUser {
		return nil, errors.New("Invalid role")
	}

	if in.Name != "" {
		user.Name = in.Name
	}
	if in.Role != "" {
		user.Role = in.Role
	}
	if in.Phone != "" {
		user.Phone = in.Phone
	}
	if in.AvatarURL != "" {
		user.AvatarURL = in.AvatarURL
	}
	if in.Bio != "" {
		user.Bio = in.Bio
	}
	if err := db.DB.Save(&user).Error; err != nil {
		return nil, errors.New("Failed to update user")
	}

	user.Password = ""
	return user, nil
}

func resolveDeleteUser(p graphql.ResolveParams) (interface{}, error) {
	viewer, err := requireAdmin(p.Context)
	if err != nil {
		return nil, err
	}

	id, err := parseID(p.Args["id"])
	if err != nil {
		return nil, err
	}
	if id == viewer.ID {
		return nil, errors.New("Cannot delete your own account")
	}

	var user models.User
	if db.DB.First(&user, id).RowsAffected == 0 {
		return nil, errors.New("User not found")
	}
	if err := db.DB.Delete(&user).Error; err != nil {
		return nil, errors.New("Failed to delete user")
	}
	return true, nil
}
