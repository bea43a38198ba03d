package dto

import (
	"pitstop/infras/jwt"
	userModel "pitstop/internal/domains/user/model"
	"pitstop/shared/constant"
	gModel "pitstop/shared/model"
	"pitstop/shared/timezone"

	"github.com/google/uuid"
)

type RegisterRequest struct {
	FirstName     string `json:"firstName"     validate:"required,min=2,max=100"`
	LastName      string `json:"lastName"      validate:"required,max=100"`
	Email         string `json:"email"         validate:"required,email,max=100"`
	ContactNumber string `json:"contactNumber" validate:"required,startswith=0,len=11,numeric"`
	Password      string `json:"password"      validate:"required,min=8"`
}

// ToUserModel always produces a customer account. Staff roles are assigned
// afterwards by an admin.
func (r *RegisterRequest) ToUserModel(username, hashedPassword string) userModel.User {
	return userModel.User{
		ID:            uuid.NewString(),
		FirstName:     r.FirstName,
		LastName:      r.LastName,
		Email:         r.Email,
		ContactNumber: r.ContactNumber,
		Password:      hashedPassword,
		Role:          constant.RoleUser,
		Metadata:      gModel.NewMetadata(timezone.Now(), username),
	}
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	AccessToken  string      `json:"access_token"`
	RefreshToken string      `json:"refresh_token"`
	ExpiresIn    int64       `json:"expires_in"`
	User         UserSummary `json:"user"`
}

type UserSummary struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Role      string `json:"role"`
}

func (l *LoginResponse) FromTokenPair(tokenPair *jwt.TokenPair, user userModel.User) {
	l.AccessToken = tokenPair.AccessToken
	l.RefreshToken = tokenPair.RefreshToken
	l.ExpiresIn = tokenPair.ExpiresIn
	l.User = UserSummary{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Role:      user.Role,
	}
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type RefreshTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

func (r *RefreshTokenResponse) FromTokenPair(tokenPair *jwt.TokenPair) {
	r.AccessToken = tokenPair.AccessToken
	r.RefreshToken = tokenPair.RefreshToken
	r.ExpiresIn = tokenPair.ExpiresIn
}
