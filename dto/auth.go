package dto

import "time"

// LoginInput là DTO cho request đăng nhập
type LoginInput struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

// RegisterInput là DTO cho request đăng ký
type RegisterInput struct {
	Name         string `json:"name"`
	Email        string `json:"email" binding:"required"`
	Password     string `json:"password" binding:"required"`
	Role         int    `json:"role"`
	AdminPasskey string `json:"adminPasskey,omitempty"` // passkey để khởi tạo tài khoản admin
}

// ResendVerificationInput là DTO cho request gửi lại mã xác thực
type ResendVerificationInput struct {
	Email string `json:"email" binding:"required"`
}

// GoogleUser là thông tin người dùng lấy từ Google
type GoogleUser struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Picture       string `json:"picture"`
}

type UserLoginResponse struct {
	UserID       uint      `json:"id"`
	UserName     string    `json:"name"`
	UserEmail    string    `json:"email"`
	UserVerified bool      `json:"isVerified"`
	UserRole     int       `json:"role"`
	UserAvatar   string    `json:"avatar"`
	WishlistIDs  []int64   `json:"wishlistIds"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// ActorResponse là DTO cho thông tin user/actor
type ActorResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}
