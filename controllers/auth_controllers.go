package controllers

import (
	"context"
	"errors"
	"os"
	"strings"
	"time"

	"resortly/config"
	"resortly/constants"
	"resortly/dto"
	"resortly/models"
	"resortly/response"
	"resortly/services"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/api/idtoken"
	"gorm.io/gorm"
)

func Login(c *gin.Context) {
	var input dto.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	input.Identifier = strings.ToLower(input.Identifier)

	var user models.User
	if err := config.DB.Where("email = ?", input.Identifier).First(&user).Error; err != nil {
		response.BadRequest(c, "Email hoặc mật khẩu không hợp lệ")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		response.BadRequest(c, "Email hoặc mật khẩu không hợp lệ")
		return
	}

	userInfo := services.UserInfo{
		UserId: user.ID,
		Role:   user.Role,
	}

	accessToken, err := services.GenerateToken(userInfo, 60*24*3)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	services.SetTokenCookies(c, accessToken)

	response.Success(c, gin.H{
		"user_info":   toUserLoginResponse(user),
		"accessToken": accessToken,
	})
}

func Logout(c *gin.Context) {
	cookies := c.Request.Cookies()
	for _, cookie := range cookies {
		c.SetCookie(cookie.Name, "", -1, "/", "", cookie.Secure, cookie.HttpOnly)
	}

	response.Success(c, nil)
}

func RegisterUser(c *gin.Context) {
	var input dto.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	role := input.Role
	if role != constants.RoleUser && role != constants.RoleOwner && role != constants.RoleAdmin {
		response.BadRequest(c, "Role không hợp lệ")
		return
	}

	// Tài khoản admin chỉ được tạo khi có passkey đúng
	if role == constants.RoleAdmin {
		passkey := os.Getenv("ADMIN_PASSKEY")
		if passkey == "" || input.AdminPasskey != passkey {
			response.Forbidden(c)
			return
		}
	}

	user, err := services.CreateUser(models.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
		Role:     role,
	})
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, toUserLoginResponse(user))
}

func VerifyEmail(c *gin.Context) {
	code := c.Query("token")
	if code == "" {
		response.BadRequest(c, "Cần mã xác thực")
		return
	}

	var user models.User
	result := config.DB.Where("code = ?", code).First(&user)
	if result.Error != nil {
		response.BadRequest(c, "Có lỗi xảy ra khi xác minh email")
		return
	}

	// Kiểm tra xem mã xác thực đã hết hạn chưa (5 phút)
	if time.Since(user.CodeCreatedAt) > 5*time.Minute {
		response.BadRequest(c, "Mã xác thực đã hết hạn. Vui lòng yêu cầu mã mới.")
		return
	}

	user.IsVerified = true
	user.Code = ""
	config.DB.Save(&user)

	response.Success(c, toUserLoginResponse(user))
}

func ResendVerificationCode(c *gin.Context) {
	var input dto.ResendVerificationInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var user models.User
	result := config.DB.Where("email = ?", strings.ToLower(input.Email)).First(&user)
	if result.Error != nil {
		response.BadRequest(c, "Người dùng không tồn tại.")
		return
	}

	if err := services.ResendCode(user); err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, nil)
}

// GetProfile trả về thông tin của người dùng đang đăng nhập
func GetProfile(c *gin.Context) {
	userID := c.GetUint("userID")

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, toUserLoginResponse(user))
}

// AuthGoogle function để xử lý yêu cầu xác thực từ Google
func AuthGoogle(c *gin.Context) {
	var token struct {
		TokenId string `json:"tokenId"`
	}

	if err := c.ShouldBindJSON(&token); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	// Xác minh tokenId từ Google
	payload, err := verifyGoogleIDToken(token.TokenId)
	if err != nil {
		response.Unauthorized(c)
		return
	}
	// Lấy thông tin người dùng từ payload
	googleUser, err := googleUserFromClaims(payload.Claims)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	// Kiểm tra nếu email chưa được xác thực
	if !googleUser.VerifiedEmail {
		response.BadRequest(c, "Email has not been verified")
		return
	}

	var user models.User
	result := config.DB.Where("email = ?", googleUser.Email).First(&user)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		// Nếu chưa có tài khoản thì tạo tài khoản mới
		user, err = services.CreateGoogleUser(googleUser.Name, googleUser.Email, googleUser.Picture)
		if err != nil {
			response.ServerError(c)
			return
		}
	} else if result.Error != nil {
		response.ServerError(c)
		return
	}

	userInfo := services.UserInfo{
		UserId: user.ID,
		Role:   user.Role,
	}

	accessToken, err := services.GenerateToken(userInfo, 60*24*3)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	services.SetTokenCookies(c, accessToken)

	response.Success(c, gin.H{
		"user_info":   toUserLoginResponse(user),
		"accessToken": accessToken,
	})
}

// googleUserFromClaims đọc thông tin người dùng từ claims của Google.
// Claims thiếu hoặc sai kiểu không được làm sập request; email là bắt buộc.
func googleUserFromClaims(claims map[string]interface{}) (dto.GoogleUser, error) {
	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return dto.GoogleUser{}, errors.New("Không tìm thấy email trong token Google")
	}

	name, _ := claims["name"].(string)
	verified, _ := claims["email_verified"].(bool)
	picture, _ := claims["picture"].(string)

	return dto.GoogleUser{
		Name:          name,
		Email:         email,
		VerifiedEmail: verified,
		Picture:       picture,
	}, nil
}

// verifyGoogleIDToken function - Xác thực ID token từ Google
func verifyGoogleIDToken(tokenId string) (*idtoken.Payload, error) {
	clientID := os.Getenv("GOOGLE_CLIENT_ID")
	payload, err := idtoken.Validate(context.Background(), tokenId, clientID)
	if err != nil {
		return nil, err
	}
	return payload, nil
}

func toUserLoginResponse(user models.User) dto.UserLoginResponse {
	return dto.UserLoginResponse{
		UserID:       user.ID,
		UserName:     user.Name,
		UserEmail:    user.Email,
		UserVerified: user.IsVerified,
		UserRole:     user.Role,
		UserAvatar:   user.Avatar,
		WishlistIDs:  user.WishlistIDs,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
}
