package services

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"net/smtp"
	"strings"
	"time"

	"resortly/config"
	"resortly/constants"
	"resortly/models"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserInfo struct {
	UserId uint `json:"userid"`
	Role   int  `json:"role"`
}

type Claims struct {
	UserInfo UserInfo `json:"userinfo"`
	jwt.StandardClaims
}

func generateVerificationCode() (string, error) {
	code := ""

	for i := 0; i < 6; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		code += n.String()
	}

	return code, nil
}

func smtpSender() (from string, auth smtp.Auth, addr string) {
	from = config.GetEnv("SMTP_FROM")
	password := config.GetEnv("SMTP_PASSWORD")
	host := config.GetEnv("SMTP_HOST")
	port := config.GetEnv("SMTP_PORT")

	auth = smtp.PlainAuth("", from, password, host)
	addr = host + ":" + port
	return from, auth, addr
}

func sendVerificationEmail(email string, token string) error {
	from, auth, addr := smtpSender()
	to := []string{email}
	subject := "Subject: Mã xác thực tài khoản của bạn\n"
	body := fmt.Sprintf(`
		<!DOCTYPE html>
		<html>
		<head>
			<meta charset="UTF-8">
			<title>Mã xác thực</title>
		</head>
		<body>
			<p>Xin chào %s,</p>
			<p>Chúng tôi đã nhận yêu cầu mã xác thực cho tài khoản của bạn.</p>
			<p>Mã xác thực của bạn là: <strong>%s</strong></p>
			<p>Nếu không yêu cầu mã này thì bạn có thể bỏ qua email này một cách an toàn. Có thể ai đó khác đã nhập địa chỉ email của bạn do nhầm lẫn.</p>
			<p>Bạn có thể bấm vào nút sau để xác nhận tài khoản</p>
			<p>
				<a href="%s/verify-email?token=%s" style="display: inline-block; padding: 10px 20px; background-color: #1a73e8; color: white; text-decoration: none; border-radius: 5px;">
					Xác nhận email
				</a>
			</p>
			<p>Xin cám ơn,<br>Nhóm tài khoản</p>
		</body>
		</html>
	`, email, token, config.GetEnv("APP_BASE_URL"), token)

	msg := []byte("MIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n" + subject + "\n" + body)

	return smtp.SendMail(addr, auth, from, to, msg)
}

// SendBookingEmail gửi email xác nhận đặt phòng
func SendBookingEmail(email string, bookingCode string, totalPrice float64, checkInDate string, checkOutDate string) error {
	from, auth, addr := smtpSender()
	to := []string{email}
	subject := "Subject: Đặt phòng thành công\n"

	body := fmt.Sprintf(`<!DOCTYPE html>
	<html>
	<head>
		<meta charset="UTF-8">
		<title>Đặt phòng thành công</title>
	</head>
	<body>
		<p>Xin chào,</p>
		<p>Chúc mừng! Bạn đã đặt phòng thành công.</p>
		<p>Thông tin đơn đặt phòng của bạn như sau:</p>
		<ul>
			<li>Mã đơn: <strong>%s</strong></li>
			<li>Ngày nhận phòng: <strong>%s</strong></li>
			<li>Ngày trả phòng: <strong>%s</strong></li>
			<li>Tổng giá trị đơn: <strong>%.2f</strong></li>
		</ul>
		<p>Chúng tôi sẽ gửi cho bạn thông tin chi tiết về đơn khi có sự thay đổi.</p>
		<p>Cảm ơn bạn đã sử dụng dịch vụ của chúng tôi!</p>
		<p>Xin cảm ơn,<br>Nhóm hỗ trợ</p>
	</body>
	</html>`, bookingCode, checkInDate, checkOutDate, totalPrice)

	msg := []byte("MIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n" + subject + "\n" + body)

	return smtp.SendMail(addr, auth, from, to, msg)
}

func GetUserByEmail(email string) (models.User, error) {
	var user models.User
	result := config.DB.Where("email = ?", email).First(&user)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return user, fmt.Errorf("không tìm thấy người dùng với email %s", email)
	}

	if result.Error != nil {
		return user, result.Error
	}

	return user, nil
}

func HashPassword(password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedPassword), nil
}

var secretKey = []byte(config.GetEnv("SECRET_KEY_ACCESS_TOKEN"))

func GenerateToken(userInfo UserInfo, expiryMinutes int) (string, error) {
	claims := &Claims{
		UserInfo: userInfo,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Minute * time.Duration(expiryMinutes)).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(secretKey)
}

func SetTokenCookies(c *gin.Context, accessToken string) {
	c.SetCookie(
		"access_token",
		accessToken,
		3*24*60*60,
		"/",
		"",
		true,
		true,
	)
}

// CreateUser tạo tài khoản mới bằng email + mật khẩu
func CreateUser(input models.User) (models.User, error) {
	if input.Email == "" || input.Password == "" {
		return models.User{}, errors.New("không được để trống email, password")
	}

	input.Email = strings.ToLower(input.Email)

	if len(input.Password) < 6 {
		return models.User{}, errors.New("mật khẩu phải có ít nhất 6 ký tự")
	}

	existingEmail, err := GetUserByEmail(input.Email)
	if err == nil {
		return models.User{}, fmt.Errorf("email %s đã được sử dụng", existingEmail.Email)
	}

	hashedPassword, err := HashPassword(input.Password)
	if err != nil {
		return models.User{}, err
	}

	token, err := generateVerificationCode()
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Email:         input.Email,
		Password:      hashedPassword,
		IsVerified:    false,
		Code:          token,
		CodeCreatedAt: time.Now(),
		Role:          input.Role,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
		Name:          input.Name,
		Status:        constants.UserStatusActive,
	}

	result := config.DB.Create(&user)
	if result.Error != nil {
		return user, result.Error
	}

	if err := sendVerificationEmail(input.Email, token); err != nil {
		return user, err
	}

	return user, nil
}

// CreateGoogleUser tạo tài khoản từ đăng nhập Google, không có mật khẩu
func CreateGoogleUser(name, email, avatar string) (models.User, error) {
	existingEmail, err := GetUserByEmail(email)
	if err == nil {
		return models.User{}, fmt.Errorf("email %s đã được sử dụng", existingEmail.Email)
	}

	user := models.User{
		Name:       name,
		Email:      email,
		Password:   "",
		Avatar:     avatar,
		IsVerified: true,
		Role:       constants.RoleUser,
		Status:     constants.UserStatusActive,
	}

	result := config.DB.Create(&user)
	if result.Error != nil {
		return user, result.Error
	}

	return user, nil
}

// ResendCode cấp lại mã xác thực và gửi email
func ResendCode(user models.User) error {
	newCode, err := generateVerificationCode()
	if err != nil {
		return fmt.Errorf("không thể tạo mã xác minh mới: %v", err)
	}

	user.Code = newCode
	user.CodeCreatedAt = time.Now()

	if err := config.DB.Save(&user).Error; err != nil {
		return fmt.Errorf("không thể cập nhật mã xác minh: %v", err)
	}

	if err := sendVerificationEmail(user.Email, newCode); err != nil {
		return fmt.Errorf("không thể gửi email xác minh: %v", err)
	}

	return nil
}

// UpdateResortRating tính lại điểm đánh giá trung bình của resort
func UpdateResortRating(resortID uint) error {
	var reviews []models.Review
	if err := config.DB.Where("resort_id = ?", resortID).Find(&reviews).Error; err != nil {
		return err
	}

	var totalStars int
	var totalCount int

	for _, review := range reviews {
		totalStars += review.Star
		totalCount++
	}

	var average float64
	if totalCount > 0 {
		average = float64(totalStars) / float64(totalCount)
	}

	if err := config.DB.Model(&models.Resort{}).
		Where("id = ?", resortID).
		Update("star", average).Error; err != nil {
		return err
	}

	return nil
}
