package services

import (
	"fmt"

	"resortly/errors"

	"github.com/dgrijalva/jwt-go"
)

// GetUserIDFromToken xác thực chữ ký và hạn của token rồi lấy userID và role.
// Token sai chữ ký, sai thuật toán hoặc hết hạn đều bị từ chối.
func GetUserIDFromToken(tokenString string) (uint, int, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("thuật toán ký không hợp lệ: %v", t.Header["alg"])
		}
		return secretKey, nil
	})
	if err != nil {
		return 0, 0, errors.NewAppError(errors.ErrCodeInvalidToken, "Token không hợp lệ hoặc đã hết hạn", err)
	}
	if !token.Valid {
		return 0, 0, errors.NewAppError(errors.ErrCodeInvalidToken, "Token không hợp lệ", nil)
	}

	return claims.UserInfo.UserId, claims.UserInfo.Role, nil
}

// GetIDFromToken lấy userID từ token
func GetIDFromToken(tokenString string) (uint, error) {
	userID, _, err := GetUserIDFromToken(tokenString)
	return userID, err
}
