package services

import (
	"testing"
	"time"

	"resortly/errors"

	"github.com/dgrijalva/jwt-go"
)

func TestGetUserIDFromToken(t *testing.T) {
	token, err := GenerateToken(UserInfo{UserId: 9, Role: 1}, 60)
	if err != nil {
		t.Fatalf("unexpected error generating token: %v", err)
	}

	userID, role, err := GetUserIDFromToken(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if userID != 9 || role != 1 {
		t.Errorf("unexpected claims: userID=%d role=%d", userID, role)
	}
}

func TestGetUserIDFromTokenRejectsWrongKey(t *testing.T) {
	// Token tự ký bằng key khác, claims nhận role admin
	claims := &Claims{
		UserInfo: UserInfo{UserId: 1, Role: 2},
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Hour).Unix(),
		},
	}
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("key-khac"))
	if err != nil {
		t.Fatalf("unexpected error signing token: %v", err)
	}

	if _, _, err := GetUserIDFromToken(forged); !errors.HasCode(err, errors.ErrCodeInvalidToken) {
		t.Errorf("expected ErrCodeInvalidToken for forged token, got %v", err)
	}
}

func TestGetUserIDFromTokenRejectsExpiredToken(t *testing.T) {
	token, err := GenerateToken(UserInfo{UserId: 9, Role: 0}, -5)
	if err != nil {
		t.Fatalf("unexpected error generating token: %v", err)
	}

	if _, _, err := GetUserIDFromToken(token); !errors.HasCode(err, errors.ErrCodeInvalidToken) {
		t.Errorf("expected ErrCodeInvalidToken for expired token, got %v", err)
	}
}

func TestGetUserIDFromTokenRejectsGarbage(t *testing.T) {
	if _, _, err := GetUserIDFromToken("not-a-token"); !errors.HasCode(err, errors.ErrCodeInvalidToken) {
		t.Errorf("expected ErrCodeInvalidToken, got %v", err)
	}
}
