package errors

import (
	"errors"
	"fmt"
)

// ErrorCode định nghĩa mã lỗi
type ErrorCode string

const (
	// Auth errors
	ErrCodeUnauthorized    ErrorCode = "UNAUTHORIZED"
	ErrCodeInvalidToken    ErrorCode = "INVALID_TOKEN"
	ErrCodeMissingToken    ErrorCode = "MISSING_TOKEN"
	ErrCodeInvalidPassword ErrorCode = "INVALID_PASSWORD"
	ErrCodeUserNotFound    ErrorCode = "USER_NOT_FOUND"
	ErrCodeUserExists      ErrorCode = "USER_EXISTS"
	ErrCodeInvalidEmail    ErrorCode = "INVALID_EMAIL"
	ErrCodeInvalidCode     ErrorCode = "INVALID_CODE"
	ErrCodeExpiredCode     ErrorCode = "EXPIRED_CODE"
	ErrCodeInvalidRole     ErrorCode = "INVALID_ROLE"
	ErrCodeInvalidPasskey  ErrorCode = "INVALID_PASSKEY"

	// Resort errors
	ErrCodeResortNotFound ErrorCode = "RESORT_NOT_FOUND"
	ErrCodeInvalidStatus  ErrorCode = "INVALID_STATUS"
	ErrCodeInvalidType    ErrorCode = "INVALID_TYPE"

	// Booking errors
	ErrCodeBookingConflict  ErrorCode = "BOOKING_CONFLICT"
	ErrCodeRoomLockBusy     ErrorCode = "ROOM_LOCK_BUSY"
	ErrCodeInvalidDateRange ErrorCode = "INVALID_DATE_RANGE"

	// Database errors
	ErrCodeDBError     ErrorCode = "DB_ERROR"
	ErrCodeDBNotFound  ErrorCode = "DB_NOT_FOUND"
	ErrCodeDBDuplicate ErrorCode = "DB_DUPLICATE"

	// Validation errors
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeRequiredField ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"

	// Business errors
	ErrCodeInvalidOperation ErrorCode = "INVALID_OPERATION"
)

// AppError định nghĩa lỗi của ứng dụng
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// NewAppError tạo một AppError mới
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsAppError kiểm tra xem error có phải là AppError không
func IsAppError(err error) bool {
	_, ok := err.(*AppError)
	return ok
}

// GetAppError lấy AppError từ error
func GetAppError(err error) *AppError {
	if appErr, ok := err.(*AppError); ok {
		return appErr
	}
	return nil
}

// HasCode kiểm tra error có mang mã lỗi cho trước không
func HasCode(err error, code ErrorCode) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Code == code
}

var (
	// User errors
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrInvalidPassword   = errors.New("invalid password")
	ErrUnauthorized      = errors.New("unauthorized")

	// Booking errors
	ErrBookingNotFound     = errors.New("booking not found")
	ErrBookingInvalid      = errors.New("invalid booking")
	ErrBookingConflict     = errors.New("booking dates conflict with an existing booking")
	ErrBookingCancelled    = errors.New("booking already cancelled")
	ErrBookingCompleted    = errors.New("booking already completed")
	ErrAvailabilityCheck   = errors.New("error checking availability")
	ErrInvalidBookingRange = errors.New("check-out date must be after check-in date")

	// Resort / room errors
	ErrResortNotFound   = errors.New("resort not found")
	ErrRoomNotFound     = errors.New("room not found")
	ErrRoomNotAvailable = errors.New("room not available")

	// Validation errors
	ErrInvalidInput    = errors.New("invalid input")
	ErrMissingRequired = errors.New("missing required field")
	ErrInvalidFormat   = errors.New("invalid format")
)
