package validator

import (
	"regexp"
	"time"

	"resortly/constants"
	"resortly/errors"
	"resortly/models"
)

// ValidateUser validate thông tin user khi đăng ký
func ValidateUser(user *models.User) error {
	if user.Email == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Email không được để trống", nil)
	}

	if !isValidEmail(user.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email không hợp lệ", nil)
	}

	if user.Password == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Mật khẩu không được để trống", nil)
	}

	if len(user.Password) < 6 {
		return errors.NewAppError(errors.ErrCodeValidation, "Mật khẩu phải có ít nhất 6 ký tự", nil)
	}

	if user.Role < 0 || user.Role > 2 {
		return errors.NewAppError(errors.ErrCodeInvalidRole, "Role không hợp lệ", nil)
	}

	return nil
}

// ValidateBookingDates parse và kiểm tra khoảng ngày đặt phòng.
// Trả về lỗi trước khi truy vấn phòng trống nếu checkOut <= checkIn.
func ValidateBookingDates(checkInStr, checkOutStr string) (time.Time, time.Time, error) {
	checkIn, err := time.Parse(constants.DateLayout, checkInStr)
	if err != nil {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeInvalidFormat, "Ngày nhận phòng không hợp lệ", err)
	}

	checkOut, err := time.Parse(constants.DateLayout, checkOutStr)
	if err != nil {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeInvalidFormat, "Ngày trả phòng không hợp lệ", err)
	}

	if !checkOut.After(checkIn) {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeInvalidDateRange, "Ngày trả phòng phải sau ngày nhận phòng", nil)
	}

	return checkIn, checkOut, nil
}

// ValidateBooking validate thông tin đặt phòng
func ValidateBooking(booking *models.Booking) error {
	if booking.ResortID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "ID resort không được để trống", nil)
	}

	if booking.RoomID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "ID phòng không được để trống", nil)
	}

	if booking.UserID == nil {
		return errors.NewAppError(errors.ErrCodeRequiredField, "ID người dùng không được để trống", nil)
	}

	if _, _, err := ValidateBookingDates(booking.CheckInDate, booking.CheckOutDate); err != nil {
		return err
	}

	if booking.Adults < 1 {
		return errors.NewAppError(errors.ErrCodeValidation, "Số khách người lớn phải ít nhất là 1", nil)
	}

	if booking.Children < 0 || booking.ExtraBeds < 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "Số trẻ em và giường phụ không được âm", nil)
	}

	return nil
}

// ValidateResort validate thông tin resort khi chủ gửi duyệt
func ValidateResort(resort *models.Resort) error {
	if resort.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên resort không được để trống", nil)
	}

	if resort.Address == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Địa chỉ resort không được để trống", nil)
	}

	if resort.Price < 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "Giá không được âm", nil)
	}

	if err := resort.ValidateType(); err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidType, "Loại resort không hợp lệ", err)
	}

	return nil
}

// ValidateReview validate thông tin đánh giá
func ValidateReview(review *models.Review) error {
	if review.UserID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "ID người dùng không được để trống", nil)
	}

	if review.ResortID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "ID resort không được để trống", nil)
	}

	if review.Star < 1 || review.Star > 5 {
		return errors.NewAppError(errors.ErrCodeValidation, "Số sao đánh giá phải từ 1 đến 5", nil)
	}

	return nil
}

// ValidateEmail kiểm tra email hợp lệ
func ValidateEmail(email string) error {
	if !isValidEmail(email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email không hợp lệ", nil)
	}
	return nil
}

// isValidEmail kiểm tra email hợp lệ
func isValidEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}
