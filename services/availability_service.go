package services

import (
	"time"

	"resortly/constants"
	"resortly/errors"
	"resortly/models"

	"gorm.io/gorm"
)

// RangesOverlap kiểm tra hai khoảng [aFrom, aTo) và [bFrom, bTo) có giao nhau không.
// Hai khoảng liền kề (aTo == bFrom) không tính là giao nhau.
func RangesOverlap(aFrom, aTo, bFrom, bTo time.Time) bool {
	return aFrom.Before(bTo) && aTo.After(bFrom)
}

// FirstConflictingReservation chọn reservation đã xác nhận đầu tiên giao với
// khoảng [checkIn, checkOut), bỏ qua reservation của booking excludeBookingID
// (dùng khi xác nhận lại chính đơn đó). Trả về nil nếu không có xung đột.
func FirstConflictingReservation(reservations []models.Reservation, excludeBookingID uint, checkIn, checkOut time.Time) *models.Reservation {
	for i := range reservations {
		r := &reservations[i]
		if excludeBookingID != 0 && r.BookingID == excludeBookingID {
			continue
		}
		if r.Status != constants.BookingStatusConfirmed {
			continue
		}
		if RangesOverlap(r.FromDate, r.ToDate, checkIn, checkOut) {
			return r
		}
	}
	return nil
}

// FindConflictingReservation tìm reservation đã xác nhận giao với khoảng ngày yêu cầu
// của cùng một phòng. Trả về nil nếu phòng trống trong khoảng đó.
func FindConflictingReservation(db *gorm.DB, roomID uint, checkIn, checkOut time.Time) (*models.Reservation, error) {
	return FindConflictingReservationExcluding(db, roomID, 0, checkIn, checkOut)
}

// FindConflictingReservationExcluding như FindConflictingReservation nhưng bỏ qua
// reservation thuộc booking excludeBookingID; dùng cho đường xác nhận đơn pending
// để reservation phản chiếu của chính đơn không tự chặn mình.
func FindConflictingReservationExcluding(db *gorm.DB, roomID uint, excludeBookingID uint, checkIn, checkOut time.Time) (*models.Reservation, error) {
	if !checkOut.After(checkIn) {
		return nil, errors.NewAppError(errors.ErrCodeInvalidDateRange, "Ngày trả phòng phải sau ngày nhận phòng", nil)
	}

	var reservations []models.Reservation
	err := db.Where("room_id = ? AND status = ? AND from_date < ? AND to_date > ?",
		roomID, constants.BookingStatusConfirmed, checkOut, checkIn).
		Order("from_date").
		Find(&reservations).Error
	if err != nil {
		// Lỗi truy vấn không được coi là phòng trống
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi kiểm tra phòng trống", err)
	}

	return FirstConflictingReservation(reservations, excludeBookingID, checkIn, checkOut), nil
}

// CheckRoomAvailability kiểm tra phòng có trống trong khoảng [checkIn, checkOut) không
func CheckRoomAvailability(db *gorm.DB, roomID uint, checkIn, checkOut time.Time) (bool, error) {
	conflict, err := FindConflictingReservation(db, roomID, checkIn, checkOut)
	if err != nil {
		return false, err
	}
	return conflict == nil, nil
}

// GetRoomBookedRanges lấy các khoảng ngày đã đặt của một phòng
func GetRoomBookedRanges(db *gorm.DB, roomID uint) ([]models.Reservation, error) {
	var reservations []models.Reservation
	err := db.Where("room_id = ? AND status = ?", roomID, constants.BookingStatusConfirmed).
		Order("from_date").
		Find(&reservations).Error
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi lấy lịch đặt phòng", err)
	}
	return reservations, nil
}

// ResortHasAvailableRoom kiểm tra resort còn ít nhất một phòng trống trong khoảng ngày
func ResortHasAvailableRoom(db *gorm.DB, resortID uint, checkIn, checkOut time.Time) (bool, error) {
	var rooms []models.Room
	if err := db.Where("resort_id = ?", resortID).Find(&rooms).Error; err != nil {
		return false, errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi lấy danh sách phòng", err)
	}

	for _, room := range rooms {
		available, err := CheckRoomAvailability(db, room.RoomId, checkIn, checkOut)
		if err != nil {
			return false, err
		}
		if available {
			return true, nil
		}
	}
	return false, nil
}
