package services

import (
	"context"
	"fmt"
	"time"

	"resortly/commands"
	"resortly/constants"
	"resortly/errors"
	"resortly/models"
	"resortly/services/logger"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// BookingFacade gom toàn bộ quy trình đặt phòng về một đường duy nhất:
// khóa theo phòng, kiểm tra trùng lịch theo phòng, tính giá,
// ghi booking + reservation trong một transaction.
type BookingFacade struct {
	db     *gorm.DB
	rdb    *redis.Client
	logger logger.Logger
}

// NewBookingFacade tạo instance mới của BookingFacade
func NewBookingFacade(db *gorm.DB, rdb *redis.Client) *BookingFacade {
	return &BookingFacade{
		db:     db,
		rdb:    rdb,
		logger: logger.NewDefaultLogger(logger.InfoLevel),
	}
}

// Validate kiểm tra tính hợp lệ của booking trước khi tạo
func (f *BookingFacade) Validate(booking *models.Booking) error {
	if booking.UserID == nil {
		return errors.NewAppError(errors.ErrCodeRequiredField, "ID người dùng không được để trống", nil)
	}
	if booking.RoomID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "ID phòng không được để trống", nil)
	}
	return nil
}

// CreateBooking tạo booking mới. Khoảng ngày đã được validate ở tầng trên
// (checkOut sau checkIn); khóa phòng được giữ suốt từ lúc kiểm tra trùng lịch
// đến khi ghi xong nên hai request đặt trùng ngày chỉ một request thành công.
func (f *BookingFacade) CreateBooking(ctx context.Context, booking *models.Booking) error {
	if err := f.Validate(booking); err != nil {
		return err
	}

	checkIn, checkOut, err := parseBookingRange(booking.CheckInDate, booking.CheckOutDate)
	if err != nil {
		return err
	}

	// Khóa theo phòng trước khi kiểm tra trùng lịch
	if f.rdb != nil {
		token, err := AcquireRoomLock(ctx, f.rdb, booking.RoomID)
		if err != nil {
			return err
		}
		defer ReleaseRoomLock(ctx, f.rdb, booking.RoomID, token)
	}

	// Kiểm tra trùng lịch theo phòng, không theo người đặt
	conflict, err := FindConflictingReservation(f.db, booking.RoomID, checkIn, checkOut)
	if err != nil {
		return err
	}
	if conflict != nil {
		return errors.NewAppError(errors.ErrCodeBookingConflict,
			fmt.Sprintf("Phòng đã có đơn đặt từ %s đến %s",
				conflict.FromDate.Format(constants.DateLayout),
				conflict.ToDate.Format(constants.DateLayout)), nil)
	}

	return f.db.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.First(&room, booking.RoomID).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeDBNotFound, "Không tìm thấy phòng", err)
		}

		if room.ResortID != booking.ResortID {
			return errors.NewAppError(errors.ErrCodeValidation, "Phòng không thuộc resort đã chọn", nil)
		}

		var resort models.Resort
		if err := tx.First(&resort, booking.ResortID).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeDBNotFound, "Không tìm thấy resort", err)
		}

		if resort.Status != constants.ResortStatusApproved || !resort.Visible {
			return errors.NewAppError(errors.ErrCodeInvalidOperation, "Resort chưa mở nhận đặt phòng", nil)
		}

		var user models.User
		if err := tx.First(&user, *booking.UserID).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeDBNotFound, "Không tìm thấy người dùng", err)
		}

		breakdown := CalculateBookingPrice(room.Price, CalculateNights(checkIn, checkOut), booking.ExtraBeds)
		booking.RoomSubtotal = breakdown.RoomSubtotal
		booking.ExtraBedCost = breakdown.ExtraBedCost
		booking.Tax = breakdown.Tax
		booking.TotalPrice = breakdown.Total

		if booking.PaymentStatus == constants.PaymentStatusSuccess {
			booking.Status = constants.BookingStatusConfirmed
		} else {
			booking.Status = constants.BookingStatusPending
		}

		if err := commands.NewCreateBookingCommand(booking, tx).Execute(); err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi tạo đơn đặt phòng", err)
		}

		reservation := models.Reservation{
			BookingID: booking.ID,
			UserID:    booking.UserID,
			ResortID:  booking.ResortID,
			RoomID:    booking.RoomID,
			FromDate:  checkIn,
			ToDate:    checkOut,
			Status:    booking.Status,
		}
		if err := tx.Create(&reservation).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi tạo reservation", err)
		}

		f.logger.Info("Tạo booking %d cho phòng %d từ %s đến %s", booking.ID, booking.RoomID, booking.CheckInDate, booking.CheckOutDate)
		return nil
	})
}

// parseBookingRange parse khoảng ngày dd/mm/yyyy, yêu cầu checkOut sau checkIn
func parseBookingRange(checkInStr, checkOutStr string) (time.Time, time.Time, error) {
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

// ConfirmBooking xác nhận đơn pending. Đơn pending không giữ chỗ nên trước khi
// chuyển sang confirmed phải khóa phòng và kiểm tra trùng lịch lại một lần nữa,
// bỏ qua reservation phản chiếu của chính đơn này; hai đơn pending trùng ngày
// trên cùng phòng thì chỉ đơn xác nhận trước thành công.
func (f *BookingFacade) ConfirmBooking(ctx context.Context, bookingID uint) error {
	var booking models.Booking
	if err := f.db.First(&booking, bookingID).Error; err != nil {
		return errors.NewAppError(errors.ErrCodeDBNotFound, "Không tìm thấy đơn đặt phòng", err)
	}

	checkIn, checkOut, err := parseBookingRange(booking.CheckInDate, booking.CheckOutDate)
	if err != nil {
		return err
	}

	if f.rdb != nil {
		token, err := AcquireRoomLock(ctx, f.rdb, booking.RoomID)
		if err != nil {
			return err
		}
		defer ReleaseRoomLock(ctx, f.rdb, booking.RoomID, token)
	}

	conflict, err := FindConflictingReservationExcluding(f.db, booking.RoomID, booking.ID, checkIn, checkOut)
	if err != nil {
		return err
	}
	if conflict != nil {
		return errors.NewAppError(errors.ErrCodeBookingConflict,
			fmt.Sprintf("Phòng đã có đơn đặt từ %s đến %s",
				conflict.FromDate.Format(constants.DateLayout),
				conflict.ToDate.Format(constants.DateLayout)), nil)
	}

	state := models.GetBookingState(booking.Status)
	if err := state.Confirm(&booking); err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidOperation, err.Error(), err)
	}

	return f.db.Transaction(func(tx *gorm.DB) error {
		if err := commands.NewUpdateBookingCommand(&booking, tx).Execute(); err != nil {
			return err
		}
		return tx.Model(&models.Reservation{}).
			Where("booking_id = ?", booking.ID).
			Update("status", booking.Status).Error
	})
}

// CancelBooking hủy booking và reservation phản chiếu
func (f *BookingFacade) CancelBooking(bookingID uint) error {
	var booking models.Booking
	if err := f.db.First(&booking, bookingID).Error; err != nil {
		return errors.NewAppError(errors.ErrCodeDBNotFound, "Không tìm thấy đơn đặt phòng", err)
	}

	state := models.GetBookingState(booking.Status)
	if err := state.Cancel(&booking); err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidOperation, err.Error(), err)
	}

	return f.db.Transaction(func(tx *gorm.DB) error {
		if err := commands.NewUpdateBookingCommand(&booking, tx).Execute(); err != nil {
			return err
		}
		return tx.Model(&models.Reservation{}).
			Where("booking_id = ?", booking.ID).
			Update("status", booking.Status).Error
	})
}

// CompleteBooking hoàn thành booking sau ngày trả phòng
func (f *BookingFacade) CompleteBooking(bookingID uint) error {
	var booking models.Booking
	if err := f.db.First(&booking, bookingID).Error; err != nil {
		return errors.NewAppError(errors.ErrCodeDBNotFound, "Không tìm thấy đơn đặt phòng", err)
	}

	state := models.GetBookingState(booking.Status)
	if err := state.Complete(&booking); err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidOperation, err.Error(), err)
	}

	return f.db.Transaction(func(tx *gorm.DB) error {
		if err := commands.NewUpdateBookingCommand(&booking, tx).Execute(); err != nil {
			return err
		}
		return tx.Model(&models.Reservation{}).
			Where("booking_id = ?", booking.ID).
			Update("status", booking.Status).Error
	})
}
