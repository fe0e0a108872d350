package services

import (
	"time"

	"resortly/constants"
	"resortly/models"
	"resortly/services/logger"

	"gorm.io/gorm"
)

// Đơn pending quá hạn này sẽ bị hủy và trả lại lịch phòng
const stalePendingAge = 24 * time.Hour

// BookingMaintenanceService dọn dẹp vòng đời booking, chạy theo cron
type BookingMaintenanceService struct {
	db     *gorm.DB
	logger logger.Logger
}

func NewBookingMaintenanceService(db *gorm.DB) *BookingMaintenanceService {
	return &BookingMaintenanceService{
		db:     db,
		logger: logger.NewDefaultLogger(logger.InfoLevel),
	}
}

// CompleteFinishedBookings chuyển các đơn đã xác nhận qua ngày trả phòng sang hoàn thành
func (s *BookingMaintenanceService) CompleteFinishedBookings() (int, error) {
	var reservations []models.Reservation
	now := time.Now()

	err := s.db.Where("status = ? AND to_date <= ?", constants.BookingStatusConfirmed, now).
		Find(&reservations).Error
	if err != nil {
		return 0, err
	}

	completed := 0
	for _, reservation := range reservations {
		err := s.db.Transaction(func(tx *gorm.DB) error {
			var booking models.Booking
			if err := tx.First(&booking, reservation.BookingID).Error; err != nil {
				return err
			}

			state := models.GetBookingState(booking.Status)
			if err := state.Complete(&booking); err != nil {
				return err
			}

			if err := tx.Save(&booking).Error; err != nil {
				return err
			}
			return tx.Model(&models.Reservation{}).
				Where("id = ?", reservation.ID).
				Update("status", booking.Status).Error
		})
		if err != nil {
			s.logger.Error("Lỗi khi hoàn thành booking %d: %v", reservation.BookingID, err)
			continue
		}
		completed++
	}

	return completed, nil
}

// CancelStaleBookings hủy các đơn pending quá hạn thanh toán
func (s *BookingMaintenanceService) CancelStaleBookings() (int, error) {
	var bookings []models.Booking
	cutoff := time.Now().Add(-stalePendingAge)

	err := s.db.Where("status = ? AND created_at < ?", constants.BookingStatusPending, cutoff).
		Find(&bookings).Error
	if err != nil {
		return 0, err
	}

	cancelled := 0
	for _, booking := range bookings {
		booking := booking
		err := s.db.Transaction(func(tx *gorm.DB) error {
			state := models.GetBookingState(booking.Status)
			if err := state.Cancel(&booking); err != nil {
				return err
			}

			if err := tx.Save(&booking).Error; err != nil {
				return err
			}
			return tx.Model(&models.Reservation{}).
				Where("booking_id = ?", booking.ID).
				Update("status", booking.Status).Error
		})
		if err != nil {
			s.logger.Error("Lỗi khi hủy booking pending %d: %v", booking.ID, err)
			continue
		}
		cancelled++
	}

	return cancelled, nil
}
