package jobs

import (
	"log"
	"time"

	"resortly/utils"

	"github.com/robfig/cron/v3"
)

// BookingMaintainer định nghĩa interface cho việc dọn dẹp vòng đời booking
type BookingMaintainer interface {
	CompleteFinishedBookings() (int, error)
	CancelStaleBookings() (int, error)
}

var bookingMaintainer BookingMaintainer

// SetBookingMaintainer thiết lập implementation cho BookingMaintainer
func SetBookingMaintainer(maintainer BookingMaintainer) {
	bookingMaintainer = maintainer
}

// InitCronJobs khởi tạo các cron jobs
func InitCronJobs(c *cron.Cron) error {
	// Cron job chạy lúc 0h mỗi ngày
	_, err := c.AddFunc("0 0 * * *", func() {
		now := time.Now()
		log.Printf("Đang chạy dọn dẹp booking lúc: %v", now)
		if bookingMaintainer == nil {
			utils.LogError("BookingMaintainer chưa được thiết lập")
			return
		}

		completed, err := bookingMaintainer.CompleteFinishedBookings()
		if err != nil {
			utils.LogError("Lỗi khi hoàn thành booking quá ngày trả phòng: %v", err)
		} else {
			utils.LogInfo("Đã hoàn thành %d booking quá ngày trả phòng", completed)
		}

		cancelled, err := bookingMaintainer.CancelStaleBookings()
		if err != nil {
			utils.LogError("Lỗi khi hủy booking pending quá hạn: %v", err)
		} else {
			utils.LogInfo("Đã hủy %d booking pending quá hạn", cancelled)
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
