package models

import "time"

// Reservation phản chiếu đơn đặt phòng, dùng để kiểm tra phòng trống.
// Được tạo trong cùng transaction với Booking.
type Reservation struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	BookingID uint      `json:"bookingId"`
	UserID    *uint     `json:"userId"`
	ResortID  uint      `json:"resortId"`
	RoomID    uint      `json:"roomId"`
	FromDate  time.Time `json:"fromDate"`
	ToDate    time.Time `json:"toDate"`
	Status    int       `json:"status"` // Trạng thái booking phản chiếu
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}
