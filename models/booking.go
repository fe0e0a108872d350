package models

import (
	"time"
)

type Booking struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Code          string    `json:"code"` // Mã đơn đặt phòng
	UserID        *uint     `json:"userId"`
	User          *User     `json:"user" gorm:"foreignKey:UserID"`
	ResortID      uint      `json:"resortId"`
	Resort        Resort    `json:"resort" gorm:"foreignKey:ResortID"`
	RoomID        uint      `json:"roomId"`
	Room          Room      `json:"room" gorm:"foreignKey:RoomID"`
	CheckInDate   string    `json:"checkInDate"`
	CheckOutDate  string    `json:"checkOutDate"`
	Adults        int       `json:"adults"`
	Children      int       `json:"children"`
	ExtraBeds     int       `json:"extraBeds"`
	Status        int       `json:"status"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	RoomSubtotal  float64   `json:"roomSubtotal"` // Tiền phòng = số đêm x giá phòng
	ExtraBedCost  float64   `json:"extraBedCost"` // Tiền giường phụ
	Tax           float64   `json:"tax"`          // Thuế 10
	TotalPrice    float64   `json:"totalPrice"`   // Tổng giá
	PaymentStatus int       `json:"paymentStatus"`
	PaymentID     string    `json:"paymentId,omitempty"`
}
