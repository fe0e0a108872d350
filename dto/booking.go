package dto

import "time"

// CreateBookingRequest là DTO cho request đặt phòng
type CreateBookingRequest struct {
	ResortID      uint   `json:"resortId" binding:"required"`
	RoomID        uint   `json:"roomId" binding:"required"`
	CheckInDate   string `json:"checkInDate" binding:"required,bookingdate"`
	CheckOutDate  string `json:"checkOutDate" binding:"required,bookingdate"`
	Adults        int    `json:"adults"`
	Children      int    `json:"children"`
	ExtraBeds     int    `json:"extraBeds"`
	PaymentStatus int    `json:"paymentStatus"`
	PaymentID     string `json:"paymentId,omitempty"`
}

// StatusUpdateRequest là DTO cho request cập nhật trạng thái booking
type StatusUpdateRequest struct {
	ID     uint `json:"id" binding:"required"`
	Status int  `json:"status"`
}

type BookingResortResponse struct {
	ID       uint   `json:"id"`
	Type     int    `json:"type"`
	Name     string `json:"name"`
	Address  string `json:"address"`
	Province string `json:"province"`
	District string `json:"district"`
	Price    int    `json:"price"`
	Avatar   string `json:"avatar"`
}

type BookingRoomResponse struct {
	ID       uint   `json:"id"`
	ResortID uint   `json:"resortId"`
	RoomName string `json:"roomName"`
	Price    int    `json:"price"`
}

type BookingUserResponse struct {
	ID            uint                  `json:"id"`
	Code          string                `json:"code"`
	User          ActorResponse         `json:"user"`
	Resort        BookingResortResponse `json:"resort"`
	Room          BookingRoomResponse   `json:"room"`
	CheckInDate   string                `json:"checkInDate"`
	CheckOutDate  string                `json:"checkOutDate"`
	Adults        int                   `json:"adults"`
	Children      int                   `json:"children"`
	ExtraBeds     int                   `json:"extraBeds"`
	Status        int                   `json:"status"`
	CreatedAt     time.Time             `json:"createdAt"`
	UpdatedAt     time.Time             `json:"updatedAt"`
	RoomSubtotal  float64               `json:"roomSubtotal"` // Tiền phòng
	ExtraBedCost  float64               `json:"extraBedCost"` // Tiền giường phụ
	Tax           float64               `json:"tax"`          // Thuế
	TotalPrice    float64               `json:"totalPrice"`
	PaymentStatus int                   `json:"paymentStatus"`
}
