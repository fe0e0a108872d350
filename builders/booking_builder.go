package builders

import (
	"resortly/models"
)

// BookingBuilder giúp tạo booking theo từng bước
type BookingBuilder struct {
	booking *models.Booking
}

// NewBookingBuilder tạo instance mới của BookingBuilder
func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		booking: &models.Booking{},
	}
}

// WithUser thêm thông tin người đặt
func (b *BookingBuilder) WithUser(userID uint) *BookingBuilder {
	b.booking.UserID = &userID
	return b
}

// WithResort thêm thông tin resort
func (b *BookingBuilder) WithResort(resortID uint) *BookingBuilder {
	b.booking.ResortID = resortID
	return b
}

// WithRoom thêm thông tin phòng
func (b *BookingBuilder) WithRoom(roomID uint) *BookingBuilder {
	b.booking.RoomID = roomID
	return b
}

// WithDates thêm khoảng ngày nhận và trả phòng
func (b *BookingBuilder) WithDates(checkIn, checkOut string) *BookingBuilder {
	b.booking.CheckInDate = checkIn
	b.booking.CheckOutDate = checkOut
	return b
}

// WithGuests thêm số khách và giường phụ
func (b *BookingBuilder) WithGuests(adults, children, extraBeds int) *BookingBuilder {
	b.booking.Adults = adults
	b.booking.Children = children
	b.booking.ExtraBeds = extraBeds
	return b
}

// WithPayment thêm kết quả thanh toán
func (b *BookingBuilder) WithPayment(status int, paymentID string) *BookingBuilder {
	b.booking.PaymentStatus = status
	b.booking.PaymentID = paymentID
	return b
}

// WithCode thêm mã đơn đặt phòng
func (b *BookingBuilder) WithCode(code string) *BookingBuilder {
	b.booking.Code = code
	return b
}

// Build tạo booking hoàn chỉnh
func (b *BookingBuilder) Build() *models.Booking {
	return b.booking
}
