package notification

import (
	"fmt"

	"github.com/olahol/melody"
)

type Service interface {
	SendMessage(message string) error
}

type MelodyService struct {
	m *melody.Melody
}

func NewMelodyService(m *melody.Melody) *MelodyService {
	return &MelodyService{m: m}
}

func (s *MelodyService) SendMessage(message string) error {
	if s.m == nil {
		return fmt.Errorf("melody instance is nil")
	}
	return s.m.Broadcast([]byte(message))
}

// BookingMessageBuilder tạo thông báo khi có đơn đặt phòng mới
type BookingMessageBuilder struct {
	code       string
	resortName string
	totalPrice float64
}

func NewBookingMessageBuilder(code, resortName string, totalPrice float64) *BookingMessageBuilder {
	return &BookingMessageBuilder{
		code:       code,
		resortName: resortName,
		totalPrice: totalPrice,
	}
}

func (b *BookingMessageBuilder) Build() string {
	return fmt.Sprintf("🔔 Đơn %s vừa được đặt tại %s với tổng giá %.2f.", b.code, b.resortName, b.totalPrice)
}

// ModerationMessageBuilder tạo thông báo khi có resort chờ duyệt
type ModerationMessageBuilder struct {
	resortID   uint
	resortName string
}

func NewModerationMessageBuilder(resortID uint, resortName string) *ModerationMessageBuilder {
	return &ModerationMessageBuilder{
		resortID:   resortID,
		resortName: resortName,
	}
}

func (b *ModerationMessageBuilder) Build() string {
	return fmt.Sprintf("🔔 Resort %d (%s) vừa được gửi chờ duyệt.", b.resortID, b.resortName)
}
