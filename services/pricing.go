package services

import (
	"time"

	"resortly/constants"
)

// PriceBreakdown là chi tiết giá của một đơn đặt phòng
type PriceBreakdown struct {
	Nights       int
	RoomSubtotal float64
	ExtraBedCost float64
	Tax          float64
	Total        float64
}

// CalculateNights tính số đêm giữa ngày nhận và trả phòng
func CalculateNights(checkIn, checkOut time.Time) int {
	return int(checkOut.Sub(checkIn).Hours() / 24)
}

// CalculateBookingPrice tính giá đơn đặt phòng:
// tiền phòng = số đêm x giá phòng, giường phụ = số đêm x số giường x giá giường,
// thuế = 10% của (tiền phòng + giường phụ)
func CalculateBookingPrice(nightlyPrice, nights, extraBeds int) PriceBreakdown {
	roomSubtotal := float64(nightlyPrice * nights)
	extraBedCost := float64(nights * extraBeds * constants.ExtraBedNightlyRate)
	tax := (roomSubtotal + extraBedCost) * float64(constants.TaxRatePercent) / 100

	return PriceBreakdown{
		Nights:       nights,
		RoomSubtotal: roomSubtotal,
		ExtraBedCost: extraBedCost,
		Tax:          tax,
		Total:        roomSubtotal + extraBedCost + tax,
	}
}
