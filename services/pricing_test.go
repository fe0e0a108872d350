package services

import (
	"testing"
	"time"

	"resortly/constants"
)

func TestCalculateNights(t *testing.T) {
	checkIn, _ := time.Parse(constants.DateLayout, "10/03/2026")
	checkOut, _ := time.Parse(constants.DateLayout, "13/03/2026")

	if nights := CalculateNights(checkIn, checkOut); nights != 3 {
		t.Errorf("expected 3 nights, got %d", nights)
	}

	oneNightOut, _ := time.Parse(constants.DateLayout, "11/03/2026")
	if nights := CalculateNights(checkIn, oneNightOut); nights != 1 {
		t.Errorf("expected 1 night, got %d", nights)
	}
}

func TestCalculateBookingPrice(t *testing.T) {
	breakdown := CalculateBookingPrice(2000, 3, 0)

	if breakdown.RoomSubtotal != 6000 {
		t.Errorf("expected room subtotal 6000, got %v", breakdown.RoomSubtotal)
	}
	if breakdown.ExtraBedCost != 0 {
		t.Errorf("expected extra bed cost 0, got %v", breakdown.ExtraBedCost)
	}
	if breakdown.Tax != 600 {
		t.Errorf("expected tax 600, got %v", breakdown.Tax)
	}
	if breakdown.Total != 6600 {
		t.Errorf("expected total 6600, got %v", breakdown.Total)
	}
}

func TestCalculateBookingPriceWithExtraBeds(t *testing.T) {
	// 2 đêm x 1000 = 2000 tiền phòng, 2 đêm x 2 giường x 500 = 2000 giường phụ
	breakdown := CalculateBookingPrice(1000, 2, 2)

	if breakdown.RoomSubtotal != 2000 {
		t.Errorf("expected room subtotal 2000, got %v", breakdown.RoomSubtotal)
	}
	if breakdown.ExtraBedCost != 2000 {
		t.Errorf("expected extra bed cost 2000, got %v", breakdown.ExtraBedCost)
	}
	if breakdown.Tax != 400 {
		t.Errorf("expected tax 400, got %v", breakdown.Tax)
	}
	if breakdown.Total != 4400 {
		t.Errorf("expected total 4400, got %v", breakdown.Total)
	}
}

func TestCalculateBookingPriceZeroNights(t *testing.T) {
	breakdown := CalculateBookingPrice(2000, 0, 3)

	if breakdown.Total != 0 {
		t.Errorf("expected total 0 for zero nights, got %v", breakdown.Total)
	}
}
