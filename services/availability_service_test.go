package services

import (
	"testing"
	"time"

	"resortly/constants"
	"resortly/errors"
	"resortly/models"
)

func mustParseDate(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(constants.DateLayout, value)
	if err != nil {
		t.Fatalf("failed to parse date %q: %v", value, err)
	}
	return parsed
}

func TestRangesOverlap(t *testing.T) {
	tests := []struct {
		name    string
		aFrom   string
		aTo     string
		bFrom   string
		bTo     string
		overlap bool
	}{
		{"identical ranges", "10/03/2026", "13/03/2026", "10/03/2026", "13/03/2026", true},
		{"partial overlap at end", "10/03/2026", "13/03/2026", "12/03/2026", "15/03/2026", true},
		{"partial overlap at start", "12/03/2026", "15/03/2026", "10/03/2026", "13/03/2026", true},
		{"contained range", "10/03/2026", "20/03/2026", "12/03/2026", "15/03/2026", true},
		{"adjacent ranges do not overlap", "10/03/2026", "13/03/2026", "13/03/2026", "16/03/2026", false},
		{"adjacent ranges reversed", "13/03/2026", "16/03/2026", "10/03/2026", "13/03/2026", false},
		{"disjoint ranges", "10/03/2026", "12/03/2026", "20/03/2026", "22/03/2026", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RangesOverlap(
				mustParseDate(t, tt.aFrom), mustParseDate(t, tt.aTo),
				mustParseDate(t, tt.bFrom), mustParseDate(t, tt.bTo),
			)
			if got != tt.overlap {
				t.Errorf("RangesOverlap = %v, want %v", got, tt.overlap)
			}
		})
	}
}

func TestFirstConflictingReservation(t *testing.T) {
	// Hai đơn pending trùng ngày trên cùng phòng, đơn 1 đã được xác nhận trước
	reservations := []models.Reservation{
		{
			BookingID: 1,
			RoomID:    5,
			FromDate:  mustParseDate(t, "01/06/2026"),
			ToDate:    mustParseDate(t, "04/06/2026"),
			Status:    constants.BookingStatusConfirmed,
		},
		{
			BookingID: 2,
			RoomID:    5,
			FromDate:  mustParseDate(t, "02/06/2026"),
			ToDate:    mustParseDate(t, "05/06/2026"),
			Status:    constants.BookingStatusPending,
		},
	}

	checkIn := mustParseDate(t, "02/06/2026")
	checkOut := mustParseDate(t, "05/06/2026")

	// Xác nhận đơn 2 phải thấy reservation đã confirmed của đơn 1
	conflict := FirstConflictingReservation(reservations, 2, checkIn, checkOut)
	if conflict == nil {
		t.Fatal("expected conflict with the confirmed reservation")
	}
	if conflict.BookingID != 1 {
		t.Errorf("expected conflict with booking 1, got booking %d", conflict.BookingID)
	}

	// Reservation của chính đơn đang xác nhận không tự chặn mình
	own := []models.Reservation{{
		BookingID: 2,
		RoomID:    5,
		FromDate:  checkIn,
		ToDate:    checkOut,
		Status:    constants.BookingStatusConfirmed,
	}}
	if conflict := FirstConflictingReservation(own, 2, checkIn, checkOut); conflict != nil {
		t.Errorf("expected no conflict with own reservation, got booking %d", conflict.BookingID)
	}

	// Reservation chưa confirmed không chặn phòng
	pendingOnly := []models.Reservation{{
		BookingID: 3,
		RoomID:    5,
		FromDate:  checkIn,
		ToDate:    checkOut,
		Status:    constants.BookingStatusPending,
	}}
	if conflict := FirstConflictingReservation(pendingOnly, 0, checkIn, checkOut); conflict != nil {
		t.Error("expected no conflict with pending reservation")
	}

	// Khoảng liền kề không tính là trùng
	adjacent := FirstConflictingReservation(reservations, 0,
		mustParseDate(t, "04/06/2026"), mustParseDate(t, "07/06/2026"))
	if adjacent != nil {
		t.Errorf("expected no conflict for adjacent range, got booking %d", adjacent.BookingID)
	}
}

func TestFindConflictingReservationRejectsInvalidRange(t *testing.T) {
	checkIn := mustParseDate(t, "13/03/2026")
	checkOut := mustParseDate(t, "10/03/2026")

	// db là nil: nếu khoảng ngày không bị chặn trước khi truy vấn thì test sẽ panic
	_, err := FindConflictingReservation(nil, 1, checkIn, checkOut)
	if err == nil {
		t.Fatal("expected error for inverted date range")
	}
	if !errors.HasCode(err, errors.ErrCodeInvalidDateRange) {
		t.Errorf("expected ErrCodeInvalidDateRange, got %v", err)
	}
}

func TestFindConflictingReservationRejectsEqualDates(t *testing.T) {
	date := mustParseDate(t, "10/03/2026")

	_, err := FindConflictingReservation(nil, 1, date, date)
	if err == nil {
		t.Fatal("expected error when check-in equals check-out")
	}
	if !errors.HasCode(err, errors.ErrCodeInvalidDateRange) {
		t.Errorf("expected ErrCodeInvalidDateRange, got %v", err)
	}
}
