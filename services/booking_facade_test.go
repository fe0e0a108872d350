package services

import (
	"testing"

	"resortly/errors"
	"resortly/models"
)

func TestParseBookingRange(t *testing.T) {
	checkIn, checkOut, err := parseBookingRange("10/03/2026", "13/03/2026")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !checkOut.After(checkIn) {
		t.Error("expected check-out after check-in")
	}

	if _, _, err := parseBookingRange("2026-03-10", "13/03/2026"); err == nil {
		t.Error("expected error for wrong date format")
	}

	_, _, err = parseBookingRange("13/03/2026", "10/03/2026")
	if !errors.HasCode(err, errors.ErrCodeInvalidDateRange) {
		t.Errorf("expected ErrCodeInvalidDateRange, got %v", err)
	}

	_, _, err = parseBookingRange("10/03/2026", "10/03/2026")
	if !errors.HasCode(err, errors.ErrCodeInvalidDateRange) {
		t.Errorf("expected ErrCodeInvalidDateRange for same-day range, got %v", err)
	}
}

func TestFindConflictingReservationExcludingRejectsInvalidRange(t *testing.T) {
	checkIn := mustParseDate(t, "13/03/2026")
	checkOut := mustParseDate(t, "10/03/2026")

	// db là nil: khoảng ngày ngược phải bị chặn trước khi truy vấn
	_, err := FindConflictingReservationExcluding(nil, 1, 2, checkIn, checkOut)
	if !errors.HasCode(err, errors.ErrCodeInvalidDateRange) {
		t.Errorf("expected ErrCodeInvalidDateRange, got %v", err)
	}
}

func TestBookingFacadeValidate(t *testing.T) {
	facade := NewBookingFacade(nil, nil)
	userID := uint(1)

	if err := facade.Validate(&models.Booking{RoomID: 2}); err == nil {
		t.Error("expected error when user is missing")
	}

	if err := facade.Validate(&models.Booking{UserID: &userID}); err == nil {
		t.Error("expected error when room is missing")
	}

	if err := facade.Validate(&models.Booking{UserID: &userID, RoomID: 2}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
