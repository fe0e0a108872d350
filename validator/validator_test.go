package validator

import (
	"testing"

	"resortly/errors"
	"resortly/models"
)

func TestValidateUser(t *testing.T) {
	user := &models.User{Email: "test@example.com", Password: "secret1", Role: 0}
	if err := ValidateUser(user); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	shortPass := &models.User{Email: "test@example.com", Password: "abc", Role: 0}
	if err := ValidateUser(shortPass); err == nil {
		t.Error("expected error for password shorter than 6 characters")
	}

	badEmail := &models.User{Email: "not-an-email", Password: "secret1"}
	if err := ValidateUser(badEmail); err == nil {
		t.Error("expected error for invalid email")
	}

	badRole := &models.User{Email: "test@example.com", Password: "secret1", Role: 5}
	if err := ValidateUser(badRole); !errors.HasCode(err, errors.ErrCodeInvalidRole) {
		t.Errorf("expected ErrCodeInvalidRole, got %v", err)
	}
}

func TestValidateBookingDates(t *testing.T) {
	checkIn, checkOut, err := ValidateBookingDates("10/03/2026", "13/03/2026")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !checkOut.After(checkIn) {
		t.Error("expected check-out after check-in")
	}

	if _, _, err := ValidateBookingDates("13/03/2026", "10/03/2026"); !errors.HasCode(err, errors.ErrCodeInvalidDateRange) {
		t.Errorf("expected ErrCodeInvalidDateRange, got %v", err)
	}

	if _, _, err := ValidateBookingDates("10/03/2026", "10/03/2026"); !errors.HasCode(err, errors.ErrCodeInvalidDateRange) {
		t.Errorf("expected ErrCodeInvalidDateRange for same-day range, got %v", err)
	}

	if _, _, err := ValidateBookingDates("2026-03-10", "13/03/2026"); !errors.HasCode(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("expected ErrCodeInvalidFormat, got %v", err)
	}
}

func TestValidateBooking(t *testing.T) {
	userID := uint(1)
	valid := &models.Booking{
		UserID:       &userID,
		ResortID:     1,
		RoomID:       2,
		CheckInDate:  "10/03/2026",
		CheckOutDate: "13/03/2026",
		Adults:       2,
	}
	if err := ValidateBooking(valid); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	noAdults := *valid
	noAdults.Adults = 0
	if err := ValidateBooking(&noAdults); err == nil {
		t.Error("expected error when no adults")
	}

	negativeBeds := *valid
	negativeBeds.ExtraBeds = -1
	if err := ValidateBooking(&negativeBeds); err == nil {
		t.Error("expected error for negative extra beds")
	}

	noRoom := *valid
	noRoom.RoomID = 0
	if err := ValidateBooking(&noRoom); err == nil {
		t.Error("expected error when room is missing")
	}
}

func TestValidateReview(t *testing.T) {
	valid := &models.Review{UserID: 1, ResortID: 2, Star: 4}
	if err := ValidateReview(valid); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	for _, star := range []int{0, 6, -1} {
		review := &models.Review{UserID: 1, ResortID: 2, Star: star}
		if err := ValidateReview(review); err == nil {
			t.Errorf("expected error for star %d", star)
		}
	}
}

func TestValidateResort(t *testing.T) {
	valid := &models.Resort{Name: "Sunrise Resort", Address: "Goa", Type: 0}
	if err := ValidateResort(valid); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	noName := &models.Resort{Address: "Goa"}
	if err := ValidateResort(noName); err == nil {
		t.Error("expected error when name is missing")
	}

	badType := &models.Resort{Name: "Sunrise Resort", Address: "Goa", Type: 9}
	if err := ValidateResort(badType); !errors.HasCode(err, errors.ErrCodeInvalidType) {
		t.Errorf("expected ErrCodeInvalidType, got %v", err)
	}
}
