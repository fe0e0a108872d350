package builders

import "testing"

func TestBookingBuilder(t *testing.T) {
	booking := NewBookingBuilder().
		WithUser(7).
		WithResort(3).
		WithRoom(12).
		WithDates("10/03/2026", "13/03/2026").
		WithGuests(2, 1, 1).
		WithPayment(1, "pay_123").
		WithCode("BK-TEST01").
		Build()

	if booking.UserID == nil || *booking.UserID != 7 {
		t.Error("expected user id 7")
	}
	if booking.ResortID != 3 || booking.RoomID != 12 {
		t.Errorf("unexpected resort/room: %d/%d", booking.ResortID, booking.RoomID)
	}
	if booking.CheckInDate != "10/03/2026" || booking.CheckOutDate != "13/03/2026" {
		t.Errorf("unexpected dates: %s - %s", booking.CheckInDate, booking.CheckOutDate)
	}
	if booking.Adults != 2 || booking.Children != 1 || booking.ExtraBeds != 1 {
		t.Error("unexpected guest counts")
	}
	if booking.PaymentStatus != 1 || booking.PaymentID != "pay_123" {
		t.Error("unexpected payment info")
	}
	if booking.Code != "BK-TEST01" {
		t.Errorf("unexpected code: %s", booking.Code)
	}
}
