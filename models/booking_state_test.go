package models

import (
	"testing"

	"resortly/constants"
)

func TestPendingStateTransitions(t *testing.T) {
	booking := &Booking{Status: constants.BookingStatusPending}
	state := GetBookingState(booking.Status)

	if err := state.Complete(booking); err == nil {
		t.Error("expected error completing pending booking")
	}

	if err := state.Confirm(booking); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if booking.Status != constants.BookingStatusConfirmed {
		t.Errorf("expected status confirmed, got %d", booking.Status)
	}
}

func TestConfirmedStateTransitions(t *testing.T) {
	booking := &Booking{Status: constants.BookingStatusConfirmed}
	state := GetBookingState(booking.Status)

	if err := state.Confirm(booking); err == nil {
		t.Error("expected error confirming an already confirmed booking")
	}

	if err := state.Complete(booking); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if booking.Status != constants.BookingStatusCompleted {
		t.Errorf("expected status completed, got %d", booking.Status)
	}
}

func TestConfirmedBookingCanBeCancelled(t *testing.T) {
	booking := &Booking{Status: constants.BookingStatusConfirmed}
	state := GetBookingState(booking.Status)

	if err := state.Cancel(booking); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if booking.Status != constants.BookingStatusCancelled {
		t.Errorf("expected status cancelled, got %d", booking.Status)
	}
}

func TestTerminalStatesRejectTransitions(t *testing.T) {
	completed := &Booking{Status: constants.BookingStatusCompleted}
	if err := GetBookingState(completed.Status).Cancel(completed); err == nil {
		t.Error("expected error cancelling completed booking")
	}

	cancelled := &Booking{Status: constants.BookingStatusCancelled}
	if err := GetBookingState(cancelled.Status).Confirm(cancelled); err == nil {
		t.Error("expected error confirming cancelled booking")
	}
	if err := GetBookingState(cancelled.Status).Complete(cancelled); err == nil {
		t.Error("expected error completing cancelled booking")
	}
}
